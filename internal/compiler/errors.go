// Package compiler turns LaTeX source into a PDF via a remote build service.
package compiler

import "fmt"

// ErrCompileService represents any failure of the remote compile call:
// transport errors, timeouts, non-success responses, or a response body
// that is not a PDF. It is a transient dependency failure and is absorbed
// by the orchestrator's fallback path, never surfaced to callers directly.
type ErrCompileService struct {
	Message string
	Cause   error
}

func (e *ErrCompileService) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("compile service: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("compile service: %s", e.Message)
}

func (e *ErrCompileService) Unwrap() error {
	return e.Cause
}
