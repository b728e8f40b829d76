// Package fallback renders a resume PDF locally with headless Chrome,
// bypassing the template and remote compile path entirely.
package fallback

import "fmt"

// ErrRenderUnavailable indicates the local rendering backend could not be
// initialized or the layout step failed. This is fatal for the request:
// there is no further fallback behind this one.
type ErrRenderUnavailable struct {
	Message string
	Cause   error
}

func (e *ErrRenderUnavailable) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("fallback render: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("fallback render: %s", e.Message)
}

func (e *ErrRenderUnavailable) Unwrap() error {
	return e.Cause
}
