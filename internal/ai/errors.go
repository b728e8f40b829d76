// Package ai rewrites resume content with a language model before
// rendering. The optimizer is structure-preserving: it may change string
// values but never the shape of the resume.
package ai

import "fmt"

// ErrOptimize represents a failed optimization attempt. Callers receive
// the original resume unchanged alongside this error and may proceed with
// un-optimized generation.
type ErrOptimize struct {
	Message string
	Cause   error
}

func (e *ErrOptimize) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("optimize: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("optimize: %s", e.Message)
}

func (e *ErrOptimize) Unwrap() error {
	return e.Cause
}
