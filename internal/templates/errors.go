// Package templates provides the resume template catalog and embedded
// LaTeX template sources.
package templates

import "fmt"

// ErrTemplateNotFound indicates the requested template id is not in the
// catalog. This is a caller mistake, not a service failure.
type ErrTemplateNotFound struct {
	ID string
}

func (e *ErrTemplateNotFound) Error() string {
	return fmt.Sprintf("template not found: %s", e.ID)
}
