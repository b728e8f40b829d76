// Package rendering compiles resume templates into LaTeX document source.
package rendering

import "fmt"

// ErrTemplateCompile represents a malformed template or an unrecoverable
// substitution error while executing one. A template error is a template
// authoring defect and is never recovered by the fallback path.
type ErrTemplateCompile struct {
	TemplateID string
	Message    string
	Cause      error
}

func (e *ErrTemplateCompile) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("template %s: %s: %v", e.TemplateID, e.Message, e.Cause)
	}
	return fmt.Sprintf("template %s: %s", e.TemplateID, e.Message)
}

func (e *ErrTemplateCompile) Unwrap() error {
	return e.Cause
}
