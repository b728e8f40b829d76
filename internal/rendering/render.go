// Package rendering compiles resume templates into LaTeX document source.
package rendering

import (
	"strings"
	"text/template"

	"github.com/jonathan/resume-builder/internal/templates"
	"github.com/jonathan/resume-builder/internal/types"
)

// Source abstracts where template text comes from. The embedded catalog
// satisfies it in production; tests substitute their own.
type Source interface {
	Content(id string) (string, error)
}

// catalogSource adapts the templates package to the Source interface.
type catalogSource struct{}

func (catalogSource) Content(id string) (string, error) {
	return templates.Content(id)
}

// Renderer compiles named templates against normalized resume data.
// The helper funcs are scoped to each render call rather than registered
// on any shared engine state, so concurrent renders never interfere.
type Renderer struct {
	source Source
}

// New creates a Renderer backed by the embedded template catalog.
func New() *Renderer {
	return &Renderer{source: catalogSource{}}
}

// NewWithSource creates a Renderer backed by a custom template source.
func NewWithSource(source Source) *Renderer {
	return &Renderer{source: source}
}

// Render compiles the named template against the normalized resume and
// returns the resulting LaTeX source. Unknown ids fail with
// *templates.ErrTemplateNotFound; malformed templates or execution
// failures fail with *ErrTemplateCompile.
func (r *Renderer) Render(templateID string, data *types.NormalizedResumeData) (string, error) {
	source, err := r.source.Content(templateID)
	if err != nil {
		return "", err
	}

	tmpl, err := template.New(templateID).Funcs(template.FuncMap{
		"escapeLatex": EscapeLaTeX,
		"latexParam":  LatexParam,
	}).Parse(source)
	if err != nil {
		return "", &ErrTemplateCompile{
			TemplateID: templateID,
			Message:    "failed to parse template",
			Cause:      err,
		}
	}

	var out strings.Builder
	if err := tmpl.Execute(&out, data); err != nil {
		return "", &ErrTemplateCompile{
			TemplateID: templateID,
			Message:    "failed to execute template",
			Cause:      err,
		}
	}

	return out.String(), nil
}
