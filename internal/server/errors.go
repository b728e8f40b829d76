package server

import (
	"errors"
	"net/http"
	"strings"

	"github.com/jonathan/resume-builder/internal/fallback"
	"github.com/jonathan/resume-builder/internal/rendering"
	"github.com/jonathan/resume-builder/internal/schemas"
	"github.com/jonathan/resume-builder/internal/templates"
)

// HTTPStatus maps pipeline errors to HTTP status codes: unknown
// template is the caller's 404, a template that fails to compile or a
// payload that fails validation is the caller's 400, and an exhausted
// rendering pipeline is a 503 the caller may retry later.
func HTTPStatus(err error) int {
	var (
		notFound    *templates.ErrTemplateNotFound
		compile     *rendering.ErrTemplateCompile
		validation  *schemas.ValidationError
		unavailable *fallback.ErrRenderUnavailable
	)
	switch {
	case errors.As(err, &notFound):
		return http.StatusNotFound
	case errors.As(err, &compile), errors.As(err, &validation):
		return http.StatusBadRequest
	case errors.As(err, &unavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// errorDetails flattens per-field details into one string when the
// error carries them.
func errorDetails(err error) string {
	var validation *schemas.ValidationError
	if errors.As(err, &validation) {
		return strings.Join(validation.Details(), "; ")
	}
	return ""
}
