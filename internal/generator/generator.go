// Package generator coordinates the resume document pipeline: normalize,
// render the template, compile remotely, and fall back to local rendering
// when the compiler is unavailable.
package generator

import (
	"context"
	"log"

	"github.com/jonathan/resume-builder/internal/compiler"
	"github.com/jonathan/resume-builder/internal/fallback"
	"github.com/jonathan/resume-builder/internal/normalize"
	"github.com/jonathan/resume-builder/internal/rendering"
	"github.com/jonathan/resume-builder/internal/types"
)

// Source identifies which rendering strategy produced a document.
type Source string

const (
	// SourceCompiled marks output from the remote LaTeX compiler.
	SourceCompiled Source = "compiled"
	// SourceFallback marks output from the local headless renderer.
	SourceFallback Source = "fallback"
)

// Document is a finished binary resume. Either a complete, valid PDF is
// produced or the generation call errors; there is no partial output.
type Document struct {
	PDF         []byte
	ContentType string
	Source      Source
}

// TemplateRenderer compiles a named template against normalized data.
type TemplateRenderer interface {
	Render(templateID string, data *types.NormalizedResumeData) (string, error)
}

// DocumentCompiler turns LaTeX source into PDF bytes.
type DocumentCompiler interface {
	Compile(ctx context.Context, sourceText string) ([]byte, error)
}

// FallbackRenderer produces PDF bytes directly from normalized data.
type FallbackRenderer interface {
	RenderDirect(ctx context.Context, data *types.NormalizedResumeData) ([]byte, error)
}

// Generator is the entry point external callers use to produce documents.
// Each call is an independent, stateless chain; Generators are safe for
// concurrent use.
type Generator struct {
	renderer TemplateRenderer
	compiler DocumentCompiler
	fallback FallbackRenderer
}

// New wires a Generator from its three stages.
func New(renderer TemplateRenderer, documentCompiler DocumentCompiler, fallbackRenderer FallbackRenderer) *Generator {
	return &Generator{
		renderer: renderer,
		compiler: documentCompiler,
		fallback: fallbackRenderer,
	}
}

// NewDefault wires a Generator with the embedded template catalog, the
// remote compile client, and the headless Chrome fallback.
func NewDefault(compilerCfg compiler.Config, fallbackCfg fallback.Config) *Generator {
	return New(rendering.New(), compiler.New(compilerCfg), fallback.New(fallbackCfg))
}

// Generate runs the linear pipeline for one request.
//
// A template failure propagates immediately: the fallback bypasses
// templates entirely, so it cannot recover a bad template id, and those
// are caller mistakes rather than service failures. A compiler failure is
// absorbed by attempting the fallback; a fallback failure is terminal.
func (g *Generator) Generate(ctx context.Context, templateID string, raw *types.ResumeData) (*Document, error) {
	normalized := normalize.Normalize(raw)

	source, err := g.renderer.Render(templateID, normalized)
	if err != nil {
		return nil, err
	}

	pdf, err := g.compiler.Compile(ctx, source)
	if err == nil {
		return &Document{PDF: pdf, ContentType: "application/pdf", Source: SourceCompiled}, nil
	}
	log.Printf("[GENERATOR] compile service failed, using local fallback: %v", err)

	pdf, err = g.fallback.RenderDirect(ctx, normalized)
	if err != nil {
		return nil, err
	}
	return &Document{PDF: pdf, ContentType: "application/pdf", Source: SourceFallback}, nil
}
