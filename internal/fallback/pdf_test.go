package fallback

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/jonathan/resume-builder/internal/normalize"
	"github.com/jonathan/resume-builder/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakePrinter records the HTML it was asked to print.
type fakePrinter struct {
	lastHTML string
	pdf      []byte
	err      error
	delay    time.Duration
}

func (f *fakePrinter) printToPDF(ctx context.Context, html string) ([]byte, error) {
	f.lastHTML = html
	if f.delay > 0 {
		select {
		case <-time.After(f.delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	return f.pdf, f.err
}

func TestRenderDirect_Success(t *testing.T) {
	printer := &fakePrinter{pdf: []byte("%PDF-1.4 fake")}
	r := &Renderer{printer: printer, timeout: time.Second}

	data := normalize.Normalize(&types.ResumeData{
		PersonalInfo: &types.PersonalInfo{FullName: "Jane Doe"},
	})
	pdf, err := r.RenderDirect(context.Background(), data)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(pdf), "%PDF"))
	assert.Contains(t, printer.lastHTML, "Jane Doe")
}

func TestRenderDirect_HeaderOnlyDocument(t *testing.T) {
	printer := &fakePrinter{pdf: []byte("%PDF-1.4 fake")}
	r := &Renderer{printer: printer, timeout: time.Second}

	// No sections at all still produces a valid document.
	data := normalize.Normalize(&types.ResumeData{
		PersonalInfo: &types.PersonalInfo{FullName: "Jane Doe"},
	})
	require.False(t, data.HasSections())

	pdf, err := r.RenderDirect(context.Background(), data)
	require.NoError(t, err)
	assert.NotEmpty(t, pdf)
	assert.Contains(t, printer.lastHTML, "Jane Doe")
	assert.NotContains(t, printer.lastHTML, "section-title")
}

func TestRenderDirect_PrinterFailure(t *testing.T) {
	printer := &fakePrinter{err: errors.New("chrome not found")}
	r := &Renderer{printer: printer, timeout: time.Second}

	_, err := r.RenderDirect(context.Background(), &types.NormalizedResumeData{})
	require.Error(t, err)
	var unavailable *ErrRenderUnavailable
	assert.ErrorAs(t, err, &unavailable)
}

func TestRenderDirect_TimeoutBoundsHungBackend(t *testing.T) {
	printer := &fakePrinter{pdf: []byte("%PDF"), delay: 500 * time.Millisecond}
	r := &Renderer{printer: printer, timeout: 20 * time.Millisecond}

	start := time.Now()
	_, err := r.RenderDirect(context.Background(), &types.NormalizedResumeData{})
	require.Error(t, err)
	assert.Less(t, time.Since(start), 400*time.Millisecond)
	var unavailable *ErrRenderUnavailable
	assert.ErrorAs(t, err, &unavailable)
}

func TestNew_DefaultsTimeout(t *testing.T) {
	r := New(Config{})
	assert.Equal(t, DefaultTimeout, r.timeout)
}
