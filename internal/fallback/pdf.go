// Package fallback renders a resume PDF locally with headless Chrome,
// bypassing the template and remote compile path entirely.
package fallback

import (
	"context"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"

	"github.com/jonathan/resume-builder/internal/types"
)

// DefaultTimeout bounds the headless render step. The remote compiler has
// its own timeout; this one keeps a hung Chrome from pinning the request.
const DefaultTimeout = 60 * time.Second

// Letter page geometry in inches.
const (
	paperWidthIn  = 8.5
	paperHeightIn = 11.0
	marginIn      = 0.5
)

// printer rasterizes an HTML document to PDF bytes. Split out so the
// layout logic is testable without a Chrome binary.
type printer interface {
	printToPDF(ctx context.Context, html string) ([]byte, error)
}

// Config holds fallback renderer configuration.
type Config struct {
	// ChromePath overrides the Chrome/Chromium binary location.
	ChromePath string
	// Timeout bounds one render; zero means DefaultTimeout.
	Timeout time.Duration
}

// Renderer produces a PDF directly from normalized resume data using a
// fixed generic layout, independent of any named template.
type Renderer struct {
	printer printer
	timeout time.Duration
}

// New creates a Renderer backed by headless Chrome.
func New(cfg Config) *Renderer {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Renderer{
		printer: &chromePrinter{execPath: cfg.ChromePath},
		timeout: timeout,
	}
}

// RenderDirect builds the generic layout for data and prints it to PDF.
// Any failure surfaces as *ErrRenderUnavailable; there is no retry.
func (r *Renderer) RenderDirect(ctx context.Context, data *types.NormalizedResumeData) ([]byte, error) {
	if data != nil && !data.HasSections() {
		log.Printf("[FALLBACK] no sections present, rendering header-only document")
	}

	html, err := BuildHTML(data)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	pdf, err := r.printer.printToPDF(ctx, html)
	if err != nil {
		return nil, &ErrRenderUnavailable{Message: "headless render failed", Cause: err}
	}
	return pdf, nil
}

// chromePrinter drives a headless Chrome instance via chromedp. Every
// browser resource is scoped to the call and released on all exit paths.
type chromePrinter struct {
	execPath string
}

func (p *chromePrinter) printToPDF(ctx context.Context, html string) ([]byte, error) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
	)
	if p.execPath != "" {
		opts = append(opts, chromedp.ExecPath(p.execPath))
	}

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)
	defer cancelAlloc()

	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)
	defer cancelBrowser()

	// Chrome needs a real URL to navigate to; serve the document from a
	// temporary file.
	tmpDir, err := os.MkdirTemp("", "resume-fallback-*")
	if err != nil {
		return nil, err
	}
	defer os.RemoveAll(tmpDir)

	htmlPath := filepath.Join(tmpDir, "resume.html")
	if err := os.WriteFile(htmlPath, []byte(html), 0o644); err != nil {
		return nil, err
	}

	log.Printf("[FALLBACK] rendering resume via headless Chrome")

	var pdf []byte
	err = chromedp.Run(browserCtx,
		chromedp.Navigate("file://"+htmlPath),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var printErr error
			pdf, _, printErr = page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(paperWidthIn).
				WithPaperHeight(paperHeightIn).
				WithMarginTop(marginIn).
				WithMarginBottom(marginIn).
				WithMarginLeft(marginIn).
				WithMarginRight(marginIn).
				Do(ctx)
			return printErr
		}),
	)
	if err != nil {
		return nil, err
	}

	log.Printf("[FALLBACK] rendered PDF: %d bytes", len(pdf))
	return pdf, nil
}
