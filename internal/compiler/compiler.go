// Package compiler turns LaTeX source into a PDF via a remote build service.
package compiler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/sony/gobreaker/v2"
)

const (
	// DefaultEndpoint is the public LaTeX build service.
	DefaultEndpoint = "https://latex.ytotech.com/build"

	// DefaultTimeout bounds one remote compilation. Compilation is slower
	// than a typical request, so the bound is generous.
	DefaultTimeout = 30 * time.Second

	// maxResponseSize caps how much of a compile response is read.
	maxResponseSize = 32 << 20 // 32 MiB
)

// pdfMagic is the leading byte signature of a PDF document. A response
// without it is a failure even when the transport call returned 200,
// since some build services return textual error bodies with success
// status codes.
var pdfMagic = []byte("%PDF")

// buildRequest is the wire format of the remote build service.
type buildRequest struct {
	Compiler  string          `json:"compiler"`
	Resources []buildResource `json:"resources"`
}

type buildResource struct {
	Main    bool   `json:"main"`
	Content string `json:"content"`
}

// Config holds compiler client configuration.
type Config struct {
	Endpoint string
	Timeout  time.Duration
}

// Client compiles LaTeX source remotely. The client performs exactly one
// attempt per call; retry and fallback policy belong to the orchestrator.
// A circuit breaker short-circuits calls while the service is flapping so
// requests go straight to the fallback path instead of burning the full
// timeout each time.
type Client struct {
	endpoint   string
	httpClient *http.Client
	breaker    *gobreaker.CircuitBreaker[[]byte]
}

// New creates a compiler client. Zero-value config fields use defaults.
func New(cfg Config) *Client {
	if cfg.Endpoint == "" {
		cfg.Endpoint = DefaultEndpoint
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}

	settings := gobreaker.Settings{
		Name:    "latex-compile",
		Timeout: 30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return counts.Requests >= 3 && failureRatio >= 0.6
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			log.Printf("[COMPILER] circuit breaker %s: %s -> %s", name, from, to)
		},
	}

	return &Client{
		endpoint:   cfg.Endpoint,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		breaker:    gobreaker.NewCircuitBreaker[[]byte](settings),
	}
}

// Compile sends sourceText to the remote build service and returns the
// PDF bytes. Any failure mode surfaces as *ErrCompileService.
func (c *Client) Compile(ctx context.Context, sourceText string) ([]byte, error) {
	pdf, err := c.breaker.Execute(func() ([]byte, error) {
		return c.compileOnce(ctx, sourceText)
	})
	if err != nil {
		var svcErr *ErrCompileService
		if errors.As(err, &svcErr) {
			return nil, svcErr
		}
		// Breaker open / too many requests.
		return nil, &ErrCompileService{Message: "compile service unavailable", Cause: err}
	}
	return pdf, nil
}

func (c *Client) compileOnce(ctx context.Context, sourceText string) ([]byte, error) {
	body, err := json.Marshal(buildRequest{
		Compiler: "pdflatex",
		Resources: []buildResource{
			{Main: true, Content: sourceText},
		},
	})
	if err != nil {
		return nil, &ErrCompileService{Message: "failed to encode build request", Cause: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, &ErrCompileService{Message: "failed to create build request", Cause: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/pdf")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &ErrCompileService{Message: "build request failed", Cause: err}
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, &ErrCompileService{Message: "failed to read build response", Cause: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &ErrCompileService{
			Message: fmt.Sprintf("build service returned status %d", resp.StatusCode),
		}
	}

	if !bytes.HasPrefix(payload, pdfMagic) {
		return nil, &ErrCompileService{
			Message: "build response is not a PDF document",
		}
	}

	return payload, nil
}
