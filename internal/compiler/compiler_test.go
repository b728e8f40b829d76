package compiler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakePDF is a minimal payload with a valid PDF signature.
var fakePDF = []byte("%PDF-1.4\nfake document body")

func TestCompile_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		w.Header().Set("Content-Type", "application/pdf")
		_, _ = w.Write(fakePDF)
	}))
	defer server.Close()

	client := New(Config{Endpoint: server.URL})
	pdf, err := client.Compile(context.Background(), `\documentclass{article}`)
	require.NoError(t, err)
	assert.Equal(t, fakePDF, pdf)
}

func TestCompile_SendsSourceInBuildRequest(t *testing.T) {
	var received buildRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, jsonDecode(r, &received))
		_, _ = w.Write(fakePDF)
	}))
	defer server.Close()

	client := New(Config{Endpoint: server.URL})
	_, err := client.Compile(context.Background(), "latex source here")
	require.NoError(t, err)

	assert.Equal(t, "pdflatex", received.Compiler)
	require.Len(t, received.Resources, 1)
	assert.True(t, received.Resources[0].Main)
	assert.Equal(t, "latex source here", received.Resources[0].Content)
}

func TestCompile_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "compile failed", http.StatusInternalServerError)
	}))
	defer server.Close()

	client := New(Config{Endpoint: server.URL})
	_, err := client.Compile(context.Background(), "src")
	require.Error(t, err)
	var svcErr *ErrCompileService
	assert.ErrorAs(t, err, &svcErr)
	assert.Contains(t, svcErr.Message, "500")
}

func TestCompile_TextualBodyWithOKStatus(t *testing.T) {
	// Defends against services that report errors in a 200 body.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"error":"something went wrong"}`))
	}))
	defer server.Close()

	client := New(Config{Endpoint: server.URL})
	_, err := client.Compile(context.Background(), "src")
	require.Error(t, err)
	var svcErr *ErrCompileService
	assert.ErrorAs(t, err, &svcErr)
	assert.Contains(t, svcErr.Message, "not a PDF")
}

func TestCompile_Timeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		time.Sleep(200 * time.Millisecond)
		_, _ = w.Write(fakePDF)
	}))
	defer server.Close()

	client := New(Config{Endpoint: server.URL, Timeout: 20 * time.Millisecond})
	_, err := client.Compile(context.Background(), "src")
	require.Error(t, err)
	var svcErr *ErrCompileService
	assert.ErrorAs(t, err, &svcErr)
}

func TestCompile_UnreachableEndpoint(t *testing.T) {
	client := New(Config{Endpoint: "http://127.0.0.1:1", Timeout: 200 * time.Millisecond})
	_, err := client.Compile(context.Background(), "src")
	require.Error(t, err)
	var svcErr *ErrCompileService
	assert.ErrorAs(t, err, &svcErr)
}

func TestCompile_ContextCancellation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		time.Sleep(200 * time.Millisecond)
		_, _ = w.Write(fakePDF)
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client := New(Config{Endpoint: server.URL})
	_, err := client.Compile(ctx, "src")
	require.Error(t, err)
	var svcErr *ErrCompileService
	assert.ErrorAs(t, err, &svcErr)
}

func TestCompile_BreakerOpensAfterRepeatedFailures(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "down", http.StatusServiceUnavailable)
	}))

	client := New(Config{Endpoint: server.URL})
	for i := 0; i < 5; i++ {
		_, err := client.Compile(context.Background(), "src")
		require.Error(t, err)
	}
	server.Close()

	// Once open, calls fail fast with the unavailable message instead of
	// attempting the transport.
	_, err := client.Compile(context.Background(), "src")
	require.Error(t, err)
	var svcErr *ErrCompileService
	assert.ErrorAs(t, err, &svcErr)
}

// jsonDecode decodes a request body into v.
func jsonDecode(r *http.Request, v any) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(v)
}
