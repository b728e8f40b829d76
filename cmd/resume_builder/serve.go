package main

import (
	"context"
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-builder/internal/ai"
	"github.com/jonathan/resume-builder/internal/compiler"
	"github.com/jonathan/resume-builder/internal/config"
	"github.com/jonathan/resume-builder/internal/fallback"
	"github.com/jonathan/resume-builder/internal/generator"
	"github.com/jonathan/resume-builder/internal/server"
)

var (
	serveConfigPath string
	servePort       int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes REST endpoints for generating resume PDFs.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveConfigPath, "config", "", "Path to config.json file (values can be overridden by environment variables)")
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (overrides config)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load(serveConfigPath)
	if err != nil {
		return err
	}
	if servePort != 0 {
		cfg.Port = servePort
	}

	gen := generator.NewDefault(
		compiler.Config{
			Endpoint: cfg.CompilerURL,
			Timeout:  cfg.CompilerTimeout(),
		},
		fallback.Config{
			ChromePath: cfg.ChromePath,
			Timeout:    cfg.FallbackTimeout(),
		},
	)

	var optimizer ai.Optimizer
	if cfg.GeminiAPIKey != "" {
		optimizer, err = ai.NewGeminiOptimizer(context.Background(), cfg.GeminiAPIKey, ai.Config{
			Model:    cfg.GeminiModel,
			CacheTTL: cfg.CacheTTL(),
		})
		if err != nil {
			return fmt.Errorf("failed to create optimizer: %w", err)
		}
	} else {
		log.Println("[SERVER] GEMINI_API_KEY not set, AI optimization disabled")
	}

	srv := server.New(server.Config{
		Port:               cfg.Port,
		CORSOrigin:         cfg.CORSOrigin,
		RateLimitPerMinute: cfg.RateLimitPerMinute,
	}, gen, optimizer)

	return srv.Start()
}
