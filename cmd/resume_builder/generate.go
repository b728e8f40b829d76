package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-builder/internal/compiler"
	"github.com/jonathan/resume-builder/internal/config"
	"github.com/jonathan/resume-builder/internal/fallback"
	"github.com/jonathan/resume-builder/internal/generator"
	"github.com/jonathan/resume-builder/internal/observability"
	"github.com/jonathan/resume-builder/internal/schemas"
	"github.com/jonathan/resume-builder/internal/types"
)

var (
	generateConfigPath string
	generateInput      string
	generateOutput     string
	generateTemplate   string
	generateVerbose    bool
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a resume PDF from a JSON file",
	Long:  `Read resume data from a JSON file, render it with the chosen template, and write the resulting PDF. Useful for smoke-testing the pipeline without the server.`,
	RunE:  runGenerate,
}

func init() {
	generateCmd.Flags().StringVar(&generateConfigPath, "config", "", "Path to config.json file")
	generateCmd.Flags().StringVarP(&generateInput, "input", "i", "", "Path to resume JSON file (required)")
	generateCmd.Flags().StringVarP(&generateOutput, "output", "o", "resume.pdf", "Output PDF path")
	generateCmd.Flags().StringVarP(&generateTemplate, "template", "t", "professional", "Template id")
	generateCmd.Flags().BoolVarP(&generateVerbose, "verbose", "v", false, "Print detailed information about the data and document")
	_ = generateCmd.MarkFlagRequired("input")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(generateConfigPath)
	if err != nil {
		return err
	}

	payload, err := os.ReadFile(generateInput)
	if err != nil {
		return fmt.Errorf("failed to read resume file: %w", err)
	}

	if err := schemas.ValidateResume(payload); err != nil {
		return err
	}

	var data types.ResumeData
	if err := json.Unmarshal(payload, &data); err != nil {
		return fmt.Errorf("failed to parse resume JSON: %w", err)
	}

	printer := observability.NewPrinter(cmd.OutOrStdout())
	if generateVerbose {
		printer.PrintResumeSummary(&data)
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

	doc, err := gen.Generate(context.Background(), generateTemplate, &data)
	if err != nil {
		return err
	}

	if err := os.WriteFile(generateOutput, doc.PDF, 0o644); err != nil {
		return fmt.Errorf("failed to write PDF: %w", err)
	}

	if generateVerbose {
		printer.PrintDocument(doc)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s (%d bytes, source: %s)\n", generateOutput, len(doc.PDF), doc.Source)
	return nil
}
