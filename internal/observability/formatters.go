// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-builder/internal/generator"
	"github.com/jonathan/resume-builder/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintResumeSummary outputs a human-readable summary of the resume data
// about to be rendered.
func (p *Printer) PrintResumeSummary(data *types.ResumeData) {
	if data == nil {
		return
	}

	var sb strings.Builder

	name := "(unnamed)"
	if data.PersonalInfo != nil && data.PersonalInfo.FullName != "" {
		name = data.PersonalInfo.FullName
	}
	sb.WriteString(fmt.Sprintf("Candidate: %s\n", name))
	if data.Summary != "" {
		summary := data.Summary
		if len(summary) > 50 {
			summary = summary[:47] + "..."
		}
		sb.WriteString(fmt.Sprintf("Summary:   %s\n", summary))
	}
	sb.WriteString("\n")

	sb.WriteString("Sections:\n")
	sections := []struct {
		name  string
		count int
	}{
		{"experience", len(data.Experience)},
		{"education", len(data.Education)},
		{"skills", len(data.Skills)},
		{"projects", len(data.Projects)},
		{"certifications", len(data.Certifications)},
	}
	present := 0
	for _, s := range sections {
		if s.count == 0 {
			continue
		}
		present++
		sb.WriteString(fmt.Sprintf("  • %s (%d entries)\n", s.name, s.count))
	}
	if present == 0 {
		sb.WriteString("  (none)\n")
	}

	if len(data.Experience) > 0 {
		sb.WriteString("\nExperience:\n")
		count := min(len(data.Experience), maxItemsToShow)
		for i := 0; i < count; i++ {
			exp := data.Experience[i]
			entry := exp.Position
			if exp.Company != "" {
				entry = fmt.Sprintf("%s @ %s", entry, exp.Company)
			}
			if len(entry) > 45 {
				entry = entry[:42] + "..."
			}
			sb.WriteString(fmt.Sprintf("  • %s\n", entry))
		}
		if len(data.Experience) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(data.Experience)-maxItemsToShow))
		}
	}

	p.printBox("RESUME DATA", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintDocument outputs how the finished document was produced.
func (p *Printer) PrintDocument(doc *generator.Document) {
	if doc == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Size:         %d bytes\n", len(doc.PDF)))
	sb.WriteString(fmt.Sprintf("Content-Type: %s\n", doc.ContentType))
	switch doc.Source {
	case generator.SourceCompiled:
		sb.WriteString("Source:       remote LaTeX compile")
	case generator.SourceFallback:
		sb.WriteString("Source:       local headless-browser fallback")
	default:
		sb.WriteString(fmt.Sprintf("Source:       %s", doc.Source))
	}

	p.printBox("GENERATED DOCUMENT", sb.String())
}
