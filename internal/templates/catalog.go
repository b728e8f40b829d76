// Package templates provides the resume template catalog and embedded
// LaTeX template sources.
package templates

import (
	"embed"
	"fmt"
)

//go:embed tex/*.tex
var templateFiles embed.FS

// Template describes one catalog entry.
type Template struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	PreviewURL  string `json:"previewUrl"`
	Category    string `json:"category"`
}

// catalog lists every available template in display order.
var catalog = []Template{
	{
		ID:          "professional",
		Name:        "Professional",
		Description: "Clean structure with bold headers. Suited to most technical roles.",
		PreviewURL:  "/previews/professional.png",
		Category:    "Technical",
	},
	{
		ID:          "modern",
		Name:        "Modern Clean",
		Description: "Contemporary single-column design for modern tech roles and startups.",
		PreviewURL:  "/previews/modern.png",
		Category:    "Modern",
	},
	{
		ID:          "classic",
		Name:        "Classic",
		Description: "Traditional format with education first. Best for academic and research positions.",
		PreviewURL:  "/previews/classic.png",
		Category:    "Traditional",
	},
	{
		ID:          "creative",
		Name:        "Simple Professional",
		Description: "Ultra-clean layout with minimal styling. Works for all industries.",
		PreviewURL:  "/previews/creative.png",
		Category:    "Creative",
	},
	{
		ID:          "compact",
		Name:        "Tech Focused",
		Description: "Optimized for software engineers. Emphasizes technical skills and projects.",
		PreviewURL:  "/previews/compact.png",
		Category:    "Technical",
	},
}

// List returns every template in the catalog.
func List() []Template {
	out := make([]Template, len(catalog))
	copy(out, catalog)
	return out
}

// Get returns the template with the given id.
func Get(id string) (Template, error) {
	for _, t := range catalog {
		if t.ID == id {
			return t, nil
		}
	}
	return Template{}, &ErrTemplateNotFound{ID: id}
}

// ListByCategory returns templates in the given category, preserving
// catalog order.
func ListByCategory(category string) []Template {
	var out []Template
	for _, t := range catalog {
		if t.Category == category {
			out = append(out, t)
		}
	}
	return out
}

// IsValid reports whether id names a catalog template.
func IsValid(id string) bool {
	_, err := Get(id)
	return err == nil
}

// Content returns the LaTeX source for the given template id.
func Content(id string) (string, error) {
	if !IsValid(id) {
		return "", &ErrTemplateNotFound{ID: id}
	}
	data, err := templateFiles.ReadFile(fmt.Sprintf("tex/%s.tex", id))
	if err != nil {
		// Catalog and embedded files are kept in sync at build time.
		return "", &ErrTemplateNotFound{ID: id}
	}
	return string(data), nil
}
