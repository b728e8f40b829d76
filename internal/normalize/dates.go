// Package normalize reshapes raw resume data into the render-ready form
// templates and layouts expect.
package normalize

import (
	"regexp"
	"strings"
	"time"
)

// yearOnly matches a bare four-digit year like "2025".
var yearOnly = regexp.MustCompile(`^\d{4}$`)

// dateLayouts are tried in order when parsing a calendar date string.
var dateLayouts = []string{
	"2006-01-02",
	"2006-01",
	"2006/01/02",
	"01/02/2006",
	"01/2006",
	"January 2, 2006",
	"January 2006",
	"Jan 2, 2006",
	"Jan 2006",
	time.RFC3339,
}

// FormatDate renders a date string as abbreviated month plus year, e.g.
// "Jun 2024". A bare four-digit year passes through unchanged, and any
// string that cannot be parsed as a calendar date is returned as-is.
// Unparseable input is never an error.
func FormatDate(dateStr string) string {
	if dateStr == "" {
		return ""
	}
	trimmed := strings.TrimSpace(dateStr)
	if yearOnly.MatchString(trimmed) {
		return trimmed
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, trimmed); err == nil {
			return t.Format("Jan 2006")
		}
	}
	return dateStr
}

// FormatDateRange renders an experience duration. An ongoing position
// renders as "<start> -- Present"; otherwise "<start> -- <end>".
func FormatDateRange(start, end string, current bool) string {
	startDate := FormatDate(start)
	if current {
		return startDate + " -- Present"
	}
	return startDate + " -- " + FormatDate(end)
}
