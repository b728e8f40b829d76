// Package rendering compiles resume templates into LaTeX document source.
package rendering

import (
	"fmt"
	"strings"
)

// EscapeLaTeX escapes special LaTeX characters in text.
// Special characters: \ { } $ & % # ^ _ ~
// The single-pass character walk handles the backslash on its own, so the
// backslashes inserted by the other substitutions are never re-escaped.
func EscapeLaTeX(text string) string {
	if text == "" {
		return ""
	}

	var result strings.Builder
	result.Grow(len(text) * 2) // Pre-allocate space for potential escaping

	for _, r := range text {
		switch r {
		case '\\':
			result.WriteString(`\textbackslash{}`)
		case '{':
			result.WriteString(`\{`)
		case '}':
			result.WriteString(`\}`)
		case '$':
			result.WriteString(`\$`)
		case '&':
			result.WriteString(`\&`)
		case '%':
			result.WriteString(`\%`)
		case '#':
			result.WriteString(`\#`)
		case '^':
			result.WriteString(`\textasciicircum{}`)
		case '_':
			result.WriteString(`\_`)
		case '~':
			result.WriteString(`\textasciitilde{}`)
		default:
			result.WriteRune(r)
		}
	}

	return result.String()
}

// LatexParam prints a LaTeX macro parameter like #1 so templates can emit
// placeholder-looking text without the template engine intercepting it.
func LatexParam(n int) string {
	return fmt.Sprintf("#%d", n)
}
