package rendering

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEscapeLaTeX_EmptyString(t *testing.T) {
	assert.Equal(t, "", EscapeLaTeX(""))
}

func TestEscapeLaTeX_NoSpecialCharacters(t *testing.T) {
	text := "This is normal text with no special characters"
	assert.Equal(t, text, EscapeLaTeX(text))
}

func TestEscapeLaTeX_Backslash(t *testing.T) {
	assert.Equal(t, "test\\textbackslash{}backslash", EscapeLaTeX("test\\backslash"))
}

func TestEscapeLaTeX_CurlyBraces(t *testing.T) {
	assert.Equal(t, "text\\{with\\}braces", EscapeLaTeX("text{with}braces"))
}

func TestEscapeLaTeX_DollarSign(t *testing.T) {
	assert.Equal(t, "cost \\$100", EscapeLaTeX("cost $100"))
}

func TestEscapeLaTeX_Ampersand(t *testing.T) {
	assert.Equal(t, "A \\& B", EscapeLaTeX("A & B"))
}

func TestEscapeLaTeX_Percent(t *testing.T) {
	assert.Equal(t, "100\\% complete", EscapeLaTeX("100% complete"))
}

func TestEscapeLaTeX_Hash(t *testing.T) {
	assert.Equal(t, "issue \\#123", EscapeLaTeX("issue #123"))
}

func TestEscapeLaTeX_Caret(t *testing.T) {
	assert.Equal(t, "x\\textasciicircum{}2", EscapeLaTeX("x^2"))
}

func TestEscapeLaTeX_Underscore(t *testing.T) {
	assert.Equal(t, "variable\\_name", EscapeLaTeX("variable_name"))
}

func TestEscapeLaTeX_Tilde(t *testing.T) {
	assert.Equal(t, "\\textasciitilde{}approx", EscapeLaTeX("~approx"))
}

func TestEscapeLaTeX_EverySpecialCharacter(t *testing.T) {
	result := EscapeLaTeX("test${}~&%#^_\\")
	expected := "test\\$\\{\\}\\textasciitilde{}\\&\\%\\#\\textasciicircum{}\\_\\textbackslash{}"
	assert.Equal(t, expected, result)
}

func TestEscapeLaTeX_BackslashBeforeSpecial(t *testing.T) {
	// The backslash in the input is escaped on its own; the backslashes the
	// other substitutions insert are never touched again.
	assert.Equal(t, "\\textbackslash{}\\&", EscapeLaTeX("\\&"))
	assert.Equal(t, "\\&\\textbackslash{}", EscapeLaTeX("&\\"))
}

func TestEscapeLaTeX_UnicodePassesThrough(t *testing.T) {
	text := "résumé with unicode: α β γ"
	assert.Equal(t, text, EscapeLaTeX(text))
}

func TestLatexParam(t *testing.T) {
	assert.Equal(t, "#1", LatexParam(1))
	assert.Equal(t, "#42", LatexParam(42))
}
