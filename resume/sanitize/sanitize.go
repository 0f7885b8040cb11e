// Package sanitize normalizes free-text résumé fields and escapes them for HTML.
package sanitize

import (
	"html"
	"strings"
)

// DefaultMaxLength caps a single field value, counted in characters.
const DefaultMaxLength = 10000

// Input truncates text to maxLength characters, trims surrounding whitespace
// and HTML-escapes the result. A non-positive maxLength uses DefaultMaxLength.
func Input(text string, maxLength int) string {
	return Escape(Normalize(text, maxLength))
}

// Normalize truncates then trims text without escaping it. This is the form
// stored in a ResumeDocument; escaping happens once, when rendering.
func Normalize(text string, maxLength int) string {
	if text == "" {
		return ""
	}
	if maxLength <= 0 {
		maxLength = DefaultMaxLength
	}
	return strings.TrimSpace(truncate(text, maxLength))
}

// Escape replaces &, <, >, " and ' with HTML entities.
func Escape(value string) string {
	if value == "" {
		return ""
	}
	return html.EscapeString(value)
}

func truncate(text string, maxLength int) string {
	if len(text) <= maxLength {
		return text
	}
	count := 0
	for i := range text {
		if count == maxLength {
			return text[:i]
		}
		count++
	}
	return text
}
