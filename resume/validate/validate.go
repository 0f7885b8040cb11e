// Package validate checks the syntax of résumé date and email fields.
package validate

import (
	"regexp"
	"strings"
	"time"
)

// PresentToken marks an ongoing position or study period.
const PresentToken = "Present"

// DateExamples is shown to users whose date was rejected.
var DateExamples = []string{"2024", PresentToken, "Jan 2024"}

// dateLayouts are tried in order: YYYY, MM/YYYY, Mon YYYY, YYYY-MM-DD, Month YYYY.
var dateLayouts = []string{
	"2006",
	"1/2006",
	"Jan 2006",
	"2006-1-2",
	"January 2006",
}

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// Date accepts an empty string, the Present token, or any accepted layout.
func Date(s string) error {
	if s == "" || strings.EqualFold(s, PresentToken) {
		return nil
	}
	for _, layout := range dateLayouts {
		if _, err := time.Parse(layout, s); err == nil {
			return nil
		}
	}
	return &DateFormatError{Value: s}
}

// Email checks address syntax only; empty means "not provided".
func Email(s string) error {
	if s == "" {
		return nil
	}
	if !emailPattern.MatchString(s) {
		return &EmailFormatError{Value: s}
	}
	return nil
}
