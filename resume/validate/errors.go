package validate

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidDateFormat  = errors.New("invalid date format")
	ErrInvalidEmailFormat = errors.New("invalid email format")
)

// DateFormatError reports a date string that matched none of the accepted layouts.
type DateFormatError struct {
	Value string
}

func (e *DateFormatError) Error() string {
	return fmt.Sprintf("Invalid date format: %s. Use formats like %s", e.Value, strings.Join(DateExamples, ", "))
}

func (e *DateFormatError) Is(target error) bool {
	return target == ErrInvalidDateFormat
}

// EmailFormatError reports an email address that is not local@domain.tld.
type EmailFormatError struct {
	Value string
}

func (e *EmailFormatError) Error() string {
	return fmt.Sprintf("Invalid email format: %s", e.Value)
}

func (e *EmailFormatError) Is(target error) bool {
	return target == ErrInvalidEmailFormat
}
