package model

import (
	"errors"
	"fmt"
)

var (
	ErrMissingRequiredKey = errors.New("missing required key")
	ErrMalformedJSON      = errors.New("malformed resume json")
	ErrRequiredField      = errors.New("required field is empty")
	ErrEntryNotFound      = errors.New("entry not found")
	ErrUnknownSection     = errors.New("unknown section")
)

// MissingKeyError reports a top-level key absent from persisted JSON.
type MissingKeyError struct {
	Key string
}

func (e *MissingKeyError) Error() string {
	return "Invalid resume data: missing " + e.Key
}

func (e *MissingKeyError) Is(target error) bool {
	return target == ErrMissingRequiredKey
}

// FieldError ties a validation failure to the field that caused it.
type FieldError struct {
	Field string
	Err   error
}

func (e *FieldError) Error() string {
	if errors.Is(e.Err, ErrRequiredField) {
		return fmt.Sprintf("%s is required", e.Field)
	}
	return fmt.Sprintf("%s: %v", e.Field, e.Err)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}
