package model

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/xeipuuv/gojsonschema"
)

// RequiredKeys are the top-level keys every persisted document must carry.
var RequiredKeys = []string{"name", "subtitle", "contact", "experience", "projects", "education", "skills"}

//go:embed schema/resume.schema.json
var schemaFiles embed.FS

var loadSchema = sync.OnceValues(func() (*gojsonschema.Schema, error) {
	raw, err := schemaFiles.ReadFile("schema/resume.schema.json")
	if err != nil {
		return nil, err
	}
	return gojsonschema.NewSchema(gojsonschema.NewBytesLoader(raw))
})

// Save serializes doc as indented JSON. Non-ASCII text and markup characters
// are written as-is.
func Save(doc *ResumeDocument) ([]byte, error) {
	if doc == nil {
		doc = New()
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return nil, fmt.Errorf("encode resume: %w", err)
	}
	return buf.Bytes(), nil
}

// Load parses persisted JSON. It rejects documents missing a required
// top-level key and ignores unknown keys. Entries are returned as stored;
// callers that edit by ID call EnsureIDs.
func Load(data []byte) (*ResumeDocument, error) {
	if !json.Valid(data) {
		return nil, fmt.Errorf("%w: not valid JSON", ErrMalformedJSON)
	}
	if err := checkSchema(data); err != nil {
		return nil, err
	}
	var doc ResumeDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedJSON, err)
	}
	return &doc, nil
}

func checkSchema(data []byte) error {
	schema, err := loadSchema()
	if err != nil {
		return fmt.Errorf("load resume schema: %w", err)
	}
	result, err := schema.Validate(gojsonschema.NewBytesLoader(data))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedJSON, err)
	}
	if result.Valid() {
		return nil
	}

	missing := make(map[string]struct{})
	var firstOther string
	for _, e := range result.Errors() {
		if e.Type() == "required" {
			if prop, ok := e.Details()["property"].(string); ok {
				missing[prop] = struct{}{}
				continue
			}
		}
		if firstOther == "" {
			firstOther = e.String()
		}
	}
	for _, key := range RequiredKeys {
		if _, ok := missing[key]; ok {
			return &MissingKeyError{Key: key}
		}
	}
	return fmt.Errorf("%w: %s", ErrMalformedJSON, firstOther)
}
