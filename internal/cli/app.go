// Package cli implements resumectl, a file-based front end to the résumé
// model: every command reads a saved JSON document, changes or renders it,
// and writes it back.
package cli

import (
	"fmt"
	"os"

	"resume-builder/internal/shared/util"
	"resume-builder/resume/model"
)

// App carries the collaborators the commands need.
type App struct {
	// IsInteractive reports whether prompts may be shown. Nil means never.
	IsInteractive func() bool

	// Serve starts the HTTP API on addr.
	Serve func(addr string, debug bool) error

	// TemplatePaths are tried before the built-in template when rendering.
	TemplatePaths []string
}

func (a *App) interactive() bool {
	return a != nil && a.IsInteractive != nil && a.IsInteractive()
}

func readDocument(path string) (*model.ResumeDocument, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	doc, err := model.Load(data)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}
	return doc, nil
}

// readEditable loads a document for an edit that addresses entries by ID,
// giving ID-less entries one first.
func readEditable(path string) (*model.ResumeDocument, error) {
	doc, err := readDocument(path)
	if err != nil {
		return nil, err
	}
	doc.EnsureIDs()
	return doc, nil
}

// writeDocument saves doc as JSON, adding a .json extension when missing.
// It returns the path actually written.
func writeDocument(path string, doc *model.ResumeDocument) (string, error) {
	path = util.EnsureExt(path, ".json")
	if err := rewriteDocument(path, doc); err != nil {
		return "", err
	}
	return path, nil
}

// rewriteDocument saves doc back to the exact path it was read from.
func rewriteDocument(path string, doc *model.ResumeDocument) error {
	data, err := model.Save(doc)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
