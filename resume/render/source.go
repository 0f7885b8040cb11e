package render

import (
	_ "embed"
	"os"
)

// DefaultTemplatePaths are tried relative to the working directory.
var DefaultTemplatePaths = []string{
	"templates/resume_template.html",
	"resume_template.html",
	"../templates/resume_template.html",
}

//go:embed templates/resume_template.html
var builtinTemplate string

// TemplateSource resolves the HTML template used for a render.
type TemplateSource interface {
	Resolve() (Template, bool)
}

// FileSource returns the first readable file in Paths. Missing files,
// directories and permission errors all count as "not found".
type FileSource struct {
	Paths []string
}

// Resolve implements TemplateSource.
func (s FileSource) Resolve() (Template, bool) {
	for _, path := range s.Paths {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		return Template{Text: string(data), Origin: path}, true
	}
	return Template{}, false
}

type embeddedSource struct{}

func (embeddedSource) Resolve() (Template, bool) {
	return Template{Text: builtinTemplate, Origin: "builtin"}, true
}

// EmbeddedSource returns the template compiled into the binary.
func EmbeddedSource() TemplateSource {
	return embeddedSource{}
}

// Chain tries each source in order.
type Chain []TemplateSource

// Resolve implements TemplateSource.
func (c Chain) Resolve() (Template, bool) {
	for _, src := range c {
		if src == nil {
			continue
		}
		if tmpl, ok := src.Resolve(); ok {
			return tmpl, true
		}
	}
	return Template{}, false
}

// DefaultSource prefers template files on disk and falls back to the
// built-in template.
func DefaultSource(paths []string) TemplateSource {
	if len(paths) == 0 {
		paths = DefaultTemplatePaths
	}
	return Chain{FileSource{Paths: paths}, EmbeddedSource()}
}
