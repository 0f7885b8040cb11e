// Package preview renders documents for the HTTP surfaces and reports
// validation problems as warnings instead of failing.
package preview

import (
	"resume-builder/internal/shared/metrics"
	"resume-builder/internal/shared/telemetry"
	"resume-builder/resume/model"
	"resume-builder/resume/render"
)

// TemplateMissingWarning is reported when the fallback page was produced.
const TemplateMissingWarning = "Resume template not found"

// Result is a rendered page plus the non-blocking issues found in the document.
type Result struct {
	HTML     string   `json:"html"`
	Warnings []string `json:"warnings"`
}

// Service wraps a renderer with metrics and warning collection.
type Service struct {
	Renderer *render.Renderer
}

// New returns a Service; a nil renderer uses the built-in template.
func New(r *render.Renderer) *Service {
	if r == nil {
		r = render.NewRenderer(nil)
	}
	return &Service{Renderer: r}
}

// Render never fails. Date and email problems come back as warnings.
func (s *Service) Render(doc *model.ResumeDocument) Result {
	start := metrics.NowMillis()
	html := s.Renderer.Render(doc)
	metrics.IncRender()
	metrics.ObserveRenderDurationMs(metrics.NowMillis() - start)

	warnings := Warnings(doc)
	if html == render.FallbackDocument {
		metrics.IncTemplateMissing()
		telemetry.Warn("render.template_missing", nil)
		warnings = append(warnings, TemplateMissingWarning)
	}
	return Result{HTML: html, Warnings: warnings}
}

// Warnings lists document issues as display strings; never nil.
func Warnings(doc *model.ResumeDocument) []string {
	out := []string{}
	if doc == nil {
		return out
	}
	for _, err := range doc.Issues() {
		out = append(out, err.Error())
	}
	return out
}
