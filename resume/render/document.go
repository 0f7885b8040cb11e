// Package render turns a ResumeDocument into a self-contained HTML page.
package render

import (
	"net/url"
	"strings"

	"resume-builder/resume/model"
	"resume-builder/resume/sanitize"
)

// PlaceholderName is shown when the document has no name.
const PlaceholderName = "Your Name"

// FallbackDocument is returned when no template can be resolved.
const FallbackDocument = `<!DOCTYPE html>
<html lang="en">
<head><meta charset="utf-8"><title>Resume</title></head>
<body><p>Resume template not found</p></body>
</html>
`

// Renderer renders documents with templates from Source. It keeps no state
// between calls and is safe for concurrent use.
type Renderer struct {
	Source TemplateSource
}

// NewRenderer returns a Renderer; a nil source means the built-in template.
func NewRenderer(src TemplateSource) *Renderer {
	if src == nil {
		src = EmbeddedSource()
	}
	return &Renderer{Source: src}
}

// Render never fails: a missing template yields FallbackDocument and
// missing fields render as empty strings or placeholder text.
func (r *Renderer) Render(doc *model.ResumeDocument) string {
	tmpl, ok := r.resolve()
	if !ok {
		return FallbackDocument
	}
	return tmpl.Fill(Values(doc))
}

// Values computes the escaped substitution value for every slot.
func Values(doc *model.ResumeDocument) map[string]string {
	if doc == nil {
		doc = model.New()
	}
	name := doc.Name
	if strings.TrimSpace(name) == "" {
		name = PlaceholderName
	}
	website := doc.Contact.Website
	emailHref := ""
	if doc.Contact.Email != "" {
		emailHref = "mailto:" + sanitize.Escape(doc.Contact.Email)
	}
	return map[string]string{
		SlotName:           sanitize.Escape(name),
		SlotSubtitle:       sanitize.Escape(doc.Subtitle),
		SlotExperience:     ExperienceHTML(doc.Experience),
		SlotProjects:       ProjectsHTML(doc.Projects),
		SlotEducation:      EducationHTML(doc.Education),
		SlotSkills:         SkillsHTML(doc.Skills),
		SlotWebsite:        sanitize.Escape(LinkTarget(website)),
		SlotWebsiteDisplay: sanitize.Escape(WebsiteDisplay(website)),
		SlotEmail:          sanitize.Escape(doc.Contact.Email),
		SlotEmailHref:      emailHref,
		SlotPhone:          sanitize.Escape(doc.Contact.Phone),
	}
}

// WebsiteDisplay strips a leading http:// or https:// scheme.
func WebsiteDisplay(website string) string {
	if rest, ok := strings.CutPrefix(website, "https://"); ok {
		return rest
	}
	return strings.TrimPrefix(website, "http://")
}

// LinkTarget returns website for use as an href when it has no scheme or an
// http, https or mailto one. Any other scheme, or text that does not parse
// as a URL, yields "".
func LinkTarget(website string) string {
	target := strings.TrimSpace(website)
	if target == "" {
		return ""
	}
	u, err := url.Parse(target)
	if err != nil {
		return ""
	}
	switch strings.ToLower(u.Scheme) {
	case "", "http", "https", "mailto":
		return target
	}
	return ""
}

func (r *Renderer) resolve() (Template, bool) {
	if r == nil || r.Source == nil {
		return EmbeddedSource().Resolve()
	}
	return r.Source.Resolve()
}
