package render

import (
	"strings"

	"resume-builder/resume/model"
	"resume-builder/resume/sanitize"
)

// block is the common shape of a timeline entry.
type block struct {
	start, end string
	title      string
	place      string
	location   string
	hasLoc     bool
	body       string
}

// ExperienceHTML renders one timeline block per entry, in slice order.
func ExperienceHTML(entries []model.ExperienceEntry) string {
	var b strings.Builder
	for _, e := range entries {
		writeBlock(&b, block{
			start:    e.StartDate,
			end:      e.EndDate,
			title:    e.Title,
			place:    e.Company,
			location: e.Location,
			hasLoc:   true,
			body:     bulletList(e.Bullets),
		})
	}
	return b.String()
}

// ProjectsHTML renders projects; the subtitle takes the place slot and
// there is no location.
func ProjectsHTML(entries []model.ProjectEntry) string {
	var b strings.Builder
	for _, p := range entries {
		writeBlock(&b, block{
			start: p.StartDate,
			end:   p.EndDate,
			title: p.Title,
			place: p.Subtitle,
			body:  bulletList(p.Bullets),
		})
	}
	return b.String()
}

// EducationHTML renders education entries with their notes as free text.
func EducationHTML(entries []model.EducationEntry) string {
	var b strings.Builder
	for _, e := range entries {
		writeBlock(&b, block{
			start:    e.StartDate,
			end:      e.EndDate,
			title:    e.Degree,
			place:    e.School,
			location: e.Location,
			hasLoc:   true,
			body:     "<div>" + sanitize.Escape(e.Notes) + "</div>",
		})
	}
	return b.String()
}

// SkillsHTML renders one two-item list per group: bold category, then skills.
func SkillsHTML(groups []model.SkillGroup) string {
	var b strings.Builder
	for _, g := range groups {
		b.WriteString("<ul><li><strong>")
		b.WriteString(sanitize.Escape(g.Category))
		b.WriteString(":</strong></li><li>")
		b.WriteString(sanitize.Escape(g.Skills))
		b.WriteString("</li></ul>\n")
	}
	return b.String()
}

// writeBlock stacks the end date above the start date; that is a visual
// convention, entries are never re-ordered by date.
func writeBlock(b *strings.Builder, blk block) {
	b.WriteString("\n        <section class=\"" + ClassBlocks + "\">\n")
	b.WriteString("            <div class=\"" + ClassDate + "\"><span>")
	b.WriteString(sanitize.Escape(blk.end))
	b.WriteString("</span><span>")
	b.WriteString(sanitize.Escape(blk.start))
	b.WriteString("</span></div>\n")
	b.WriteString("            <div class=\"" + ClassDecorator + "\"></div>\n")
	b.WriteString("            <div class=\"" + ClassDetails + "\">\n")
	b.WriteString("                <header><h3>")
	b.WriteString(sanitize.Escape(blk.title))
	b.WriteString("</h3><span class=\"" + ClassPlace + "\">")
	b.WriteString(sanitize.Escape(blk.place))
	b.WriteString("</span>")
	if blk.hasLoc {
		b.WriteString("<span class=\"" + ClassLocation + "\">")
		b.WriteString(sanitize.Escape(blk.location))
		b.WriteString("</span>")
	}
	b.WriteString("</header>\n")
	b.WriteString("                ")
	b.WriteString(blk.body)
	b.WriteString("\n            </div>\n")
	b.WriteString("        </section>")
}

func bulletList(bullets []string) string {
	var b strings.Builder
	b.WriteString("<div><ul>")
	for _, item := range bullets {
		b.WriteString("<li>")
		b.WriteString(sanitize.Escape(item))
		b.WriteString("</li>")
	}
	b.WriteString("</ul></div>")
	return b.String()
}
