package render

import "strings"

// Placeholder slot names. A template is expected to contain each as {{slot}}.
const (
	SlotName           = "name"
	SlotSubtitle       = "subtitle"
	SlotExperience     = "experience"
	SlotProjects       = "projects"
	SlotEducation      = "education"
	SlotSkills         = "skills"
	SlotWebsite        = "website"
	SlotWebsiteDisplay = "website_display"
	SlotEmail          = "email"
	SlotEmailHref      = "email_href"
	SlotPhone          = "phone"
)

// Slots is the fixed set of placeholders the renderer fills.
var Slots = []string{
	SlotName, SlotSubtitle,
	SlotExperience, SlotProjects, SlotEducation, SlotSkills,
	SlotWebsite, SlotWebsiteDisplay, SlotEmail, SlotPhone,
}

// OptionalSlots are filled when present but never reported by Missing, so
// older templates that spell out mailto:{{email}} keep working.
var OptionalSlots = []string{SlotEmailHref}

// Template is an HTML document containing {{slot}} placeholders.
type Template struct {
	Text   string
	Origin string
}

// Token returns the placeholder text for slot.
func Token(slot string) string {
	return "{{" + slot + "}}"
}

// Missing lists the slots that do not appear in the template.
func (t Template) Missing() []string {
	var out []string
	for _, slot := range Slots {
		if !strings.Contains(t.Text, Token(slot)) {
			out = append(out, slot)
		}
	}
	return out
}

// Fill substitutes every known slot in one left-to-right pass. Substituted
// values are never scanned again, so text that looks like a placeholder
// cannot pull in another slot. Unknown {{tokens}} are left as they are.
func (t Template) Fill(values map[string]string) string {
	pairs := make([]string, 0, (len(Slots)+len(OptionalSlots))*2)
	for _, slot := range Slots {
		pairs = append(pairs, Token(slot), values[slot])
	}
	for _, slot := range OptionalSlots {
		pairs = append(pairs, Token(slot), values[slot])
	}
	return strings.NewReplacer(pairs...).Replace(t.Text)
}
