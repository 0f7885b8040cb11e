package model

import (
	"fmt"
	"strings"

	"resume-builder/resume/validate"
)

// Section names a list-typed part of the document.
type Section string

const (
	SectionExperience Section = "experience"
	SectionProjects   Section = "projects"
	SectionEducation  Section = "education"
	SectionSkills     Section = "skills"
)

// Sections lists every section in document order.
var Sections = []Section{SectionExperience, SectionProjects, SectionEducation, SectionSkills}

// ParseSection accepts the section name in plural or singular form.
func ParseSection(raw string) (Section, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "experience", "experiences":
		return SectionExperience, nil
	case "projects", "project":
		return SectionProjects, nil
	case "education", "educations":
		return SectionEducation, nil
	case "skills", "skill":
		return SectionSkills, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownSection, raw)
	}
}

// Remove deletes the entry with the given ID from section. Entries are
// matched by ID only, so duplicates with equal content are unaffected.
func (d *ResumeDocument) Remove(section Section, id string) error {
	var removed bool
	switch section {
	case SectionExperience:
		d.Experience, removed = removeByID(d.Experience, id, func(e ExperienceEntry) string { return e.ID })
	case SectionProjects:
		d.Projects, removed = removeByID(d.Projects, id, func(p ProjectEntry) string { return p.ID })
	case SectionEducation:
		d.Education, removed = removeByID(d.Education, id, func(e EducationEntry) string { return e.ID })
	case SectionSkills:
		d.Skills, removed = removeByID(d.Skills, id, func(s SkillGroup) string { return s.ID })
	default:
		return fmt.Errorf("%w: %q", ErrUnknownSection, section)
	}
	if !removed {
		return fmt.Errorf("%w: %s/%s", ErrEntryNotFound, section, id)
	}
	return nil
}

// Len returns the number of entries in section.
func (d *ResumeDocument) Len(section Section) int {
	switch section {
	case SectionExperience:
		return len(d.Experience)
	case SectionProjects:
		return len(d.Projects)
	case SectionEducation:
		return len(d.Education)
	case SectionSkills:
		return len(d.Skills)
	default:
		return 0
	}
}

// EnsureIDs assigns identifiers to entries stored without one and reports
// whether any were added.
func (d *ResumeDocument) EnsureIDs() bool {
	added := false
	mint := func(id *string) {
		if *id == "" {
			*id = newID()
			added = true
		}
	}
	for i := range d.Experience {
		mint(&d.Experience[i].ID)
	}
	for i := range d.Projects {
		mint(&d.Projects[i].ID)
	}
	for i := range d.Education {
		mint(&d.Education[i].ID)
	}
	for i := range d.Skills {
		mint(&d.Skills[i].ID)
	}
	return added
}

// Issues lists every date and email problem in the document without
// modifying it. Stored documents are still renderable when this is non-empty.
func (d *ResumeDocument) Issues() []error {
	var issues []error
	if err := validate.Email(d.Contact.Email); err != nil {
		issues = append(issues, &FieldError{Field: "contact.email", Err: err})
	}
	dates := func(prefix string, i int, start, end string) {
		if err := validate.Date(start); err != nil {
			issues = append(issues, &FieldError{Field: fmt.Sprintf("%s[%d].start_date", prefix, i), Err: err})
		}
		if err := validate.Date(end); err != nil {
			issues = append(issues, &FieldError{Field: fmt.Sprintf("%s[%d].end_date", prefix, i), Err: err})
		}
	}
	for i, e := range d.Experience {
		dates("experience", i, e.StartDate, e.EndDate)
	}
	for i, p := range d.Projects {
		dates("projects", i, p.StartDate, p.EndDate)
	}
	for i, e := range d.Education {
		dates("education", i, e.StartDate, e.EndDate)
	}
	return issues
}

func removeByID[T any](items []T, id string, idOf func(T) string) ([]T, bool) {
	for i, item := range items {
		if idOf(item) == id {
			out := make([]T, 0, len(items)-1)
			out = append(out, items[:i]...)
			return append(out, items[i+1:]...), true
		}
	}
	return items, false
}
