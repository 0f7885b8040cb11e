package model

import (
	"strings"

	"github.com/google/uuid"

	"resume-builder/resume/sanitize"
	"resume-builder/resume/validate"
)

// ExperienceInput is raw user input for a new experience entry.
type ExperienceInput struct {
	Title     string   `json:"title"`
	Company   string   `json:"company"`
	Location  string   `json:"location"`
	StartDate string   `json:"start_date"`
	EndDate   string   `json:"end_date"`
	Bullets   []string `json:"bullets"`
}

// ProjectInput is raw user input for a new project entry.
type ProjectInput struct {
	Title     string   `json:"title"`
	Subtitle  string   `json:"subtitle"`
	StartDate string   `json:"start_date"`
	EndDate   string   `json:"end_date"`
	Bullets   []string `json:"bullets"`
}

// EducationInput is raw user input for a new education entry.
type EducationInput struct {
	Degree    string `json:"degree"`
	School    string `json:"school"`
	Location  string `json:"location"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Notes     string `json:"notes"`
}

// SkillInput is raw user input for a new skill group.
type SkillInput struct {
	Category string `json:"category"`
	Skills   string `json:"skills"`
}

// AddExperience normalizes and validates in, then appends it. On error the
// document is left untouched.
func (d *ResumeDocument) AddExperience(in ExperienceInput) (string, error) {
	entry := ExperienceEntry{
		ID:        newID(),
		Title:     clean(in.Title),
		Company:   clean(in.Company),
		Location:  clean(in.Location),
		StartDate: clean(in.StartDate),
		EndDate:   clean(in.EndDate),
		Bullets:   cleanBullets(in.Bullets),
	}
	if err := firstError(
		required("title", entry.Title),
		required("company", entry.Company),
		checkDate("start_date", entry.StartDate),
		checkDate("end_date", entry.EndDate),
	); err != nil {
		return "", err
	}
	d.Experience = append(d.Experience, entry)
	return entry.ID, nil
}

// AddProject normalizes and validates in, then appends it.
func (d *ResumeDocument) AddProject(in ProjectInput) (string, error) {
	entry := ProjectEntry{
		ID:        newID(),
		Title:     clean(in.Title),
		Subtitle:  clean(in.Subtitle),
		StartDate: clean(in.StartDate),
		EndDate:   clean(in.EndDate),
		Bullets:   cleanBullets(in.Bullets),
	}
	if err := firstError(
		required("title", entry.Title),
		checkDate("start_date", entry.StartDate),
		checkDate("end_date", entry.EndDate),
	); err != nil {
		return "", err
	}
	d.Projects = append(d.Projects, entry)
	return entry.ID, nil
}

// AddEducation normalizes and validates in, then appends it.
func (d *ResumeDocument) AddEducation(in EducationInput) (string, error) {
	entry := EducationEntry{
		ID:        newID(),
		Degree:    clean(in.Degree),
		School:    clean(in.School),
		Location:  clean(in.Location),
		StartDate: clean(in.StartDate),
		EndDate:   clean(in.EndDate),
		Notes:     clean(in.Notes),
	}
	if err := firstError(
		required("degree", entry.Degree),
		required("school", entry.School),
		checkDate("start_date", entry.StartDate),
		checkDate("end_date", entry.EndDate),
	); err != nil {
		return "", err
	}
	d.Education = append(d.Education, entry)
	return entry.ID, nil
}

// AddSkill normalizes and validates in, then appends it.
func (d *ResumeDocument) AddSkill(in SkillInput) (string, error) {
	entry := SkillGroup{
		ID:       newID(),
		Category: clean(in.Category),
		Skills:   clean(in.Skills),
	}
	if err := firstError(
		required("category", entry.Category),
		required("skills", entry.Skills),
	); err != nil {
		return "", err
	}
	d.Skills = append(d.Skills, entry)
	return entry.ID, nil
}

// SetHeader replaces the name and subtitle.
func (d *ResumeDocument) SetHeader(name, subtitle string) {
	d.Name = clean(name)
	d.Subtitle = clean(subtitle)
}

// SetContact replaces the contact block. An invalid email is rejected and
// leaves the previous contact in place.
func (d *ResumeDocument) SetContact(c Contact) error {
	next := Contact{
		Website: clean(c.Website),
		Email:   clean(c.Email),
		Phone:   clean(c.Phone),
	}
	if err := validate.Email(next.Email); err != nil {
		return &FieldError{Field: "contact.email", Err: err}
	}
	d.Contact = next
	return nil
}

// SplitBullets turns multi-line text into one bullet per non-blank line.
func SplitBullets(text string) []string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func newID() string {
	return uuid.NewString()
}

func clean(s string) string {
	return sanitize.Normalize(s, sanitize.DefaultMaxLength)
}

func cleanBullets(in []string) []string {
	out := make([]string, 0, len(in))
	for _, b := range in {
		if c := clean(b); c != "" {
			out = append(out, c)
		}
	}
	return out
}

func required(field, value string) error {
	if value == "" {
		return &FieldError{Field: field, Err: ErrRequiredField}
	}
	return nil
}

func checkDate(field, value string) error {
	if err := validate.Date(value); err != nil {
		return &FieldError{Field: field, Err: err}
	}
	return nil
}

func firstError(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
