package cli

import (
	"errors"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"resume-builder/resume/model"
	"resume-builder/resume/validate"
)

func formTheme() *huh.Theme {
	t := huh.ThemeBase()
	t.Focused.Title = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(colorAccent)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(colorAccent)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(colorDim)
	t.Focused.ErrorMessage = lipgloss.NewStyle().Foreground(colorRed)
	t.Focused.ErrorIndicator = lipgloss.NewStyle().Foreground(colorRed)
	return t
}

func requiredField(label string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return errors.New(label + " is required")
		}
		return nil
	}
}

func textInput(title string, required bool, value *string) *huh.Input {
	in := huh.NewInput().Title(title).Value(value)
	if required {
		in = in.Validate(requiredField(title))
	}
	return in
}

func dateInput(title string, value *string) *huh.Input {
	return huh.NewInput().
		Title(title).
		Placeholder(strings.Join(validate.DateExamples, " / ")).
		Value(value).
		Validate(validate.Date)
}

func bulletsInput(value *string) *huh.Text {
	return huh.NewText().
		Title("Bullets").
		Description("one per line").
		Value(value)
}

func runForm(fields ...huh.Field) error {
	return huh.NewForm(huh.NewGroup(fields...)).
		WithTheme(formTheme()).
		WithShowHelp(false).
		Run()
}

func promptExperience(in *model.ExperienceInput) error {
	bullets := strings.Join(in.Bullets, "\n")
	err := runForm(
		textInput("Job Title", true, &in.Title),
		textInput("Company", true, &in.Company),
		textInput("Location", false, &in.Location),
		dateInput("Start Date", &in.StartDate),
		dateInput("End Date", &in.EndDate),
		bulletsInput(&bullets),
	)
	in.Bullets = model.SplitBullets(bullets)
	return err
}

func promptProject(in *model.ProjectInput) error {
	bullets := strings.Join(in.Bullets, "\n")
	err := runForm(
		textInput("Project Title", true, &in.Title),
		textInput("Subtitle", false, &in.Subtitle),
		dateInput("Start Date", &in.StartDate),
		dateInput("End Date", &in.EndDate),
		bulletsInput(&bullets),
	)
	in.Bullets = model.SplitBullets(bullets)
	return err
}

func promptEducation(in *model.EducationInput) error {
	return runForm(
		textInput("Degree", true, &in.Degree),
		textInput("School", true, &in.School),
		textInput("Location", false, &in.Location),
		dateInput("Start Date", &in.StartDate),
		dateInput("End Date", &in.EndDate),
		huh.NewText().Title("Notes").Value(&in.Notes),
	)
}

func promptSkill(in *model.SkillInput) error {
	return runForm(
		textInput("Category", true, &in.Category),
		textInput("Skills", true, &in.Skills),
	)
}
