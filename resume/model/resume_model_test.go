package model

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-builder/resume/validate"
)

func sampleDocument(t *testing.T) *ResumeDocument {
	t.Helper()
	doc := New()
	doc.SetHeader("Jane Doe", "Senior Software Engineer")
	require.NoError(t, doc.SetContact(Contact{Website: "https://jane.dev", Email: "jane@example.com", Phone: "555-0100"}))
	_, err := doc.AddExperience(ExperienceInput{
		Title: "Engineer", Company: "Acme", Location: "Remote",
		StartDate: "Jan 2020", EndDate: "Present",
		Bullets: []string{"Shipped things", "  ", "Fixed things"},
	})
	require.NoError(t, err)
	_, err = doc.AddProject(ProjectInput{Title: "CLI", Subtitle: "Go tool", StartDate: "2023", EndDate: "2024"})
	require.NoError(t, err)
	_, err = doc.AddEducation(EducationInput{Degree: "BS", School: "State U", StartDate: "2012", EndDate: "2016", Notes: "Honors"})
	require.NoError(t, err)
	_, err = doc.AddSkill(SkillInput{Category: "Languages", Skills: "Go, SQL"})
	require.NoError(t, err)
	return doc
}

func TestAddExperienceNormalizesAndKeepsOrder(t *testing.T) {
	doc := New()
	for _, title := range []string{"A", "B", "C"} {
		_, err := doc.AddExperience(ExperienceInput{Title: "  " + title + "  ", Company: "Co"})
		require.NoError(t, err)
	}
	require.Len(t, doc.Experience, 3)
	assert.Equal(t, "A", doc.Experience[0].Title)
	assert.Equal(t, "B", doc.Experience[1].Title)
	assert.Equal(t, "C", doc.Experience[2].Title)
	assert.Equal(t, []string{}, doc.Experience[0].Bullets)
}

func TestAddStoresRawTextUnescaped(t *testing.T) {
	doc := New()
	_, err := doc.AddExperience(ExperienceInput{Title: "R&D <lead>", Company: "Acme"})
	require.NoError(t, err)
	assert.Equal(t, "R&D <lead>", doc.Experience[0].Title)
}

func TestAddRejectsMissingRequiredFields(t *testing.T) {
	doc := New()

	_, err := doc.AddExperience(ExperienceInput{Title: "Engineer", Company: "   "})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRequiredField)
	assert.Equal(t, "company is required", err.Error())

	_, err = doc.AddProject(ProjectInput{})
	assert.ErrorIs(t, err, ErrRequiredField)

	_, err = doc.AddEducation(EducationInput{Degree: "BS"})
	assert.ErrorIs(t, err, ErrRequiredField)

	_, err = doc.AddSkill(SkillInput{Category: "Go"})
	assert.ErrorIs(t, err, ErrRequiredField)

	assert.Empty(t, doc.Experience)
	assert.Empty(t, doc.Projects)
	assert.Empty(t, doc.Education)
	assert.Empty(t, doc.Skills)
}

func TestAddRejectsInvalidDates(t *testing.T) {
	doc := New()
	_, err := doc.AddExperience(ExperienceInput{Title: "Engineer", Company: "Acme", StartDate: "Not a date"})
	require.Error(t, err)
	assert.ErrorIs(t, err, validate.ErrInvalidDateFormat)

	var fieldErr *FieldError
	require.True(t, errors.As(err, &fieldErr))
	assert.Equal(t, "start_date", fieldErr.Field)
	assert.Empty(t, doc.Experience)
}

func TestSetContactRejectsInvalidEmail(t *testing.T) {
	doc := New()
	require.NoError(t, doc.SetContact(Contact{Email: "ok@example.com"}))
	err := doc.SetContact(Contact{Email: "test@"})
	assert.ErrorIs(t, err, validate.ErrInvalidEmailFormat)
	assert.Equal(t, "ok@example.com", doc.Contact.Email)
}

func TestRemoveByIDWithDuplicates(t *testing.T) {
	doc := New()
	first, err := doc.AddSkill(SkillInput{Category: "Go", Skills: "yes"})
	require.NoError(t, err)
	second, err := doc.AddSkill(SkillInput{Category: "Go", Skills: "yes"})
	require.NoError(t, err)
	require.NotEqual(t, first, second)

	require.NoError(t, doc.Remove(SectionSkills, second))
	require.Len(t, doc.Skills, 1)
	assert.Equal(t, first, doc.Skills[0].ID)

	err = doc.Remove(SectionSkills, second)
	assert.ErrorIs(t, err, ErrEntryNotFound)
	assert.ErrorIs(t, doc.Remove(Section("awards"), first), ErrUnknownSection)
}

func TestParseSection(t *testing.T) {
	for raw, want := range map[string]Section{
		"experience": SectionExperience,
		"Project":    SectionProjects,
		"education":  SectionEducation,
		"skill":      SectionSkills,
	} {
		got, err := ParseSection(raw)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := ParseSection("hobbies")
	assert.ErrorIs(t, err, ErrUnknownSection)
}

func TestCloneIsDeep(t *testing.T) {
	doc := sampleDocument(t)
	clone := doc.Clone()
	assert.Equal(t, doc, clone)

	clone.Experience[0].Bullets[0] = "changed"
	clone.Skills[0].Skills = "changed"
	assert.Equal(t, "Shipped things", doc.Experience[0].Bullets[0])
	assert.Equal(t, "Go, SQL", doc.Skills[0].Skills)
}

func TestIssuesReportsWithoutMutating(t *testing.T) {
	doc := New()
	doc.Contact.Email = "broken@"
	doc.Experience = append(doc.Experience, ExperienceEntry{Title: "T", Company: "C", StartDate: "whenever", EndDate: "Present"})
	doc.Education = append(doc.Education, EducationEntry{Degree: "D", School: "S", EndDate: "someday"})

	issues := doc.Issues()
	require.Len(t, issues, 3)
	assert.Contains(t, issues[0].Error(), "contact.email")
	assert.Contains(t, issues[1].Error(), "experience[0].start_date")
	assert.Contains(t, issues[2].Error(), "education[0].end_date")
	assert.Equal(t, "whenever", doc.Experience[0].StartDate)
}

func TestSplitBullets(t *testing.T) {
	assert.Equal(t, []string{"one", "two"}, SplitBullets("one\n\n  two  \n"))
	assert.Nil(t, SplitBullets("  \n"))
	assert.True(t, strings.HasPrefix(SplitBullets("a\r\nb")[0], "a"))
}
