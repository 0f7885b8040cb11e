package preview

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"resume-builder/resume/model"
	"resume-builder/resume/render"
)

func TestRenderCollectsWarningsWithoutBlocking(t *testing.T) {
	doc := model.New()
	doc.Name = "Jane"
	doc.Contact.Email = "not-an-email"
	doc.Experience = []model.ExperienceEntry{{Title: "Dev", Company: "Acme", StartDate: "Spring 2020"}}

	res := New(nil).Render(doc)

	assert.Contains(t, res.HTML, "<h1>Jane</h1>")
	assert.Contains(t, res.HTML, "Spring 2020")
	assert.Len(t, res.Warnings, 2)
	assert.True(t, strings.HasPrefix(res.Warnings[0], "contact.email: Invalid email format"))
	assert.Contains(t, res.Warnings[1], "experience[0].start_date")
}

func TestRenderReportsMissingTemplate(t *testing.T) {
	src := render.FileSource{Paths: []string{filepath.Join(t.TempDir(), "absent.html")}}
	res := New(render.NewRenderer(src)).Render(model.New())

	assert.Equal(t, render.FallbackDocument, res.HTML)
	assert.Equal(t, []string{TemplateMissingWarning}, res.Warnings)
}

func TestWarningsNeverNil(t *testing.T) {
	assert.NotNil(t, Warnings(nil))
	assert.Empty(t, Warnings(model.New()))
}
