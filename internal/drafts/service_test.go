package drafts

import (
	"context"
	"errors"
	"io"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	localstore "resume-builder/internal/shared/storage/object/local"
	"resume-builder/resume/model"
	"resume-builder/resume/validate"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	svc := NewService(NewMemoryRepo(), localstore.New(t.TempDir()), nil)
	tick := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)
	var mu sync.Mutex
	svc.now = func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		tick = tick.Add(time.Second)
		return tick
	}
	return svc
}

func TestCreateAssignsIDsAndCopiesInput(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	in := model.New()
	in.Name = "Jane"
	in.Experience = []model.ExperienceEntry{{Title: "Dev", Company: "Acme"}}

	d, err := svc.Create(ctx, in)
	require.NoError(t, err)
	assert.NotEmpty(t, d.ID)
	assert.NotEmpty(t, d.Document.Experience[0].ID)
	assert.Empty(t, in.Experience[0].ID, "caller's document must not be modified")

	got, err := svc.Get(ctx, d.ID)
	require.NoError(t, err)
	assert.Equal(t, "Jane", got.Name())
}

func TestAddEntriesPreserveInsertionOrder(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)
	d, err := svc.Create(ctx, nil)
	require.NoError(t, err)

	for _, start := range []string{"2024", "2010", "2018"} {
		_, err := svc.AddExperience(ctx, d.ID, model.ExperienceInput{Title: "T" + start, Company: "X", StartDate: start})
		require.NoError(t, err)
	}

	got, err := svc.Get(ctx, d.ID)
	require.NoError(t, err)
	require.Len(t, got.Document.Experience, 3)
	assert.Equal(t, "T2024", got.Document.Experience[0].Title)
	assert.Equal(t, "T2010", got.Document.Experience[1].Title)
	assert.Equal(t, "T2018", got.Document.Experience[2].Title)
}

func TestAddRejectsInvalidDateAndLeavesDraftUnchanged(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)
	d, err := svc.Create(ctx, nil)
	require.NoError(t, err)

	_, err = svc.AddEducation(ctx, d.ID, model.EducationInput{Degree: "BS", School: "U", StartDate: "Spring 2020"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, validate.ErrInvalidDateFormat))
	var fieldErr *model.FieldError
	require.True(t, errors.As(err, &fieldErr))
	assert.Equal(t, "start_date", fieldErr.Field)

	_, err = svc.AddSkill(ctx, d.ID, model.SkillInput{Category: "", Skills: "Go"})
	assert.True(t, errors.Is(err, model.ErrRequiredField))

	got, err := svc.Get(ctx, d.ID)
	require.NoError(t, err)
	assert.Empty(t, got.Document.Education)
	assert.Empty(t, got.Document.Skills)
	assert.Equal(t, d.UpdatedAt, got.UpdatedAt)
}

func TestRemoveEntryByIDWithDuplicates(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)
	d, err := svc.Create(ctx, nil)
	require.NoError(t, err)

	in := model.ProjectInput{Title: "Same", Subtitle: "Same"}
	first, err := svc.AddProject(ctx, d.ID, in)
	require.NoError(t, err)
	second, err := svc.AddProject(ctx, d.ID, in)
	require.NoError(t, err)

	require.NoError(t, svc.RemoveEntry(ctx, d.ID, "project", second))

	got, err := svc.Get(ctx, d.ID)
	require.NoError(t, err)
	require.Len(t, got.Document.Projects, 1)
	assert.Equal(t, first, got.Document.Projects[0].ID)

	assert.True(t, errors.Is(svc.RemoveEntry(ctx, d.ID, "projects", second), model.ErrEntryNotFound))
	assert.True(t, errors.Is(svc.RemoveEntry(ctx, d.ID, "hobbies", first), model.ErrUnknownSection))
}

func TestUpdateProfileInvalidEmailKeepsPrevious(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)
	d, err := svc.Create(ctx, nil)
	require.NoError(t, err)

	_, err = svc.UpdateProfile(ctx, d.ID, ProfileInput{Name: "  Jane  ", Contact: &model.Contact{Email: "jane@example.com"}})
	require.NoError(t, err)

	_, err = svc.UpdateProfile(ctx, d.ID, ProfileInput{Name: "Other", Contact: &model.Contact{Email: "bad@"}})
	require.Error(t, err)
	assert.True(t, errors.Is(err, validate.ErrInvalidEmailFormat))

	got, err := svc.Get(ctx, d.ID)
	require.NoError(t, err)
	assert.Equal(t, "Jane", got.Document.Name)
	assert.Equal(t, "jane@example.com", got.Document.Contact.Email)
}

func TestPreviewReturnsWarningsWithoutBlocking(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	doc := model.New()
	doc.Name = "<b>Jane</b>"
	doc.Experience = []model.ExperienceEntry{{Title: "Dev", Company: "Acme", StartDate: "soon"}}
	d, err := svc.Create(ctx, doc)
	require.NoError(t, err)

	res, err := svc.Preview(ctx, d.ID)
	require.NoError(t, err)
	assert.Contains(t, res.HTML, "&lt;b&gt;Jane&lt;/b&gt;")
	require.Len(t, res.Warnings, 1)
	assert.Contains(t, res.Warnings[0], "experience[0].start_date")

	_, err = svc.Preview(ctx, "missing")
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestExportIsContentAddressed(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)
	d, err := svc.Create(ctx, nil)
	require.NoError(t, err)

	first, err := svc.Export(ctx, d.ID)
	require.NoError(t, err)
	again, err := svc.Export(ctx, d.ID)
	require.NoError(t, err)
	assert.Equal(t, first.Key, again.Key)
	assert.Equal(t, "exports/"+d.ID+"/"+first.SHA256+".html", first.Key)

	_, err = svc.UpdateProfile(ctx, d.ID, ProfileInput{Name: "Changed"})
	require.NoError(t, err)
	changed, err := svc.Export(ctx, d.ID)
	require.NoError(t, err)
	assert.NotEqual(t, first.Key, changed.Key)

	rc, err := svc.OpenExport(ctx, d.ID, changed.SHA256)
	require.NoError(t, err)
	defer rc.Close()
	body, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, changed.SizeBytes, int64(len(body)))
	assert.Contains(t, string(body), "<h1>Changed</h1>")

	_, err = svc.OpenExport(ctx, d.ID, "../../etc/passwd")
	assert.True(t, errors.Is(err, ErrNotFound))
	_, err = svc.OpenExport(ctx, d.ID, strings.Repeat("0", 64))
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestConcurrentAddsAreSerialized(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)
	d, err := svc.Create(ctx, nil)
	require.NoError(t, err)

	const n = 25
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.AddSkill(ctx, d.ID, model.SkillInput{Category: "Lang", Skills: "Go"})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	got, err := svc.Get(ctx, d.ID)
	require.NoError(t, err)
	assert.Len(t, got.Document.Skills, n)
	assert.Zero(t, svc.lockCount(), "locks are released once no request holds them")
}

func TestUnknownDraftsLeaveNoLocks(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	for i := 0; i < 1000; i++ {
		_, err := svc.AddSkill(ctx, "nope-"+strconv.Itoa(i), model.SkillInput{Category: "Lang", Skills: "Go"})
		require.True(t, errors.Is(err, ErrNotFound))
	}
	assert.Zero(t, svc.lockCount())

	d, err := svc.Create(ctx, nil)
	require.NoError(t, err)
	_, err = svc.UpdateProfile(ctx, d.ID, ProfileInput{Name: "Jane"})
	require.NoError(t, err)
	require.NoError(t, svc.Delete(ctx, d.ID))
	assert.Zero(t, svc.lockCount())
}

func TestDeleteAndList(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)
	a, err := svc.Create(ctx, nil)
	require.NoError(t, err)
	b, err := svc.Create(ctx, nil)
	require.NoError(t, err)

	list, err := svc.List(ctx, 0, 0)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, b.ID, list[0].ID, "most recently updated first")

	require.NoError(t, svc.Delete(ctx, a.ID))
	assert.True(t, errors.Is(svc.Delete(ctx, a.ID), ErrNotFound))
	_, err = svc.Get(ctx, a.ID)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestReplaceSwapsDocument(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)
	d, err := svc.Create(ctx, nil)
	require.NoError(t, err)

	next := model.New()
	next.Name = "Loaded"
	next.Skills = []model.SkillGroup{{Category: "Tools", Skills: "Git"}}
	got, err := svc.Replace(ctx, d.ID, next)
	require.NoError(t, err)
	assert.Equal(t, "Loaded", got.Name())
	assert.NotEmpty(t, got.Document.Skills[0].ID)

	_, err = svc.Replace(ctx, d.ID, nil)
	assert.True(t, errors.Is(err, ErrInvalidInput))
}
