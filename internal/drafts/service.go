package drafts

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"resume-builder/internal/preview"
	"resume-builder/internal/shared/metrics"
	"resume-builder/internal/shared/storage/object"
	"resume-builder/internal/shared/telemetry"
	"resume-builder/internal/shared/util"
	"resume-builder/resume/model"
)

const (
	maxListLimit    = 50
	exportMediaType = "text/html; charset=utf-8"
)

// Service contains business logic for drafts. Edits to one draft are
// serialized; different drafts proceed independently.
type Service struct {
	Repo      Repo
	Store     object.ObjectStore
	Previewer *preview.Service

	now     func() time.Time
	locksMu sync.Mutex
	locks   map[string]*draftLock
}

// draftLock is held per draft while any request is using it; the entry is
// dropped when the last holder releases.
type draftLock struct {
	mu   sync.Mutex
	refs int
}

// NewService wires a Service.
func NewService(repo Repo, store object.ObjectStore, pv *preview.Service) *Service {
	if pv == nil {
		pv = preview.New(nil)
	}
	return &Service{Repo: repo, Store: store, Previewer: pv, now: time.Now}
}

// ProfileInput replaces the header and, when Contact is set, the contact block.
type ProfileInput struct {
	Name     string         `json:"name"`
	Subtitle string         `json:"subtitle"`
	Contact  *model.Contact `json:"contact"`
}

// Create stores doc (or an empty document) as a new draft. Entries without
// an ID get one.
func (s *Service) Create(ctx context.Context, doc *model.ResumeDocument) (Draft, error) {
	if doc == nil {
		doc = model.New()
	} else {
		doc = doc.Clone()
	}
	doc.EnsureIDs()

	now := s.clock()
	d := Draft{ID: uuid.NewString(), Document: doc, CreatedAt: now, UpdatedAt: now}
	if err := s.Repo.Create(ctx, d); err != nil {
		return Draft{}, err
	}
	telemetry.Info("draft.created", map[string]any{"draft_id": d.ID})
	return d, nil
}

// Get returns a draft by ID.
func (s *Service) Get(ctx context.Context, id string) (Draft, error) {
	if strings.TrimSpace(id) == "" {
		return Draft{}, ErrInvalidInput
	}
	return s.Repo.Get(ctx, id)
}

// List returns drafts, most recently updated first.
func (s *Service) List(ctx context.Context, limit, offset int) ([]Draft, error) {
	if limit <= 0 || limit > maxListLimit {
		limit = maxListLimit
	}
	return s.Repo.List(ctx, limit, offset)
}

// Delete removes a draft. Exports already written are left in the store.
func (s *Service) Delete(ctx context.Context, id string) error {
	unlock := s.lock(id)
	defer unlock()
	if err := s.Repo.Delete(ctx, id); err != nil {
		return err
	}
	telemetry.Info("draft.deleted", map[string]any{"draft_id": id})
	return nil
}

// Replace swaps the whole document, as when loading a saved file into a draft.
func (s *Service) Replace(ctx context.Context, id string, doc *model.ResumeDocument) (Draft, error) {
	if doc == nil {
		return Draft{}, ErrInvalidInput
	}
	return s.mutate(ctx, id, func(current *model.ResumeDocument) error {
		next := doc.Clone()
		next.EnsureIDs()
		*current = *next
		return nil
	})
}

// UpdateProfile sets name and subtitle, and the contact block when given.
// An invalid email rejects the whole update.
func (s *Service) UpdateProfile(ctx context.Context, id string, in ProfileInput) (Draft, error) {
	return s.mutate(ctx, id, func(doc *model.ResumeDocument) error {
		if in.Contact != nil {
			if err := doc.SetContact(*in.Contact); err != nil {
				return err
			}
		}
		doc.SetHeader(in.Name, in.Subtitle)
		return nil
	})
}

// AddExperience appends a validated experience entry and returns its ID.
func (s *Service) AddExperience(ctx context.Context, id string, in model.ExperienceInput) (string, error) {
	return s.addEntry(ctx, id, model.SectionExperience, func(doc *model.ResumeDocument) (string, error) {
		return doc.AddExperience(in)
	})
}

// AddProject appends a validated project entry and returns its ID.
func (s *Service) AddProject(ctx context.Context, id string, in model.ProjectInput) (string, error) {
	return s.addEntry(ctx, id, model.SectionProjects, func(doc *model.ResumeDocument) (string, error) {
		return doc.AddProject(in)
	})
}

// AddEducation appends a validated education entry and returns its ID.
func (s *Service) AddEducation(ctx context.Context, id string, in model.EducationInput) (string, error) {
	return s.addEntry(ctx, id, model.SectionEducation, func(doc *model.ResumeDocument) (string, error) {
		return doc.AddEducation(in)
	})
}

// AddSkill appends a skill group and returns its ID.
func (s *Service) AddSkill(ctx context.Context, id string, in model.SkillInput) (string, error) {
	return s.addEntry(ctx, id, model.SectionSkills, func(doc *model.ResumeDocument) (string, error) {
		return doc.AddSkill(in)
	})
}

// RemoveEntry deletes one entry by ID from the named section.
func (s *Service) RemoveEntry(ctx context.Context, id, section, entryID string) error {
	sec, err := model.ParseSection(section)
	if err != nil {
		return err
	}
	_, err = s.mutate(ctx, id, func(doc *model.ResumeDocument) error {
		return doc.Remove(sec, entryID)
	})
	return err
}

// Preview renders the draft. Validation issues are warnings, never errors.
func (s *Service) Preview(ctx context.Context, id string) (preview.Result, error) {
	d, err := s.Get(ctx, id)
	if err != nil {
		return preview.Result{}, err
	}
	pv := s.Previewer
	if pv == nil {
		pv = preview.New(nil)
	}
	return pv.Render(d.Document), nil
}

// Export renders the draft and writes it to the object store under a
// content-addressed key, so exporting an unchanged draft twice yields the
// same key.
func (s *Service) Export(ctx context.Context, id string) (Export, error) {
	if s.Store == nil {
		return Export{}, errors.New("object store not configured")
	}
	res, err := s.Preview(ctx, id)
	if err != nil {
		return Export{}, err
	}

	data := []byte(res.HTML)
	sum := util.HashContent(data)
	key := exportKey(id, sum)
	size, err := s.Store.Put(ctx, key, exportMediaType, bytes.NewReader(data))
	if err != nil {
		metrics.IncExportFailed()
		telemetry.Error("draft.export_failed", map[string]any{"draft_id": id, "err": err})
		return Export{}, fmt.Errorf("store export: %w", err)
	}
	metrics.IncExport()
	telemetry.Info("draft.exported", map[string]any{"draft_id": id, "key": key, "size_bytes": size})
	return Export{DraftID: id, Key: key, SHA256: sum, SizeBytes: size, Warnings: res.Warnings}, nil
}

// OpenExport streams a previously stored export.
func (s *Service) OpenExport(ctx context.Context, id, sum string) (io.ReadCloser, error) {
	if s.Store == nil || !isHexDigest(sum) {
		return nil, ErrNotFound
	}
	rc, err := s.Store.Open(ctx, exportKey(id, sum))
	if errors.Is(err, object.ErrNotFound) || errors.Is(err, object.ErrInvalidKey) {
		return nil, ErrNotFound
	}
	return rc, err
}

func (s *Service) addEntry(ctx context.Context, id string, section model.Section, add func(*model.ResumeDocument) (string, error)) (string, error) {
	var entryID string
	_, err := s.mutate(ctx, id, func(doc *model.ResumeDocument) error {
		var err error
		entryID, err = add(doc)
		return err
	})
	if err != nil {
		var fieldErr *model.FieldError
		if errors.As(err, &fieldErr) {
			metrics.IncEntryRejected()
			telemetry.Warn("draft.entry_rejected", map[string]any{"draft_id": id, "section": string(section), "field": fieldErr.Field})
		}
		return "", err
	}
	return entryID, nil
}

// mutate applies fn to a copy of the stored document and persists it only
// if fn succeeds.
func (s *Service) mutate(ctx context.Context, id string, fn func(*model.ResumeDocument) error) (Draft, error) {
	if strings.TrimSpace(id) == "" {
		return Draft{}, ErrInvalidInput
	}
	unlock := s.lock(id)
	defer unlock()

	d, err := s.Repo.Get(ctx, id)
	if err != nil {
		return Draft{}, err
	}
	doc := d.Document.Clone()
	if doc == nil {
		doc = model.New()
	}
	if err := fn(doc); err != nil {
		return Draft{}, err
	}
	d.Document = doc
	d.UpdatedAt = s.clock()
	if err := s.Repo.Update(ctx, d); err != nil {
		return Draft{}, err
	}
	return d, nil
}

func (s *Service) lock(id string) func() {
	s.locksMu.Lock()
	if s.locks == nil {
		s.locks = make(map[string]*draftLock)
	}
	l, ok := s.locks[id]
	if !ok {
		l = &draftLock{}
		s.locks[id] = l
	}
	l.refs++
	s.locksMu.Unlock()

	l.mu.Lock()
	return func() {
		l.mu.Unlock()
		s.locksMu.Lock()
		l.refs--
		if l.refs == 0 {
			delete(s.locks, id)
		}
		s.locksMu.Unlock()
	}
}

func (s *Service) lockCount() int {
	s.locksMu.Lock()
	defer s.locksMu.Unlock()
	return len(s.locks)
}

func (s *Service) clock() time.Time {
	if s.now == nil {
		return time.Now().UTC()
	}
	return s.now().UTC()
}

func exportKey(draftID, sum string) string {
	return path.Join("exports", draftID, sum+".html")
}

func isHexDigest(s string) bool {
	if len(s) != 64 {
		return false
	}
	for _, ch := range s {
		if !((ch >= 'a' && ch <= 'f') || (ch >= '0' && ch <= '9')) {
			return false
		}
	}
	return true
}
