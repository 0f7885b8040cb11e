package drafts

import (
	"time"

	"resume-builder/resume/model"
)

// Draft is a server-side résumé being edited.
type Draft struct {
	ID        string
	Document  *model.ResumeDocument
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Name returns the display name stored in the document.
func (d Draft) Name() string {
	if d.Document == nil {
		return ""
	}
	return d.Document.Name
}

func (d Draft) clone() Draft {
	out := d
	if d.Document != nil {
		out.Document = d.Document.Clone()
	}
	return out
}

// Export describes a rendered page written to the object store.
type Export struct {
	DraftID   string
	Key       string
	SHA256    string
	SizeBytes int64
	Warnings  []string
}
