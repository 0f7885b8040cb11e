package drafts

import (
	"time"

	"resume-builder/resume/model"
)

// DraftResponse is the outward-facing representation of a draft.
type DraftResponse struct {
	DraftID   string                `json:"draftId"`
	Name      string                `json:"name"`
	CreatedAt time.Time             `json:"createdAt"`
	UpdatedAt time.Time             `json:"updatedAt"`
	Document  *model.ResumeDocument `json:"document,omitempty"`
}

// ExportResponse describes a stored export.
type ExportResponse struct {
	Key         string   `json:"key"`
	SHA256      string   `json:"sha256"`
	SizeBytes   int64    `json:"sizeBytes"`
	DownloadURL string   `json:"downloadUrl"`
	Warnings    []string `json:"warnings"`
}

func toResponse(d Draft, withDocument bool) DraftResponse {
	resp := DraftResponse{
		DraftID:   d.ID,
		Name:      d.Name(),
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
	if withDocument {
		resp.Document = d.Document
	}
	return resp
}
