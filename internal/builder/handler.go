// Package builder serves the stateless résumé endpoints: the client sends
// the whole document on every call and nothing is kept server-side.
package builder

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"resume-builder/internal/preview"
	"resume-builder/internal/shared/server/middleware"
	"resume-builder/internal/shared/server/respond"
	"resume-builder/internal/shared/telemetry"
	"resume-builder/resume/model"
)

const (
	maxBodySize = 2 << 20 // 2MB

	ExportFileName = "resume.html"
	SaveFileName   = "resume_data.json"
)

// Handler wires the stateless endpoints to a preview service.
type Handler struct {
	Preview *preview.Service
}

// NewHandler constructs a Handler.
func NewHandler(pv *preview.Service) *Handler {
	if pv == nil {
		pv = preview.New(nil)
	}
	return &Handler{Preview: pv}
}

// RegisterRoutes attaches builder routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/preview", h.preview)
	rg.POST("/export", h.export)
	rg.POST("/save", h.save)
	rg.POST("/load", h.load)
	rg.POST("/validate", h.validate)
}

func (h *Handler) preview(c *gin.Context) {
	doc, ok := bindDocument(c, true)
	if !ok {
		return
	}
	res := h.Preview.Render(doc)
	c.Set(middleware.WarningsKey, len(res.Warnings))
	respond.OK(c, res)
}

func (h *Handler) export(c *gin.Context) {
	doc, ok := bindDocument(c, true)
	if !ok {
		return
	}
	res := h.Preview.Render(doc)
	c.Set(middleware.WarningsKey, len(res.Warnings))
	respond.Attachment(c, ExportFileName, respond.HTMLContentType, []byte(res.HTML))
}

func (h *Handler) save(c *gin.Context) {
	doc, ok := bindDocument(c, false)
	if !ok {
		return
	}
	doc.EnsureIDs()
	data, err := model.Save(doc)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to encode resume", nil)
		return
	}
	respond.Attachment(c, SaveFileName, "application/json; charset=utf-8", data)
}

func (h *Handler) load(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBodySize)
	fileHeader, err := c.FormFile("file")
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "No file provided", nil)
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "unable to read file", nil)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "unable to read file", nil)
		return
	}
	doc, err := model.Load(data)
	if err != nil {
		var missing *model.MissingKeyError
		switch {
		case errors.As(err, &missing):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), gin.H{"key": missing.Key})
		case errors.Is(err, model.ErrMalformedJSON):
			respond.Error(c, http.StatusBadRequest, "validation_error", "Invalid JSON: "+err.Error(), nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to load resume", nil)
		}
		return
	}
	telemetry.Info("builder.loaded", map[string]any{"file": fileHeader.Filename, "size_bytes": len(data)})
	respond.OK(c, gin.H{"data": doc})
}

func (h *Handler) validate(c *gin.Context) {
	doc, ok := bindDocument(c, false)
	if !ok {
		return
	}
	issues := preview.Warnings(doc)
	respond.OK(c, gin.H{"valid": len(issues) == 0, "issues": issues})
}

// bindDocument decodes a possibly partial document from the request body.
// Missing keys become empty values; only an absent body is an error, plus an
// empty name when requireName is set.
func bindDocument(c *gin.Context, requireName bool) (*model.ResumeDocument, bool) {
	body, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, maxBodySize))
	if err != nil {
		respond.Error(c, http.StatusRequestEntityTooLarge, "payload_too_large", "request body too large", nil)
		return nil, false
	}
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) || bytes.Equal(trimmed, []byte("{}")) {
		respond.Error(c, http.StatusBadRequest, "validation_error", "No data provided", nil)
		return nil, false
	}

	doc := model.New()
	if err := json.Unmarshal(trimmed, doc); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "Invalid JSON: "+err.Error(), nil)
		return nil, false
	}
	if requireName && strings.TrimSpace(doc.Name) == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "Name is required", nil)
		return nil, false
	}
	return doc, true
}
