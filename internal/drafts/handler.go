package drafts

import (
	"bytes"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"resume-builder/internal/shared/server/middleware"
	"resume-builder/internal/shared/server/respond"
	"resume-builder/internal/shared/util"
	"resume-builder/resume/model"
)

const maxBodySize = 2 << 20 // 2MB

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches draft routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/drafts", h.create)
	rg.GET("/drafts", h.list)
	rg.GET("/drafts/:id", h.get)
	rg.PUT("/drafts/:id", h.replace)
	rg.DELETE("/drafts/:id", h.delete)
	rg.PUT("/drafts/:id/profile", h.updateProfile)
	rg.POST("/drafts/:id/experience", h.addExperience)
	rg.POST("/drafts/:id/projects", h.addProject)
	rg.POST("/drafts/:id/education", h.addEducation)
	rg.POST("/drafts/:id/skills", h.addSkill)
	rg.DELETE("/drafts/:id/:section/:entryId", h.removeEntry)
	rg.GET("/drafts/:id/preview", h.preview)
	rg.POST("/drafts/:id/export", h.export)
	rg.GET("/drafts/:id/exports/:sha", h.download)
}

func (h *Handler) create(c *gin.Context) {
	body, ok := readBody(c)
	if !ok {
		return
	}
	var doc *model.ResumeDocument
	if len(bytes.TrimSpace(body)) > 0 {
		loaded, err := model.Load(body)
		if err != nil {
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
			return
		}
		doc = loaded
	}

	d, err := h.Svc.Create(c.Request.Context(), doc)
	if err != nil {
		h.fail(c, err, "failed to create draft")
		return
	}
	c.Set(middleware.DraftIDKey, d.ID)
	respond.JSON(c, http.StatusCreated, toResponse(d, true))
}

func (h *Handler) list(c *gin.Context) {
	limit := 20
	offset := 0
	if v := c.Query("limit"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			limit = parsed
		}
	}
	if v := c.Query("offset"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			offset = parsed
		}
	}

	items, err := h.Svc.List(c.Request.Context(), limit, offset)
	if err != nil {
		h.fail(c, err, "failed to list drafts")
		return
	}
	resp := make([]DraftResponse, 0, len(items))
	for _, d := range items {
		resp = append(resp, toResponse(d, false))
	}
	respond.JSON(c, http.StatusOK, resp)
}

func (h *Handler) get(c *gin.Context) {
	id := draftID(c)
	d, err := h.Svc.Get(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err, "failed to fetch draft")
		return
	}
	respond.JSON(c, http.StatusOK, toResponse(d, true))
}

func (h *Handler) replace(c *gin.Context) {
	id := draftID(c)
	body, ok := readBody(c)
	if !ok {
		return
	}
	doc, err := model.Load(body)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		return
	}
	d, err := h.Svc.Replace(c.Request.Context(), id, doc)
	if err != nil {
		h.fail(c, err, "failed to replace draft")
		return
	}
	respond.JSON(c, http.StatusOK, toResponse(d, true))
}

func (h *Handler) delete(c *gin.Context) {
	if err := h.Svc.Delete(c.Request.Context(), draftID(c)); err != nil {
		h.fail(c, err, "failed to delete draft")
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) updateProfile(c *gin.Context) {
	id := draftID(c)
	var req ProfileInput
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	d, err := h.Svc.UpdateProfile(c.Request.Context(), id, req)
	if err != nil {
		h.fail(c, err, "failed to update profile")
		return
	}
	respond.JSON(c, http.StatusOK, toResponse(d, true))
}

func (h *Handler) addExperience(c *gin.Context) {
	var req model.ExperienceInput
	if !bindEntry(c, model.SectionExperience, &req) {
		return
	}
	entryID, err := h.Svc.AddExperience(c.Request.Context(), draftID(c), req)
	h.entryCreated(c, entryID, err)
}

func (h *Handler) addProject(c *gin.Context) {
	var req model.ProjectInput
	if !bindEntry(c, model.SectionProjects, &req) {
		return
	}
	entryID, err := h.Svc.AddProject(c.Request.Context(), draftID(c), req)
	h.entryCreated(c, entryID, err)
}

func (h *Handler) addEducation(c *gin.Context) {
	var req model.EducationInput
	if !bindEntry(c, model.SectionEducation, &req) {
		return
	}
	entryID, err := h.Svc.AddEducation(c.Request.Context(), draftID(c), req)
	h.entryCreated(c, entryID, err)
}

func (h *Handler) addSkill(c *gin.Context) {
	var req model.SkillInput
	if !bindEntry(c, model.SectionSkills, &req) {
		return
	}
	entryID, err := h.Svc.AddSkill(c.Request.Context(), draftID(c), req)
	h.entryCreated(c, entryID, err)
}

func (h *Handler) removeEntry(c *gin.Context) {
	id := draftID(c)
	section := c.Param("section")
	c.Set(middleware.SectionKey, section)
	if err := h.Svc.RemoveEntry(c.Request.Context(), id, section, c.Param("entryId")); err != nil {
		h.fail(c, err, "failed to remove entry")
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) preview(c *gin.Context) {
	res, err := h.Svc.Preview(c.Request.Context(), draftID(c))
	if err != nil {
		h.fail(c, err, "failed to render draft")
		return
	}
	c.Set(middleware.WarningsKey, len(res.Warnings))
	respond.HTML(c, http.StatusOK, res.HTML)
}

func (h *Handler) export(c *gin.Context) {
	id := draftID(c)
	exp, err := h.Svc.Export(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err, "failed to export draft")
		return
	}
	c.Set(middleware.WarningsKey, len(exp.Warnings))
	respond.JSON(c, http.StatusCreated, ExportResponse{
		Key:         exp.Key,
		SHA256:      exp.SHA256,
		SizeBytes:   exp.SizeBytes,
		DownloadURL: strings.TrimSuffix(c.Request.URL.Path, "/export") + "/exports/" + exp.SHA256,
		Warnings:    exp.Warnings,
	})
}

func (h *Handler) download(c *gin.Context) {
	id := draftID(c)
	d, err := h.Svc.Get(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err, "failed to fetch draft")
		return
	}
	rc, err := h.Svc.OpenExport(c.Request.Context(), id, c.Param("sha"))
	if err != nil {
		h.fail(c, err, "failed to open export")
		return
	}
	defer rc.Close()

	fileName := "resume.html"
	if name, err := util.SanitizeFileName(d.Name()); err == nil {
		fileName = util.EnsureExt(name, ".html")
	}
	c.Header("Content-Disposition", respond.ContentDisposition(fileName))
	c.DataFromReader(http.StatusOK, -1, exportMediaType, rc, nil)
}

func (h *Handler) entryCreated(c *gin.Context, entryID string, err error) {
	if err != nil {
		h.fail(c, err, "failed to add entry")
		return
	}
	respond.JSON(c, http.StatusCreated, gin.H{"id": entryID})
}

// fail maps service errors onto the standard error envelope.
func (h *Handler) fail(c *gin.Context, err error, fallback string) {
	var fieldErr *model.FieldError
	switch {
	case errors.As(err, &fieldErr):
		respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), gin.H{"field": fieldErr.Field})
	case errors.Is(err, ErrNotFound):
		respond.Error(c, http.StatusNotFound, "not_found", "draft not found", nil)
	case errors.Is(err, model.ErrEntryNotFound):
		respond.Error(c, http.StatusNotFound, "not_found", err.Error(), nil)
	case errors.Is(err, model.ErrUnknownSection), errors.Is(err, ErrInvalidInput):
		respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
	default:
		respond.Error(c, http.StatusInternalServerError, "internal_error", fallback, nil)
	}
}

func draftID(c *gin.Context) string {
	id := c.Param("id")
	c.Set(middleware.DraftIDKey, id)
	return id
}

func bindEntry(c *gin.Context, section model.Section, dst any) bool {
	draftID(c)
	c.Set(middleware.SectionKey, string(section))
	if err := c.ShouldBindJSON(dst); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return false
	}
	return true
}

func readBody(c *gin.Context) ([]byte, bool) {
	body, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, maxBodySize))
	if err != nil {
		respond.Error(c, http.StatusRequestEntityTooLarge, "payload_too_large", "request body too large", nil)
		return nil, false
	}
	return body, true
}
