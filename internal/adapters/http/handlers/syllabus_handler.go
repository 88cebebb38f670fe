package handlers

import (
	"errors"
	"log"
	"strings"

	"campus-connect/internal/adapters/persistence/models"
	"campus-connect/internal/adapters/persistence/repositories"
	"campus-connect/internal/core/services"
	"campus-connect/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// SyllabusHandler handles syllabus upload, mind maps and attachments
type SyllabusHandler struct {
	syllabusRepo repositories.SyllabusRepository
	uploader     services.Uploader
}

// NewSyllabusHandler creates a new syllabus handler
func NewSyllabusHandler(syllabusRepo repositories.SyllabusRepository, uploader services.Uploader) *SyllabusHandler {
	return &SyllabusHandler{syllabusRepo: syllabusRepo, uploader: uploader}
}

// UploadSyllabusRequest represents the syllabus creation body
type UploadSyllabusRequest struct {
	Title      string `json:"title"`
	ContentRaw string `json:"content_raw"`
	MindMap    string `json:"mind_map"`
}

// MindMapRequest represents the mind map update body
type MindMapRequest struct {
	MindMap string `json:"mind_map"`
}

// Upload creates a syllabus (admin only)
// @Summary Upload syllabus
// @Tags Syllabus
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body UploadSyllabusRequest true "Syllabus content"
// @Success 201 {object} response.Response
// @Router /syllabus/upload [post]
func (h *SyllabusHandler) Upload(c *fiber.Ctx) error {
	var req UploadSyllabusRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if strings.TrimSpace(req.Title) == "" || strings.TrimSpace(req.ContentRaw) == "" {
		return response.BadRequest(c, "Title and content are required")
	}

	userID, _ := c.Locals("userID").(uint)
	syllabus := &models.Syllabus{
		Title:      strings.TrimSpace(req.Title),
		ContentRaw: req.ContentRaw,
		MindMap:    req.MindMap,
		UploadedBy: userID,
	}
	if err := h.syllabusRepo.Create(c.Context(), syllabus); err != nil {
		return response.InternalServerError(c, "Failed to upload syllabus")
	}

	return response.Created(c, "Syllabus uploaded", fiber.Map{"syllabus": syllabus})
}

// List returns every syllabus with attachments
// @Summary List syllabi
// @Tags Syllabus
// @Produce json
// @Success 200 {object} response.Response
// @Router /syllabus/all [get]
func (h *SyllabusHandler) List(c *fiber.Ctx) error {
	syllabi, err := h.syllabusRepo.List(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to load syllabi")
	}
	return response.Success(c, "Syllabi retrieved", fiber.Map{"syllabi": syllabi})
}

// Get returns a single syllabus with attachments
// @Summary Get syllabus
// @Tags Syllabus
// @Produce json
// @Param id path int true "Syllabus ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /syllabus/{id} [get]
func (h *SyllabusHandler) Get(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return response.BadRequest(c, "Invalid syllabus id")
	}

	syllabus, err := h.syllabusRepo.GetByID(c.Context(), uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NotFound(c, "Syllabus not found")
		}
		return response.InternalServerError(c, "Failed to load syllabus")
	}

	return response.Success(c, "Syllabus retrieved", fiber.Map{"syllabus": syllabus})
}

// UpdateMindMap replaces the serialized mind map (admin only)
// @Summary Update mind map
// @Tags Syllabus
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Syllabus ID"
// @Param body body MindMapRequest true "Mind map payload"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /syllabus/update-mindmap/{id} [put]
func (h *SyllabusHandler) UpdateMindMap(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return response.BadRequest(c, "Invalid syllabus id")
	}

	var req MindMapRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	syllabus, err := h.syllabusRepo.UpdateMindMap(c.Context(), uint(id), req.MindMap)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NotFound(c, "Syllabus not found")
		}
		return response.InternalServerError(c, "Failed to update mind map")
	}

	return response.Success(c, "Mind map updated", fiber.Map{"syllabus": syllabus})
}

// AddAttachment attaches a file or a link to a syllabus (admin only).
// Multipart with a "file" part uploads to the media host; without one
// the "url" form value is stored as a link-style attachment.
// @Summary Add attachment
// @Tags Syllabus
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Param id path int true "Syllabus ID"
// @Param type formData string true "Attachment type (pdf, ppt, image, link)"
// @Param name formData string true "Display name"
// @Param file formData file false "Attachment file"
// @Param url formData string false "Link URL (when no file)"
// @Success 201 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /syllabus/add-attachment/{id} [post]
func (h *SyllabusHandler) AddAttachment(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return response.BadRequest(c, "Invalid syllabus id")
	}

	attachmentType := strings.TrimSpace(c.FormValue("type"))
	name := strings.TrimSpace(c.FormValue("name"))
	if !models.IsValidAttachmentType(attachmentType) {
		return response.BadRequest(c, "Invalid attachment type (pdf, ppt, image, link)")
	}
	if name == "" {
		return response.BadRequest(c, "Attachment name is required")
	}

	if _, err := h.syllabusRepo.GetByID(c.Context(), uint(id)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NotFound(c, "Syllabus not found")
		}
		return response.InternalServerError(c, "Failed to load syllabus")
	}

	attachment := &models.SyllabusAttachment{
		SyllabusID: uint(id),
		Type:       attachmentType,
		Name:       name,
	}

	if file, err := c.FormFile("file"); err == nil {
		result, err := h.uploader.Upload(c.Context(), file)
		if err != nil {
			return response.BadRequest(c, "Attachment upload failed")
		}
		attachment.URL = result.URL
		attachment.CloudinaryID = result.PublicID
	} else {
		url := strings.TrimSpace(c.FormValue("url"))
		if url == "" {
			return response.BadRequest(c, "Either a file or a url is required")
		}
		attachment.URL = url
	}

	if err := h.syllabusRepo.AddAttachment(c.Context(), attachment); err != nil {
		return response.InternalServerError(c, "Failed to save attachment")
	}

	return response.Created(c, "Attachment added", fiber.Map{"attachment": attachment})
}

// DeleteAttachment removes an attachment row; media cleanup is
// best-effort and only logged on failure (admin only)
// @Summary Delete attachment
// @Tags Syllabus
// @Produce json
// @Security BearerAuth
// @Param id path int true "Syllabus ID"
// @Param attachmentId path int true "Attachment ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /syllabus/delete-attachment/{id}/{attachmentId} [delete]
func (h *SyllabusHandler) DeleteAttachment(c *fiber.Ctx) error {
	syllabusID, err := c.ParamsInt("id")
	if err != nil || syllabusID < 1 {
		return response.BadRequest(c, "Invalid syllabus id")
	}
	attachmentID, err := c.ParamsInt("attachmentId")
	if err != nil || attachmentID < 1 {
		return response.BadRequest(c, "Invalid attachment id")
	}

	syllabus, err := h.syllabusRepo.GetByID(c.Context(), uint(syllabusID))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NotFound(c, "Syllabus not found")
		}
		return response.InternalServerError(c, "Failed to load syllabus")
	}

	for _, attachment := range syllabus.Attachments {
		if attachment.ID == uint(attachmentID) && attachment.CloudinaryID != "" {
			if err := h.uploader.Destroy(c.Context(), attachment.CloudinaryID); err != nil {
				log.Printf("⚠️ Attachment media cleanup failed for %d: %v", attachment.ID, err)
			}
			break
		}
	}

	if err := h.syllabusRepo.DeleteAttachment(c.Context(), uint(attachmentID)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NotFound(c, "Attachment not found")
		}
		return response.InternalServerError(c, "Failed to delete attachment")
	}

	return response.Success(c, "Attachment deleted", nil)
}

// Delete removes a syllabus and its attachments (admin only)
// @Summary Delete syllabus
// @Tags Syllabus
// @Produce json
// @Security BearerAuth
// @Param id path int true "Syllabus ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /syllabus/delete/{id} [delete]
func (h *SyllabusHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return response.BadRequest(c, "Invalid syllabus id")
	}

	syllabus, err := h.syllabusRepo.GetByID(c.Context(), uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NotFound(c, "Syllabus not found")
		}
		return response.InternalServerError(c, "Failed to load syllabus")
	}

	for _, attachment := range syllabus.Attachments {
		if attachment.CloudinaryID != "" {
			if err := h.uploader.Destroy(c.Context(), attachment.CloudinaryID); err != nil {
				log.Printf("⚠️ Attachment media cleanup failed for %d: %v", attachment.ID, err)
			}
		}
	}

	if err := h.syllabusRepo.Delete(c.Context(), uint(id)); err != nil {
		return response.InternalServerError(c, "Failed to delete syllabus")
	}

	return response.Success(c, "Syllabus deleted", nil)
}
