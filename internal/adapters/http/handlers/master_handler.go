package handlers

import (
	"errors"
	"strings"
	"time"

	"campus-connect/internal/adapters/persistence/models"
	"campus-connect/internal/adapters/persistence/repositories"
	"campus-connect/internal/pkg/pagination"
	"campus-connect/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// MasterHandler handles the course catalog and fee records
type MasterHandler struct {
	masterRepo repositories.MasterRepository
}

// NewMasterHandler creates a new master handler
func NewMasterHandler(masterRepo repositories.MasterRepository) *MasterHandler {
	return &MasterHandler{masterRepo: masterRepo}
}

// CourseRequest represents the course create/update body
type CourseRequest struct {
	Code        string `json:"code"`
	Name        string `json:"name"`
	Duration    string `json:"duration"`
	Description string `json:"description"`
}

// FeeRequest represents the fee create/update body
type FeeRequest struct {
	UserID   uint    `json:"user_id"`
	CourseID *uint   `json:"course_id"`
	Amount   float64 `json:"amount"`
	Semester string  `json:"semester"`
	DueDate  string  `json:"due_date"`
	Status   string  `json:"status"`
	Remark   string  `json:"remark"`
}

// ============================================================
// Courses
// ============================================================

// ListCourses returns the course catalog (public)
// @Summary List courses
// @Tags Course
// @Produce json
// @Success 200 {object} response.Response
// @Router /course/all [get]
func (h *MasterHandler) ListCourses(c *fiber.Ctx) error {
	courses, err := h.masterRepo.ListCourses(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to load courses")
	}
	return response.Success(c, "Courses retrieved", fiber.Map{"courses": courses})
}

// CreateCourse adds a course (admin only)
// @Summary Create course
// @Tags Course
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body CourseRequest true "Course details"
// @Success 201 {object} response.Response
// @Router /course/create [post]
func (h *MasterHandler) CreateCourse(c *fiber.Ctx) error {
	var req CourseRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if strings.TrimSpace(req.Code) == "" || strings.TrimSpace(req.Name) == "" {
		return response.BadRequest(c, "Course code and name are required")
	}

	course := &models.Course{
		Code:        strings.ToUpper(strings.TrimSpace(req.Code)),
		Name:        strings.TrimSpace(req.Name),
		Duration:    req.Duration,
		Description: req.Description,
	}
	if err := h.masterRepo.CreateCourse(c.Context(), course); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return response.Conflict(c, "Course code already exists")
		}
		return response.InternalServerError(c, "Failed to create course")
	}

	return response.Created(c, "Course created", fiber.Map{"course": course})
}

// UpdateCourse edits a course (admin only)
// @Summary Update course
// @Tags Course
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Course ID"
// @Param body body CourseRequest true "Course details"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /course/update/{id} [put]
func (h *MasterHandler) UpdateCourse(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return response.BadRequest(c, "Invalid course id")
	}

	var req CourseRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	course, err := h.masterRepo.GetCourse(c.Context(), uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NotFound(c, "Course not found")
		}
		return response.InternalServerError(c, "Failed to load course")
	}

	if strings.TrimSpace(req.Code) != "" {
		course.Code = strings.ToUpper(strings.TrimSpace(req.Code))
	}
	if strings.TrimSpace(req.Name) != "" {
		course.Name = strings.TrimSpace(req.Name)
	}
	if req.Duration != "" {
		course.Duration = req.Duration
	}
	if req.Description != "" {
		course.Description = req.Description
	}

	if err := h.masterRepo.UpdateCourse(c.Context(), course); err != nil {
		return response.InternalServerError(c, "Failed to update course")
	}

	return response.Success(c, "Course updated", fiber.Map{"course": course})
}

// DeleteCourse removes a course (admin only, soft delete)
// @Summary Delete course
// @Tags Course
// @Produce json
// @Security BearerAuth
// @Param id path int true "Course ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /course/delete/{id} [delete]
func (h *MasterHandler) DeleteCourse(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return response.BadRequest(c, "Invalid course id")
	}

	if err := h.masterRepo.DeleteCourse(c.Context(), uint(id)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NotFound(c, "Course not found")
		}
		return response.InternalServerError(c, "Failed to delete course")
	}

	return response.Success(c, "Course deleted", nil)
}

// ============================================================
// Fees
// ============================================================

// CreateFee records a fee against a student (admin only)
// @Summary Create fee
// @Tags Fee
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body FeeRequest true "Fee details"
// @Success 201 {object} response.Response
// @Router /fee/create [post]
func (h *MasterHandler) CreateFee(c *fiber.Ctx) error {
	var req FeeRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if req.UserID == 0 || req.Amount <= 0 {
		return response.BadRequest(c, "User id and a positive amount are required")
	}
	if req.Status == "" {
		req.Status = models.FeeStatusPending
	}
	if req.Status != models.FeeStatusPending && req.Status != models.FeeStatusPaid {
		return response.BadRequest(c, "Invalid fee status (pending, paid)")
	}

	fee := &models.Fee{
		UserID:   req.UserID,
		CourseID: req.CourseID,
		Amount:   req.Amount,
		Semester: req.Semester,
		Status:   req.Status,
		Remark:   req.Remark,
	}
	if req.DueDate != "" {
		due, err := time.Parse("2006-01-02", req.DueDate)
		if err != nil {
			return response.BadRequest(c, "Invalid due date format")
		}
		fee.DueDate = &due
	}

	if err := h.masterRepo.CreateFee(c.Context(), fee); err != nil {
		return response.InternalServerError(c, "Failed to create fee")
	}

	return response.Created(c, "Fee created", fiber.Map{"fee": fee})
}

// MyFees lists the caller's fee records (student)
// @Summary List own fees
// @Tags Fee
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /fee/my [get]
func (h *MasterHandler) MyFees(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}
	params := pagination.GetParams(c)

	fees, total, err := h.masterRepo.ListFeesByUser(c.Context(), userID, params.Offset, params.Limit)
	if err != nil {
		return response.InternalServerError(c, "Failed to load fees")
	}

	return response.Success(c, "Fees retrieved", pagination.NewResponse(fees, params, total))
}

// UpdateFee edits a fee record, typically to mark it paid (admin only)
// @Summary Update fee
// @Tags Fee
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Fee ID"
// @Param body body FeeRequest true "Fee details"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /fee/update/{id} [put]
func (h *MasterHandler) UpdateFee(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return response.BadRequest(c, "Invalid fee id")
	}

	var req FeeRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	fee, err := h.masterRepo.GetFee(c.Context(), uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NotFound(c, "Fee not found")
		}
		return response.InternalServerError(c, "Failed to load fee")
	}

	if req.Amount > 0 {
		fee.Amount = req.Amount
	}
	if req.Semester != "" {
		fee.Semester = req.Semester
	}
	if req.Status != "" {
		if req.Status != models.FeeStatusPending && req.Status != models.FeeStatusPaid {
			return response.BadRequest(c, "Invalid fee status (pending, paid)")
		}
		fee.Status = req.Status
	}
	if req.Remark != "" {
		fee.Remark = req.Remark
	}
	if req.DueDate != "" {
		due, err := time.Parse("2006-01-02", req.DueDate)
		if err != nil {
			return response.BadRequest(c, "Invalid due date format")
		}
		fee.DueDate = &due
	}

	if err := h.masterRepo.UpdateFee(c.Context(), fee); err != nil {
		return response.InternalServerError(c, "Failed to update fee")
	}

	return response.Success(c, "Fee updated", fiber.Map{"fee": fee})
}

// DeleteFee removes a fee record (admin only)
// @Summary Delete fee
// @Tags Fee
// @Produce json
// @Security BearerAuth
// @Param id path int true "Fee ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /fee/delete/{id} [delete]
func (h *MasterHandler) DeleteFee(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return response.BadRequest(c, "Invalid fee id")
	}

	if err := h.masterRepo.DeleteFee(c.Context(), uint(id)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NotFound(c, "Fee not found")
		}
		return response.InternalServerError(c, "Failed to delete fee")
	}

	return response.Success(c, "Fee deleted", nil)
}
