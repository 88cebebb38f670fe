package handlers

import (
	"strings"

	"campus-connect/internal/adapters/persistence/models"
	"campus-connect/internal/adapters/persistence/repositories"
	"campus-connect/internal/pkg/pagination"
	"campus-connect/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// StudentHandler handles student listings and exam registrations
type StudentHandler struct {
	studentRepo repositories.StudentRepository
}

// NewStudentHandler creates a new student handler
func NewStudentHandler(studentRepo repositories.StudentRepository) *StudentHandler {
	return &StudentHandler{studentRepo: studentRepo}
}

// StudentListItem flattens a profile with its account fields
type StudentListItem struct {
	ID           uint   `json:"id"`
	UserID       uint   `json:"user_id"`
	FullName     string `json:"full_name"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	CourseID     string `json:"course_id"`
	Batch        string `json:"batch"`
	EnrollmentNo string `json:"enrollment_no"`
	RollNumber   string `json:"roll_number"`
	IsApproved   bool   `json:"is_approved"`
}

// RegisterExamRequest represents the exam registration body
type RegisterExamRequest struct {
	ExamCode   string `json:"exam_code"`
	ExamName   string `json:"exam_name"`
	Date       string `json:"date"`
	Time       string `json:"time"`
	Venue      string `json:"venue"`
	CenterCode string `json:"center_code"`
}

// ListApproved returns student profiles with account status
// (admin or seating manager)
// @Summary List students
// @Tags Student
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /student/approved-students [get]
func (h *StudentHandler) ListApproved(c *fiber.Ctx) error {
	params := pagination.GetParams(c)

	profiles, total, err := h.studentRepo.ListProfiles(c.Context(), params.Offset, params.Limit)
	if err != nil {
		return response.InternalServerError(c, "Failed to load students")
	}

	items := make([]*StudentListItem, 0, len(profiles))
	for _, profile := range profiles {
		item := &StudentListItem{
			ID:           profile.ID,
			UserID:       profile.UserID,
			FullName:     profile.FullName,
			Phone:        profile.Phone,
			CourseID:     profile.CourseID,
			Batch:        profile.Batch,
			EnrollmentNo: profile.EnrollmentNo,
			RollNumber:   profile.RollNumber,
		}
		if profile.User != nil {
			item.Email = profile.User.Email
			item.IsApproved = profile.User.IsApproved
		}
		items = append(items, item)
	}

	return response.Success(c, "Students retrieved", pagination.NewResponse(items, params, total))
}

// ListRegisteredExams returns the caller's exam registrations (student)
// @Summary List registered exams
// @Tags Student
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /student/registered-exams [get]
func (h *StudentHandler) ListRegisteredExams(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	exams, err := h.studentRepo.ListRegisteredExams(c.Context(), userID)
	if err != nil {
		return response.InternalServerError(c, "Failed to load registered exams")
	}

	return response.Success(c, "Registered exams retrieved", fiber.Map{"exams": exams})
}

// RegisterExam records an exam registration for the caller (student)
// @Summary Register exam
// @Tags Student
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body RegisterExamRequest true "Exam details"
// @Success 201 {object} response.Response
// @Router /student/register-exam [post]
func (h *StudentHandler) RegisterExam(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	var req RegisterExamRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if strings.TrimSpace(req.ExamCode) == "" || strings.TrimSpace(req.ExamName) == "" {
		return response.BadRequest(c, "Exam code and name are required")
	}

	exam := &models.RegisteredExam{
		UserID:     userID,
		ExamCode:   strings.TrimSpace(req.ExamCode),
		ExamName:   strings.TrimSpace(req.ExamName),
		Date:       req.Date,
		Time:       req.Time,
		Venue:      req.Venue,
		CenterCode: req.CenterCode,
	}
	if err := h.studentRepo.CreateRegisteredExam(c.Context(), exam); err != nil {
		return response.InternalServerError(c, "Failed to register exam")
	}

	return response.Created(c, "Exam registered", fiber.Map{"exam": exam})
}
