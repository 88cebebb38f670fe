package handlers

import (
	"errors"
	"strings"

	"campus-connect/internal/core/domain"
	"campus-connect/internal/core/services"
	"campus-connect/internal/pkg/pagination"
	"campus-connect/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// UserHandler handles signup, login and the admin approval queue
type UserHandler struct {
	authService *services.AuthService
}

// NewUserHandler creates a new user handler
func NewUserHandler(authService *services.AuthService) *UserHandler {
	return &UserHandler{authService: authService}
}

// LoginRequest represents login request body
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Signup handles account registration (multipart form with image)
// @Summary Sign up
// @Description Create an account with a role-specific profile and a profile image
// @Tags User
// @Accept mpfd
// @Produce json
// @Param email formData string true "Email"
// @Param password formData string true "Password"
// @Param institute_name formData string true "Institute name"
// @Param role formData string false "Role (student, admin, seating_manager, club_coordinator)"
// @Param image formData file true "Profile image"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /user/signup [post]
func (h *UserHandler) Signup(c *fiber.Ctx) error {
	input := &services.SignupInput{
		InstituteName:   strings.TrimSpace(c.FormValue("institute_name")),
		Phone:           strings.TrimSpace(c.FormValue("phone")),
		Email:           strings.TrimSpace(c.FormValue("email")),
		Password:        c.FormValue("password"),
		Role:            strings.TrimSpace(c.FormValue("role")),
		FullName:        strings.TrimSpace(c.FormValue("full_name")),
		Address:         strings.TrimSpace(c.FormValue("address")),
		CourseID:        strings.TrimSpace(c.FormValue("course_id")),
		Batch:           strings.TrimSpace(c.FormValue("batch")),
		EnrollmentNo:    strings.TrimSpace(c.FormValue("enrollment_no")),
		RollNumber:      strings.TrimSpace(c.FormValue("roll_number")),
		DOB:             strings.TrimSpace(c.FormValue("dob")),
		Department:      strings.TrimSpace(c.FormValue("department")),
		RoomsManaged:    c.FormValue("rooms_managed"),
		Shift:           strings.TrimSpace(c.FormValue("shift")),
		ClubName:        strings.TrimSpace(c.FormValue("club_name")),
		ClubEmail:       strings.TrimSpace(c.FormValue("club_email")),
		ClubDescription: c.FormValue("club_description"),
	}
	if input.Role == "" {
		input.Role = "student"
	}

	image, err := c.FormFile("image")
	if err != nil {
		return response.BadRequest(c, "Image file is required")
	}

	user, err := h.authService.Signup(c.Context(), input, image)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return response.BadRequest(c, err.Error())
		case errors.Is(err, domain.ErrDuplicateEmail):
			return response.Conflict(c, "Email already registered")
		case errors.Is(err, domain.ErrUploadFailed):
			return response.BadRequest(c, "Image upload failed")
		case errors.Is(err, domain.ErrProfileCreation):
			return response.InternalServerError(c, "Failed to create profile")
		default:
			return response.InternalServerError(c, "Failed to create account")
		}
	}

	return response.Created(c, "Account created successfully", fiber.Map{
		"user": user,
	})
}

// Login handles credential verification and token issuance
// @Summary Login
// @Description Verify credentials and issue a bearer token (10-day expiry)
// @Tags User
// @Accept json
// @Produce json
// @Param body body LoginRequest true "Login credentials"
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /user/login [post]
func (h *UserHandler) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if req.Email == "" || req.Password == "" {
		return response.BadRequest(c, "Email and password are required")
	}

	result, err := h.authService.Login(c.Context(), strings.TrimSpace(req.Email), req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			return response.NotFound(c, "Email not registered")
		case errors.Is(err, domain.ErrInvalidCredentials):
			return response.Unauthorized(c, "Invalid email or password")
		case errors.Is(err, domain.ErrPendingApproval):
			return response.Forbidden(c, "Your account is pending admin approval. Please wait for approval to login.")
		default:
			return response.InternalServerError(c, "Failed to login")
		}
	}

	return response.Success(c, "Login successful", fiber.Map{
		"token": result.Token,
		"user":  result.User,
	})
}

// Profile returns the caller's role-specific profile
// @Summary Get own profile
// @Tags User
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /user/profile [get]
func (h *UserHandler) Profile(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}
	role, _ := c.Locals("role").(string)

	profile, err := h.authService.GetProfile(c.Context(), userID, role)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return response.NotFound(c, "Profile not found")
		}
		return response.InternalServerError(c, "Failed to load profile")
	}

	return response.Success(c, "Profile retrieved successfully", profile)
}

// PendingApprovals lists unapproved accounts (admin only)
// @Summary List pending approvals
// @Tags User
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Router /user/pending-approvals [get]
func (h *UserHandler) PendingApprovals(c *fiber.Ctx) error {
	params := pagination.GetParams(c)

	users, total, err := h.authService.PendingApprovals(c.Context(), params.Offset, params.Limit)
	if err != nil {
		return response.InternalServerError(c, "Failed to load pending approvals")
	}

	return response.Success(c, "Pending approvals retrieved", pagination.NewResponse(users, params, total))
}

// Approve sets an account's approval flag (admin only, idempotent)
// @Summary Approve account
// @Tags User
// @Produce json
// @Security BearerAuth
// @Param userId path int true "Account ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /user/approve/{userId} [post]
func (h *UserHandler) Approve(c *fiber.Ctx) error {
	userID, err := c.ParamsInt("userId")
	if err != nil || userID < 1 {
		return response.BadRequest(c, "Invalid user id")
	}

	user, err := h.authService.Approve(c.Context(), uint(userID))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return response.NotFound(c, "User not found")
		}
		return response.InternalServerError(c, "Failed to approve user")
	}

	return response.Success(c, "User approved", fiber.Map{"user": user})
}

// Reject deletes an account with best-effort cleanup (admin only)
// @Summary Reject account
// @Tags User
// @Produce json
// @Security BearerAuth
// @Param userId path int true "Account ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /user/reject/{userId} [delete]
func (h *UserHandler) Reject(c *fiber.Ctx) error {
	userID, err := c.ParamsInt("userId")
	if err != nil || userID < 1 {
		return response.BadRequest(c, "Invalid user id")
	}

	if err := h.authService.Reject(c.Context(), uint(userID)); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return response.NotFound(c, "User not found")
		}
		return response.InternalServerError(c, "Failed to reject user")
	}

	return response.Success(c, "User rejected and deleted", nil)
}
