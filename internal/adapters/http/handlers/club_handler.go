package handlers

import (
	"errors"
	"strings"

	"campus-connect/internal/adapters/persistence/models"
	"campus-connect/internal/adapters/persistence/repositories"
	"campus-connect/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// ClubHandler handles club registration and the club approval queue
type ClubHandler struct {
	clubRepo repositories.ClubRepository
}

// NewClubHandler creates a new club handler
func NewClubHandler(clubRepo repositories.ClubRepository) *ClubHandler {
	return &ClubHandler{clubRepo: clubRepo}
}

// CreateClubRequest represents the club registration body
type CreateClubRequest struct {
	ClubName        string `json:"club_name"`
	ClubEmail       string `json:"club_email"`
	ClubDescription string `json:"club_description"`
	MembersCount    int    `json:"members_count"`
}

// Create registers a club; it enters the queue unapproved
// @Summary Register a club
// @Tags Club
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body CreateClubRequest true "Club details"
// @Success 201 {object} response.Response
// @Router /club/create [post]
func (h *ClubHandler) Create(c *fiber.Ctx) error {
	var req CreateClubRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if strings.TrimSpace(req.ClubName) == "" {
		return response.BadRequest(c, "Club name is required")
	}

	userID, _ := c.Locals("userID").(uint)
	club := &models.Club{
		UserID:          userID,
		ClubName:        strings.TrimSpace(req.ClubName),
		ClubEmail:       strings.TrimSpace(req.ClubEmail),
		ClubDescription: req.ClubDescription,
		MembersCount:    req.MembersCount,
		IsApproved:      false,
	}
	if err := h.clubRepo.Create(c.Context(), club); err != nil {
		return response.InternalServerError(c, "Failed to register club")
	}

	return response.Created(c, "Club registered, awaiting approval", fiber.Map{"club": club})
}

// List returns approved clubs (public)
// @Summary List approved clubs
// @Tags Club
// @Produce json
// @Success 200 {object} response.Response
// @Router /club/all [get]
func (h *ClubHandler) List(c *fiber.Ctx) error {
	clubs, err := h.clubRepo.ListApproved(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to load clubs")
	}
	return response.Success(c, "Clubs retrieved", fiber.Map{"clubs": clubs})
}

// ListPending returns unapproved clubs (admin only)
// @Summary List pending clubs
// @Tags Club
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /club/pending [get]
func (h *ClubHandler) ListPending(c *fiber.Ctx) error {
	clubs, err := h.clubRepo.ListPending(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to load pending clubs")
	}
	return response.Success(c, "Pending clubs retrieved", fiber.Map{"clubs": clubs})
}

// Approve marks a club approved (admin only, idempotent)
// @Summary Approve club
// @Tags Club
// @Produce json
// @Security BearerAuth
// @Param id path int true "Club ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /club/approve/{id} [post]
func (h *ClubHandler) Approve(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return response.BadRequest(c, "Invalid club id")
	}

	club, err := h.clubRepo.Approve(c.Context(), uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NotFound(c, "Club not found")
		}
		return response.InternalServerError(c, "Failed to approve club")
	}

	return response.Success(c, "Club approved", fiber.Map{"club": club})
}

// Delete removes a club (admin only)
// @Summary Delete club
// @Tags Club
// @Produce json
// @Security BearerAuth
// @Param id path int true "Club ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /club/reject/{id} [delete]
func (h *ClubHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return response.BadRequest(c, "Invalid club id")
	}

	if err := h.clubRepo.Delete(c.Context(), uint(id)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NotFound(c, "Club not found")
		}
		return response.InternalServerError(c, "Failed to delete club")
	}

	return response.Success(c, "Club deleted", nil)
}
