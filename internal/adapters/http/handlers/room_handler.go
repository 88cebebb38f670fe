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

// RoomHandler handles exam room administration
type RoomHandler struct {
	roomRepo repositories.RoomRepository
}

// NewRoomHandler creates a new room handler
func NewRoomHandler(roomRepo repositories.RoomRepository) *RoomHandler {
	return &RoomHandler{roomRepo: roomRepo}
}

// RoomRequest represents the create/update body. Capacity is derived
// from rows*cols when omitted.
type RoomRequest struct {
	Name     string `json:"name"`
	Rows     int    `json:"rows"`
	Cols     int    `json:"cols"`
	Capacity int    `json:"capacity"`
	Building string `json:"building"`
	Floor    int    `json:"floor"`
	IsActive *bool  `json:"is_active"`
}

// List returns active exam rooms
// @Summary List exam rooms
// @Tags Rooms
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /rooms/all [get]
func (h *RoomHandler) List(c *fiber.Ctx) error {
	rooms, err := h.roomRepo.ListActive(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to load rooms")
	}
	return response.Success(c, "Rooms retrieved", fiber.Map{"rooms": rooms})
}

// Create adds an exam room
// @Summary Add exam room
// @Tags Rooms
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body RoomRequest true "Room details"
// @Success 201 {object} response.Response
// @Router /rooms/add [post]
func (h *RoomHandler) Create(c *fiber.Ctx) error {
	var req RoomRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if strings.TrimSpace(req.Name) == "" {
		return response.BadRequest(c, "Room name is required")
	}
	if req.Rows < 1 || req.Cols < 1 {
		return response.BadRequest(c, "Rows and cols must be positive")
	}

	room := &models.ExamRoom{
		Name:     strings.TrimSpace(req.Name),
		Rows:     req.Rows,
		Cols:     req.Cols,
		Capacity: req.Capacity,
		Building: req.Building,
		Floor:    req.Floor,
		IsActive: true,
	}
	if req.IsActive != nil {
		room.IsActive = *req.IsActive
	}
	if err := h.roomRepo.Create(c.Context(), room); err != nil {
		return response.InternalServerError(c, "Failed to add room")
	}

	return response.Created(c, "Room added", fiber.Map{"room": room})
}

// Update edits an exam room
// @Summary Update exam room
// @Tags Rooms
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Room ID"
// @Param body body RoomRequest true "Room details"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /rooms/update/{id} [put]
func (h *RoomHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return response.BadRequest(c, "Invalid room id")
	}

	var req RoomRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	room, err := h.roomRepo.GetByID(c.Context(), uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NotFound(c, "Room not found")
		}
		return response.InternalServerError(c, "Failed to load room")
	}

	if strings.TrimSpace(req.Name) != "" {
		room.Name = strings.TrimSpace(req.Name)
	}
	if req.Rows > 0 {
		room.Rows = req.Rows
		room.Capacity = 0
	}
	if req.Cols > 0 {
		room.Cols = req.Cols
		room.Capacity = 0
	}
	if req.Capacity > 0 {
		room.Capacity = req.Capacity
	}
	if req.Building != "" {
		room.Building = req.Building
	}
	if req.Floor != 0 {
		room.Floor = req.Floor
	}
	if req.IsActive != nil {
		room.IsActive = *req.IsActive
	}

	if err := h.roomRepo.Update(c.Context(), room); err != nil {
		return response.InternalServerError(c, "Failed to update room")
	}

	return response.Success(c, "Room updated", fiber.Map{"room": room})
}
