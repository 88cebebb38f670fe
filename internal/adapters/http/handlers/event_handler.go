package handlers

import (
	"errors"
	"strings"
	"time"

	"campus-connect/internal/adapters/persistence/models"
	"campus-connect/internal/adapters/persistence/repositories"
	"campus-connect/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// EventHandler handles the campus calendar
type EventHandler struct {
	eventRepo repositories.EventRepository
}

// NewEventHandler creates a new event handler
func NewEventHandler(eventRepo repositories.EventRepository) *EventHandler {
	return &EventHandler{eventRepo: eventRepo}
}

// EventRequest represents the create/update body
type EventRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Date        string `json:"date"`
	Type        string `json:"type"`
}

func (r *EventRequest) parseDate() (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, r.Date); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", r.Date)
}

// Create adds a calendar entry (admin or club coordinator)
// @Summary Create event
// @Tags Event
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body EventRequest true "Event details"
// @Success 201 {object} response.Response
// @Router /event/create [post]
func (h *EventHandler) Create(c *fiber.Ctx) error {
	var req EventRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if strings.TrimSpace(req.Title) == "" || req.Date == "" {
		return response.BadRequest(c, "Title and date are required")
	}
	if req.Type == "" {
		req.Type = models.EventTypeEvent
	}
	if !models.IsValidEventType(req.Type) {
		return response.BadRequest(c, "Invalid event type (exam, holiday, event, deadline)")
	}

	date, err := req.parseDate()
	if err != nil {
		return response.BadRequest(c, "Invalid date format")
	}

	userID, _ := c.Locals("userID").(uint)
	event := &models.Event{
		Title:       strings.TrimSpace(req.Title),
		Description: req.Description,
		Date:        date,
		Type:        req.Type,
		CreatedBy:   userID,
	}
	if err := h.eventRepo.Create(c.Context(), event); err != nil {
		return response.InternalServerError(c, "Failed to create event")
	}

	return response.Created(c, "Event created", fiber.Map{"event": event})
}

// List returns all calendar entries, optionally filtered by type
// @Summary List events
// @Tags Event
// @Produce json
// @Param type query string false "Filter by type"
// @Success 200 {object} response.Response
// @Router /event/all [get]
func (h *EventHandler) List(c *fiber.Ctx) error {
	eventType := c.Query("type")

	var (
		events []*models.Event
		err    error
	)
	if eventType != "" {
		if !models.IsValidEventType(eventType) {
			return response.BadRequest(c, "Invalid event type (exam, holiday, event, deadline)")
		}
		events, err = h.eventRepo.ListByType(c.Context(), eventType)
	} else {
		events, err = h.eventRepo.List(c.Context())
	}
	if err != nil {
		return response.InternalServerError(c, "Failed to load events")
	}

	return response.Success(c, "Events retrieved", fiber.Map{"events": events})
}

// ListByType returns calendar entries of one type
// @Summary List events by type
// @Tags Event
// @Produce json
// @Param type path string true "Event type (exam, holiday, event, deadline)"
// @Success 200 {object} response.Response
// @Router /event/type/{type} [get]
func (h *EventHandler) ListByType(c *fiber.Ctx) error {
	eventType := c.Params("type")
	if !models.IsValidEventType(eventType) {
		return response.BadRequest(c, "Invalid event type (exam, holiday, event, deadline)")
	}

	events, err := h.eventRepo.ListByType(c.Context(), eventType)
	if err != nil {
		return response.InternalServerError(c, "Failed to load events")
	}

	return response.Success(c, "Events retrieved", fiber.Map{"events": events})
}

// Update edits a calendar entry (admin or club coordinator)
// @Summary Update event
// @Tags Event
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Event ID"
// @Param body body EventRequest true "Event details"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /event/update/{id} [put]
func (h *EventHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return response.BadRequest(c, "Invalid event id")
	}

	var req EventRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	event, err := h.eventRepo.GetByID(c.Context(), uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NotFound(c, "Event not found")
		}
		return response.InternalServerError(c, "Failed to load event")
	}

	if strings.TrimSpace(req.Title) != "" {
		event.Title = strings.TrimSpace(req.Title)
	}
	if req.Description != "" {
		event.Description = req.Description
	}
	if req.Date != "" {
		date, err := req.parseDate()
		if err != nil {
			return response.BadRequest(c, "Invalid date format")
		}
		event.Date = date
	}
	if req.Type != "" {
		if !models.IsValidEventType(req.Type) {
			return response.BadRequest(c, "Invalid event type (exam, holiday, event, deadline)")
		}
		event.Type = req.Type
	}

	if err := h.eventRepo.Update(c.Context(), event); err != nil {
		return response.InternalServerError(c, "Failed to update event")
	}

	return response.Success(c, "Event updated", fiber.Map{"event": event})
}

// Delete removes a calendar entry (admin or club coordinator)
// @Summary Delete event
// @Tags Event
// @Produce json
// @Security BearerAuth
// @Param id path int true "Event ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /event/delete/{id} [delete]
func (h *EventHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return response.BadRequest(c, "Invalid event id")
	}

	if err := h.eventRepo.Delete(c.Context(), uint(id)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NotFound(c, "Event not found")
		}
		return response.InternalServerError(c, "Failed to delete event")
	}

	return response.Success(c, "Event deleted", nil)
}
