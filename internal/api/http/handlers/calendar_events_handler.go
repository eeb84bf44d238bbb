package handlers

import (
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/leasing-crm/internal/api/dto"
	"github.com/spec-kit/leasing-crm/internal/domain"
	"github.com/spec-kit/leasing-crm/internal/service"
	apperrors "github.com/spec-kit/leasing-crm/pkg/util"
)

// CalendarEventsHandler exposes calendar block management for agents.
type CalendarEventsHandler struct {
	events *service.CalendarEventService
}

// NewCalendarEventsHandler constructs handler.
func NewCalendarEventsHandler(events *service.CalendarEventService) *CalendarEventsHandler {
	return &CalendarEventsHandler{events: events}
}

// Create handles POST /calendarEvents.
func (h *CalendarEventsHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateCalendarEventRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("INVALID_PAYLOAD", "invalid payload")
	}

	startAt, err := time.Parse(time.RFC3339, req.StartAt)
	if err != nil {
		return apperrors.NewValidationError("INCORRECT_DATE", "startAt must be RFC3339")
	}
	endAt, err := time.Parse(time.RFC3339, req.EndAt)
	if err != nil {
		return apperrors.NewValidationError("INCORRECT_DATE", "endAt must be RFC3339")
	}

	var kind *domain.EventKind
	if req.Kind != nil && *req.Kind != "" {
		k := domain.EventKind(*req.Kind)
		kind = &k
	}

	event, err := h.events.Create(c.UserContext(), service.CreateEventInput{
		TeamID:  req.TeamID,
		AgentID: req.AgentID,
		StartAt: startAt,
		EndAt:   endAt,
		Kind:    kind,
	})
	if err != nil {
		return err
	}

	var kindOut *string
	if event.Kind != nil {
		k := string(*event.Kind)
		kindOut = &k
	}
	return c.Status(http.StatusCreated).JSON(dto.CalendarEventResponse{
		ID:      event.ID,
		TeamID:  event.TeamID,
		AgentID: event.AgentID,
		StartAt: event.StartAt,
		EndAt:   event.EndAt,
		Kind:    kindOut,
	})
}

// Delete handles DELETE /calendarEvents/:id.
func (h *CalendarEventsHandler) Delete(c *fiber.Ctx) error {
	if err := h.events.Delete(c.UserContext(), c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}
