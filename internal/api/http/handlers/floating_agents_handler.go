package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/leasing-crm/internal/api/dto"
	"github.com/spec-kit/leasing-crm/internal/service"
	apperrors "github.com/spec-kit/leasing-crm/pkg/util"
)

// FloatingAgentsHandler exposes floating agent assignment endpoints.
type FloatingAgentsHandler struct {
	floating *service.FloatingAgentService
}

// NewFloatingAgentsHandler constructs handler.
func NewFloatingAgentsHandler(floating *service.FloatingAgentService) *FloatingAgentsHandler {
	return &FloatingAgentsHandler{floating: floating}
}

// Availability handles GET /floatingAgents/availability/:userId/:from/:to.
func (h *FloatingAgentsHandler) Availability(c *fiber.Ctx) error {
	userID := c.Params("userId")
	assignments, err := h.floating.Availability(c.UserContext(), userID, c.Params("from"), c.Params("to"))
	if err != nil {
		return err
	}

	return c.JSON(dto.FloatingAvailabilityResponse{
		UserID:       userID,
		Availability: assignments,
	})
}

// SetAvailability handles POST /floatingAgents/availability.
func (h *FloatingAgentsHandler) SetAvailability(c *fiber.Ctx) error {
	var req dto.SetFloatingAvailabilityRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("INVALID_PAYLOAD", "invalid payload")
	}

	teamID := req.TeamID
	if req.IsUnavailable {
		teamID = nil
	}

	if err := h.floating.SetAvailability(c.UserContext(), service.SetAvailabilityInput{
		AgentID: req.UserID,
		Day:     req.Day,
		TeamID:  teamID,
	}); err != nil {
		return err
	}

	return c.JSON(fiber.Map{"status": "ok"})
}
