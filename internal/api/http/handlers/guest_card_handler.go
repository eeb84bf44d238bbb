package handlers

import (
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/leasing-crm/internal/api/dto"
	"github.com/spec-kit/leasing-crm/internal/service"
	apperrors "github.com/spec-kit/leasing-crm/pkg/util"
)

// programEmailHeader carries the marketing program identity on guest
// requests.
const programEmailHeader = "X-Program-Email"

// GuestCardHandler exposes the guest-facing availability and booking
// endpoints.
type GuestCardHandler struct {
	availability *service.AvailabilityService
	booking      *service.BookingService
	auth         *service.AuthService
}

// NewGuestCardHandler constructs handler.
func NewGuestCardHandler(availability *service.AvailabilityService, booking *service.BookingService, authService *service.AuthService) *GuestCardHandler {
	return &GuestCardHandler{availability: availability, booking: booking, auth: authService}
}

// StartSession handles POST /guestCard/session. The returned self-service
// token authorizes the other guest card endpoints.
func (h *GuestCardHandler) StartSession(c *fiber.Ctx) error {
	token, exp, err := h.auth.CreateGuestSession()
	if err != nil {
		return err
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"data": fiber.Map{
			"auth": dto.AuthResponse{Token: token, ExpiresAt: exp},
		},
	})
}

// AvailableSlots handles GET /guestCard/availableSlots.
func (h *GuestCardHandler) AvailableSlots(c *fiber.Ctx) error {
	programEmail := c.Get(programEmailHeader)
	if programEmail == "" {
		programEmail = c.Query("programEmail")
	}

	from := c.Query("from")
	raw := c.Query("noOfDays")
	if raw == "" {
		return apperrors.NewValidationError("INVALID_NUMBER_OF_DAYS", "noOfDays is required")
	}
	numberOfDays, err := strconv.Atoi(raw)
	if err != nil {
		return apperrors.NewValidationError("INVALID_NUMBER_OF_DAYS", "noOfDays must be an integer")
	}

	result, err := h.availability.AvailableSlots(c.UserContext(), programEmail, from, numberOfDays)
	if err != nil {
		return err
	}

	return c.JSON(dto.AvailableSlotsResponse{
		PropertyTimezone: result.PropertyTimezone,
		Calendar:         result.Calendar,
	})
}

// BookAppointment handles POST /guestCard/appointment.
func (h *GuestCardHandler) BookAppointment(c *fiber.Ctx) error {
	var req dto.BookAppointmentRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("INVALID_PAYLOAD", "invalid payload")
	}

	programEmail := c.Get(programEmailHeader)
	if programEmail == "" {
		programEmail = req.ProgramEmail
	}

	appointment, err := h.booking.Book(c.UserContext(), service.BookInput{
		ProgramEmail: programEmail,
		StartAt:      req.StartDate,
		PartyRef:     req.PartyRef,
	})
	if err != nil {
		return err
	}

	return c.Status(http.StatusCreated).JSON(dto.AppointmentResponse{
		ID:       appointment.ID,
		AgentID:  appointment.AgentID,
		PartyRef: appointment.PartyRef,
		StartAt:  appointment.StartAt,
		EndAt:    appointment.EndAt,
	})
}
