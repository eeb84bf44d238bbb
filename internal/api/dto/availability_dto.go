package dto

import "github.com/spec-kit/leasing-crm/internal/scheduling"

// AvailableSlotsResponse is the guest-facing calendar payload.
type AvailableSlotsResponse struct {
	PropertyTimezone string                   `json:"propertyTimezone"`
	Calendar         []scheduling.DayCalendar `json:"calendar"`
}
