package dto

// SetFloatingAvailabilityRequest assigns or clears a day. Setting
// isUnavailable (or omitting teamId) clears the record.
type SetFloatingAvailabilityRequest struct {
	UserID        string  `json:"userId"`
	Day           string  `json:"day"`
	TeamID        *string `json:"teamId"`
	IsUnavailable bool    `json:"isUnavailable"`
}

// FloatingAvailabilityResponse maps days to covered team ids.
type FloatingAvailabilityResponse struct {
	UserID       string            `json:"userId"`
	Availability map[string]string `json:"availability"`
}
