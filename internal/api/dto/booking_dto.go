package dto

import "time"

// BookAppointmentRequest payload for guest bookings. The program email may
// also arrive via the X-Program-Email header.
type BookAppointmentRequest struct {
	ProgramEmail string `json:"programEmail"`
	StartDate    string `json:"startDate"`
	PartyRef     string `json:"partyRef"`
}

// AppointmentResponse describes a booked appointment.
type AppointmentResponse struct {
	ID       string    `json:"id"`
	AgentID  string    `json:"agentId"`
	PartyRef string    `json:"partyRef"`
	StartAt  time.Time `json:"startAt"`
	EndAt    time.Time `json:"endAt"`
}
