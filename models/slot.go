package models

import "time"

// Slot represents a doctor's appointment window. The doctor it belongs
// to is implicit: the API serves slots scoped under a doctor, and the
// client only ever holds slots for the currently selected doctor.
type Slot struct {
	ID        int64     `json:"id"`
	StartTime time.Time `json:"start_time"` // ISO instant on the wire
	EndTime   time.Time `json:"end_time"`
	Status    string    `json:"status"` // e.g., "AVAILABLE", "BOOKED"
}

// SlotInput is the payload for creating a slot under a doctor.
// Instants are sent as UTC ISO strings.
type SlotInput struct {
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}
