package models

// Booking represents a patient's booking record.
type Booking struct {
	ID              int64  `json:"id"`
	Status          string `json:"status"`           // e.g., "CONFIRMED", "CANCELLED"
	AppointmentDate string `json:"appointment_date"` // ISO instant; kept raw so one bad value cannot sink a whole listing
}

// BookingItem pairs a booking with a snapshot of the doctor it was made
// with, as returned by the patient bookings endpoint. Read-only to the
// client.
type BookingItem struct {
	Booking Booking       `json:"booking"`
	Doctor  BookingDoctor `json:"doctor"`
}

// BookingDoctor is the reduced doctor snapshot embedded in a booking item.
type BookingDoctor struct {
	ID             int64  `json:"id"`
	Name           string `json:"name"`
	Specialization string `json:"specialization"`
	City           string `json:"city"`
}
