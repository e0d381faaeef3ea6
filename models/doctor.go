package models

import "strings"

// ConsultationType enumerates how a doctor sees patients.
const (
	ConsultationInPerson = "IN_PERSON"
	ConsultationOnline   = "ONLINE"
)

// Doctor represents a doctor record as served by the clinic API.
// Records are created and destroyed only through admin mutations;
// every other flow treats them as read-only.
type Doctor struct {
	ID               int64    `json:"id"`                // Server-assigned identifier
	Name             string   `json:"name"`              // Display name without title
	Specialization   string   `json:"specialization"`    // e.g., "Cardiology"
	City             string   `json:"city"`              // City the doctor practices in
	ConsultationType string   `json:"consultation_type"` // "IN_PERSON" or "ONLINE"
	ConsultationFee  float64  `json:"consultation_fee"`  // Fee per consultation, >= 0
	Rating           *float64 `json:"rating"`            // nil when the doctor has no rating yet
}

// DoctorInput carries the fields an admin supplies when creating a doctor.
// The server assigns the id and fills defaults.
type DoctorInput struct {
	Name             string   `json:"name"`
	Specialization   string   `json:"specialization"`
	City             string   `json:"city"`
	ConsultationType string   `json:"consultation_type"`
	ConsultationFee  float64  `json:"consultation_fee"`
	Rating           *float64 `json:"rating"`
}

// DoctorFilter narrows a doctor directory listing. Zero-value fields
// match everything.
type DoctorFilter struct {
	City             string
	Specialization   string
	ConsultationType string
}

// Matches reports whether the doctor satisfies the filter.
func (f DoctorFilter) Matches(d Doctor) bool {
	if f.City != "" && !strings.EqualFold(f.City, d.City) {
		return false
	}
	if f.Specialization != "" && !strings.EqualFold(f.Specialization, d.Specialization) {
		return false
	}
	if f.ConsultationType != "" && f.ConsultationType != d.ConsultationType {
		return false
	}
	return true
}
