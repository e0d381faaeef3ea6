package admin

import (
	"context"
	"time"

	"clinicdesk/models"
)

// AdminAPI is the slice of the clinic API the dashboard mutates and
// reads through.
type AdminAPI interface {
	ListDoctors(ctx context.Context) ([]models.Doctor, error)
	ListSlots(ctx context.Context, doctorID int64) ([]models.Slot, error)
	CreateDoctor(ctx context.Context, token string, in models.DoctorInput) (*models.Doctor, error)
	DeleteDoctor(ctx context.Context, token string, doctorID int64) error
	CreateSlot(ctx context.Context, token string, doctorID int64, start, end time.Time) (*models.Slot, error)
	DeleteSlot(ctx context.Context, token string, doctorID, slotID int64) error
}

// SessionSource exposes the current credential to the manager without
// letting it write session state.
type SessionSource interface {
	Current() *models.Session
}

// AdminService coordinates the dashboard working set: the doctor list,
// the single active selection, and the slots of the selected doctor.
type AdminService interface {
	LoadDoctors(ctx context.Context) error
	SelectDoctor(ctx context.Context, doctorID int64) error
	LoadSlots(ctx context.Context, doctorID int64) error
	CreateDoctor(ctx context.Context, in models.DoctorInput) error
	CreateSlot(ctx context.Context, start, end time.Time) error
	DeleteDoctor(ctx context.Context, doctorID int64, confirmed bool) error
	DeleteSlot(ctx context.Context, slotID int64) error
	Snapshot() WorkingSet
}
