package admin

import (
	"context"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"clinicdesk/models"
	"clinicdesk/utils"
)

// DefaultAdminService is the production implementation. All state
// transitions happen under one mutex; network calls are made with the
// mutex released, and every slot fetch carries the selection generation
// it was issued for so a completion that raced a newer selection is
// discarded instead of applied.
type DefaultAdminService struct {
	API     AdminAPI
	Session SessionSource

	mu  sync.Mutex
	ws  WorkingSet
	gen uint64 // selection generation, bumped whenever the selection changes
}

func NewAdminService(api AdminAPI, session SessionSource) *DefaultAdminService {
	return &DefaultAdminService{API: api, Session: session}
}

// Snapshot returns a copy of the working set for rendering and tests.
func (m *DefaultAdminService) Snapshot() WorkingSet {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.ws.clone()
}

// requireAdmin rejects mutations locally when no admin credential is
// held; such calls never reach the network.
func (m *DefaultAdminService) requireAdmin() (string, error) {
	session := m.Session.Current()
	if !session.Valid() || session.User.Role != models.RoleAdmin {
		return "", &utils.AuthError{Message: "login as admin first"}
	}
	return session.Token, nil
}

// LoadDoctors fetches the full doctor list. On failure the previously
// loaded list stays intact. When nothing is selected and the list is
// non-empty, the first doctor is auto-selected and its slots loaded.
func (m *DefaultAdminService) LoadDoctors(ctx context.Context) error {
	m.mu.Lock()
	m.ws.DoctorsState = ResourceState{Status: StatusLoading}
	m.mu.Unlock()

	doctors, err := m.API.ListDoctors(ctx)

	m.mu.Lock()
	if err != nil {
		m.ws.DoctorsState = ResourceState{Status: StatusFailed, Err: err.Error()}
		m.mu.Unlock()
		return err
	}
	m.ws.Doctors = doctors
	m.ws.DoctorsState = ResourceState{Status: StatusReady}

	if m.ws.SelectedDoctorID == nil && len(doctors) > 0 {
		id := doctors[0].ID
		gen := m.beginSelection(id)
		m.mu.Unlock()
		m.fetchSlots(ctx, id, gen)
		return nil
	}
	m.mu.Unlock()
	return nil
}

// beginSelection installs a new selection and returns its generation.
// Caller holds the lock. Clearing slots before the fetch keeps the
// working set from ever showing another doctor's slots.
func (m *DefaultAdminService) beginSelection(doctorID int64) uint64 {
	id := doctorID
	m.ws.SelectedDoctorID = &id
	m.ws.Slots = nil
	m.ws.SlotsState = ResourceState{Status: StatusLoading}
	m.gen++
	return m.gen
}

// SelectDoctor changes the active selection and loads its slots. A
// response belonging to an earlier selection is never applied.
func (m *DefaultAdminService) SelectDoctor(ctx context.Context, doctorID int64) error {
	m.mu.Lock()
	if !m.knownDoctor(doctorID) {
		m.mu.Unlock()
		return &utils.ValidationError{Message: "unknown doctor id"}
	}
	gen := m.beginSelection(doctorID)
	m.mu.Unlock()

	return m.fetchSlots(ctx, doctorID, gen)
}

// knownDoctor reports whether id is in the loaded list. Caller holds
// the lock.
func (m *DefaultAdminService) knownDoctor(id int64) bool {
	for _, d := range m.ws.Doctors {
		if d.ID == id {
			return true
		}
	}
	return false
}

// LoadSlots refetches slots for a doctor. Results apply only if the
// doctor is still the current selection at completion time.
func (m *DefaultAdminService) LoadSlots(ctx context.Context, doctorID int64) error {
	m.mu.Lock()
	if m.ws.SelectedDoctorID == nil || *m.ws.SelectedDoctorID != doctorID {
		m.mu.Unlock()
		return &utils.ValidationError{Message: "doctor is not the current selection"}
	}
	m.ws.SlotsState = ResourceState{Status: StatusLoading}
	gen := m.gen
	m.mu.Unlock()

	return m.fetchSlots(ctx, doctorID, gen)
}

// fetchSlots performs the network read issued for generation gen and
// applies the outcome only if that selection is still current.
func (m *DefaultAdminService) fetchSlots(ctx context.Context, doctorID int64, gen uint64) error {
	slots, err := m.API.ListSlots(ctx, doctorID)

	m.mu.Lock()
	defer m.mu.Unlock()
	if gen != m.gen || m.ws.SelectedDoctorID == nil || *m.ws.SelectedDoctorID != doctorID {
		utils.GetLogger().Debug("admin: dropping stale slot response",
			zap.Int64("doctorId", doctorID),
			zap.Uint64("generation", gen),
		)
		return nil
	}
	if err != nil {
		m.ws.SlotsState = ResourceState{Status: StatusFailed, Err: err.Error()}
		return err
	}
	m.ws.Slots = slots
	m.ws.SlotsState = ResourceState{Status: StatusReady}
	return nil
}

func validateDoctorInput(in models.DoctorInput) error {
	if strings.TrimSpace(in.Name) == "" ||
		strings.TrimSpace(in.Specialization) == "" ||
		strings.TrimSpace(in.City) == "" ||
		strings.TrimSpace(in.ConsultationType) == "" {
		return &utils.ValidationError{Message: "all fields except rating are required"}
	}
	if in.ConsultationType != models.ConsultationInPerson && in.ConsultationType != models.ConsultationOnline {
		return &utils.ValidationError{Message: "consultation type must be IN_PERSON or ONLINE"}
	}
	if in.ConsultationFee < 0 {
		return &utils.ValidationError{Message: "consultation fee must not be negative"}
	}
	return nil
}

// CreateDoctor validates locally, creates through the admin surface and
// refreshes the full list rather than patching it locally, so
// server-assigned fields (id, defaults) are reflected as stored.
func (m *DefaultAdminService) CreateDoctor(ctx context.Context, in models.DoctorInput) error {
	token, err := m.requireAdmin()
	if err != nil {
		return err
	}
	if err := validateDoctorInput(in); err != nil {
		return err
	}

	in.Name = strings.TrimSpace(in.Name)
	in.Specialization = strings.TrimSpace(in.Specialization)
	in.City = strings.TrimSpace(in.City)

	created, err := m.API.CreateDoctor(ctx, token, in)
	if err != nil {
		return err
	}
	utils.GetLogger().Info("admin: doctor created", zap.Int64("doctorId", created.ID))

	return m.LoadDoctors(ctx)
}

// CreateSlot creates a slot for the selected doctor. Times are
// validated for ordering here as well; the server stays authoritative.
func (m *DefaultAdminService) CreateSlot(ctx context.Context, start, end time.Time) error {
	token, err := m.requireAdmin()
	if err != nil {
		return err
	}

	m.mu.Lock()
	if m.ws.SelectedDoctorID == nil {
		m.mu.Unlock()
		return &utils.ValidationError{Message: "select a doctor first"}
	}
	doctorID := *m.ws.SelectedDoctorID
	m.mu.Unlock()

	if start.IsZero() || end.IsZero() {
		return &utils.ValidationError{Message: "start and end time are required"}
	}
	if !start.Before(end) {
		return &utils.ValidationError{Message: "start time must be before end time"}
	}

	created, err := m.API.CreateSlot(ctx, token, doctorID, start, end)
	if err != nil {
		return err
	}
	utils.GetLogger().Info("admin: slot created",
		zap.Int64("doctorId", doctorID),
		zap.Int64("slotId", created.ID),
	)

	return m.LoadSlots(ctx, doctorID)
}

// DeleteDoctor removes a doctor. Deleting the current selection clears
// selection and slots, restoring the no-selection invariant; the bumped
// generation drops any slot fetch still in flight for it.
func (m *DefaultAdminService) DeleteDoctor(ctx context.Context, doctorID int64, confirmed bool) error {
	token, err := m.requireAdmin()
	if err != nil {
		return err
	}
	if !confirmed {
		return &utils.ValidationError{Message: "doctor deletion requires confirmation"}
	}

	if err := m.API.DeleteDoctor(ctx, token, doctorID); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	kept := m.ws.Doctors[:0]
	for _, d := range m.ws.Doctors {
		if d.ID != doctorID {
			kept = append(kept, d)
		}
	}
	m.ws.Doctors = kept
	if m.ws.SelectedDoctorID != nil && *m.ws.SelectedDoctorID == doctorID {
		m.ws.SelectedDoctorID = nil
		m.ws.Slots = nil
		m.ws.SlotsState = ResourceState{Status: StatusIdle}
		m.gen++
	}
	utils.GetLogger().Info("admin: doctor deleted", zap.Int64("doctorId", doctorID))
	return nil
}

// DeleteSlot removes one slot of the selected doctor from the server,
// then from the local list by identity.
func (m *DefaultAdminService) DeleteSlot(ctx context.Context, slotID int64) error {
	token, err := m.requireAdmin()
	if err != nil {
		return err
	}

	m.mu.Lock()
	if m.ws.SelectedDoctorID == nil {
		m.mu.Unlock()
		return &utils.ValidationError{Message: "select a doctor first"}
	}
	doctorID := *m.ws.SelectedDoctorID
	m.mu.Unlock()

	if err := m.API.DeleteSlot(ctx, token, doctorID, slotID); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	kept := m.ws.Slots[:0]
	for _, s := range m.ws.Slots {
		if s.ID != slotID {
			kept = append(kept, s)
		}
	}
	m.ws.Slots = kept
	utils.GetLogger().Info("admin: slot deleted",
		zap.Int64("doctorId", doctorID),
		zap.Int64("slotId", slotID),
	)
	return nil
}
