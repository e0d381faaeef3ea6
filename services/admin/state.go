package admin

import "clinicdesk/models"

// ResourceStatus is the lifecycle of one fetched resource. Each region
// of the dashboard fails independently; a failed slot load never
// touches the doctor list and vice versa.
type ResourceStatus string

const (
	StatusIdle    ResourceStatus = "idle"
	StatusLoading ResourceStatus = "loading"
	StatusReady   ResourceStatus = "ready"
	StatusFailed  ResourceStatus = "failed"
)

// ResourceState pairs a status with the error that produced a failure.
type ResourceState struct {
	Status ResourceStatus
	Err    string
}

// WorkingSet is the in-memory subset of server state the dashboard
// reflects. Invariants: SelectedDoctorID is nil or the id of some entry
// in Doctors; Slots always belongs to SelectedDoctorID and is empty
// when nothing is selected.
type WorkingSet struct {
	Doctors          []models.Doctor
	SelectedDoctorID *int64
	Slots            []models.Slot

	DoctorsState ResourceState
	SlotsState   ResourceState
}

func (ws WorkingSet) clone() WorkingSet {
	out := ws
	out.Doctors = append([]models.Doctor(nil), ws.Doctors...)
	out.Slots = append([]models.Slot(nil), ws.Slots...)
	if ws.SelectedDoctorID != nil {
		id := *ws.SelectedDoctorID
		out.SelectedDoctorID = &id
	}
	return out
}
