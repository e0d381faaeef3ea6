package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clinicdesk/models"
	"clinicdesk/services/patient"
)

// fakeSessionService serves a fixed session.
type fakeSessionService struct {
	session *models.Session
}

func (f *fakeSessionService) Initialize() *models.Session { return f.session }
func (f *fakeSessionService) Login(ctx context.Context, email, password string) (*models.Session, error) {
	return f.session, nil
}
func (f *fakeSessionService) Logout()                  { f.session = nil }
func (f *fakeSessionService) Current() *models.Session { return f.session }

type fakePatientService struct {
	next *models.BookingItem
}

func (f *fakePatientService) NextBooking(ctx context.Context, s *models.Session) (*models.BookingItem, error) {
	return f.next, nil
}
func (f *fakePatientService) Bookings(ctx context.Context, s *models.Session) ([]models.BookingItem, error) {
	return nil, nil
}
func (f *fakePatientService) BrowseDoctors(ctx context.Context, filter models.DoctorFilter) ([]models.Doctor, error) {
	return nil, nil
}

var _ patient.PatientService = (*fakePatientService)(nil)

func runCommand(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand(app)
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestWhoami_NotLoggedIn(t *testing.T) {
	app := &App{Session: &fakeSessionService{}}
	out, err := runCommand(t, app, "whoami")
	require.NoError(t, err)
	assert.Contains(t, out, "Not logged in")
}

func TestHome_RequiresLogin(t *testing.T) {
	app := &App{Session: &fakeSessionService{}, Patient: &fakePatientService{}}
	_, err := runCommand(t, app, "home")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "login")
}

func TestAdmin_DeniedForPatientWithoutRedirectHint(t *testing.T) {
	app := &App{
		Session: &fakeSessionService{session: &models.Session{
			Token: "t",
			User:  &models.AuthUser{ID: 1, Email: "p@x", Role: models.RolePatient},
		}},
	}
	_, err := runCommand(t, app, "admin", "doctors", "list")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "access denied")
	assert.NotContains(t, err.Error(), "clinicdesk login", "role mismatch is a static denial, not a login bounce")
}

func TestHome_NoUpcomingAppointments(t *testing.T) {
	app := &App{
		Session: &fakeSessionService{session: &models.Session{
			Token: "t",
			User:  &models.AuthUser{ID: 1, Email: "p@x", Role: models.RolePatient},
		}},
		Patient: &fakePatientService{},
	}
	out, err := runCommand(t, app, "home")
	require.NoError(t, err)
	assert.Contains(t, out, "don't have any upcoming appointments")
}
