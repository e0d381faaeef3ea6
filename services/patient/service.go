package patient

import (
	"context"
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"go.uber.org/zap"

	"clinicdesk/models"
	"clinicdesk/utils"
)

// PatientAPI is the slice of the clinic API the patient flows need.
type PatientAPI interface {
	PatientBookings(ctx context.Context, email string) ([]models.BookingItem, error)
	ListDoctors(ctx context.Context) ([]models.Doctor, error)
}

// PatientService serves the patient home view and the public doctor
// directory.
type PatientService interface {
	NextBooking(ctx context.Context, session *models.Session) (*models.BookingItem, error)
	Bookings(ctx context.Context, session *models.Session) ([]models.BookingItem, error)
	BrowseDoctors(ctx context.Context, filter models.DoctorFilter) ([]models.Doctor, error)
}

type directoryEntry struct {
	doctors   []models.Doctor
	fetchedAt time.Time
}

const directoryCacheKey = "doctors"

// DefaultPatientService is the production implementation.
type DefaultPatientService struct {
	API PatientAPI

	// Clock is overridable for tests; defaults to time.Now.
	Clock func() time.Time

	cacheTTL time.Duration
	mu       sync.Mutex
	cache    *lru.Cache[string, directoryEntry]
}

func NewPatientService(api PatientAPI, cacheSize int, cacheTTL time.Duration) (*DefaultPatientService, error) {
	if cacheSize <= 0 {
		cacheSize = 32
	}
	cache, err := lru.New[string, directoryEntry](cacheSize)
	if err != nil {
		return nil, err
	}
	return &DefaultPatientService{
		API:      api,
		Clock:    time.Now,
		cacheTTL: cacheTTL,
		cache:    cache,
	}, nil
}

// requirePatient gates patient reads behind an authenticated PATIENT
// session, mirroring how the admin dashboard guards its own operations.
func requirePatient(session *models.Session) error {
	if !session.Valid() {
		return &utils.AuthError{Message: "login as a patient first"}
	}
	if session.User.Role != models.RolePatient {
		return &utils.AuthError{Message: "login as a patient first"}
	}
	return nil
}

// NextBooking fetches the patient's bookings and derives the next
// upcoming appointment. Nil result with nil error means nothing is
// upcoming.
func (s *DefaultPatientService) NextBooking(ctx context.Context, session *models.Session) (*models.BookingItem, error) {
	if err := requirePatient(session); err != nil {
		return nil, err
	}
	items, err := s.API.PatientBookings(ctx, session.User.Email)
	if err != nil {
		return nil, err
	}
	return NextAppointment(items, s.Clock()), nil
}

// Bookings returns the patient's upcoming bookings, soonest first.
func (s *DefaultPatientService) Bookings(ctx context.Context, session *models.Session) ([]models.BookingItem, error) {
	if err := requirePatient(session); err != nil {
		return nil, err
	}
	items, err := s.API.PatientBookings(ctx, session.User.Email)
	if err != nil {
		return nil, err
	}
	return UpcomingBookings(items, s.Clock()), nil
}

// BrowseDoctors lists the public doctor directory with optional
// filtering. The full list is cached briefly so repeated lookups within
// one run do not hammer the API; the admin dashboard never reads this
// cache, it always refetches.
func (s *DefaultPatientService) BrowseDoctors(ctx context.Context, filter models.DoctorFilter) ([]models.Doctor, error) {
	doctors, err := s.cachedDoctors(ctx)
	if err != nil {
		return nil, err
	}

	var out []models.Doctor
	for _, d := range doctors {
		if filter.Matches(d) {
			out = append(out, d)
		}
	}
	return out, nil
}

func (s *DefaultPatientService) cachedDoctors(ctx context.Context) ([]models.Doctor, error) {
	s.mu.Lock()
	entry, ok := s.cache.Get(directoryCacheKey)
	s.mu.Unlock()
	if ok && (s.cacheTTL <= 0 || s.Clock().Sub(entry.fetchedAt) < s.cacheTTL) {
		utils.GetLogger().Debug("patient: doctor directory cache hit",
			zap.Int("count", len(entry.doctors)))
		return entry.doctors, nil
	}

	doctors, err := s.API.ListDoctors(ctx)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.cache.Add(directoryCacheKey, directoryEntry{doctors: doctors, fetchedAt: s.Clock()})
	s.mu.Unlock()
	return doctors, nil
}
