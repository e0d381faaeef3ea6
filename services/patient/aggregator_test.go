package patient

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clinicdesk/models"
)

func bookingAt(id int64, date string) models.BookingItem {
	return models.BookingItem{
		Booking: models.Booking{ID: id, Status: "CONFIRMED", AppointmentDate: date},
		Doctor:  models.BookingDoctor{ID: 100 + id, Name: "Doe"},
	}
}

func TestNextAppointment_Empty(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	assert.Nil(t, NextAppointment(nil, now))
	assert.Nil(t, NextAppointment([]models.BookingItem{}, now))
}

func TestNextAppointment_AllPast(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	items := []models.BookingItem{
		bookingAt(1, "2026-02-27T09:00:00Z"),
		bookingAt(2, "2025-12-31T09:00:00Z"),
	}
	assert.Nil(t, NextAppointment(items, now))
}

func TestNextAppointment_PicksEarliestFuture(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	items := []models.BookingItem{
		bookingAt(1, "2026-03-10T09:00:00Z"),
		bookingAt(2, "2026-03-03T09:00:00Z"),
		bookingAt(3, "2026-02-01T09:00:00Z"), // past, ignored
	}
	next := NextAppointment(items, now)
	require.NotNil(t, next)
	assert.Equal(t, int64(2), next.Booking.ID)
}

func TestNextAppointment_NowIsNotPast(t *testing.T) {
	// A booking exactly at "now" still counts as upcoming.
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	items := []models.BookingItem{bookingAt(7, "2026-03-01T12:00:00Z")}
	next := NextAppointment(items, now)
	require.NotNil(t, next)
	assert.Equal(t, int64(7), next.Booking.ID)
}

func TestNextAppointment_TieBreaksOnLowestID(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	items := []models.BookingItem{
		bookingAt(9, "2026-03-05T10:00:00Z"),
		bookingAt(4, "2026-03-05T10:00:00Z"),
		bookingAt(6, "2026-03-05T10:00:00Z"),
	}
	next := NextAppointment(items, now)
	require.NotNil(t, next)
	assert.Equal(t, int64(4), next.Booking.ID)
}

func TestNextAppointment_SkipsMalformedDates(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	items := []models.BookingItem{
		bookingAt(1, "not-a-date"),
		bookingAt(2, ""),
		bookingAt(3, "2026-03-04T08:30:00Z"),
	}
	next := NextAppointment(items, now)
	require.NotNil(t, next)
	assert.Equal(t, int64(3), next.Booking.ID)
}

func TestNextAppointment_AllMalformed(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	items := []models.BookingItem{
		bookingAt(1, "yesterday"),
		bookingAt(2, "???"),
	}
	assert.Nil(t, NextAppointment(items, now))
}

func TestUpcomingBookings_SortedByDateThenID(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	items := []models.BookingItem{
		bookingAt(5, "2026-03-09T10:00:00Z"),
		bookingAt(2, "2026-03-05T10:00:00Z"),
		bookingAt(1, "2026-03-05T10:00:00Z"),
		bookingAt(8, "2026-01-01T10:00:00Z"), // past
	}
	got := UpcomingBookings(items, now)
	require.Len(t, got, 3)
	assert.Equal(t, int64(1), got[0].Booking.ID)
	assert.Equal(t, int64(2), got[1].Booking.ID)
	assert.Equal(t, int64(5), got[2].Booking.ID)
}
