package patient

import (
	"sort"
	"time"

	"clinicdesk/models"
)

// appointmentTimeLayouts are tried in order when parsing an
// appointment_date value off the wire.
var appointmentTimeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

func parseAppointmentDate(value string) (time.Time, bool) {
	for _, layout := range appointmentTimeLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// NextAppointment derives the single next upcoming appointment from a
// booking list: the future booking with the earliest appointment date,
// ties broken by the lowest booking id. Returns nil when nothing is
// upcoming. Items whose date cannot be parsed are skipped rather than
// failing the whole computation. Pure and uncached; callers re-evaluate
// whenever the list or the clock moves.
func NextAppointment(items []models.BookingItem, now time.Time) *models.BookingItem {
	var best *models.BookingItem
	var bestAt time.Time

	for i := range items {
		at, ok := parseAppointmentDate(items[i].Booking.AppointmentDate)
		if !ok || at.Before(now) {
			continue
		}
		if best == nil || at.Before(bestAt) ||
			(at.Equal(bestAt) && items[i].Booking.ID < best.Booking.ID) {
			best = &items[i]
			bestAt = at
		}
	}
	return best
}

// UpcomingBookings returns every future booking ordered by appointment
// date, then booking id. Unparsable dates are excluded.
func UpcomingBookings(items []models.BookingItem, now time.Time) []models.BookingItem {
	type dated struct {
		item models.BookingItem
		at   time.Time
	}
	var future []dated
	for _, item := range items {
		at, ok := parseAppointmentDate(item.Booking.AppointmentDate)
		if !ok || at.Before(now) {
			continue
		}
		future = append(future, dated{item: item, at: at})
	}
	sort.Slice(future, func(i, j int) bool {
		if !future[i].at.Equal(future[j].at) {
			return future[i].at.Before(future[j].at)
		}
		return future[i].item.Booking.ID < future[j].item.Booking.ID
	})

	out := make([]models.BookingItem, len(future))
	for i, d := range future {
		out[i] = d.item
	}
	return out
}
