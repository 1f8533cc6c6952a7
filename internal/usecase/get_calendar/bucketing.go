package get_calendar

import (
	"time"

	"github.com/academyhall/booking-gateway/internal/domain"
)

// gridRange computes the rendered span of a month grid: from the start
// of the week containing the 1st to the end of the week containing the
// last day. Weeks start on Sunday, matching the month-grid layout.
func gridRange(year int, month time.Month) (time.Time, time.Time) {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)

	gridStart := first.AddDate(0, 0, -int(first.Weekday()))
	gridEnd := last.AddDate(0, 0, int(time.Saturday-last.Weekday()))
	return gridStart, gridEnd
}

// eventsOnDay returns the bookings active on the given day. A booking
// is active on every day of its inclusive start..end span; a missing
// end date makes it a single-day event, and a missing start date
// excludes it from the grid entirely.
func eventsOnDay(day time.Time, bookings []*domain.Booking) []*domain.Booking {
	d := dateOnly(day)

	var active []*domain.Booking
	for _, b := range bookings {
		if b.EventStartDate == nil {
			continue
		}
		start := dateOnly(*b.EventStartDate)
		end := start
		if b.EventEndDate != nil {
			end = dateOnly(*b.EventEndDate)
		}
		if !d.Before(start) && !d.After(end) {
			active = append(active, b)
		}
	}
	return active
}

// dateOnly обнуляет время, чтобы сравнивать только календарные дни
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
