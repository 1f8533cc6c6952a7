package get_calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/academyhall/booking-gateway/internal/domain"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func dayPtr(y int, m time.Month, d int) *time.Time {
	t := day(y, m, d)
	return &t
}

func TestGridRange_SpansFullWeeks(t *testing.T) {
	// сентябрь 2026: 1-е это вторник, 30-е это среда
	start, end := gridRange(2026, time.September)
	require.Equal(t, day(2026, time.August, 30), start) // воскресенье
	require.Equal(t, day(2026, time.October, 3), end)   // суббота

	// февраль 2026: 1-е это воскресенье, сетка начинается сразу с него
	start, end = gridRange(2026, time.February)
	require.Equal(t, day(2026, time.February, 1), start)
	require.Equal(t, day(2026, time.February, 28), end)
}

func TestEventsOnDay_InclusiveRange(t *testing.T) {
	booking := &domain.Booking{
		ID:             "HB-1",
		EventStartDate: dayPtr(2026, time.September, 10),
		EventEndDate:   dayPtr(2026, time.September, 12),
	}
	all := []*domain.Booking{booking}

	// многодневное событие активно каждый день диапазона включительно
	require.Len(t, eventsOnDay(day(2026, time.September, 10), all), 1)
	require.Len(t, eventsOnDay(day(2026, time.September, 11), all), 1)
	require.Len(t, eventsOnDay(day(2026, time.September, 12), all), 1)

	require.Empty(t, eventsOnDay(day(2026, time.September, 9), all))
	require.Empty(t, eventsOnDay(day(2026, time.September, 13), all))
}

func TestEventsOnDay_TimeOfDayIgnored(t *testing.T) {
	late := time.Date(2026, time.September, 10, 23, 45, 0, 0, time.UTC)
	booking := &domain.Booking{ID: "HB-1", EventStartDate: &late}

	noon := time.Date(2026, time.September, 10, 12, 0, 0, 0, time.UTC)
	require.Len(t, eventsOnDay(noon, []*domain.Booking{booking}), 1)
}

func TestEventsOnDay_MissingEndDateIsSingleDay(t *testing.T) {
	booking := &domain.Booking{
		ID:             "HB-1",
		EventStartDate: dayPtr(2026, time.September, 10),
	}
	all := []*domain.Booking{booking}

	require.Len(t, eventsOnDay(day(2026, time.September, 10), all), 1)
	require.Empty(t, eventsOnDay(day(2026, time.September, 11), all))
}

func TestEventsOnDay_MissingStartDateExcluded(t *testing.T) {
	booking := &domain.Booking{ID: "HB-1", EventEndDate: dayPtr(2026, time.September, 12)}

	require.Empty(t, eventsOnDay(day(2026, time.September, 12), []*domain.Booking{booking}))
}

func TestEventsOnDay_SpanBeyondDisplayedMonth(t *testing.T) {
	// событие началось в прошлом месяце и заканчивается в следующем
	booking := &domain.Booking{
		ID:             "HB-1",
		EventStartDate: dayPtr(2026, time.August, 25),
		EventEndDate:   dayPtr(2026, time.October, 5),
	}
	all := []*domain.Booking{booking}

	require.Len(t, eventsOnDay(day(2026, time.September, 1), all), 1)
	require.Len(t, eventsOnDay(day(2026, time.September, 30), all), 1)
}
