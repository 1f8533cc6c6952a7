package get_calendar

import (
	"github.com/academyhall/booking-gateway/internal/api/handlers"
	"github.com/academyhall/booking-gateway/internal/domain"
	getCalendar "github.com/academyhall/booking-gateway/internal/usecase/get_calendar"
)

// DayView одна ячейка месячной сетки
type DayView struct {
	Date         string                  `json:"date"`
	InMonth      bool                    `json:"inMonth"`
	BookingCount int                     `json:"bookingCount"`
	Bookings     []*handlers.BookingView `json:"bookings"`
}

// CalendarResponse HTTP response model
type CalendarResponse struct {
	Year  int       `json:"year"`
	Month int       `json:"month"`
	Days  []DayView `json:"days"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getCalendar.Response) CalendarResponse {
	out := CalendarResponse{
		Year:  resp.Year,
		Month: int(resp.Month),
		Days:  make([]DayView, 0, len(resp.Days)),
	}
	for _, day := range resp.Days {
		out.Days = append(out.Days, DayView{
			Date:         day.Date.Format(domain.DateFormat),
			InMonth:      day.InMonth,
			BookingCount: day.BookingCount,
			Bookings:     handlers.BookingViewsFrom(day.Bookings),
		})
	}
	return out
}
