package get_calendar

import (
	"time"

	"github.com/academyhall/booking-gateway/internal/domain"
)

// Request параметры месячной сетки календаря
type Request struct {
	Year      int
	Month     time.Month
	AcademyID string
	HallID    string
}

// Day одна ячейка сетки: дата и активные в этот день бронирования
type Day struct {
	Date         time.Time
	InMonth      bool
	Bookings     []*domain.Booking
	BookingCount int
}

// Response полная месячная сетка, от начала недели с 1-м числом до
// конца недели с последним числом месяца.
type Response struct {
	Year  int
	Month time.Month
	Days  []Day
}
