package get_calendar

import (
	"context"
	"time"

	"github.com/academyhall/booking-gateway/internal/domain"
)

// CMSClient интерфейс клиента CMS API для календарных данных
type CMSClient interface {
	GetCalendarBookings(ctx context.Context, start, end time.Time, academyID, hallID string) ([]*domain.Booking, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
