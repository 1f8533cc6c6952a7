package get_booking

import (
	"context"

	"github.com/academyhall/booking-gateway/internal/domain"
)

// BookingService интерфейс сервиса чтения бронирований
type BookingService interface {
	Get(ctx context.Context, bookingID string) (*domain.Booking, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
