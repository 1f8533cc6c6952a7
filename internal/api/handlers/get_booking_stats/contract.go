package get_booking_stats

import (
	"context"

	"github.com/academyhall/booking-gateway/internal/service/bookings/models"
)

// BookingService интерфейс сервиса чтения бронирований
type BookingService interface {
	Stats(ctx context.Context) (*models.StatsResponse, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
