package submit_booking

import (
	"context"

	submitBooking "github.com/academyhall/booking-gateway/internal/usecase/submit_booking"
)

// SubmitBookingUseCase интерфейс use case отправки формы
type SubmitBookingUseCase interface {
	Execute(ctx context.Context, req *submitBooking.Request) (*submitBooking.Response, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
