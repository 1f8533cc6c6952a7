package get_calendar

import (
	"context"

	getCalendar "github.com/academyhall/booking-gateway/internal/usecase/get_calendar"
)

// GetCalendarUseCase интерфейс use case месячной сетки календаря
type GetCalendarUseCase interface {
	Execute(ctx context.Context, req *getCalendar.Request) (*getCalendar.Response, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
