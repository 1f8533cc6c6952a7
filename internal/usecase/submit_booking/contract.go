package submit_booking

import (
	"context"

	"github.com/academyhall/booking-gateway/internal/domain"
	"github.com/academyhall/booking-gateway/internal/integrations/cmsapi"
)

// FormSessionService интерфейс менеджера сессий формы
type FormSessionService interface {
	Get(ctx context.Context, formID, userID string) (*domain.FormSession, error)
	SaveErrors(ctx context.Context, fs *domain.FormSession, fieldErrors domain.FieldErrors) error
	Discard(ctx context.Context, formID string) error
}

// CMSClient интерфейс клиента CMS API для создания бронирования
type CMSClient interface {
	CreateBooking(ctx context.Context, payload *cmsapi.BookingCreateRequest) (string, error)
}

// StatsInvalidator планирует сброс кеша статистики после отправки
type StatsInvalidator interface {
	Trigger()
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
