package create_form_session

import (
	"context"

	"github.com/academyhall/booking-gateway/internal/domain"
)

// FormSessionService интерфейс менеджера сессий формы
type FormSessionService interface {
	Create(ctx context.Context, userID string) (*domain.FormSession, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
