package formsessions

import (
	"context"

	"github.com/academyhall/booking-gateway/internal/domain"
)

// FormSessionRepository интерфейс хранилища сессий формы
type FormSessionRepository interface {
	Create(ctx context.Context, fs *domain.FormSession) error
	GetByID(ctx context.Context, id string) (*domain.FormSession, error)
	Update(ctx context.Context, fs *domain.FormSession) error
	Delete(ctx context.Context, id string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
