package get_academies

import (
	"context"

	"github.com/academyhall/booking-gateway/internal/domain"
)

// ReferenceService интерфейс сервиса справочных данных
type ReferenceService interface {
	Academies(ctx context.Context) ([]domain.Academy, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
