package login

import (
	"context"

	"github.com/academyhall/booking-gateway/internal/session"
)

// Authenticator интерфейс аутентификации через CMS
type Authenticator interface {
	Login(ctx context.Context, email, password string) (*session.Session, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
