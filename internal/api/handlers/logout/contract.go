package logout

import "context"

// SessionTerminator интерфейс завершения CMS сессии
type SessionTerminator interface {
	Logout(ctx context.Context) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
