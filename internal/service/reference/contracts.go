package reference

import (
	"context"

	"github.com/academyhall/booking-gateway/internal/domain"
)

// CMSClient интерфейс клиента CMS API для справочных данных
type CMSClient interface {
	GetAcademiesWithHalls(ctx context.Context) ([]domain.Academy, error)
	GetMasterData(ctx context.Context) (*domain.MasterData, error)
}

// Cache интерфейс кеша справочников; реализация может отсутствовать
type Cache interface {
	GetJSON(ctx context.Context, key string, out interface{}) (bool, error)
	SetJSON(ctx context.Context, key string, v interface{}) error
	Delete(ctx context.Context, keys ...string) error
}

// CacheMetrics учитывает попадания и промахи кеша; может быть nil
type CacheMetrics interface {
	ObserveCacheHit(key string)
	ObserveCacheMiss(key string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
