package bookings

import (
	"context"
	"time"

	"github.com/academyhall/booking-gateway/internal/domain"
	"github.com/academyhall/booking-gateway/internal/integrations/cmsapi"
)

// CMSClient интерфейс клиента CMS API для операций с бронированиями
type CMSClient interface {
	GetBookingList(ctx context.Context, req cmsapi.ListRequest) ([]*domain.Booking, int, error)
	GetBookingDetails(ctx context.Context, bookingID string) (*domain.Booking, error)
	GetBookingStats(ctx context.Context) (map[domain.BookingStatus]int, error)
}

// Cache интерфейс кеша счётчиков статистики; реализация может отсутствовать
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

// timeout guard for detached invalidation calls
const invalidateTimeout = 5 * time.Second
