package reference

import (
	"context"
	"errors"
	"fmt"

	"github.com/academyhall/booking-gateway/internal/domain"
	"github.com/academyhall/booking-gateway/internal/integrations/cmsapi"
)

const (
	academiesCacheKey  = "reference:academies"
	masterDataCacheKey = "reference:masterdata"
)

// Service отдаёт справочные данные CMS (академии с залами, мастер-данные
// формы), кешируя их, так как меняются они редко.
type Service struct {
	cms     CMSClient
	cache   Cache
	metrics CacheMetrics
	logger  Logger
}

func New(cms CMSClient, cache Cache, metrics CacheMetrics, logger Logger) *Service {
	return &Service{
		cms:     cms,
		cache:   cache,
		metrics: metrics,
		logger:  logger,
	}
}

// Academies returns every academy together with its training halls.
func (s *Service) Academies(ctx context.Context) ([]domain.Academy, error) {
	var cached []domain.Academy
	if s.cacheGet(ctx, academiesCacheKey, &cached) {
		return cached, nil
	}

	academies, err := s.cms.GetAcademiesWithHalls(ctx)
	if err != nil {
		return nil, s.mapCMSError("Academies", err)
	}
	s.cacheSet(ctx, academiesCacheKey, academies)
	return academies, nil
}

// MasterData returns the form lookup lists (codes, verticals, departments,
// event titles, booking types, IT requirement options).
func (s *Service) MasterData(ctx context.Context) (*domain.MasterData, error) {
	var cached domain.MasterData
	if s.cacheGet(ctx, masterDataCacheKey, &cached) {
		return &cached, nil
	}

	data, err := s.cms.GetMasterData(ctx)
	if err != nil {
		return nil, s.mapCMSError("MasterData", err)
	}
	s.cacheSet(ctx, masterDataCacheKey, data)
	return data, nil
}

// Invalidate drops both cached reference sets.
func (s *Service) Invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, academiesCacheKey, masterDataCacheKey); err != nil {
		s.logger.Warn("[Invalidate] cache delete failed: %v", err)
	}
}

// cacheGet читает из кеша; любые сбои деградируют до похода в CMS.
func (s *Service) cacheGet(ctx context.Context, key string, out interface{}) bool {
	if s.cache == nil {
		return false
	}
	hit, err := s.cache.GetJSON(ctx, key, out)
	if err != nil {
		s.logger.Warn("[cacheGet] read %q failed: %v", key, err)
		return false
	}
	if s.metrics != nil {
		if hit {
			s.metrics.ObserveCacheHit(key)
		} else {
			s.metrics.ObserveCacheMiss(key)
		}
	}
	return hit
}

func (s *Service) cacheSet(ctx context.Context, key string, v interface{}) {
	if s.cache == nil {
		return
	}
	if err := s.cache.SetJSON(ctx, key, v); err != nil {
		s.logger.Warn("[cacheSet] write %q failed: %v", key, err)
	}
}

func (s *Service) mapCMSError(op string, err error) error {
	if errors.Is(err, cmsapi.ErrUnauthorized) {
		return fmt.Errorf("%w: %v", ErrUnauthorized, err)
	}
	s.logger.Error("[%s] CMS request failed: %v", op, err)
	return fmt.Errorf("%w: %v", ErrInternal, err)
}
