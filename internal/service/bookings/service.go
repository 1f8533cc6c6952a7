package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/academyhall/booking-gateway/internal/domain"
	"github.com/academyhall/booking-gateway/internal/integrations/cmsapi"
	"github.com/academyhall/booking-gateway/internal/listing"
	"github.com/academyhall/booking-gateway/internal/service/bookings/models"
	"github.com/academyhall/booking-gateway/internal/session"
)

const statsCacheKey = "booking:stats"

// searchFetchLimit — сколько записей запрашивается у CMS за один раз, когда
// поиск и пагинация выполняются на нашей стороне.
const searchFetchLimit = 500

// Service предоставляет операции чтения бронирований поверх CMS API
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

// List returns one page of bookings for the current user. Approver sessions
// see every booking and the CMS does the paging; regular users get their own
// bookings, and a free-text search is applied locally because the CMS list
// endpoint cannot search.
func (s *Service) List(ctx context.Context, req *models.ListRequest) (*models.ListResponse, error) {
	sess, ok := session.FromContext(ctx)
	if !ok {
		return nil, ErrUnauthorized
	}

	page := req.Page
	if page < 1 {
		page = 1
	}
	pageSize := req.PageSize
	if pageSize < 1 {
		pageSize = domain.DefaultPageSize
	}
	if pageSize > domain.MaxPageSize {
		pageSize = domain.MaxPageSize
	}

	onlyMine := !sess.IsApprover()
	if onlyMine && req.Filters.Search != "" {
		return s.listSearchLocal(ctx, req.Filters, page, pageSize)
	}

	items, total, err := s.cms.GetBookingList(ctx, cmsapi.ListRequest{
		Page:     page,
		PageSize: pageSize,
		Status:   req.Filters.Status,
		Academy:  req.Filters.Academy,
		Hall:     req.Filters.Hall,
		Search:   req.Filters.Search,
		OnlyMine: onlyMine,
	})
	if err != nil {
		return nil, s.mapCMSError("GetBookingList", err)
	}

	return &models.ListResponse{
		Items:      items,
		TotalCount: total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: listing.TotalPages(total, pageSize),
	}, nil
}

// listSearchLocal fetches the user's bookings in one large page and runs
// filtering and paging through the local engine.
func (s *Service) listSearchLocal(ctx context.Context, filters listing.Filters, page, pageSize int) (*models.ListResponse, error) {
	items, _, err := s.cms.GetBookingList(ctx, cmsapi.ListRequest{
		Page:     1,
		PageSize: searchFetchLimit,
		OnlyMine: true,
	})
	if err != nil {
		return nil, s.mapCMSError("GetBookingList", err)
	}

	result := listing.Paginate(items, page, pageSize, filters)
	return &models.ListResponse{
		Items:      result.Items,
		TotalCount: result.TotalCount,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: listing.TotalPages(result.TotalCount, pageSize),
	}, nil
}

// Get returns full details of a single booking.
func (s *Service) Get(ctx context.Context, bookingID string) (*domain.Booking, error) {
	if bookingID == "" {
		return nil, fmt.Errorf("%w: empty booking id", ErrInvalidInput)
	}

	booking, err := s.cms.GetBookingDetails(ctx, bookingID)
	if err != nil {
		if errors.Is(err, cmsapi.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrBookingNotFound, bookingID)
		}
		return nil, s.mapCMSError("GetBookingDetails", err)
	}
	return booking, nil
}

// Stats returns the dashboard counters, read through the cache when one is
// configured. Cache failures degrade to a direct CMS call.
func (s *Service) Stats(ctx context.Context) (*models.StatsResponse, error) {
	if s.cache != nil {
		var cached models.StatsResponse
		hit, err := s.cache.GetJSON(ctx, statsCacheKey, &cached)
		if err != nil {
			s.logger.Warn("[Stats] cache read failed: %v", err)
		} else if hit {
			if s.metrics != nil {
				s.metrics.ObserveCacheHit(statsCacheKey)
			}
			return &cached, nil
		} else if s.metrics != nil {
			s.metrics.ObserveCacheMiss(statsCacheKey)
		}
	}

	counts, err := s.cms.GetBookingStats(ctx)
	if err != nil {
		return nil, s.mapCMSError("GetBookingStats", err)
	}
	stats := models.StatsFromCounts(counts)

	if s.cache != nil {
		if err := s.cache.SetJSON(ctx, statsCacheKey, stats); err != nil {
			s.logger.Warn("[Stats] cache write failed: %v", err)
		}
	}
	return stats, nil
}

// InvalidateStats drops the cached counters. It is triggered after booking
// submissions and runs detached from the request that caused it.
func (s *Service) InvalidateStats() {
	if s.cache == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), invalidateTimeout)
	defer cancel()

	if err := s.cache.Delete(ctx, statsCacheKey); err != nil {
		s.logger.Warn("[InvalidateStats] cache delete failed: %v", err)
		return
	}
	s.logger.Info("[InvalidateStats] stats cache dropped")
}

func (s *Service) mapCMSError(op string, err error) error {
	switch {
	case errors.Is(err, cmsapi.ErrUnauthorized):
		return fmt.Errorf("%w: %v", ErrUnauthorized, err)
	case errors.Is(err, cmsapi.ErrRemote), errors.Is(err, cmsapi.ErrInvalidResponse):
		s.logger.Error("[%s] CMS request failed: %v", op, err)
		return fmt.Errorf("%w: %v", ErrInternal, err)
	default:
		s.logger.Error("[%s] unexpected error: %v", op, err)
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}
}
