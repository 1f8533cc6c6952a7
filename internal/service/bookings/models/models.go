package models

import (
	"github.com/academyhall/booking-gateway/internal/domain"
	"github.com/academyhall/booking-gateway/internal/listing"
)

// ListRequest параметры запроса списка бронирований
type ListRequest struct {
	Page     int
	PageSize int
	Filters  listing.Filters
}

// ListResponse одна страница списка бронирований
type ListResponse struct {
	Items      []*domain.Booking
	TotalCount int
	Page       int
	PageSize   int
	TotalPages int
}

// StatsResponse счётчики дашборда, агрегированные по бакетам статусов
type StatsResponse struct {
	Total    int `json:"total"`
	Approved int `json:"approved"`
	Pending  int `json:"pending"`
	Rejected int `json:"rejected"`
}

// StatsFromCounts сворачивает счётчики по статусам CMS в бакеты:
// approved/upcoming/completed → Approved, rejected/cancelled → Rejected.
func StatsFromCounts(counts map[domain.BookingStatus]int) *StatsResponse {
	stats := &StatsResponse{}
	for status, n := range counts {
		stats.Total += n
		switch status.Bucket() {
		case domain.BucketApproved:
			stats.Approved += n
		case domain.BucketPending:
			stats.Pending += n
		case domain.BucketRejected:
			stats.Rejected += n
		}
	}
	return stats
}
