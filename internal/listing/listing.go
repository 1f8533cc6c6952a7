// Package listing is the pure filter/paginate engine shared by the
// booking list views. It never re-sorts: in-memory collections keep
// their insertion order, remote pages keep whatever order the CMS
// returned.
package listing

import (
	"strings"

	"github.com/academyhall/booking-gateway/internal/domain"
)

// Filters are AND-combined constraints. An empty string or the "all"
// sentinel means "no constraint" on that dimension.
type Filters struct {
	Status  string
	Academy string
	Hall    string
	Search  string
}

// Result страница отфильтрованной выборки
type Result struct {
	Items      []*domain.Booking
	TotalCount int
}

// Paginate filters source and slices out the requested 1-indexed page.
// Requesting a page past the end yields empty Items with the true
// TotalCount, not an error.
func Paginate(source []*domain.Booking, page, pageSize int, f Filters) Result {
	filtered := make([]*domain.Booking, 0, len(source))
	for _, b := range source {
		if Matches(b, f) {
			filtered = append(filtered, b)
		}
	}

	total := len(filtered)
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = domain.DefaultPageSize
	}

	start := (page - 1) * pageSize
	if start >= total {
		return Result{Items: []*domain.Booking{}, TotalCount: total}
	}
	end := start + pageSize
	if end > total {
		end = total
	}
	return Result{Items: filtered[start:end], TotalCount: total}
}

// TotalPages вычисляет число страниц: ceil(totalCount / pageSize)
func TotalPages(totalCount, pageSize int) int {
	if pageSize < 1 {
		return 0
	}
	return (totalCount + pageSize - 1) / pageSize
}

// Matches reports whether the booking passes every active filter
func Matches(b *domain.Booking, f Filters) bool {
	return matchesStatus(b, f.Status) &&
		matchesExact(b.AcademyID, f.Academy) &&
		matchesHall(b, f.Hall) &&
		matchesSearch(b, f.Search)
}

// matchesStatus compares case-insensitively through the bucket mapping:
// a filter of "approved" also accepts upcoming/completed records, a
// filter of "rejected" also accepts cancelled ones.
func matchesStatus(b *domain.Booking, filter string) bool {
	if !active(filter) {
		return true
	}
	want := domain.NormalizeStatus(filter)
	if bucket := want.Bucket(); bucket != domain.BucketUnknown {
		return b.Status.Bucket() == bucket
	}
	return domain.NormalizeStatus(string(b.Status)) == want
}

func matchesExact(value, filter string) bool {
	if !active(filter) {
		return true
	}
	return value == filter
}

// matchesHall accepts the booking when any of its plan rows uses the hall
func matchesHall(b *domain.Booking, filter string) bool {
	if !active(filter) {
		return true
	}
	for _, s := range b.Sessions {
		if s.HallID == filter {
			return true
		}
	}
	return false
}

// matchesSearch does a case-insensitive substring check over a fixed
// ordered field list: event title, booking id, organizer name.
func matchesSearch(b *domain.Booking, term string) bool {
	if term == "" {
		return true
	}
	needle := strings.ToLower(term)
	for _, field := range []string{b.EventTitle, b.ID, b.Organizer} {
		if strings.Contains(strings.ToLower(field), needle) {
			return true
		}
	}
	return false
}

func active(filter string) bool {
	return filter != "" && filter != domain.FilterAll
}
