package list_bookings

import (
	"net/url"
	"strconv"

	"github.com/academyhall/booking-gateway/internal/api/handlers"
	"github.com/academyhall/booking-gateway/internal/domain"
	"github.com/academyhall/booking-gateway/internal/listing"
	"github.com/academyhall/booking-gateway/internal/service/bookings/models"
)

// ListBookingsResponse HTTP response model
type ListBookingsResponse struct {
	Items      []*handlers.BookingView `json:"items"`
	TotalCount int                     `json:"totalCount"`
	Page       int                     `json:"page"`
	PageSize   int                     `json:"pageSize"`
	TotalPages int                     `json:"totalPages"`
}

// requestFromQuery собирает запрос листинга из query-параметров.
// Controls воспроизводит поведение фильтров UI: смена любого фильтра
// сбрасывает страницу на первую, явный ?page= применяется после.
func requestFromQuery(q url.Values) *models.ListRequest {
	pageSize := domain.DefaultPageSize
	if raw := q.Get("pageSize"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			pageSize = n
		}
	}

	controls := listing.NewControls(pageSize)
	controls.SetStatus(q.Get("status"))
	controls.SetAcademy(q.Get("academy"))
	controls.SetHall(q.Get("hall"))
	controls.SetSearch(q.Get("search"))

	if raw := q.Get("page"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			controls.SetPage(n)
		}
	}

	return &models.ListRequest{
		Page:     controls.Page(),
		PageSize: controls.PageSize(),
		Filters:  controls.Filters(),
	}
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(resp *models.ListResponse) ListBookingsResponse {
	return ListBookingsResponse{
		Items:      handlers.BookingViewsFrom(resp.Items),
		TotalCount: resp.TotalCount,
		Page:       resp.Page,
		PageSize:   resp.PageSize,
		TotalPages: resp.TotalPages,
	}
}
