package list_bookings

import (
	"errors"
	"net/http"

	"github.com/academyhall/booking-gateway/internal/api/handlers"
	"github.com/academyhall/booking-gateway/internal/service/bookings"
)

const msgSessionExpired = "session expired, sign in again"

type Handler struct {
	bookings BookingService
	logger   Logger
}

func NewHandler(svc BookingService, logger Logger) *Handler {
	return &Handler{bookings: svc, logger: logger}
}

// Handle GET /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req := requestFromQuery(r.URL.Query())

	resp, err := h.bookings.List(r.Context(), req)
	if err != nil {
		if errors.Is(err, bookings.ErrUnauthorized) {
			handlers.RespondUnauthorized(w, msgSessionExpired)
			return
		}
		h.logger.Error("GET /bookings - Failed to list: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(resp))
}
