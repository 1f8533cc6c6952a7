package get_booking_stats

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

// Handle GET /api/v1/bookings/stats
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	stats, err := h.bookings.Stats(r.Context())
	if err != nil {
		if errors.Is(err, bookings.ErrUnauthorized) {
			handlers.RespondUnauthorized(w, msgSessionExpired)
			return
		}
		h.logger.Error("GET /bookings/stats - Failed to load stats: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, stats)
}
