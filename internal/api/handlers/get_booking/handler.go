package get_booking

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/academyhall/booking-gateway/internal/api/handlers"
	"github.com/academyhall/booking-gateway/internal/service/bookings"
)

const (
	msgBookingNotFound = "booking not found"
	msgSessionExpired  = "session expired, sign in again"
)

type Handler struct {
	bookings BookingService
	logger   Logger
}

func NewHandler(svc BookingService, logger Logger) *Handler {
	return &Handler{bookings: svc, logger: logger}
}

// Handle GET /api/v1/bookings/{bookingId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID := mux.Vars(r)["bookingId"]

	booking, err := h.bookings.Get(r.Context(), bookingID)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrBookingNotFound):
			handlers.RespondNotFound(w, msgBookingNotFound)
		case errors.Is(err, bookings.ErrInvalidInput):
			handlers.RespondBadRequest(w, "booking id is required")
		case errors.Is(err, bookings.ErrUnauthorized):
			handlers.RespondUnauthorized(w, msgSessionExpired)
		default:
			h.logger.Error("GET /bookings/%s - Failed to load: %v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, handlers.BookingViewFrom(booking))
}
