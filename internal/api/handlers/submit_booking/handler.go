package submit_booking

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/academyhall/booking-gateway/internal/api/handlers"
	"github.com/academyhall/booking-gateway/internal/session"
	submitBooking "github.com/academyhall/booking-gateway/internal/usecase/submit_booking"
)

const (
	msgFormNotFound   = "form session not found"
	msgAccessDenied   = "form session belongs to another user"
	msgSubmitInFlight = "submission already in progress"
	msgSessionExpired = "session expired, sign in again"
	msgRemoteRejected = "booking was rejected by the reservation system"
)

type Handler struct {
	useCase SubmitBookingUseCase
	logger  Logger
}

func NewHandler(useCase SubmitBookingUseCase, logger Logger) *Handler {
	return &Handler{useCase: useCase, logger: logger}
}

// Handle POST /api/v1/form-sessions/{formId}/submit
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sess, ok := session.FromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, "authentication required")
		return
	}
	formID := mux.Vars(r)["formId"]

	result, err := h.useCase.Execute(r.Context(), &submitBooking.Request{
		FormID: formID,
		UserID: sess.UserID,
	})
	if err != nil {
		switch {
		case errors.Is(err, submitBooking.ErrValidation):
			// Ошибки валидации это не сбой: клиент получает карту
			// поле → сообщение и подсвечивает форму
			handlers.RespondJSON(w, http.StatusUnprocessableEntity, result)

		case errors.Is(err, submitBooking.ErrFormNotFound):
			handlers.RespondNotFound(w, msgFormNotFound)

		case errors.Is(err, submitBooking.ErrAccessDenied):
			h.logger.Warn("POST /form-sessions/%s/submit - Access denied for user=%s", formID, sess.UserID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, submitBooking.ErrSubmitInFlight):
			handlers.RespondConflict(w, msgSubmitInFlight)

		case errors.Is(err, submitBooking.ErrUnauthorized):
			handlers.RespondUnauthorized(w, msgSessionExpired)

		case errors.Is(err, submitBooking.ErrRemoteRejected):
			handlers.RespondError(w, http.StatusBadGateway, msgRemoteRejected)

		default:
			h.logger.Error("POST /form-sessions/%s/submit - Failed: %v", formID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /form-sessions/%s/submit - Booking %s created", formID, result.BookingID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
