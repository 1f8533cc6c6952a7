package get_calendar

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/academyhall/booking-gateway/internal/api/handlers"
	getCalendar "github.com/academyhall/booking-gateway/internal/usecase/get_calendar"
)

const (
	msgInvalidYearMonth = "year and month query parameters are required"
	msgSessionExpired   = "session expired, sign in again"
)

type Handler struct {
	useCase GetCalendarUseCase
	logger  Logger
}

func NewHandler(useCase GetCalendarUseCase, logger Logger) *Handler {
	return &Handler{useCase: useCase, logger: logger}
}

// Handle GET /api/v1/calendar?year=2026&month=8
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	year, err := strconv.Atoi(q.Get("year"))
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidYearMonth)
		return
	}
	month, err := strconv.Atoi(q.Get("month"))
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidYearMonth)
		return
	}

	resp, err := h.useCase.Execute(r.Context(), &getCalendar.Request{
		Year:      year,
		Month:     time.Month(month),
		AcademyID: q.Get("academy"),
		HallID:    q.Get("hall"),
	})
	if err != nil {
		switch {
		case errors.Is(err, getCalendar.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidYearMonth)
		case errors.Is(err, getCalendar.ErrUnauthorized):
			handlers.RespondUnauthorized(w, msgSessionExpired)
		default:
			h.logger.Error("GET /calendar - Failed for %d-%02d: %v", year, month, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(resp))
}
