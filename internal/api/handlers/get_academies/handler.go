package get_academies

import (
	"errors"
	"net/http"

	"github.com/academyhall/booking-gateway/internal/api/handlers"
	"github.com/academyhall/booking-gateway/internal/service/reference"
)

const msgSessionExpired = "session expired, sign in again"

type Handler struct {
	reference ReferenceService
	logger    Logger
}

func NewHandler(ref ReferenceService, logger Logger) *Handler {
	return &Handler{reference: ref, logger: logger}
}

// Handle GET /api/v1/academies
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	academies, err := h.reference.Academies(r.Context())
	if err != nil {
		if errors.Is(err, reference.ErrUnauthorized) {
			handlers.RespondUnauthorized(w, msgSessionExpired)
			return
		}
		h.logger.Error("GET /academies - Failed to load academies: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromDomain(academies))
}
