package get_master_data

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

// Handle GET /api/v1/master-data
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	data, err := h.reference.MasterData(r.Context())
	if err != nil {
		if errors.Is(err, reference.ErrUnauthorized) {
			handlers.RespondUnauthorized(w, msgSessionExpired)
			return
		}
		h.logger.Error("GET /master-data - Failed to load master data: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromDomain(data))
}
