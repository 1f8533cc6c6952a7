package create_form_session

import (
	"net/http"

	"github.com/academyhall/booking-gateway/internal/api/handlers"
	"github.com/academyhall/booking-gateway/internal/session"
)

type Handler struct {
	forms  FormSessionService
	logger Logger
}

func NewHandler(forms FormSessionService, logger Logger) *Handler {
	return &Handler{forms: forms, logger: logger}
}

// Handle POST /api/v1/form-sessions
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sess, ok := session.FromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, "authentication required")
		return
	}

	fs, err := h.forms.Create(r.Context(), sess.UserID)
	if err != nil {
		h.logger.Error("POST /form-sessions - Failed to create form session for user=%s: %v", sess.UserID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusCreated, handlers.FormSessionViewFrom(fs))
}
