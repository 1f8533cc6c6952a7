package get_form_session

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/academyhall/booking-gateway/internal/api/handlers"
	"github.com/academyhall/booking-gateway/internal/service/formsessions"
	"github.com/academyhall/booking-gateway/internal/session"
)

const (
	msgFormNotFound = "form session not found"
	msgAccessDenied = "form session belongs to another user"
)

type Handler struct {
	forms  FormSessionService
	logger Logger
}

func NewHandler(forms FormSessionService, logger Logger) *Handler {
	return &Handler{forms: forms, logger: logger}
}

// Handle GET /api/v1/form-sessions/{formId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sess, ok := session.FromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, "authentication required")
		return
	}
	formID := mux.Vars(r)["formId"]

	fs, err := h.forms.Get(r.Context(), formID, sess.UserID)
	if err != nil {
		switch {
		case errors.Is(err, formsessions.ErrNotFound):
			handlers.RespondNotFound(w, msgFormNotFound)
		case errors.Is(err, formsessions.ErrAccessDenied):
			h.logger.Warn("GET /form-sessions/%s - Access denied for user=%s", formID, sess.UserID)
			handlers.RespondForbidden(w, msgAccessDenied)
		default:
			h.logger.Error("GET /form-sessions/%s - Failed to load: %v", formID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, handlers.FormSessionViewFrom(fs))
}
