package remove_session_plan

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

// Handle DELETE /api/v1/form-sessions/{formId}/plans/{entryId}
// Удаление несуществующей записи идемпотентно и отвечает так же, как
// успешное.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sess, ok := session.FromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, "authentication required")
		return
	}
	vars := mux.Vars(r)
	formID := vars["formId"]
	entryID := vars["entryId"]

	fs, err := h.forms.RemoveSession(r.Context(), formID, sess.UserID, entryID)
	if err != nil {
		switch {
		case errors.Is(err, formsessions.ErrNotFound):
			handlers.RespondNotFound(w, msgFormNotFound)
		case errors.Is(err, formsessions.ErrAccessDenied):
			h.logger.Warn("DELETE /form-sessions/%s/plans/%s - Access denied for user=%s", formID, entryID, sess.UserID)
			handlers.RespondForbidden(w, msgAccessDenied)
		default:
			h.logger.Error("DELETE /form-sessions/%s/plans/%s - Failed to remove: %v", formID, entryID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, handlers.FormSessionViewFrom(fs))
}
