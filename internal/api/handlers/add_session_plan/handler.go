package add_session_plan

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

// Handle POST /api/v1/form-sessions/{formId}/plans
// Неполный черновик не ошибка HTTP уровня: форма возвращается с
// записанной list-level ошибкой, и клиент показывает её у списка.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sess, ok := session.FromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, "authentication required")
		return
	}
	formID := mux.Vars(r)["formId"]

	fs, err := h.forms.AddSession(r.Context(), formID, sess.UserID)
	if err != nil {
		switch {
		case errors.Is(err, formsessions.ErrNotFound):
			handlers.RespondNotFound(w, msgFormNotFound)
		case errors.Is(err, formsessions.ErrAccessDenied):
			h.logger.Warn("POST /form-sessions/%s/plans - Access denied for user=%s", formID, sess.UserID)
			handlers.RespondForbidden(w, msgAccessDenied)
		default:
			h.logger.Error("POST /form-sessions/%s/plans - Failed to add session: %v", formID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, handlers.FormSessionViewFrom(fs))
}
