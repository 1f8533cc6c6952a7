package update_form_session

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/academyhall/booking-gateway/internal/api/handlers"
	"github.com/academyhall/booking-gateway/internal/domain"
	"github.com/academyhall/booking-gateway/internal/service/formsessions"
	"github.com/academyhall/booking-gateway/internal/session"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidFieldPath   = "invalid field path, expected section.name"
	msgInvalidFieldValue  = "invalid field value"
	msgFormNotFound       = "form session not found"
	msgAccessDenied       = "form session belongs to another user"
)

type Handler struct {
	forms  FormSessionService
	logger Logger
}

func NewHandler(forms FormSessionService, logger Logger) *Handler {
	return &Handler{forms: forms, logger: logger}
}

// Handle PATCH /api/v1/form-sessions/{formId}/fields
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sess, ok := session.FromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, "authentication required")
		return
	}
	formID := mux.Vars(r)["formId"]

	var req UpdateFieldRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /form-sessions/%s/fields - Invalid request body: %v", formID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	field, err := domain.FieldFromPath(req.Field)
	if err != nil {
		h.logger.Warn("PATCH /form-sessions/%s/fields - Invalid field path %q: %v", formID, req.Field, err)
		handlers.RespondBadRequest(w, msgInvalidFieldPath)
		return
	}

	fs, err := h.forms.UpdateField(r.Context(), formID, sess.UserID, field, req.Value, req.Values)
	if err != nil {
		switch {
		case errors.Is(err, formsessions.ErrNotFound):
			handlers.RespondNotFound(w, msgFormNotFound)
		case errors.Is(err, formsessions.ErrAccessDenied):
			h.logger.Warn("PATCH /form-sessions/%s/fields - Access denied for user=%s", formID, sess.UserID)
			handlers.RespondForbidden(w, msgAccessDenied)
		case errors.Is(err, formsessions.ErrInvalidField):
			handlers.RespondBadRequest(w, msgInvalidFieldValue)
		default:
			h.logger.Error("PATCH /form-sessions/%s/fields - Failed to update field %s: %v", formID, field.Path(), err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, handlers.FormSessionViewFrom(fs))
}
