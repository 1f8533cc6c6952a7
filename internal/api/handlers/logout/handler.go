package logout

import (
	"net/http"

	"github.com/academyhall/booking-gateway/internal/api/handlers"
	"github.com/academyhall/booking-gateway/internal/session"
)

type Handler struct {
	terminator SessionTerminator
	cookieName string
	secure     bool
	logger     Logger
}

func NewHandler(terminator SessionTerminator, cookieName string, secure bool, logger Logger) *Handler {
	return &Handler{
		terminator: terminator,
		cookieName: cookieName,
		secure:     secure,
		logger:     logger,
	}
}

// Handle POST /api/v1/auth/logout
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Сбой на стороне CMS не мешает погасить локальную cookie
	if err := h.terminator.Logout(r.Context()); err != nil {
		h.logger.Warn("POST /auth/logout - CMS logout failed: %v", err)
	}

	http.SetCookie(w, session.ExpiredCookie(h.cookieName, h.secure))

	if sess, ok := session.FromContext(r.Context()); ok {
		h.logger.Info("POST /auth/logout - User %s signed out", sess.UserID)
	}
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
