package login

import (
	"errors"
	"net/http"

	"github.com/academyhall/booking-gateway/internal/api/handlers"
	"github.com/academyhall/booking-gateway/internal/integrations/cmsapi"
	"github.com/academyhall/booking-gateway/internal/session"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgMissingCredentials = "email and password are required"
	msgInvalidCredentials = "invalid email or password"
)

type Handler struct {
	auth       Authenticator
	cookieName string
	cookieAge  int
	secure     bool
	logger     Logger
}

func NewHandler(auth Authenticator, cookieName string, cookieAge int, secure bool, logger Logger) *Handler {
	return &Handler{
		auth:       auth,
		cookieName: cookieName,
		cookieAge:  cookieAge,
		secure:     secure,
		logger:     logger,
	}
}

// Handle POST /api/v1/auth/login
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /auth/login - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if req.Email == "" || req.Password == "" {
		handlers.RespondBadRequest(w, msgMissingCredentials)
		return
	}

	sess, err := h.auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, cmsapi.ErrInvalidCredentials), errors.Is(err, cmsapi.ErrUnauthorized):
			h.logger.Warn("POST /auth/login - Invalid credentials for %s", req.Email)
			handlers.RespondUnauthorized(w, msgInvalidCredentials)
		default:
			h.logger.Error("POST /auth/login - Login failed for %s: %v", req.Email, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	cookie, err := session.EncodeCookie(sess, h.cookieName, h.cookieAge, h.secure)
	if err != nil {
		h.logger.Error("POST /auth/login - Failed to encode session cookie: %v", err)
		handlers.RespondInternalError(w)
		return
	}
	http.SetCookie(w, cookie)

	h.logger.Info("POST /auth/login - User %s signed in (role=%s)", sess.UserID, sess.Role)
	handlers.RespondJSON(w, http.StatusOK, LoginResponse{
		UserID:   sess.UserID,
		FullName: sess.FullName,
		Email:    sess.Email,
		Role:     string(sess.Role),
	})
}
