// Package session holds the authenticated-user session: a single source
// of truth carried through request context, serialized into exactly one
// cookie at the HTTP edge.
package session

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"
)

// Role is the CMS-assigned role of the logged-in user
type Role string

const (
	RoleUser     Role = "USER"
	RoleApprover Role = "ADMIN"
)

// ErrInvalidCookie возвращается при нечитаемой сессионной cookie
var ErrInvalidCookie = errors.New("session: invalid session cookie")

// Session describes the authenticated user for one request. SID is the
// CMS-issued session id forwarded on every outbound CMS call.
type Session struct {
	UserID   string `json:"userId"`
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Role     Role   `json:"role"`
	SID      string `json:"sid"`
}

// IsApprover reports whether the user may see all bookings, not only
// their own
func (s *Session) IsApprover() bool {
	return s.Role == RoleApprover
}

type ctxKey struct{}

// NewContext returns ctx carrying the session
func NewContext(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, ctxKey{}, s)
}

// FromContext extracts the session placed by the auth middleware
func FromContext(ctx context.Context) (*Session, bool) {
	s, ok := ctx.Value(ctxKey{}).(*Session)
	return s, ok
}

// EncodeCookie serializes the session into the gateway cookie
func EncodeCookie(s *Session, name string, maxAge int, secure bool) (*http.Cookie, error) {
	payload, err := json.Marshal(s)
	if err != nil {
		return nil, err
	}
	return &http.Cookie{
		Name:     name,
		Value:    base64.URLEncoding.EncodeToString(payload),
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}, nil
}

// DecodeCookie parses the gateway cookie back into a session
func DecodeCookie(c *http.Cookie) (*Session, error) {
	payload, err := base64.URLEncoding.DecodeString(c.Value)
	if err != nil {
		return nil, ErrInvalidCookie
	}
	var s Session
	if err := json.Unmarshal(payload, &s); err != nil {
		return nil, ErrInvalidCookie
	}
	if s.SID == "" {
		return nil, ErrInvalidCookie
	}
	return &s, nil
}

// ExpiredCookie returns a cookie that clears the gateway session
func ExpiredCookie(name string, secure bool) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}
}
