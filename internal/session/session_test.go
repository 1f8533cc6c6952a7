package session

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCookieRoundtrip(t *testing.T) {
	sess := &Session{
		UserID:   "user@example.com",
		FullName: "Jamie Doe",
		Email:    "user@example.com",
		Role:     RoleApprover,
		SID:      "abc123",
	}

	cookie, err := EncodeCookie(sess, "gateway_session", 3600, false)
	require.NoError(t, err)
	require.True(t, cookie.HttpOnly)
	require.Equal(t, http.SameSiteLaxMode, cookie.SameSite)

	decoded, err := DecodeCookie(cookie)
	require.NoError(t, err)
	require.Equal(t, sess, decoded)
	require.True(t, decoded.IsApprover())
}

func TestDecodeCookie_Invalid(t *testing.T) {
	_, err := DecodeCookie(&http.Cookie{Name: "gateway_session", Value: "%%%"})
	require.ErrorIs(t, err, ErrInvalidCookie)

	// валидный base64/JSON, но без sid
	cookie, err := EncodeCookie(&Session{UserID: "u"}, "gateway_session", 3600, false)
	require.NoError(t, err)
	_, err = DecodeCookie(cookie)
	require.ErrorIs(t, err, ErrInvalidCookie)
}

func TestContextRoundtrip(t *testing.T) {
	sess := &Session{UserID: "u", SID: "s", Role: RoleUser}

	ctx := NewContext(context.Background(), sess)
	got, ok := FromContext(ctx)
	require.True(t, ok)
	require.Same(t, sess, got)
	require.False(t, got.IsApprover())

	_, ok = FromContext(context.Background())
	require.False(t, ok)
}

func TestExpiredCookie(t *testing.T) {
	cookie := ExpiredCookie("gateway_session", true)
	require.Equal(t, -1, cookie.MaxAge)
	require.Empty(t, cookie.Value)
	require.True(t, cookie.Secure)
}
