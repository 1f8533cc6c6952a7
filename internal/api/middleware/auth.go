package middleware

import (
	"net/http"

	"github.com/academyhall/booking-gateway/internal/api/handlers"
	"github.com/academyhall/booking-gateway/internal/session"
)

const msgAuthRequired = "authentication required"

// Auth extracts the signed-in user from the session cookie and puts it
// on the request context. Requests without a decodable cookie get 401.
func Auth(cookieName string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(cookieName)
			if err != nil {
				handlers.RespondUnauthorized(w, msgAuthRequired)
				return
			}

			sess, err := session.DecodeCookie(cookie)
			if err != nil {
				handlers.RespondUnauthorized(w, msgAuthRequired)
				return
			}

			next.ServeHTTP(w, r.WithContext(session.NewContext(r.Context(), sess)))
		})
	}
}

// RequireApprover pass only approver sessions; everyone else gets 403.
// Must run after Auth.
func RequireApprover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess, ok := session.FromContext(r.Context())
		if !ok {
			handlers.RespondUnauthorized(w, msgAuthRequired)
			return
		}
		if !sess.IsApprover() {
			handlers.RespondForbidden(w, "approver role required")
			return
		}
		next.ServeHTTP(w, r)
	})
}
