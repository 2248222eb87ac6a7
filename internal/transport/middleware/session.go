package middleware

import (
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/apper-apps/feedbackhub-driver-pixel/pkg/ctxutil"
)

// SessionHeader identifies the viewer whose board state a request works on.
const SessionHeader = "X-Session-Id"

const maxSessionIDLen = 128

// Session reads the viewer session id from X-Session-Id, issuing a fresh
// UUID when it is missing or unusable. The id is stored in the context and
// always echoed so clients can keep it.
func Session() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := strings.TrimSpace(r.Header.Get(SessionHeader))
			if id == "" || len(id) > maxSessionIDLen {
				id = uuid.New().String()
			}
			w.Header().Set(SessionHeader, id)
			next.ServeHTTP(w, r.WithContext(ctxutil.WithSessionID(r.Context(), id)))
		})
	}
}
