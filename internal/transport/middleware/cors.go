package middleware

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/apper-apps/feedbackhub-driver-pixel/internal/config"
)

// originPolicy is the parsed allowed_origins list.
type originPolicy struct {
	any    bool
	listed map[string]struct{}
}

func parseOrigins(raw string) originPolicy {
	p := originPolicy{listed: make(map[string]struct{})}
	for _, o := range strings.Split(raw, ",") {
		switch o = strings.TrimSpace(o); o {
		case "":
		case "*":
			p.any = true
		default:
			p.listed[o] = struct{}{}
		}
	}
	return p
}

func (p originPolicy) allows(origin string) bool {
	if origin == "" {
		return false
	}
	if p.any {
		return true
	}
	_, ok := p.listed[origin]
	return ok
}

// CORS lets browser front ends on the allowed origins call the API and read
// the session and request id headers. OPTIONS requests are answered here.
func CORS(cfg config.CORSConfig) Middleware {
	policy := parseOrigins(cfg.AllowedOrigins)
	exposed := SessionHeader + ", " + RequestIDHeader
	maxAge := strconv.Itoa(cfg.MaxAge)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := w.Header()
			h.Add("Vary", "Origin")

			origin := r.Header.Get("Origin")
			if policy.allows(origin) {
				h.Set("Access-Control-Allow-Origin", origin)
				h.Set("Access-Control-Expose-Headers", exposed)
				if cfg.AllowCredentials {
					h.Set("Access-Control-Allow-Credentials", "true")
				}
			}

			if r.Method != http.MethodOptions {
				next.ServeHTTP(w, r)
				return
			}
			h.Set("Access-Control-Allow-Methods", cfg.AllowedMethods)
			h.Set("Access-Control-Allow-Headers", cfg.AllowedHeaders)
			h.Set("Access-Control-Max-Age", maxAge)
			w.WriteHeader(http.StatusNoContent)
		})
	}
}
