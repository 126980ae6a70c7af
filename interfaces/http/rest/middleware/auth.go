package middleware

import (
	"net"
	"net/http"
	"strings"

	"fitit-backend/pkg/auth"
	"fitit-backend/pkg/common"
)

// Authenticate validates the bearer token on every request and injects the
// user's claims into the context. Requests are rate limited per client IP
// before any token work happens.
func Authenticate(validator *auth.JWTValidator, limiter auth.RateLimiter) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if limiter != nil {
				allowed, _ := limiter.Allow(r.Context(), clientIP(r))
				if !allowed {
					common.RespondError(w, http.StatusTooManyRequests, "TOO_MANY_REQUESTS", "rate limit exceeded")
					return
				}
			}

			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				common.RespondError(w, http.StatusUnauthorized, "UNAUTHORIZED", "missing authorization header")
				return
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				common.RespondError(w, http.StatusUnauthorized, "UNAUTHORIZED", "invalid authorization header format")
				return
			}

			claims, err := validator.Validate(parts[1])
			if err != nil {
				common.RespondError(w, http.StatusUnauthorized, "UNAUTHORIZED", "invalid or expired token")
				return
			}

			next.ServeHTTP(w, r.WithContext(auth.WithUser(r.Context(), claims)))
		})
	}
}

func clientIP(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		if idx := strings.Index(forwarded, ","); idx > 0 {
			return strings.TrimSpace(forwarded[:idx])
		}
		return strings.TrimSpace(forwarded)
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
