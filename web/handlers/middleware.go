package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"
	"runtime/debug"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/studi-app/studi-api/internal/auth"
	"github.com/studi-app/studi-api/pkg/types"
)

// contextKey is a private type for request context keys.
type contextKey string

const identityKey contextKey = "identity"

// RequireIdentity is middleware that resolves the bearer token via the
// identity gate and stores the resulting Identity in the request context.
// Requests without a valid, active identity are rejected with 401.
func RequireIdentity(next http.Handler, gate *auth.Gate) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if header == "" {
			w.Header().Set("WWW-Authenticate", "Bearer")
			respondError(w, http.StatusUnauthorized, "Not authenticated")
			return
		}

		token := strings.TrimPrefix(header, "Bearer ")
		identity, err := gate.Resolve(token)
		if err != nil {
			w.Header().Set("WWW-Authenticate", "Bearer")
			switch {
			case errors.Is(err, auth.ErrInactiveUser):
				respondError(w, http.StatusUnauthorized, "Inactive user")
			default:
				respondError(w, http.StatusUnauthorized, "Could not validate credentials")
			}
			return
		}

		ctx := context.WithValue(r.Context(), identityKey, identity)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// IdentityFrom returns the Identity stored by RequireIdentity, or nil if
// the request did not pass through the middleware.
func IdentityFrom(ctx context.Context) *types.Identity {
	identity, _ := ctx.Value(identityKey).(*types.Identity)
	return identity
}

// RateLimiter wraps a rate.Limiter for HTTP middleware.
type RateLimiter struct {
	limiter *rate.Limiter
}

// NewRateLimiter creates a new rate limiter.
// reqPerSec is the sustained rate, burst is the maximum burst size.
func NewRateLimiter(reqPerSec float64, burst int) *RateLimiter {
	return &RateLimiter{
		limiter: rate.NewLimiter(rate.Every(time.Duration(1000.0/reqPerSec)*time.Millisecond), burst),
	}
}

// RateLimitMiddleware enforces rate limiting on HTTP requests.
func RateLimitMiddleware(next http.Handler, rl *RateLimiter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !rl.limiter.Allow() {
			respondError(w, http.StatusTooManyRequests, "Rate limit exceeded")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// CORSMiddleware allows the configured browser origins to call the API
// with credentials and answers preflight requests.
func CORSMiddleware(next http.Handler, allowedOrigins []string) http.Handler {
	allowed := make(map[string]bool, len(allowedOrigins))
	for _, origin := range allowedOrigins {
		allowed[origin] = true
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if origin != "" && allowed[origin] {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Credentials", "true")
			w.Header().Set("Vary", "Origin")
		}

		if r.Method == http.MethodOptions && r.Header.Get("Access-Control-Request-Method") != "" {
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Authorization, Content-Type")
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// logPanic records a recovered panic with its stack trace server-side.
func logPanic(r *http.Request, rec any) {
	log.Printf("ERROR: panic serving %s %s: %v\n%s", r.Method, r.URL.Path, rec, debug.Stack())
}

// RecoveryMiddleware converts handler panics into a generic 500 response
// so no internal detail leaks to the caller.
func RecoveryMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				logPanic(r, rec)
				respondError(w, http.StatusInternalServerError, "Internal server error")
			}
		}()
		next.ServeHTTP(w, r)
	})
}
