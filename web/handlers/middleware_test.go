package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studi-app/studi-api/internal/auth"
	"github.com/studi-app/studi-api/web/handlers"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identity := handlers.IdentityFrom(r.Context())
		if identity == nil {
			http.Error(w, "no identity", http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
	})
}

func TestRequireIdentity(t *testing.T) {
	gate := auth.NewGate()
	protected := handlers.RequireIdentity(okHandler(), gate)

	validToken, err := gate.Authenticate("johndoe", "secret")
	require.NoError(t, err)
	inactiveToken, err := gate.Authenticate("janedoe", "secret2")
	require.NoError(t, err)

	tests := []struct {
		name           string
		authorization  string
		expectedStatus int
		expectedDetail string
	}{
		{"missing header", "", http.StatusUnauthorized, "Not authenticated"},
		{"garbage token", "Bearer nope", http.StatusUnauthorized, "Could not validate credentials"},
		{"inactive user", "Bearer " + inactiveToken, http.StatusUnauthorized, "Inactive user"},
		{"valid token", "Bearer " + validToken, http.StatusOK, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/api/users/profile", nil)
			if tt.authorization != "" {
				req.Header.Set("Authorization", tt.authorization)
			}
			w := httptest.NewRecorder()

			protected.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedDetail != "" {
				assert.Contains(t, w.Body.String(), tt.expectedDetail)
				assert.Equal(t, "Bearer", w.Header().Get("WWW-Authenticate"))
			}
		})
	}
}

func TestRateLimitMiddleware(t *testing.T) {
	limiter := handlers.NewRateLimiter(1.0, 2)
	handler := handlers.RateLimitMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}), limiter)

	// Burst of 2 passes, the third request is limited.
	for i := 0; i < 2; i++ {
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, httptest.NewRequest("GET", "/", nil))
		assert.Equal(t, http.StatusOK, w.Code, "request %d should pass", i+1)
	}

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest("GET", "/", nil))
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Contains(t, w.Body.String(), "Rate limit exceeded")
}

func TestCORSMiddleware(t *testing.T) {
	origins := []string{"http://localhost:3000"}
	handler := handlers.CORSMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}), origins)

	t.Run("allowed origin gets CORS headers", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/health", nil)
		req.Header.Set("Origin", "http://localhost:3000")
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)

		assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))
		assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))
	})

	t.Run("unknown origin gets no CORS headers", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/health", nil)
		req.Header.Set("Origin", "http://evil.com")
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)

		assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("preflight is answered without reaching the handler", func(t *testing.T) {
		req := httptest.NewRequest("OPTIONS", "/api/agents/query", nil)
		req.Header.Set("Origin", "http://localhost:3000")
		req.Header.Set("Access-Control-Request-Method", "POST")
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), "POST")
	})
}

func TestRecoveryMiddleware(t *testing.T) {
	handler := handlers.RecoveryMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest("GET", "/api/users/profile", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	// The panic message must not leak to the caller.
	assert.JSONEq(t, `{"detail":"Internal server error"}`, w.Body.String())
}
