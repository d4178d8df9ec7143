package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studi-app/studi-api/internal/auth"
	"github.com/studi-app/studi-api/web/handlers"
)

func TestAuthHandlers_LoginJSON(t *testing.T) {
	gate := auth.NewGate()
	h := handlers.NewAuthHandlers(gate)

	req := httptest.NewRequest("POST", "/api/auth/token",
		strings.NewReader(`{"username":"johndoe","password":"secret"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	h.Login(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp handlers.TokenResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.AccessToken)
	assert.Equal(t, "bearer", resp.TokenType)

	// The issued token resolves to the user.
	identity, err := gate.Resolve(resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "johndoe", identity.Username)
}

func TestAuthHandlers_LoginForm(t *testing.T) {
	h := handlers.NewAuthHandlers(auth.NewGate())

	form := url.Values{"username": {"johndoe"}, "password": {"secret"}}
	req := httptest.NewRequest("POST", "/api/auth/token", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()

	h.Login(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAuthHandlers_LoginRejectsBadCredentials(t *testing.T) {
	h := handlers.NewAuthHandlers(auth.NewGate())

	req := httptest.NewRequest("POST", "/api/auth/token",
		strings.NewReader(`{"username":"johndoe","password":"wrong"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	h.Login(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"detail":"Incorrect username or password"}`, w.Body.String())
}

func TestAuthHandlers_LoginRejectsMalformedJSON(t *testing.T) {
	h := handlers.NewAuthHandlers(auth.NewGate())

	req := httptest.NewRequest("POST", "/api/auth/token", strings.NewReader(`{`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	h.Login(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAuthHandlers_Me(t *testing.T) {
	gate := auth.NewGate()
	h := handlers.NewAuthHandlers(gate)

	token, err := gate.Authenticate("johndoe", "secret")
	require.NoError(t, err)

	protected := handlers.RequireIdentity(http.HandlerFunc(h.Me), gate)

	req := httptest.NewRequest("GET", "/api/auth/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()

	protected.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "johndoe", body["username"])
	assert.Equal(t, "John Doe", body["full_name"])
}
