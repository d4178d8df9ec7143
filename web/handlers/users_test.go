package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studi-app/studi-api/internal/auth"
	"github.com/studi-app/studi-api/internal/users"
	"github.com/studi-app/studi-api/web/handlers"
)

// userTestEnv wires the profile handlers behind the identity middleware
// the way the server does.
type userTestEnv struct {
	mux   *http.ServeMux
	token string
}

func newUserTestEnv(t *testing.T, username, password string) *userTestEnv {
	t.Helper()

	gate := auth.NewGate()
	store := users.NewStore()
	h := handlers.NewUserHandlers(store)

	token, err := gate.Authenticate(username, password)
	require.NoError(t, err)

	mux := http.NewServeMux()
	mux.Handle("/api/users/profile", handlers.RequireIdentity(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			h.GetProfile(w, r)
		case http.MethodPut:
			h.UpdateProfile(w, r)
		}
	}), gate))
	mux.Handle("/api/users/preferences", handlers.RequireIdentity(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			h.GetPreferences(w, r)
		case http.MethodPut:
			h.UpdatePreferences(w, r)
		}
	}), gate))

	return &userTestEnv{mux: mux, token: token}
}

func (e *userTestEnv) do(t *testing.T, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *strings.Reader
	if body != "" {
		reader = strings.NewReader(body)
	} else {
		reader = strings.NewReader("")
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Authorization", "Bearer "+e.token)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	e.mux.ServeHTTP(w, req)
	return w
}

func TestUserHandlers_GetProfileReturnsSeededRecord(t *testing.T) {
	env := newUserTestEnv(t, "johndoe", "secret")

	w := env.do(t, "GET", "/api/users/profile", "")
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "johndoe", body["username"])

	prefs, ok := body["preferences"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "dark", prefs["theme"])
}

func TestUserHandlers_UpdateProfileMergesPreferences(t *testing.T) {
	env := newUserTestEnv(t, "johndoe", "secret")

	w := env.do(t, "PUT", "/api/users/profile",
		`{"bio":"Updated bio","preferences":{"study_reminder":false}}`)
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Updated bio", body["bio"])

	prefs, ok := body["preferences"].(map[string]any)
	require.True(t, ok)
	// Merged key updated, untouched keys preserved.
	assert.Equal(t, false, prefs["study_reminder"])
	assert.Equal(t, "dark", prefs["theme"])
	assert.Equal(t, true, prefs["notifications"])
}

func TestUserHandlers_UpdateProfileRejectsMalformedBody(t *testing.T) {
	env := newUserTestEnv(t, "johndoe", "secret")

	w := env.do(t, "PUT", "/api/users/profile", `{not json`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUserHandlers_UpdateProfileRejectsCompositePreference(t *testing.T) {
	env := newUserTestEnv(t, "johndoe", "secret")

	w := env.do(t, "PUT", "/api/users/profile",
		`{"preferences":{"theme":{"nested":true}}}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUserHandlers_GetPreferencesDefaults(t *testing.T) {
	env := newUserTestEnv(t, "johndoe", "secret")

	w := env.do(t, "GET", "/api/users/preferences", "")
	require.Equal(t, http.StatusOK, w.Code)

	var prefs map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &prefs))
	assert.Equal(t, "dark", prefs["theme"])
	assert.Equal(t, true, prefs["notifications"])
}

func TestUserHandlers_UpdatePreferencesReturnsMergedMapping(t *testing.T) {
	env := newUserTestEnv(t, "johndoe", "secret")

	w := env.do(t, "PUT", "/api/users/preferences", `{"theme":"light","font_size":16}`)
	require.Equal(t, http.StatusOK, w.Code)

	var prefs map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &prefs))
	assert.Equal(t, "light", prefs["theme"])
	assert.Equal(t, float64(16), prefs["font_size"])
	// Untouched keys preserved.
	assert.Equal(t, true, prefs["study_reminder"])
}

func TestUserHandlers_RequiresIdentity(t *testing.T) {
	env := newUserTestEnv(t, "johndoe", "secret")

	req := httptest.NewRequest("GET", "/api/users/profile", nil)
	w := httptest.NewRecorder()
	env.mux.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Not authenticated")
}
