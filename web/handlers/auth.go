package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/studi-app/studi-api/internal/auth"
)

// AuthHandlers contains HTTP handlers for the mock authentication routes.
type AuthHandlers struct {
	gate *auth.Gate
}

// NewAuthHandlers creates a new AuthHandlers instance.
func NewAuthHandlers(gate *auth.Gate) *AuthHandlers {
	return &AuthHandlers{gate: gate}
}

// Login handles POST /api/auth/token - exchange mock credentials for a
// bearer token. Accepts either a JSON body or a form-encoded body with
// username and password fields.
func (h *AuthHandlers) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest

	contentType := r.Header.Get("Content-Type")
	if strings.Contains(contentType, "application/json") {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, http.StatusBadRequest, "Failed to parse request body")
			return
		}
	} else {
		if err := r.ParseForm(); err != nil {
			respondError(w, http.StatusBadRequest, "Failed to parse request body")
			return
		}
		req.Username = r.PostFormValue("username")
		req.Password = r.PostFormValue("password")
	}

	token, err := h.gate.Authenticate(req.Username, req.Password)
	if err != nil {
		w.Header().Set("WWW-Authenticate", "Bearer")
		respondError(w, http.StatusUnauthorized, "Incorrect username or password")
		return
	}

	respondJSON(w, http.StatusOK, TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
	})
}

// Me handles GET /api/auth/me - return the resolved caller identity.
func (h *AuthHandlers) Me(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, IdentityFrom(r.Context()))
}
