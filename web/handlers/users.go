package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/studi-app/studi-api/internal/users"
	"github.com/studi-app/studi-api/pkg/types"
)

// UserHandlers contains HTTP handlers for the user profile routes.
type UserHandlers struct {
	store *users.Store
}

// NewUserHandlers creates a new UserHandlers instance.
func NewUserHandlers(store *users.Store) *UserHandlers {
	return &UserHandlers{store: store}
}

// GetProfile handles GET /api/users/profile - return the caller's profile,
// creating a default record on first access.
func (h *UserHandlers) GetProfile(w http.ResponseWriter, r *http.Request) {
	identity := IdentityFrom(r.Context())
	respondJSON(w, http.StatusOK, h.store.Get(identity))
}

// UpdateProfile handles PUT /api/users/profile - apply a partial update.
// Provided fields overwrite stored values; preferences merge key-by-key.
func (h *UserHandlers) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	identity := IdentityFrom(r.Context())

	var update types.ProfileUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		respondError(w, http.StatusBadRequest, "Failed to parse request body")
		return
	}

	respondJSON(w, http.StatusOK, h.store.Update(identity, update))
}

// GetPreferences handles GET /api/users/preferences - return the caller's
// preferences, or the defaults when no record exists. Reading preferences
// does not create a record, unlike GetProfile.
func (h *UserHandlers) GetPreferences(w http.ResponseWriter, r *http.Request) {
	identity := IdentityFrom(r.Context())
	respondJSON(w, http.StatusOK, h.store.Preferences(identity))
}

// UpdatePreferences handles PUT /api/users/preferences - merge the given
// keys into the caller's preferences and return the merged mapping.
func (h *UserHandlers) UpdatePreferences(w http.ResponseWriter, r *http.Request) {
	identity := IdentityFrom(r.Context())

	var prefs types.Preferences
	if err := json.NewDecoder(r.Body).Decode(&prefs); err != nil {
		respondError(w, http.StatusBadRequest, "Failed to parse request body")
		return
	}

	respondJSON(w, http.StatusOK, h.store.UpdatePreferences(identity, prefs))
}
