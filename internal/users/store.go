// Package users implements the in-memory profile store. Records live for
// the process lifetime only; restarting the server resets all profile
// state.
package users

import (
	"sync"

	"github.com/studi-app/studi-api/pkg/types"
)

// DefaultPreferences returns the preferences assigned to a profile created
// lazily on first read or write.
func DefaultPreferences() types.Preferences {
	return types.Preferences{
		"theme":          types.String("light"),
		"notifications":  types.Bool(true),
		"study_reminder": types.Bool(false),
	}
}

// Store maps usernames to profile records. All access is serialized by a
// mutex; callers receive copies, never the stored record itself.
type Store struct {
	mu       sync.RWMutex
	profiles map[string]*types.ProfileRecord
}

// NewStore creates a store seeded with the johndoe demo profile.
func NewStore() *Store {
	return &Store{
		profiles: map[string]*types.ProfileRecord{
			"johndoe": {
				Username:  "johndoe",
				Email:     ptr("johndoe@example.com"),
				FullName:  ptr("John Doe"),
				Bio:       ptr("I am a student interested in computer science and mathematics."),
				AvatarURL: ptr("https://example.com/avatars/johndoe.jpg"),
				Preferences: types.Preferences{
					"theme":          types.String("dark"),
					"notifications":  types.Bool(true),
					"study_reminder": types.Bool(true),
				},
			},
		},
	}
}

// Get returns the caller's profile record, creating one with default
// preferences if none exists. The created record persists for the rest of
// the process lifetime.
func (s *Store) Get(identity *types.Identity) *types.ProfileRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	return clone(s.getOrCreateLocked(identity, DefaultPreferences()))
}

// Update applies a partial update to the caller's profile, creating a
// default record first if none exists. Provided fields overwrite the
// stored values; preferences are merged key-by-key rather than replaced.
// Returns the full updated record.
func (s *Store) Update(identity *types.Identity, update types.ProfileUpdate) *types.ProfileRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	record := s.getOrCreateLocked(identity, DefaultPreferences())

	if update.Email != nil {
		record.Email = ptr(*update.Email)
	}
	if update.FullName != nil {
		record.FullName = ptr(*update.FullName)
	}
	if update.Bio != nil {
		record.Bio = ptr(*update.Bio)
	}
	if update.AvatarURL != nil {
		record.AvatarURL = ptr(*update.AvatarURL)
	}
	if update.Preferences != nil {
		if record.Preferences == nil {
			record.Preferences = types.Preferences{}
		}
		record.Preferences.Merge(update.Preferences)
	}

	return clone(record)
}

// Preferences returns the caller's preference mapping, or the defaults if
// no record exists. Unlike Get, this does NOT lazily create a record — an
// intentional asymmetry carried over from the original API behavior.
func (s *Store) Preferences(identity *types.Identity) types.Preferences {
	s.mu.RLock()
	defer s.mu.RUnlock()

	record, ok := s.profiles[identity.Username]
	if !ok {
		return DefaultPreferences()
	}
	return record.Preferences.Clone()
}

// UpdatePreferences merges the given keys into the caller's preferences,
// creating a record with empty preferences if none exists, and returns the
// merged mapping.
func (s *Store) UpdatePreferences(identity *types.Identity, prefs types.Preferences) types.Preferences {
	s.mu.Lock()
	defer s.mu.Unlock()

	record := s.getOrCreateLocked(identity, types.Preferences{})
	if record.Preferences == nil {
		record.Preferences = types.Preferences{}
	}
	record.Preferences.Merge(prefs)

	return record.Preferences.Clone()
}

// getOrCreateLocked fetches the record for the identity, creating one with
// the given initial preferences if absent. Caller must hold the write lock.
func (s *Store) getOrCreateLocked(identity *types.Identity, initial types.Preferences) *types.ProfileRecord {
	if record, ok := s.profiles[identity.Username]; ok {
		return record
	}

	record := &types.ProfileRecord{
		Username:    identity.Username,
		Preferences: initial,
	}
	if identity.Email != "" {
		record.Email = ptr(identity.Email)
	}
	if identity.FullName != "" {
		record.FullName = ptr(identity.FullName)
	}
	s.profiles[identity.Username] = record
	return record
}

// clone returns a deep copy of a record so callers cannot mutate stored
// state through the return value.
func clone(record *types.ProfileRecord) *types.ProfileRecord {
	out := &types.ProfileRecord{
		Username:    record.Username,
		Preferences: record.Preferences.Clone(),
	}
	if record.Email != nil {
		out.Email = ptr(*record.Email)
	}
	if record.FullName != nil {
		out.FullName = ptr(*record.FullName)
	}
	if record.Bio != nil {
		out.Bio = ptr(*record.Bio)
	}
	if record.AvatarURL != nil {
		out.AvatarURL = ptr(*record.AvatarURL)
	}
	return out
}

func ptr(s string) *string { return &s }
