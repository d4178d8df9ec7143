// Package auth implements the identity gate: it resolves bearer tokens to
// caller identities. Credentials are validated against a fixed in-memory
// user table and tokens live only for the process lifetime; there is no
// real credential storage, expiry, or revocation.
package auth

import (
	"errors"
	"sync"

	"github.com/google/uuid"
	"github.com/studi-app/studi-api/pkg/types"
)

// Errors returned by the gate.
var (
	// ErrInvalidCredentials is returned when a login attempt fails.
	ErrInvalidCredentials = errors.New("incorrect username or password")

	// ErrUnauthorized is returned when a bearer token cannot be resolved
	// to an identity.
	ErrUnauthorized = errors.New("could not validate credentials")

	// ErrInactiveUser is returned when a token resolves to a disabled
	// account.
	ErrInactiveUser = errors.New("inactive user")
)

// mockUser pairs an identity with its mock password.
type mockUser struct {
	identity types.Identity
	password string
}

// Gate validates bearer credentials and yields caller identities.
// Sessions are held in a mutex-guarded map keyed by token.
type Gate struct {
	mu       sync.RWMutex
	users    map[string]mockUser
	sessions map[string]string // token -> username
}

// NewGate creates a gate seeded with the fixed mock user table.
func NewGate() *Gate {
	return &Gate{
		users: map[string]mockUser{
			"johndoe": {
				identity: types.Identity{
					Username: "johndoe",
					Email:    "johndoe@example.com",
					FullName: "John Doe",
				},
				password: "secret",
			},
			"janedoe": {
				identity: types.Identity{
					Username: "janedoe",
					Email:    "janedoe@example.com",
					FullName: "Jane Doe",
					Disabled: true,
				},
				password: "secret2",
			},
		},
		sessions: make(map[string]string),
	}
}

// Authenticate checks a username/password pair against the mock user table
// and returns a new bearer token on success.
func (g *Gate) Authenticate(username, password string) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	user, ok := g.users[username]
	if !ok || user.password != password {
		return "", ErrInvalidCredentials
	}

	token := uuid.New().String()
	g.sessions[token] = username
	return token, nil
}

// Resolve maps a bearer token to the identity it was issued for.
// Unknown tokens yield ErrUnauthorized; tokens for disabled accounts yield
// ErrInactiveUser.
func (g *Gate) Resolve(token string) (*types.Identity, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	username, ok := g.sessions[token]
	if !ok {
		return nil, ErrUnauthorized
	}

	user, ok := g.users[username]
	if !ok {
		return nil, ErrUnauthorized
	}
	if user.identity.Disabled {
		return nil, ErrInactiveUser
	}

	identity := user.identity
	return &identity, nil
}

// Revoke invalidates a bearer token. Revoking an unknown token is a no-op.
func (g *Gate) Revoke(token string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.sessions, token)
}
