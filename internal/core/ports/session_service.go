package ports

import (
	"context"

	"github.com/emplacadora/emplacadora-api/internal/core/domain"
)

// SessionService owns authentication state: credential login, session
// restore, and logout.
type SessionService interface {
	// Login verifies credentials and returns a signed access token plus the
	// resolved profile. Authentication succeeds only when the credential
	// check AND the profile role parse both succeed.
	Login(ctx context.Context, email, password string) (string, *domain.User, error)

	// Resolve restores authentication state from an access token. It never
	// returns an error: any failure along the way (bad token, revoked or
	// expired session, missing profile, storage error, unknown role) yields
	// an unauthenticated snapshot. Fail-closed.
	Resolve(ctx context.Context, token string) domain.AuthState

	// Logout revokes the token's session. Local success is unconditional:
	// a store failure is logged, not surfaced.
	Logout(ctx context.Context, token string)
}
