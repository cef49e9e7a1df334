package domain

import "time"

// Role is the closed set of account roles. Anything read from storage that is
// not one of these values is rejected at the boundary, never coerced.
type Role string

const (
	RoleAdmin     Role = "admin"
	RoleSeller    Role = "seller"
	RolePhysical  Role = "physical"  // individual client
	RoleJuridical Role = "juridical" // business client
)

// ParseRole validates a stored role string against the closed enum.
// Unknown values fail with ErrUnknownRole; callers treat the profile as
// invalid (fail-closed), there is no default role.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleAdmin, RoleSeller, RolePhysical, RoleJuridical:
		return Role(s), nil
	}
	return "", ErrUnknownRole
}

// IsClient reports whether the role is one of the two client roles.
func (r Role) IsClient() bool {
	return r == RolePhysical || r == RoleJuridical
}

// User models an authenticated principal and its application profile.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// AuthState is the resolved authentication snapshot published to consumers.
// Authenticated is true only when a live session AND a valid profile were
// both resolved; a session without a matching profile is not authenticated.
type AuthState struct {
	Authenticated bool
	User          *User
}

// Session is a server-side record backing one issued access token.
type Session struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}
