package ports

import (
	"context"

	"github.com/emplacadora/emplacadora-api/internal/core/domain"
)

// SessionStore persists server-side sessions. Get fails with
// domain.ErrSessionNotFound for expired or revoked sessions.
type SessionStore interface {
	Create(ctx context.Context, sess *domain.Session) error
	Get(ctx context.Context, id string) (*domain.Session, error)
	Delete(ctx context.Context, id string) error
}
