package ports

import (
	"context"

	"github.com/emplacadora/emplacadora-api/internal/core/domain"
)

// DashboardRepository persists one layout record per user.
type DashboardRepository interface {
	// Upsert replaces the full record for layout.UserID, creating it when absent.
	Upsert(ctx context.Context, layout *domain.DashboardLayout) error
	// FindByUserID fails with domain.ErrLayoutNotFound when no record exists.
	FindByUserID(ctx context.Context, userID string) (*domain.DashboardLayout, error)
}

// DashboardService is the layout store's read/write contract.
type DashboardService interface {
	// SaveLayout replaces the user's widget list in full, preserving order.
	SaveLayout(ctx context.Context, userID string, widgets []domain.Widget) error
	// GetLayout returns the saved widgets, or domain.ErrLayoutNotFound when
	// the user has never saved a layout. Any other failure is a
	// *domain.StorageError.
	GetLayout(ctx context.Context, userID string) ([]domain.Widget, error)
}
