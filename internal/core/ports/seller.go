package ports

import (
	"context"

	"github.com/emplacadora/emplacadora-api/internal/core/domain"
)

// SellerRepository defines persistence operations for sellers.
type SellerRepository interface {
	Create(ctx context.Context, s *domain.Seller) (*domain.Seller, error)
	FindByID(ctx context.Context, id string) (*domain.Seller, error)
	List(ctx context.Context) ([]*domain.Seller, error)
}

// CreateSellerInput carries the data for registering a seller.
type CreateSellerInput struct {
	Name  string
	Email string
	Phone string
}

// SellerService defines seller management operations (admin only; the
// handler layer enforces the role gate).
type SellerService interface {
	CreateSeller(ctx context.Context, input CreateSellerInput) (*domain.Seller, error)
	GetSeller(ctx context.Context, id string) (*domain.Seller, error)
	ListSellers(ctx context.Context) ([]*domain.Seller, error)
}
