package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/emplacadora/emplacadora-api/internal/core/domain"
	"github.com/emplacadora/emplacadora-api/internal/core/ports"
)

type SellerService struct {
	repo ports.SellerRepository
	log  zerolog.Logger
}

func NewSellerService(repo ports.SellerRepository, log zerolog.Logger) *SellerService {
	return &SellerService{repo: repo, log: log}
}

func (s *SellerService) CreateSeller(ctx context.Context, input ports.CreateSellerInput) (*domain.Seller, error) {
	if input.Name == "" || input.Email == "" {
		return nil, domain.ErrInvalidCredentials
	}

	seller := &domain.Seller{
		Name:      input.Name,
		Email:     input.Email,
		Phone:     input.Phone,
		Active:    true,
		CreatedAt: time.Now().UTC(),
	}

	created, err := s.repo.Create(ctx, seller)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("seller_id", created.ID).Msg("seller registered")
	return created, nil
}

func (s *SellerService) GetSeller(ctx context.Context, id string) (*domain.Seller, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *SellerService) ListSellers(ctx context.Context) ([]*domain.Seller, error) {
	return s.repo.List(ctx)
}
