package service

import (
	"context"
	"crypto/rand"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/emplacadora/emplacadora-api/internal/core/domain"
	"github.com/emplacadora/emplacadora-api/internal/core/ports"
)

const (
	defaultPageLimit = 20
	maxPageLimit     = 100
)

type OrderService struct {
	repo   ports.OrderRepository
	logger zerolog.Logger
}

func NewOrderService(repo ports.OrderRepository, logger zerolog.Logger) *OrderService {
	return &OrderService{repo: repo, logger: logger}
}

// CreateOrder opens a plate-registration order. Client roles always create
// orders for themselves; admins and sellers may create on behalf of a client.
func (s *OrderService) CreateOrder(ctx context.Context, input ports.CreateOrderInput) (*ports.OrderResult, error) {
	category, err := domain.ParseVehicleCategory(input.Vehicle.Category)
	if err != nil {
		return nil, err
	}

	clientID := input.ClientID
	if input.Role.IsClient() {
		clientID = input.UserID
	}
	if clientID == "" {
		return nil, fmt.Errorf("create order: client id is required")
	}

	now := time.Now().UTC()
	order := &domain.Order{
		Number:      generateOrderNumber(),
		ClientID:    clientID,
		SellerID:    input.SellerID,
		ServiceType: input.ServiceType,
		Status:      domain.StatusReceived,
		CreatedAt:   now,
		Vehicle: domain.Vehicle{
			Category:  category,
			Brand:     input.Vehicle.Brand,
			Model:     input.Vehicle.Model,
			ModelYear: input.Vehicle.ModelYear,
			Plate:     input.Vehicle.Plate,
		},
		StatusHistory: []domain.StatusHistoryEntry{
			{Status: domain.StatusReceived, Timestamp: now},
		},
	}

	if err := s.repo.Create(ctx, order); err != nil {
		s.logger.Error().Err(err).Msg("failed to create order")
		return nil, err
	}

	s.logger.Info().Str("number", order.Number).Str("client_id", clientID).Msg("order created")

	return &ports.OrderResult{
		Number:    order.Number,
		Status:    string(order.Status),
		CreatedAt: order.CreatedAt,
	}, nil
}

// GetOrder retrieves one order. Client roles only see their own orders.
func (s *OrderService) GetOrder(ctx context.Context, input ports.GetOrderInput) (*domain.Order, error) {
	clientID := ""
	if input.Role.IsClient() {
		clientID = input.UserID
	}
	return s.repo.FindByNumber(ctx, input.Number, clientID)
}

// ListOrders returns a page of orders. Client roles are scoped to their own.
func (s *OrderService) ListOrders(ctx context.Context, input ports.ListOrdersInput) (*ports.ListOrdersResult, error) {
	page := input.Page
	if page < 1 {
		page = 1
	}
	limit := input.Limit
	if limit < 1 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}

	filter := ports.ListOrdersFilter{
		Status:      input.Status,
		ServiceType: input.ServiceType,
		Search:      input.Search,
		Page:        page,
		Limit:       limit,
	}
	if input.Role.IsClient() {
		filter.ClientID = input.UserID
	}

	items, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))
	return &ports.ListOrdersResult{
		Items:      items,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages,
	}, nil
}

// UpdateStatus applies a status transition. Only admins and sellers may
// move an order through its lifecycle, and only along valid transitions.
func (s *OrderService) UpdateStatus(ctx context.Context, input ports.UpdateStatusInput) (*domain.Order, error) {
	if input.Role.IsClient() {
		return nil, domain.ErrForbidden
	}

	order, err := s.repo.FindByNumber(ctx, input.Number, "")
	if err != nil {
		return nil, err
	}

	next := domain.OrderStatus(input.Status)
	if !order.Status.CanTransitionTo(next) {
		return nil, fmt.Errorf("%w: %s -> %s", domain.ErrInvalidTransition, order.Status, next)
	}

	entry := domain.StatusHistoryEntry{
		Status:    next,
		Timestamp: time.Now().UTC(),
		Notes:     input.Notes,
	}
	if err := s.repo.UpdateStatus(ctx, input.Number, next, entry); err != nil {
		s.logger.Error().Err(err).Str("number", input.Number).Msg("status update failed")
		return nil, err
	}

	order.Status = next
	order.StatusHistory = append(order.StatusHistory, entry)

	s.logger.Info().Str("number", input.Number).Str("status", string(next)).Msg("order status updated")
	return order, nil
}

// generateOrderNumber returns a unique order number in the format EMP-XXXXXXXX.
func generateOrderNumber() string {
	b := make([]byte, 4)
	if _, err := rand.Read(b); err != nil {
		return fmt.Sprintf("EMP-%08X", time.Now().UnixNano()&0xFFFFFFFF)
	}
	return fmt.Sprintf("EMP-%08X", b)
}
