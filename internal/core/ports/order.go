package ports

import (
	"context"
	"time"

	"github.com/emplacadora/emplacadora-api/internal/core/domain"
)

// ListOrdersFilter carries all query parameters for listing orders.
// ClientID is enforced by the service layer for client roles.
type ListOrdersFilter struct {
	ClientID    string // empty = no filter (admin/seller); non-empty = scoped to client
	Status      string
	ServiceType string
	Search      string // partial match on number or vehicle plate
	Page        int    // 1-based
	Limit       int    // capped at 100 by the service
}

// OrderRepository defines persistence operations for orders.
type OrderRepository interface {
	Create(ctx context.Context, o *domain.Order) error
	// FindByNumber retrieves an order. When clientID is non-empty the query
	// is additionally filtered by client_id.
	FindByNumber(ctx context.Context, number, clientID string) (*domain.Order, error)
	// List returns a page of orders matching filter and the total count.
	List(ctx context.Context, filter ListOrdersFilter) ([]*domain.Order, int64, error)
	// UpdateStatus appends a history entry and sets the new status.
	UpdateStatus(ctx context.Context, number string, status domain.OrderStatus, entry domain.StatusHistoryEntry) error
}

// VehicleInput identifies the vehicle on a new order.
type VehicleInput struct {
	Category  string
	Brand     string
	Model     string
	ModelYear string
	Plate     string
}

// CreateOrderInput carries all data needed to open an order.
type CreateOrderInput struct {
	Role        domain.Role
	UserID      string
	ClientID    string // ignored for client roles; forced to UserID
	SellerID    string
	Vehicle     VehicleInput
	ServiceType string
}

// OrderResult is returned after creating an order.
type OrderResult struct {
	Number    string
	Status    string
	CreatedAt time.Time
}

// GetOrderInput carries the parameters for retrieving a single order.
type GetOrderInput struct {
	Number string
	Role   domain.Role
	UserID string
}

// ListOrdersInput carries all parameters for the list endpoint.
type ListOrdersInput struct {
	Role        domain.Role
	UserID      string
	Status      string
	ServiceType string
	Search      string
	Page        int
	Limit       int
}

// ListOrdersResult is returned by ListOrders.
type ListOrdersResult struct {
	Items      []*domain.Order
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// UpdateStatusInput carries a requested status transition.
type UpdateStatusInput struct {
	Number string
	Role   domain.Role
	Status string
	Notes  string
}

// OrderService defines use-case operations for orders.
type OrderService interface {
	CreateOrder(ctx context.Context, input CreateOrderInput) (*OrderResult, error)
	GetOrder(ctx context.Context, input GetOrderInput) (*domain.Order, error)
	ListOrders(ctx context.Context, input ListOrdersInput) (*ListOrdersResult, error)
	UpdateStatus(ctx context.Context, input UpdateStatusInput) (*domain.Order, error)
}
