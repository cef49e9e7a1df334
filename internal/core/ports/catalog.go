package ports

import (
	"context"

	"github.com/emplacadora/emplacadora-api/internal/core/domain"
)

// CatalogItem is one brand, model, or model-year entry from the vehicle
// pricing tables.
type CatalogItem struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// VehicleCatalog looks up vehicle data from the public FIPE pricing tables.
// Implementations are pass-through HTTP clients; a non-2xx upstream response
// surfaces as a fixed error per endpoint.
type VehicleCatalog interface {
	Brands(ctx context.Context, category domain.VehicleCategory) ([]CatalogItem, error)
	Models(ctx context.Context, category domain.VehicleCategory, brandCode string) ([]CatalogItem, error)
	Years(ctx context.Context, category domain.VehicleCategory, brandCode, modelCode string) ([]CatalogItem, error)
}

// BootstrapResult reports the outcome for one demo account.
type BootstrapResult struct {
	Email  string `json:"email"`
	Status string `json:"status"` // "created", "skipped", or "error"
	Reason string `json:"reason,omitempty"`
}

// BootstrapService provisions the fixed set of demo accounts.
type BootstrapService interface {
	ProvisionDemoUsers(ctx context.Context) []BootstrapResult
}
