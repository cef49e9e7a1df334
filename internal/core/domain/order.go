package domain

import "time"

// OrderStatus represents the lifecycle state of a plate-registration order.
type OrderStatus string

const (
	StatusReceived    OrderStatus = "received"
	StatusInProgress  OrderStatus = "in_progress"
	StatusPlatesReady OrderStatus = "plates_ready"
	StatusDelivered   OrderStatus = "delivered"
	StatusCancelled   OrderStatus = "cancelled"
)

// validTransitions defines the allowed state machine transitions.
var validTransitions = map[OrderStatus][]OrderStatus{
	StatusReceived:    {StatusInProgress, StatusCancelled},
	StatusInProgress:  {StatusPlatesReady, StatusCancelled},
	StatusPlatesReady: {StatusDelivered, StatusCancelled},
}

// CanTransitionTo reports whether a transition from current status to next is valid.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, allowed := range validTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// VehicleCategory selects which FIPE table a vehicle belongs to.
type VehicleCategory string

const (
	CategoryCars        VehicleCategory = "carros"
	CategoryMotorcycles VehicleCategory = "motos"
	CategoryTrucks      VehicleCategory = "caminhoes"
)

// ParseVehicleCategory validates a category path segment.
func ParseVehicleCategory(s string) (VehicleCategory, error) {
	switch VehicleCategory(s) {
	case CategoryCars, CategoryMotorcycles, CategoryTrucks:
		return VehicleCategory(s), nil
	}
	return "", ErrUnknownCategory
}

// Vehicle identifies the vehicle an order is registering plates for.
// Brand/Model/ModelYear come from the FIPE catalog lookups.
type Vehicle struct {
	Category  VehicleCategory `json:"category" bson:"category"`
	Brand     string          `json:"brand" bson:"brand"`
	Model     string          `json:"model" bson:"model"`
	ModelYear string          `json:"model_year" bson:"model_year"`
	Plate     string          `json:"plate,omitempty" bson:"plate,omitempty"`
}

// StatusHistoryEntry records a single status transition on an order.
type StatusHistoryEntry struct {
	Status    OrderStatus `json:"status" bson:"status"`
	Timestamp time.Time   `json:"timestamp" bson:"timestamp"`
	Notes     string      `json:"notes,omitempty" bson:"notes,omitempty"`
}

// Order is the plate-registration aggregate root.
type Order struct {
	ID            string               `json:"id" bson:"_id,omitempty"`
	Number        string               `json:"number" bson:"number"`
	ClientID      string               `json:"client_id" bson:"client_id"`
	SellerID      string               `json:"seller_id,omitempty" bson:"seller_id,omitempty"`
	Vehicle       Vehicle              `json:"vehicle" bson:"vehicle"`
	ServiceType   string               `json:"service_type" bson:"service_type"`
	Status        OrderStatus          `json:"status" bson:"status"`
	StatusHistory []StatusHistoryEntry `json:"status_history" bson:"status_history"`
	CreatedAt     time.Time            `json:"created_at" bson:"created_at"`
}
