package handler

import "time"

// --- Order request / response types ---

type vehicleRequest struct {
	Category  string `json:"category"   validate:"required,oneof=carros motos caminhoes"`
	Brand     string `json:"brand"      validate:"required"`
	Model     string `json:"model"      validate:"required"`
	ModelYear string `json:"model_year" validate:"required"`
	Plate     string `json:"plate"`
}

type createOrderRequest struct {
	ClientID    string         `json:"client_id"`
	SellerID    string         `json:"seller_id"`
	Vehicle     vehicleRequest `json:"vehicle"      validate:"required"`
	ServiceType string         `json:"service_type" validate:"required,oneof=first_plate replacement transfer"`
}

type createOrderResponse struct {
	Number    string    `json:"number"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

type vehicleResponse struct {
	Category  string `json:"category"`
	Brand     string `json:"brand"`
	Model     string `json:"model"`
	ModelYear string `json:"model_year"`
	Plate     string `json:"plate,omitempty"`
}

type statusHistoryItemResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Notes     string    `json:"notes,omitempty"`
}

type orderResponse struct {
	Number        string                      `json:"number"`
	ClientID      string                      `json:"client_id"`
	SellerID      string                      `json:"seller_id,omitempty"`
	Vehicle       vehicleResponse             `json:"vehicle"`
	ServiceType   string                      `json:"service_type"`
	Status        string                      `json:"status"`
	StatusHistory []statusHistoryItemResponse `json:"status_history"`
	CreatedAt     time.Time                   `json:"created_at"`
}

type updateOrderStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=in_progress plates_ready delivered cancelled"`
	Notes  string `json:"notes"`
}

type paginationResponse struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"total_pages"`
}

type listOrdersResponse struct {
	Data       []orderResponse    `json:"data"`
	Pagination paginationResponse `json:"pagination"`
}
