package handler

import (
	"github.com/emplacadora/emplacadora-api/internal/core/domain"
	"github.com/emplacadora/emplacadora-api/internal/core/ports"
)

// --- Request → Service input ---

func toCreateOrderInput(req createOrderRequest, userID string, role domain.Role) ports.CreateOrderInput {
	return ports.CreateOrderInput{
		Role:     role,
		UserID:   userID,
		ClientID: req.ClientID,
		SellerID: req.SellerID,
		Vehicle: ports.VehicleInput{
			Category:  req.Vehicle.Category,
			Brand:     req.Vehicle.Brand,
			Model:     req.Vehicle.Model,
			ModelYear: req.Vehicle.ModelYear,
			Plate:     req.Vehicle.Plate,
		},
		ServiceType: req.ServiceType,
	}
}

// --- Domain → HTTP response ---

func toOrderResponse(o *domain.Order) orderResponse {
	history := make([]statusHistoryItemResponse, 0, len(o.StatusHistory))
	for _, h := range o.StatusHistory {
		history = append(history, statusHistoryItemResponse{
			Status:    string(h.Status),
			Timestamp: h.Timestamp.UTC(),
			Notes:     h.Notes,
		})
	}

	return orderResponse{
		Number:   o.Number,
		ClientID: o.ClientID,
		SellerID: o.SellerID,
		Vehicle: vehicleResponse{
			Category:  string(o.Vehicle.Category),
			Brand:     o.Vehicle.Brand,
			Model:     o.Vehicle.Model,
			ModelYear: o.Vehicle.ModelYear,
			Plate:     o.Vehicle.Plate,
		},
		ServiceType:   o.ServiceType,
		Status:        string(o.Status),
		StatusHistory: history,
		CreatedAt:     o.CreatedAt.UTC(),
	}
}

func toListOrdersResponse(res *ports.ListOrdersResult) listOrdersResponse {
	data := make([]orderResponse, 0, len(res.Items))
	for _, o := range res.Items {
		data = append(data, toOrderResponse(o))
	}
	return listOrdersResponse{
		Data: data,
		Pagination: paginationResponse{
			Total:      res.Total,
			Page:       res.Page,
			Limit:      res.Limit,
			TotalPages: res.TotalPages,
		},
	}
}
