package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/emplacadora/emplacadora-api/internal/core/domain"
	"github.com/emplacadora/emplacadora-api/internal/core/ports"
)

// SellerHandler handles seller management (admin only; RBAC enforced in the router).
type SellerHandler struct {
	service ports.SellerService
}

func NewSellerHandler(service ports.SellerService) *SellerHandler {
	return &SellerHandler{service: service}
}

type createSellerRequest struct {
	Name  string `json:"name"  validate:"required"`
	Email string `json:"email" validate:"required,email"`
	Phone string `json:"phone"`
}

type sellerResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
}

// Create registers a seller.
//
// @Summary      Register a seller
// @Tags         sellers
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createSellerRequest  true  "Seller details"
// @Success      201   {object}  sellerResponse
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /v1/sellers [post]
func (h *SellerHandler) Create(c echo.Context) error {
	var req createSellerRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	seller, err := h.service.CreateSeller(c.Request().Context(), ports.CreateSellerInput{
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, toSellerResponse(seller))
}

// Get retrieves one seller.
//
// @Summary      Get a seller
// @Tags         sellers
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Seller id"
// @Success      200  {object}  sellerResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/sellers/{id} [get]
func (h *SellerHandler) Get(c echo.Context) error {
	seller, err := h.service.GetSeller(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toSellerResponse(seller))
}

// List returns all sellers.
//
// @Summary      List sellers
// @Tags         sellers
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  sellerResponse
// @Router       /v1/sellers [get]
func (h *SellerHandler) List(c echo.Context) error {
	sellers, err := h.service.ListSellers(c.Request().Context())
	if err != nil {
		return err
	}

	out := make([]sellerResponse, 0, len(sellers))
	for _, s := range sellers {
		out = append(out, toSellerResponse(s))
	}
	return c.JSON(http.StatusOK, out)
}

func toSellerResponse(s *domain.Seller) sellerResponse {
	return sellerResponse{
		ID:        s.ID,
		Name:      s.Name,
		Email:     s.Email,
		Phone:     s.Phone,
		Active:    s.Active,
		CreatedAt: s.CreatedAt.UTC(),
	}
}
