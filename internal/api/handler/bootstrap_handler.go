package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/emplacadora/emplacadora-api/internal/core/ports"
)

// BootstrapHandler provisions the fixed demo accounts. The route is only
// registered when demo bootstrap is enabled in configuration.
type BootstrapHandler struct {
	service ports.BootstrapService
}

func NewBootstrapHandler(service ports.BootstrapService) *BootstrapHandler {
	return &BootstrapHandler{service: service}
}

type bootstrapResponse struct {
	Message string                  `json:"message"`
	Results []ports.BootstrapResult `json:"results"`
}

// DemoUsers creates the missing demo accounts and reports one result per account.
//
// @Summary      Provision demo accounts
// @Tags         bootstrap
// @Produce      json
// @Success      200  {object}  bootstrapResponse
// @Router       /v1/bootstrap/demo-users [post]
func (h *BootstrapHandler) DemoUsers(c echo.Context) error {
	results := h.service.ProvisionDemoUsers(c.Request().Context())

	created := 0
	for _, r := range results {
		if r.Status == "created" {
			created++
		}
	}

	msg := "all demo accounts already exist"
	if created > 0 {
		msg = "demo accounts provisioned"
	}

	return c.JSON(http.StatusOK, bootstrapResponse{Message: msg, Results: results})
}
