package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/emplacadora/emplacadora-api/internal/api/metrics"
	"github.com/emplacadora/emplacadora-api/internal/core/domain"
	"github.com/emplacadora/emplacadora-api/internal/core/ports"
)

// DashboardHandler exposes per-user dashboard layout persistence.
type DashboardHandler struct {
	service ports.DashboardService
}

func NewDashboardHandler(service ports.DashboardService) *DashboardHandler {
	return &DashboardHandler{service: service}
}

// GetLayout returns the caller's saved widget arrangement.
// A user who has never saved answers 200 with exists=false, which is
// distinct from a storage failure (500).
//
// @Summary      Get the current user's dashboard layout
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  getLayoutResponse
// @Failure      401  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /v1/dashboard/layout [get]
func (h *DashboardHandler) GetLayout(c echo.Context) error {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	widgets, err := h.service.GetLayout(c.Request().Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrLayoutNotFound) {
			metrics.LayoutLoadsTotal.WithLabelValues("not_found").Inc()
			return c.JSON(http.StatusOK, getLayoutResponse{Exists: false, Widgets: []widgetPayload{}})
		}
		metrics.LayoutLoadsTotal.WithLabelValues("error").Inc()
		return err
	}

	metrics.LayoutLoadsTotal.WithLabelValues("ok").Inc()
	return c.JSON(http.StatusOK, getLayoutResponse{Exists: true, Widgets: toWidgetPayloads(widgets)})
}

// SaveLayout replaces the caller's widget arrangement in full.
//
// @Summary      Save the current user's dashboard layout
// @Tags         dashboard
// @Accept       json
// @Security     BearerAuth
// @Param        body  body  saveLayoutRequest  true  "Full widget list, replaces the stored layout"
// @Success      204
// @Failure      400  {object}  errorResponse
// @Failure      401  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /v1/dashboard/layout [put]
func (h *DashboardHandler) SaveLayout(c echo.Context) error {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req saveLayoutRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	if err := h.service.SaveLayout(c.Request().Context(), userID, toDomainWidgets(req.Widgets)); err != nil {
		var se *domain.StorageError
		if errors.As(err, &se) {
			metrics.LayoutSavesTotal.WithLabelValues("error").Inc()
			return err
		}
		// validation failures from the service (unknown type, duplicate id)
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	metrics.LayoutSavesTotal.WithLabelValues("ok").Inc()
	return c.NoContent(http.StatusNoContent)
}
