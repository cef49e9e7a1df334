package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/emplacadora/emplacadora-api/internal/api/metrics"
	"github.com/emplacadora/emplacadora-api/internal/core/domain"
	"github.com/emplacadora/emplacadora-api/internal/core/ports"
)

// CatalogHandler exposes vehicle brand/model/year lookups backed by the
// public FIPE tables.
type CatalogHandler struct {
	catalog ports.VehicleCatalog
}

func NewCatalogHandler(catalog ports.VehicleCatalog) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

// Brands lists brands for a vehicle category.
//
// @Summary      List vehicle brands
// @Tags         catalog
// @Produce      json
// @Security     BearerAuth
// @Param        category  path      string  true  "Vehicle category"  Enums(carros, motos, caminhoes)
// @Success      200       {array}   ports.CatalogItem
// @Failure      400       {object}  errorResponse
// @Failure      502       {object}  errorResponse
// @Router       /v1/catalog/{category}/brands [get]
func (h *CatalogHandler) Brands(c echo.Context) error {
	category, err := parseCategory(c)
	if err != nil {
		return err
	}

	items, err := h.lookup(c, "brands", func() ([]ports.CatalogItem, error) {
		return h.catalog.Brands(c.Request().Context(), category)
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, items)
}

// Models lists models for a brand.
//
// @Summary      List vehicle models for a brand
// @Tags         catalog
// @Produce      json
// @Security     BearerAuth
// @Param        category  path      string  true  "Vehicle category"  Enums(carros, motos, caminhoes)
// @Param        brand     path      string  true  "Brand code"
// @Success      200       {array}   ports.CatalogItem
// @Failure      400       {object}  errorResponse
// @Failure      502       {object}  errorResponse
// @Router       /v1/catalog/{category}/brands/{brand}/models [get]
func (h *CatalogHandler) Models(c echo.Context) error {
	category, err := parseCategory(c)
	if err != nil {
		return err
	}

	items, err := h.lookup(c, "models", func() ([]ports.CatalogItem, error) {
		return h.catalog.Models(c.Request().Context(), category, c.Param("brand"))
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, items)
}

// Years lists model years for a model.
//
// @Summary      List model years for a vehicle model
// @Tags         catalog
// @Produce      json
// @Security     BearerAuth
// @Param        category  path      string  true  "Vehicle category"  Enums(carros, motos, caminhoes)
// @Param        brand     path      string  true  "Brand code"
// @Param        model     path      string  true  "Model code"
// @Success      200       {array}   ports.CatalogItem
// @Failure      400       {object}  errorResponse
// @Failure      502       {object}  errorResponse
// @Router       /v1/catalog/{category}/brands/{brand}/models/{model}/years [get]
func (h *CatalogHandler) Years(c echo.Context) error {
	category, err := parseCategory(c)
	if err != nil {
		return err
	}

	items, err := h.lookup(c, "years", func() ([]ports.CatalogItem, error) {
		return h.catalog.Years(c.Request().Context(), category, c.Param("brand"), c.Param("model"))
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, items)
}

// lookup runs a catalog fetch with metrics; upstream failures surface as 502
// carrying the client's fixed per-endpoint message.
func (h *CatalogHandler) lookup(c echo.Context, endpoint string, fn func() ([]ports.CatalogItem, error)) ([]ports.CatalogItem, error) {
	start := time.Now()
	items, err := fn()
	metrics.CatalogLookupDuration.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())

	if err != nil {
		metrics.CatalogLookupsTotal.WithLabelValues(endpoint, "error").Inc()
		return nil, echo.NewHTTPError(http.StatusBadGateway, err.Error())
	}

	metrics.CatalogLookupsTotal.WithLabelValues(endpoint, "ok").Inc()
	return items, nil
}

func parseCategory(c echo.Context) (domain.VehicleCategory, error) {
	category, err := domain.ParseVehicleCategory(c.Param("category"))
	if err != nil {
		if errors.Is(err, domain.ErrUnknownCategory) {
			return "", echo.NewHTTPError(http.StatusBadRequest, "unknown vehicle category")
		}
		return "", err
	}
	return category, nil
}
