// Package fipe is a pass-through client for the public FIPE vehicle pricing
// tables. Responses are cached because the tables change at most monthly.
package fipe

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/emplacadora/emplacadora-api/internal/core/domain"
	"github.com/emplacadora/emplacadora-api/internal/core/ports"
)

// DefaultBaseURL is the public FIPE API host.
const DefaultBaseURL = "https://parallelum.com.br/fipe/api/v1"

// Fixed failure messages, one per endpoint; upstream status codes and bodies
// are not forwarded to callers.
var (
	ErrBrandsFetch = errors.New("failed to fetch vehicle brands")
	ErrModelsFetch = errors.New("failed to fetch vehicle models")
	ErrYearsFetch  = errors.New("failed to fetch vehicle model years")
)

// Cache is the optional read-through cache for raw response payloads.
type Cache interface {
	Get(ctx context.Context, parts ...string) ([]byte, error)
	Set(ctx context.Context, payload []byte, parts ...string) error
}

// Client calls the three FIPE lookup endpoints.
type Client struct {
	baseURL string
	http    *http.Client
	cache   Cache
	log     zerolog.Logger
}

// NewClient creates a Client. cache may be nil to disable caching.
func NewClient(baseURL string, cache Cache, log zerolog.Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 15 * time.Second},
		cache:   cache,
		log:     log,
	}
}

// fipeItem matches the upstream payload shape.
type fipeItem struct {
	Codigo string `json:"codigo"`
	Nome   string `json:"nome"`
}

// Brands lists the brands for a vehicle category.
func (c *Client) Brands(ctx context.Context, category domain.VehicleCategory) ([]ports.CatalogItem, error) {
	path := fmt.Sprintf("/%s/marcas", category)
	items, err := c.fetchList(ctx, path, []string{string(category), "marcas"})
	if err != nil {
		return nil, ErrBrandsFetch
	}
	return items, nil
}

// Models lists the models for a brand within a category. The upstream
// response nests the list under a "modelos" key.
func (c *Client) Models(ctx context.Context, category domain.VehicleCategory, brandCode string) ([]ports.CatalogItem, error) {
	path := fmt.Sprintf("/%s/marcas/%s/modelos", category, brandCode)
	payload, err := c.fetch(ctx, path, []string{string(category), "marcas", brandCode, "modelos"})
	if err != nil {
		return nil, ErrModelsFetch
	}

	var body struct {
		Modelos []fipeItem `json:"modelos"`
	}
	if err := json.Unmarshal(payload, &body); err != nil {
		return nil, ErrModelsFetch
	}
	return toCatalogItems(body.Modelos), nil
}

// Years lists the model years for a model within a brand and category.
func (c *Client) Years(ctx context.Context, category domain.VehicleCategory, brandCode, modelCode string) ([]ports.CatalogItem, error) {
	path := fmt.Sprintf("/%s/marcas/%s/modelos/%s/anos", category, brandCode, modelCode)
	items, err := c.fetchList(ctx, path, []string{string(category), "marcas", brandCode, "modelos", modelCode, "anos"})
	if err != nil {
		return nil, ErrYearsFetch
	}
	return items, nil
}

// fetchList retrieves and decodes a flat item list.
func (c *Client) fetchList(ctx context.Context, path string, cacheKey []string) ([]ports.CatalogItem, error) {
	payload, err := c.fetch(ctx, path, cacheKey)
	if err != nil {
		return nil, err
	}

	var items []fipeItem
	if err := json.Unmarshal(payload, &items); err != nil {
		return nil, err
	}
	return toCatalogItems(items), nil
}

// fetch returns the raw payload for path, consulting the cache first.
func (c *Client) fetch(ctx context.Context, path string, cacheKey []string) ([]byte, error) {
	if c.cache != nil {
		cached, err := c.cache.Get(ctx, cacheKey...)
		if err != nil {
			c.log.Warn().Err(err).Str("path", path).Msg("fipe cache read failed, fetching upstream")
		} else if cached != nil {
			return cached, nil
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("fipe: unexpected status %d for %s", resp.StatusCode, path)
	}

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if c.cache != nil {
		if err := c.cache.Set(ctx, payload, cacheKey...); err != nil {
			c.log.Warn().Err(err).Str("path", path).Msg("fipe cache write failed")
		}
	}
	return payload, nil
}

func toCatalogItems(items []fipeItem) []ports.CatalogItem {
	out := make([]ports.CatalogItem, 0, len(items))
	for _, it := range items {
		out = append(out, ports.CatalogItem{Code: it.Codigo, Name: it.Nome})
	}
	return out
}
