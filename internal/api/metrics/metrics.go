// Package metrics defines and registers all custom Prometheus metrics for the
// emplacadora API. It is the single source of truth for metric names, labels,
// and help strings. Metrics register with the default registry at import time
// via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "emplacadora"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// LoginsTotal counts login attempts.
// Label:
//   - result: "success", "invalid_credentials", or "error"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// SessionResolvesTotal counts session restores.
// Label:
//   - result: "authenticated" or "unauthenticated"
var SessionResolvesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "session_resolves_total",
		Help:      "Total number of session restore attempts, by outcome.",
	},
	[]string{"result"},
)

// ── Dashboard metrics ─────────────────────────────────────────────────────────

// LayoutSavesTotal counts dashboard layout saves.
// Label:
//   - result: "ok" or "error"
var LayoutSavesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "layout_saves_total",
		Help:      "Total number of dashboard layout save operations, by result.",
	},
	[]string{"result"},
)

// LayoutLoadsTotal counts dashboard layout reads.
// Label:
//   - result: "ok", "not_found", or "error"
var LayoutLoadsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "layout_loads_total",
		Help:      "Total number of dashboard layout load operations, by result.",
	},
	[]string{"result"},
)

// ── Catalog metrics ───────────────────────────────────────────────────────────

// CatalogLookupsTotal counts FIPE table lookups.
// Labels:
//   - endpoint: "brands", "models", or "years"
//   - result: "ok" or "error"
var CatalogLookupsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "catalog_lookups_total",
		Help:      "Total number of vehicle catalog lookups, by endpoint and result.",
	},
	[]string{"endpoint", "result"},
)

// CatalogLookupDuration measures upstream lookup latency, cache hits included.
// Label:
//   - endpoint: "brands", "models", or "years"
var CatalogLookupDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "catalog_lookup_duration_seconds",
		Help:      "Duration of vehicle catalog lookups.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"endpoint"},
)

// ── Order metrics ─────────────────────────────────────────────────────────────

// OrdersCreatedTotal counts newly opened orders.
// Label:
//   - service_type: "first_plate", "replacement", or "transfer"
var OrdersCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "orders_created_total",
		Help:      "Total number of plate-registration orders created, by service type.",
	},
	[]string{"service_type"},
)
