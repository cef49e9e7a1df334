package domain

import "time"

// WidgetType enumerates the known dashboard widget kinds.
type WidgetType string

const (
	WidgetOrdersSummary WidgetType = "orders_summary"
	WidgetRevenueChart  WidgetType = "revenue_chart"
	WidgetRecentOrders  WidgetType = "recent_orders"
	WidgetSellerRanking WidgetType = "seller_ranking"
	WidgetQuickActions  WidgetType = "quick_actions"
)

// KnownWidgetType reports whether t is one of the supported widget kinds.
func KnownWidgetType(t WidgetType) bool {
	switch t {
	case WidgetOrdersSummary, WidgetRevenueChart, WidgetRecentOrders,
		WidgetSellerRanking, WidgetQuickActions:
		return true
	}
	return false
}

// WidgetLayout is the grid placement of one widget. Min/Max bounds are
// optional; zero means unset.
type WidgetLayout struct {
	X    int `json:"x" bson:"x"`
	Y    int `json:"y" bson:"y"`
	W    int `json:"w" bson:"w"`
	H    int `json:"h" bson:"h"`
	MinW int `json:"min_w,omitempty" bson:"min_w,omitempty"`
	MinH int `json:"min_h,omitempty" bson:"min_h,omitempty"`
	MaxW int `json:"max_w,omitempty" bson:"max_w,omitempty"`
	MaxH int `json:"max_h,omitempty" bson:"max_h,omitempty"`
}

// WidgetConfig carries optional display configuration. Not every field
// applies to every widget type; Options holds type-specific nesting such as
// column definitions or axis keys.
type WidgetConfig struct {
	Title   string         `json:"title,omitempty" bson:"title,omitempty"`
	Colors  []string       `json:"colors,omitempty" bson:"colors,omitempty"`
	Query   string         `json:"query,omitempty" bson:"query,omitempty"`
	Display string         `json:"display,omitempty" bson:"display,omitempty"`
	Options map[string]any `json:"options,omitempty" bson:"options,omitempty"`
}

// Widget is one placed widget instance. IDs are unique within a user's
// layout and stable across saves; list position defines rendering order.
type Widget struct {
	ID     string        `json:"id" bson:"id"`
	Type   WidgetType    `json:"type" bson:"type"`
	Layout WidgetLayout  `json:"layout" bson:"layout"`
	Config *WidgetConfig `json:"config,omitempty" bson:"config,omitempty"`
}

// DashboardLayout is the persisted unit: one record per user, full ordered
// widget list, replaced wholesale on every save.
type DashboardLayout struct {
	UserID    string    `json:"user_id" bson:"user_id"`
	Widgets   []Widget  `json:"widgets" bson:"widgets"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`
}
