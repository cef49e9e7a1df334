package service

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/rs/zerolog"

	"github.com/emplacadora/emplacadora-api/internal/core/domain"
)

type stubDashboardRepo struct {
	layouts   map[string]*domain.DashboardLayout
	upsertErr error
	findErr   error
}

func newStubDashboardRepo() *stubDashboardRepo {
	return &stubDashboardRepo{layouts: make(map[string]*domain.DashboardLayout)}
}

func (r *stubDashboardRepo) Upsert(_ context.Context, layout *domain.DashboardLayout) error {
	if r.upsertErr != nil {
		return r.upsertErr
	}
	clone := *layout
	clone.Widgets = append([]domain.Widget(nil), layout.Widgets...)
	r.layouts[layout.UserID] = &clone
	return nil
}

func (r *stubDashboardRepo) FindByUserID(_ context.Context, userID string) (*domain.DashboardLayout, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	layout, ok := r.layouts[userID]
	if !ok {
		return nil, domain.ErrLayoutNotFound
	}
	clone := *layout
	clone.Widgets = append([]domain.Widget(nil), layout.Widgets...)
	return &clone, nil
}

func sampleWidgets() []domain.Widget {
	return []domain.Widget{
		{
			ID:     "w1",
			Type:   domain.WidgetOrdersSummary,
			Layout: domain.WidgetLayout{X: 0, Y: 0, W: 4, H: 2, MinW: 2, MinH: 1},
			Config: &domain.WidgetConfig{
				Title:   "Pedidos",
				Colors:  []string{"#1f77b4", "#ff7f0e"},
				Query:   "orders_by_status",
				Display: "bar",
				Options: map[string]any{"axis": "status"},
			},
		},
		{
			ID:     "w2",
			Type:   domain.WidgetRecentOrders,
			Layout: domain.WidgetLayout{X: 4, Y: 0, W: 8, H: 4},
		},
		{
			ID:     "w3",
			Type:   domain.WidgetQuickActions,
			Layout: domain.WidgetLayout{X: 0, Y: 2, W: 4, H: 2},
		},
	}
}

// Save then load must return the same widgets, same order, every field.
func TestDashboardService_RoundTrip(t *testing.T) {
	repo := newStubDashboardRepo()
	svc := NewDashboardService(repo, zerolog.Nop())
	widgets := sampleWidgets()

	if err := svc.SaveLayout(context.Background(), "u1", widgets); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	got, err := svc.GetLayout(context.Background(), "u1")
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if !reflect.DeepEqual(got, widgets) {
		t.Fatalf("round trip mismatch:\n got  %+v\n want %+v", got, widgets)
	}
}

// An empty list is a valid layout ("no widgets configured") and round-trips.
func TestDashboardService_RoundTrip_Empty(t *testing.T) {
	repo := newStubDashboardRepo()
	svc := NewDashboardService(repo, zerolog.Nop())

	if err := svc.SaveLayout(context.Background(), "u1", []domain.Widget{}); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	got, err := svc.GetLayout(context.Background(), "u1")
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty layout, got %d widgets", len(got))
	}
}

// Absence of a saved layout is a distinct signal, not a storage error.
func TestDashboardService_GetLayout_NotFound(t *testing.T) {
	svc := NewDashboardService(newStubDashboardRepo(), zerolog.Nop())

	_, err := svc.GetLayout(context.Background(), "never-saved")
	if !errors.Is(err, domain.ErrLayoutNotFound) {
		t.Fatalf("expected ErrLayoutNotFound, got %v", err)
	}
	var se *domain.StorageError
	if errors.As(err, &se) {
		t.Fatalf("absence must not be a StorageError")
	}
}

// A second save replaces the first in full; no fields from the first survive.
func TestDashboardService_SaveLayout_Overwrites(t *testing.T) {
	repo := newStubDashboardRepo()
	svc := NewDashboardService(repo, zerolog.Nop())

	if err := svc.SaveLayout(context.Background(), "u1", sampleWidgets()); err != nil {
		t.Fatalf("first save failed: %v", err)
	}

	second := []domain.Widget{{
		ID:     "w9",
		Type:   domain.WidgetRevenueChart,
		Layout: domain.WidgetLayout{X: 0, Y: 0, W: 12, H: 6},
	}}
	if err := svc.SaveLayout(context.Background(), "u1", second); err != nil {
		t.Fatalf("second save failed: %v", err)
	}

	got, err := svc.GetLayout(context.Background(), "u1")
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if !reflect.DeepEqual(got, second) {
		t.Fatalf("expected second layout only, got %+v", got)
	}
}

func TestDashboardService_SaveLayout_Validation(t *testing.T) {
	svc := NewDashboardService(newStubDashboardRepo(), zerolog.Nop())
	ctx := context.Background()

	if err := svc.SaveLayout(ctx, "", sampleWidgets()); err == nil {
		t.Fatalf("expected error for empty user id")
	}

	dup := sampleWidgets()
	dup[1].ID = dup[0].ID
	if err := svc.SaveLayout(ctx, "u1", dup); err == nil {
		t.Fatalf("expected error for duplicate widget id")
	}

	bad := sampleWidgets()
	bad[0].Type = "weather"
	if err := svc.SaveLayout(ctx, "u1", bad); err == nil {
		t.Fatalf("expected error for unknown widget type")
	}
}

func TestDashboardService_SaveLayout_StorageError(t *testing.T) {
	repo := newStubDashboardRepo()
	repo.upsertErr = errors.New("write concern timeout")
	svc := NewDashboardService(repo, zerolog.Nop())

	err := svc.SaveLayout(context.Background(), "u1", sampleWidgets())
	var se *domain.StorageError
	if !errors.As(err, &se) {
		t.Fatalf("expected StorageError, got %v", err)
	}
	if se.Op != "write" || se.Message != "write concern timeout" {
		t.Fatalf("unexpected StorageError: %+v", se)
	}
}

func TestDashboardService_GetLayout_StorageError(t *testing.T) {
	repo := newStubDashboardRepo()
	repo.findErr = errors.New("cursor timeout")
	svc := NewDashboardService(repo, zerolog.Nop())

	_, err := svc.GetLayout(context.Background(), "u1")
	var se *domain.StorageError
	if !errors.As(err, &se) {
		t.Fatalf("expected StorageError, got %v", err)
	}
	if errors.Is(err, domain.ErrLayoutNotFound) {
		t.Fatalf("storage error must not look like absence")
	}
}
