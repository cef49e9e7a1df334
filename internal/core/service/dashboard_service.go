package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/emplacadora/emplacadora-api/internal/core/domain"
	"github.com/emplacadora/emplacadora-api/internal/core/ports"
)

// DashboardService is the layout store: full-replace upsert on save, and a
// read that distinguishes "no layout saved yet" from a storage failure.
type DashboardService struct {
	repo ports.DashboardRepository
	log  zerolog.Logger
}

func NewDashboardService(repo ports.DashboardRepository, log zerolog.Logger) *DashboardService {
	return &DashboardService{repo: repo, log: log}
}

// SaveLayout replaces the user's stored widget list in full. The input order
// is persisted exactly; an empty list is valid and means "no widgets
// configured". Concurrent saves for the same user overwrite in write order.
func (s *DashboardService) SaveLayout(ctx context.Context, userID string, widgets []domain.Widget) error {
	if userID == "" {
		return fmt.Errorf("save layout: user id is required")
	}
	if err := validateWidgets(widgets); err != nil {
		return err
	}

	layout := &domain.DashboardLayout{
		UserID:    userID,
		Widgets:   widgets,
		UpdatedAt: time.Now().UTC(),
	}

	if err := s.repo.Upsert(ctx, layout); err != nil {
		var se *domain.StorageError
		if !errors.As(err, &se) {
			err = &domain.StorageError{Op: "write", Message: err.Error(), Err: err}
		}
		s.log.Error().Err(err).Str("user_id", userID).Msg("layout save failed")
		return err
	}

	s.log.Debug().Str("user_id", userID).Int("widgets", len(widgets)).Msg("layout saved")
	return nil
}

// GetLayout returns the user's saved widgets in stored order.
// domain.ErrLayoutNotFound means the user has never saved a layout; every
// other failure is a *domain.StorageError.
func (s *DashboardService) GetLayout(ctx context.Context, userID string) ([]domain.Widget, error) {
	if userID == "" {
		return nil, fmt.Errorf("get layout: user id is required")
	}

	layout, err := s.repo.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrLayoutNotFound) {
			return nil, domain.ErrLayoutNotFound
		}
		var se *domain.StorageError
		if !errors.As(err, &se) {
			err = &domain.StorageError{Op: "read", Message: err.Error(), Err: err}
		}
		s.log.Error().Err(err).Str("user_id", userID).Msg("layout load failed")
		return nil, err
	}

	return layout.Widgets, nil
}

// validateWidgets enforces known widget kinds and id uniqueness within the list.
func validateWidgets(widgets []domain.Widget) error {
	seen := make(map[string]struct{}, len(widgets))
	for _, w := range widgets {
		if w.ID == "" {
			return fmt.Errorf("save layout: widget id is required")
		}
		if _, dup := seen[w.ID]; dup {
			return fmt.Errorf("save layout: duplicate widget id %q", w.ID)
		}
		seen[w.ID] = struct{}{}
		if !domain.KnownWidgetType(w.Type) {
			return fmt.Errorf("save layout: unknown widget type %q", w.Type)
		}
	}
	return nil
}
