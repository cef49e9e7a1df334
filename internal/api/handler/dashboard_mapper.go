package handler

import "github.com/emplacadora/emplacadora-api/internal/core/domain"

// --- Request → domain ---

func toDomainWidgets(payloads []widgetPayload) []domain.Widget {
	widgets := make([]domain.Widget, 0, len(payloads))
	for _, p := range payloads {
		w := domain.Widget{
			ID:   p.ID,
			Type: domain.WidgetType(p.Type),
			Layout: domain.WidgetLayout{
				X: p.Layout.X, Y: p.Layout.Y,
				W: p.Layout.W, H: p.Layout.H,
				MinW: p.Layout.MinW, MinH: p.Layout.MinH,
				MaxW: p.Layout.MaxW, MaxH: p.Layout.MaxH,
			},
		}
		if p.Config != nil {
			w.Config = &domain.WidgetConfig{
				Title:   p.Config.Title,
				Colors:  p.Config.Colors,
				Query:   p.Config.Query,
				Display: p.Config.Display,
				Options: p.Config.Options,
			}
		}
		widgets = append(widgets, w)
	}
	return widgets
}

// --- Domain → response ---

func toWidgetPayloads(widgets []domain.Widget) []widgetPayload {
	payloads := make([]widgetPayload, 0, len(widgets))
	for _, w := range widgets {
		p := widgetPayload{
			ID:   w.ID,
			Type: string(w.Type),
			Layout: widgetLayoutPayload{
				X: w.Layout.X, Y: w.Layout.Y,
				W: w.Layout.W, H: w.Layout.H,
				MinW: w.Layout.MinW, MinH: w.Layout.MinH,
				MaxW: w.Layout.MaxW, MaxH: w.Layout.MaxH,
			},
		}
		if w.Config != nil {
			p.Config = &widgetConfigPayload{
				Title:   w.Config.Title,
				Colors:  w.Config.Colors,
				Query:   w.Config.Query,
				Display: w.Config.Display,
				Options: w.Config.Options,
			}
		}
		payloads = append(payloads, p)
	}
	return payloads
}
