package handler

// --- Dashboard layout request / response types ---

type widgetLayoutPayload struct {
	X    int `json:"x"`
	Y    int `json:"y"`
	W    int `json:"w" validate:"gt=0"`
	H    int `json:"h" validate:"gt=0"`
	MinW int `json:"min_w,omitempty"`
	MinH int `json:"min_h,omitempty"`
	MaxW int `json:"max_w,omitempty"`
	MaxH int `json:"max_h,omitempty"`
}

type widgetConfigPayload struct {
	Title   string         `json:"title,omitempty"`
	Colors  []string       `json:"colors,omitempty"`
	Query   string         `json:"query,omitempty"`
	Display string         `json:"display,omitempty"`
	Options map[string]any `json:"options,omitempty"`
}

type widgetPayload struct {
	ID     string               `json:"id"   validate:"required"`
	Type   string               `json:"type" validate:"required"`
	Layout widgetLayoutPayload  `json:"layout"`
	Config *widgetConfigPayload `json:"config,omitempty"`
}

// saveLayoutRequest replaces the stored layout in full. An empty widget list
// is valid and means "no widgets configured".
type saveLayoutRequest struct {
	Widgets []widgetPayload `json:"widgets" validate:"dive"`
}

// getLayoutResponse distinguishes "no layout saved yet" (Exists=false) from
// a saved empty layout (Exists=true, empty Widgets).
type getLayoutResponse struct {
	Exists  bool            `json:"exists"`
	Widgets []widgetPayload `json:"widgets"`
}
