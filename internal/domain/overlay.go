package domain

// FieldVisible is the key inside OverlayData that carries the visibility
// flag. Renderers that only care about visibility get it as a separate
// overlay-visibility event as well.
const FieldVisible = "isVisible"

// OverlayData is the live content of one overlay: title, subtitle, text,
// image URL, colors, and the visibility flag. Any subset of fields may be
// present; an absent field means "unspecified", not "cleared". The zero
// value (nil map) is the never-set state.
type OverlayData map[string]interface{}

// Visible reports the visibility flag, defaulting to false when the
// field is absent or not a bool.
func (d OverlayData) Visible() bool {
	v, ok := d[FieldVisible].(bool)
	return ok && v
}

// Clone returns a shallow copy so stored state is never aliased by
// callers. A nil receiver yields an empty, writable map.
func (d OverlayData) Clone() OverlayData {
	out := make(OverlayData, len(d))
	for k, v := range d {
		out[k] = v
	}
	return out
}

// TemplateConfig describes how an overlay is presented: template type
// plus style and animation parameters. Independent of OverlayData.
type TemplateConfig struct {
	Type      string          `json:"type"`
	Style     TemplateStyle   `json:"style"`
	Animation AnimationConfig `json:"animation,omitempty"`
}

// TemplateStyle holds CSS-level presentation parameters, relayed to
// renderers as-is.
type TemplateStyle struct {
	FontSize        string `json:"fontSize,omitempty"`
	FontFamily      string `json:"fontFamily,omitempty"`
	FontWeight      string `json:"fontWeight,omitempty"`
	Padding         string `json:"padding,omitempty"`
	BorderRadius    string `json:"borderRadius,omitempty"`
	BackgroundColor string `json:"backgroundColor,omitempty"`
	Color           string `json:"color,omitempty"`
	Border          string `json:"border,omitempty"`
	BoxShadow       string `json:"boxShadow,omitempty"`
}

// AnimationConfig holds enter/exit animation names and duration.
type AnimationConfig struct {
	Enter    string `json:"enter,omitempty"`
	Exit     string `json:"exit,omitempty"`
	Duration string `json:"duration,omitempty"`
}

// TemplateTypeLowerThird is the designated default template type.
const TemplateTypeLowerThird = "LOWER_THIRD"

// DefaultTemplateConfig returns the system default presentation used for
// any overlay whose config has never been set.
func DefaultTemplateConfig() TemplateConfig {
	return TemplateConfig{
		Type: TemplateTypeLowerThird,
		Style: TemplateStyle{
			FontSize:        "16px",
			FontFamily:      "Arial, sans-serif",
			FontWeight:      "bold",
			Padding:         "12px 24px",
			BorderRadius:    "8px",
			BackgroundColor: "rgba(0, 0, 0, 0.8)",
			Color:           "white",
		},
		Animation: AnimationConfig{
			Enter:    "slideInUp",
			Exit:     "slideOutDown",
			Duration: "0.5s",
		},
	}
}
