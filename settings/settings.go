package settings

import (
	"image/color"

	"ring-light/layout"
	"ring-light/render"
)

const (
	DefaultFillColor = "#ffd48a"
	DefaultNumLEDs   = 11
	MaxLEDs          = 360
)

// DefaultPresets are the swatches shown when no preset script is configured.
var DefaultPresets = []Preset{
	{Name: "white", Color: "#ffffff"},
	{Name: "warm", Color: "#ffd48a"},
	{Name: "candle", Color: "#ffb46b"},
	{Name: "daylight", Color: "#e6f0ff"},
	{Name: "rose", Color: "#ffc0cb"},
	{Name: "mint", Color: "#c8ffe0"},
}

// Preset is a named color swatch.
type Preset struct {
	Name  string `yaml:"name"`
	Color string `yaml:"color"`
}

type RingState struct {
	Style            layout.Style `yaml:"style"`
	NumRings         int          `yaml:"num_rings"`
	NumLEDs          *int         `yaml:"num_leds"`
	Diffuse          bool         `yaml:"diffuse"`
	RingWidthPercent float64      `yaml:"ring_width_percent"`
	OutsideMarginPx  *float64     `yaml:"outside_margin_px,omitempty"`
}

// Settings is the persisted application state.
type Settings struct {
	LockSettingsOnScreen bool        `yaml:"lock_settings_on_screen"`
	FillColor            string      `yaml:"fill_color"`
	Mode                 render.Mode `yaml:"mode"`
	Ring                 RingState   `yaml:"ring"`
	Presets              []Preset    `yaml:"presets,omitempty"`
	PresetScript         string      `yaml:"preset_script,omitempty"`
}

// Default mirrors the first-run state: a diffused warm LED ring of 11 LEDs.
func Default() Settings {
	n := DefaultNumLEDs
	return Settings{
		FillColor: DefaultFillColor,
		Mode:      render.ModeRing,
		Ring: RingState{
			Style:    layout.StyleLED,
			NumRings: 1,
			NumLEDs:  &n,
			Diffuse:  true,
		},
		Presets: append([]Preset(nil), DefaultPresets...),
	}
}

// Normalize replaces unknown or out-of-range values with defaults.
func (s *Settings) Normalize() {
	if s.Mode != render.ModeSolid && s.Mode != render.ModeRing {
		s.Mode = render.ModeRing
	}
	if s.Ring.Style != layout.StyleSolid && s.Ring.Style != layout.StyleLED {
		s.Ring.Style = layout.StyleLED
	}
	if s.Ring.NumRings < 1 {
		s.Ring.NumRings = 1
	}
	if s.Ring.NumLEDs != nil {
		n := min(max(*s.Ring.NumLEDs, 1), MaxLEDs)
		s.Ring.NumLEDs = &n
	}
	if s.Ring.RingWidthPercent < 0 {
		s.Ring.RingWidthPercent = 0
	}
	if s.Ring.RingWidthPercent > 100 {
		s.Ring.RingWidthPercent = 100
	}
	if c, err := ParseColor(s.FillColor); err != nil {
		s.FillColor = "#ffffff"
	} else {
		s.FillColor = FormatColor(c)
	}
	if len(s.Presets) == 0 {
		s.Presets = append([]Preset(nil), DefaultPresets...)
	}
}

// Fill returns the parsed fill color, white when it cannot be parsed.
func (s Settings) Fill() color.Color {
	c, err := ParseColor(s.FillColor)
	if err != nil {
		return color.White
	}
	return c
}

// RenderConfig builds the renderer input from the persisted state.
func (s Settings) RenderConfig() render.Config {
	return render.Config{
		Mode:      s.Mode,
		FillColor: s.Fill(),
		Ring: render.RingConfig{
			Style:            s.Ring.Style,
			NumRings:         s.Ring.NumRings,
			NumLEDs:          s.Ring.NumLEDs,
			Diffuse:          s.Ring.Diffuse,
			RingWidthPercent: s.Ring.RingWidthPercent,
			OutsideMarginPx:  s.Ring.OutsideMarginPx,
		},
	}
}

// Clone returns a deep copy.
func (s Settings) Clone() Settings {
	out := s
	if s.Ring.NumLEDs != nil {
		n := *s.Ring.NumLEDs
		out.Ring.NumLEDs = &n
	}
	if s.Ring.OutsideMarginPx != nil {
		m := *s.Ring.OutsideMarginPx
		out.Ring.OutsideMarginPx = &m
	}
	out.Presets = append([]Preset(nil), s.Presets...)
	return out
}

// --- Mutators used by the panel and keyboard shortcuts ---

func (s *Settings) ToggleMode() {
	if s.Mode == render.ModeRing {
		s.Mode = render.ModeSolid
	} else {
		s.Mode = render.ModeRing
	}
}

func (s *Settings) ToggleStyle() {
	if s.Ring.Style == layout.StyleLED {
		s.Ring.Style = layout.StyleSolid
	} else {
		s.Ring.Style = layout.StyleLED
	}
}

func (s *Settings) ToggleDiffuse() {
	s.Ring.Diffuse = !s.Ring.Diffuse
}

// StepLEDs changes the explicit LED count. Stepping from the derived count
// starts at the default count.
func (s *Settings) StepLEDs(delta int) {
	n := DefaultNumLEDs
	if s.Ring.NumLEDs != nil {
		n = *s.Ring.NumLEDs + delta
	}
	n = min(max(n, 1), MaxLEDs)
	s.Ring.NumLEDs = &n
}

// AutoLEDs lets the layout derive the LED count.
func (s *Settings) AutoLEDs() {
	s.Ring.NumLEDs = nil
}

// StepWidth changes the ring width percent, starting from the style default.
func (s *Settings) StepWidth(delta float64) {
	p := layout.WidthPercent(s.Ring.Style, s.Ring.RingWidthPercent) + delta
	s.Ring.RingWidthPercent = min(max(p, 1), 100)
}

// SetColor stores c as the fill color.
func (s *Settings) SetColor(c color.Color) {
	s.FillColor = FormatColor(c)
}
