package render

import (
	"image/color"

	"ring-light/layout"
)

// Mode is the top-level rendering mode.
type Mode string

const (
	ModeSolid Mode = "solid"
	ModeRing  Mode = "ring"
)

var (
	// Background is painted behind the ring.
	Background = color.RGBA{0, 0, 0, 255}
	// DiffuseColor is the halo stroked over the LED band, whatever the fill color.
	DiffuseColor = color.NRGBA{255, 255, 255, 102}
)

// RingConfig holds the ring sub-settings.
type RingConfig struct {
	Style layout.Style

	// NumRings is kept for the settings file. Only one ring is drawn.
	NumRings int

	// NumLEDs forces the LED count; nil derives it from the track length.
	NumLEDs *int
	Diffuse bool

	// RingWidthPercent of zero selects the style default.
	RingWidthPercent float64

	// OutsideMarginPx of nil selects layout.DefaultOutsideMarginPx.
	OutsideMarginPx *float64
}

// Config is everything the renderer needs to paint a frame.
type Config struct {
	Mode      Mode
	FillColor color.Color
	Ring      RingConfig
}

// Fill returns the fill color, white when unset.
func (c Config) Fill() color.Color {
	if c.FillColor == nil {
		return color.White
	}
	return c.FillColor
}

// Surface is a resizable drawing target.
//
// Resize must be called with the displayed size before drawing; surfaces drop
// their previous content when resized.
type Surface interface {
	DisplaySize() (width, height int)
	Resize(width, height int)
	ClearRect(x, y, width, height float64)
	FillRect(x, y, width, height float64, clr color.Color)
	// FillCircle fills a full-circle arc.
	FillCircle(cx, cy, r float64, clr color.Color)
	// StrokeCircle strokes a full-circle arc; the line extends lineWidth/2 on both sides.
	StrokeCircle(cx, cy, r, lineWidth float64, clr color.Color)
}

// LayoutFor converts ring settings into layout options and computes the geometry.
func LayoutFor(size layout.Size, rc RingConfig) layout.Ring {
	opts := layout.DefaultOptions(rc.Style)
	opts.RingWidthPercent = rc.RingWidthPercent
	opts.NumLEDs = rc.NumLEDs
	if rc.OutsideMarginPx != nil {
		opts.OutsideMarginPx = *rc.OutsideMarginPx
	}
	return layout.Compute(size, opts)
}

// Render syncs the surface to its displayed size and paints one frame.
// Rendering is a pure function of cfg and the displayed size.
func Render(s Surface, cfg Config) {
	w, h := s.DisplaySize()
	s.Resize(w, h)
	if w <= 0 || h <= 0 {
		return
	}
	fw, fh := float64(w), float64(h)

	switch cfg.Mode {
	case ModeSolid:
		// A full-surface fill overwrites everything, no clear needed.
		s.FillRect(0, 0, fw, fh, cfg.Fill())
	default:
		s.ClearRect(0, 0, fw, fh)
		s.FillRect(0, 0, fw, fh, Background)
		DrawRing(s, LayoutFor(layout.Size{Width: w, Height: h}, cfg.Ring), cfg.Fill(), cfg.Ring.Diffuse)
	}
}

// DrawRing issues the primitives for a computed ring.
func DrawRing(s Surface, ring layout.Ring, fill color.Color, diffuse bool) {
	cx, cy := float64(ring.Midpoint.X), float64(ring.Midpoint.Y)

	if ring.Style != layout.StyleLED {
		if ring.RingWidthPx > 0 {
			s.StrokeCircle(cx, cy, ring.TrackRadius, ring.RingWidthPx, fill)
		}
		return
	}

	if ring.LEDRadius > 0 {
		for _, p := range ring.LEDs {
			s.FillCircle(float64(p.X), float64(p.Y), ring.LEDRadius, fill)
		}
	}

	if diffuse && ring.DiffuseWidth() > 0 {
		s.StrokeCircle(cx, cy, ring.MidRidgeRadius, ring.DiffuseWidth(), DiffuseColor)
	}
}
