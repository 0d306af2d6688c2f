package layout

import (
	"image"
	"math"
)

// Style selects how the ring band is drawn.
type Style string

const (
	StyleSolid Style = "solid"
	StyleLED   Style = "led"
)

const (
	// MinLEDSpacingPx is the gap kept between LEDs and between LEDs and the track ridges.
	MinLEDSpacingPx = 3.0

	DefaultOutsideMarginPx   = 5.0
	DefaultSolidWidthPercent = 18.0
	DefaultLEDWidthPercent   = 16.0
	maxRingWidthPercent      = 100.0
	minLEDs                  = 1
	fullCircle               = 2 * math.Pi
)

// Size is the pixel size of a drawing surface.
type Size struct {
	Width, Height int
}

// Options controls ring geometry. Use DefaultOptions for the documented defaults.
type Options struct {
	Style Style

	// OutsideMarginPx is the gap between the outer edge of the ring and the
	// limiting edge of the surface.
	OutsideMarginPx float64

	// RingWidthPercent is the band thickness relative to the smallest surface
	// dimension. Zero or less selects the style default.
	RingWidthPercent float64

	// NumLEDs forces the LED count (led style only). When nil the count is
	// derived so the largest LEDs fill the track.
	NumLEDs *int
}

// DefaultOptions returns the options used when the caller has no preference.
func DefaultOptions(style Style) Options {
	return Options{
		Style:           style,
		OutsideMarginPx: DefaultOutsideMarginPx,
	}
}

// Ring is the geometry of one render pass. It is derived, never cached.
type Ring struct {
	Style             Style
	Midpoint          image.Point
	SmallestDimension float64
	RingWidthPx       float64

	// TrackRadius is the stroke radius of a solid ring.
	TrackRadius float64

	// Ridge radii bound the LED band. LEDs are centered on MidRidgeRadius.
	InnerRidgeRadius float64
	MidRidgeRadius   float64
	OuterRidgeRadius float64

	LEDRadius   float64
	NumLEDs     int
	AngularStep float64
	LEDs        []image.Point
}

// TrackCircumference is the length of the circle the LEDs sit on.
func (r Ring) TrackCircumference() float64 {
	return fullCircle * r.MidRidgeRadius
}

// DiffuseWidth is the line width of the halo stroked over the LED band.
func (r Ring) DiffuseWidth() float64 {
	return r.OuterRidgeRadius - r.InnerRidgeRadius
}

// WidthPercent resolves the ring width percent for a style.
func WidthPercent(style Style, percent float64) float64 {
	switch {
	case percent <= 0 || math.IsNaN(percent):
		if style == StyleLED {
			return DefaultLEDWidthPercent
		}
		return DefaultSolidWidthPercent
	case percent > maxRingWidthPercent:
		return maxRingWidthPercent
	}
	return percent
}

// Compute derives the ring geometry for a surface. It never returns negative
// radii, a zero LED count or non-finite values.
func Compute(size Size, opts Options) Ring {
	w := float64(max(size.Width, 0))
	h := float64(max(size.Height, 0))
	margin := opts.OutsideMarginPx
	if margin < 0 || math.IsNaN(margin) || math.IsInf(margin, 0) {
		margin = 0
	}

	style := opts.Style
	if style != StyleLED {
		style = StyleSolid
	}

	smallest := math.Min(w, h)
	ring := Ring{
		Style:             style,
		Midpoint:          image.Pt(int(math.Floor(w/2)), int(math.Floor(h/2))),
		SmallestDimension: smallest,
		RingWidthPx:       math.Floor(smallest * WidthPercent(style, opts.RingWidthPercent) / 100),
	}

	if style == StyleSolid {
		ring.TrackRadius = nonNegative(smallest/2 - ring.RingWidthPx/2 - margin)
		return ring
	}

	computeLEDs(&ring, margin, opts.NumLEDs)
	return ring
}

func computeLEDs(ring *Ring, margin float64, numLEDs *int) {
	const spacing = MinLEDSpacingPx

	inner := ring.SmallestDimension/2 - ring.RingWidthPx - margin - 2*spacing
	mid := inner + ring.RingWidthPx*0.5 + spacing
	outer := mid + ring.RingWidthPx*0.5 + spacing

	ring.InnerRidgeRadius = nonNegative(inner)
	ring.MidRidgeRadius = nonNegative(mid)
	ring.OuterRidgeRadius = nonNegative(outer)
	circumference := ring.TrackCircumference()

	if numLEDs != nil {
		// Shrink LEDs so all of them fit, but never past the band thickness.
		n := max(*numLEDs, minLEDs)
		maxRadius := (ring.OuterRidgeRadius-ring.InnerRidgeRadius)/2 - spacing
		radius := math.Floor(circumference/float64(n)/2 - 2*spacing)
		ring.LEDRadius = nonNegative(math.Min(radius, maxRadius))
		ring.NumLEDs = n
	} else {
		ring.LEDRadius = ring.RingWidthPx / 2
		pitch := 2*ring.LEDRadius + 2*spacing
		ring.NumLEDs = max(int(math.Floor(circumference/pitch)), minLEDs)
	}

	ring.AngularStep = fullCircle / float64(ring.NumLEDs)
	ring.LEDs = Positions(ring.Midpoint, ring.MidRidgeRadius, ring.NumLEDs)
}

// Positions places n points on a circle around center, starting on the
// positive x axis and turning clockwise on screen (y grows downward).
func Positions(center image.Point, radius float64, n int) []image.Point {
	if n < minLEDs {
		return nil
	}
	step := fullCircle / float64(n)
	cx, cy := float64(center.X), float64(center.Y)
	out := make([]image.Point, n)
	for i := range out {
		theta := float64(i) * step
		out[i] = image.Pt(
			int(math.Floor(cx+radius*math.Cos(theta))),
			int(math.Floor(cy+radius*math.Sin(theta))),
		)
	}
	return out
}

func nonNegative(v float64) float64 {
	if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
