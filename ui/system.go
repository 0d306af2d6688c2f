package ui

import (
	"fmt"
	"image"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

const (
	PanelX      = 10
	PanelY      = 10
	PanelWidth  = 240
	RowHeight   = 28
	RowGap      = 6
	SwatchSize  = 28
	SwatchGap   = 6
	panelMargin = 8
)

var panelBackground = color.RGBA{20, 20, 24, 210}

// Status is what the panel shows. The host builds it from its settings.
type Status struct {
	Mode    string
	Style   string
	Diffuse bool
	// NumLEDs is 0 when the count is derived from the ring size.
	NumLEDs int
	Pinned  bool
	Presets []color.Color
	// Selected is the index of the preset matching the fill color, or -1.
	Selected int
}

// Actions are the panel's callbacks into the host. Nil entries are skipped.
type Actions struct {
	ToggleMode    func()
	ToggleStyle   func()
	ToggleDiffuse func()
	StepLEDs      func(delta int)
	AutoLEDs      func()
	SelectPreset  func(i int)
	CustomColor   func()
	TogglePin     func()
}

// UISystem is the settings panel plus the status toast.
type UISystem struct {
	buttons       []*Button
	getFontFace   func() font.Face
	getScreenSize func() (int, int)
	drawText      func(screen *ebiten.Image, face font.Face, s string, x, y int, clr color.Color)
	status        func() Status
	actions       Actions

	AutoHide *AutoHide
	Debug    *DebugPanel

	lastCursor image.Point
}

func NewUISystem(getFontFace func() font.Face, getScreenSize func() (int, int), status func() Status, actions Actions, drawText func(screen *ebiten.Image, face font.Face, s string, x, y int, clr color.Color)) *UISystem {
	return newUISystem(getFontFace, getScreenSize, status, actions, drawText, time.Now)
}

func newUISystem(getFontFace func() font.Face, getScreenSize func() (int, int), status func() Status, actions Actions, drawText func(screen *ebiten.Image, face font.Face, s string, x, y int, clr color.Color), now func() time.Time) *UISystem {
	ui := &UISystem{
		getFontFace:   getFontFace,
		getScreenSize: getScreenSize,
		drawText:      drawText,
		status:        status,
		actions:       actions,
		AutoHide:      NewAutoHide(now),
		Debug:         &DebugPanel{now: now},
		lastCursor:    image.Pt(-1, -1),
	}
	ui.layoutButtons()
	return ui
}

// layoutButtons rebuilds the buttons from the current status. Labels and the
// number of swatches change with the settings.
func (ui *UISystem) layoutButtons() {
	st := ui.status()
	a := ui.actions
	y := float32(PanelY + panelMargin)
	x := float32(PanelX + panelMargin)
	inner := float32(PanelWidth - 2*panelMargin)

	row := func(bs ...*Button) {
		w := (inner - RowGap*float32(len(bs)-1)) / float32(len(bs))
		bx := x
		for _, b := range bs {
			b.X, b.Y, b.W, b.H = bx, y, w, RowHeight
			bx += w + RowGap
		}
		y += RowHeight + RowGap
	}

	var bs []*Button
	mode := &Button{Label: "Mode: " + st.Mode, OnClick: a.ToggleMode}
	style := &Button{Label: "Style: " + st.Style, OnClick: a.ToggleStyle}
	row(mode)
	row(style)

	diffuse := &Button{Label: "Diffuse", OnClick: a.ToggleDiffuse, Active: st.Diffuse}
	row(diffuse)

	leds := "auto"
	if st.NumLEDs > 0 {
		leds = fmt.Sprint(st.NumLEDs)
	}
	less := &Button{Label: "-", OnClick: stepper(a.StepLEDs, -1)}
	count := &Button{Label: "LEDs: " + leds, OnClick: a.AutoLEDs, Active: st.NumLEDs == 0}
	more := &Button{Label: "+", OnClick: stepper(a.StepLEDs, 1)}
	row(less, count, more)
	less.W, more.W = RowHeight, RowHeight
	count.X, count.W = x+RowHeight+RowGap, inner-2*(RowHeight+RowGap)
	more.X = x + inner - RowHeight
	bs = append(bs, mode, style, diffuse, less, count, more)

	// Swatches wrap onto as many rows as needed.
	perRow := int((inner + SwatchGap) / (SwatchSize + SwatchGap))
	for i, c := range st.Presets {
		if i > 0 && i%perRow == 0 {
			y += SwatchSize + SwatchGap
		}
		col := i % perRow
		idx := i
		bs = append(bs, &Button{
			X: x + float32(col)*(SwatchSize+SwatchGap), Y: y, W: SwatchSize, H: SwatchSize,
			Swatch: c, Active: i == st.Selected,
			OnClick: func() {
				if a.SelectPreset != nil {
					a.SelectPreset(idx)
				}
			},
		})
	}
	if len(st.Presets) > 0 {
		y += SwatchSize + SwatchGap
	}

	custom := &Button{Label: "Custom color...", OnClick: a.CustomColor}
	row(custom)
	pin := &Button{Label: "Pin", OnClick: a.TogglePin, Active: st.Pinned}
	hide := &Button{Label: "Hide", OnClick: ui.AutoHide.Hide}
	row(pin, hide)

	ui.buttons = append(bs, custom, pin, hide)
}

func stepper(f func(int), delta int) func() {
	if f == nil {
		return nil
	}
	return func() { f(delta) }
}

// Bounds is the panel's rectangle on screen.
func (ui *UISystem) Bounds() image.Rectangle {
	bottom := PanelY
	for _, b := range ui.buttons {
		if yb := int(b.Y + b.H); yb > bottom {
			bottom = yb
		}
	}
	return image.Rect(PanelX, PanelY, PanelX+PanelWidth, bottom+panelMargin)
}

func (ui *UISystem) Visible() bool {
	return !ui.AutoHide.Hidden()
}

func (ui *UISystem) IsMouseOver(mx, my int) bool {
	return ui.Visible() && image.Pt(mx, my).In(ui.Bounds())
}

func (ui *UISystem) Update() {
	mx, my := ebiten.CursorPosition()
	ui.HandlePointer(mx, my, inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft))
}

// HandlePointer feeds one frame of mouse state into the panel.
func (ui *UISystem) HandlePointer(mx, my int, clicked bool) {
	ui.layoutButtons()
	ui.AutoHide.Pinned = ui.status().Pinned

	p := image.Pt(mx, my)
	if clicked || p != ui.lastCursor {
		wasHidden := ui.AutoHide.Hidden()
		ui.AutoHide.Pointer(p, ui.Bounds())
		ui.lastCursor = p
		// The click that reveals the panel does not also press a button.
		if clicked && !wasHidden {
			ui.click(mx, my)
		}
	}
	ui.AutoHide.Tick()
}

func (ui *UISystem) click(mx, my int) {
	for _, b := range ui.buttons {
		if b.IsMouseOver(mx, my) {
			if b.OnClick != nil {
				b.OnClick()
			}
			break
		}
	}
}

func (ui *UISystem) Draw(screen *ebiten.Image) {
	if ui.Visible() {
		ui.layoutButtons()
		r := ui.Bounds()
		vector.DrawFilledRect(screen, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), panelBackground, false)
		for _, b := range ui.buttons {
			b.Draw(screen, ui.getFontFace, ui.drawText)
		}
	}
	if ui.Debug != nil {
		ui.Debug.Draw(screen, ui.getScreenSize, ui.getFontFace, ui.drawText)
	}
}
