package ui

import (
	"image"
	"image/color"
	"testing"
	"time"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time { return c.t }
func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newClock() *fakeClock {
	return &fakeClock{t: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)}
}

func TestAutoHideAfterIdle(t *testing.T) {
	clk := newClock()
	a := NewAutoHide(clk.now)

	clk.advance(AutoHideAfter - time.Millisecond)
	a.Tick()
	if a.Hidden() {
		t.Fatalf("Hidden too early")
	}
	clk.advance(time.Millisecond)
	a.Tick()
	if !a.Hidden() {
		t.Fatalf("Expected panel to hide after %v", AutoHideAfter)
	}
}

func TestAutoHidePinned(t *testing.T) {
	clk := newClock()
	a := NewAutoHide(clk.now)
	a.Pinned = true
	clk.advance(10 * AutoHideAfter)
	a.Tick()
	if a.Hidden() {
		t.Errorf("Pinned panel was hidden")
	}
	a.Hide()
	if !a.Hidden() {
		t.Errorf("Explicit Hide should work while pinned")
	}
}

func TestAutoHideInteractionResetsTimer(t *testing.T) {
	clk := newClock()
	a := NewAutoHide(clk.now)
	panel := image.Rect(10, 10, 250, 250)

	clk.advance(2 * time.Second)
	a.Pointer(image.Pt(200, 200), panel)
	clk.advance(2 * time.Second)
	a.Tick()
	if a.Hidden() {
		t.Fatalf("Interaction on the panel should reset the timer")
	}

	// Moves elsewhere do not count.
	a.Pointer(image.Pt(600, 600), panel)
	clk.advance(time.Second)
	a.Tick()
	if !a.Hidden() {
		t.Fatalf("Expected hide once idle")
	}
}

func TestAutoHideGrace(t *testing.T) {
	clk := newClock()
	a := NewAutoHide(clk.now)
	panel := image.Rect(10, 10, 250, 250)

	a.Hide()
	clk.advance(HideGrace / 2)
	a.Pointer(image.Pt(200, 200), panel)
	if !a.Hidden() {
		t.Fatalf("Hovering the panel right after a hide should not reopen it")
	}

	// The invite area always works.
	a.Pointer(image.Pt(5, 5), panel)
	if a.Hidden() {
		t.Fatalf("Invite area should reopen the panel")
	}

	a.Hide()
	clk.advance(HideGrace)
	a.Pointer(image.Pt(200, 200), panel)
	if a.Hidden() {
		t.Fatalf("Hovering the panel after the grace period should reopen it")
	}
}

type panelHost struct {
	status  Status
	toggles int
	leds    int
	preset  int
}

func newTestUI(clk *fakeClock) (*UISystem, *panelHost) {
	h := &panelHost{
		status: Status{Mode: "ring", Style: "led", NumLEDs: 11, Selected: -1,
			Presets: []color.Color{color.White, color.RGBA{255, 212, 138, 255}}},
		preset: -1,
	}
	ui := newUISystem(nil, func() (int, int) { return 800, 600 }, func() Status { return h.status }, Actions{
		ToggleMode:   func() { h.toggles++ },
		StepLEDs:     func(d int) { h.leds += d },
		SelectPreset: func(i int) { h.preset = i },
		TogglePin:    func() { h.status.Pinned = !h.status.Pinned },
	}, nil, clk.now)
	return ui, h
}

func (ui *UISystem) find(label string) *Button {
	for _, b := range ui.buttons {
		if b.Label == label {
			return b
		}
	}
	return nil
}

func centre(b *Button) (int, int) {
	return int(b.X + b.W/2), int(b.Y + b.H/2)
}

func TestPanelClicks(t *testing.T) {
	clk := newClock()
	ui, h := newTestUI(clk)

	mode := ui.find("Mode: ring")
	if mode == nil {
		t.Fatalf("Mode button missing")
	}
	x, y := centre(mode)
	ui.HandlePointer(x, y, true)
	if h.toggles != 1 {
		t.Errorf("Expected one mode toggle, got %d", h.toggles)
	}

	x, y = centre(ui.find("+"))
	ui.HandlePointer(x, y, true)
	ui.HandlePointer(x, y, true)
	if h.leds != 2 {
		t.Errorf("Expected two LED steps, got %d", h.leds)
	}

	var swatches []*Button
	for _, b := range ui.buttons {
		if b.Swatch != nil {
			swatches = append(swatches, b)
		}
	}
	if len(swatches) != 2 {
		t.Fatalf("Expected 2 swatches, got %d", len(swatches))
	}
	x, y = centre(swatches[1])
	ui.HandlePointer(x, y, true)
	if h.preset != 1 {
		t.Errorf("Expected preset 1, got %d", h.preset)
	}
}

func TestPanelHideButtonAndReveal(t *testing.T) {
	clk := newClock()
	ui, h := newTestUI(clk)

	hide := ui.find("Hide")
	x, y := centre(hide)
	if image.Pt(x, y).In(InviteArea) {
		t.Fatalf("Hide button must sit outside the invite area")
	}
	ui.HandlePointer(x, y, true)
	if ui.Visible() {
		t.Fatalf("Hide did not hide the panel")
	}

	// A click on a hidden panel reveals it without pressing what is under it.
	ui.HandlePointer(20, 20, true)
	if !ui.Visible() {
		t.Fatalf("Invite click should reveal the panel")
	}
	if h.toggles != 0 {
		t.Errorf("Reveal click pressed a button")
	}
}

func TestPanelPinFollowsStatus(t *testing.T) {
	clk := newClock()
	ui, h := newTestUI(clk)

	x, y := centre(ui.find("Pin"))
	ui.HandlePointer(x, y, true)
	if !h.status.Pinned {
		t.Fatalf("Pin was not toggled")
	}

	clk.advance(2 * AutoHideAfter)
	ui.HandlePointer(x, y, false)
	ui.HandlePointer(x, y, false)
	if !ui.Visible() {
		t.Errorf("Pinned panel hid itself")
	}
}

func TestPanelLEDLabel(t *testing.T) {
	clk := newClock()
	ui, h := newTestUI(clk)
	if ui.find("LEDs: 11") == nil {
		t.Errorf("Expected LED count label")
	}
	h.status.NumLEDs = 0
	ui.HandlePointer(700, 500, false)
	if b := ui.find("LEDs: auto"); b == nil || !b.Active {
		t.Errorf("Expected active auto label")
	}
}

func TestToastExpires(t *testing.T) {
	clk := newClock()
	d := &DebugPanel{now: clk.now}
	if d.Visible() {
		t.Fatalf("Empty toast is visible")
	}
	d.SetError("save failed")
	if !d.Visible() || !d.IsError {
		t.Fatalf("Expected visible error")
	}
	clk.advance(ToastDuration)
	if d.Visible() {
		t.Errorf("Toast should expire after %v", ToastDuration)
	}
	d.SetStatus("saved")
	if !d.Visible() || d.IsError {
		t.Errorf("Expected visible status")
	}
}
