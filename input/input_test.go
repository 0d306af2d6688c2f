package input

import (
	"errors"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

type fakeHost struct {
	calls  []string
	leds   int
	width  float64
	preset int
	keys   int
}

func (h *fakeHost) ToggleMode() { h.calls = append(h.calls, "mode") }
func (h *fakeHost) ToggleStyle() { h.calls = append(h.calls, "style") }
func (h *fakeHost) ToggleDiffuse() { h.calls = append(h.calls, "diffuse") }
func (h *fakeHost) StepLEDs(d int) { h.leds += d }
func (h *fakeHost) AutoLEDs() { h.calls = append(h.calls, "auto") }
func (h *fakeHost) StepWidth(d float64) { h.width += d }
func (h *fakeHost) SelectPreset(i int) { h.preset = i }
func (h *fakeHost) PickCustomColor() { h.calls = append(h.calls, "custom") }
func (h *fakeHost) TogglePin() { h.calls = append(h.calls, "pin") }
func (h *fakeHost) HideSettings() { h.calls = append(h.calls, "hide") }
func (h *fakeHost) ToggleFullscreen() { h.calls = append(h.calls, "fullscreen") }
func (h *fakeHost) RequestScreenshot() { h.calls = append(h.calls, "screenshot") }
func (h *fakeHost) SaveSettings() error {
	h.calls = append(h.calls, "save")
	return nil
}
func (h *fakeHost) KeyPressed() { h.keys++ }

func TestDispatch(t *testing.T) {
	h := &fakeHost{preset: -1}
	is := NewInputSystem(h)

	keys := []ebiten.Key{ebiten.KeyM, ebiten.KeyS, ebiten.KeyD, ebiten.KeyA, ebiten.KeyC, ebiten.KeyP, ebiten.KeyH, ebiten.KeyF, ebiten.KeyF1}
	for _, k := range keys {
		if err := is.Dispatch(k, false); err != nil {
			t.Fatalf("Dispatch(%v) failed: %v", k, err)
		}
	}
	want := []string{"mode", "style", "diffuse", "auto", "custom", "pin", "hide", "fullscreen", "screenshot"}
	if len(h.calls) != len(want) {
		t.Fatalf("Expected calls %v, got %v", want, h.calls)
	}
	for i := range want {
		if h.calls[i] != want[i] {
			t.Errorf("call %d: expected %s, got %s", i, want[i], h.calls[i])
		}
	}
	if h.keys != len(keys) {
		t.Errorf("Expected %d key interactions, got %d", len(keys), h.keys)
	}
}

func TestDispatchSteps(t *testing.T) {
	h := &fakeHost{preset: -1}
	is := NewInputSystem(h)

	_ = is.Dispatch(ebiten.KeyArrowUp, false)
	_ = is.Dispatch(ebiten.KeyArrowUp, false)
	_ = is.Dispatch(ebiten.KeyArrowDown, false)
	if h.leds != 1 {
		t.Errorf("Expected net +1 LED, got %d", h.leds)
	}

	_ = is.Dispatch(ebiten.KeyBracketRight, false)
	_ = is.Dispatch(ebiten.KeyBracketLeft, false)
	_ = is.Dispatch(ebiten.KeyBracketLeft, false)
	if h.width != -WidthStep {
		t.Errorf("Expected width %v, got %v", -WidthStep, h.width)
	}

	_ = is.Dispatch(ebiten.Key3, false)
	if h.preset != 2 {
		t.Errorf("Expected preset index 2, got %d", h.preset)
	}
	_ = is.Dispatch(ebiten.Key9, false)
	if h.preset != 8 {
		t.Errorf("Expected preset index 8, got %d", h.preset)
	}
}

func TestDispatchCtrlS(t *testing.T) {
	h := &fakeHost{}
	is := NewInputSystem(h)

	_ = is.Dispatch(ebiten.KeyS, true)
	if len(h.calls) != 1 || h.calls[0] != "save" {
		t.Errorf("Ctrl+S should save, got %v", h.calls)
	}

	// Ctrl with an unbound key does nothing.
	_ = is.Dispatch(ebiten.KeyM, true)
	if len(h.calls) != 1 {
		t.Errorf("Ctrl+M should be ignored, got %v", h.calls)
	}
}

func TestDispatchQuit(t *testing.T) {
	is := NewInputSystem(&fakeHost{})
	for _, k := range []ebiten.Key{ebiten.KeyEscape, ebiten.KeyQ} {
		if err := is.Dispatch(k, false); !errors.Is(err, ebiten.Termination) {
			t.Errorf("Dispatch(%v) = %v, want ebiten.Termination", k, err)
		}
	}
	if err := is.Dispatch(ebiten.KeyZ, false); err != nil {
		t.Errorf("Unbound key returned %v", err)
	}
}
