package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Host defines the callbacks the input system needs from the main game.
type Host interface {
	ToggleMode()
	ToggleStyle()
	ToggleDiffuse()
	StepLEDs(delta int)
	AutoLEDs()
	StepWidth(delta float64)
	SelectPreset(i int)
	PickCustomColor()
	TogglePin()
	HideSettings()
	ToggleFullscreen()
	RequestScreenshot()
	SaveSettings() error
	// KeyPressed counts as interaction with the panel.
	KeyPressed()
}

// WidthStep is how much one [ or ] press changes the ring width percent.
const WidthStep = 1.0

// Binding maps a key to an action.
type Binding struct {
	Key  ebiten.Key
	Ctrl bool
	Do   func(Host) error
}

func do(f func(Host)) func(Host) error {
	return func(h Host) error {
		f(h)
		return nil
	}
}

// Bindings returns the keyboard shortcuts.
func Bindings() []Binding {
	bs := []Binding{
		{Key: ebiten.KeyS, Ctrl: true, Do: func(h Host) error { return h.SaveSettings() }},
		{Key: ebiten.KeyM, Do: do(Host.ToggleMode)},
		{Key: ebiten.KeyS, Do: do(Host.ToggleStyle)},
		{Key: ebiten.KeyD, Do: do(Host.ToggleDiffuse)},
		{Key: ebiten.KeyArrowUp, Do: do(func(h Host) { h.StepLEDs(1) })},
		{Key: ebiten.KeyArrowDown, Do: do(func(h Host) { h.StepLEDs(-1) })},
		{Key: ebiten.KeyA, Do: do(Host.AutoLEDs)},
		{Key: ebiten.KeyBracketLeft, Do: do(func(h Host) { h.StepWidth(-WidthStep) })},
		{Key: ebiten.KeyBracketRight, Do: do(func(h Host) { h.StepWidth(WidthStep) })},
		{Key: ebiten.KeyC, Do: do(Host.PickCustomColor)},
		{Key: ebiten.KeyP, Do: do(Host.TogglePin)},
		{Key: ebiten.KeyH, Do: do(Host.HideSettings)},
		{Key: ebiten.KeyF, Do: do(Host.ToggleFullscreen)},
		{Key: ebiten.KeyF1, Do: do(Host.RequestScreenshot)},
		{Key: ebiten.KeyEscape, Do: quit},
		{Key: ebiten.KeyQ, Do: quit},
	}
	digits := []ebiten.Key{ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4, ebiten.Key5, ebiten.Key6, ebiten.Key7, ebiten.Key8, ebiten.Key9}
	for i, k := range digits {
		bs = append(bs, Binding{Key: k, Do: do(func(h Host) { h.SelectPreset(i) })})
	}
	return bs
}

func quit(Host) error {
	return ebiten.Termination
}

type InputSystem struct {
	host     Host
	bindings []Binding
	keys     []ebiten.Key
}

func NewInputSystem(h Host) *InputSystem {
	return &InputSystem{host: h, bindings: Bindings()}
}

// Update handles the keys pressed this frame. It returns ebiten.Termination
// when the user asked to quit.
func (is *InputSystem) Update() error {
	is.keys = inpututil.AppendJustPressedKeys(is.keys[:0])
	ctrl := ebiten.IsKeyPressed(ebiten.KeyControl) || ebiten.IsKeyPressed(ebiten.KeyMeta)
	for _, k := range is.keys {
		if err := is.Dispatch(k, ctrl); err != nil {
			return err
		}
	}
	return nil
}

// Dispatch runs the binding for key. Unbound keys are ignored.
func (is *InputSystem) Dispatch(key ebiten.Key, ctrl bool) error {
	for _, b := range is.bindings {
		if b.Key != key || b.Ctrl != ctrl {
			continue
		}
		is.host.KeyPressed()
		return b.Do(is.host)
	}
	return nil
}
