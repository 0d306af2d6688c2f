package main

import (
	"errors"
	"fmt"
	"image/color"
	"log/slog"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/ncruces/zenity"
	"golang.org/x/image/font"

	"ring-light/canvas"
	"ring-light/input"
	"ring-light/render"
	"ring-light/settings"
	"ring-light/ui"
)

type Game struct {
	settings     settings.Settings
	settingsPath string
	savedPrint   string
	dirtySince   time.Time
	watcher      *settings.Watcher

	screen       *canvas.Screen
	screenWidth  int
	screenHeight int
	face         font.Face

	// Sub-systems
	input *input.InputSystem
	ui    *ui.UISystem

	colorPicks chan color.Color
	pickErrs   chan error
	picking    bool

	screenshotRequested bool
	now                 func() time.Time
}

// NewGame builds a game around s, which is assumed to be what is on disk at
// path. watcher may be nil.
func NewGame(s settings.Settings, path string, watcher *settings.Watcher) *Game {
	g := &Game{
		settings:     s,
		settingsPath: path,
		savedPrint:   settings.Fingerprint(s),
		watcher:      watcher,
		screen:       canvas.NewScreen(),
		face:         LoadUIFont(UIFontPath),
		colorPicks:   make(chan color.Color, 1),
		pickErrs:     make(chan error, 1),
		now:          time.Now,
	}

	g.input = input.NewInputSystem(g)
	g.ui = ui.NewUISystem(
		func() font.Face { return g.face },
		func() (int, int) { return g.screenWidth, g.screenHeight },
		g.status,
		ui.Actions{
			ToggleMode:    g.ToggleMode,
			ToggleStyle:   g.ToggleStyle,
			ToggleDiffuse: g.ToggleDiffuse,
			StepLEDs:      g.StepLEDs,
			AutoLEDs:      g.AutoLEDs,
			SelectPreset:  g.SelectPreset,
			CustomColor:   g.PickCustomColor,
			TogglePin:     g.TogglePin,
		},
		DrawTextLines,
	)
	return g
}

func (g *Game) status() ui.Status {
	st := ui.Status{
		Mode:     string(g.settings.Mode),
		Style:    string(g.settings.Ring.Style),
		Diffuse:  g.settings.Ring.Diffuse,
		Pinned:   g.settings.LockSettingsOnScreen,
		Selected: -1,
	}
	if g.settings.Ring.NumLEDs != nil {
		st.NumLEDs = *g.settings.Ring.NumLEDs
	}
	for i, p := range g.settings.Presets {
		c, err := settings.ParseColor(p.Color)
		if err != nil {
			continue
		}
		st.Presets = append(st.Presets, c)
		if p.Color == g.settings.FillColor && st.Selected < 0 {
			st.Selected = i
		}
	}
	return st
}

// change applies f and schedules a save.
func (g *Game) change(f func(s *settings.Settings)) {
	f(&g.settings)
	if g.dirtySince.IsZero() {
		g.dirtySince = g.now()
	}
}

// --- input.Host ---

func (g *Game) ToggleMode()    { g.change((*settings.Settings).ToggleMode) }
func (g *Game) ToggleStyle()   { g.change((*settings.Settings).ToggleStyle) }
func (g *Game) ToggleDiffuse() { g.change((*settings.Settings).ToggleDiffuse) }
func (g *Game) AutoLEDs()      { g.change((*settings.Settings).AutoLEDs) }

func (g *Game) StepLEDs(delta int) {
	g.change(func(s *settings.Settings) { s.StepLEDs(delta) })
}

func (g *Game) StepWidth(delta float64) {
	g.change(func(s *settings.Settings) { s.StepWidth(delta) })
}

func (g *Game) SelectPreset(i int) {
	if i < 0 || i >= len(g.settings.Presets) {
		return
	}
	p := g.settings.Presets[i]
	c, err := settings.ParseColor(p.Color)
	if err != nil {
		g.ui.Debug.SetError(fmt.Sprintf("preset %s: %v", p.Name, err))
		return
	}
	g.change(func(s *settings.Settings) { s.SetColor(c) })
}

func (g *Game) TogglePin() {
	g.change(func(s *settings.Settings) { s.LockSettingsOnScreen = !s.LockSettingsOnScreen })
}

func (g *Game) HideSettings() {
	g.ui.AutoHide.Hide()
}

func (g *Game) KeyPressed() {
	g.ui.AutoHide.Touch()
}

func (g *Game) ToggleFullscreen() {
	ebiten.SetFullscreen(!ebiten.IsFullscreen())
}

func (g *Game) RequestScreenshot() {
	g.screenshotRequested = true
}

func (g *Game) SaveSettings() error {
	if err := SaveState(g); err != nil {
		return err
	}
	g.dirtySince = time.Time{}
	g.ui.Debug.SetStatus("settings saved")
	return nil
}

// PickCustomColor opens the system color dialog. The dialog blocks, so it
// runs off the game loop and the result is picked up in Update.
func (g *Game) PickCustomColor() {
	if g.picking {
		return
	}
	g.picking = true
	initial := g.settings.Fill()
	go func() {
		c, err := zenity.SelectColor(zenity.Title("Ring light color"), zenity.Color(initial))
		if err != nil {
			g.pickErrs <- err
			return
		}
		g.colorPicks <- c
	}()
}

func (g *Game) Update() error {
	if err := g.input.Update(); err != nil {
		if errors.Is(err, ebiten.Termination) {
			g.flush()
			return err
		}
		slog.Error("input", "err", err)
		g.ui.Debug.SetError(err.Error())
	}
	g.ui.Update()
	g.poll()

	g.saveIfDue()

	if g.screenshotRequested {
		g.screenshotRequested = false
		g.screenshot()
	}
	return nil
}

// poll drains the color dialog and the settings watcher.
func (g *Game) poll() {
	select {
	case c := <-g.colorPicks:
		g.picking = false
		g.change(func(s *settings.Settings) { s.SetColor(c) })
	case err := <-g.pickErrs:
		g.picking = false
		if !errors.Is(err, zenity.ErrCanceled) {
			slog.Warn("color dialog", "err", err)
			g.ui.Debug.SetError(fmt.Sprintf("color dialog: %v", err))
		}
	default:
	}

	if g.watcher == nil {
		return
	}
	select {
	case s := <-g.watcher.Updates():
		g.reload(s)
	case err := <-g.watcher.Errors():
		slog.Warn("settings reload", "err", err)
		g.ui.Debug.SetError(err.Error())
	default:
	}
}

// reload takes settings edited outside the app. Pending local changes lose.
func (g *Game) reload(s settings.Settings) {
	if err := ApplyPresetScript(g.settingsPath, &s); err != nil {
		slog.Warn("preset script", "err", err)
		g.ui.Debug.SetError(err.Error())
	}
	g.settings = s
	g.savedPrint = settings.Fingerprint(s)
	g.dirtySince = time.Time{}
	g.ui.Debug.SetStatus("settings reloaded")
	slog.Info("settings reloaded", "path", g.settingsPath)
}

func (g *Game) saveIfDue() {
	if !g.dirtySince.IsZero() && g.now().Sub(g.dirtySince) >= SaveDelay {
		g.flush()
	}
}

func (g *Game) flush() {
	if err := SaveState(g); err != nil {
		slog.Error("save settings", "err", err)
		g.ui.Debug.SetError(fmt.Sprintf("save failed: %v", err))
	}
	g.dirtySince = time.Time{}
}

func (g *Game) screenshot() {
	name := g.now().Format(ScreenshotPattern)
	if err := Snapshot(g.settings, g.screenWidth, g.screenHeight, name); err != nil {
		slog.Error("screenshot", "err", err)
		g.ui.Debug.SetError(err.Error())
		return
	}
	slog.Info("screenshot saved", "path", name)
	g.ui.Debug.SetStatus("saved " + name)
}

// Snapshot renders s off-screen at w x h and writes a PNG.
func Snapshot(s settings.Settings, w, h int, path string) error {
	img := canvas.NewImage(w, h)
	defer img.Close()
	render.Render(img, s.RenderConfig())
	return img.SavePNG(path)
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.screen.Bind(screen)
	render.Render(g.screen, g.settings.RenderConfig())
	g.ui.Draw(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.screenWidth = outsideWidth
	g.screenHeight = outsideHeight
	g.screen.SetDisplaySize(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}
