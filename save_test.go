package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"ring-light/render"
	"ring-light/settings"
)

func newTestGame(t *testing.T) (*Game, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "settings.yaml")
	s, err := LoadState(path)
	if err != nil {
		t.Fatalf("LoadState failed: %v", err)
	}
	return NewGame(s, path, nil), path
}

func TestLoadStateWritesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg", "settings.yaml")
	s, err := LoadState(path)
	if err != nil {
		t.Fatalf("LoadState failed: %v", err)
	}
	if settings.Fingerprint(s) != settings.Fingerprint(settings.Default()) {
		t.Errorf("Expected defaults")
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("Defaults were not written: %v", err)
	}
}

func TestSaveStateOnlyWhenChanged(t *testing.T) {
	g, path := newTestGame(t)
	before, _ := os.Stat(path)

	if err := SaveState(g); err != nil {
		t.Fatalf("SaveState failed: %v", err)
	}
	after, _ := os.Stat(path)
	if !after.ModTime().Equal(before.ModTime()) {
		t.Errorf("Unchanged settings were rewritten")
	}

	g.ToggleMode()
	if err := SaveState(g); err != nil {
		t.Fatalf("SaveState failed: %v", err)
	}
	loaded, err := settings.Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.Mode != render.ModeSolid {
		t.Errorf("Expected saved mode solid, got %s", loaded.Mode)
	}
}

func TestGameSavesAfterDelay(t *testing.T) {
	g, path := newTestGame(t)
	clock := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	g.now = func() time.Time { return clock }

	g.StepLEDs(3)
	g.SelectPreset(0)
	if g.dirtySince.IsZero() {
		t.Fatalf("Expected pending save")
	}

	clock = clock.Add(SaveDelay / 2)
	g.saveIfDue()
	if loaded, _ := settings.Load(path); *loaded.Ring.NumLEDs != settings.DefaultNumLEDs {
		t.Fatalf("Saved before the delay")
	}

	clock = clock.Add(SaveDelay / 2)
	g.saveIfDue()
	loaded, err := settings.Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if *loaded.Ring.NumLEDs != settings.DefaultNumLEDs+3 {
		t.Errorf("Expected %d LEDs on disk, got %d", settings.DefaultNumLEDs+3, *loaded.Ring.NumLEDs)
	}
	if loaded.FillColor != "#ffffff" {
		t.Errorf("Expected preset 0 color, got %s", loaded.FillColor)
	}
	if !g.dirtySince.IsZero() {
		t.Errorf("Save should clear the pending flag")
	}
}

func TestSelectPresetOutOfRange(t *testing.T) {
	g, _ := newTestGame(t)
	g.SelectPreset(42)
	g.SelectPreset(-1)
	if !g.dirtySince.IsZero() {
		t.Errorf("Out-of-range preset changed settings")
	}
}

func TestReloadAppliesPresetScript(t *testing.T) {
	g, path := newTestGame(t)
	script := filepath.Join(filepath.Dir(path), "presets.star")
	if err := os.WriteFile(script, []byte(`presets = [("ice", "#dff6ff")]`), 0o644); err != nil {
		t.Fatal(err)
	}

	s := settings.Default()
	s.PresetScript = "presets.star"
	g.reload(s)

	if len(g.settings.Presets) != 1 || g.settings.Presets[0].Name != "ice" {
		t.Errorf("Unexpected presets %+v", g.settings.Presets)
	}
	if g.savedPrint != settings.Fingerprint(g.settings) {
		t.Errorf("Reload should not leave a pending save")
	}
}

func TestApplyPresetScriptErrorKeepsSettings(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	s := settings.Default()
	s.PresetScript = "missing.star"
	before := settings.Fingerprint(s)
	if err := ApplyPresetScript(path, &s); err == nil {
		t.Fatalf("Expected an error for a missing script")
	}
	if settings.Fingerprint(s) != before {
		t.Errorf("Settings changed on error")
	}
}

func TestStatus(t *testing.T) {
	g, _ := newTestGame(t)
	st := g.status()
	if st.Mode != "ring" || st.Style != "led" || !st.Diffuse || st.NumLEDs != settings.DefaultNumLEDs {
		t.Errorf("Unexpected status %+v", st)
	}
	if len(st.Presets) != len(settings.DefaultPresets) {
		t.Errorf("Expected %d swatches, got %d", len(settings.DefaultPresets), len(st.Presets))
	}
	// The default fill is the "warm" preset.
	if st.Selected != 1 {
		t.Errorf("Expected preset 1 selected, got %d", st.Selected)
	}

	g.AutoLEDs()
	if g.status().NumLEDs != 0 {
		t.Errorf("Expected derived LED count in status")
	}
}
