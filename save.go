package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"ring-light/settings"
)

// LoadState reads the settings at path and applies their preset script.
// A missing file is written with defaults so the watcher has a directory to
// watch.
func LoadState(path string) (settings.Settings, error) {
	s, err := settings.Load(path)
	if err != nil {
		return settings.Default(), err
	}
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		if err := settings.Save(path, s); err != nil {
			return s, err
		}
		slog.Info("wrote default settings", "path", path)
	}
	return s, nil
}

// ApplyPresetScript runs the preset script named in s, if any. On error s is
// unchanged.
func ApplyPresetScript(path string, s *settings.Settings) error {
	if s.PresetScript == "" {
		return nil
	}
	script, err := settings.ResolveRelative(path, s.PresetScript)
	if err != nil {
		return err
	}
	res, err := settings.LoadPresetScript(script, *s)
	if err != nil {
		return err
	}
	if err := s.ApplyScript(res); err != nil {
		return fmt.Errorf("preset script %s: %w", script, err)
	}
	slog.Debug("applied preset script", "path", script, "presets", len(res.Presets), "overrides", len(res.Overrides))
	return nil
}

// SaveState writes g's settings if they changed since the last save.
func SaveState(g *Game) error {
	fp := settings.Fingerprint(g.settings)
	if fp == g.savedPrint {
		return nil
	}
	if g.watcher != nil {
		g.watcher.Remember(g.settings)
	}
	if err := settings.Save(g.settingsPath, g.settings); err != nil {
		return err
	}
	g.savedPrint = fp
	slog.Debug("settings saved", "path", g.settingsPath)
	return nil
}
