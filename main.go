package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/gogpu/gg"
	"github.com/hajimehoshi/ebiten/v2"

	"ring-light/settings"
)

func main() {
	var (
		settingsPath = flag.String("settings", "", "settings file (default ~/.config/ring-light/settings.yaml)")
		snapshot     = flag.String("snapshot", "", "render one frame to this PNG and exit")
		size         = flag.String("size", fmt.Sprintf("%dx%d", DefaultSnapshotWidth, DefaultSnapshotHeight), "snapshot size as WxH")
		verbose      = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	setupLogging(*verbose)

	if err := run(*settingsPath, *snapshot, *size); err != nil {
		slog.Error("ring-light", "err", err)
		os.Exit(1)
	}
}

func setupLogging(verbose bool) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	gg.SetLogger(logger)
}

func run(settingsPath, snapshot, size string) error {
	path, err := resolveSettingsPath(settingsPath)
	if err != nil {
		return err
	}

	if snapshot != "" {
		w, h, err := ParseSize(size)
		if err != nil {
			return err
		}
		s, err := settings.Load(path)
		if err != nil {
			return err
		}
		if err := ApplyPresetScript(path, &s); err != nil {
			return err
		}
		if err := Snapshot(s, w, h, snapshot); err != nil {
			return err
		}
		slog.Info("snapshot saved", "path", snapshot, "width", w, "height", h)
		return nil
	}

	onDisk, err := LoadState(path)
	if err != nil {
		return err
	}

	watcher, err := settings.Watch(path, onDisk, WatchDebounce)
	if err != nil {
		slog.Warn("live reload disabled", "err", err)
		watcher = nil
	} else {
		defer watcher.Close()
	}

	s := onDisk.Clone()
	if err := ApplyPresetScript(path, &s); err != nil {
		slog.Warn("preset script", "err", err)
	}

	g := NewGame(s, path, watcher)

	ebiten.SetWindowSize(DefaultWindowWidth, DefaultWindowHeight)
	ebiten.SetWindowTitle(WindowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetFullscreen(true)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

func resolveSettingsPath(p string) (string, error) {
	if p == "" {
		return settings.DefaultPath()
	}
	return settings.ExpandPath(p)
}

// ParseSize parses "WxH" with positive dimensions.
func ParseSize(s string) (int, int, error) {
	ws, hs, ok := strings.Cut(strings.ToLower(strings.TrimSpace(s)), "x")
	if !ok {
		return 0, 0, fmt.Errorf("size %q: want WxH", s)
	}
	w, err := strconv.Atoi(ws)
	if err != nil {
		return 0, 0, fmt.Errorf("size %q: %w", s, err)
	}
	h, err := strconv.Atoi(hs)
	if err != nil {
		return 0, 0, fmt.Errorf("size %q: %w", s, err)
	}
	if w <= 0 || h <= 0 {
		return 0, 0, fmt.Errorf("size %q: dimensions must be positive", s)
	}
	return w, h, nil
}
