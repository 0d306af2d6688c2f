package settings

import (
	"fmt"
	"path/filepath"

	"github.com/mitchellh/go-homedir"
)

const (
	appDir       = "ring-light"
	settingsFile = "settings.yaml"
)

// DefaultPath is ~/.config/ring-light/settings.yaml.
func DefaultPath() (string, error) {
	home, err := homedir.Dir()
	if err != nil {
		return "", fmt.Errorf("locate home dir: %w", err)
	}
	return filepath.Join(home, ".config", appDir, settingsFile), nil
}

// ExpandPath resolves a leading "~" and makes path absolute.
func ExpandPath(path string) (string, error) {
	p, err := homedir.Expand(path)
	if err != nil {
		return "", fmt.Errorf("expand %s: %w", path, err)
	}
	return filepath.Abs(p)
}

// ResolveRelative resolves ref against the directory of the settings file.
func ResolveRelative(settingsPath, ref string) (string, error) {
	p, err := homedir.Expand(ref)
	if err != nil {
		return "", fmt.Errorf("expand %s: %w", ref, err)
	}
	if filepath.IsAbs(p) {
		return p, nil
	}
	return filepath.Join(filepath.Dir(settingsPath), p), nil
}
