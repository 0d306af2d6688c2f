package settings

import (
	"fmt"
	"os"

	"ring-light/engine"
	"ring-light/layout"
	"ring-light/render"
)

// ScriptInputs exposes the current settings to a preset script.
func (s Settings) ScriptInputs() map[string]interface{} {
	in := map[string]interface{}{
		"fill_color":         s.FillColor,
		"mode":               string(s.Mode),
		"style":              string(s.Ring.Style),
		"diffuse":            s.Ring.Diffuse,
		"ring_width_percent": s.Ring.RingWidthPercent,
		"num_leds":           nil,
	}
	if s.Ring.NumLEDs != nil {
		in["num_leds"] = *s.Ring.NumLEDs
	}
	return in
}

// ApplyScript copies a script result into s. Presets with unparsable colors
// are an error; the settings are left untouched in that case.
func (s *Settings) ApplyScript(res engine.Result) error {
	next := s.Clone()

	if len(res.Presets) > 0 {
		next.Presets = next.Presets[:0]
		for _, p := range res.Presets {
			c, err := ParseColor(p.Color)
			if err != nil {
				return fmt.Errorf("preset %q: %w", p.Name, err)
			}
			next.Presets = append(next.Presets, Preset{Name: p.Name, Color: FormatColor(c)})
		}
	}

	for k, v := range res.Overrides {
		if err := next.override(k, v); err != nil {
			return fmt.Errorf("override %s: %w", k, err)
		}
	}

	next.Normalize()
	*s = next
	return nil
}

func (s *Settings) override(key string, v interface{}) error {
	switch key {
	case "fill_color":
		str, ok := v.(string)
		if !ok {
			return fmt.Errorf("want a string, got %T", v)
		}
		c, err := ParseColor(str)
		if err != nil {
			return err
		}
		s.SetColor(c)
	case "mode":
		str, ok := v.(string)
		if !ok || (str != string(render.ModeSolid) && str != string(render.ModeRing)) {
			return fmt.Errorf("want \"solid\" or \"ring\", got %v", v)
		}
		s.Mode = render.Mode(str)
	case "style":
		str, ok := v.(string)
		if !ok || (str != string(layout.StyleSolid) && str != string(layout.StyleLED)) {
			return fmt.Errorf("want \"solid\" or \"led\", got %v", v)
		}
		s.Ring.Style = layout.Style(str)
	case "num_leds":
		switch n := v.(type) {
		case nil:
			s.Ring.NumLEDs = nil
		case int:
			s.Ring.NumLEDs = &n
		default:
			return fmt.Errorf("want an int or None, got %T", v)
		}
	case "diffuse":
		b, ok := v.(bool)
		if !ok {
			return fmt.Errorf("want a bool, got %T", v)
		}
		s.Ring.Diffuse = b
	case "ring_width_percent":
		switch p := v.(type) {
		case int:
			s.Ring.RingWidthPercent = float64(p)
		case float64:
			s.Ring.RingWidthPercent = p
		default:
			return fmt.Errorf("want a number, got %T", v)
		}
	default:
		return fmt.Errorf("unknown key")
	}
	return nil
}

// LoadPresetScript runs the script at path against s.
func LoadPresetScript(path string, s Settings) (engine.Result, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return engine.Result{}, fmt.Errorf("read preset script: %w", err)
	}
	return engine.RunPresetScript(path, string(src), s.ScriptInputs())
}
