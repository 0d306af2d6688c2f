package engine

import (
	"fmt"
	"log/slog"
	"sort"

	"go.starlark.net/starlark"
)

// Preset is a named color produced by a script.
type Preset struct {
	Name  string
	Color string
}

// Result is what a preset script produced.
type Result struct {
	Presets []Preset
	// Overrides holds the recognised keys of the script's "overrides" dict.
	Overrides map[string]interface{}
}

// OverrideKeys are the settings a script may override. They are also
// predeclared with the current values.
var OverrideKeys = []string{"fill_color", "mode", "style", "num_leds", "diffuse", "ring_width_percent"}

// ExecuteStarlark executes a script with provided inputs and returns its globals as native Go values.
func ExecuteStarlark(threadName string, script string, inputs map[string]interface{}) (map[string]interface{}, error) {
	thread := &starlark.Thread{Name: threadName, Print: func(_ *starlark.Thread, msg string) {
		slog.Info("script", "name", threadName, "msg", msg)
	}}

	globals := starlark.StringDict{}
	for k, v := range inputs {
		if val, err := toStarlarkValue(v); err == nil {
			globals[k] = val
		}
	}

	resultGlobals, err := starlark.ExecFile(thread, threadName, script, globals)
	if err != nil {
		return nil, err
	}

	out := make(map[string]interface{})
	for k, v := range resultGlobals {
		out[k] = FromStarlarkValue(v)
	}
	return out, nil
}

// RunPresetScript runs a preset script. current holds the settings the script
// can read; see OverrideKeys.
//
//	presets = ["#ffffff", ("sunset", "#ff9a5a")]
//	overrides = {"style": "solid"}
func RunPresetScript(name, script string, current map[string]interface{}) (Result, error) {
	globals, err := ExecuteStarlark(name, script, current)
	if err != nil {
		return Result{}, fmt.Errorf("preset script %s: %w", name, err)
	}

	var res Result
	if raw, ok := globals["presets"]; ok {
		list, ok := raw.([]interface{})
		if !ok {
			return Result{}, fmt.Errorf("preset script %s: presets must be a list, got %T", name, raw)
		}
		for i, item := range list {
			p, err := toPreset(item)
			if err != nil {
				return Result{}, fmt.Errorf("preset script %s: presets[%d]: %w", name, i, err)
			}
			res.Presets = append(res.Presets, p)
		}
	}

	if raw, ok := globals["overrides"]; ok {
		m, ok := raw.(map[string]interface{})
		if !ok {
			return Result{}, fmt.Errorf("preset script %s: overrides must be a dict, got %T", name, raw)
		}
		res.Overrides = make(map[string]interface{})
		for _, k := range OverrideKeys {
			if v, ok := m[k]; ok {
				res.Overrides[k] = v
			}
		}
		for _, k := range SortedKeys(m) {
			if _, ok := res.Overrides[k]; !ok {
				slog.Warn("preset script: unknown override", "name", name, "key", k)
			}
		}
	}
	return res, nil
}

func toPreset(v interface{}) (Preset, error) {
	switch val := v.(type) {
	case string:
		return Preset{Name: val, Color: val}, nil
	case []interface{}:
		if len(val) == 2 {
			n, ok1 := val[0].(string)
			c, ok2 := val[1].(string)
			if ok1 && ok2 {
				return Preset{Name: n, Color: c}, nil
			}
		}
	}
	return Preset{}, fmt.Errorf("want a color string or a (name, color) pair, got %v", v)
}

// Helpers for type conversion
func toStarlarkValue(v interface{}) (starlark.Value, error) {
	if v == nil {
		return starlark.None, nil
	}
	switch val := v.(type) {
	case string:
		return starlark.String(val), nil
	case int:
		return starlark.MakeInt(val), nil
	case float64:
		return starlark.Float(val), nil
	case bool:
		return starlark.Bool(val), nil
	}
	return starlark.None, fmt.Errorf("unsupported type: %T", v)
}

func FromStarlarkValue(v starlark.Value) interface{} {
	switch val := v.(type) {
	case starlark.String:
		return string(val)
	case starlark.Int:
		i, _ := val.Int64()
		return int(i)
	case starlark.Float:
		return float64(val)
	case starlark.Bool:
		return bool(val)
	case *starlark.List:
		return fromIterable(val, val.Len())
	case starlark.Tuple:
		return fromIterable(val, val.Len())
	case *starlark.Dict:
		out := make(map[string]interface{}, val.Len())
		for _, item := range val.Items() {
			if k, ok := item[0].(starlark.String); ok {
				out[string(k)] = FromStarlarkValue(item[1])
			}
		}
		return out
	}
	return nil
}

func fromIterable(v starlark.Indexable, n int) []interface{} {
	out := make([]interface{}, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, FromStarlarkValue(v.Index(i)))
	}
	return out
}

// SortedKeys returns the keys of m in order, for stable logging.
func SortedKeys(m map[string]interface{}) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
