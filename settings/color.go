package settings

import (
	"errors"
	"fmt"
	"image/color"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// ParseColor accepts "#rgb" and "#rrggbb", with or without the leading '#'.
func ParseColor(s string) (color.Color, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, errors.New("empty color")
	}
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	if len(s) == 4 {
		s = "#" + strings.Repeat(s[1:2], 2) + strings.Repeat(s[2:3], 2) + strings.Repeat(s[3:4], 2)
	}
	if len(s) != 7 {
		return nil, fmt.Errorf("parse color %q: want #rgb or #rrggbb", s)
	}
	c, err := colorful.Hex(strings.ToLower(s))
	if err != nil {
		return nil, fmt.Errorf("parse color %q: %w", s, err)
	}
	return toRGBA(c), nil
}

// FormatColor renders c as "#rrggbb". Alpha is dropped.
func FormatColor(c color.Color) string {
	if c == nil {
		return "#ffffff"
	}
	cf, ok := colorful.MakeColor(c)
	if !ok {
		// Fully transparent colors cannot be un-premultiplied.
		return "#000000"
	}
	return cf.Clamped().Hex()
}

func toRGBA(c colorful.Color) color.RGBA {
	r, g, b := c.Clamped().RGB255()
	return color.RGBA{r, g, b, 0xff}
}
