package scene

import (
	"fmt"
	"strconv"
	"strings"
)

type Color struct {
	R, G, B, A uint8
}

var palette = map[string]Color{
	"black":     {0, 0, 0, 255},
	"white":     {255, 255, 255, 255},
	"gray":      {130, 130, 130, 255},
	"lightgray": {200, 200, 200, 255},
	"darkgray":  {80, 80, 80, 255},
	"red":       {230, 41, 55, 255},
	"green":     {0, 228, 48, 255},
	"blue":      {0, 121, 241, 255},
	"yellow":    {253, 249, 0, 255},
	"orange":    {255, 161, 0, 255},
	"purple":    {200, 122, 255, 255},
	"magenta":   {255, 0, 255, 255},
	"skyblue":   {102, 191, 255, 255},
}

// ParseColor accepts a palette name or a #rrggbb hex string. An empty string
// is black.
func ParseColor(s string) (Color, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return palette["black"], nil
	}
	if c, ok := palette[s]; ok {
		return c, nil
	}
	if len(s) == 7 && s[0] == '#' {
		n, err := strconv.ParseUint(s[1:], 16, 32)
		if err == nil {
			return Color{uint8(n >> 16), uint8(n >> 8), uint8(n), 255}, nil
		}
	}
	return Color{}, fmt.Errorf("%w: %q", ErrUnknownColor, s)
}

// Hex returns the color as #rrggbb, ignoring alpha.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
