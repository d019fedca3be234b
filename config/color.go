package config

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/plus3/cckdebug/ui"
)

// Color is a ui.Color written as "#RRGGBB" or "#RRGGBBAA" in TOML.
type Color ui.Color

// ParseHexColor parses "#RRGGBB" or "#RRGGBBAA". The leading '#' is optional.
func ParseHexColor(s string) (Color, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 && len(hex) != 8 {
		return Color{}, fmt.Errorf("invalid color %q: want #RRGGBB or #RRGGBBAA", s)
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	channel := func(shift uint) float32 {
		return float32((v>>shift)&0xff) / 255
	}
	return Color{R: channel(24), G: channel(16), B: channel(8), A: channel(0)}, nil
}

// UnmarshalText implements encoding.TextUnmarshaler for TOML parsing.
func (c *Color) UnmarshalText(text []byte) error {
	parsed, err := ParseHexColor(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// MarshalText implements encoding.TextMarshaler for TOML serialization.
func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.Hex()), nil
}

// Hex formats the colour as "#RRGGBBAA".
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x%02x", toByte(c.R), toByte(c.G), toByte(c.B), toByte(c.A))
}

// UI returns the colour as a ui.Color.
func (c Color) UI() ui.Color {
	return ui.Color(c)
}

func toByte(f float32) uint8 {
	return uint8(math.Round(float64(min(max(f, 0), 1)) * 255))
}
