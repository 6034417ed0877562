package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrInvalidColor is returned for strings that are not RGB or ARGB hex
var ErrInvalidColor = errors.New("invalid hex color")

// ParseHexColor parses "#AARRGGBB" or "#RRGGBB" (hash optional).
// Six digit colours are opaque.
func ParseHexColor(s string) (color.NRGBA, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 && len(hex) != 8 {
		return color.NRGBA{}, fmt.Errorf("%q: %w", s, ErrInvalidColor)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("%q: %w", s, ErrInvalidColor)
	}

	c := color.NRGBA{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
		A: 0xff,
	}
	if len(hex) == 8 {
		c.A = uint8(v >> 24)
	}
	return c, nil
}

// FormatHexColor renders c as ARGB hex, e.g. "#FF00A0C8"
func FormatHexColor(c color.NRGBA, includeHash bool) string {
	s := fmt.Sprintf("%02X%02X%02X%02X", c.A, c.R, c.G, c.B)
	if includeHash {
		return "#" + s
	}
	return s
}

// HexColor is a colour written as hex in config files
type HexColor color.NRGBA

// White is the neutral tint
var White = HexColor{R: 0xff, G: 0xff, B: 0xff, A: 0xff}

// NRGBA returns the colour as non-premultiplied
func (h HexColor) NRGBA() color.NRGBA { return color.NRGBA(h) }

// RGBA returns the colour premultiplied, as drawing expects
func (h HexColor) RGBA() color.RGBA {
	return color.RGBAModel.Convert(color.NRGBA(h)).(color.RGBA)
}

// String returns the colour as #AARRGGBB
func (h HexColor) String() string { return FormatHexColor(color.NRGBA(h), true) }

// IsZero reports an unset colour
func (h HexColor) IsZero() bool { return h == HexColor{} }

func (h *HexColor) set(s string) error {
	c, err := ParseHexColor(s)
	if err != nil {
		return err
	}
	*h = HexColor(c)
	return nil
}

// UnmarshalYAML implements yaml.Unmarshaler
func (h *HexColor) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	return h.set(s)
}

// MarshalYAML implements yaml.Marshaler
func (h HexColor) MarshalYAML() (interface{}, error) {
	return h.String(), nil
}

// UnmarshalJSON implements json.Unmarshaler
func (h *HexColor) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	return h.set(s)
}

// MarshalJSON implements json.Marshaler
func (h HexColor) MarshalJSON() ([]byte, error) {
	return json.Marshal(h.String())
}
