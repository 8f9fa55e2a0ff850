package config

import (
	"fmt"
	"strconv"
	"strings"
)

// RGBA is a parsed colour.
type RGBA struct {
	R, G, B, A uint8
}

// ParseHexColor parses "#rrggbb" or "#rrggbbaa". The leading '#' is optional.
func ParseHexColor(s string) (RGBA, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) != 6 && len(h) != 8 {
		return RGBA{}, fmt.Errorf("color %q: want 6 or 8 hex digits", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return RGBA{}, fmt.Errorf("color %q: %w", s, err)
	}
	if len(h) == 6 {
		v = v<<8 | 0xff
	}
	return RGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}

// Palette holds the parsed colours section.
type Palette struct {
	Background, Boid, Predator, Food RGBA
}

// Palette parses every colour in the section.
func (c ColorsConfig) Palette() (Palette, error) {
	var p Palette
	for _, f := range []struct {
		name string
		src  string
		dst  *RGBA
	}{
		{"background", c.Background, &p.Background},
		{"boid", c.Boid, &p.Boid},
		{"predator", c.Predator, &p.Predator},
		{"food", c.Food, &p.Food},
	} {
		col, err := ParseHexColor(f.src)
		if err != nil {
			return Palette{}, fmt.Errorf("colors.%s: %w", f.name, err)
		}
		*f.dst = col
	}
	return p, nil
}
