// seehuhn.de/go/winerender - render wine tasting attributes as images
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package hsv implements the hue/saturation/value colour model used to
// describe wine colours.
//
// Hues are measured in degrees.  Saturation and value range from 0 to 1.
package hsv

import (
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is a colour in HSV space.
type Color struct {
	H float64 `yaml:"h" json:"h"` // hue in degrees, [0, 360)
	S float64 `yaml:"s" json:"s"` // saturation, [0, 1]
	V float64 `yaml:"v" json:"v"` // value, [0, 1]
}

func (c Color) String() string {
	return fmt.Sprintf("hsv(%.1f, %.3f, %.3f)", c.H, c.S, c.V)
}

// ToRGB converts an HSV triple to 8-bit RGB.  The hue is reduced modulo
// 360, so that negative hues wrap around.  Saturation and value are
// clamped to [0, 1].
func ToRGB(h, s, v float64) (r, g, b uint8) {
	h = wrapHue(h)
	s = clamp01(s)
	v = clamp01(v)

	c := v * s
	x := c * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := v - c

	var r1, g1, b1 float64
	switch {
	case h < 60:
		r1, g1, b1 = c, x, 0
	case h < 120:
		r1, g1, b1 = x, c, 0
	case h < 180:
		r1, g1, b1 = 0, c, x
	case h < 240:
		r1, g1, b1 = 0, x, c
	case h < 300:
		r1, g1, b1 = x, 0, c
	default:
		r1, g1, b1 = c, 0, x
	}
	return channel(r1 + m), channel(g1 + m), channel(b1 + m)
}

// RGB returns the 8-bit RGB representation of c.
func (c Color) RGB() (r, g, b uint8) {
	return ToRGB(c.H, c.S, c.V)
}

// FromRGB converts an 8-bit RGB colour to HSV.
func FromRGB(r, g, b uint8) Color {
	col := colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
	h, s, v := col.Hsv()
	return Color{H: wrapHue(h), S: s, V: v}
}

// ParseHex parses a colour given as "#rrggbb".
func ParseHex(s string) (Color, error) {
	col, err := colorful.Hex(s)
	if err != nil {
		return Color{}, fmt.Errorf("hsv: invalid colour %q: %w", s, err)
	}
	return FromRGB(col.RGB255())
}

// UnmarshalText allows colours to be written as "#rrggbb" strings in
// configuration files.
func (c *Color) UnmarshalText(text []byte) error {
	parsed, err := ParseHex(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// Hex formats c as "#rrggbb".
func (c Color) Hex() string {
	r, g, b := c.RGB()
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

// Blend interpolates between a and b.  Saturation and value are mixed
// linearly.  The hue travels along the shorter arc of the colour wheel.
// A ratio of 0 returns a, a ratio of 1 returns b.
func Blend(a, b Color, ratio float64) Color {
	t := clamp01(ratio)

	h1, h2 := a.H, b.H
	if math.Abs(h1-h2) > 180 {
		if h1 < h2 {
			h1 += 360
		} else {
			h2 += 360
		}
	}

	return Color{
		H: wrapHue(h1 + (h2-h1)*t),
		S: a.S + (b.S-a.S)*t,
		V: a.V + (b.V-a.V)*t,
	}
}

// Clamp returns c with the hue reduced to [0, 360) and the other components
// clamped to [0, 1].  Non-finite components become 0.
func (c Color) Clamp() Color {
	return Color{H: wrapHue(c.H), S: clamp01(c.S), V: clamp01(c.V)}
}

// IsFinite reports whether all components of c are finite numbers.
func (c Color) IsFinite() bool {
	return finite(c.H) && finite(c.S) && finite(c.V)
}

func wrapHue(h float64) float64 {
	if !finite(h) {
		return 0
	}
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	if h >= 360 {
		h = 0
	}
	return h
}

func clamp01(x float64) float64 {
	if !(x > 0) { // also catches NaN
		return 0
	}
	return min(x, 1)
}

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// channel maps [0, 1] to a byte, rounding halves up.
func channel(x float64) uint8 {
	return uint8(max(0, min(255, math.Floor(x*255+0.5))))
}
