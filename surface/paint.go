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

package surface

import (
	"math"
	"slices"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/winerender/hsv"
)

// RGBA is a non-premultiplied colour with all components in [0, 1].
type RGBA struct {
	R, G, B, A float64
}

// RGB255 returns the colour with 8-bit channels r, g, b and opacity a.
func RGB255(r, g, b uint8, a float64) RGBA {
	return RGBA{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255, A: a}
}

// HSV converts an HSV colour with opacity a.
func HSV(c hsv.Color, a float64) RGBA {
	r, g, b := c.RGB()
	return RGB255(r, g, b, a)
}

// WithAlpha returns c with its opacity replaced by a.
func (c RGBA) WithAlpha(a float64) RGBA {
	c.A = a
	return c
}

// Shift adds d/255 to each colour channel, clamping the result.
func (c RGBA) Shift(d int) RGBA {
	off := float64(d) / 255
	c.R = clamp01(c.R + off)
	c.G = clamp01(c.G + off)
	c.B = clamp01(c.B + off)
	return c
}

func (c RGBA) finite() bool {
	return isFinite(c.R) && isFinite(c.G) && isFinite(c.B) && isFinite(c.A)
}

// Stop is a colour stop of a gradient.
type Stop struct {
	Offset float64 // position along the gradient, in [0, 1]
	Color  RGBA
}

// Paint gives the colour of a shape at each point.  Points are given in the
// user space that was active when the shape was drawn.
type Paint interface {
	At(p vec.Vec2) RGBA
}

// Solid paints a single colour.
type Solid RGBA

// At implements the [Paint] interface.
func (s Solid) At(vec.Vec2) RGBA { return RGBA(s) }

// RadialGradient is a gradient between two concentric circles.  Points
// inside the inner circle take the first stop colour, points outside the
// outer circle take the last one.
type RadialGradient struct {
	Center vec.Vec2
	R0, R1 float64
	Stops  []Stop
}

// At implements the [Paint] interface.
func (g *RadialGradient) At(p vec.Vec2) RGBA {
	if g.R1 == g.R0 {
		return RGBA{}
	}
	d := p.Sub(g.Center).Length()
	return interpolate(g.Stops, (d-g.R0)/(g.R1-g.R0))
}

// LinearGradient is a gradient along the line from P0 to P1.
type LinearGradient struct {
	P0, P1 vec.Vec2
	Stops  []Stop
}

// At implements the [Paint] interface.
func (g *LinearGradient) At(p vec.Vec2) RGBA {
	d := g.P1.Sub(g.P0)
	l2 := d.Dot(d)
	if l2 == 0 {
		return RGBA{}
	}
	return interpolate(g.Stops, p.Sub(g.P0).Dot(d)/l2)
}

// interpolate evaluates the stop list at t.  Colours are mixed in
// premultiplied form, so that transparent stops do not darken their
// neighbours.  Stops must be sorted by offset.
func interpolate(stops []Stop, t float64) RGBA {
	n := len(stops)
	switch {
	case n == 0 || math.IsNaN(t):
		return RGBA{}
	case t <= stops[0].Offset:
		return stops[0].Color
	case t >= stops[n-1].Offset:
		return stops[n-1].Color
	}

	i, _ := slices.BinarySearchFunc(stops, t, func(s Stop, t float64) int {
		if s.Offset <= t {
			return -1
		}
		return 1
	})
	a, b := stops[i-1], stops[i]
	span := b.Offset - a.Offset
	if span <= 0 {
		return b.Color
	}
	u := (t - a.Offset) / span

	alpha := a.Color.A + (b.Color.A-a.Color.A)*u
	if alpha <= 0 {
		return RGBA{}
	}
	mix := func(x, y float64) float64 {
		return (x*a.Color.A + (y*b.Color.A-x*a.Color.A)*u) / alpha
	}
	return RGBA{
		R: mix(a.Color.R, b.Color.R),
		G: mix(a.Color.G, b.Color.G),
		B: mix(a.Color.B, b.Color.B),
		A: alpha,
	}
}

// validStops reports whether the stop list can be used for painting: all
// values finite and offsets non-decreasing.
func validStops(stops []Stop) bool {
	for i, s := range stops {
		if !isFinite(s.Offset) || !s.Color.finite() {
			return false
		}
		if i > 0 && s.Offset < stops[i-1].Offset {
			return false
		}
	}
	return true
}

func clamp01(x float64) float64 {
	if !(x > 0) {
		return 0
	}
	return min(x, 1)
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
