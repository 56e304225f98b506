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

// Package effects implements the layers which are painted, one after the
// other, to form the picture of a wine.
//
// Every layer is a plain function which draws onto a [surface.Surface].
// Layers keep no state between calls.  Layers which depend on a threshold
// report whether they painted anything.  A layer returns an error wrapping
// [ErrNonFinite] if one of its computed drawing parameters was not a
// finite number; the surface may then be partially painted.
package effects

import (
	"errors"
	"fmt"
	"math"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/winerender/surface"
)

// ErrNonFinite indicates that a layer computed a NaN or infinite drawing
// parameter.
var ErrNonFinite = errors.New("effects: non-finite parameter")

// Geometry describes the layout of the canvas.
type Geometry struct {
	Width, Height int

	// CX and CY give the centre of the wine disc.
	CX, CY float64

	// MaxRadius is the radius of the wine disc.
	MaxRadius float64

	// CoreRadius is the radius of the inner core used by the acidity and
	// depth layers.
	CoreRadius float64

	// NoteMargin is the gap kept free of note rings at the core and at
	// the rim.
	NoteMargin float64
}

// NewGeometry returns the geometry of a width×height canvas with the disc
// centred on the canvas.
func NewGeometry(width, height int, maxRadius, coreRadius, noteMargin float64) Geometry {
	return Geometry{
		Width:      width,
		Height:     height,
		CX:         float64(width) / 2,
		CY:         float64(height) / 2,
		MaxRadius:  maxRadius,
		CoreRadius: coreRadius,
		NoteMargin: noteMargin,
	}
}

// Center returns the centre of the wine disc.
func (g Geometry) Center() vec.Vec2 {
	return vec.Vec2{X: g.CX, Y: g.CY}
}

// MaxCanvasSize is the largest supported canvas width or height, in pixels.
const MaxCanvasSize = 8192

// Check verifies that the geometry describes a usable canvas.
func (g Geometry) Check() error {
	if g.Width <= 0 || g.Height <= 0 || g.Width > MaxCanvasSize || g.Height > MaxCanvasSize {
		return fmt.Errorf("effects: invalid canvas size %dx%d", g.Width, g.Height)
	}
	if !finite(g.CX, g.CY, g.MaxRadius, g.CoreRadius, g.NoteMargin) {
		return fmt.Errorf("effects: geometry: %w", ErrNonFinite)
	}
	if g.MaxRadius <= 0 || g.CoreRadius < 0 || g.NoteMargin < 0 {
		return fmt.Errorf("effects: invalid radii %g/%g/%g",
			g.MaxRadius, g.CoreRadius, g.NoteMargin)
	}
	return nil
}

// done converts the error state of the surface into the result of a layer.
func done(s *surface.Surface, layer string) error {
	if err := s.Err(); err != nil {
		return fmt.Errorf("%s: %w: %w", layer, ErrNonFinite, err)
	}
	return nil
}

// radial is a shorthand for a concentric gradient.
func radial(cx, cy, r0, r1 float64, stops ...surface.Stop) *surface.RadialGradient {
	return &surface.RadialGradient{
		Center: vec.Vec2{X: cx, Y: cy},
		R0:     r0,
		R1:     r1,
		Stops:  stops,
	}
}

func stop(offset float64, c surface.RGBA) surface.Stop {
	return surface.Stop{Offset: offset, Color: c}
}

func finite(values ...float64) bool {
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
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

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
