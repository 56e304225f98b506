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

package effects

import (
	"seehuhn.de/go/winerender/hsv"
	"seehuhn.de/go/winerender/surface"
)

// AcidityColor is the greenish colour which acidity blends into the core.
var AcidityColor = hsv.Color{H: 85, S: 0.5, V: 0.7}

// Acidity tints the core of the disc towards [AcidityColor].  The weight
// comes from the wine type, see [wine.Type.Weights].  Nothing is drawn if
// the weighted acidity does not exceed 0.1.
func Acidity(s *surface.Surface, g Geometry, base hsv.Color, acidity, weight float64) (bool, error) {
	eff := clamp01(acidity) * clamp01(weight)
	if eff <= 0.1 {
		return false, nil
	}

	mix := hsv.Blend(base, AcidityColor, eff*0.4)
	center := hsv.Color{H: mix.H, S: mix.S, V: min(mix.V+0.1, 1)}
	middle := hsv.Color{H: mix.H, S: mix.S * 0.9, V: mix.V}

	r := g.CoreRadius * 0.8
	paint := radial(g.CX, g.CY, 0, r,
		stop(0, surface.HSV(center, 1)),
		stop(0.6, surface.HSV(middle, 1)),
		stop(1, surface.HSV(base, 1)),
	)
	s.FillCircle(g.CX, g.CY, r, paint)
	return true, done(s, "acidity")
}

// depthFalloff gives the opacity profile of the depth gradient, as pairs
// of offset and fraction of the peak opacity.
var depthFalloff = [...][2]float64{
	{0, 1},
	{0.1, 0.9},
	{0.2, 0.75},
	{0.35, 0.55},
	{0.5, 0.35},
	{0.65, 0.2},
	{0.8, 0.08},
	{1, 0},
}

// Depth darkens the centre of the disc, to suggest looking into the
// liquid.  The weight comes from the wine type.  Nothing is drawn if the
// weighted depth does not exceed 0.1.
func Depth(s *surface.Surface, g Geometry, depth, weight float64) (bool, error) {
	d := clamp01(depth) * clamp01(weight)
	if d <= 0.1 {
		return false, nil
	}

	reach := g.CoreRadius * (0.8 + d*2.0)
	peak := 0.08 + d*0.35

	stops := make([]surface.Stop, len(depthFalloff))
	for i, f := range depthFalloff {
		stops[i] = stop(f[0], surface.RGBA{A: peak * f[1]})
	}

	s.Save()
	s.SetMode(surface.Overlay)
	s.FillCircle(g.CX, g.CY, reach, radial(g.CX, g.CY, 0, reach, stops...))
	s.Restore()
	return true, done(s, "depth")
}
