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
	"math"

	"seehuhn.de/go/winerender/hsv"
	"seehuhn.de/go/winerender/surface"
	"seehuhn.de/go/winerender/wine"
)

// BarrelColor returns the vignette colour for a barrel material.  The last
// result is false if the material produces no vignette.
func BarrelColor(material wine.Barrel, intensity float64) (hsv.Color, bool) {
	i := clamp01(intensity)
	oak := hsv.Color{H: 20, S: 0.35 + i*0.65, V: 0.45 - i*0.25}
	steel := hsv.Color{H: 210, S: 0.25 + i*0.17, V: 0.70 - i*0.15}
	switch material {
	case wine.Oak:
		return oak, true
	case wine.Stainless:
		return steel, true
	case wine.Both:
		return hsv.Blend(oak, steel, 0.5), true
	default:
		return hsv.Color{}, false
	}
}

// Barrel tints the corners of the canvas in the colour of the barrel
// material.  The vignette is applied twice, once multiplied and once as
// soft light.
func Barrel(s *surface.Surface, g Geometry, material wine.Barrel, intensity float64) (bool, error) {
	col, ok := BarrelColor(material, intensity)
	if !ok {
		return false, nil
	}
	i := clamp01(intensity)
	c := surface.HSV(col, 1)

	maxDist := 1.0
	w, h := float64(g.Width-1), float64(g.Height-1)
	for _, corner := range [][2]float64{{0, 0}, {w, 0}, {0, h}, {w, h}} {
		maxDist = max(maxDist, math.Hypot(corner[0]-g.CX, corner[1]-g.CY))
	}

	edge := 0.35 + i*0.55
	vignette := radial(g.CX, g.CY, maxDist*(0.45-i*0.15), maxDist*1.02,
		stop(0, c.WithAlpha(0)),
		stop(0.45, c.WithAlpha(0)),
		stop(0.65, c.WithAlpha(edge*0.52)),
		stop(0.9, c.WithAlpha(edge*0.82)),
		stop(1, c.WithAlpha(edge)),
	)
	cw, ch := float64(g.Width), float64(g.Height)

	s.Save()
	s.SetMode(surface.Multiply)
	s.FillRect(0, 0, cw, ch, vignette)
	s.Restore()

	s.Save()
	s.SetMode(surface.SoftLight)
	s.SetAlpha(0.35 + i*0.25)
	s.FillRect(0, 0, cw, ch, vignette)
	s.Restore()

	return true, done(s, "barrel")
}
