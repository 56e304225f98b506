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

	"seehuhn.de/go/winerender/rng"
	"seehuhn.de/go/winerender/surface"
	"seehuhn.de/go/winerender/wine"
)

// sparkleModes are the blend modes from which each mineral sparkle picks
// one at random.
var sparkleModes = [...]surface.Mode{
	surface.Screen,
	surface.Overlay,
	surface.SoftLight,
	surface.Lighter,
}

// MineralSeed derives the seed for the i-th minerality note.
func MineralSeed(g Geometry, note wine.MineralNote, i int) uint32 {
	var material uint32
	for _, c := range []byte(note.Material) {
		material = material*31 + uint32(c)
	}
	return rng.Seed(
		rng.Scaled(g.CX, 1000),
		rng.Scaled(g.CY, 1000),
		rng.Scaled(g.MaxRadius, 1000),
		material,
		rng.Scaled(clamp01(note.Intensity), 1_000_000),
		rng.Scaled(clamp01(note.Placement), 1_000_000),
		uint32(i),
	)
}

// MineralCount returns the number of sparkles drawn for a note.
func MineralCount(note wine.MineralNote) int {
	if _, _, _, ok := note.Material.RGB(); !ok {
		return 0
	}
	return int(math.Floor(clamp01(note.Intensity) * 500))
}

// Minerality scatters sparkles in the colour of the mineral material over
// the disc.  The sparkles concentrate around the radius given by the
// placement of the note.  Unknown materials and "none" draw nothing.  The
// number of sparkles drawn is returned.
func Minerality(s *surface.Surface, g Geometry, note wine.MineralNote, seed uint32) (int, error) {
	r, gr, b, ok := note.Material.RGB()
	if !ok {
		return 0, nil
	}
	base := surface.RGB255(r, gr, b, 1)
	placement := clamp01(note.Placement)
	n := MineralCount(note)

	rnd := rng.New(seed)
	for range n {
		angle := rnd.Range(0, 2*math.Pi)
		offset := rnd.Range(-0.5, 0.5)
		radius := placement*g.MaxRadius + offset*g.MaxRadius/3
		radius = max(0, min(g.MaxRadius, radius))
		x := g.CX + math.Sin(angle)*radius
		y := g.CY + math.Cos(angle)*radius

		size := rnd.Range(1, 2.5)
		rotation := rnd.Range(0, 2*math.Pi)
		sparkle(s, rnd, x, y, size, rotation, base)
	}
	return n, done(s, "minerality")
}

// sparkle draws a single glyph: a soft glow, a four-pointed flare with
// optional diagonal flares, and a bright core.
func sparkle(s *surface.Surface, rnd *rng.Rand, x, y, size, rotation float64, base surface.RGBA) {
	opacity := rnd.Range(0.5, 1)
	c := base.Shift(int(math.Floor(rnd.Range(-15, 15))))

	s.Save()
	defer s.Restore()
	s.SetMode(sparkleModes[rnd.Intn(len(sparkleModes))])
	s.Translate(x, y)
	s.Rotate(rotation)

	s.FillRect(-size*2, -size*2, size*4, size*4, radial(0, 0, 0, size*1.5,
		stop(0, c.WithAlpha(0.15*opacity)),
		stop(0.5, c.WithAlpha(0.05*opacity)),
		stop(1, c.WithAlpha(0)),
	))

	length := size * rnd.Range(0.5, 1.5)
	width := size * rnd.Range(0.08, 0.14)
	flare := surface.Solid(c.Shift(60).WithAlpha(0.4 * opacity))
	s.FillPath(diamond(width, length), flare)
	hLength := length * rnd.Range(0.8, 1.2)
	s.FillPath(diamond(hLength, width), flare)

	if rnd.Float64() > 0.3 {
		dLength := length * rnd.Range(0.3, 0.5)
		dWidth := width * 0.6
		diag := surface.Solid(c.Shift(40).WithAlpha(0.25 * opacity))
		s.Save()
		s.Rotate(math.Pi / 4)
		s.FillPath(diamond(dWidth, dLength), diag)
		s.FillPath(diamond(dLength, dWidth), diag)
		s.Restore()
	}

	core := size * rnd.Range(0.3, 0.6)
	s.FillCircle(0, 0, core, radial(0, 0, 0, core,
		stop(0, white.WithAlpha(0.7*opacity)),
		stop(0.5, c.Shift(80).WithAlpha(0.3*opacity)),
		stop(1, c.WithAlpha(0)),
	))
}

// diamond returns the rhombus with half-diagonals rx and ry around the
// origin.
func diamond(rx, ry float64) *surface.Path {
	p := &surface.Path{}
	p.MoveTo(0, -ry)
	p.LineTo(rx, 0)
	p.LineTo(0, ry)
	p.LineTo(-rx, 0)
	p.Close()
	return p
}
