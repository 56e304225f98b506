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
	"seehuhn.de/go/winerender/wine"
)

// Background fills the canvas with a very light tint of the base colour.
func Background(s *surface.Surface, g Geometry, base hsv.Color) error {
	tint := hsv.Color{H: base.H, S: base.S * 0.08, V: 0.98}
	s.FillRect(0, 0, float64(g.Width), float64(g.Height), surface.Solid(surface.HSV(tint, 1)))
	return done(s, "background")
}

// Base paints the wine disc: a lit sphere in the base colour which fades
// out at the rim.
func Base(s *surface.Surface, g Geometry, base hsv.Color) error {
	lighter := hsv.Color{H: base.H, S: base.S * 0.9, V: min(base.V+0.05, 1)}
	c := surface.HSV(base, 1)

	paint := radial(g.CX, g.CY, 0, g.MaxRadius,
		stop(0, surface.HSV(lighter, 0.9)),
		stop(0.3, c),
		stop(0.6, c),
		stop(0.85, c.WithAlpha(0.95)),
		stop(1, c.WithAlpha(0)),
	)
	s.FillCircle(g.CX, g.CY, g.MaxRadius, paint)
	return done(s, "base")
}

// Notes draws one faint ring per tasting note.  The annulus between the
// core and the rim, less NoteMargin on either side, is divided into equal
// bands, and the notes are placed from the outside in.  The glow is
// clipped to the disc.
func Notes(s *surface.Surface, g Geometry, notes []wine.Note) (bool, error) {
	if len(notes) == 0 {
		return false, nil
	}

	outer := g.MaxRadius - g.NoteMargin
	inner := g.CoreRadius + g.NoteMargin
	if outer <= inner {
		return false, nil
	}
	band := (outer - inner) / float64(len(notes))
	glow := band * 0.8

	s.Save()
	defer s.Restore()
	s.ClipCircle(g.CX, g.CY, g.MaxRadius)
	for i, note := range notes {
		ring := outer - band*(float64(i)+0.5)
		peak := 0.05 + note.Intensity*0.2
		c := surface.HSV(note.Color, 1)

		r0, r1 := max(0, ring-glow), ring+glow
		paint := radial(g.CX, g.CY, r0, r1,
			stop(0, c.WithAlpha(0)),
			stop(0.3, c.WithAlpha(peak*0.3)),
			stop(0.45, c.WithAlpha(peak*0.7)),
			stop(0.5, c.WithAlpha(peak)),
			stop(0.55, c.WithAlpha(peak*0.7)),
			stop(0.7, c.WithAlpha(peak*0.3)),
			stop(1, c.WithAlpha(0)),
		)
		s.FillRing(g.CX, g.CY, r0, r1, paint)
	}
	return true, done(s, "notes")
}
