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

	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/winerender/rng"
	"seehuhn.de/go/winerender/surface"
)

// BodyTier classifies the body of a wine.
type BodyTier int

// The body tiers, from light to opulent.
const (
	Silky BodyTier = iota
	Velvet
	Creamy
	Opulent
)

func (t BodyTier) String() string {
	switch t {
	case Silky:
		return "silky"
	case Velvet:
		return "velvet"
	case Creamy:
		return "creamy"
	case Opulent:
		return "opulent"
	default:
		return "unknown"
	}
}

// TierOf returns the texture tier for the given body value.
func TierOf(body float64) BodyTier {
	switch {
	case body < 0.25:
		return Silky
	case body < 0.5:
		return Velvet
	case body < 0.75:
		return Creamy
	default:
		return Opulent
	}
}

var (
	white = surface.RGBA{R: 1, G: 1, B: 1}
	black = surface.RGBA{}
)

// BodySeed derives the seed of the body layer from the geometry and the
// body value.
func BodySeed(g Geometry, body float64) uint32 {
	return rng.Seed(
		rng.Scaled(g.CX, 1000),
		rng.Scaled(g.CY, 1000),
		rng.Scaled(g.MaxRadius, 1000),
		rng.Scaled(clamp01(body), 1_000_000),
	)
}

// Body intensifies the colours of the disc and overlays texture and swirl
// patterns whose strength grows with the body of the wine.  Nothing is
// drawn for body values up to 0.05.
func Body(s *surface.Surface, g Geometry, body float64, seed uint32) (bool, error) {
	body = clamp01(body)
	if body <= 0.05 {
		return false, nil
	}

	boostColors(s.Pixels(), g, body)

	s.Save()
	s.ClipCircle(g.CX, g.CY, g.MaxRadius)
	switch TierOf(body) {
	case Silky:
		silkyTexture(s, g, body)
	case Velvet:
		silkyTexture(s, g, body)
		velvetTexture(s, g, body)
	case Creamy:
		velvetTexture(s, g, body)
		creamyTexture(s, g, body, rng.New(seed))
	case Opulent:
		velvetTexture(s, g, body)
		creamyTexture(s, g, body, rng.New(seed))
		opulentTexture(s, g, body)
	}
	swirls(s, g, body)
	s.Restore()

	return true, done(s, "body")
}

// boostColors pushes every pixel inside the disc away from grey and
// darkens it slightly.  A pixel belongs to the disc if its top-left
// corner does.
func boostColors(buf *surface.PixelBuffer, g Geometry, body float64) {
	sat := 1 + body*0.25
	dark := 1 - body*0.15
	r2 := g.MaxRadius * g.MaxRadius

	pix, stride := buf.Pix(), buf.Stride()
	for y := range buf.Height() {
		dy := float64(y) - g.CY
		for x := range buf.Width() {
			dx := float64(x) - g.CX
			if dx*dx+dy*dy > r2 {
				continue
			}
			p := pix[y*stride+4*x : y*stride+4*x+3]
			gray := (float64(p[0]) + float64(p[1]) + float64(p[2])) / 3
			for i, c := range p {
				v := (gray + (float64(c)-gray)*sat) * dark
				p[i] = uint8(max(0, min(255, v)))
			}
		}
	}
}

// silkyTexture draws fine wavy lines radiating from the centre.
func silkyTexture(s *surface.Surface, g Geometry, body float64) {
	opacity := 0.03 + body*0.04
	n := 8 + int(body*6)
	amplitude := 5 + body*10
	style := surface.StrokeStyle{Width: 1 + body*2, Join: graphics.LineJoinMiter}
	paint := surface.Solid(white.WithAlpha(opacity))

	s.Save()
	s.SetMode(surface.SoftLight)
	var p surface.Path
	for i := range n {
		angle := float64(i) / float64(n) * 2 * math.Pi
		p.Reset()
		for k := 0; k <= 50; k++ {
			t := float64(k) / 50
			r := t*g.MaxRadius*0.95 + math.Sin(t*math.Pi*6+angle*2)*amplitude*t
			x := g.CX + math.Cos(angle+t*0.3)*r
			y := g.CY + math.Sin(angle+t*0.3)*r
			if k == 0 {
				p.MoveTo(x, y)
			} else {
				p.LineTo(x, y)
			}
		}
		s.StrokePath(&p, style, paint)
	}
	s.Restore()
}

// velvetTexture draws soft concentric bands, alternately light and dark.
func velvetTexture(s *surface.Surface, g Geometry, body float64) {
	opacity := 0.04 + (body-0.25)*0.08

	s.Save()
	s.SetMode(surface.SoftLight)
	for layer := range 3 {
		r := g.MaxRadius * (0.4 + float64(layer)*0.25)
		var paint surface.Paint
		if layer%2 == 0 {
			paint = radial(g.CX, g.CY, r*0.3, r,
				stop(0, white.WithAlpha(0)),
				stop(0.3, white.WithAlpha(opacity*0.5)),
				stop(0.6, white.WithAlpha(opacity)),
				stop(1, white.WithAlpha(0)),
			)
		} else {
			paint = radial(g.CX, g.CY, r*0.3, r,
				stop(0, black.WithAlpha(0)),
				stop(0.3, black.WithAlpha(opacity*0.3)),
				stop(0.6, black.WithAlpha(opacity*0.5)),
				stop(1, black.WithAlpha(0)),
			)
		}
		s.FillCircle(g.CX, g.CY, r, paint)
	}
	s.Restore()
}

// creamyTexture scatters soft cream coloured blobs around the centre.
func creamyTexture(s *surface.Surface, g Geometry, body float64, rnd *rng.Rand) {
	opacity := 0.05 + (body-0.5)*0.1
	n := 12 + int(body*8)
	r := g.MaxRadius * (0.15 + body*0.15)

	s.Save()
	s.SetMode(surface.SoftLight)
	for i := range n {
		angle := float64(i)/float64(n)*2*math.Pi + float64(i%2)*0.2
		dist := g.MaxRadius * rnd.Range(0.2, 0.8)
		x := g.CX + math.Cos(angle)*dist
		y := g.CY + math.Sin(angle)*dist
		s.FillCircle(x, y, r, radial(x, y, 0, r,
			stop(0, surface.RGB255(255, 250, 240, opacity)),
			stop(0.4, surface.RGB255(255, 248, 235, opacity*0.6)),
			stop(1, surface.RGB255(255, 245, 230, 0)),
		))
	}
	s.Restore()
}

// opulentTexture adds a dense brown core and a structured outer ring.
func opulentTexture(s *surface.Surface, g Geometry, body float64) {
	opacity := 0.06 + (body-0.75)*0.12

	s.Save()
	s.SetMode(surface.Overlay)
	core := g.MaxRadius * 0.6
	s.FillCircle(g.CX, g.CY, core, radial(g.CX, g.CY, 0, core,
		stop(0, surface.RGB255(80, 40, 20, opacity*1.5)),
		stop(0.3, surface.RGB255(100, 50, 30, opacity)),
		stop(0.6, surface.RGB255(60, 30, 15, opacity*0.5)),
		stop(1, surface.RGB255(40, 20, 10, 0)),
	))
	s.FillCircle(g.CX, g.CY, g.MaxRadius, radial(g.CX, g.CY, g.MaxRadius*0.5, g.MaxRadius,
		stop(0, black.WithAlpha(0)),
		stop(0.3, surface.RGB255(60, 30, 20, opacity*0.8)),
		stop(0.6, surface.RGB255(40, 20, 10, opacity*0.4)),
		stop(1, black.WithAlpha(0)),
	))
	s.Restore()
}

// swirls draws spiral strokes from the centre outwards, alternately light
// and dark, to suggest movement in the liquid.
func swirls(s *surface.Surface, g Geometry, body float64) {
	n := 3 + int(math.Round(body*3))
	opacity := 0.03 + body*0.07
	rotations := 0.8 + body*0.7
	style := surface.StrokeStyle{
		Width: 27 + body*35,
		Cap:   graphics.LineCapRound,
		Join:  graphics.LineJoinRound,
	}

	s.Save()
	s.SetMode(surface.SoftLight)
	var p surface.Path
	for i := range n {
		start := float64(i) / float64(n) * 2 * math.Pi
		p.Reset()
		for k := 0; k <= 100; k++ {
			t := float64(k) / 100
			angle := start + t*2*math.Pi*rotations
			r := t * g.MaxRadius * 0.9
			x := g.CX + math.Cos(angle)*r
			y := g.CY + math.Sin(angle)*r
			if k == 0 {
				p.MoveTo(x, y)
			} else {
				p.LineTo(x, y)
			}
		}

		c := white
		if i%2 == 1 {
			c = black
		}
		paint := radial(g.CX, g.CY, 0, g.MaxRadius,
			stop(0, c.WithAlpha(0)),
			stop(0.3, c.WithAlpha(opacity)),
			stop(0.7, c.WithAlpha(opacity*0.5)),
			stop(1, c.WithAlpha(0)),
		)
		s.StrokePath(&p, style, paint)
	}
	s.Restore()
}
