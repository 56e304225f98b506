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
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/disintegration/imaging"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/winerender/surface"
	"seehuhn.de/go/winerender/wine"
)

var sugarPink = surface.RGB255(255, 105, 180, 1)

// SugarGlow paints a pink glow below the centre of the disc.  The residual
// sugar is given in g/L; the glow reaches full strength at 100 g/L and is
// omitted up to 5 g/L.  The glow is clipped to the disc.
func SugarGlow(s *surface.Surface, g Geometry, sugar float64) (bool, error) {
	level := clamp01(sugar / 100)
	if level <= 0.05 {
		return false, nil
	}

	cy := g.CY + g.MaxRadius*0.3
	paint := radial(g.CX, cy, 0, g.MaxRadius*level*0.8,
		stop(0, sugarPink.WithAlpha(0.3*level)),
		stop(0.5, sugarPink.WithAlpha(0.15*level)),
		stop(1, sugarPink.WithAlpha(0)),
	)
	s.Save()
	s.ClipCircle(g.CX, g.CY, g.MaxRadius)
	s.FillRect(0, 0, float64(g.Width), float64(g.Height), paint)
	s.Restore()
	return true, done(s, "sugar glow")
}

// SugarBar draws a vertical bar along the right edge of the canvas.  The
// filled part grows logarithmically with the residual sugar, up to
// [wine.MaxResidualSugar] g/L, and the value is written along the bar.
// The bar is always drawn.
func SugarBar(s *surface.Surface, g Geometry, sugar float64) (bool, error) {
	w, h := float64(g.Width), float64(g.Height)
	barWidth := math.Round(w * 0.1)
	barX := w - barWidth

	s.FillRect(barX, 0, barWidth, h, surface.Solid{A: 0.15})

	amount := sugar
	if !(amount > 0) {
		amount = 0
	}
	amount = min(amount, wine.MaxResidualSugar)
	fill := h * math.Log1p(amount) / math.Log(wine.MaxResidualSugar+1)
	if fill > 0 {
		top := h - fill
		paint := &surface.LinearGradient{
			P0: vec.Vec2{X: barX, Y: h},
			P1: vec.Vec2{X: barX, Y: top},
			Stops: []surface.Stop{
				stop(0, sugarPink.WithAlpha(0.9)),
				stop(0.5, sugarPink.WithAlpha(0.7)),
				stop(1, surface.RGB255(255, 140, 200, 0.5)),
			},
		}
		s.FillRect(barX, top, barWidth, fill, paint)
	}

	var border surface.Path
	border.Rect(barX, 0, barWidth, h)
	s.StrokePath(&border, surface.StrokeStyle{Width: 1, Join: graphics.LineJoinMiter},
		surface.Solid(sugarPink.WithAlpha(0.4)))

	label := sugarLabel(fmt.Sprintf("%d RZ", int(math.Round(amount))))
	lb := label.Bounds()
	x := int(math.Round(barX+barWidth/2)) - lb.Dx()/2
	y := g.Height - 8 - lb.Dy()
	s.DrawImage(label, x, y)

	return true, done(s, "sugar bar")
}

// sugarLabel renders text in white and turns it by 90° so that it reads
// from bottom to top.
func sugarLabel(text string) *image.NRGBA {
	face := basicfont.Face7x13
	width := font.MeasureString(face, text).Ceil()
	img := image.NewNRGBA(image.Rect(0, 0, width, face.Height))
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.NRGBA{R: 255, G: 255, B: 255, A: 230}),
		Face: face,
		Dot:  fixed.P(0, face.Ascent),
	}
	d.DrawString(text)
	return imaging.Rotate90(img)
}
