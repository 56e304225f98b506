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

// Package surface implements a small 2D drawing surface: filled and
// stroked shapes, gradient paints, clipping, transformations and a set of
// blend modes, all painting into a [PixelBuffer].
//
// The drawing model follows the HTML canvas.  Drawing state (blend mode,
// global opacity, transformation and clip region) is kept on a stack
// managed with [Surface.Save] and [Surface.Restore].
//
// Drawing operations never fail.  If an operation receives a NaN or
// infinite value it is dropped and the surface remembers the condition,
// which can be queried with [Surface.Err].
package surface

import (
	"errors"
	"image"
	"image/color"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/winerender/raster"
)

// ErrNonFinite is reported by [Surface.Err] after a drawing operation was
// dropped because one of its parameters was NaN or infinite.
var ErrNonFinite = errors.New("surface: non-finite drawing parameter")

// StrokeStyle describes how paths are stroked.
type StrokeStyle struct {
	Width float64
	Cap   graphics.LineCapStyle
	Join  graphics.LineJoinStyle
}

// state is the part of the surface saved by Save.
type state struct {
	mode  Mode
	alpha float64
	ctm   matrix.Matrix
	clip  *mask // nil means no clipping
}

// mask holds per-pixel clip coverage, row major.  Masks are never
// modified after creation, so that saved states can share them.
type mask struct {
	cov []float32
}

// Surface is a drawing surface backed by a pixel buffer.  A Surface is not
// safe for concurrent use.
type Surface struct {
	buf   *PixelBuffer
	ras   *raster.Rasterizer
	st    state
	stack []state
	err   error
	tmp   Path
}

// New allocates a transparent surface of the given size.
func New(width, height int) *Surface {
	buf := NewPixelBuffer(width, height)
	clip := rect.Rect{URx: float64(buf.Width()), URy: float64(buf.Height())}
	return &Surface{
		buf: buf,
		ras: raster.NewRasterizer(clip),
		st:  state{mode: Normal, alpha: 1, ctm: matrix.Identity},
	}
}

// Width returns the width of the surface in pixels.
func (s *Surface) Width() int { return s.buf.Width() }

// Height returns the height of the surface in pixels.
func (s *Surface) Height() int { return s.buf.Height() }

// Pixels gives direct access to the pixel data.
func (s *Surface) Pixels() *PixelBuffer { return s.buf }

// Image returns the current contents as an image.  The pixel data is
// shared with the surface.
func (s *Surface) Image() *image.NRGBA { return s.buf.Image() }

// Err returns [ErrNonFinite] if a drawing operation has been dropped since
// the surface was created or last rolled back.
func (s *Surface) Err() error { return s.err }

func (s *Surface) fail() {
	if s.err == nil {
		s.err = ErrNonFinite
	}
}

// Save pushes the current drawing state.
func (s *Surface) Save() {
	s.stack = append(s.stack, s.st)
}

// Restore pops the drawing state saved by the matching call to Save.
// Without a saved state, Restore does nothing.
func (s *Surface) Restore() {
	n := len(s.stack)
	if n == 0 {
		return
	}
	s.st = s.stack[n-1]
	s.stack = s.stack[:n-1]
}

// SetMode sets the blend mode for subsequent drawing.
func (s *Surface) SetMode(m Mode) { s.st.mode = m }

// Mode returns the current blend mode.
func (s *Surface) Mode() Mode { return s.st.mode }

// SetAlpha sets the global opacity, clamped to [0, 1].
func (s *Surface) SetAlpha(a float64) {
	if !isFinite(a) {
		s.fail()
		return
	}
	s.st.alpha = clamp01(a)
}

// Alpha returns the global opacity.
func (s *Surface) Alpha() float64 { return s.st.alpha }

// Transform returns the current transformation from user space to pixel
// coordinates.
func (s *Surface) Transform() matrix.Matrix { return s.st.ctm }

// SetTransform replaces the current transformation.
func (s *Surface) SetTransform(m matrix.Matrix) {
	for _, v := range m {
		if !isFinite(v) {
			s.fail()
			return
		}
	}
	s.st.ctm = m
}

// Translate moves the user space origin to (dx, dy).
func (s *Surface) Translate(dx, dy float64) {
	s.SetTransform(matrix.Translate(dx, dy).Mul(s.st.ctm))
}

// Rotate turns user space by angle radians, clockwise on screen.
func (s *Surface) Rotate(angle float64) {
	s.SetTransform(matrix.Rotate(angle).Mul(s.st.ctm))
}

// Scale scales user space by sx horizontally and sy vertically.
func (s *Surface) Scale(sx, sy float64) {
	s.SetTransform(matrix.Scale(sx, sy).Mul(s.st.ctm))
}

// ClipCircle restricts drawing to the disc of radius r around (cx, cy),
// intersected with the current clip region.
func (s *Surface) ClipCircle(cx, cy, r float64) {
	s.tmp.Reset()
	if r > 0 {
		s.tmp.Circle(cx, cy, r, false)
	}
	s.clipTo(&s.tmp, cx, cy, r)
}

// ClipRing restricts drawing to the annulus between radii r0 < r1 around
// (cx, cy), intersected with the current clip region.
func (s *Surface) ClipRing(cx, cy, r0, r1 float64) {
	s.tmp.Reset()
	if r1 > 0 {
		s.tmp.Circle(cx, cy, r1, false)
		if r0 > 0 {
			s.tmp.Circle(cx, cy, r0, true)
		}
	}
	s.clipTo(&s.tmp, cx, cy, r0, r1)
}

func (s *Surface) clipTo(p *Path, params ...float64) {
	for _, v := range params {
		if !isFinite(v) {
			s.fail()
			return
		}
	}

	w, h := s.Width(), s.Height()
	m := &mask{cov: make([]float32, w*h)}
	s.ras.Reset(s.ras.Clip)
	s.ras.CTM = s.st.ctm
	s.ras.FillNonZero(p.All(), func(y, xMin int, coverage []float32) {
		copy(m.cov[y*w+xMin:], coverage)
	})
	if old := s.st.clip; old != nil {
		for i := range m.cov {
			m.cov[i] *= old.cov[i]
		}
	}
	s.st.clip = m
}

// FillRect fills the rectangle with corner (x, y), width w and height h.
func (s *Surface) FillRect(x, y, w, h float64, paint Paint) {
	s.tmp.Reset()
	s.tmp.Rect(x, y, w, h)
	s.FillPath(&s.tmp, paint)
}

// FillCircle fills the disc of radius r around (cx, cy).
func (s *Surface) FillCircle(cx, cy, r float64, paint Paint) {
	if !isFinite(r) {
		s.fail()
		return
	}
	if r <= 0 {
		return
	}
	s.tmp.Reset()
	s.tmp.Circle(cx, cy, r, false)
	s.FillPath(&s.tmp, paint)
}

// FillRing fills the annulus between radii r0 and r1 around (cx, cy).
func (s *Surface) FillRing(cx, cy, r0, r1 float64, paint Paint) {
	if !isFinite(r0) || !isFinite(r1) {
		s.fail()
		return
	}
	if r1 <= 0 || r1 <= r0 {
		return
	}
	s.tmp.Reset()
	s.tmp.Circle(cx, cy, r1, false)
	if r0 > 0 {
		s.tmp.Circle(cx, cy, r0, true)
	}
	s.FillPath(&s.tmp, paint)
}

// FillPath fills p with the nonzero winding rule.
func (s *Surface) FillPath(p *Path, paint Paint) {
	if !p.finite() || !paintOK(paint) {
		s.fail()
		return
	}
	if p.Empty() {
		return
	}
	s.ras.Reset(s.ras.Clip)
	s.ras.CTM = s.st.ctm
	s.ras.FillNonZero(p.All(), s.painter(paint))
}

// StrokePath strokes the outline of p.
func (s *Surface) StrokePath(p *Path, style StrokeStyle, paint Paint) {
	if !p.finite() || !paintOK(paint) || !isFinite(style.Width) {
		s.fail()
		return
	}
	if style.Width <= 0 || p.Empty() {
		return
	}
	s.ras.Reset(s.ras.Clip)
	s.ras.CTM = s.st.ctm
	s.ras.Width = style.Width
	s.ras.Cap = style.Cap
	s.ras.Join = style.Join
	s.ras.Stroke(p.All(), s.painter(paint))
}

// DrawImage composites img with its top-left corner at pixel (x, y).  The
// current transformation is not applied; blend mode, opacity and clip are.
func (s *Surface) DrawImage(img image.Image, x, y int) {
	b := img.Bounds()
	w := s.Width()
	pix, stride := s.buf.Pix(), s.buf.Stride()
	for j := b.Min.Y; j < b.Max.Y; j++ {
		dy := y + j - b.Min.Y
		for i := b.Min.X; i < b.Max.X; i++ {
			dx := x + i - b.Min.X
			if !s.buf.In(dx, dy) {
				continue
			}
			c := color.NRGBAModel.Convert(img.At(i, j)).(color.NRGBA)
			a := s.st.alpha * float64(c.A) / 255
			if s.st.clip != nil {
				a *= float64(s.st.clip.cov[dy*w+dx])
			}
			if a <= 0 {
				continue
			}
			k := dy*stride + 4*dx
			s.st.mode.composite(pix[k:k+4:k+4], RGB255(c.R, c.G, c.B, 1), a)
		}
	}
}

// painter returns the callback compositing paint into the pixel buffer,
// weighted by the coverage reported by the rasterizer.
func (s *Surface) painter(paint Paint) raster.EmitFunc {
	st := s.st
	if st.ctm[0]*st.ctm[3]-st.ctm[1]*st.ctm[2] == 0 {
		// a singular transformation leaves no area to paint
		return func(int, int, []float32) {}
	}
	inv := st.ctm.Inv()
	solid, isSolid := paint.(Solid)
	w := s.Width()
	pix, stride := s.buf.Pix(), s.buf.Stride()

	return func(y, xMin int, coverage []float32) {
		for i, c := range coverage {
			x := xMin + i
			a := float64(c) * st.alpha
			if st.clip != nil {
				a *= float64(st.clip.cov[y*w+x])
			}
			if a <= 0 {
				continue
			}

			var col RGBA
			if isSolid {
				col = RGBA(solid)
			} else {
				ux, uy := inv.Apply(float64(x)+0.5, float64(y)+0.5)
				col = paint.At(vec.Vec2{X: ux, Y: uy})
			}
			if !(col.A > 0) {
				continue
			}
			k := y*stride + 4*x
			st.mode.composite(pix[k:k+4:k+4], col, a*min(col.A, 1))
		}
	}
}

// Snapshot records the pixels and drawing state of a surface.
type Snapshot struct {
	buf   *PixelBuffer
	st    state
	depth int
}

// Snapshot returns a copy of the current pixels and drawing state.
func (s *Surface) Snapshot() *Snapshot {
	return &Snapshot{
		buf:   s.buf.Clone(),
		st:    s.st,
		depth: len(s.stack),
	}
}

// Rollback restores the pixels and drawing state recorded in snap, and
// clears the error state.
func (s *Surface) Rollback(snap *Snapshot) {
	copy(s.buf.Pix(), snap.buf.Pix())
	s.st = snap.st
	if len(s.stack) > snap.depth {
		s.stack = s.stack[:snap.depth]
	}
	s.err = nil
}

// paintOK reports whether the paint can be evaluated without producing
// non-finite colours.
func paintOK(p Paint) bool {
	switch p := p.(type) {
	case Solid:
		return RGBA(p).finite()
	case *RadialGradient:
		return isFinite(p.Center.X) && isFinite(p.Center.Y) &&
			isFinite(p.R0) && isFinite(p.R1) && validStops(p.Stops)
	case *LinearGradient:
		return isFinite(p.P0.X) && isFinite(p.P0.Y) &&
			isFinite(p.P1.X) && isFinite(p.P1.Y) && validStops(p.Stops)
	default:
		return p != nil
	}
}
