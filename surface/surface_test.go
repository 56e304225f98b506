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
	"image"
	"image/color"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

var (
	red   = Solid(RGB255(255, 0, 0, 1))
	white = Solid(RGB255(255, 255, 255, 1))
)

func pixel(t *testing.T, s *Surface, x, y int) color.NRGBA {
	t.Helper()
	c, ok := s.Pixels().At(x, y)
	require.True(t, ok)
	return c
}

func TestPixelBufferBounds(t *testing.T) {
	b := NewPixelBuffer(4, 3)
	require.Equal(t, 4, b.Width())
	require.Equal(t, 3, b.Height())

	require.True(t, b.Set(3, 2, color.NRGBA{R: 1, G: 2, B: 3, A: 4}))
	require.False(t, b.Set(4, 0, color.NRGBA{A: 255}))
	require.False(t, b.Set(0, -1, color.NRGBA{A: 255}))

	c, ok := b.At(3, 2)
	require.True(t, ok)
	require.Equal(t, color.NRGBA{R: 1, G: 2, B: 3, A: 4}, c)

	_, ok = b.At(-1, 0)
	require.False(t, ok)

	require.Len(t, b.Pix(), 4*3*4)
	require.Equal(t, uint8(4), b.Pix()[3*b.Stride()-1])
}

func TestFillRect(t *testing.T) {
	s := New(10, 10)
	s.FillRect(2, 3, 4, 5, red)

	require.Equal(t, color.NRGBA{R: 255, A: 255}, pixel(t, s, 2, 3))
	require.Equal(t, color.NRGBA{R: 255, A: 255}, pixel(t, s, 5, 7))
	require.Equal(t, color.NRGBA{}, pixel(t, s, 6, 7))
	require.Equal(t, color.NRGBA{}, pixel(t, s, 1, 3))
	require.NoError(t, s.Err())
}

func TestBlendIdentities(t *testing.T) {
	base := RGB255(40, 120, 200, 1)
	gray := Solid(RGB255(128, 128, 128, 1))

	cases := []struct {
		mode  Mode
		paint Paint
	}{
		{Multiply, white},
		{Screen, Solid(RGB255(0, 0, 0, 1))},
		{Overlay, gray},
		{SoftLight, gray},
		{Lighter, Solid(RGBA{})},
	}
	for _, c := range cases {
		t.Run(c.mode.String(), func(t *testing.T) {
			s := New(4, 4)
			s.FillRect(0, 0, 4, 4, Solid(base))
			s.SetMode(c.mode)
			s.FillRect(0, 0, 4, 4, c.paint)

			got := pixel(t, s, 1, 1)
			require.InDelta(t, 40, int(got.R), 1)
			require.InDelta(t, 120, int(got.G), 1)
			require.InDelta(t, 200, int(got.B), 1)
			require.Equal(t, uint8(255), got.A)
		})
	}
}

func TestBlendFormulas(t *testing.T) {
	s := New(1, 1)
	s.FillRect(0, 0, 1, 1, Solid(RGB255(128, 51, 204, 1)))
	s.SetMode(Multiply)
	s.FillRect(0, 0, 1, 1, Solid(RGB255(255, 128, 64, 1)))
	got := pixel(t, s, 0, 0)
	require.Equal(t, color.NRGBA{R: 128, G: 26, B: 51, A: 255}, got)

	s = New(1, 1)
	s.FillRect(0, 0, 1, 1, Solid(RGB255(51, 51, 51, 1)))
	s.SetMode(Lighter)
	s.FillRect(0, 0, 1, 1, Solid(RGB255(77, 230, 0, 1)))
	got = pixel(t, s, 0, 0)
	require.Equal(t, color.NRGBA{R: 128, G: 255, B: 51, A: 255}, got)
}

func TestHalfCoverage(t *testing.T) {
	s := New(4, 4)
	s.FillRect(0, 0, 4, 4, white)
	s.FillRect(0, 0, 1.5, 4, Solid(RGB255(0, 0, 0, 1)))

	require.Equal(t, uint8(0), pixel(t, s, 0, 0).R)
	require.InDelta(t, 128, int(pixel(t, s, 1, 0).R), 1)
	require.Equal(t, uint8(255), pixel(t, s, 2, 0).R)
}

func TestGlobalAlpha(t *testing.T) {
	s := New(2, 2)
	s.SetAlpha(0.5)
	s.FillRect(0, 0, 2, 2, red)
	got := pixel(t, s, 0, 0)
	require.Equal(t, uint8(255), got.R)
	require.InDelta(t, 128, int(got.A), 1)

	s.SetAlpha(7)
	require.Equal(t, 1.0, s.Alpha())
}

func TestClipCircle(t *testing.T) {
	s := New(40, 40)
	s.Save()
	s.ClipCircle(20, 20, 10)
	s.FillRect(0, 0, 40, 40, red)
	s.Restore()

	require.Equal(t, uint8(255), pixel(t, s, 20, 20).A)
	require.Equal(t, uint8(0), pixel(t, s, 2, 2).A)
	require.Equal(t, uint8(0), pixel(t, s, 20, 35).A)

	// the clip is gone after Restore
	s.FillRect(0, 0, 40, 40, white)
	require.Equal(t, color.NRGBA{R: 255, G: 255, B: 255, A: 255}, pixel(t, s, 2, 2))
}

func TestClipRing(t *testing.T) {
	s := New(40, 40)
	s.Save()
	s.ClipRing(20, 20, 5, 15)
	s.FillRect(0, 0, 40, 40, red)
	s.Restore()

	require.Equal(t, uint8(0), pixel(t, s, 20, 20).A)
	require.Equal(t, uint8(255), pixel(t, s, 30, 20).A)
	require.Equal(t, uint8(0), pixel(t, s, 37, 20).A)
}

func TestNestedClips(t *testing.T) {
	s := New(40, 40)
	s.ClipCircle(10, 20, 9)
	s.ClipCircle(30, 20, 9)
	s.FillRect(0, 0, 40, 40, red)
	for x := range 40 {
		require.Equal(t, uint8(0), pixel(t, s, x, 20).A)
	}
}

func TestRadialGradient(t *testing.T) {
	g := &RadialGradient{
		Center: vec.Vec2{X: 0, Y: 0},
		R0:     10,
		R1:     20,
		Stops: []Stop{
			{0, RGBA{R: 1, A: 1}},
			{1, RGBA{B: 1, A: 0}},
		},
	}
	require.Equal(t, RGBA{R: 1, A: 1}, g.At(vec.Vec2{X: 3, Y: 4}))
	require.Equal(t, RGBA{B: 1, A: 0}, g.At(vec.Vec2{X: 0, Y: 25}))

	// premultiplied interpolation keeps the hue of the opaque stop
	mid := g.At(vec.Vec2{X: 15})
	require.InDelta(t, 0.5, mid.A, 1e-12)
	require.InDelta(t, 1, mid.R, 1e-12)
	require.InDelta(t, 0, mid.B, 1e-12)

	require.Equal(t, RGBA{}, (&RadialGradient{R0: 5, R1: 5, Stops: g.Stops}).At(vec.Vec2{}))
}

func TestLinearGradient(t *testing.T) {
	g := &LinearGradient{
		P0: vec.Vec2{X: 0, Y: 10},
		P1: vec.Vec2{X: 0, Y: 0},
		Stops: []Stop{
			{0, RGBA{R: 1, A: 1}},
			{0.5, RGBA{G: 1, A: 1}},
			{1, RGBA{B: 1, A: 1}},
		},
	}
	require.Equal(t, RGBA{R: 1, A: 1}, g.At(vec.Vec2{X: 5, Y: 12}))
	require.Equal(t, RGBA{G: 1, A: 1}, g.At(vec.Vec2{X: -3, Y: 5}))
	q := g.At(vec.Vec2{Y: 2.5})
	require.InDelta(t, 0.5, q.G, 1e-12)
	require.InDelta(t, 0.5, q.B, 1e-12)
}

func TestTransform(t *testing.T) {
	s := New(20, 20)
	s.Translate(10, 10)
	s.Rotate(math.Pi / 2)
	// after a quarter turn, user +x points down on screen
	s.FillRect(2, -1, 4, 2, red)

	require.Equal(t, uint8(255), pixel(t, s, 10, 14).A)
	require.Equal(t, uint8(0), pixel(t, s, 14, 10).A)
}

func TestStroke(t *testing.T) {
	s := New(20, 20)
	var p Path
	p.MoveTo(2, 10)
	p.LineTo(18, 10)
	s.StrokePath(&p, StrokeStyle{Width: 4, Cap: graphics.LineCapButt}, red)

	require.Equal(t, uint8(255), pixel(t, s, 10, 8).A)
	require.Equal(t, uint8(255), pixel(t, s, 10, 11).A)
	require.Equal(t, uint8(0), pixel(t, s, 10, 13).A)
	require.Equal(t, uint8(0), pixel(t, s, 1, 10).A)
}

func TestNonFinite(t *testing.T) {
	s := New(10, 10)
	s.FillRect(0, 0, 10, 10, white)
	snap := s.Snapshot()

	s.SetMode(Multiply)
	s.FillCircle(5, 5, math.NaN(), red)
	require.ErrorIs(t, s.Err(), ErrNonFinite)
	s.FillRect(0, 0, math.Inf(1), 3, red)
	s.FillRect(0, 0, 10, 10, Solid(RGBA{R: math.NaN(), A: 1}))
	require.Equal(t, color.NRGBA{R: 255, G: 255, B: 255, A: 255}, pixel(t, s, 5, 5))

	s.Rollback(snap)
	require.NoError(t, s.Err())
	require.Equal(t, Normal, s.Mode())
}

func TestRollback(t *testing.T) {
	s := New(10, 10)
	s.FillRect(0, 0, 10, 10, white)
	snap := s.Snapshot()

	s.Save()
	s.ClipCircle(5, 5, 3)
	s.SetMode(Lighter)
	s.FillRect(0, 0, 10, 10, red)
	s.Rollback(snap)

	require.Equal(t, color.NRGBA{R: 255, G: 255, B: 255, A: 255}, pixel(t, s, 5, 5))
	require.Equal(t, Normal, s.Mode())
	s.FillRect(0, 0, 10, 10, red)
	require.Equal(t, color.NRGBA{R: 255, A: 255}, pixel(t, s, 0, 0))
}

func TestDrawImage(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	src.SetNRGBA(0, 0, color.NRGBA{G: 255, A: 255})
	src.SetNRGBA(1, 1, color.NRGBA{B: 255, A: 128})

	s := New(5, 5)
	s.FillRect(0, 0, 5, 5, white)
	s.DrawImage(src, 3, 3)
	s.DrawImage(src, -1, -1)

	require.Equal(t, color.NRGBA{G: 255, A: 255}, pixel(t, s, 3, 3))
	require.Equal(t, color.NRGBA{R: 127, G: 127, B: 255, A: 255}, pixel(t, s, 4, 4))
	require.Equal(t, color.NRGBA{R: 127, G: 127, B: 255, A: 255}, pixel(t, s, 0, 0))
	require.Equal(t, color.NRGBA{R: 255, G: 255, B: 255, A: 255}, pixel(t, s, 2, 2))
}

func TestTransformMatrix(t *testing.T) {
	s := New(20, 20)
	require.Equal(t, matrix.Identity, s.Transform())

	s.Translate(10, 5)
	s.Scale(2, 3)
	s.Rotate(math.Pi / 2)
	want := matrix.Matrix{0, 3, -2, 0, 10, 5}
	for i, v := range s.Transform() {
		require.InDelta(t, want[i], v, 1e-12, "element %d", i)
	}

	s.SetTransform(matrix.Matrix{1, 0, 0, math.NaN(), 0, 0})
	require.ErrorIs(t, s.Err(), ErrNonFinite)
}

func TestSingularTransform(t *testing.T) {
	s := New(10, 10)
	s.Scale(0, 1)
	s.FillRect(0, 0, 10, 10, &LinearGradient{
		P0:    vec.Vec2{},
		P1:    vec.Vec2{X: 10},
		Stops: []Stop{{0, RGBA{R: 1, A: 1}}, {1, RGBA{B: 1, A: 1}}},
	})
	require.NoError(t, s.Err())
	for _, v := range s.Pixels().Pix() {
		require.Zero(t, v)
	}
}

func TestFillRing(t *testing.T) {
	s := New(40, 40)
	s.FillRing(20, 20, 5, 15, red)

	require.Equal(t, uint8(0), pixel(t, s, 20, 20).A)
	require.Equal(t, uint8(255), pixel(t, s, 30, 20).A)
	require.Equal(t, uint8(0), pixel(t, s, 37, 20).A)

	s.FillRing(20, 20, 0, 3, white)
	require.Equal(t, color.NRGBA{R: 255, G: 255, B: 255, A: 255}, pixel(t, s, 20, 20))

	s.FillRing(20, 20, 10, 8, white)
	require.Equal(t, color.NRGBA{R: 255, A: 255}, pixel(t, s, 29, 20))
	require.NoError(t, s.Err())
}

func TestEmptyPath(t *testing.T) {
	s := New(10, 10)
	var p Path
	require.True(t, p.Empty())

	s.FillPath(&p, red)
	s.StrokePath(&p, StrokeStyle{Width: 3}, red)
	require.NoError(t, s.Err())
	for _, v := range s.Pixels().Pix() {
		require.Zero(t, v)
	}

	p.MoveTo(1, 1)
	require.False(t, p.Empty())
	p.Reset()
	require.True(t, p.Empty())
}

func TestPixelBufferClone(t *testing.T) {
	b := NewPixelBuffer(2, 2)
	b.Set(0, 0, color.NRGBA{R: 9, A: 255})

	c := b.Clone()
	c.Set(0, 0, color.NRGBA{G: 9, A: 255})
	c.Set(1, 1, color.NRGBA{B: 9, A: 255})

	got, _ := b.At(0, 0)
	require.Equal(t, color.NRGBA{R: 9, A: 255}, got)
	got, _ = b.At(1, 1)
	require.Equal(t, color.NRGBA{}, got)
	got, _ = c.At(0, 0)
	require.Equal(t, color.NRGBA{G: 9, A: 255}, got)
}
