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

package raster

import (
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// segment is a flattened piece of a stroked path, in user space.
type segment struct {
	A, B vec.Vec2 // endpoints
	T    vec.Vec2 // unit tangent A→B
	N    vec.Vec2 // unit normal, T rotated by +90°
}

// Stroke renders the outline of p using Width, Cap, Join and MiterLimit.
//
// The outline is assembled from simple pieces: one quadrilateral per
// flattened segment, one join piece per corner and one cap piece per open
// end.  All pieces are given the same orientation and filled together with
// the nonzero rule, so that overlaps never cancel out.
func (r *Rasterizer) Stroke(p path.Path, emit EmitFunc) {
	r.flatten(p)
	if len(r.segOffsets) == 0 && len(r.dots) == 0 {
		return
	}

	d := r.Width / 2
	r.beginEdges()

	if r.Cap == graphics.LineCapRound {
		for _, pt := range r.dots {
			r.addDisc(pt, d)
		}
	}

	for i := range r.segOffsets {
		segs := r.subpath(i)
		for j := range segs {
			s := &segs[j]
			r.addPolygon(
				s.A.Add(s.N.Mul(d)),
				s.B.Add(s.N.Mul(d)),
				s.B.Sub(s.N.Mul(d)),
				s.A.Sub(s.N.Mul(d)),
			)
			if j+1 < len(segs) {
				r.addJoin(s.B, s.T, segs[j+1].T, d)
			}
		}

		first, last := &segs[0], &segs[len(segs)-1]
		if r.segClosed[i] {
			r.addJoin(last.B, last.T, first.T, d)
		} else {
			r.addCap(first.A, first.T.Mul(-1), d)
			r.addCap(last.B, last.T, d)
		}
	}

	r.rasterize(integrateNonZero, emit)
}

// subpath returns the flattened segments of subpath i.
func (r *Rasterizer) subpath(i int) []segment {
	end := len(r.segs)
	if i+1 < len(r.segOffsets) {
		end = r.segOffsets[i+1]
	}
	return r.segs[r.segOffsets[i]:end]
}

// flatten splits p into line segments, grouped by subpath.  Subpaths
// without any extent are collected separately in r.dots.
func (r *Rasterizer) flatten(p path.Path) {
	r.segs = r.segs[:0]
	r.segOffsets = r.segOffsets[:0]
	r.segClosed = r.segClosed[:0]
	r.dots = r.dots[:0]

	var cur, start vec.Vec2
	first := 0
	open := false
	drawn := false

	finish := func(closed bool) {
		switch {
		case len(r.segs) > first:
			r.segOffsets = append(r.segOffsets, first)
			r.segClosed = append(r.segClosed, closed)
		case drawn:
			r.dots = append(r.dots, start)
		}
		first = len(r.segs)
		open = false
		drawn = false
	}

	for cmd, pts := range p {
		switch cmd {
		case path.CmdMoveTo:
			if open {
				finish(false)
			}
			cur, start = pts[0], pts[0]
			open = true
		case path.CmdLineTo:
			if !open {
				continue
			}
			drawn = true
			r.addSegment(cur, pts[0])
			cur = pts[0]
		case path.CmdQuadTo:
			if !open {
				continue
			}
			drawn = true
			r.flattenQuadratic(cur, pts[0], pts[1], r.addSegment)
			cur = pts[1]
		case path.CmdCubeTo:
			if !open {
				continue
			}
			drawn = true
			r.flattenCubic(cur, pts[0], pts[1], pts[2], r.addSegment)
			cur = pts[2]
		case path.CmdClose:
			if !open {
				continue
			}
			drawn = true
			r.addSegment(cur, start)
			cur = start
			finish(true)
		}
	}
	if open {
		finish(false)
	}
}

func (r *Rasterizer) addSegment(a, b vec.Vec2) {
	d := b.Sub(a)
	l := d.Length()
	if l < zeroLengthThreshold {
		return
	}
	t := d.Mul(1 / l)
	r.segs = append(r.segs, segment{A: a, B: b, T: t, N: vec.Vec2{X: -t.Y, Y: t.X}})
}

// addCap adds the cap at P; T points away from the stroke.
func (r *Rasterizer) addCap(P, T vec.Vec2, d float64) {
	switch r.Cap {
	case graphics.LineCapRound:
		r.addDisc(P, d)
	case graphics.LineCapSquare:
		N := vec.Vec2{X: -T.Y, Y: T.X}
		ext := P.Add(T.Mul(d))
		r.addPolygon(P.Add(N.Mul(d)), ext.Add(N.Mul(d)), ext.Sub(N.Mul(d)), P.Sub(N.Mul(d)))
	}
}

// addJoin adds the join piece at P, where the tangent turns from T1 to T2.
// Only the outer side of the corner needs filling; the inner side is
// already covered by the two segment quadrilaterals.
func (r *Rasterizer) addJoin(P, T1, T2 vec.Vec2, d float64) {
	sin := T1.X*T2.Y - T1.Y*T2.X
	cos := T1.Dot(T2)
	if math.Abs(sin) < collinearityThreshold && cos > 0 {
		return
	}

	if r.Join == graphics.LineJoinRound {
		r.addDisc(P, d)
		return
	}

	// the outer side is opposite to the turning direction
	side := 1.0
	if sin > 0 {
		side = -1
	}
	N1 := vec.Vec2{X: -T1.Y, Y: T1.X}.Mul(side)
	N2 := vec.Vec2{X: -T2.Y, Y: T2.X}.Mul(side)
	o1 := P.Add(N1.Mul(d))
	o2 := P.Add(N2.Mul(d))

	if r.Join == graphics.LineJoinMiter {
		// the miter length relative to the width is 1/sin(φ/2), where φ is
		// the interior angle of the corner
		sinHalf := math.Sqrt((1 + cos) / 2)
		bis := N1.Add(N2)
		if l := bis.Length(); sinHalf > 0 && l > zeroLengthThreshold && 1/sinHalf <= r.MiterLimit+1e-10 {
			tip := P.Add(bis.Mul(d / (sinHalf * l)))
			r.addPolygon(P, o1, tip, o2)
			return
		}
	}
	r.addPolygon(P, o1, o2)
}

// addDisc adds a full circle, approximated by a polygon whose chords stay
// within Flatness of the true circle in device space.
func (r *Rasterizer) addDisc(center vec.Vec2, radius float64) {
	devR := max(r.linear(vec.Vec2{X: radius}).Length(), r.linear(vec.Vec2{Y: radius}).Length())
	n := 4
	if devR > r.Flatness {
		step := 2 * math.Acos(1-r.Flatness/devR)
		if step > 0 && !math.IsNaN(step) {
			n = max(n, int(math.Ceil(2*math.Pi/step)))
		}
	}
	r.poly = r.poly[:0]
	for i := range n {
		a := 2 * math.Pi * float64(i) / float64(n)
		r.poly = append(r.poly, vec.Vec2{
			X: center.X + radius*math.Cos(a),
			Y: center.Y + radius*math.Sin(a),
		})
	}
	r.emitPolygon()
}

// addPolygon adds a closed polygon with positive orientation.
func (r *Rasterizer) addPolygon(pts ...vec.Vec2) {
	r.poly = append(r.poly[:0], pts...)
	r.emitPolygon()
}

// emitPolygon converts r.poly into edges, reversing it if needed so that
// every stroke piece winds the same way.
func (r *Rasterizer) emitPolygon() {
	n := len(r.poly)
	if n < 3 {
		return
	}
	var area float64
	for i := range n {
		a, b := r.poly[i], r.poly[(i+1)%n]
		area += a.X*b.Y - b.X*a.Y
	}
	if area < 0 {
		for i := range n {
			r.addEdge(r.poly[(i+1)%n], r.poly[i])
		}
		return
	}
	for i := range n {
		r.addEdge(r.poly[i], r.poly[(i+1)%n])
	}
}
