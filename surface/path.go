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
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// Path collects drawing commands.  The zero value is an empty path.
type Path struct {
	cmds []path.Command
	pts  []vec.Vec2
}

// MoveTo starts a new subpath at (x, y).
func (p *Path) MoveTo(x, y float64) {
	p.cmds = append(p.cmds, path.CmdMoveTo)
	p.pts = append(p.pts, vec.Vec2{X: x, Y: y})
}

// LineTo adds a straight line to (x, y).
func (p *Path) LineTo(x, y float64) {
	p.cmds = append(p.cmds, path.CmdLineTo)
	p.pts = append(p.pts, vec.Vec2{X: x, Y: y})
}

// CubeTo adds a cubic Bézier curve with control points (x1, y1) and
// (x2, y2), ending at (x3, y3).
func (p *Path) CubeTo(x1, y1, x2, y2, x3, y3 float64) {
	p.cmds = append(p.cmds, path.CmdCubeTo)
	p.pts = append(p.pts, vec.Vec2{X: x1, Y: y1}, vec.Vec2{X: x2, Y: y2}, vec.Vec2{X: x3, Y: y3})
}

// Close closes the current subpath.
func (p *Path) Close() {
	p.cmds = append(p.cmds, path.CmdClose)
}

// Rect adds a closed rectangle.
func (p *Path) Rect(x, y, w, h float64) {
	p.MoveTo(x, y)
	p.LineTo(x+w, y)
	p.LineTo(x+w, y+h)
	p.LineTo(x, y+h)
	p.Close()
}

// circleKappa places the control points of a cubic quarter circle.
const circleKappa = 0.5522847498

// Circle adds a closed circle made of four cubic Bézier curves.  With
// reverse set, the circle is traced in the opposite direction.
func (p *Path) Circle(cx, cy, r float64, reverse bool) {
	k := circleKappa * r
	s := 1.0
	if reverse {
		s = -1
	}
	p.MoveTo(cx+r, cy)
	p.CubeTo(cx+r, cy+s*k, cx+k, cy+s*r, cx, cy+s*r)
	p.CubeTo(cx-k, cy+s*r, cx-r, cy+s*k, cx-r, cy)
	p.CubeTo(cx-r, cy-s*k, cx-k, cy-s*r, cx, cy-s*r)
	p.CubeTo(cx+k, cy-s*r, cx+r, cy-s*k, cx+r, cy)
	p.Close()
}

// Empty reports whether the path has no commands.
func (p *Path) Empty() bool {
	return len(p.cmds) == 0
}

// Reset removes all commands, keeping the allocated storage.
func (p *Path) Reset() {
	p.cmds = p.cmds[:0]
	p.pts = p.pts[:0]
}

// All returns an iterator over the commands of the path.
func (p *Path) All() path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		j := 0
		for _, cmd := range p.cmds {
			n := 0
			switch cmd {
			case path.CmdMoveTo, path.CmdLineTo:
				n = 1
			case path.CmdQuadTo:
				n = 2
			case path.CmdCubeTo:
				n = 3
			}
			if !yield(cmd, p.pts[j:j+n]) {
				return
			}
			j += n
		}
	}
}

// finite reports whether all coordinates of the path are finite.
func (p *Path) finite() bool {
	for _, pt := range p.pts {
		if !isFinite(pt.X) || !isFinite(pt.Y) {
			return false
		}
	}
	return true
}
