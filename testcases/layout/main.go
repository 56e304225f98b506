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

// Command layout draws the layout of each canvas profile as a PDF: the
// outline of the wine disc, the core, and the rings of the aroma notes.
// The diagrams are used to check the geometry of new profiles by eye.
// Run from the module root directory.
package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"path/filepath"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/winerender"
)

const layoutDir = "testdata/layout"

func main() {
	notes := flag.Int("notes", 4, "number of aroma notes to draw rings for")
	flag.Parse()

	if err := os.MkdirAll(layoutDir, 0755); err != nil {
		panic(err)
	}
	for _, p := range []winerender.Profile{winerender.Standard, winerender.Legacy} {
		fname := filepath.Join(layoutDir, p.Name+".pdf")
		if err := drawLayout(p, *notes, fname); err != nil {
			panic(fmt.Errorf("%s: %w", p.Name, err))
		}
	}
}

func drawLayout(p winerender.Profile, notes int, fname string) error {
	g := p.Geometry()
	if err := g.Check(); err != nil {
		return err
	}

	paper := &pdf.Rectangle{
		URx: float64(g.Width),
		URy: float64(g.Height),
	}
	page, err := document.CreateSinglePage(fname, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	// PDF origin is bottom-left, the canvas origin is top-left.
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, float64(g.Height)})

	page.SetFillColor(color.DeviceGray(0.95))
	page.Rectangle(0, 0, float64(g.Width), float64(g.Height))
	page.Fill()

	page.SetStrokeColor(color.DeviceGray(0))
	page.SetLineWidth(1)
	circle(page, g.CX, g.CY, g.MaxRadius)
	circle(page, g.CX, g.CY, g.CoreRadius)
	page.Stroke()

	if notes > 0 {
		outer := g.MaxRadius - g.NoteMargin
		inner := g.CoreRadius + g.NoteMargin
		band := (outer - inner) / float64(notes)

		page.SetStrokeColor(color.DeviceGray(0.6))
		page.SetLineWidth(0.5)
		for i := range notes {
			circle(page, g.CX, g.CY, outer-band*(float64(i)+0.5))
		}
		page.Stroke()
	}

	return page.Close()
}

type pather interface {
	MoveTo(x, y float64)
	CurveTo(x1, y1, x2, y2, x3, y3 float64)
	ClosePath()
}

// circle appends a circle, made from four Bézier arcs, to the current path.
func circle(page pather, cx, cy, r float64) {
	k := r * 4 * (math.Sqrt2 - 1) / 3
	page.MoveTo(cx+r, cy)
	page.CurveTo(cx+r, cy+k, cx+k, cy+r, cx, cy+r)
	page.CurveTo(cx-k, cy+r, cx-r, cy+k, cx-r, cy)
	page.CurveTo(cx-r, cy-k, cx-k, cy-r, cx, cy-r)
	page.CurveTo(cx+k, cy-r, cx+r, cy-k, cx+r, cy)
	page.ClosePath()
}
