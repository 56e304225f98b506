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
	"image/color"
	"math"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"

	"seehuhn.de/go/winerender/hsv"
	"seehuhn.de/go/winerender/surface"
	"seehuhn.de/go/winerender/wine"
)

var (
	testGeom = NewGeometry(300, 300, 130, 35, 15)
	red      = wine.Red.DefaultColor()
)

// canvas returns a surface filled with opaque white.
func canvas(g Geometry) *surface.Surface {
	s := surface.New(g.Width, g.Height)
	s.FillRect(0, 0, float64(g.Width), float64(g.Height), surface.Solid{R: 1, G: 1, B: 1, A: 1})
	return s
}

// withBase returns a surface with background and base disc painted.
func withBase(t *testing.T, g Geometry) *surface.Surface {
	t.Helper()
	s := surface.New(g.Width, g.Height)
	require.NoError(t, Background(s, g, red))
	require.NoError(t, Base(s, g, red))
	return s
}

func pixel(s *surface.Surface, x, y int) (r, g, b int) {
	c, ok := s.Pixels().At(x, y)
	if !ok {
		panic("pixel out of range")
	}
	return int(c.R), int(c.G), int(c.B)
}

func brightness(s *surface.Surface, x, y int) int {
	r, g, b := pixel(s, x, y)
	return r + g + b
}

func pix(s *surface.Surface) []uint8 {
	return slices.Clone(s.Pixels().Pix())
}

func TestGeometryCheck(t *testing.T) {
	require.NoError(t, testGeom.Check())
	require.Equal(t, 150.0, testGeom.CX)

	bad := testGeom
	bad.MaxRadius = math.NaN()
	require.ErrorIs(t, bad.Check(), ErrNonFinite)

	bad = testGeom
	bad.Width = 0
	require.Error(t, bad.Check())

	bad = NewGeometry(MaxCanvasSize+1, 300, 130, 35, 15)
	require.Error(t, bad.Check())
	bad = NewGeometry(300, 1<<30, 130, 35, 15)
	require.Error(t, bad.Check())
	require.NoError(t, NewGeometry(MaxCanvasSize, MaxCanvasSize, 130, 35, 15).Check())
}

func TestBackgroundAndBase(t *testing.T) {
	s := withBase(t, testGeom)

	// the corner keeps the background tint
	tr, tg, tb := hsv.ToRGB(red.H, red.S*0.08, 0.98)
	r, g, b := pixel(s, 0, 0)
	require.Equal(t, []int{int(tr), int(tg), int(tb)}, []int{r, g, b})

	// the middle of the disc has the full base colour
	br, bg, bb := red.RGB()
	x := int(testGeom.CX + testGeom.MaxRadius*0.45)
	r, g, b = pixel(s, x, int(testGeom.CY))
	require.InDelta(t, int(br), r, 1)
	require.InDelta(t, int(bg), g, 1)
	require.InDelta(t, int(bb), b, 1)
}

func TestBaseNonFinite(t *testing.T) {
	g := testGeom
	g.MaxRadius = math.Inf(1)
	s := surface.New(g.Width, g.Height)
	err := Base(s, g, red)
	require.ErrorIs(t, err, ErrNonFinite)
}

func TestNotes(t *testing.T) {
	s := canvas(testGeom)
	before := pix(s)
	applied, err := Notes(s, testGeom, nil)
	require.NoError(t, err)
	require.False(t, applied)
	require.Equal(t, before, pix(s))

	notes := []wine.Note{{Name: "cherry", Color: hsv.Color{H: 0, S: 1, V: 1}, Intensity: 1}}
	applied, err = Notes(s, testGeom, notes)
	require.NoError(t, err)
	require.True(t, applied)

	// a single note sits in the middle of the available annulus
	ring := (testGeom.CoreRadius + testGeom.MaxRadius) / 2
	_, g, _ := pixel(s, int(testGeom.CX+ring), int(testGeom.CY))
	require.Less(t, g, 255-40)
	_, g, _ = pixel(s, int(testGeom.CX), int(testGeom.CY))
	require.Equal(t, 255, g)
}

func TestAcidity(t *testing.T) {
	s := withBase(t, testGeom)
	before := pix(s)

	applied, err := Acidity(s, testGeom, red, 0.05, 1)
	require.NoError(t, err)
	require.False(t, applied)

	// weighted acidity 0.3 × 0.3 stays below the threshold
	applied, err = Acidity(s, testGeom, red, 0.3, 0.3)
	require.NoError(t, err)
	require.False(t, applied)
	require.Equal(t, before, pix(s))

	applied, err = Acidity(s, testGeom, red, 1, 1)
	require.NoError(t, err)
	require.True(t, applied)
	_, gAfter, _ := pixel(s, 150, 150)
	_, gBefore, _ := pixelOf(before, 150, 150, testGeom.Width)
	require.Greater(t, gAfter, gBefore)
}

func pixelOf(p []uint8, x, y, width int) (r, g, b int) {
	k := 4 * (y*width + x)
	return int(p[k]), int(p[k+1]), int(p[k+2])
}

func TestDepth(t *testing.T) {
	s := withBase(t, testGeom)
	before := brightness(s, 150, 150)

	applied, err := Depth(s, testGeom, 0.1, 1)
	require.NoError(t, err)
	require.False(t, applied)

	applied, err = Depth(s, testGeom, 1, 1)
	require.NoError(t, err)
	require.True(t, applied)
	require.Less(t, brightness(s, 150, 150), before)

	// the corner is outside the reach of the gradient
	require.Equal(t, brightness(withBase(t, testGeom), 0, 0), brightness(s, 0, 0))
}

func TestSugarGlow(t *testing.T) {
	s := canvas(testGeom)
	before := pix(s)
	applied, err := SugarGlow(s, testGeom, 5)
	require.NoError(t, err)
	require.False(t, applied)
	require.Equal(t, before, pix(s))

	applied, err = SugarGlow(s, testGeom, 80)
	require.NoError(t, err)
	require.True(t, applied)
	y := int(testGeom.CY + testGeom.MaxRadius*0.3)
	r, g, _ := pixel(s, 150, y)
	require.Equal(t, 255, r)
	require.Less(t, g, 230)
}

func TestSugarBar(t *testing.T) {
	g := testGeom
	x, y := g.Width-5, 20

	empty := canvas(g)
	applied, err := SugarBar(empty, g, 0)
	require.NoError(t, err)
	require.True(t, applied)
	r, gr, _ := pixel(empty, x, y)
	require.InDelta(t, r, gr, 1)
	require.Less(t, r, 255)

	full := canvas(g)
	_, err = SugarBar(full, g, 800)
	require.NoError(t, err)
	r, gr, _ = pixel(full, x, y)
	require.Greater(t, r-gr, 30)

	// the rotated label is drawn in white near the bottom of the bar
	found := false
	barX := g.Width - g.Width/10
	for py := g.Height - 60; py < g.Height-8; py++ {
		for px := barX; px < g.Width; px++ {
			if r, gr, b := pixel(empty, px, py); r > 245 && gr > 245 && b > 245 {
				found = true
			}
		}
	}
	require.True(t, found)

	// the area left of the bar is untouched
	r, gr, _ = pixel(full, barX-3, y)
	require.Equal(t, []int{255, 255}, []int{r, gr})
}

func TestBodyTiers(t *testing.T) {
	require.Equal(t, Silky, TierOf(0.1))
	require.Equal(t, Velvet, TierOf(0.25))
	require.Equal(t, Creamy, TierOf(0.6))
	require.Equal(t, Opulent, TierOf(0.75))
	require.Equal(t, "opulent", Opulent.String())
}

func TestBodyClamping(t *testing.T) {
	render := func(body float64) ([]uint8, bool) {
		s := withBase(t, testGeom)
		applied, err := Body(s, testGeom, body, BodySeed(testGeom, body))
		require.NoError(t, err)
		return pix(s), applied
	}

	one, applied := render(1)
	require.True(t, applied)
	more, _ := render(1.5)
	require.Equal(t, one, more)

	zero, applied := render(0)
	require.False(t, applied)
	negative, applied := render(-1)
	require.False(t, applied)
	require.Equal(t, zero, negative)
	require.Equal(t, pix(withBase(t, testGeom)), zero)
}

// requireOutsideUnchanged checks that no pixel clear of the disc rim
// differs between ref and got.
func requireOutsideUnchanged(t *testing.T, g Geometry, ref, got []uint8, msg string) {
	t.Helper()
	for y := range g.Height {
		for x := range g.Width {
			dx := float64(x) + 0.5 - g.CX
			dy := float64(y) + 0.5 - g.CY
			if math.Hypot(dx, dy) < g.MaxRadius+1.5 {
				continue
			}
			k := 4 * (y*g.Width + x)
			require.Equal(t, ref[k:k+4], got[k:k+4], "%s, pixel (%d,%d)", msg, x, y)
		}
	}
}

func TestBodyConfinedToDisc(t *testing.T) {
	for _, body := range []float64{0.2, 0.4, 0.6, 0.9} {
		s := withBase(t, testGeom)
		ref := pix(s)
		_, err := Body(s, testGeom, body, BodySeed(testGeom, body))
		require.NoError(t, err)
		requireOutsideUnchanged(t, testGeom, ref, pix(s), fmt.Sprintf("body %g", body))
	}
}

func TestBoostColorsRim(t *testing.T) {
	grey := color.NRGBA{R: 100, G: 120, B: 140, A: 255}
	buf := surface.NewPixelBuffer(testGeom.Width, testGeom.Height)
	for _, p := range [][2]int{{280, 150}, {281, 150}, {150, 150}} {
		buf.Set(p[0], p[1], grey)
	}
	boostColors(buf, testGeom, 1)

	// (280,150) is inside the disc at its corner but not at its centre
	c, _ := buf.At(280, 150)
	require.NotEqual(t, grey, c)
	c, _ = buf.At(150, 150)
	require.NotEqual(t, grey, c)
	c, _ = buf.At(281, 150)
	require.Equal(t, grey, c)
}

func TestNotesConfinedToDisc(t *testing.T) {
	note := func(intensity float64) wine.Note {
		return wine.Note{Color: hsv.Color{H: 120, S: 1, V: 0.2}, Intensity: intensity}
	}
	for n := 1; n <= 3; n++ {
		notes := make([]wine.Note, n)
		for i := range notes {
			notes[i] = note(1)
		}
		s := withBase(t, testGeom)
		ref := pix(s)
		applied, err := Notes(s, testGeom, notes)
		require.NoError(t, err)
		require.True(t, applied)
		require.NotEqual(t, ref, pix(s))
		requireOutsideUnchanged(t, testGeom, ref, pix(s), fmt.Sprintf("%d notes", n))
	}
}

func TestSugarGlowConfinedToDisc(t *testing.T) {
	for _, sugar := range []float64{30, 100, 400} {
		s := withBase(t, testGeom)
		ref := pix(s)
		applied, err := SugarGlow(s, testGeom, sugar)
		require.NoError(t, err)
		require.True(t, applied)
		requireOutsideUnchanged(t, testGeom, ref, pix(s), fmt.Sprintf("sugar %g", sugar))

		// directly below the disc, where the unclipped glow used to reach
		k := 4 * (285*testGeom.Width + 150)
		require.Equal(t, ref[k:k+4], pix(s)[k:k+4])
	}
}

func TestBarrel(t *testing.T) {
	s := canvas(testGeom)
	applied, err := Barrel(s, testGeom, wine.NoBarrel, 1)
	require.NoError(t, err)
	require.False(t, applied)

	paint := func(intensity float64) *surface.Surface {
		s := canvas(testGeom)
		applied, err := Barrel(s, testGeom, wine.Oak, intensity)
		require.NoError(t, err)
		require.True(t, applied)
		return s
	}
	weak, strong := paint(0), paint(1)
	require.Less(t, brightness(strong, 0, 0), brightness(weak, 0, 0))
	r, _, b := pixel(strong, 0, 0)
	require.Greater(t, r, b)

	// the centre stays clear of the vignette
	require.Equal(t, 3*255, brightness(strong, 150, 150))

	both, ok := BarrelColor(wine.Both, 0.5)
	require.True(t, ok)
	// the hues meet on the short arc through 0°
	require.InDelta(t, 295, both.H, 1e-9)
}

func TestBubblesThreshold(t *testing.T) {
	s := canvas(testGeom)
	before := pix(s)
	stats, err := Bubbles(s, testGeom, 0.01, 1, AllPasses, BubbleSeed(testGeom, 0.01))
	require.NoError(t, err)
	require.Zero(t, stats.Total())
	require.Empty(t, stats.Stage)
	require.Equal(t, before, pix(s))
}

func TestBubblesStages(t *testing.T) {
	require.Equal(t, "still", StageOf(0.1).Name)
	require.Equal(t, "perlend", StageOf(0.2).Name)
	require.Equal(t, "spritzig", StageOf(0.6).Name)
	require.Equal(t, "stark_spritzig", StageOf(0.75).Name)
	require.Equal(t, "stark_spritzig", StageOf(1).Name)

	s := canvas(testGeom)
	stats, err := Bubbles(s, testGeom, 0.9, 1, AllPasses, BubbleSeed(testGeom, 0.9))
	require.NoError(t, err)
	require.Equal(t, "stark_spritzig", stats.Stage)

	outside, rim, sparkle := StageOf(0.9).Counts(0.9)
	require.Equal(t, outside, stats.Outside)
	require.Equal(t, rim, stats.Rim)
	require.Equal(t, sparkle, stats.Sparkle)
	require.GreaterOrEqual(t, stats.Outside, 140)
	require.LessOrEqual(t, stats.Outside, 620)
	require.GreaterOrEqual(t, stats.Rim, 95)
	require.LessOrEqual(t, stats.Rim, 355)
	require.Positive(t, stats.Sparkle)
}

func TestBubblesMonotone(t *testing.T) {
	var prev BubbleStats
	for _, spritz := range []float64{0.1, 0.3, 0.6, 0.9} {
		s := canvas(testGeom)
		stats, err := Bubbles(s, testGeom, spritz, 1, AllPasses, BubbleSeed(testGeom, spritz))
		require.NoError(t, err)
		require.GreaterOrEqual(t, stats.Outside, prev.Outside, "spritz %g", spritz)
		require.GreaterOrEqual(t, stats.Rim, prev.Rim, "spritz %g", spritz)
		require.GreaterOrEqual(t, stats.Sparkle, prev.Sparkle, "spritz %g", spritz)
		prev = stats
	}
}

func TestBubblesDeterministic(t *testing.T) {
	render := func(seed uint32, passes Passes) ([]uint8, BubbleStats) {
		s := canvas(testGeom)
		stats, err := Bubbles(s, testGeom, 0.5, 1, passes, seed)
		require.NoError(t, err)
		return pix(s), stats
	}

	seed := BubbleSeed(testGeom, 0.5)
	a, _ := render(seed, AllPasses)
	b, _ := render(seed, AllPasses)
	require.Equal(t, a, b)
	c, _ := render(seed+1, AllPasses)
	require.NotEqual(t, a, c)

	_, stats := render(seed, PassSparkle)
	require.Zero(t, stats.Outside)
	require.Zero(t, stats.Rim)
	require.Positive(t, stats.Sparkle)
}

func TestBubblesNoPasses(t *testing.T) {
	s := canvas(testGeom)
	before := pix(s)
	stats, err := Bubbles(s, testGeom, 0.9, 1, 0, BubbleSeed(testGeom, 0.9))
	require.NoError(t, err)
	require.Empty(t, stats.Stage)
	require.Zero(t, stats.Total())
	require.Equal(t, before, pix(s))
}

func TestBubbleSeed(t *testing.T) {
	require.Equal(t, BubbleSeed(testGeom, 0.9), BubbleSeed(testGeom, 0.9))
	require.NotEqual(t, BubbleSeed(testGeom, 0.9), BubbleSeed(testGeom, 0.8))
	legacy := NewGeometry(200, 200, 86, 23, 10)
	require.NotEqual(t, BubbleSeed(testGeom, 0.9), BubbleSeed(legacy, 0.9))
}

func TestMinerality(t *testing.T) {
	s := canvas(testGeom)
	before := pix(s)
	for _, m := range []wine.Material{wine.NoMaterial, "marble"} {
		note := wine.MineralNote{Material: m, Intensity: 1, Placement: 0.5}
		n, err := Minerality(s, testGeom, note, MineralSeed(testGeom, note, 0))
		require.NoError(t, err)
		require.Zero(t, n)
	}
	require.Equal(t, before, pix(s))

	render := func(note wine.MineralNote) ([]uint8, int) {
		s := withBase(t, testGeom)
		n, err := Minerality(s, testGeom, note, MineralSeed(testGeom, note, 0))
		require.NoError(t, err)
		return pix(s), n
	}
	note := wine.MineralNote{Material: wine.Chalk, Intensity: 0.4, Placement: 0.6}
	a, n := render(note)
	require.Equal(t, 200, n)
	b, _ := render(note)
	require.Equal(t, a, b)
	require.NotEqual(t, pix(withBase(t, testGeom)), a)
}

func TestMineralCountMonotone(t *testing.T) {
	prev := 0
	for _, v := range []float64{0, 0.1, 0.3, 0.6, 0.9, 1} {
		n := MineralCount(wine.MineralNote{Material: wine.Slate, Intensity: v})
		require.GreaterOrEqual(t, n, prev)
		prev = n
	}
	require.Equal(t, 500, prev)
}
