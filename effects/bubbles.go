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
)

// Passes selects the parts of the bubble layer which are drawn.
type Passes uint8

// The passes of the bubble layer.
const (
	// PassOutside scatters bokeh circles near the canvas edges, outside
	// the disc.
	PassOutside Passes = 1 << iota

	// PassRim scatters bokeh circles over the rim of the disc.
	PassRim

	// PassSparkle scatters tiny dots inside the disc.
	PassSparkle

	AllPasses = PassOutside | PassRim | PassSparkle
)

// Linear is a parameter which grows linearly with the effective
// effervescence s.
type Linear struct {
	Base, Mul float64
}

// At evaluates the parameter at s.
func (l Linear) At(s float64) float64 {
	return l.Base + l.Mul*s
}

// Stage is a set of bubble parameters for a range of effervescence.
type Stage struct {
	Name string

	// Upper is the exclusive upper bound of the range of the stage.
	Upper float64

	OutsideCount Linear
	RimCount     Linear
	SparkleCount Linear

	// OutsideR and RimR give the range of bubble radii, before scaling
	// with the effervescence.
	OutsideR, RimR [2]float64

	OutsideAlpha Linear
	RimAlpha     Linear
	SparkleAlpha Linear
	Glow         Linear

	// InnerR and OuterR bound the rim pass, relative to MaxRadius.
	InnerR, OuterR float64

	// Keepout is the radius, relative to MaxRadius, which outside bubbles
	// do not enter.
	Keepout float64
}

// Counts returns the number of particles of the three passes at
// effervescence s.
func (st *Stage) Counts(s float64) (outside, rim, sparkle int) {
	count := func(l Linear) int { return int(math.Floor(l.At(s))) }
	return count(st.OutsideCount), count(st.RimCount), count(st.SparkleCount)
}

// Stages lists the bubble stages in increasing order.
var Stages = []Stage{
	{
		Name:         "still",
		Upper:        0.20,
		OutsideCount: Linear{0, 40},
		RimCount:     Linear{0, 25},
		SparkleCount: Linear{0, 40},
		OutsideR:     [2]float64{1.8, 6.0},
		RimR:         [2]float64{1.5, 5.0},
		OutsideAlpha: Linear{0.04, 0.10},
		RimAlpha:     Linear{0.04, 0.12},
		SparkleAlpha: Linear{0.002, 0.006},
		Glow:         Linear{0.01, 0.04},
		InnerR:       0.78,
		OuterR:       1.04,
		Keepout:      1.06,
	},
	{
		Name:         "perlend",
		Upper:        0.45,
		OutsideCount: Linear{35, 220},
		RimCount:     Linear{20, 130},
		SparkleCount: Linear{10, 90},
		OutsideR:     [2]float64{1.8, 6.0},
		RimR:         [2]float64{1.5, 5.0},
		OutsideAlpha: Linear{0.10, 0.22},
		RimAlpha:     Linear{0.10, 0.24},
		SparkleAlpha: Linear{0.003, 0.010},
		Glow:         Linear{0.03, 0.08},
		InnerR:       0.74,
		OuterR:       1.06,
		Keepout:      1.04,
	},
	{
		Name:         "spritzig",
		Upper:        0.75,
		OutsideCount: Linear{80, 360},
		RimCount:     Linear{55, 200},
		SparkleCount: Linear{16, 120},
		OutsideR:     [2]float64{1.8, 6.0},
		RimR:         [2]float64{1.5, 5.0},
		OutsideAlpha: Linear{0.14, 0.28},
		RimAlpha:     Linear{0.16, 0.30},
		SparkleAlpha: Linear{0.004, 0.012},
		Glow:         Linear{0.05, 0.12},
		InnerR:       0.70,
		OuterR:       1.08,
		Keepout:      1.02,
	},
	{
		Name:         "stark_spritzig",
		Upper:        math.Inf(1),
		OutsideCount: Linear{140, 480},
		RimCount:     Linear{95, 260},
		SparkleCount: Linear{22, 150},
		OutsideR:     [2]float64{1.8, 6.0},
		RimR:         [2]float64{1.5, 5.0},
		OutsideAlpha: Linear{0.16, 0.34},
		RimAlpha:     Linear{0.18, 0.36},
		SparkleAlpha: Linear{0.004, 0.014},
		Glow:         Linear{0.06, 0.16},
		InnerR:       0.66,
		OuterR:       1.10,
		Keepout:      1.01,
	},
}

// StageOf returns the stage for the effective effervescence s.
func StageOf(s float64) *Stage {
	for i := range Stages {
		if s < Stages[i].Upper {
			return &Stages[i]
		}
	}
	return &Stages[len(Stages)-1]
}

// BubbleStats describes what the bubble layer has drawn.
type BubbleStats struct {
	Stage   string // empty if the layer was skipped
	Outside int
	Rim     int
	Sparkle int
}

// Total returns the number of particles drawn.
func (b BubbleStats) Total() int {
	return b.Outside + b.Rim + b.Sparkle
}

// BubbleSeed derives the seed of the bubble layer from the geometry and
// the effective effervescence.
func BubbleSeed(g Geometry, s float64) uint32 {
	return rng.Seed(
		rng.Scaled(g.CX, 1000),
		rng.Scaled(g.CY, 1000),
		rng.Scaled(g.MaxRadius, 1000),
		rng.Scaled(float64(g.Width), 10),
		rng.Scaled(float64(g.Height), 10),
		rng.Scaled(clamp01(s), 1_000_000),
	)
}

// bubblePalette lists the bokeh colours with their weights.
var bubblePalette = []struct {
	c      surface.RGBA
	weight float64
}{
	{surface.RGB255(255, 255, 255, 1), 0.20},
	{surface.RGB255(255, 230, 240, 1), 0.20},
	{surface.RGB255(255, 205, 228, 1), 0.30},
	{surface.RGB255(255, 170, 215, 1), 0.30},
}

// Bubbles renders effervescence as soft bokeh circles around the edges of
// the canvas and over the rim of the disc, plus faint sparkles inside the
// disc.  The effective effervescence is spritz×intensity; nothing is drawn
// if it does not exceed 0.02, or if passes selects none of the passes.
// All random choices are taken from a single
// stream started at seed, see [BubbleSeed].
func Bubbles(s *surface.Surface, g Geometry, spritz, intensity float64, passes Passes, seed uint32) (BubbleStats, error) {
	level := clamp01(spritz * intensity)
	if level <= 0.02 || passes&AllPasses == 0 {
		return BubbleStats{}, nil
	}

	b := &bubbler{
		s:     s,
		g:     g,
		level: level,
		rnd:   rng.New(seed),
		stage: StageOf(level),
		band:  max(26, float64(min(g.Width, g.Height))*0.16),
	}
	stats := BubbleStats{Stage: b.stage.Name}

	if passes&PassOutside != 0 {
		stats.Outside = b.outside()
	}
	if passes&PassRim != 0 {
		stats.Rim = b.rim()
	}
	if passes&PassSparkle != 0 {
		stats.Sparkle = b.sparkle()
	}
	return stats, done(s, "bubbles")
}

type bubbler struct {
	s     *surface.Surface
	g     Geometry
	level float64
	rnd   *rng.Rand
	stage *Stage
	band  float64
}

// outside scatters bokeh in the bands along the canvas edges, keeping
// clear of the disc, and adds a faint glow at the left and right edge.
func (b *bubbler) outside() int {
	st := b.stage
	count, _, _ := st.Counts(b.level)
	keepout := b.g.MaxRadius * st.Keepout
	keepout2 := keepout * keepout

	placed := 0
	for attempts := 0; placed < count && attempts < count*14; attempts++ {
		x, y := b.edgePoint()
		dx, dy := x-b.g.CX, y-b.g.CY
		if dx*dx+dy*dy < keepout2 {
			continue
		}
		r := lerp(st.OutsideR[0], st.OutsideR[1], b.rnd.Pow(0.6)) * (0.85 + b.level*0.85)
		a := st.OutsideAlpha.At(b.level) * b.rnd.Range(0.55, 1.1)
		b.bokeh(x, y, r, b.pickColor(), a)
		placed++
	}

	b.sideGlow(st.Glow.At(b.level))
	return placed
}

// rim scatters bokeh like outside, but clipped to a ring around the rim
// of the disc.
func (b *bubbler) rim() int {
	st := b.stage
	_, count, _ := st.Counts(b.level)

	b.s.Save()
	b.s.ClipRing(b.g.CX, b.g.CY, b.g.MaxRadius*st.InnerR, b.g.MaxRadius*st.OuterR)
	placed := 0
	for attempts := 0; placed < count && attempts < count*14; attempts++ {
		x, y := b.edgePoint()
		r := lerp(st.RimR[0], st.RimR[1], b.rnd.Pow(0.7)) * (0.85 + b.level*0.85)
		a := st.RimAlpha.At(b.level) * b.rnd.Range(0.6, 1.15)
		b.bokeh(x, y, r, b.pickColor(), a)
		placed++
	}
	b.s.Restore()
	return placed
}

// sparkle scatters small square dots, uniformly by area, inside the disc.
func (b *bubbler) sparkle() int {
	st := b.stage
	_, _, n := st.Counts(b.level)
	if n <= 0 {
		return 0
	}

	R := b.g.MaxRadius
	b.s.Save()
	b.s.ClipCircle(b.g.CX, b.g.CY, R*0.98)
	for range n {
		rt := math.Sqrt(b.rnd.Float64())
		angle := b.rnd.Range(0, 2*math.Pi)
		x := b.g.CX + math.Cos(angle)*R*rt
		y := b.g.CY + math.Sin(angle)*R*rt

		size := b.rnd.Range(0.45, 1.35) * (0.85 + b.level*0.35)
		a := st.SparkleAlpha.At(b.level) * b.rnd.Range(0.25, 1)

		c := white
		if b.rnd.Chance(0.18) {
			c = surface.RGB255(170, 220, 150, 1)
		}
		b.s.FillRect(x, y, size, size, surface.Solid(c.WithAlpha(a)))
	}
	b.s.Restore()
	return n
}

// edgePoint returns a random point in the bands along the canvas edges.
// Most points fall into the left or right band, biased towards the edge.
func (b *bubbler) edgePoint() (x, y float64) {
	w, h := float64(b.g.Width), float64(b.g.Height)
	band := b.band
	r := b.rnd

	switch p := r.Float64(); {
	case p < 0.46:
		x = lerp(0, band, r.Pow(0.55))
		y = r.Float64() * h
	case p < 0.92:
		x = lerp(w-band, w, 1-r.Pow(0.55))
		y = r.Float64() * h
	default:
		if r.Chance(0.5) {
			x = r.Float64() * band
		} else {
			x = w - r.Float64()*band
		}
		if r.Chance(0.5) {
			y = r.Float64() * band
		} else {
			y = h - r.Float64()*band
		}
	}
	return x, y
}

func (b *bubbler) pickColor() surface.RGBA {
	var total float64
	for _, p := range bubblePalette {
		total += p.weight
	}
	t := b.rnd.Float64() * total
	for _, p := range bubblePalette {
		t -= p.weight
		if t <= 0 {
			return p.c
		}
	}
	return bubblePalette[len(bubblePalette)-1].c
}

// bokeh draws a single soft circle, optionally with a faint ring and a
// small highlight.
func (b *bubbler) bokeh(x, y, r float64, c surface.RGBA, alpha float64) {
	inner := max(0.5, r*b.rnd.Range(0.06, 0.16))
	b.s.FillCircle(x, y, r, radial(x, y, inner, r,
		stop(0, c.WithAlpha(clamp01(alpha*0.65))),
		stop(0.55, c.WithAlpha(clamp01(alpha))),
		stop(1, c.WithAlpha(0)),
	))

	if b.rnd.Chance(0.55) {
		var ring surface.Path
		ring.Circle(x, y, r*0.82, false)
		b.s.StrokePath(&ring,
			surface.StrokeStyle{Width: max(0.8, r*0.06)},
			surface.Solid(white.WithAlpha(clamp01(alpha*0.28))))
	}

	if b.rnd.Chance(0.65) {
		hx := x - r*b.rnd.Range(0.18, 0.36)
		hy := y - r*b.rnd.Range(0.18, 0.36)
		hr := r * b.rnd.Range(0.1, 0.2)
		b.s.FillCircle(hx, hy, hr, radial(hx, hy, 0, hr,
			stop(0, white.WithAlpha(clamp01(alpha*0.55))),
			stop(1, white.WithAlpha(0)),
		))
	}
}

// sideGlow lightens the left edge with a pink and the right edge with a
// blue shimmer.
func (b *bubbler) sideGlow(alpha float64) {
	w, h := float64(b.g.Width), float64(b.g.Height)
	band := b.band

	pink := surface.RGB255(255, 210, 235, 1)
	lx := -band * 0.15
	b.s.FillRect(0, 0, band*1.2, h, radial(lx, h*0.5, 0, band*1.55,
		stop(0, pink.WithAlpha(clamp01(alpha))),
		stop(1, pink.WithAlpha(0)),
	))

	blue := surface.RGB255(200, 230, 255, 1)
	rx := w + band*0.15
	b.s.FillRect(w-band*1.2, 0, band*1.2, h, radial(rx, h*0.5, 0, band*1.55,
		stop(0, blue.WithAlpha(clamp01(alpha*0.9))),
		stop(1, blue.WithAlpha(0)),
	))
}
