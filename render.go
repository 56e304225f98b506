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

// Package winerender renders the tasting attributes of a wine as a small
// picture.
//
// The picture is built from a fixed sequence of layers, see package
// [seehuhn.de/go/winerender/effects], painted onto a fresh surface.
// Rendering is deterministic: the same attributes and options always give
// the same image.  Rendering keeps no state between calls, so any number
// of renderings can run in parallel.
package winerender

//go:generate go run ./testcases/export
//go:generate go run ./testcases/layout

import (
	"bytes"
	"fmt"
	"image"
	"io"

	"github.com/disintegration/imaging"

	"seehuhn.de/go/winerender/effects"
	"seehuhn.de/go/winerender/rng"
	"seehuhn.de/go/winerender/surface"
	"seehuhn.de/go/winerender/wine"
)

// Report describes how an image was rendered.
type Report struct {
	Profile Profile

	// Seed is the seed of the bubble layer.
	Seed uint32

	// Layers lists the layers in the order they were applied.
	Layers []LayerResult

	// Bubbles gives the particle counts of the bubble layer.
	Bubbles effects.BubbleStats
}

// LayerResult is the outcome of a single layer.
type LayerResult struct {
	Name string

	// Applied is true if the layer painted anything.
	Applied bool

	// Skipped is set if the layer failed.  Its changes have then been
	// discarded.
	Skipped error

	// Particles counts the scattered elements drawn by the bubble and
	// minerality layers.
	Particles int
}

// Layer returns the result for the named layer.
func (r *Report) Layer(name string) (LayerResult, bool) {
	for _, l := range r.Layers {
		if l.Name == name {
			return l, true
		}
	}
	return LayerResult{}, false
}

// Render renders the attributes and encodes the image.  An error is only
// returned if encoding fails.
func Render(attrs wine.Attributes, opts ...Option) ([]byte, *Report, error) {
	o := newOptions(opts)
	img, rep := render(attrs, o)

	buf := &bytes.Buffer{}
	if err := Encode(buf, img, o.format, o.jpegQuality); err != nil {
		return nil, rep, err
	}
	return buf.Bytes(), rep, nil
}

// RenderImage renders the attributes into a new image.  Out of range
// attribute values are clamped, and a layer which fails is left out of
// the image, so that an image is always produced.
func RenderImage(attrs wine.Attributes, opts ...Option) (*image.NRGBA, *Report) {
	return render(attrs, newOptions(opts))
}

// Encode writes img to w in the given format.  The quality is only used
// for JPEG.
func Encode(w io.Writer, img image.Image, f Format, quality int) error {
	var err error
	switch f {
	case PNG:
		err = imaging.Encode(w, img, imaging.PNG)
	case JPEG:
		err = imaging.Encode(w, img, imaging.JPEG, imaging.JPEGQuality(quality))
	default:
		err = fmt.Errorf("unsupported format %s", f)
	}
	if err != nil {
		return fmt.Errorf("winerender: encode %s: %w", f, err)
	}
	return nil
}

// layer is one step of the pipeline.  It reports whether it painted
// anything and how many particles it scattered.
type layer struct {
	name string
	draw func() (applied bool, particles int, err error)
}

func render(attrs wine.Attributes, o *options) (*image.NRGBA, *Report) {
	log := Logger()

	p := o.profile
	g := p.Geometry()
	if err := g.Check(); err != nil {
		log.Warn("invalid profile, using standard", "profile", p.Name, "err", err)
		p = Standard
		g = p.Geometry()
	}

	a := attrs.Normalize()
	base := a.Base()
	acidityWeight, depthWeight := a.Type.Weights()

	bubbleSeed := effects.BubbleSeed(g, a.Spritz*o.bubbleIntensity)
	bodySeed := effects.BodySeed(g, a.Body)
	mineralSeed := func(i int) uint32 {
		return effects.MineralSeed(g, a.MineralityNotes[i], i)
	}
	if o.fixedSeed {
		bubbleSeed = o.seed
		bodySeed = rng.Seed(o.seed, 1)
		mineralSeed = func(i int) uint32 { return rng.Seed(o.seed, 2, uint32(i)) }
	}

	rep := &Report{Profile: p, Seed: bubbleSeed}
	s := surface.New(p.Width, p.Height)

	always := func(err error) (bool, int, error) { return true, 0, err }
	applied := func(ok bool, err error) (bool, int, error) { return ok, 0, err }

	layers := []layer{
		{"background", func() (bool, int, error) {
			return always(effects.Background(s, g, base))
		}},
		{"base", func() (bool, int, error) {
			return always(effects.Base(s, g, base))
		}},
		{"notes", func() (bool, int, error) {
			return applied(effects.Notes(s, g, a.Notes()))
		}},
		{"body", func() (bool, int, error) {
			return applied(effects.Body(s, g, a.Body, bodySeed))
		}},
		{"acidity", func() (bool, int, error) {
			return applied(effects.Acidity(s, g, base, a.Acidity, acidityWeight))
		}},
		{"depth", func() (bool, int, error) {
			return applied(effects.Depth(s, g, a.Depth, depthWeight))
		}},
		{"sugar", func() (bool, int, error) {
			if o.sugar == SugarBar {
				return applied(effects.SugarBar(s, g, a.ResidualSugar))
			}
			return applied(effects.SugarGlow(s, g, a.ResidualSugar))
		}},
		{"barrel", func() (bool, int, error) {
			return applied(effects.Barrel(s, g, a.BarrelMaterial, a.BarrelIntensity))
		}},
		{"bubbles", func() (bool, int, error) {
			stats, err := effects.Bubbles(s, g, a.Spritz, o.bubbleIntensity, o.bubblePasses, bubbleSeed)
			rep.Bubbles = stats
			return stats.Stage != "", stats.Total(), err
		}},
		{"minerality", func() (bool, int, error) {
			total := 0
			for i, note := range a.MineralityNotes {
				n, err := effects.Minerality(s, g, note, mineralSeed(i))
				if err != nil {
					return false, 0, err
				}
				total += n
			}
			return total > 0, total, nil
		}},
	}

	for _, l := range layers {
		res := runLayer(s, l)
		if res.Skipped != nil {
			log.Warn("layer skipped", "layer", l.name, "err", res.Skipped)
			if l.name == "bubbles" {
				rep.Bubbles = effects.BubbleStats{}
			}
		} else {
			log.Debug("layer done", "layer", l.name,
				"applied", res.Applied, "particles", res.Particles)
		}
		rep.Layers = append(rep.Layers, res)
	}

	return s.Image(), rep
}

// runLayer applies a single layer.  If the layer fails or panics, the
// surface is rolled back to its state before the layer.
func runLayer(s *surface.Surface, l layer) (res LayerResult) {
	res.Name = l.name
	snap := s.Snapshot()

	defer func() {
		if r := recover(); r != nil {
			res.Skipped = fmt.Errorf("%s: panic: %v", l.name, r)
		}
		if res.Skipped != nil {
			s.Rollback(snap)
			res.Applied = false
			res.Particles = 0
		}
	}()

	applied, n, err := l.draw()
	if err == nil {
		err = s.Err()
	}
	res.Applied, res.Particles, res.Skipped = applied, n, err
	return res
}
