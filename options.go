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

package winerender

import (
	"fmt"
	"strings"

	"github.com/disintegration/imaging"

	"seehuhn.de/go/winerender/effects"
)

// Profile fixes the canvas size and the layout of the wine disc.
type Profile struct {
	Name          string
	Width, Height int
	MaxRadius     float64
	CoreRadius    float64
	NoteMargin    float64
}

// The predefined profiles.
var (
	Standard = Profile{
		Name:       "standard",
		Width:      300,
		Height:     300,
		MaxRadius:  130,
		CoreRadius: 35,
		NoteMargin: 15,
	}
	Legacy = Profile{
		Name:       "legacy",
		Width:      200,
		Height:     200,
		MaxRadius:  86,
		CoreRadius: 23,
		NoteMargin: 10,
	}
)

// ProfileByName returns the predefined profile with the given name.
func ProfileByName(name string) (Profile, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", Standard.Name:
		return Standard, true
	case Legacy.Name:
		return Legacy, true
	default:
		return Profile{}, false
	}
}

// Geometry returns the layout of the profile, with the disc centred on
// the canvas.
func (p Profile) Geometry() effects.Geometry {
	return effects.NewGeometry(p.Width, p.Height, p.MaxRadius, p.CoreRadius, p.NoteMargin)
}

// Format is an output image format.
type Format int

// The supported output formats.
const (
	PNG Format = iota
	JPEG
)

func (f Format) String() string {
	switch f {
	case PNG:
		return "png"
	case JPEG:
		return "jpeg"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// ParseFormat converts a format name or file extension, like "png" or
// ".jpg", into a Format.
func ParseFormat(s string) (Format, error) {
	ext := strings.TrimSpace(s)
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	f, err := imaging.FormatFromExtension(ext)
	if err != nil {
		return 0, fmt.Errorf("winerender: %w", err)
	}
	switch f {
	case imaging.PNG:
		return PNG, nil
	case imaging.JPEG:
		return JPEG, nil
	default:
		return 0, fmt.Errorf("winerender: unsupported format %q", s)
	}
}

// SugarMode selects how residual sugar is shown.
type SugarMode int

// The sugar presentation modes.
const (
	// SugarGlow shows sugar as a pink glow in the lower part of the disc.
	SugarGlow SugarMode = iota

	// SugarBar shows sugar as a bar along the right edge of the canvas.
	SugarBar
)

func (m SugarMode) String() string {
	switch m {
	case SugarGlow:
		return "glow"
	case SugarBar:
		return "bar"
	default:
		return fmt.Sprintf("SugarMode(%d)", int(m))
	}
}

// ParseSugarMode converts "glow" or "bar" into a SugarMode.
func ParseSugarMode(s string) (SugarMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "glow":
		return SugarGlow, nil
	case "bar":
		return SugarBar, nil
	default:
		return 0, fmt.Errorf("winerender: unknown sugar mode %q", s)
	}
}

// DefaultJPEGQuality is the JPEG quality used unless set with
// [WithJPEGQuality].
const DefaultJPEGQuality = 90

type options struct {
	profile         Profile
	format          Format
	jpegQuality     int
	sugar           SugarMode
	seed            uint32
	fixedSeed       bool
	bubbleIntensity float64
	bubblePasses    effects.Passes
}

func newOptions(opts []Option) *options {
	o := &options{
		profile:         Standard,
		format:          PNG,
		jpegQuality:     DefaultJPEGQuality,
		sugar:           SugarGlow,
		bubbleIntensity: 1,
		bubblePasses:    effects.AllPasses,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Option configures a rendering.
type Option func(*options)

// WithProfile selects the canvas layout.  The default is [Standard].
func WithProfile(p Profile) Option {
	return func(o *options) { o.profile = p }
}

// WithFormat selects the output format of [Render].  The default is PNG.
func WithFormat(f Format) Option {
	return func(o *options) { o.format = f }
}

// WithJPEGQuality sets the JPEG quality, from 1 to 100.
func WithJPEGQuality(q int) Option {
	return func(o *options) { o.jpegQuality = max(1, min(100, q)) }
}

// WithSugarMode selects how residual sugar is shown.  The default is
// [SugarGlow].
func WithSugarMode(m SugarMode) Option {
	return func(o *options) { o.sugar = m }
}

// WithSeed fixes the seed of all random scatter effects.  Without this
// option the seeds are derived from the geometry and the attribute values.
func WithSeed(seed uint32) Option {
	return func(o *options) {
		o.seed = seed
		o.fixedSeed = true
	}
}

// WithBubbleIntensity scales the effervescence used by the bubble layer.
// The default is 1.
func WithBubbleIntensity(x float64) Option {
	return func(o *options) { o.bubbleIntensity = x }
}

// WithBubblePasses selects the passes of the bubble layer.  The default
// is [effects.AllPasses].
func WithBubblePasses(p effects.Passes) Option {
	return func(o *options) { o.bubblePasses = p }
}
