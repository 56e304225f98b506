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

// Package wine defines the tasting attributes that drive the renderer.
//
// Attribute values are produced by an external validation pipeline, but
// the renderer does not trust them: [Attributes.Normalize] maps every
// value into its documented domain before use.
package wine

import (
	"math"
	"strings"

	"seehuhn.de/go/winerender/hsv"
)

// Type is the style of a wine.
type Type string

// The known wine types.
const (
	Red       Type = "red"
	White     Type = "white"
	Rose      Type = "rose"
	Orange    Type = "orange"
	Sparkling Type = "sparkling"
	Dessert   Type = "dessert"
	Fortified Type = "fortified"
)

// typeDefaults holds the fallback base colour for each wine type.
var typeDefaults = map[Type]hsv.Color{
	Red:       {H: 345, S: 0.85, V: 0.45},
	White:     {H: 48, S: 0.35, V: 0.95},
	Rose:      {H: 355, S: 0.45, V: 0.88},
	Orange:    {H: 25, S: 0.65, V: 0.85},
	Sparkling: {H: 52, S: 0.15, V: 0.98},
	Dessert:   {H: 38, S: 0.75, V: 0.75},
	Fortified: {H: 15, S: 0.8, V: 0.3},
}

// Known reports whether t is one of the defined wine types.
func (t Type) Known() bool {
	_, ok := typeDefaults[t]
	return ok
}

// DefaultColor returns the base colour used when no explicit colour is
// given.  Unknown types use the colour of red wine.
func (t Type) DefaultColor() hsv.Color {
	if c, ok := typeDefaults[t]; ok {
		return c
	}
	return typeDefaults[Red]
}

// Weights returns the factors applied to acidity and depth before their
// thresholds are tested.  Red wines show little acidity and much depth,
// white wines the reverse.
func (t Type) Weights() (acidity, depth float64) {
	switch t {
	case White, Sparkling:
		return 1.0, 0.3
	case Rose, Orange:
		return 0.7, 0.5
	case Dessert:
		return 0.5, 0.8
	default: // red, fortified
		return 0.3, 1.0
	}
}

// Barrel is the material a wine was aged in.
type Barrel string

// The known barrel materials.
const (
	NoBarrel  Barrel = "none"
	Oak       Barrel = "oak"
	Stainless Barrel = "stainless"
	Both      Barrel = "both"
)

// Material names the mineral character of a wine.
type Material string

// The known minerality materials.
const (
	NoMaterial Material = "none"
	Chalk      Material = "chalk"
	Steel      Material = "steel"
	Stone      Material = "stone"
	Slate      Material = "slate"
	Forest     Material = "forest"
	Compost    Material = "compost"
	Fungi      Material = "fungi"
)

var materialColors = map[Material][3]uint8{
	Chalk:   {245, 235, 220},
	Steel:   {176, 196, 222},
	Stone:   {140, 140, 140},
	Slate:   {119, 136, 153},
	Forest:  {139, 90, 43},
	Compost: {160, 82, 45},
	Fungi:   {210, 180, 140},
}

// RGB returns the particle colour of a material.  The last result is false
// for "none" and for unknown materials.
func (m Material) RGB() (r, g, b uint8, ok bool) {
	c, ok := materialColors[m]
	return c[0], c[1], c[2], ok
}

// Note is an aroma or flavour, drawn as a coloured ring.
type Note struct {
	Name      string    `yaml:"name" json:"name"`
	Color     hsv.Color `yaml:"color" json:"color"`
	Intensity float64   `yaml:"intensity" json:"intensity"`
}

// MineralNote is a mineral impression, drawn as scattered sparkles.
type MineralNote struct {
	Material  Material `yaml:"material" json:"material"`
	Intensity float64  `yaml:"intensity" json:"intensity"`

	// Placement is the preferred radial position of the sparkles, from 0
	// at the centre of the glass to 1 at the rim.
	Placement float64 `yaml:"placement" json:"placement"`
}

// Limits on the number of notes that are drawn.
const (
	MaxFruitNotes    = 5
	MaxNonFruitNotes = 5
	MaxMineralNotes  = 3
)

// MaxResidualSugar is the upper end of the residual sugar scale, in g/L.
const MaxResidualSugar = 500

// Attributes is the complete description of a wine for one rendering.
type Attributes struct {
	Type Type `yaml:"wineType" json:"wineType"`

	// BaseColor overrides the default colour of the wine type.
	BaseColor *hsv.Color `yaml:"baseColor" json:"baseColor"`

	Acidity float64 `yaml:"acidity" json:"acidity"`
	Depth   float64 `yaml:"depth" json:"depth"`
	Body    float64 `yaml:"body" json:"body"`
	Spritz  float64 `yaml:"spritz" json:"spritz"`

	// ResidualSugar is given in g/L.  The glow indicator uses the range
	// 0 to 100, the bar indicator the range 0 to MaxResidualSugar.
	ResidualSugar float64 `yaml:"residualSugar" json:"residualSugar"`

	FruitNotes    []Note `yaml:"fruitNotes" json:"fruitNotes"`
	NonFruitNotes []Note `yaml:"nonFruitNotes" json:"nonFruitNotes"`

	BarrelMaterial  Barrel  `yaml:"barrelMaterial" json:"barrelMaterial"`
	BarrelIntensity float64 `yaml:"barrelIntensity" json:"barrelIntensity"`

	MineralityNotes []MineralNote `yaml:"mineralityNotes" json:"mineralityNotes"`
}

// Normalize returns a copy of a with every value mapped into its domain:
// scalars are clamped, NaN becomes 0, unknown wine types become red and
// unknown barrel materials become "none".  Note lists are truncated to
// their maximum length.  Unknown mineral materials are kept, and are
// skipped when drawing.
func (a Attributes) Normalize() Attributes {
	out := Attributes{
		Type:            normalizeType(a.Type),
		Acidity:         unit(a.Acidity),
		Depth:           unit(a.Depth),
		Body:            unit(a.Body),
		Spritz:          unit(a.Spritz),
		ResidualSugar:   clamp(a.ResidualSugar, 0, MaxResidualSugar),
		FruitNotes:      normalizeNotes(a.FruitNotes, MaxFruitNotes),
		NonFruitNotes:   normalizeNotes(a.NonFruitNotes, MaxNonFruitNotes),
		BarrelMaterial:  normalizeBarrel(a.BarrelMaterial),
		BarrelIntensity: unit(a.BarrelIntensity),
	}
	if a.BaseColor != nil && a.BaseColor.IsFinite() {
		c := a.BaseColor.Clamp()
		out.BaseColor = &c
	}
	for i, m := range a.MineralityNotes {
		if i == MaxMineralNotes {
			break
		}
		out.MineralityNotes = append(out.MineralityNotes, MineralNote{
			Material:  Material(strings.ToLower(strings.TrimSpace(string(m.Material)))),
			Intensity: unit(m.Intensity),
			Placement: unit(m.Placement),
		})
	}
	return out
}

// Base returns the base colour of the wine: the explicit colour if set,
// and the default for the wine type otherwise.
func (a Attributes) Base() hsv.Color {
	if a.BaseColor != nil {
		return *a.BaseColor
	}
	return a.Type.DefaultColor()
}

// Notes returns the fruit notes followed by the non-fruit notes.
func (a Attributes) Notes() []Note {
	notes := make([]Note, 0, len(a.FruitNotes)+len(a.NonFruitNotes))
	notes = append(notes, a.FruitNotes...)
	return append(notes, a.NonFruitNotes...)
}

func normalizeType(t Type) Type {
	t = Type(strings.ToLower(strings.TrimSpace(string(t))))
	if t == "rosé" {
		t = Rose
	}
	if !t.Known() {
		return Red
	}
	return t
}

func normalizeBarrel(b Barrel) Barrel {
	b = Barrel(strings.ToLower(strings.TrimSpace(string(b))))
	switch b {
	case Oak, Stainless, Both:
		return b
	default:
		return NoBarrel
	}
}

func normalizeNotes(notes []Note, limit int) []Note {
	if len(notes) == 0 {
		return nil
	}
	out := make([]Note, 0, min(len(notes), limit))
	for i, n := range notes {
		if i == limit {
			break
		}
		out = append(out, Note{
			Name:      n.Name,
			Color:     n.Color.Clamp(),
			Intensity: unit(n.Intensity),
		})
	}
	return out
}

// unit clamps x to [0, 1], mapping NaN to 0.
func unit(x float64) float64 {
	return clamp(x, 0, 1)
}

func clamp(x, lo, hi float64) float64 {
	if math.IsNaN(x) {
		return lo
	}
	return max(lo, min(hi, x))
}
