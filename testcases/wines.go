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

package testcases

import (
	"math"

	"seehuhn.de/go/winerender/wine"
)

// wineCases describe complete wines, with all layers active.
var wineCases = []TestCase{
	{
		Name: "bordeaux",
		Attrs: wine.Attributes{
			Type:          wine.Red,
			BaseColor:     colorPtr(345, 0.85, 0.45),
			Acidity:       0.6,
			Depth:         0.7,
			Body:          0.8,
			ResidualSugar: 0.3,
			FruitNotes: []wine.Note{
				note("cherry", color(350, 0.85, 0.6), 0.8),
				note("blackberry", color(280, 0.6, 0.25), 0.6),
			},
			NonFruitNotes: []wine.Note{
				note("oak", color(35, 0.5, 0.7), 0.7),
				note("tobacco", color(25, 0.6, 0.35), 0.4),
			},
			BarrelMaterial:  wine.Oak,
			BarrelIntensity: 0.6,
			MineralityNotes: []wine.MineralNote{
				{Material: wine.Forest, Intensity: 0.1, Placement: 0.4},
			},
		},
	},
	{
		Name: "riesling",
		Attrs: wine.Attributes{
			Type:          wine.White,
			Acidity:       0.9,
			Depth:         0.2,
			Body:          0.3,
			ResidualSugar: 35,
			FruitNotes: []wine.Note{
				note("lime", color(75, 0.7, 0.85), 0.8),
				note("peach", color(30, 0.5, 1), 0.5),
			},
			NonFruitNotes: []wine.Note{
				note("petrol", color(60, 0.2, 0.6), 0.3),
			},
			BarrelMaterial:  wine.Stainless,
			BarrelIntensity: 0.8,
			MineralityNotes: []wine.MineralNote{
				{Material: wine.Slate, Intensity: 0.4, Placement: 0.7},
			},
		},
		SugarBar: true,
	},
	{
		Name: "champagne",
		Attrs: wine.Attributes{
			Type:          wine.Sparkling,
			Acidity:       0.8,
			Body:          0.35,
			Spritz:        0.85,
			ResidualSugar: 8,
			FruitNotes: []wine.Note{
				note("apple", color(90, 0.5, 0.85), 0.6),
			},
			NonFruitNotes: []wine.Note{
				note("brioche", color(38, 0.45, 0.9), 0.7),
			},
			BarrelMaterial:  wine.Both,
			BarrelIntensity: 0.3,
			MineralityNotes: []wine.MineralNote{
				{Material: wine.Chalk, Intensity: 0.35, Placement: 0.5},
			},
		},
	},
	{
		Name: "port",
		Attrs: wine.Attributes{
			Type:          wine.Fortified,
			Depth:         0.9,
			Body:          0.95,
			ResidualSugar: 110,
			FruitNotes: []wine.Note{
				note("plum", color(300, 0.6, 0.35), 0.9),
				note("fig", color(330, 0.4, 0.4), 0.6),
			},
			NonFruitNotes: []wine.Note{
				note("chocolate", color(20, 0.7, 0.25), 0.7),
			},
			BarrelMaterial:  wine.Oak,
			BarrelIntensity: 0.9,
		},
	},
}

// edgeCases contain values outside their documented domain.  They must
// render like their clamped counterparts.
var edgeCases = []TestCase{
	{
		Name: "out_of_range",
		Attrs: wine.Attributes{
			Type:            "cider",
			Acidity:         -3,
			Depth:           7,
			Body:            1.5,
			Spritz:          2,
			ResidualSugar:   -20,
			BarrelMaterial:  "teak",
			BarrelIntensity: 9,
		},
	},
	{
		Name: "not_a_number",
		Attrs: wine.Attributes{
			Type:      wine.White,
			BaseColor: colorPtr(math.NaN(), 0.5, 0.5),
			Acidity:   math.NaN(),
			Body:      math.Inf(1),
			Spritz:    math.Inf(-1),
			FruitNotes: []wine.Note{
				note("void", color(math.Inf(1), math.NaN(), 2), math.NaN()),
			},
			MineralityNotes: []wine.MineralNote{
				{Material: "marble", Intensity: 1, Placement: 0.5},
				{Material: wine.Steel, Intensity: math.NaN(), Placement: math.Inf(1)},
			},
		},
	},
	{Name: "empty", Attrs: wine.Attributes{}},
}
