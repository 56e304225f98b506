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
	"seehuhn.de/go/winerender/wine"
)

var baseCases = []TestCase{
	{Name: "red", Attrs: wine.Attributes{Type: wine.Red}},
	{Name: "white", Attrs: wine.Attributes{Type: wine.White}},
	{Name: "rose", Attrs: wine.Attributes{Type: wine.Rose}},
	{Name: "orange", Attrs: wine.Attributes{Type: wine.Orange}},
	{Name: "sparkling", Attrs: wine.Attributes{Type: wine.Sparkling}},
	{Name: "dessert", Attrs: wine.Attributes{Type: wine.Dessert}},
	{Name: "fortified", Attrs: wine.Attributes{Type: wine.Fortified}},
	{
		Name:  "custom_color",
		Attrs: wine.Attributes{Type: wine.Red, BaseColor: colorPtr(280, 0.6, 0.3)},
	},
	{Name: "legacy", Attrs: wine.Attributes{Type: wine.Red}, Profile: "legacy"},
}

var notesCases = []TestCase{
	{
		Name: "fruit_and_spice",
		Attrs: wine.Attributes{
			Type: wine.Red,
			FruitNotes: []wine.Note{
				note("cherry", color(350, 0.85, 0.6), 0.8),
				note("blackberry", color(280, 0.6, 0.25), 0.6),
			},
			NonFruitNotes: []wine.Note{
				note("oak", color(35, 0.5, 0.7), 0.7),
				note("tobacco", color(25, 0.6, 0.35), 0.4),
			},
		},
	},
	{
		Name: "single_note",
		Attrs: wine.Attributes{
			Type:       wine.White,
			FruitNotes: []wine.Note{note("lemon", color(55, 0.7, 1), 1)},
		},
	},
	{
		Name: "ten_notes",
		Attrs: wine.Attributes{
			Type: wine.Rose,
			FruitNotes: []wine.Note{
				note("strawberry", color(355, 0.8, 0.9), 0.9),
				note("raspberry", color(340, 0.75, 0.8), 0.7),
				note("cherry", color(350, 0.85, 0.6), 0.5),
				note("watermelon", color(5, 0.55, 0.95), 0.3),
				note("peach", color(30, 0.5, 1), 0.2),
			},
			NonFruitNotes: []wine.Note{
				note("rose", color(330, 0.4, 0.95), 0.8),
				note("herbs", color(100, 0.5, 0.6), 0.6),
				note("pepper", color(0, 0, 0.3), 0.4),
				note("mineral", color(210, 0.1, 0.7), 0.3),
				note("cream", color(45, 0.2, 1), 0.1),
			},
		},
	},
}

var coreCases = []TestCase{
	{Name: "acidity_white", Attrs: wine.Attributes{Type: wine.White, Acidity: 0.9}},
	{Name: "acidity_red", Attrs: wine.Attributes{Type: wine.Red, Acidity: 0.9}},
	{Name: "depth_red", Attrs: wine.Attributes{Type: wine.Red, Depth: 0.7}},
	{Name: "depth_dessert", Attrs: wine.Attributes{Type: wine.Dessert, Depth: 1}},
	{
		Name:  "acidity_and_depth",
		Attrs: wine.Attributes{Type: wine.Orange, Acidity: 0.6, Depth: 0.7},
	},
}

var sugarCases = []TestCase{
	{Name: "glow_low", Attrs: wine.Attributes{Type: wine.White, ResidualSugar: 10}},
	{Name: "glow_high", Attrs: wine.Attributes{Type: wine.Dessert, ResidualSugar: 100}},
	{Name: "bar_dry", Attrs: wine.Attributes{Type: wine.White, ResidualSugar: 2}, SugarBar: true},
	{Name: "bar_medium", Attrs: wine.Attributes{Type: wine.White, ResidualSugar: 45}, SugarBar: true},
	{Name: "bar_sweet", Attrs: wine.Attributes{Type: wine.Dessert, ResidualSugar: 320}, SugarBar: true},
}

var bodyCases = []TestCase{
	{Name: "silky", Attrs: wine.Attributes{Type: wine.Red, Body: 0.15}},
	{Name: "velvet", Attrs: wine.Attributes{Type: wine.Red, Body: 0.4}},
	{Name: "creamy", Attrs: wine.Attributes{Type: wine.White, Body: 0.6}},
	{Name: "opulent", Attrs: wine.Attributes{Type: wine.Red, Body: 0.8}},
	{Name: "maximal", Attrs: wine.Attributes{Type: wine.Fortified, Body: 1}},
}

var barrelCases = []TestCase{
	{
		Name:  "oak_light",
		Attrs: wine.Attributes{Type: wine.White, BarrelMaterial: wine.Oak, BarrelIntensity: 0.2},
	},
	{
		Name:  "oak_heavy",
		Attrs: wine.Attributes{Type: wine.Red, BarrelMaterial: wine.Oak, BarrelIntensity: 1},
	},
	{
		Name:  "stainless",
		Attrs: wine.Attributes{Type: wine.White, BarrelMaterial: wine.Stainless, BarrelIntensity: 0.7},
	},
	{
		Name:  "both",
		Attrs: wine.Attributes{Type: wine.Rose, BarrelMaterial: wine.Both, BarrelIntensity: 0.5},
	},
}

var bubbleCases = []TestCase{
	{Name: "still", Attrs: wine.Attributes{Type: wine.Sparkling, Spritz: 0.1}},
	{Name: "perlend", Attrs: wine.Attributes{Type: wine.Sparkling, Spritz: 0.3}},
	{Name: "spritzig", Attrs: wine.Attributes{Type: wine.Sparkling, Spritz: 0.6}},
	{Name: "stark_spritzig", Attrs: wine.Attributes{Type: wine.Sparkling, Spritz: 0.9}},
	{Name: "legacy", Attrs: wine.Attributes{Type: wine.Sparkling, Spritz: 0.9}, Profile: "legacy"},
}

var mineralityCases = []TestCase{
	{
		Name: "chalk",
		Attrs: wine.Attributes{
			Type: wine.White,
			MineralityNotes: []wine.MineralNote{
				{Material: wine.Chalk, Intensity: 0.3, Placement: 0.5},
			},
		},
	},
	{
		Name: "slate_rim",
		Attrs: wine.Attributes{
			Type: wine.White,
			MineralityNotes: []wine.MineralNote{
				{Material: wine.Slate, Intensity: 0.5, Placement: 0.9},
			},
		},
	},
	{
		Name: "forest_floor",
		Attrs: wine.Attributes{
			Type: wine.Red,
			MineralityNotes: []wine.MineralNote{
				{Material: wine.Forest, Intensity: 0.2, Placement: 0.3},
				{Material: wine.Fungi, Intensity: 0.15, Placement: 0.6},
				{Material: wine.Compost, Intensity: 0.1, Placement: 0.8},
			},
		},
	},
}
