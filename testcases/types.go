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

// Package testcases defines named wines used by the tests and by the
// image gallery.
package testcases

import (
	"seehuhn.de/go/winerender/hsv"
	"seehuhn.de/go/winerender/wine"
)

// TestCase defines a single rendering test.
type TestCase struct {
	Name  string // lowercase a-z, 0-9 and _ only
	Attrs wine.Attributes

	// Profile names the canvas layout; empty means the standard profile.
	Profile string

	// SugarBar selects the bar presentation of residual sugar instead of
	// the glow.
	SugarBar bool
}

// color is a helper to create an HSV colour.
func color(h, s, v float64) hsv.Color {
	return hsv.Color{H: h, S: s, V: v}
}

// colorPtr is like color, but returns a pointer for use as a base colour.
func colorPtr(h, s, v float64) *hsv.Color {
	c := color(h, s, v)
	return &c
}

func note(name string, c hsv.Color, intensity float64) wine.Note {
	return wine.Note{Name: name, Color: c, Intensity: intensity}
}
