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

package hsv

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestToRGB(t *testing.T) {
	cases := []struct {
		h, s, v float64
		r, g, b uint8
	}{
		{0, 1, 1, 255, 0, 0},
		{60, 1, 1, 255, 255, 0},
		{120, 1, 1, 0, 255, 0},
		{180, 1, 1, 0, 255, 255},
		{240, 1, 1, 0, 0, 255},
		{300, 1, 1, 255, 0, 255},
		{-60, 1, 1, 255, 0, 255},
		{420, 1, 1, 255, 255, 0},
		{0, 0, 0.5, 128, 128, 128},
		{345, 0.85, 0.45, 115, 17, 42},
	}
	for _, c := range cases {
		r, g, b := ToRGB(c.h, c.s, c.v)
		require.Equal(t, [3]uint8{c.r, c.g, c.b}, [3]uint8{r, g, b}, "hsv(%g, %g, %g)", c.h, c.s, c.v)
	}
}

func TestRoundTrip(t *testing.T) {
	samples := [][3]uint8{
		{255, 0, 0}, {0, 255, 0}, {0, 0, 255},
		{255, 255, 0}, {0, 255, 255}, {255, 0, 255},
		{0, 0, 0}, {255, 255, 255}, {128, 128, 128},
		{115, 17, 42}, {242, 229, 158}, {191, 120, 67},
	}
	for _, s := range samples {
		r, g, b := FromRGB(s[0], s[1], s[2]).RGB()
		require.InDelta(t, int(s[0]), int(r), 1)
		require.InDelta(t, int(s[1]), int(g), 1)
		require.InDelta(t, int(s[2]), int(b), 1)
	}
}

func TestBlendShortArc(t *testing.T) {
	a := Color{H: 350, S: 0.2, V: 0.4}
	b := Color{H: 10, S: 0.6, V: 0.8}

	mid := Blend(a, b, 0.5)
	require.InDelta(t, 0, mid.H, 1e-9)
	require.InDelta(t, 0.4, mid.S, 1e-9)
	require.InDelta(t, 0.6, mid.V, 1e-9)

	quarter := Blend(b, a, 0.25)
	require.InDelta(t, 5, quarter.H, 1e-9)

	require.Equal(t, a, Blend(a, b, 0))
	require.InDelta(t, b.H, Blend(a, b, 1).H, 1e-9)
	require.Equal(t, Blend(a, b, 1), Blend(a, b, 7))
}

func TestBlendAcidity(t *testing.T) {
	// white wine base moving towards the acidity green
	got := Blend(Color{H: 48, S: 0.35, V: 0.95}, Color{H: 85, S: 0.5, V: 0.7}, 0.4)
	require.InDelta(t, 62.8, got.H, 1e-9)
	require.InDelta(t, 0.41, got.S, 1e-9)
	require.InDelta(t, 0.85, got.V, 1e-9)
}

func TestClamp(t *testing.T) {
	c := Color{H: -30, S: 1.5, V: math.NaN()}.Clamp()
	require.Equal(t, Color{H: 330, S: 1, V: 0}, c)
	require.True(t, c.IsFinite())
	require.False(t, Color{H: math.Inf(1)}.IsFinite())
}

func TestHex(t *testing.T) {
	c, err := ParseHex("#ff0000")
	require.NoError(t, err)
	require.Equal(t, "#ff0000", c.Hex())
	require.InDelta(t, 0, c.H, 1e-9)

	_, err = ParseHex("burgundy")
	require.Error(t, err)
}
