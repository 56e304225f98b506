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

package surface

import "math"

// Mode selects how newly painted colour combines with the existing pixels.
type Mode int

// The blend modes follow the separable blend modes of the W3C compositing
// specification, all using source-over alpha compositing.  Lighter adds
// the premultiplied colours of source and backdrop.
const (
	Normal Mode = iota
	Multiply
	Screen
	Overlay
	SoftLight
	Lighter
)

func (m Mode) String() string {
	switch m {
	case Normal:
		return "normal"
	case Multiply:
		return "multiply"
	case Screen:
		return "screen"
	case Overlay:
		return "overlay"
	case SoftLight:
		return "soft-light"
	case Lighter:
		return "lighter"
	default:
		return "unknown"
	}
}

// blend computes B(cb, cs) for one channel.
func (m Mode) blend(cb, cs float64) float64 {
	switch m {
	case Multiply:
		return cb * cs
	case Screen:
		return cb + cs - cb*cs
	case Overlay:
		// hard light with the roles of source and backdrop exchanged
		if cb <= 0.5 {
			return 2 * cs * cb
		}
		d := 2*cb - 1
		return cs + d - cs*d
	case SoftLight:
		if cs <= 0.5 {
			return cb - (1-2*cs)*cb*(1-cb)
		}
		var d float64
		if cb <= 0.25 {
			d = ((16*cb-12)*cb + 4) * cb
		} else {
			d = math.Sqrt(cb)
		}
		return cb + (2*cs-1)*(d-cb)
	default:
		return cs
	}
}

// composite combines source colour src, with effective opacity as, into
// the pixel p.
func (m Mode) composite(p []uint8, src RGBA, as float64) {
	ab := float64(p[3]) / 255
	cb := [3]float64{float64(p[0]) / 255, float64(p[1]) / 255, float64(p[2]) / 255}
	cs := [3]float64{src.R, src.G, src.B}

	if m == Lighter {
		ao := min(1, as+ab)
		if ao <= 0 {
			return
		}
		for i := range 3 {
			co := min(1, as*cs[i]+ab*cb[i])
			p[i] = unit8(co / ao)
		}
		p[3] = unit8(ao)
		return
	}

	ao := as + ab*(1-as)
	if ao <= 0 {
		return
	}
	for i := range 3 {
		mixed := (1-ab)*cs[i] + ab*m.blend(cb[i], cs[i])
		co := as*mixed + (1-as)*ab*cb[i]
		p[i] = unit8(co / ao)
	}
	p[3] = unit8(ao)
}

// unit8 maps [0, 1] to a byte, rounding to nearest.
func unit8(x float64) uint8 {
	if !(x > 0) {
		return 0
	}
	if x >= 1 {
		return 255
	}
	return uint8(x*255 + 0.5)
}
