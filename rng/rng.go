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

// Package rng provides the small deterministic random number generator
// used for scattered effects such as bubbles and mineral sparkles.
//
// Generators never share state.  Every effect constructs its own
// generator from a seed, and seeds are derived from the inputs of the
// effect with [Seed], so that identical inputs give identical images.
package rng

import (
	"encoding/binary"
	"hash/fnv"
	"math"
)

// Rand is a mulberry32 generator.  The zero value is a valid generator
// with seed 0.
type Rand struct {
	state uint32
}

// New returns a generator with the given seed.
func New(seed uint32) *Rand {
	return &Rand{state: seed}
}

// Uint32 returns the next 32 bits of the stream.
func (r *Rand) Uint32() uint32 {
	r.state += 0x6d2b79f5
	t := r.state
	t = (t ^ t>>15) * (t | 1)
	t ^= t + (t^t>>7)*(t|61)
	return t ^ t>>14
}

// Float64 returns a number in [0, 1).  Only 32 bits of randomness are used.
func (r *Rand) Float64() float64 {
	return float64(r.Uint32()) / (1 << 32)
}

// Range returns a number in [lo, hi).
func (r *Rand) Range(lo, hi float64) float64 {
	return lo + (hi-lo)*r.Float64()
}

// Pow returns Float64() raised to the power exp.  Exponents below 1 push
// the values towards 1.
func (r *Rand) Pow(exp float64) float64 {
	return math.Pow(r.Float64(), exp)
}

// Intn returns an integer in [0, n).  It panics if n <= 0.
func (r *Rand) Intn(n int) int {
	if n <= 0 {
		panic("rng: invalid argument to Intn")
	}
	return int(r.Float64() * float64(n))
}

// Chance reports true with probability p.
func (r *Rand) Chance(p float64) bool {
	return r.Float64() < p
}

// Seed folds the given values into a 32-bit seed using FNV-1a.  Each value
// contributes its four little-endian bytes.
func Seed(values ...uint32) uint32 {
	h := fnv.New32a()
	var buf [4]byte
	for _, v := range values {
		binary.LittleEndian.PutUint32(buf[:], v)
		h.Write(buf[:])
	}
	return h.Sum32()
}

// Scaled quantises v for use with [Seed]: the value is multiplied by scale,
// rounded down and truncated to 32 bits.  Non-finite values map to 0.
func Scaled(v, scale float64) uint32 {
	x := math.Floor(v * scale)
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return 0
	}
	return uint32(int64(x))
}
