// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pick

import (
	"math/rand/v2"

	"cogentcore.org/timeline/base/errors"
	"cogentcore.org/timeline/colors"
)

// ErrColorSpaceExhausted is the panic value when no unused key color is left.
var ErrColorSpaceExhausted = errors.New("pick: color space exhausted")

// guardLevels is the number of channel values that are 1 mod 3.
const guardLevels = 85

// allocator chooses unused key colors from a lattice of admissible colors.
// Without the quantization guard the lattice is every color except white.
// With it, each channel is restricted to values that are 1 mod 3, so that
// the ±1 neighborhoods of any two admissible colors are disjoint.
type allocator struct {
	rng   *rand.Rand
	guard bool

	// n is the number of admissible colors.
	n int
}

func newAllocator(seed uint64, guard bool) allocator {
	a := allocator{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)), guard: guard}
	if guard {
		a.n = guardLevels * guardLevels * guardLevels
	} else {
		a.n = int(colors.WhiteKey)
	}
	return a
}

// key returns the i'th admissible color.
func (a *allocator) key(i int) colors.Key {
	if !a.guard {
		return colors.Key(i)
	}
	ch := func(d int) uint8 { return uint8(1 + 3*d) }
	b := i % guardLevels
	i /= guardLevels
	g := i % guardLevels
	r := i / guardLevels
	return colors.KeyFromChannels(ch(r), ch(g), ch(b))
}

// next returns an admissible color for which taken returns false,
// probing from a random start. It visits each admissible color at most
// once, and panics with [ErrColorSpaceExhausted] if all are taken.
func (a *allocator) next(taken func(colors.Key) bool) colors.Key {
	start := a.rng.IntN(a.n)
	for i := range a.n {
		k := a.key((start + i) % a.n)
		if !taken(k) {
			return k
		}
	}
	panic(ErrColorSpaceExhausted)
}
