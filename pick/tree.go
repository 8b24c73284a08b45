// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package pick resolves pointer coordinates to interactive regions.
//
// Every interactive shape is drawn twice: once on a visible surface and
// once, in a flat color unique to its [Region], on a picking surface of
// the same size. Looking up the color of a single pixel of the picking
// surface then yields the topmost region at that point, without any
// retained scene graph.
//
// Surfaces form a [Tree]: child surfaces are used as offscreen buffers
// that are later composited onto a parent, and all of them register
// their key colors in the tables of the tree, so that colors are
// unique across the whole tree.
package pick

import (
	"image"
	"log/slog"

	"cogentcore.org/timeline/colors"
)

// SurfaceID is the index of a [Surface] within its [Tree].
type SurfaceID int

// RootID is the ID of the root surface of every tree.
const RootID SurfaceID = 0

// Options are the options for a new [Tree].
type Options struct {

	// QuantizationGuard registers the ±1 neighborhood of every key color
	// for hosts whose compositing can perturb exact colors.
	QuantizationGuard bool

	// Seed seeds the key color allocator.
	Seed uint64
}

// Tree is an arena of surfaces that share one table of key colors.
// The tables are cleared and rebuilt on every redraw generation,
// which starts with [Tree.Reset].
type Tree struct {
	opts Options

	surfaces []*Surface

	// keys maps every registered key color to its region.
	keys map[colors.Key]*Region

	// regions maps region IDs to the last region registered with that ID.
	regions map[string]*Region

	alloc allocator

	generation int
	count      int
}

// NewTree returns a new tree with a root surface of the given size.
func NewTree(width, height int, opts Options) *Tree {
	t := &Tree{
		opts:    opts,
		keys:    make(map[colors.Key]*Region),
		regions: make(map[string]*Region),
		alloc:   newAllocator(opts.Seed, opts.QuantizationGuard),
	}
	t.NewSurface(width, height)
	return t
}

// Root returns the root surface, which is the one pointer
// coordinates are resolved against.
func (t *Tree) Root() *Surface {
	return t.surfaces[RootID]
}

// NewSurface adds a new child surface of the given size.
func (t *Tree) NewSurface(width, height int) *Surface {
	s := newSurface(t, SurfaceID(len(t.surfaces)), width, height)
	t.surfaces = append(t.surfaces, s)
	return s
}

// Surface returns the surface with the given ID, or nil.
func (t *Tree) Surface(id SurfaceID) *Surface {
	if id < 0 || int(id) >= len(t.surfaces) {
		return nil
	}
	return t.surfaces[id]
}

// Surfaces returns the number of surfaces in the tree.
func (t *Tree) Surfaces() int {
	return len(t.surfaces)
}

// Generation returns the number of times [Tree.Reset] has been called.
func (t *Tree) Generation() int {
	return t.generation
}

// Len returns the number of regions registered in this generation.
func (t *Tree) Len() int {
	return t.count
}

// Reset starts a new generation: it clears the color and region tables
// and every surface, leaving the surfaces transparent and their
// picking images white.
func (t *Tree) Reset() {
	slog.Debug("pick: reset", "generation", t.generation, "regions", t.count)
	clear(t.keys)
	clear(t.regions)
	t.count = 0
	t.generation++
	for _, s := range t.surfaces {
		s.Clear(colors.Transparent)
	}
}

// register allocates a key color for the region and records it.
func (t *Tree) register(r *Region) colors.Key {
	k := t.alloc.next(func(k colors.Key) bool {
		_, ok := t.keys[k]
		return ok
	})
	if t.opts.QuantizationGuard {
		for _, nk := range k.Neighborhood() {
			t.keys[nk] = r
		}
	} else {
		t.keys[k] = r
	}
	t.regions[r.ID] = r
	t.count++
	return k
}

// Lookup returns the region registered for the given key color, or nil.
func (t *Tree) Lookup(k colors.Key) *Region {
	return t.keys[k]
}

// Region returns the region registered with the given ID in this
// generation, or nil.
func (t *Tree) Region(id string) *Region {
	if id == "" {
		return nil
	}
	return t.regions[id]
}

// Parent returns the parent of the given region, or nil.
func (t *Tree) Parent(r *Region) *Region {
	if r == nil || r.ParentID == "" || r.ParentID == r.ID {
		return nil
	}
	return t.Region(r.ParentID)
}

// RegionAt returns the region drawn topmost at the given root surface
// coordinates, or nil.
func (t *Tree) RegionAt(x, y int) *Region {
	return t.keys[t.Root().KeyAt(x, y)]
}

// ActiveRegion returns the region at the given root surface coordinates
// that handles any of the required handler kinds. If the region hit
// directly does not, the parent chain is walked until one does.
// With no required kinds it is the region hit directly.
func (t *Tree) ActiveRegion(x, y int, required ...HandlerKinds) *Region {
	for _, r := range t.ActiveRegions(x, y) {
		if r.HasAny(required...) {
			return r
		}
	}
	return nil
}

// ActiveRegions returns the region hit at the given root surface
// coordinates followed by its chain of parents.
func (t *Tree) ActiveRegions(x, y int) []*Region {
	r := t.RegionAt(x, y)
	var chain []*Region
	for r != nil && len(chain) < t.count {
		chain = append(chain, r)
		r = t.Parent(r)
	}
	return chain
}

// PickImage returns the picking image of the root surface.
func (t *Tree) PickImage() *image.RGBA {
	return t.Root().Pick.Image
}
