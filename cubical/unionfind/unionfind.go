// Copyright 2020 Grail Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//    http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package unionfind implements a weighted, path-compressing union-find
// structure that additionally tracks, per component, the earliest ("elder")
// and latest birth time merged into it so far. It is used by the joint-pairs
// dimension-0 persistence algorithm to decide, on each merge, whether the
// merge closes a finite interval or simply extends a still-live class.
package unionfind

import "math"

func min(a, b float64) float64 { return math.Min(a, b) }
func max(a, b float64) float64 { return math.Max(a, b) }

// DSU is an array-based disjoint-set structure of fixed size. Elements are
// identified by their position, 0..Size()-1.
type DSU struct {
	parent  []int32
	birth   []float64
	timeMax []float64
}

// New returns a DSU with n elements, where element i starts as its own root
// with Birthtime(i) == TimeMax(i) == birth(i). birth is typically the grid's
// dimension-0 birth oracle; elements whose index does not correspond to a
// legal 0-cell may pass any value (e.g. the filtration's threshold) since
// they never participate in a Link.
func New(n int, birth func(i int32) float64) *DSU {
	d := &DSU{
		parent:  make([]int32, n),
		birth:   make([]float64, n),
		timeMax: make([]float64, n),
	}
	for i := range d.parent {
		d.parent[i] = int32(i)
		b := birth(int32(i))
		d.birth[i] = b
		d.timeMax[i] = b
	}
	return d
}

// Size returns the number of elements the DSU was constructed with.
func (d *DSU) Size() int { return len(d.parent) }

// Find returns the root of x's component, compressing the path from x to the
// root in two passes: first it walks to the root, then it relinks every node
// visited along the way directly to that root. Subsequent Find calls on any
// node along the original path are therefore O(1).
func (d *DSU) Find(x int32) int32 {
	y, z := x, d.parent[x]
	for z != y {
		y = z
		z = d.parent[y]
	}
	y = d.parent[x]
	for z != y {
		d.parent[x] = z
		x = y
		y = d.parent[x]
	}
	return z
}

// Birthtime returns the birth time recorded for x's current root.
func (d *DSU) Birthtime(x int32) float64 { return d.birth[x] }

// TimeMax returns the maximum birth time merged into x's current root so
// far.
func (d *DSU) TimeMax(x int32) float64 { return d.timeMax[x] }

// Link merges the components of x and y, applying the "elder rule": the
// side with the later birth is attached under the side with the earlier
// birth, so the surviving root always carries the earliest birth of the
// merged component. On a birth tie, x is linked under y (a deterministic but
// otherwise arbitrary convention fixed here so results are reproducible).
// Link is a no-op if x and y are already in the same component. x and y are
// element indices, not necessarily roots; Link finds their roots itself.
func (d *DSU) Link(x, y int32) {
	x = d.Find(x)
	y = d.Find(y)
	if x == y {
		return
	}
	switch {
	case d.birth[x] > d.birth[y]:
		d.parent[x] = y
		d.birth[y] = min(d.birth[x], d.birth[y])
		d.timeMax[y] = max(d.timeMax[x], d.timeMax[y])
	case d.birth[x] < d.birth[y]:
		d.parent[y] = x
		d.birth[x] = min(d.birth[x], d.birth[y])
		d.timeMax[x] = max(d.timeMax[x], d.timeMax[y])
	default:
		d.parent[x] = y
		d.timeMax[y] = max(d.timeMax[x], d.timeMax[y])
	}
}
