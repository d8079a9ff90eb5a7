// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package filters

import (
	"container/heap"
	"math"
	"math/rand"

	"github.com/gazed/highmap/array"
)

// talusItem is a single queued cell: its flat index and the elevation it
// was queued with. Stale entries (elevation no longer matching the
// array's current value) are skipped on pop, the standard container/heap
// lazy-deletion idiom.
type talusItem struct {
	idx int
	z   float64
}

// talusHeap is a min-heap over talusItem by elevation, implementing the
// explicit Len/Less/Swap/Push/Pop container/heap interface.
type talusHeap []talusItem

func (h talusHeap) Len() int            { return len(h) }
func (h talusHeap) Less(i, j int) bool   { return h[i].z < h[j].z }
func (h talusHeap) Swap(i, j int)        { h[i], h[j] = h[j], h[i] }
func (h *talusHeap) Push(x interface{})  { *h = append(*h, x.(talusItem)) }
func (h *talusHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

var neighbour8 = [8][3]float64{
	{-1, -1, math.Sqrt2}, {0, -1, 1}, {1, -1, math.Sqrt2},
	{-1, 0, 1} /*            */, {1, 0, 1},
	{-1, 1, math.Sqrt2}, {0, 1, 1}, {1, 1, math.Sqrt2},
}

// FillTalus builds the min-heap over every cell, border included, and, for each
// popped cell, raises every neighbour to at least z(cur) - d*talus*jitter
// (jitter uniform in [1-noiseRatio, 1+noiseRatio]), re-enqueuing any
// neighbour it raises, until the queue empties. Deterministic given seed
// and single-threaded execution.
func FillTalus(a *array.Array, talus, noiseRatio float64, seed int64) {
	rng := rand.New(rand.NewSource(seed))
	nx, ny := a.Nx(), a.Ny()
	h := make(talusHeap, 0, nx*ny)
	for i := 0; i < nx; i++ {
		for j := 0; j < ny; j++ {
			h = append(h, talusItem{idx: i*ny + j, z: a.At(i, j)})
		}
	}
	heap.Init(&h)
	for h.Len() > 0 {
		cur := heap.Pop(&h).(talusItem)
		ci, cj := cur.idx/ny, cur.idx%ny
		if a.At(ci, cj) != cur.z {
			continue // stale entry, superseded by a later push
		}
		for _, n := range neighbour8 {
			ni, nj := ci+int(n[0]), cj+int(n[1])
			if ni < 0 || ni >= nx || nj < 0 || nj >= ny {
				continue
			}
			d := n[2]
			jitter := 1 - noiseRatio + rng.Float64()*2*noiseRatio
			candidate := cur.z - d*talus*jitter
			if candidate > a.At(ni, nj) {
				a.Set(ni, nj, candidate)
				heap.Push(&h, talusItem{idx: ni*ny + nj, z: candidate})
			}
		}
	}
}

// ExpandTalus runs a priority-flood seeded at every cell where mask is
// positive: neighbours are admitted in ascending elevation and each
// newly reached neighbour is raised to z(parent) + talus*d*jitter, with
// jitter uniform in [1-noiseRatio, 1+noiseRatio]. Excludes a 2-cell
// border.
func ExpandTalus(a, mask *array.Array, talus, noiseRatio float64, seed int64) {
	rng := rand.New(rand.NewSource(seed))
	nx, ny := a.Nx(), a.Ny()
	if nx < 5 || ny < 5 {
		return
	}
	visited := make([]bool, nx*ny)
	h := make(talusHeap, 0, nx*ny)
	for i := 2; i < nx-2; i++ {
		for j := 2; j < ny-2; j++ {
			if mask.At(i, j) > 0 {
				idx := i*ny + j
				visited[idx] = true
				heap.Push(&h, talusItem{idx: idx, z: a.At(i, j)})
			}
		}
	}
	for h.Len() > 0 {
		cur := heap.Pop(&h).(talusItem)
		ci, cj := cur.idx/ny, cur.idx%ny
		for _, n := range neighbour8 {
			ni, nj := ci+int(n[0]), cj+int(n[1])
			if ni < 2 || ni >= nx-2 || nj < 2 || nj >= ny-2 {
				continue
			}
			idx := ni*ny + nj
			if visited[idx] {
				continue
			}
			d := n[2]
			jitter := 1 - noiseRatio + rng.Float64()*2*noiseRatio
			z := a.At(ci, cj) + talus*d*jitter
			a.Set(ni, nj, z)
			visited[idx] = true
			heap.Push(&h, talusItem{idx: idx, z: z})
		}
	}
}
