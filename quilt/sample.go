// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package quilt

import (
	"container/heap"
	"math"
	"math/rand"

	"github.com/gazed/highmap/array"
)

// SampleConfig bundles the tunables of one non-parametric synthesis run.
type SampleConfig struct {
	Shape      [2]int
	PatchShape [2]int
	// Threshold widens the acceptance band beyond the single best match:
	// any source window with SSD <= best*(1+Threshold) is a candidate.
	Threshold float64
	Seed      int64
}

// Sample grows an output of the given shape from src by non-parametric
// pixel synthesis: a small random patch seeds the canvas centre, then
// cells are filled in order of how many already-filled neighbours they
// have, each one copied from a source window whose local-context SSD
// (weighted by a smooth-cosine kernel) nearly matches the best found.
func Sample(src *array.Array, cfg SampleConfig) *array.Array {
	rng := rand.New(rand.NewSource(cfg.Seed))
	nx, ny := cfg.Shape[0], cfg.Shape[1]
	out := array.New(nx, ny)
	filled := make([]bool, nx*ny)
	idx := func(i, j int) int { return i*ny + j }

	ph, pw := cfg.PatchShape[0], cfg.PatchShape[1]
	seedSeam(src, out, filled, idx, ph, pw, rng)

	// smooth-cosine weight 0.5*(1+cos(pi*d)) over the window, d being the
	// distance from the window centre in units of half the window plus one
	weight := array.New(ph, pw)
	rw := float64(maxi(ph, pw)/2 + 1)
	for di := 0; di < ph; di++ {
		for dj := 0; dj < pw; dj++ {
			d := math.Hypot(float64(di-ph/2), float64(dj-pw/2)) / rw
			if d < 1 {
				weight.Set(di, dj, 0.5*(1+math.Cos(math.Pi*d)))
			}
		}
	}

	pq := &cellHeap{}
	heap.Init(pq)
	pushed := make([]bool, nx*ny)
	for i := 0; i < nx; i++ {
		for j := 0; j < ny; j++ {
			if filled[idx(i, j)] {
				continue
			}
			if n := filledNeighbourCount(filled, idx, nx, ny, i, j); n > 0 {
				heap.Push(pq, cellEntry{i: i, j: j, neighbours: n})
				pushed[idx(i, j)] = true
			}
		}
	}

	for pq.Len() > 0 {
		c := heap.Pop(pq).(cellEntry)
		if filled[idx(c.i, c.j)] {
			continue
		}
		n := filledNeighbourCount(filled, idx, nx, ny, c.i, c.j)
		if n != c.neighbours {
			// stale priority: neighbour count changed since push, requeue fresh
			heap.Push(pq, cellEntry{i: c.i, j: c.j, neighbours: n})
			continue
		}
		v := bestMatchValue(src, out, filled, idx, c.i, c.j, ph, pw, weight, cfg.Threshold, rng)
		out.Set(c.i, c.j, v)
		filled[idx(c.i, c.j)] = true

		for di := -1; di <= 1; di++ {
			for dj := -1; dj <= 1; dj++ {
				ni, nj := c.i+di, c.j+dj
				if ni < 0 || ni >= nx || nj < 0 || nj >= ny || filled[idx(ni, nj)] {
					continue
				}
				cnt := filledNeighbourCount(filled, idx, nx, ny, ni, nj)
				heap.Push(pq, cellEntry{i: ni, j: nj, neighbours: cnt})
			}
		}
	}
	return out
}

// seedSeam copies a small random patch from src into the centre of out
// to bootstrap the fill frontier.
func seedSeam(src, out *array.Array, filled []bool, idx func(i, j int) int, ph, pw int, rng *rand.Rand) {
	sx, sy := src.Nx(), src.Ny()
	ph = mini(ph, sx)
	pw = mini(pw, sy)
	oi := rng.Intn(maxi(sx-ph+1, 1))
	oj := rng.Intn(maxi(sy-pw+1, 1))
	patch := src.ExtractSlice(oi, oi+ph, oj, oj+pw)

	cx, cy := out.Nx()/2-ph/2, out.Ny()/2-pw/2
	for i := 0; i < ph; i++ {
		for j := 0; j < pw; j++ {
			gi, gj := cx+i, cy+j
			if gi < 0 || gi >= out.Nx() || gj < 0 || gj >= out.Ny() {
				continue
			}
			out.Set(gi, gj, patch.At(i, j))
			filled[idx(gi, gj)] = true
		}
	}
}

func filledNeighbourCount(filled []bool, idx func(i, j int) int, nx, ny, i, j int) int {
	n := 0
	for di := -1; di <= 1; di++ {
		for dj := -1; dj <= 1; dj++ {
			if di == 0 && dj == 0 {
				continue
			}
			ni, nj := i+di, j+dj
			if ni < 0 || ni >= nx || nj < 0 || nj >= ny {
				continue
			}
			if filled[idx(ni, nj)] {
				n++
			}
		}
	}
	return n
}

// bestMatchValue finds every patchShape-sized window in src whose SSD
// against the local (already-filled) context of out around (i,j) is
// within threshold of the minimum SSD found, then returns the centre
// value of a uniformly chosen candidate among them.
func bestMatchValue(src, out *array.Array, filled []bool, idx func(i, j int) int, i, j, ph, pw int, weight *array.Array, threshold float64, rng *rand.Rand) float64 {
	sx, sy := src.Nx(), src.Ny()
	hi, hj := ph/2, pw/2

	type candidate struct {
		ssd   float64
		value float64
	}
	var candidates []candidate
	best := -1.0

	for oi := 0; oi <= sx-ph; oi++ {
		for oj := 0; oj <= sy-pw; oj++ {
			ssd, ok := windowSSD(src, out, filled, idx, i, j, oi, oj, ph, pw, hi, hj, weight)
			if !ok {
				continue
			}
			if best < 0 || ssd < best {
				best = ssd
			}
			candidates = append(candidates, candidate{ssd: ssd, value: src.At(oi+hi, oj+hj)})
		}
	}
	if len(candidates) == 0 {
		return 0
	}

	var accepted []candidate
	cutoff := best * (1 + threshold)
	for _, c := range candidates {
		if c.ssd <= cutoff {
			accepted = append(accepted, c)
		}
	}
	if len(accepted) == 0 {
		accepted = candidates
	}
	return accepted[rng.Intn(len(accepted))].value
}

// windowSSD computes the weighted sum-of-squared-differences between
// the src window anchored at (oi,oj) and the already-filled cells of
// out's local context around (i,j), returning ok=false if no context
// cell is yet filled.
func windowSSD(src, out *array.Array, filled []bool, idx func(i, j int) int, i, j, oi, oj, ph, pw, hi, hj int, weight *array.Array) (float64, bool) {
	sum, wsum := 0.0, 0.0
	any := false
	for di := 0; di < ph; di++ {
		for dj := 0; dj < pw; dj++ {
			gi, gj := i+di-hi, j+dj-hj
			if gi < 0 || gi >= out.Nx() || gj < 0 || gj >= out.Ny() || !filled[idx(gi, gj)] {
				continue
			}
			any = true
			d := out.At(gi, gj) - src.At(oi+di, oj+dj)
			w := weight.At(mini(di, weight.Nx()-1), mini(dj, weight.Ny()-1))
			sum += w * d * d
			wsum += w
		}
	}
	if !any || wsum == 0 {
		return 0, false
	}
	return sum / wsum, true
}

type cellEntry struct {
	i, j, neighbours int
}

// cellHeap is a max-heap on neighbour count: the cell with the most
// already-filled neighbours is synthesized next.
type cellHeap []cellEntry

func (h cellHeap) Len() int            { return len(h) }
func (h cellHeap) Less(i, j int) bool  { return h[i].neighbours > h[j].neighbours }
func (h cellHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *cellHeap) Push(x interface{}) { *h = append(*h, x.(cellEntry)) }
func (h *cellHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

func mini(a, b int) int {
	if a < b {
		return a
	}
	return b
}
