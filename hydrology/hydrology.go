// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

// Package hydrology implements D8/D-infinity flow direction and
// accumulation, and priority-flood depression filling. Flow accumulation
// walks the flow DAG in topological order: cells with no upstream donor
// are queued first, each popped cell hands its accumulation downstream,
// and a cell joins the queue once all of its donors have been popped.
package hydrology

import (
	"container/heap"
	"math"

	"github.com/gazed/highmap/array"
	"github.com/gazed/highmap/boundary"
)

// Direction constants for the eight D8 neighbours.
const (
	None Direction = iota
	North
	NE
	East
	SE
	South
	SW
	West
	NW
)

// Direction indexes one of the eight D8 neighbours, or None at a sink.
type Direction int

var offsets = [9][2]int{
	None:  {0, 0},
	North: {0, 1},
	NE:    {1, 1},
	East:  {1, 0},
	SE:    {1, -1},
	South: {0, -1},
	SW:    {-1, -1},
	West:  {-1, 0},
	NW:    {-1, 1},
}

var weights = [9]float64{
	North: 1, East: 1, South: 1, West: 1,
	NE: 1 / math.Sqrt2, SE: 1 / math.Sqrt2, SW: 1 / math.Sqrt2, NW: 1 / math.Sqrt2,
}

// D8Direction computes, for every interior cell, the direction of
// steepest drop (z(i,j)-z(nbr))*w weighted by 1 for cardinal neighbours
// and 1/sqrt2 for diagonals. Borders are filled by extrapolation.
func D8Direction(z *array.Array) *array.Array {
	nx, ny := z.Nx(), z.Ny()
	dir := array.New(nx, ny)
	for i := 1; i < nx-1; i++ {
		for j := 1; j < ny-1; j++ {
			best := Direction(None)
			bestDrop := 0.0
			for d := North; d <= NW; d++ {
				off := offsets[d]
				drop := (z.At(i, j) - z.At(i+off[0], j+off[1])) * weights[d]
				if drop > bestDrop {
					bestDrop = drop
					best = d
				}
			}
			dir.Set(i, j, float64(best))
		}
	}
	boundary.ExtrapolateBorders(dir)
	return dir
}

// D8Accumulation computes flow accumulation from a D8 direction field:
// incoming-degree nidp is the count of neighbours whose D8 points at a
// cell; leaves (nidp==0) seed a candidate queue, each popped cell adds
// its own accumulation to its downstream neighbour and decrements that
// neighbour's nidp, enqueuing it once it reaches zero. This terminates
// in one linear pass per cell and visits cells in a topological order of
// the flow DAG.
func D8Accumulation(dir *array.Array) *array.Array {
	nx, ny := dir.Nx(), dir.Ny()
	acc := array.NewFilled(nx, ny, 1)
	nidp := make([]int, nx*ny)
	downI := make([]int, nx*ny)
	downJ := make([]int, nx*ny)
	hasDown := make([]bool, nx*ny)

	for i := 0; i < nx; i++ {
		for j := 0; j < ny; j++ {
			d := Direction(dir.At(i, j))
			if d == None {
				continue
			}
			off := offsets[d]
			di, dj := i+off[0], j+off[1]
			if di < 0 || di >= nx || dj < 0 || dj >= ny {
				continue
			}
			downI[i*ny+j] = di
			downJ[i*ny+j] = dj
			hasDown[i*ny+j] = true
			nidp[di*ny+dj]++
		}
	}

	queue := make([]int, 0, nx*ny)
	for i := 0; i < nx; i++ {
		for j := 0; j < ny; j++ {
			if nidp[i*ny+j] == 0 {
				queue = append(queue, i*ny+j)
			}
		}
	}
	for len(queue) > 0 {
		idx := queue[0]
		queue = queue[1:]
		i, j := idx/ny, idx%ny
		if !hasDown[idx] {
			continue
		}
		di, dj := downI[idx], downJ[idx]
		acc.Set(di, dj, acc.At(di, dj)+acc.At(i, j))
		nidp[di*ny+dj]--
		if nidp[di*ny+dj] == 0 {
			queue = append(queue, di*ny+dj)
		}
	}
	return acc
}

// dInfFacet describes one of the eight triangular facets around a cell,
// used by DInfinityAccumulation's steepest-descent routing.
type dInfFacet struct {
	d1, d2 Direction
}

var dInfFacets = []dInfFacet{
	{East, NE}, {NE, North}, {North, NW}, {NW, West},
	{West, SW}, {SW, South}, {South, SE}, {SE, East},
}

// DInfinityAccumulation computes fractional flow accumulation: each
// cell's descent direction is the steepest triangular facet among its
// eight neighbour pairs, and its accumulation is split between the two
// neighbours bounding that facet in proportion to the drop to each,
// propagated with the same topological walk D8Accumulation uses (partial
// weights in place of unit hand-off).
func DInfinityAccumulation(z *array.Array) *array.Array {
	nx, ny := z.Nx(), z.Ny()
	acc := array.NewFilled(nx, ny, 1)
	wTo := make([]map[int]float64, nx*ny)
	nidp := make([]int, nx*ny)

	for i := 1; i < nx-1; i++ {
		for j := 1; j < ny-1; j++ {
			idx := i*ny + j
			bestSlope := 0.0
			var bestFacet dInfFacet
			found := false
			for _, f := range dInfFacets {
				o1, o2 := offsets[f.d1], offsets[f.d2]
				z1 := z.At(i+o1[0], j+o1[1])
				z2 := z.At(i+o2[0], j+o2[1])
				s1 := z.At(i, j) - z1
				s2 := z.At(i, j) - z2
				slope := math.Max(s1, s2)
				if slope > bestSlope {
					bestSlope = slope
					bestFacet = f
					found = true
				}
			}
			if !found {
				continue
			}
			o1, o2 := offsets[bestFacet.d1], offsets[bestFacet.d2]
			z1 := z.At(i+o1[0], j+o1[1])
			z2 := z.At(i+o2[0], j+o2[1])
			s1 := math.Max(z.At(i, j)-z1, 0)
			s2 := math.Max(z.At(i, j)-z2, 0)
			total := s1 + s2
			if total <= 0 {
				continue
			}
			p1 := s1 / total
			p2 := s2 / total
			idx1 := (i+o1[0])*ny + (j + o1[1])
			idx2 := (i+o2[0])*ny + (j + o2[1])
			wTo[idx] = map[int]float64{idx1: p1, idx2: p2}
			nidp[idx1]++
			nidp[idx2]++
		}
	}

	queue := make([]int, 0, nx*ny)
	for idx := 0; idx < nx*ny; idx++ {
		if nidp[idx] == 0 {
			queue = append(queue, idx)
		}
	}
	remaining := make([]int, nx*ny)
	copy(remaining, nidp)
	for len(queue) > 0 {
		idx := queue[0]
		queue = queue[1:]
		for down, w := range wTo[idx] {
			di, dj := down/ny, down%ny
			acc.Set(di, dj, acc.At(di, dj)+acc.Data[idx]*w)
			remaining[down]--
			if remaining[down] == 0 {
				queue = append(queue, down)
			}
		}
	}
	return acc
}

// fillItem is a priority-flood queue entry.
type fillItem struct {
	idx int
	z   float64
}

type fillHeap []fillItem

func (h fillHeap) Len() int           { return len(h) }
func (h fillHeap) Less(i, j int) bool  { return h[i].z < h[j].z }
func (h fillHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *fillHeap) Push(x interface{}) { *h = append(*h, x.(fillItem)) }
func (h *fillHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// FillDepressions runs a priority-flood: the boundary cells seed the
// queue at their current elevations; each popped cell visits its
// unvisited neighbours, raising each to at least the popped cell's
// elevation before re-inserting it. Returns a new, depression-free
// array; z is left unmodified.
func FillDepressions(z *array.Array) *array.Array {
	nx, ny := z.Nx(), z.Ny()
	out := z.Clone()
	visited := make([]bool, nx*ny)
	h := make(fillHeap, 0, nx*ny)
	for i := 0; i < nx; i++ {
		for j := 0; j < ny; j++ {
			if i == 0 || i == nx-1 || j == 0 || j == ny-1 {
				idx := i*ny + j
				visited[idx] = true
				heap.Push(&h, fillItem{idx: idx, z: out.At(i, j)})
			}
		}
	}
	for h.Len() > 0 {
		cur := heap.Pop(&h).(fillItem)
		ci, cj := cur.idx/ny, cur.idx%ny
		for d := North; d <= NW; d++ {
			off := offsets[d]
			ni, nj := ci+off[0], cj+off[1]
			if ni < 0 || ni >= nx || nj < 0 || nj >= ny {
				continue
			}
			idx := ni*ny + nj
			if visited[idx] {
				continue
			}
			visited[idx] = true
			z2 := out.At(ni, nj)
			if z2 < cur.z {
				z2 = cur.z
				out.Set(ni, nj, z2)
			}
			heap.Push(&h, fillItem{idx: idx, z: z2})
		}
	}
	return out
}
