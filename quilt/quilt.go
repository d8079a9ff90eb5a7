// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

// Package quilt implements patch-based texture synthesis: Quilt tiles an
// output from randomly selected, overlap-blended patches of a source
// array using minimum-error boundary cuts, and Sample performs
// non-parametric pixel-by-pixel synthesis seeded from a small patch. The
// minimum-error cut is a Dijkstra search over an explicit heap comparator
// (container/heap, Len/Less/Swap/Push/Pop), applied to a raster seam
// instead of a graph shortest path.
package quilt

import (
	"container/heap"
	"math"
	"math/rand"

	"github.com/gazed/highmap/array"
	"github.com/gazed/highmap/boundary"
	"github.com/gazed/highmap/mathutil"
)

// Config bundles the tunables of one quilting run.
type Config struct {
	Tiling    [2]int
	PatchBase int
	Overlap   int
	Seed      int64
	// AllowTransforms permits flip/transpose variants of source patches
	// when sampling, improving coverage diversity of small sources.
	AllowTransforms bool
}

// DefaultConfig returns a Config with a modest 4x4 tiling of 32-cell
// patches and no overlap-band transforms. Pass Attr values to override
// individual fields:
//
//	cfg := DefaultConfig(WithTiling(2, 2), WithPatchOverlap(48, 8))
func DefaultConfig(attrs ...Attr) Config {
	cfg := Config{
		Tiling:    [2]int{4, 4},
		PatchBase: 32,
		Overlap:   8,
		Seed:      1,
	}
	for _, attr := range attrs {
		attr(&cfg)
	}
	return cfg
}

// Attr overrides one field of a Config.
type Attr func(*Config)

// WithTiling sets the number of patches placed along each axis.
func WithTiling(tx, ty int) Attr {
	return func(c *Config) { c.Tiling = [2]int{tx, ty} }
}

// WithPatchOverlap sets the patch base size and seam overlap width.
func WithPatchOverlap(patchBase, overlap int) Attr {
	return func(c *Config) {
		c.PatchBase = patchBase
		c.Overlap = overlap
	}
}

// WithSeed sets the deterministic RNG seed.
func WithSeed(seed int64) Attr {
	return func(c *Config) { c.Seed = seed }
}

// WithTransforms enables or disables flip/transpose patch variants.
func WithTransforms(allow bool) Attr {
	return func(c *Config) { c.AllowTransforms = allow }
}

// Quilt synthesizes an output of shape
// (Tiling[0]*PatchBase+Overlap, Tiling[1]*PatchBase+Overlap) from
// randomly selected patches of src, blended at each seam with a
// minimum-error cut.
func Quilt(src *array.Array, cfg Config) *array.Array {
	rng := rand.New(rand.NewSource(cfg.Seed))
	outNx := cfg.Tiling[0]*cfg.PatchBase + cfg.Overlap
	outNy := cfg.Tiling[1]*cfg.PatchBase + cfg.Overlap
	patchNx := cfg.PatchBase + cfg.Overlap
	patchNy := cfg.PatchBase + cfg.Overlap
	out := array.New(outNx, outNy)
	placed := array.New(outNx, outNy) // 1 where already written

	for tj := 0; tj < cfg.Tiling[1]; tj++ {
		for ti := 0; ti < cfg.Tiling[0]; ti++ {
			ox := ti * cfg.PatchBase
			oy := tj * cfg.PatchBase
			patch := randomPatch(src, patchNx, patchNy, rng, cfg.AllowTransforms)
			pasteWithCut(out, placed, patch, ox, oy, cfg.Overlap, ti > 0, tj > 0)
		}
	}
	return out
}

func randomPatch(src *array.Array, nx, ny int, rng *rand.Rand, allowTransforms bool) *array.Array {
	sx, sy := src.Nx(), src.Ny()
	if sx < nx {
		nx = sx
	}
	if sy < ny {
		ny = sy
	}
	oi := rng.Intn(maxi(sx-nx+1, 1))
	oj := rng.Intn(maxi(sy-ny+1, 1))
	patch := src.ExtractSlice(oi, oi+nx, oj, oj+ny)
	if allowTransforms {
		switch rng.Intn(4) {
		case 1:
			patch = boundary.FlipI(patch)
		case 2:
			patch = boundary.FlipJ(patch)
		case 3:
			patch = boundary.Transpose(patch)
		}
	}
	return patch
}

// pasteWithCut writes patch into out at (ox,oy), blending against the
// left neighbour's overlap band (if hasLeft) and the top neighbour's
// overlap band (if hasTop) with a minimum-error cut mask.
func pasteWithCut(out, placed, patch *array.Array, ox, oy, overlap int, hasLeft, hasTop bool) {
	nx, ny := patch.Nx(), patch.Ny()

	mask := array.NewFilled(nx, ny, 1)
	if hasLeft && overlap > 0 {
		cutMaskVertical(out, patch, ox, oy, overlap, mask)
	}
	if hasTop && overlap > 0 {
		cutMaskHorizontal(out, patch, ox, oy, overlap, mask)
	}

	for i := 0; i < nx; i++ {
		gx := ox + i
		if gx >= out.Nx() {
			continue
		}
		for j := 0; j < ny; j++ {
			gy := oy + j
			if gy >= out.Ny() {
				continue
			}
			if placed.At(gx, gy) == 0 {
				out.Set(gx, gy, patch.At(i, j))
			} else {
				m := mask.At(i, j)
				out.Set(gx, gy, out.At(gx, gy)*(1-m)+patch.At(i, j)*m)
			}
			placed.Set(gx, gy, 1)
		}
	}
}

// cutMaskVertical computes the minimum-error seam through the left
// overlap band (columns [0,overlap) of patch) via Dijkstra over 8-way
// connectivity restricted to columns i-1,i,i+1, stepping row by row from
// top to bottom, and zeroes mask to the left of the cut at each row
// (keep existing content there).
func cutMaskVertical(out, patch *array.Array, ox, oy, overlap int, mask *array.Array) {
	ny := patch.Ny()
	errBand := make([][]float64, ny)
	for j := 0; j < ny; j++ {
		errBand[j] = make([]float64, overlap)
		for i := 0; i < overlap; i++ {
			gx, gy := ox+i, oy+j
			d := out.At(gx, gy) - patch.At(i, j)
			errBand[j][i] = d * d
		}
	}
	path := minErrorPath(errBand, ny, overlap)
	for j := 0; j < ny; j++ {
		cut := path[j]
		for i := 0; i <= cut && i < overlap; i++ {
			mask.Set(i, j, 0)
		}
	}
	smoothColumnMask(mask, overlap)
}

// cutMaskHorizontal is the transposed equivalent of cutMaskVertical for
// the top overlap band: the seam steps column by column from left to
// right, shifting row by at most one each step.
func cutMaskHorizontal(out, patch *array.Array, ox, oy, overlap int, mask *array.Array) {
	nx := patch.Nx()
	errBand := make([][]float64, nx)
	for i := 0; i < nx; i++ {
		errBand[i] = make([]float64, overlap)
		for j := 0; j < overlap; j++ {
			gx, gy := ox+i, oy+j
			d := out.At(gx, gy) - patch.At(i, j)
			errBand[i][j] = d * d
		}
	}
	path := minErrorPath(errBand, nx, overlap)
	for i := 0; i < nx; i++ {
		cut := path[i]
		for j := 0; j <= cut && j < overlap; j++ {
			mask.Set(i, j, 0)
		}
	}
	smoothRowMask(mask, overlap)
}

// seamNode is one Dijkstra frontier entry: a (band depth, lane) pair and
// its accumulated error cost.
type seamNode struct {
	depth, lane int
	cost        float64
}

type seamHeap []seamNode

func (h seamHeap) Len() int            { return len(h) }
func (h seamHeap) Less(i, j int) bool   { return h[i].cost < h[j].cost }
func (h seamHeap) Swap(i, j int)        { h[i], h[j] = h[j], h[i] }
func (h *seamHeap) Push(x interface{})  { *h = append(*h, x.(seamNode)) }
func (h *seamHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// minErrorPath finds the minimum-cost path stepping through every depth
// index in [0,depth), choosing one lane in [0,lanes) at each step via
// 8-way connectivity restricted to lane-1,lane,lane+1 relative to the
// previous step, and returns the chosen lane at each depth index.
func minErrorPath(errBand [][]float64, depth, lanes int) []int {
	const inf = math.MaxFloat64 / 2
	dist := make([][]float64, depth)
	prevLane := make([][]int, depth)
	for d := 0; d < depth; d++ {
		dist[d] = make([]float64, lanes)
		prevLane[d] = make([]int, lanes)
		for l := range dist[d] {
			dist[d][l] = inf
			prevLane[d][l] = -1
		}
	}
	h := &seamHeap{}
	for l := 0; l < lanes; l++ {
		dist[0][l] = errBand[0][l]
		heap.Push(h, seamNode{depth: 0, lane: l, cost: dist[0][l]})
	}
	for h.Len() > 0 {
		cur := heap.Pop(h).(seamNode)
		if cur.cost > dist[cur.depth][cur.lane] {
			continue
		}
		if cur.depth == depth-1 {
			continue
		}
		for dl := -1; dl <= 1; dl++ {
			nl := cur.lane + dl
			if nl < 0 || nl >= lanes {
				continue
			}
			nd := cur.depth + 1
			cand := cur.cost + errBand[nd][nl]
			if cand < dist[nd][nl] {
				dist[nd][nl] = cand
				prevLane[nd][nl] = cur.lane
				heap.Push(h, seamNode{depth: nd, lane: nl, cost: cand})
			}
		}
	}

	bestLane, bestCost := 0, inf
	for l := 0; l < lanes; l++ {
		if dist[depth-1][l] < bestCost {
			bestCost = dist[depth-1][l]
			bestLane = l
		}
	}
	path := make([]int, depth)
	lane := bestLane
	for d := depth - 1; d >= 0; d-- {
		path[d] = lane
		if prevLane[d][lane] < 0 {
			break
		}
		lane = prevLane[d][lane]
	}
	return path
}

// smoothColumnMask softens the binary cut mask along each row's overlap
// band with a smoothstep ramp, so the seam blend tapers rather than
// switches abruptly.
func smoothColumnMask(mask *array.Array, overlap int) {
	for j := 0; j < mask.Ny(); j++ {
		for i := 0; i < overlap; i++ {
			if mask.At(i, j) == 0 {
				continue
			}
			t := float64(i) / float64(maxi(overlap-1, 1))
			mask.Set(i, j, mathutil.Smoothstep3(t))
		}
	}
}

func smoothRowMask(mask *array.Array, overlap int) {
	for i := 0; i < mask.Nx(); i++ {
		for j := 0; j < overlap; j++ {
			if mask.At(i, j) == 0 {
				continue
			}
			t := float64(j) / float64(maxi(overlap-1, 1))
			mask.Set(i, j, mathutil.Smoothstep3(t))
		}
	}
}

func maxi(a, b int) int {
	if a > b {
		return a
	}
	return b
}
