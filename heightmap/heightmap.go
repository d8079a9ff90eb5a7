// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package heightmap

import (
	"math"

	"github.com/gazed/highmap/algebra"
	"github.com/gazed/highmap/array"
	"github.com/gazed/highmap/dispatch"
	"github.com/gazed/highmap/mathutil"
)

// Heightmap is a mosaic of Tiles covering BBox in world coordinates,
// arranged Tiling[0] x Tiling[1] with pixel Shape per tile (before
// overlap) and Overlap as a fraction of a tile's base extent shared
// with its neighbours on internal seams.
type Heightmap struct {
	Shape   [2]int
	Tiling  [2]int
	Overlap float64
	BBox    algebra.BBox2
	Tiles   []*Tile
}

// New allocates a Heightmap with tx*ty tiles, each nx*ny pixels before
// overlap is applied, covering bbox.
func New(nx, ny, tx, ty int, overlap float64, bbox algebra.BBox2) *Heightmap {
	if tx < 1 {
		tx = 1
	}
	if ty < 1 {
		ty = 1
	}
	h := &Heightmap{
		Shape:   [2]int{nx, ny},
		Tiling:  [2]int{tx, ty},
		Overlap: overlap,
		BBox:    bbox,
		Tiles:   make([]*Tile, 0, tx*ty),
	}
	for j := 0; j < ty; j++ {
		for i := 0; i < tx; i++ {
			h.Tiles = append(h.Tiles, newTile(i, j, tx, ty, nx, ny, overlap, bbox))
		}
	}
	return h
}

// NewSingle builds a one-tile Heightmap, the common case for callers who
// do not need tiling.
func NewSingle(nx, ny int, bbox algebra.BBox2) *Heightmap {
	return New(nx, ny, 1, 1, 0, bbox)
}

// shapes, bboxes, and arrays adapt this heightmap's tiles to the
// dispatch package's per-call argument shape.
func (h *Heightmap) shapes() [][2]int {
	out := make([][2]int, len(h.Tiles))
	for i, t := range h.Tiles {
		out[i] = t.Shape
	}
	return out
}

func (h *Heightmap) bboxes() []algebra.BBox2 {
	out := make([]algebra.BBox2, len(h.Tiles))
	for i, t := range h.Tiles {
		out[i] = t.BBox
	}
	return out
}

func (h *Heightmap) arrays(others ...*Heightmap) [][]*array.Array {
	n := len(h.Tiles)
	out := make([][]*array.Array, n)
	for k := range out {
		row := make([]*array.Array, 1+len(others))
		row[0] = h.Tiles[k].Array
		for oi, o := range others {
			if o == nil {
				row[1+oi] = nil
			} else {
				row[1+oi] = o.Tiles[k].Array
			}
		}
		out[k] = row
	}
	return out
}

// Fill dispatches fct over every tile of h, writing each tile's result
// in place. fct receives the tile's own array (to write into), its
// shape, and its world bbox.
func (h *Heightmap) Fill(mode dispatch.Mode, fct func(a *array.Array, shape [2]int, bbox algebra.BBox2) error) error {
	return dispatch.Dispatch(mode, h.shapes(), h.bboxes(), h.arrays(), func(tiles []*array.Array, shape [2]int, bbox algebra.BBox2) error {
		return fct(tiles[0], shape, bbox)
	})
}

// Transform dispatches fct over every tile of h alongside the
// corresponding tiles of the given auxiliary heightmaps (e.g. a mask or
// a secondary noise field), in the same tile order. A nil entry in
// others is passed through as a nil array.
func (h *Heightmap) Transform(mode dispatch.Mode, others []*Heightmap, fct func(tiles []*array.Array, shape [2]int, bbox algebra.BBox2) error) error {
	return dispatch.Dispatch(mode, h.shapes(), h.bboxes(), h.arrays(others...), fct)
}

// ToArray flattens h to a single Array spanning its full pixel extent,
// discarding overlap: each tile contributes its core (non-overlapping)
// region only.
func (h *Heightmap) ToArray() *array.Array {
	tx, ty := h.Tiling[0], h.Tiling[1]
	nx, ny := h.Shape[0], h.Shape[1]
	out := array.New(nx*tx, ny*ty)
	for _, t := range h.Tiles {
		loI, loJ := overlapPixels(t.I, tx, h.Overlap, nx), overlapPixels(t.J, ty, h.Overlap, ny)
		for i := 0; i < nx; i++ {
			for j := 0; j < ny; j++ {
				out.Set(t.I*nx+i, t.J*ny+j, t.At(i+loI, j+loJ))
			}
		}
	}
	return out
}

// overlapPixels returns the pixel offset into a tile's buffered array at
// which its non-overlapping core begins along one axis.
func overlapPixels(p, n int, overlap float64, basePix int) int {
	if p == 0 {
		return 0
	}
	return int(math.Round(overlap * float64(basePix)))
}

// StitchOverlap blends each tile's overlap region with its neighbours
// using a quintic smoothstep weight r = smoothstep5(p/(Δ-1)), so that
// after stitching, a sample taken from either tile's overlap band agrees
// with its neighbour to within floating point error.
func (h *Heightmap) StitchOverlap() {
	if h.Overlap <= 0 {
		return
	}
	tx, ty := h.Tiling[0], h.Tiling[1]
	nx, ny := h.Shape[0], h.Shape[1]
	ovPix := int(math.Round(h.Overlap * float64(nx)))
	if ovPix < 1 {
		return
	}
	// Horizontal seams: blend tile (i,j)'s right overlap band with tile
	// (i+1,j)'s left overlap band.
	for j := 0; j < ty; j++ {
		for i := 0; i < tx-1; i++ {
			left := h.tileAt(i, j)
			right := h.tileAt(i+1, j)
			lw, lh := left.Nx(), left.Ny()
			rw := right.Nx()
			for p := 0; p < ovPix; p++ {
				r := mathutil.Smoothstep5(float64(p) / float64(maxInt(ovPix-1, 1)))
				srcCol := lw - ovPix + p
				dstCol := p
				for q := 0; q < lh; q++ {
					lv := left.At(srcCol, q)
					rv := right.At(dstCol, q)
					blended := lv*(1-r) + rv*r
					left.Set(srcCol, q, blended)
					right.Set(dstCol, q, blended)
				}
			}
			_ = rw
		}
	}
	// Vertical seams: blend tile (i,j)'s top overlap band with tile
	// (i,j+1)'s bottom overlap band.
	ovPixJ := int(math.Round(h.Overlap * float64(ny)))
	for i := 0; i < tx; i++ {
		for j := 0; j < ty-1; j++ {
			bottom := h.tileAt(i, j)
			top := h.tileAt(i, j+1)
			bh := bottom.Ny()
			for p := 0; p < ovPixJ; p++ {
				r := mathutil.Smoothstep5(float64(p) / float64(maxInt(ovPixJ-1, 1)))
				srcRow := bh - ovPixJ + p
				dstRow := p
				for k := 0; k < bottom.Nx(); k++ {
					bv := bottom.At(k, srcRow)
					tv := top.At(k, dstRow)
					blended := bv*(1-r) + tv*r
					bottom.Set(k, srcRow, blended)
					top.Set(k, dstRow, blended)
				}
			}
		}
	}
}

func (h *Heightmap) tileAt(i, j int) *Tile {
	return h.Tiles[j*h.Tiling[0]+i]
}

// Min returns the minimum value across every tile, restricted to each
// tile's non-overlapping core so that seam-duplicated samples are not
// double counted.
func (h *Heightmap) Min() float64 { return h.reduce(math.Inf(1), math.Min) }

// Max returns the maximum value across every tile's non-overlapping core.
func (h *Heightmap) Max() float64 { return h.reduce(math.Inf(-1), math.Max) }

func (h *Heightmap) reduce(init float64, op func(a, b float64) float64) float64 {
	acc := init
	tx, ty := h.Tiling[0], h.Tiling[1]
	nx, ny := h.Shape[0], h.Shape[1]
	for _, t := range h.Tiles {
		loI, loJ := overlapPixels(t.I, tx, h.Overlap, nx), overlapPixels(t.J, ty, h.Overlap, ny)
		for i := 0; i < nx; i++ {
			for j := 0; j < ny; j++ {
				acc = op(acc, t.At(i+loI, j+loJ))
			}
		}
	}
	return acc
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
