// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

// Package heightmap implements Tile and Heightmap, the mosaic container
// every raster algorithm in the module ultimately operates through.
// Each tile's grid index maps deterministically to a shift/scale/bbox
// within the overall mosaic, supporting an arbitrary (tx,ty) tiling with
// configurable overlap.
package heightmap

import (
	"math"

	"github.com/gazed/highmap/algebra"
	"github.com/gazed/highmap/array"
)

// Tile is an Array plus the domain transform locating it within a
// Heightmap: Shift is its origin in heightmap-relative [0,1]^2
// coordinates, Scale is its extent in those coordinates (including
// overlap), and BBox is its extent in world coordinates.
type Tile struct {
	*array.Array
	Shift algebra.Vec2
	Scale algebra.Vec2
	BBox  algebra.BBox2

	// I, J are this tile's indices within the heightmap's tiling grid.
	I, J int
}

// newTile allocates a tile at grid index (i,j) within a (tx,ty) tiling,
// deriving shift/scale/bbox from the heightmap's overlap and world bbox.
// Its array holds the nxPix*nyPix core plus round(overlap*n) pixels on
// each internal side.
func newTile(i, j, tx, ty int, nxPix, nyPix int, overlap float64, hmBBox algebra.BBox2) *Tile {
	baseShiftX := float64(i) / float64(tx)
	baseShiftY := float64(j) / float64(ty)
	baseScaleX := 1.0 / float64(tx)
	baseScaleY := 1.0 / float64(ty)

	// overlap is added on internal sides only: a border tile on the low
	// side has no buffer there, and likewise on the high side.
	loX, hiX := overlapOn(i, tx, overlap)
	loY, hiY := overlapOn(j, ty, overlap)
	padX := int(math.Round(loX*float64(nxPix))) + int(math.Round(hiX*float64(nxPix)))
	padY := int(math.Round(loY*float64(nyPix))) + int(math.Round(hiY*float64(nyPix)))

	shiftX := baseShiftX - loX*baseScaleX
	shiftY := baseShiftY - loY*baseScaleY
	scaleX := baseScaleX * (1 + loX + hiX)
	scaleY := baseScaleY * (1 + loY + hiY)

	bbox := algebra.BBox2{
		Xmin: hmBBox.Xmin + shiftX*hmBBox.Width(),
		Xmax: hmBBox.Xmin + (shiftX+scaleX)*hmBBox.Width(),
		Ymin: hmBBox.Ymin + shiftY*hmBBox.Height(),
		Ymax: hmBBox.Ymin + (shiftY+scaleY)*hmBBox.Height(),
	}

	return &Tile{
		Array: array.New(nxPix+padX, nyPix+padY),
		Shift: algebra.Vec2{X: shiftX, Y: shiftY},
		Scale: algebra.Vec2{X: scaleX, Y: scaleY},
		BBox:  bbox,
		I:     i,
		J:     j,
	}
}

// overlapOn returns the (lo,hi) overlap fraction (of the tile's base
// extent) to add on the low/high side of grid position p within extent
// n: 0 at a mosaic border, `overlap` on an internal seam.
func overlapOn(p, n int, overlap float64) (lo, hi float64) {
	if p > 0 {
		lo = overlap
	}
	if p < n-1 {
		hi = overlap
	}
	return
}
