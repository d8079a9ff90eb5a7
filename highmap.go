// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

// Package highmap, height map, provides procedural synthesis and
// manipulation of 2D scalar fields. Highmap wraps subsystems like noise
// generation, erosion, hydrology, filtering and I/O to provide a single
// facade that includes:
//    • A tiled height field container with seamless mosaic stitching.
//    • Sequential or distributed dispatch of per-tile work.
//    • Coordinate-frame interpolation between overlapping fields.
// Refer to the leaf packages (array, primitives, filters, hydrology,
// erosion, pyramid, downscale, quilt, coordframe, sinks) for the
// individual algorithm families this facade composes.
package highmap

import (
	"github.com/gazed/highmap/algebra"
	"github.com/gazed/highmap/array"
	"github.com/gazed/highmap/dispatch"
	"github.com/gazed/highmap/heightmap"
)

// Mode selects sequential or distributed per-tile dispatch; re-exported
// from dispatch so callers need only import this facade package.
type Mode = dispatch.Mode

const (
	Sequential  = dispatch.Sequential
	Distributed = dispatch.Distributed
)

// Tile is a single piece of a Heightmap's mosaic; re-exported from
// heightmap so facade callers can type-assert or inspect tiles without a
// second import.
type Tile = heightmap.Tile

// Heightmap is the tiled scalar field container. New allocates one with
// a regular tiling and per-tile overlap for seamless stitching.
type Heightmap = heightmap.Heightmap

// New allocates a Heightmap tiled (tx,ty), each tile holding nx*ny pixels
// before overlap (so the flattened field is nx*tx by ny*ty), with the
// given overlap fraction, spanning bbox in world space.
func New(nx, ny, tx, ty int, overlap float64, bbox algebra.BBox2) *Heightmap {
	return heightmap.New(nx, ny, tx, ty, overlap, bbox)
}

// NewSingle allocates a Heightmap with a single tile spanning bbox, the
// common case of operating on one plain array.Array through the same
// dispatch-based Fill/Transform API as a tiled mosaic.
func NewSingle(nx, ny int, bbox algebra.BBox2) *Heightmap {
	return heightmap.NewSingle(nx, ny, bbox)
}

// FromArray wraps an existing array.Array as a single-tile Heightmap
// spanning the unit square, for callers that already hold a flat array
// and want access to the dispatch-based Fill/Transform API.
func FromArray(a *array.Array) *Heightmap {
	hm := heightmap.NewSingle(a.Nx(), a.Ny(), algebra.UnitBBox)
	copy(hm.Tiles[0].Data, a.Data)
	return hm
}
