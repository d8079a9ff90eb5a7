// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

// Package dispatch implements the per-tile parallel apply layer every
// Heightmap operation runs through: a closure of fixed shape
// (tileArrays, shape, bbox) is invoked once per tile, either concurrently
// (Distributed) or inline on the caller (Sequential). Distributed mode
// uses golang.org/x/sync/errgroup to launch one task per tile, wait for
// all of them, and surface the first error.
package dispatch

import (
	"github.com/gazed/highmap/algebra"
	"github.com/gazed/highmap/array"
	"golang.org/x/sync/errgroup"
)

// Mode selects how Dispatch fans work out across tiles.
type Mode int

const (
	// Sequential runs every tile's closure inline, in tile order.
	Sequential Mode = iota
	// Distributed runs one task per tile on a worker pool sized to
	// runtime.GOMAXPROCS (errgroup's default scheduling).
	Distributed
)

// TileOp is the closure signature every dispatch variant invokes: the
// per-tile argument arrays (nil entries allowed for a null heightmap
// argument), this tile's shape, and its bbox. Closures must be pure with
// respect to other tiles: no cross-tile reads except through the
// explicit overlap-buffer mechanism.
type TileOp func(tiles []*array.Array, shape [2]int, bbox algebra.BBox2) error

// Dispatch runs op once per entry of tiles (each entry is the
// corresponding tile from every argument heightmap, nil where that
// heightmap argument was nil), according to mode. Errors returned from a
// closure propagate to the caller after the dispatch joins all tasks;
// the heightmaps are left in whatever partially transformed state the
// completed tiles produced, with no rollback.
func Dispatch(mode Mode, shapes []([2]int), bboxes []algebra.BBox2, tiles [][]*array.Array, op TileOp) error {
	n := len(shapes)
	if mode == Sequential {
		for k := 0; k < n; k++ {
			if err := op(tiles[k], shapes[k], bboxes[k]); err != nil {
				return err
			}
		}
		return nil
	}

	var g errgroup.Group
	for k := 0; k < n; k++ {
		k := k
		g.Go(func() error {
			return op(tiles[k], shapes[k], bboxes[k])
		})
	}
	return g.Wait()
}
