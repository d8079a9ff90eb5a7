// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package erosion

import (
	"math"

	"github.com/gazed/highmap/array"
)

// DistanceTransform computes, for every cell, the Euclidean distance to
// the nearest cell where mask is non-zero, using a two-pass
// chamfer-style approximation (forward and backward raster sweeps). This
// is exact enough for erosion-mask seeding, and far cheaper than the
// exact Felzenszwalb-Huttenlocher transform for the tile sizes this
// module targets.
func DistanceTransform(mask *array.Array) *array.Array {
	nx, ny := mask.Nx(), mask.Ny()
	const inf = math.MaxFloat64 / 2
	dist := array.New(nx, ny)
	for i := 0; i < nx; i++ {
		for j := 0; j < ny; j++ {
			if mask.At(i, j) != 0 {
				dist.Set(i, j, 0)
			} else {
				dist.Set(i, j, inf)
			}
		}
	}
	relax := func(i, j, di, dj int, w float64) {
		ni, nj := i+di, j+dj
		if ni < 0 || ni >= nx || nj < 0 || nj >= ny {
			return
		}
		cand := dist.At(ni, nj) + w
		if cand < dist.At(i, j) {
			dist.Set(i, j, cand)
		}
	}
	for i := 0; i < nx; i++ {
		for j := 0; j < ny; j++ {
			relax(i, j, -1, 0, 1)
			relax(i, j, 0, -1, 1)
			relax(i, j, -1, -1, math.Sqrt2)
			relax(i, j, 1, -1, math.Sqrt2)
		}
	}
	for i := nx - 1; i >= 0; i-- {
		for j := ny - 1; j >= 0; j-- {
			relax(i, j, 1, 0, 1)
			relax(i, j, 0, 1, 1)
			relax(i, j, 1, 1, math.Sqrt2)
			relax(i, j, -1, 1, math.Sqrt2)
		}
	}
	return dist
}
