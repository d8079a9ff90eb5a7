// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

// Package downscale implements downscale_transform: operate on a coarse
// proxy of an array, then recombine the coarse result with the
// original's own high-frequency detail, addressed by an arbitrary target
// coarseness kc rather than a fixed octave halving.
package downscale

import (
	"github.com/gazed/highmap/array"
	"github.com/gazed/highmap/convolve"
	"github.com/gazed/highmap/kernel"
)

// Transform resamples a to a coarse shape of roughly 2*kc cells per axis
// (clamped to at least 2), optionally prefilters with a sum-normalized
// radial sinc kernel (radius 4, wavelength 4 cells, no taper window) by
// direct, non-separable 2D convolution, applies op in place on the
// coarse array, resamples the result back to a's shape bicubically, and
// returns coarse + (a - filtered): the coarse transform plus the
// original's own high-frequency residual.
func Transform(a *array.Array, kc int, op func(coarse *array.Array), prefilter bool) *array.Array {
	coarseNx, coarseNy := coarseShape(a.Nx(), kc), coarseShape(a.Ny(), kc)

	filtered := a
	if prefilter {
		k := kernel.Sinc(4, 4)
		k.Normalize()
		filtered = convolve.Convolve2D(a, k)
	}

	coarse := filtered.ResampleToShape(coarseNx, coarseNy)
	op(coarse)

	back := coarse.ResampleToShapeBicubic(a.Nx(), a.Ny())
	out := array.New(a.Nx(), a.Ny())
	for i := range out.Data {
		out.Data[i] = back.Data[i] + (a.Data[i] - filtered.Data[i])
	}
	return out
}

// TransformMultiKc iterates Transform across the given kc values in
// order, passing each level's index to op so a single operator can vary
// its behaviour by scale.
func TransformMultiKc(a *array.Array, kcs []int, op func(coarse *array.Array, level int), prefilter bool) *array.Array {
	current := a
	for level, kc := range kcs {
		current = Transform(current, kc, func(c *array.Array) { op(c, level) }, prefilter)
	}
	return current
}

func coarseShape(n, kc int) int {
	c := 2 * kc
	if c < 2 {
		c = 2
	}
	if c > n {
		c = n
	}
	return c
}
