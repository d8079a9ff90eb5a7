// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

// Package boundary handles border extrapolation and buffering, array
// periodicity, and the geometric transforms (rotate, flip, transpose,
// translate, zoom, warp) used between tile-level raster passes.
package boundary

import "github.com/gazed/highmap/array"

// ExtrapolateBorders fills the outermost ring of a in place by copying
// the nearest interior value, making border cells deterministic before
// running an algorithm that requires an interior neighbourhood (spec
// §4.13).
func ExtrapolateBorders(a *array.Array) {
	nx, ny := a.Nx(), a.Ny()
	if nx < 3 || ny < 3 {
		return
	}
	for i := 0; i < nx; i++ {
		a.Set(i, 0, a.At(clampi(i, 1, nx-2), 1))
		a.Set(i, ny-1, a.At(clampi(i, 1, nx-2), ny-2))
	}
	for j := 0; j < ny; j++ {
		a.Set(0, j, a.At(1, clampi(j, 1, ny-2)))
		a.Set(nx-1, j, a.At(nx-2, clampi(j, 1, ny-2)))
	}
}

func clampi(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Buffer returns a new array padded by bufi cells on the i axis and bufj
// cells on the j axis, using symmetric reflection: buffer cell k
// (0-indexed outward from the edge) mirrors interior cell k+1, so the
// edge cell itself is not repeated.
func Buffer(a *array.Array, bufi, bufj int) *array.Array {
	nx, ny := a.Nx(), a.Ny()
	out := array.New(nx+2*bufi, ny+2*bufj)
	for i := 0; i < out.Nx(); i++ {
		si := reflect(i-bufi, nx)
		for j := 0; j < out.Ny(); j++ {
			sj := reflect(j-bufj, ny)
			out.Set(i, j, a.At(si, sj))
		}
	}
	return out
}

// reflect maps an index possibly outside [0,n) back into range by
// symmetric reflection about the nearest edge.
func reflect(i, n int) int {
	if n == 1 {
		return 0
	}
	period := 2 * (n - 1)
	i = i % period
	if i < 0 {
		i += period
	}
	if i >= n {
		i = period - i
	}
	return i
}

// Unbuffer returns the interior of a buffered array, undoing Buffer.
func Unbuffer(a *array.Array, bufi, bufj int) *array.Array {
	return a.ExtractSlice(bufi, a.Nx()-bufi, bufj, a.Ny()-bufj)
}

// MakePeriodic returns a new array that tiles seamlessly by stitching a
// with itself: the output is a+shifted(a,nx/2,ny/2) blended with a
// linear cross-fade (weight 1-d/nbuf at d cells from the border), the same overlap-stitch idiom used for
// mosaic tiles but applied to a whole-array wraparound.
func MakePeriodic(a *array.Array, nbuf int) *array.Array {
	nx, ny := a.Nx(), a.Ny()
	out := a.Clone()
	half := array.New(nx, ny)
	for i := 0; i < nx; i++ {
		for j := 0; j < ny; j++ {
			half.Set(i, j, a.At((i+nx/2)%nx, (j+ny/2)%ny))
		}
	}
	blendEdges(out, half, nbuf)
	return out
}

// blendEdges cross-fades out towards half within nbuf cells of every
// border, producing C0 continuity across the eventual wraparound seam.
func blendEdges(out, half *array.Array, nbuf int) {
	nx, ny := out.Nx(), out.Ny()
	if nbuf <= 0 {
		return
	}
	for i := 0; i < nx; i++ {
		for j := 0; j < ny; j++ {
			di := edgeDist(i, nx)
			dj := edgeDist(j, ny)
			d := di
			if dj < d {
				d = dj
			}
			if d >= nbuf {
				continue
			}
			w := 1 - float64(d)/float64(nbuf)
			v := out.At(i, j)*(1-w) + half.At(i, j)*w
			out.Set(i, j, v)
		}
	}
}

func edgeDist(i, n int) int {
	d := i
	if n-1-i < d {
		d = n - 1 - i
	}
	return d
}
