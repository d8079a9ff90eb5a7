// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package boundary

import "github.com/gazed/highmap/array"

// Rotate90 returns a new array rotated 90 degrees counter-clockwise,
// matching the convention used when writing PNGs.
func Rotate90(a *array.Array) *array.Array {
	nx, ny := a.Nx(), a.Ny()
	out := array.New(ny, nx)
	for i := 0; i < nx; i++ {
		for j := 0; j < ny; j++ {
			out.Set(ny-1-j, i, a.At(i, j))
		}
	}
	return out
}

// FlipI returns a new array with the i axis reversed.
func FlipI(a *array.Array) *array.Array {
	nx, ny := a.Nx(), a.Ny()
	out := array.New(nx, ny)
	for i := 0; i < nx; i++ {
		for j := 0; j < ny; j++ {
			out.Set(nx-1-i, j, a.At(i, j))
		}
	}
	return out
}

// FlipJ returns a new array with the j axis reversed.
func FlipJ(a *array.Array) *array.Array {
	nx, ny := a.Nx(), a.Ny()
	out := array.New(nx, ny)
	for i := 0; i < nx; i++ {
		for j := 0; j < ny; j++ {
			out.Set(i, ny-1-j, a.At(i, j))
		}
	}
	return out
}

// Transpose returns a new array with the i and j axes swapped.
func Transpose(a *array.Array) *array.Array {
	nx, ny := a.Nx(), a.Ny()
	out := array.New(ny, nx)
	for i := 0; i < nx; i++ {
		for j := 0; j < ny; j++ {
			out.Set(j, i, a.At(i, j))
		}
	}
	return out
}

// Translate returns a new array of the same shape as a, shifted by
// (di,dj) cells with wraparound (periodic) addressing.
func Translate(a *array.Array, di, dj int) *array.Array {
	nx, ny := a.Nx(), a.Ny()
	out := array.New(nx, ny)
	for i := 0; i < nx; i++ {
		si := ((i-di)%nx + nx) % nx
		for j := 0; j < ny; j++ {
			sj := ((j-dj)%ny + ny) % ny
			out.Set(i, j, a.At(si, sj))
		}
	}
	return out
}

// Zoom returns a new array of the same shape as a, sampling a region
// scaled by factor around the array centre (factor > 1 zooms in).
// Bilinear sampling; out-of-range source coordinates clamp to the edge.
func Zoom(a *array.Array, factor float64) *array.Array {
	nx, ny := a.Nx(), a.Ny()
	out := array.New(nx, ny)
	cx, cy := float64(nx-1)/2, float64(ny-1)/2
	for i := 0; i < nx; i++ {
		sx := cx + (float64(i)-cx)/factor
		sx = clampf(sx, 0, float64(nx-1)-1e-9)
		i0 := int(sx)
		u := sx - float64(i0)
		for j := 0; j < ny; j++ {
			sy := cy + (float64(j)-cy)/factor
			sy = clampf(sy, 0, float64(ny-1)-1e-9)
			j0 := int(sy)
			v := sy - float64(j0)
			out.Set(i, j, a.ValueBilinearAt(i0, j0, u, v))
		}
	}
	return out
}

// Warp returns a new array sampling a through a per-cell displacement
// field (dx, dy), both arrays the same shape as a; displacement is in
// cell units. Bilinear sampling with clamped source coordinates.
func Warp(a, dx, dy *array.Array) *array.Array {
	nx, ny := a.Nx(), a.Ny()
	out := array.New(nx, ny)
	for i := 0; i < nx; i++ {
		for j := 0; j < ny; j++ {
			sx := clampf(float64(i)+dx.At(i, j), 0, float64(nx-1)-1e-9)
			sy := clampf(float64(j)+dy.At(i, j), 0, float64(ny-1)-1e-9)
			i0, j0 := int(sx), int(sy)
			u, v := sx-float64(i0), sy-float64(j0)
			out.Set(i, j, a.ValueBilinearAt(i0, j0, u, v))
		}
	}
	return out
}

func clampf(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
