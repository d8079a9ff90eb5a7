// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

// Package convolve implements 1D separable, full 2D, truncated 2D, and
// SVD-approximated 2D convolution. The SVD path is grounded on gonum's
// thin-SVD decomposition (gonum.org/v1/gonum/mat), the linear-algebra
// collaborator already precedented in the retrieval pack.
package convolve

import (
	"math"
	"math/rand"

	"github.com/gazed/highmap/array"
	"github.com/gazed/highmap/boundary"
	"gonum.org/v1/gonum/mat"
)

// Convolve1DI convolves a along the i axis with kernel k, using symmetric
// reflective padding by ceil(len(k)/2). Output shape equals input shape.
func Convolve1DI(a *array.Array, k []float64) *array.Array {
	pad := (len(k) + 1) / 2
	buf := boundary.Buffer(a, pad, 0)
	out := array.New(a.Nx(), a.Ny())
	half := len(k) / 2
	for i := 0; i < a.Nx(); i++ {
		for j := 0; j < a.Ny(); j++ {
			s := 0.0
			for ki, kv := range k {
				s += buf.At(i+pad+ki-half, j+0) * kv
			}
			out.Set(i, j, s)
		}
	}
	return out
}

// Convolve1DJ is the transpose-direction equivalent of Convolve1DI,
// convolving along the j axis.
func Convolve1DJ(a *array.Array, k []float64) *array.Array {
	pad := (len(k) + 1) / 2
	buf := boundary.Buffer(a, 0, pad)
	out := array.New(a.Nx(), a.Ny())
	half := len(k) / 2
	for i := 0; i < a.Nx(); i++ {
		for j := 0; j < a.Ny(); j++ {
			s := 0.0
			for kj, kv := range k {
				s += buf.At(i, j+pad+kj-half) * kv
			}
			out.Set(i, j, s)
		}
	}
	return out
}

// Convolve2D materializes a symmetrically buffered copy of a and runs
// Convolve2DTruncated, returning an array of the same shape as a.
func Convolve2D(a, k *array.Array) *array.Array {
	bi, bj := k.Nx()/2+1, k.Ny()/2+1
	buf := boundary.Buffer(a, bi, bj)
	return Convolve2DTruncated(buf, k).ExtractSlice(1, a.Nx()+1, 1, a.Ny()+1)
}

// Convolve2DTruncated returns an array of shape (nx-kx, ny-ky) holding
// the direct multiply-accumulate convolution of a with kernel k (no FFT).
func Convolve2DTruncated(a, k *array.Array) *array.Array {
	nx, ny := a.Nx()-k.Nx(), a.Ny()-k.Ny()
	out := array.New(nx, ny)
	for i := 0; i < nx; i++ {
		for j := 0; j < ny; j++ {
			s := 0.0
			for ki := 0; ki < k.Nx(); ki++ {
				for kj := 0; kj < k.Ny(); kj++ {
					s += a.At(i+ki, j+kj) * k.At(ki, kj)
				}
			}
			out.Set(i, j, s)
		}
	}
	return out
}

// Convolve2DSVD approximates Convolve2D by a rank-k thin SVD of the
// kernel: k ~= sum_r s[r]*u[:,r]*v[:,r]^T, summing `rank` separable 1D
// convolutions weighted by the corresponding singular value.
func Convolve2DSVD(a, k *array.Array, rank int) *array.Array {
	u, s, vt := thinSVD(k)
	out := array.New(a.Nx(), a.Ny())
	n := rank
	if n > len(s) {
		n = len(s)
	}
	for r := 0; r < n; r++ {
		colU := make([]float64, k.Nx())
		for i := range colU {
			colU[i] = u[i][r]
		}
		colV := make([]float64, k.Ny())
		for j := range colV {
			colV[j] = vt[r][j]
		}
		pass := Convolve1DJ(Convolve1DI(a, colU), colV)
		pass.MulScalarAssign(s[r])
		out.AddAssign(pass)
	}
	return out
}

// Convolve2DSVDRotatedKernel approximates an anisotropic stochastic
// kernel by summing nRotations SVD-approximated convolutions, each
// computed over a sparse binary mask (density 1/nRotations) of the array
// with the kernel rotated to a distinct angle spanning 360 degrees.
func Convolve2DSVDRotatedKernel(a, k *array.Array, rank, nRotations int, seed int64) *array.Array {
	rng := rand.New(rand.NewSource(seed))
	out := array.New(a.Nx(), a.Ny())
	density := 1.0 / float64(nRotations)
	for r := 0; r < nRotations; r++ {
		angle := 360.0 * float64(r) / float64(nRotations)
		rk := rotateKernel(k, angle)
		mask := sparseBinaryMask(a.Nx(), a.Ny(), density, rng)
		masked := a.Mul(mask)
		pass := Convolve2DSVD(masked, rk, rank)
		out.AddAssign(pass)
	}
	return out
}

func sparseBinaryMask(nx, ny int, density float64, rng *rand.Rand) *array.Array {
	m := array.New(nx, ny)
	for i := range m.Data {
		if rng.Float64() < density {
			m.Data[i] = 1
		}
	}
	return m
}

// thinSVD returns (U, S, Vt) for kernel k, rows of U indexed by k's i
// axis, rows of Vt indexed by k's j axis.
func thinSVD(k *array.Array) (u [][]float64, s []float64, vt [][]float64) {
	nx, ny := k.Nx(), k.Ny()
	dense := mat.NewDense(nx, ny, k.Data)
	var svd mat.SVD
	ok := svd.Factorize(dense, mat.SVDThin)
	if !ok {
		panic("convolve: SVD factorization failed")
	}
	s = svd.Values(nil)
	var um, vm mat.Dense
	svd.UTo(&um)
	svd.VTo(&vm)
	ur, uc := um.Dims()
	u = make([][]float64, ur)
	for i := 0; i < ur; i++ {
		u[i] = make([]float64, uc)
		for j := 0; j < uc; j++ {
			u[i][j] = um.At(i, j)
		}
	}
	vr, vc := vm.Dims()
	vt = make([][]float64, vc)
	for j := 0; j < vc; j++ {
		vt[j] = make([]float64, vr)
		for i := 0; i < vr; i++ {
			vt[j][i] = vm.At(i, j)
		}
	}
	return
}

// rotateKernel returns a copy of k resampled as if rotated by angleDeg
// about its centre, using nearest-neighbour lookup (kernels are small and
// typically near-radially-symmetric; this is sufficient for the
// stochastic anisotropy this function is modelling).
func rotateKernel(k *array.Array, angleDeg float64) *array.Array {
	nx, ny := k.Nx(), k.Ny()
	out := array.New(nx, ny)
	cx, cy := float64(nx-1)/2, float64(ny-1)/2
	rad := -angleDeg * math.Pi / 180
	cos, sin := math.Cos(rad), math.Sin(rad)
	for i := 0; i < nx; i++ {
		for j := 0; j < ny; j++ {
			dx := float64(i) - cx
			dy := float64(j) - cy
			sx := cx + dx*cos-dy*sin
			sy := cy + dx*sin+dy*cos
			si, sj := int(sx+0.5), int(sy+0.5)
			if si < 0 {
				si = 0
			}
			if si > nx-1 {
				si = nx - 1
			}
			if sj < 0 {
				sj = 0
			}
			if sj > ny-1 {
				sj = ny - 1
			}
			out.Set(i, j, k.At(si, sj))
		}
	}
	return out
}
