// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package filters

import (
	"math"

	"github.com/gazed/highmap/array"
	"github.com/gazed/highmap/mathutil"
)

// Recurve applies a monotone 1-D remapping fct to every element of a in
// place, the shared entry point for the spline/exponential/s-curve/
// Kumaraswamy/rational-smoothstep members of the recurve family.
func Recurve(a *array.Array, fct func(v float64) float64) {
	for i, v := range a.Data {
		a.Data[i] = fct(v)
	}
}

// RecurveBoundedExponential remaps v in [0,1] via the bounded-exponential
// curve 1-exp(-k*v), rescaled so the curve spans [0,1] exactly.
func RecurveBoundedExponential(a *array.Array, k float64) {
	norm := 1 - math.Exp(-k)
	Recurve(a, func(v float64) float64 {
		return (1 - math.Exp(-k*v)) / norm
	})
}

// RecurveSCurve remaps v in [0,1] via the smoothstep3 S-curve.
func RecurveSCurve(a *array.Array) {
	Recurve(a, mathutil.Smoothstep3)
}

// RecurveKumaraswamy remaps v in [0,1] via the Kumaraswamy CDF
// 1-(1-v^alpha)^beta, a closed-form alternative to the Beta distribution
// commonly used for terrain value redistribution.
func RecurveKumaraswamy(a *array.Array, alpha, beta float64) {
	Recurve(a, func(v float64) float64 {
		v = mathutil.Saturate(v)
		return 1 - math.Pow(1-math.Pow(v, alpha), beta)
	})
}

// RecurveRationalSmoothstep remaps v in [0,1] via the rational
// smoothstep v^n / (v^n + (1-v)^n), a continuously adjustable S-curve
// steepened by n.
func RecurveRationalSmoothstep(a *array.Array, n float64) {
	Recurve(a, func(v float64) float64 {
		v = mathutil.Saturate(v)
		vn := math.Pow(v, n)
		return vn / (vn + math.Pow(1-v, n))
	})
}

// RecurveSpectral applies a per-frequency multiplier to a at its own
// (nx,ny) shape, without resampling to a square, via a real discrete
// cosine transform computed with a naive O(n^2) per-axis DCT-II/III pair. This is acceptable at
// the modest tile resolutions this module targets, and avoids pulling in
// an FFT dependency for a transform this small.
func RecurveSpectral(a *array.Array, weights func(fi, fj int) float64) {
	nx, ny := a.Nx(), a.Ny()
	freq := dct2(a)
	for i := 0; i < nx; i++ {
		for j := 0; j < ny; j++ {
			freq.Set(i, j, freq.At(i, j)*weights(i, j))
		}
	}
	out := idct2(freq)
	copy(a.Data, out.Data)
}

func dct1D(in []float64) []float64 {
	n := len(in)
	out := make([]float64, n)
	for k := 0; k < n; k++ {
		sum := 0.0
		for x := 0; x < n; x++ {
			sum += in[x] * math.Cos(math.Pi/float64(n)*(float64(x)+0.5)*float64(k))
		}
		out[k] = sum
	}
	return out
}

func idct1D(in []float64) []float64 {
	n := len(in)
	out := make([]float64, n)
	for x := 0; x < n; x++ {
		sum := in[0] / 2
		for k := 1; k < n; k++ {
			sum += in[k] * math.Cos(math.Pi/float64(n)*(float64(x)+0.5)*float64(k))
		}
		out[x] = sum * 2 / float64(n)
	}
	return out
}

func dct2(a *array.Array) *array.Array {
	nx, ny := a.Nx(), a.Ny()
	tmp := array.New(nx, ny)
	row := make([]float64, ny)
	for i := 0; i < nx; i++ {
		for j := 0; j < ny; j++ {
			row[j] = a.At(i, j)
		}
		r := dct1D(row)
		for j := 0; j < ny; j++ {
			tmp.Set(i, j, r[j])
		}
	}
	out := array.New(nx, ny)
	col := make([]float64, nx)
	for j := 0; j < ny; j++ {
		for i := 0; i < nx; i++ {
			col[i] = tmp.At(i, j)
		}
		c := dct1D(col)
		for i := 0; i < nx; i++ {
			out.Set(i, j, c[i])
		}
	}
	return out
}

func idct2(a *array.Array) *array.Array {
	nx, ny := a.Nx(), a.Ny()
	tmp := array.New(nx, ny)
	col := make([]float64, nx)
	for j := 0; j < ny; j++ {
		for i := 0; i < nx; i++ {
			col[i] = a.At(i, j)
		}
		c := idct1D(col)
		for i := 0; i < nx; i++ {
			tmp.Set(i, j, c[i])
		}
	}
	out := array.New(nx, ny)
	row := make([]float64, ny)
	for i := 0; i < nx; i++ {
		for j := 0; j < ny; j++ {
			row[j] = tmp.At(i, j)
		}
		r := idct1D(row)
		for j := 0; j < ny; j++ {
			out.Set(i, j, r[j])
		}
	}
	return out
}
