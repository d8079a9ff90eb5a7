// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

// Package filters implements the in-place raster filter family: smoothing
// kernels, grayscale morphology (expand/shrink/expand-talus/fill-talus),
// Kuwahara and Laplace edge-preserving smoothing, the recurve remapping
// family, terracing, median, plateau normalization, and histogram
// equalization. The filters have no masked variants; Lerp blends a result
// computed on a scratch copy back into the original by a mask.
package filters

import (
	"math"
	"math/rand"
	"sort"

	"github.com/gazed/highmap/array"
	"github.com/gazed/highmap/kernel"
	"github.com/gazed/highmap/mathutil"
)

// Lerp blends a result array back into original by mask, producing
// original*(1-mask) + result*mask element-wise.
func Lerp(original, result, mask *array.Array) *array.Array {
	out := array.New(original.Nx(), original.Ny())
	for i := range out.Data {
		m := mask.Data[i]
		out.Data[i] = original.Data[i]*(1-m) + result.Data[i]*m
	}
	return out
}

// buildSeparableKernel1D returns a normalized 1-D kernel of length 2ir+1
// sampled from profile, a unary function of the signed cell offset
// scaled to [-1,1].
func buildSeparableKernel1D(ir int, profile func(t float64) float64) []float64 {
	n := 2*ir + 1
	k := make([]float64, n)
	sum := 0.0
	for p := -ir; p <= ir; p++ {
		v := profile(float64(p) / float64(ir+1))
		k[p+ir] = v
		sum += v
	}
	if sum != 0 {
		for i := range k {
			k[i] /= sum
		}
	}
	return k
}

func separableApply(a *array.Array, k1d []float64) {
	nx, ny := a.Nx(), a.Ny()
	ir := len(k1d) / 2
	tmp := array.New(nx, ny)
	for i := 0; i < nx; i++ {
		for j := 0; j < ny; j++ {
			sum := 0.0
			for p := -ir; p <= ir; p++ {
				ii := clampi(i+p, 0, nx-1)
				sum += k1d[p+ir] * a.At(ii, j)
			}
			tmp.Set(i, j, sum)
		}
	}
	for i := 0; i < nx; i++ {
		for j := 0; j < ny; j++ {
			sum := 0.0
			for p := -ir; p <= ir; p++ {
				jj := clampi(j+p, 0, ny-1)
				sum += k1d[p+ir] * tmp.At(i, jj)
			}
			a.Set(i, j, sum)
		}
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

// SmoothCubicPulse smooths a in place with a separable cubic-pulse
// kernel of radius ir.
func SmoothCubicPulse(a *array.Array, ir int) {
	separableApply(a, buildSeparableKernel1D(ir, func(t float64) float64 {
		if t < -1 || t > 1 {
			return 0
		}
		v := 1 - t*t
		return v * v
	}))
}

// SmoothGaussian smooths a in place with a separable Gaussian kernel of
// radius ir, support extended to NSIGMA=2 standard deviations.
func SmoothGaussian(a *array.Array, ir int) {
	const nsigma = 2.0
	sigma := float64(ir+1) / nsigma
	support := int(math.Ceil(nsigma * sigma))
	separableApply(a, buildSeparableKernel1D(support, func(t float64) float64 {
		x := t * float64(support+1)
		return math.Exp(-(x * x) / (2 * sigma * sigma))
	}))
}

// SmoothCone smooths a in place with a separable conical kernel of
// radius ir.
func SmoothCone(a *array.Array, ir int) {
	separableApply(a, buildSeparableKernel1D(ir, func(t float64) float64 {
		d := math.Abs(t)
		if d > 1 {
			return 0
		}
		return 1 - d
	}))
}

// SmoothFlat smooths a in place with a uniform (box) kernel of radius ir.
func SmoothFlat(a *array.Array, ir int) {
	separableApply(a, buildSeparableKernel1D(ir, func(t float64) float64 { return 1 }))
}

// Expand performs grayscale dilation of a in place with a cubic-pulse
// structuring element of radius ir: every pixel becomes the max of
// se(p,q)*src(i+p,j+q) over the (2ir+1)x(2ir+1) support. The pulse falls
// to zero one cell beyond ir, so the cells at radius ir keep a weight.
func Expand(a *array.Array, ir int) {
	ExpandKernel(a, kernel.CubicPulse(ir+1).ExtractSlice(1, 2*ir+2, 1, 2*ir+2))
}

// ExpandKernel performs grayscale dilation using an arbitrary
// structuring element se, centred on its own midpoint.
func ExpandKernel(a *array.Array, se *array.Array) {
	nx, ny := a.Nx(), a.Ny()
	irx, iry := se.Nx()/2, se.Ny()/2
	src := a.Clone()
	for i := 0; i < nx; i++ {
		for j := 0; j < ny; j++ {
			best := math.Inf(-1)
			for p := -irx; p <= irx; p++ {
				ii := clampi(i+p, 0, nx-1)
				for q := -iry; q <= iry; q++ {
					jj := clampi(j+q, 0, ny-1)
					v := se.At(p+irx, q+iry) * src.At(ii, jj)
					if v > best {
						best = v
					}
				}
			}
			a.Set(i, j, best)
		}
	}
}

// Shrink performs grayscale erosion of a in place with a cubic-pulse
// structuring element of radius ir, the dual of Expand via negation.
func Shrink(a *array.Array, ir int) {
	for i := range a.Data {
		a.Data[i] = -a.Data[i]
	}
	Expand(a, ir)
	for i := range a.Data {
		a.Data[i] = -a.Data[i]
	}
}

// Median3x3 replaces every interior cell of a with the median of its
// 3x3 neighbourhood.
func Median3x3(a *array.Array) {
	nx, ny := a.Nx(), a.Ny()
	if nx < 3 || ny < 3 {
		return
	}
	src := a.Clone()
	window := make([]float64, 9)
	for i := 1; i < nx-1; i++ {
		for j := 1; j < ny-1; j++ {
			k := 0
			for p := -1; p <= 1; p++ {
				for q := -1; q <= 1; q++ {
					window[k] = src.At(i+p, j+q)
					k++
				}
			}
			sort.Float64s(window)
			a.Set(i, j, window[4])
		}
	}
}

// Kuwahara applies Kuwahara filtering with radius ir over interior
// cells: for each pixel, the mean/std of the four (ir+1)x(ir+1)
// quadrants are computed and the output is the mean of the
// lowest-variance quadrant, optionally mixed back with the input by
// mixRatio in [0,1].
func Kuwahara(a *array.Array, ir int, mixRatio float64) {
	nx, ny := a.Nx(), a.Ny()
	w := ir + 1
	if nx < 2*w || ny < 2*w {
		return
	}
	src := a.Clone()
	quadrants := [4][2]int{{-w + 1, -w + 1}, {0, -w + 1}, {-w + 1, 0}, {0, 0}}
	for i := ir; i < nx-ir; i++ {
		for j := ir; j < ny-ir; j++ {
			bestMean, bestStd := 0.0, math.Inf(1)
			for _, q := range quadrants {
				mean, std := quadStats(src, i, j, q[0], q[1], w)
				if std < bestStd {
					bestStd, bestMean = std, mean
				}
			}
			orig := src.At(i, j)
			a.Set(i, j, orig*(1-mixRatio)+bestMean*mixRatio)
		}
	}
}

func quadStats(a *array.Array, ci, cj, di, dj, w int) (mean, std float64) {
	n := 0
	sum, sum2 := 0.0, 0.0
	for p := 0; p < w; p++ {
		for q := 0; q < w; q++ {
			v := a.At(ci+di+p, cj+dj+q)
			sum += v
			sum2 += v * v
			n++
		}
	}
	mean = sum / float64(n)
	variance := sum2/float64(n) - mean*mean
	if variance < 0 {
		variance = 0
	}
	return mean, math.Sqrt(variance)
}

// LaplaceEdgePreserving iterates z <- z + sigma*(grad(c).grad(z) +
// c*laplacian(z)) with c = 1/(1+|grad(z)|^2/talus^2), smoothing flat
// regions while preserving edges sharper than talus.
func LaplaceEdgePreserving(a *array.Array, talus, sigma float64, iterations int) {
	nx, ny := a.Nx(), a.Ny()
	if nx < 3 || ny < 3 {
		return
	}
	for it := 0; it < iterations; it++ {
		c := array.New(nx, ny)
		for i := 1; i < nx-1; i++ {
			for j := 1; j < ny-1; j++ {
				dx, dy := a.GradientAt(i, j)
				g2 := dx*dx + dy*dy
				c.Set(i, j, 1/(1+g2/(talus*talus)))
			}
		}
		next := a.Clone()
		for i := 1; i < nx-1; i++ {
			for j := 1; j < ny-1; j++ {
				cdx, cdy := c.GradientAt(i, j)
				zdx, zdy := a.GradientAt(i, j)
				lap := a.At(i+1, j) + a.At(i-1, j) + a.At(i, j+1) + a.At(i, j-1) - 4*a.At(i, j)
				delta := sigma * (cdx*zdx + cdy*zdy + c.At(i, j)*lap)
				next.Set(i, j, a.At(i, j)+delta)
			}
		}
		a.Data, next.Data = next.Data, a.Data
	}
}

// Terrace partitions [vmin,vmax] into n levels with uniform jitter on
// interior boundaries (deterministic given seed), mapping each value
// into its interval with gain correction.
func Terrace(a *array.Array, n int, gain float64, seed int64) {
	rng := rand.New(rand.NewSource(seed))
	vmin, vmax := a.Min(), a.Max()
	if vmax <= vmin || n < 2 {
		return
	}
	bounds := make([]float64, n+1)
	for k := 0; k <= n; k++ {
		bounds[k] = vmin + (vmax-vmin)*float64(k)/float64(n)
	}
	for k := 1; k < n; k++ {
		jitter := (rng.Float64()*2 - 1) * (vmax - vmin) / float64(n) * 0.1
		bounds[k] += jitter
	}
	for idx, v := range a.Data {
		k := 0
		for k < n-1 && v >= bounds[k+1] {
			k++
		}
		lo, hi := bounds[k], bounds[k+1]
		if hi <= lo {
			continue
		}
		t := (v - lo) / (hi - lo)
		t = math.Pow(mathutil.Saturate(t), gain)
		a.Data[idx] = lo + t*(hi-lo)
	}
}

// Plateau locally normalizes a by its smoothed local min/max (radius
// ir), applies gain, and rescales back to the original range.
func Plateau(a *array.Array, ir int, gain float64) {
	lo := a.Clone()
	hi := a.Clone()
	se := array.NewFilled(2*ir+1, 2*ir+1, 1)
	ExpandKernel(hi, se)
	lo.MulScalarAssign(-1)
	ExpandKernel(lo, se)
	lo.MulScalarAssign(-1)
	SmoothFlat(lo, ir)
	SmoothFlat(hi, ir)
	vmin, vmax := a.Min(), a.Max()
	for idx, v := range a.Data {
		l, h := lo.Data[idx], hi.Data[idx]
		if h <= l {
			continue
		}
		t := mathutil.Saturate((v - l) / (h - l))
		t = math.Pow(t, gain)
		a.Data[idx] = vmin + t*(vmax-vmin)
	}
}

// Equalize histogram-equalizes a in place: values are remapped to the
// uniform distribution implied by their rank order, the spec's
// fixed-seed reference being the array's own sorted sample (no RNG is
// needed since the target distribution is uniform over ranks).
func Equalize(a *array.Array) {
	n := len(a.Data)
	if n == 0 {
		return
	}
	ranked := mathutil.Argsort(a.Data)
	out := make([]float64, n)
	for rank, idx := range ranked {
		out[idx] = float64(rank) / float64(n-1)
	}
	copy(a.Data, out)
}
