// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

// Package array implements Array, an owned 2D row-major grid of floats.
// It is the base storage type shared by every raster algorithm in the
// module: noise primitives, filters, erosion, convolution, and the tiled
// heightmap container all read and write Arrays.
package array

import (
	"errors"
	"fmt"
	"sort"
)

// ErrShapeMismatch reports a destination shape that disagrees with the
// source; array3's Tensor.SetSlice wraps it. Element-wise arithmetic
// intentionally does not check shapes; callers are responsible for
// matching them. This error exists only for the APIs that choose to
// check.
var ErrShapeMismatch = errors.New("array: shape mismatch")

// Array is an owned 2D row-major grid of nx*ny float64 values. The
// leading dimension is "x" (index i), the trailing dimension is "y"
// (index j): Data[i*ny+j].
type Array struct {
	Shape [2]int
	Data  []float64
}

// New allocates a zero-filled array of the given shape.
func New(nx, ny int) *Array {
	return &Array{Shape: [2]int{nx, ny}, Data: make([]float64, nx*ny)}
}

// NewFilled allocates an array of the given shape with every element set
// to value.
func NewFilled(nx, ny int, value float64) *Array {
	a := New(nx, ny)
	for i := range a.Data {
		a.Data[i] = value
	}
	return a
}

// Nx returns the x extent of the array.
func (a *Array) Nx() int { return a.Shape[0] }

// Ny returns the y extent of the array.
func (a *Array) Ny() int { return a.Shape[1] }

// idx converts a 2D index to the flat row-major offset. Unchecked: callers
// must range-check before calling At or Set.
func (a *Array) idx(i, j int) int { return i*a.Shape[1] + j }

// At returns the value at (i,j). Unchecked.
func (a *Array) At(i, j int) float64 { return a.Data[a.idx(i, j)] }

// Set writes value at (i,j). Unchecked.
func (a *Array) Set(i, j int, value float64) { a.Data[a.idx(i, j)] = value }

// Clone returns an independent deep copy of a.
func (a *Array) Clone() *Array {
	data := make([]float64, len(a.Data))
	copy(data, a.Data)
	return &Array{Shape: a.Shape, Data: data}
}

// Fill sets every element of a to value.
func (a *Array) Fill(value float64) {
	for i := range a.Data {
		a.Data[i] = value
	}
}

// SameShape returns true if a and b have identical shapes.
func (a *Array) SameShape(b *Array) bool { return a.Shape == b.Shape }

// String implements fmt.Stringer with a compact shape+stat summary,
// useful when debugging a pipeline of chained transforms.
func (a *Array) String() string {
	if len(a.Data) == 0 {
		return fmt.Sprintf("Array{shape=%dx%d empty}", a.Shape[0], a.Shape[1])
	}
	return fmt.Sprintf("Array{shape=%dx%d min=%.4g max=%.4g mean=%.4g}",
		a.Shape[0], a.Shape[1], a.Min(), a.Max(), a.Mean())
}

// --- element-wise arithmetic (unchecked shape) ---

// AddScalar returns a new array with s added to every element.
func (a *Array) AddScalar(s float64) *Array { return a.mapScalar(s, func(x, s float64) float64 { return x + s }) }

// SubScalar returns a new array with s subtracted from every element.
func (a *Array) SubScalar(s float64) *Array { return a.mapScalar(s, func(x, s float64) float64 { return x - s }) }

// MulScalar returns a new array with every element scaled by s.
func (a *Array) MulScalar(s float64) *Array { return a.mapScalar(s, func(x, s float64) float64 { return x * s }) }

// DivScalar returns a new array with every element divided by s.
func (a *Array) DivScalar(s float64) *Array { return a.mapScalar(s, func(x, s float64) float64 { return x / s }) }

// AddScalarAssign adds s to every element of a in place.
func (a *Array) AddScalarAssign(s float64) { a.mapScalarAssign(s, func(x, s float64) float64 { return x + s }) }

// SubScalarAssign subtracts s from every element of a in place.
func (a *Array) SubScalarAssign(s float64) { a.mapScalarAssign(s, func(x, s float64) float64 { return x - s }) }

// MulScalarAssign scales every element of a by s in place.
func (a *Array) MulScalarAssign(s float64) { a.mapScalarAssign(s, func(x, s float64) float64 { return x * s }) }

// DivScalarAssign divides every element of a by s in place.
func (a *Array) DivScalarAssign(s float64) { a.mapScalarAssign(s, func(x, s float64) float64 { return x / s }) }

func (a *Array) mapScalar(s float64, op func(x, s float64) float64) *Array {
	out := New(a.Shape[0], a.Shape[1])
	for i, v := range a.Data {
		out.Data[i] = op(v, s)
	}
	return out
}

func (a *Array) mapScalarAssign(s float64, op func(x, s float64) float64) {
	for i, v := range a.Data {
		a.Data[i] = op(v, s)
	}
}

// Add returns a new array equal to a+b, element-wise. Shapes are assumed
// identical; the caller is responsible for matching them.
func (a *Array) Add(b *Array) *Array { return a.zip(b, func(x, y float64) float64 { return x + y }) }

// Sub returns a new array equal to a-b, element-wise.
func (a *Array) Sub(b *Array) *Array { return a.zip(b, func(x, y float64) float64 { return x - y }) }

// Mul returns a new array equal to a*b, element-wise.
func (a *Array) Mul(b *Array) *Array { return a.zip(b, func(x, y float64) float64 { return x * y }) }

// Div returns a new array equal to a/b, element-wise.
func (a *Array) Div(b *Array) *Array { return a.zip(b, func(x, y float64) float64 { return x / y }) }

// AddAssign adds b into a in place, element-wise.
func (a *Array) AddAssign(b *Array) { a.zipAssign(b, func(x, y float64) float64 { return x + y }) }

// SubAssign subtracts b from a in place, element-wise.
func (a *Array) SubAssign(b *Array) { a.zipAssign(b, func(x, y float64) float64 { return x - y }) }

// MulAssign multiplies a by b in place, element-wise.
func (a *Array) MulAssign(b *Array) { a.zipAssign(b, func(x, y float64) float64 { return x * y }) }

// DivAssign divides a by b in place, element-wise.
func (a *Array) DivAssign(b *Array) { a.zipAssign(b, func(x, y float64) float64 { return x / y }) }

func (a *Array) zip(b *Array, op func(x, y float64) float64) *Array {
	out := New(a.Shape[0], a.Shape[1])
	for i := range a.Data {
		out.Data[i] = op(a.Data[i], b.Data[i])
	}
	return out
}

func (a *Array) zipAssign(b *Array, op func(x, y float64) float64) {
	for i := range a.Data {
		a.Data[i] = op(a.Data[i], b.Data[i])
	}
}

// Neg returns a new array with every element negated.
func (a *Array) Neg() *Array {
	out := New(a.Shape[0], a.Shape[1])
	for i, v := range a.Data {
		out.Data[i] = -v
	}
	return out
}

// --- reductions ---

// Min returns the minimum element. Undefined for an empty array.
func (a *Array) Min() float64 {
	m := a.Data[0]
	for _, v := range a.Data[1:] {
		if v < m {
			m = v
		}
	}
	return m
}

// Max returns the maximum element. Undefined for an empty array.
func (a *Array) Max() float64 {
	m := a.Data[0]
	for _, v := range a.Data[1:] {
		if v > m {
			m = v
		}
	}
	return m
}

// Sum returns the sum of all elements.
func (a *Array) Sum() float64 {
	s := 0.0
	for _, v := range a.Data {
		s += v
	}
	return s
}

// Mean returns the arithmetic mean of all elements. Undefined for an
// empty array.
func (a *Array) Mean() float64 { return a.Sum() / float64(len(a.Data)) }

// Ptp returns the peak-to-peak range (Max - Min).
func (a *Array) Ptp() float64 { return a.Max() - a.Min() }

// UniqueValues returns the sorted, de-duplicated set of values in a.
func (a *Array) UniqueValues() []float64 {
	seen := make(map[float64]struct{}, len(a.Data))
	out := make([]float64, 0, len(a.Data))
	for _, v := range a.Data {
		if _, ok := seen[v]; !ok {
			seen[v] = struct{}{}
			out = append(out, v)
		}
	}
	sort.Float64s(out)
	return out
}

// --- normalization ---

// Normalize divides every element by the sum of all elements, in place.
// Intended for kernel arrays; undefined if the sum is 0.
func (a *Array) Normalize() {
	s := a.Sum()
	a.MulScalarAssign(1.0 / s)
}

// NormalizationCoeff returns (scale, offset) such that
// scale*x+offset maps [vmin,vmax] onto [0,1].
func NormalizationCoeff(vmin, vmax float64) (scale, offset float64) {
	span := vmax - vmin
	scale = 1.0 / span
	offset = -vmin / span
	return
}
