// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

// Package array3 implements Tensor, an owned 3D (x,y,channel) grid used
// for colour/image output, mirroring array.Array's row-major layout with
// the channel axis fastest-varying.
package array3

import (
	"fmt"

	"github.com/gazed/highmap/array"
)

// Tensor is a 3D grid with shape (nx, ny, nz); nz is typically 1 (grey),
// 3 (RGB) or 4 (RGBA) for image export.
type Tensor struct {
	Shape [3]int
	Data  []float64
}

// New allocates a zero-filled tensor of the given shape.
func New(nx, ny, nz int) *Tensor {
	return &Tensor{Shape: [3]int{nx, ny, nz}, Data: make([]float64, nx*ny*nz)}
}

func (t *Tensor) idx(i, j, k int) int {
	nz := t.Shape[2]
	return (i*t.Shape[1]+j)*nz + k
}

// At returns the value at (i,j,k). Unchecked.
func (t *Tensor) At(i, j, k int) float64 { return t.Data[t.idx(i, j, k)] }

// Set writes value at (i,j,k). Unchecked.
func (t *Tensor) Set(i, j, k int, value float64) { t.Data[t.idx(i, j, k)] = value }

// SetSlice copies a into channel k of t. Returns ErrShapeMismatch if a's
// shape disagrees with t's (nx,ny). This boundary is checked, even
// though single-element Tensor access is not, because a wrong-shape
// channel write silently corrupts every other channel's interpretation.
func (t *Tensor) SetSlice(k int, a *array.Array) error {
	if a.Shape[0] != t.Shape[0] || a.Shape[1] != t.Shape[1] {
		return fmt.Errorf("array3: slice shape %v does not match tensor plane %v: %w", a.Shape, [2]int{t.Shape[0], t.Shape[1]}, array.ErrShapeMismatch)
	}
	for i := 0; i < t.Shape[0]; i++ {
		for j := 0; j < t.Shape[1]; j++ {
			t.Set(i, j, k, a.At(i, j))
		}
	}
	return nil
}

// Min returns the minimum value over the full buffer.
func (t *Tensor) Min() float64 {
	m := t.Data[0]
	for _, v := range t.Data[1:] {
		if v < m {
			m = v
		}
	}
	return m
}

// Max returns the maximum value over the full buffer.
func (t *Tensor) Max() float64 {
	m := t.Data[0]
	for _, v := range t.Data[1:] {
		if v > m {
			m = v
		}
	}
	return m
}

// Remap rescales every value in t from [vmin,vmax] to [lo,hi] in place.
func (t *Tensor) Remap(vmin, vmax, lo, hi float64) {
	scale := (hi - lo) / (vmax - vmin)
	for i, v := range t.Data {
		t.Data[i] = lo + (v-vmin)*scale
	}
}
