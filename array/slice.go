// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package array

// ExtractSlice returns a new array of shape (i2-i1, j2-j1) holding the
// sub-block [i1,i2) x [j1,j2) of a. Upper bounds are exclusive; every
// slice call in this package uses exclusive bounds, never a mix.
func (a *Array) ExtractSlice(i1, i2, j1, j2 int) *Array {
	out := New(i2-i1, j2-j1)
	for i := i1; i < i2; i++ {
		for j := j1; j < j2; j++ {
			out.Set(i-i1, j-j1, a.At(i, j))
		}
	}
	return out
}

// SetSlice writes value into every cell of the [i1,i2) x [j1,j2) block.
func (a *Array) SetSlice(i1, i2, j1, j2 int, value float64) {
	for i := i1; i < i2; i++ {
		for j := j1; j < j2; j++ {
			a.Set(i, j, value)
		}
	}
}

// Row returns a copy of row i as a 1D sequence.
func (a *Array) Row(i int) []float64 {
	out := make([]float64, a.Shape[1])
	for j := 0; j < a.Shape[1]; j++ {
		out[j] = a.At(i, j)
	}
	return out
}

// Col returns a copy of column j as a 1D sequence.
func (a *Array) Col(j int) []float64 {
	out := make([]float64, a.Shape[0])
	for i := 0; i < a.Shape[0]; i++ {
		out[i] = a.At(i, j)
	}
	return out
}
