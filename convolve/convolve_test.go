// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package convolve

import (
	"math"
	"testing"

	"github.com/gazed/highmap/array"
)

func TestSeparableKernelEquivalence(t *testing.T) {
	a := array.New(10, 10)
	for i := range a.Data {
		a.Data[i] = float64(i % 7)
	}
	u := []float64{1, 2, 1}
	v := []float64{1, 1}

	k := array.New(len(u), len(v))
	for i, uv := range u {
		for j, vv := range v {
			k.Set(i, j, uv*vv)
		}
	}

	got := Convolve2D(a, k)
	want := Convolve1DJ(Convolve1DI(a, u), v)

	if got.Shape != want.Shape {
		t.Fatalf("shape mismatch: got %v want %v", got.Shape, want.Shape)
	}
	for i := range got.Data {
		if math.Abs(got.Data[i]-want.Data[i]) > 1e-6 {
			t.Fatalf("separable equivalence failed at %d: got %v want %v", i, got.Data[i], want.Data[i])
		}
	}
}

func TestConvolve2DTruncatedShape(t *testing.T) {
	a := array.New(8, 8)
	k := array.New(3, 3)
	out := Convolve2DTruncated(a, k)
	if out.Shape != [2]int{5, 5} {
		t.Fatalf("truncated shape: got %v", out.Shape)
	}
}

func TestConvolve2DSVDApproximatesSeparableKernel(t *testing.T) {
	a := array.New(12, 12)
	for i := range a.Data {
		a.Data[i] = float64(i % 5)
	}
	u := []float64{1, 3, 1}
	v := []float64{1, 2, 1}
	k := array.New(len(u), len(v))
	for i, uv := range u {
		for j, vv := range v {
			k.Set(i, j, uv*vv)
		}
	}
	direct := Convolve2D(a, k)
	svd := Convolve2DSVD(a, k, 1)
	for i := range direct.Data {
		if math.Abs(direct.Data[i]-svd.Data[i]) > 1e-6 {
			t.Fatalf("rank-1 SVD of a separable kernel should match direct convolution: got %v want %v", svd.Data[i], direct.Data[i])
		}
	}
}
