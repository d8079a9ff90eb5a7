// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package array

import (
	"math"
	"testing"

	"github.com/gazed/highmap/algebra"
)

func fillRamp(nx, ny int) *Array {
	a := New(nx, ny)
	for i := 0; i < nx; i++ {
		for j := 0; j < ny; j++ {
			a.Set(i, j, float64(i*ny+j))
		}
	}
	return a
}

func TestShapeAlgebra(t *testing.T) {
	a := fillRamp(5, 5)
	zero := New(5, 5)
	one := NewFilled(5, 5, 1)

	sum := a.Add(zero)
	for i := range a.Data {
		if sum.Data[i] != a.Data[i] {
			t.Fatalf("A+0 != A at %d", i)
		}
	}
	prod := a.Mul(one)
	for i := range a.Data {
		if prod.Data[i] != a.Data[i] {
			t.Fatalf("A*1 != A at %d", i)
		}
	}
	diff := a.Sub(a)
	for i := range diff.Data {
		if diff.Data[i] != 0 {
			t.Fatalf("A-A != 0 at %d", i)
		}
	}
}

func TestResampleIdempotence(t *testing.T) {
	a := fillRamp(6, 4)
	r := a.ResampleToShape(6, 4)
	for i := range a.Data {
		if math.Abs(r.Data[i]-a.Data[i]) > 1e-9 {
			t.Fatalf("resample to same shape changed value at %d: %v vs %v", i, r.Data[i], a.Data[i])
		}
	}
}

func TestResampleNearestIsSelection(t *testing.T) {
	a := fillRamp(5, 5)
	r := a.ResampleToShapeNearest(11, 11)
	set := make(map[float64]bool, len(a.Data))
	for _, v := range a.Data {
		set[v] = true
	}
	for _, v := range r.Data {
		if !set[v] {
			t.Fatalf("resample-nearest produced value %v not present in source", v)
		}
	}
}

func TestValueNearestClamp(t *testing.T) {
	a := fillRamp(4, 4)
	bbox := algebra.BBox2{Xmin: 0, Xmax: 3, Ymin: 0, Ymax: 3}
	got := a.ValueNearest(100, -100, bbox)
	want := a.At(3, 0)
	if got != want {
		t.Fatalf("ValueNearest outside bbox: got %v, want %v (clamped corner)", got, want)
	}
}

func TestBilinearAt(t *testing.T) {
	a := New(2, 2)
	a.Set(0, 0, 0)
	a.Set(1, 0, 1)
	a.Set(0, 1, 2)
	a.Set(1, 1, 3)
	got := a.ValueBilinearAt(0, 0, 0.5, 0.5)
	want := 1.5
	if math.Abs(got-want) > 1e-9 {
		t.Fatalf("bilinear center: got %v, want %v", got, want)
	}
}

func TestExtractSliceExclusive(t *testing.T) {
	a := fillRamp(5, 5)
	s := a.ExtractSlice(1, 3, 1, 4)
	if s.Shape != [2]int{2, 3} {
		t.Fatalf("extract slice shape: got %v", s.Shape)
	}
	if s.At(0, 0) != a.At(1, 1) {
		t.Fatalf("extract slice origin mismatch")
	}
}

func TestReductions(t *testing.T) {
	a := fillRamp(3, 3)
	if a.Min() != 0 {
		t.Fatalf("Min: got %v", a.Min())
	}
	if a.Max() != 8 {
		t.Fatalf("Max: got %v", a.Max())
	}
	if a.Sum() != 36 {
		t.Fatalf("Sum: got %v", a.Sum())
	}
	if a.Ptp() != 8 {
		t.Fatalf("Ptp: got %v", a.Ptp())
	}
}

func TestUniqueValues(t *testing.T) {
	a := New(3, 3)
	a.Fill(1)
	a.Set(0, 0, 2)
	u := a.UniqueValues()
	if len(u) != 2 || u[0] != 1 || u[1] != 2 {
		t.Fatalf("UniqueValues: got %v", u)
	}
}

func TestNormalize(t *testing.T) {
	a := NewFilled(2, 2, 2)
	a.Normalize()
	if math.Abs(a.Sum()-1) > 1e-9 {
		t.Fatalf("normalize sum: got %v", a.Sum())
	}
}

func TestResampleToShapeBicubicPreservesConstant(t *testing.T) {
	a := NewFilled(6, 6, 3)
	out := a.ResampleToShapeBicubic(12, 9)
	for _, v := range out.Data {
		if math.Abs(v-3) > 1e-9 {
			t.Fatalf("expected constant field preserved by bicubic resample, got %v", v)
		}
	}
}

func TestResampleToShapeBicubicReproducesCorners(t *testing.T) {
	a := fillRamp(5, 5)
	out := a.ResampleToShapeBicubic(5, 5)
	if math.Abs(out.At(0, 0)-a.At(0, 0)) > 1e-6 {
		t.Fatalf("expected identity resample to reproduce corner, got %v want %v", out.At(0, 0), a.At(0, 0))
	}
	if math.Abs(out.At(4, 4)-a.At(4, 4)) > 1e-6 {
		t.Fatalf("expected identity resample to reproduce far corner, got %v want %v", out.At(4, 4), a.At(4, 4))
	}
}
