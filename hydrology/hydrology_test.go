// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package hydrology

import (
	"testing"

	"github.com/gazed/highmap/array"
)

func slope(nx, ny int) *array.Array {
	a := array.New(nx, ny)
	for i := 0; i < nx; i++ {
		for j := 0; j < ny; j++ {
			a.Set(i, j, float64(nx-i))
		}
	}
	return a
}

func TestD8DirectionPointsDownslope(t *testing.T) {
	z := slope(9, 9)
	dir := D8Direction(z)
	d := Direction(dir.At(4, 4))
	if d != East && d != NE && d != SE {
		t.Fatalf("expected downslope direction to have an eastward component, got %v", d)
	}
}

func TestD8AccumulationConservesTotal(t *testing.T) {
	z := slope(8, 8)
	dir := D8Direction(z)
	acc := D8Accumulation(dir)
	sum := acc.Sum()
	if sum < float64(8*8) {
		t.Fatalf("expected accumulation sum to be at least the cell count, got %v", sum)
	}
}

func TestDInfinityAccumulationNonNegative(t *testing.T) {
	z := slope(8, 8)
	acc := DInfinityAccumulation(z)
	for _, v := range acc.Data {
		if v < 0 {
			t.Fatalf("expected non-negative accumulation, got %v", v)
		}
	}
}

func TestFillDepressionsRemovesLocalMinimum(t *testing.T) {
	z := array.NewFilled(7, 7, 10)
	for i := 0; i < 7; i++ {
		for j := 0; j < 7; j++ {
			if i == 0 || i == 6 || j == 0 || j == 6 {
				z.Set(i, j, 5)
			}
		}
	}
	z.Set(3, 3, 0) // interior pit below every boundary cell
	filled := FillDepressions(z)
	if filled.At(3, 3) < filled.At(0, 0) {
		t.Fatalf("expected the pit to be filled to at least its surrounding boundary elevation")
	}
}
