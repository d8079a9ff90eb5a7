// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package primitives

import (
	"math"
	"testing"

	"github.com/gazed/highmap/algebra"
)

func TestSimplexDeterministic(t *testing.T) {
	a := NewSimplex(42)
	b := NewSimplex(42)
	for _, p := range [][2]float64{{0.1, 0.2}, {5, -3}, {100.5, 2.25}} {
		va := a.Gen2D(p[0], p[1])
		vb := b.Gen2D(p[0], p[1])
		if va != vb {
			t.Fatalf("same seed produced different values at %v: %v vs %v", p, va, vb)
		}
	}
}

func TestSimplexDifferentSeedsDiffer(t *testing.T) {
	a := NewSimplex(1).Gen2D(1.23, 4.56)
	b := NewSimplex(2).Gen2D(1.23, 4.56)
	if a == b {
		t.Fatalf("different seeds unexpectedly produced identical noise")
	}
}

func TestSimplexBounded(t *testing.T) {
	s := NewSimplex(7)
	for x := 0.0; x < 10; x += 0.37 {
		v := s.Gen2D(x, x*1.3)
		if v < -1.5 || v > 1.5 {
			t.Fatalf("simplex noise out of expected range: %v", v)
		}
	}
}

func TestPerlinDeterministic(t *testing.T) {
	a := NewPerlin(9).Gen2D(3.3, 1.1)
	b := NewPerlin(9).Gen2D(3.3, 1.1)
	if a != b {
		t.Fatalf("perlin noise not deterministic for same seed")
	}
}

func TestWorleyValueInUnitRange(t *testing.T) {
	w := NewWorley(3)
	v := w.Gen2D(1.5, 2.5)
	if v < -1 || v > 1 {
		t.Fatalf("worley value out of range: %v", v)
	}
}

func TestConeMonotoneFromCenter(t *testing.T) {
	bbox := algebra.BBox2{Xmin: 0, Xmax: 1, Ymin: 0, Ymax: 1}
	a := Cone([2]int{65, 65}, bbox, 0.5, nil, nil, 1)
	center := a.At(32, 32)
	edge := a.At(0, 32)
	if edge > center {
		t.Fatalf("cone should decrease away from center: center=%v edge=%v", center, edge)
	}
}

func TestFbmSingleOctaveVaries(t *testing.T) {
	bbox := algebra.BBox2{Xmin: 0, Xmax: 4, Ymin: 0, Ymax: 4}
	cfg := FbmConfig{Octaves: 1, Persistence: 0.5, Lacunarity: 2, Kx: 1, Ky: 1}
	s := NewSimplex(11)
	out := Fbm([2]int{16, 16}, bbox, 11, s.Func(), cfg, nil)
	if out.Ptp() == 0 {
		t.Fatalf("expected non-trivial variation in fbm output")
	}
	if math.IsNaN(out.Sum()) {
		t.Fatalf("fbm produced NaN")
	}
}
