// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package mathutil

import (
	"math"
	"testing"
)

func TestSmoothstepEndpoints(t *testing.T) {
	if Smoothstep3(0) != 0 || Smoothstep3(1) != 1 {
		t.Fatalf("smoothstep3 endpoints wrong")
	}
	if Smoothstep5(0) != 0 || Smoothstep5(1) != 1 {
		t.Fatalf("smoothstep5 endpoints wrong")
	}
}

func TestRemap(t *testing.T) {
	got := Remap(5, 0, 10, 0, 1)
	if math.Abs(got-0.5) > 1e-9 {
		t.Fatalf("remap: got %v", got)
	}
}

func TestSmoothMinApproachesMin(t *testing.T) {
	got := SmoothMin(1, 2, 0)
	if got != 1 {
		t.Fatalf("smoothmin k=0: got %v", got)
	}
}

func TestLinspace(t *testing.T) {
	v := Linspace(0, 1, 5)
	if len(v) != 5 || v[0] != 0 || v[4] != 1 {
		t.Fatalf("linspace: got %v", v)
	}
}

func TestArgsort(t *testing.T) {
	v := []float64{3, 1, 2}
	idx := Argsort(v)
	if idx[0] != 1 || idx[1] != 2 || idx[2] != 0 {
		t.Fatalf("argsort: got %v", idx)
	}
}

func TestUnique(t *testing.T) {
	u := Unique([]float64{3, 1, 1, 2, 3})
	if len(u) != 3 || u[0] != 1 || u[1] != 2 || u[2] != 3 {
		t.Fatalf("unique: got %v", u)
	}
}
