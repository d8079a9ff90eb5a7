// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package kernel

import "testing"

func TestConeCenterIsMax(t *testing.T) {
	k := Cone(4)
	center := k.At(4, 4)
	for i := 0; i < k.Nx(); i++ {
		for j := 0; j < k.Ny(); j++ {
			if k.At(i, j) > center+1e-12 {
				t.Fatalf("cone: (%d,%d)=%v exceeds center %v", i, j, k.At(i, j), center)
			}
		}
	}
}

func TestDiskIsBinary(t *testing.T) {
	k := Disk(4)
	for _, v := range k.Data {
		if v != 0 && v != 1 {
			t.Fatalf("disk kernel value not binary: %v", v)
		}
	}
}

func TestCubicPulseShape(t *testing.T) {
	k := CubicPulse(4)
	if k.At(4, 4) != 1 {
		t.Fatalf("cubic pulse center: got %v, want 1", k.At(4, 4))
	}
	if k.At(0, 4) != 0 {
		t.Fatalf("cubic pulse edge: got %v, want 0", k.At(0, 4))
	}
}

func TestBlackmanWindow(t *testing.T) {
	w := Blackman(9)
	if len(w) != 9 {
		t.Fatalf("blackman length: got %d", len(w))
	}
	if w[0] > 0.01 || w[len(w)-1] > 0.01 {
		t.Fatalf("blackman window should taper to ~0 at edges: got %v, %v", w[0], w[len(w)-1])
	}
}
