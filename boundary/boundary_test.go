// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package boundary

import (
	"testing"

	"github.com/gazed/highmap/array"
)

func TestExtrapolateBorders(t *testing.T) {
	a := array.New(5, 5)
	for i := 1; i < 4; i++ {
		for j := 1; j < 4; j++ {
			a.Set(i, j, 7)
		}
	}
	ExtrapolateBorders(a)
	if a.At(0, 0) != 7 {
		t.Fatalf("corner not extrapolated: got %v", a.At(0, 0))
	}
}

func TestBufferUnbufferRoundTrip(t *testing.T) {
	a := array.New(4, 4)
	for i := range a.Data {
		a.Data[i] = float64(i)
	}
	buf := Buffer(a, 2, 2)
	back := Unbuffer(buf, 2, 2)
	for i := range a.Data {
		if back.Data[i] != a.Data[i] {
			t.Fatalf("buffer round trip mismatch at %d: got %v want %v", i, back.Data[i], a.Data[i])
		}
	}
}

func TestRotate90Shape(t *testing.T) {
	a := array.New(3, 5)
	r := Rotate90(a)
	if r.Shape != [2]int{5, 3} {
		t.Fatalf("rotate90 shape: got %v", r.Shape)
	}
}

func TestTransposeInvolution(t *testing.T) {
	a := array.New(3, 4)
	for i := range a.Data {
		a.Data[i] = float64(i)
	}
	back := Transpose(Transpose(a))
	for i := range a.Data {
		if back.Data[i] != a.Data[i] {
			t.Fatalf("double transpose mismatch at %d", i)
		}
	}
}

func TestTranslateWraparound(t *testing.T) {
	a := array.New(4, 4)
	a.Set(0, 0, 9)
	out := Translate(a, 1, 0)
	if out.At(1, 0) != 9 {
		t.Fatalf("translate: expected value shifted to (1,0), got %v", out.At(1, 0))
	}
}
