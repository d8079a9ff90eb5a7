// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package highmap

import (
	"testing"

	"github.com/gazed/highmap/algebra"
	"github.com/gazed/highmap/array"
)

func TestNewBuildsRequestedTiling(t *testing.T) {
	hm := New(16, 16, 2, 2, 0.1, algebra.UnitBBox)
	if len(hm.Tiles) != 4 {
		t.Fatalf("expected 4 tiles, got %d", len(hm.Tiles))
	}
}

func TestNewSingleBuildsOneTile(t *testing.T) {
	hm := NewSingle(8, 8, algebra.UnitBBox)
	if len(hm.Tiles) != 1 {
		t.Fatalf("expected a single tile, got %d", len(hm.Tiles))
	}
}

func TestFromArrayPreservesValues(t *testing.T) {
	a := array.New(4, 4)
	for i := range a.Data {
		a.Data[i] = float64(i)
	}
	hm := FromArray(a)
	flat := hm.ToArray()
	for i := range flat.Data {
		if flat.Data[i] != a.Data[i] {
			t.Fatalf("expected FromArray to preserve values at %d: got %v want %v", i, flat.Data[i], a.Data[i])
		}
	}
}

func TestFillDispatchesSequentially(t *testing.T) {
	hm := New(16, 16, 2, 2, 0.1, algebra.UnitBBox)
	err := hm.Fill(Sequential, func(a *array.Array, shape [2]int, bbox algebra.BBox2) error {
		a.Fill(3)
		return nil
	})
	if err != nil {
		t.Fatalf("Fill: %v", err)
	}
	if hm.Max() != 3 {
		t.Fatalf("expected every tile filled with 3, got max %v", hm.Max())
	}
}
