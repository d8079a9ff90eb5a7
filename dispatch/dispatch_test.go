// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package dispatch

import (
	"errors"
	"sync/atomic"
	"testing"

	"github.com/gazed/highmap/algebra"
	"github.com/gazed/highmap/array"
)

func makeTiles(n int) ([][2]int, []algebra.BBox2, [][]*array.Array) {
	shapes := make([][2]int, n)
	bboxes := make([]algebra.BBox2, n)
	tiles := make([][]*array.Array, n)
	for i := 0; i < n; i++ {
		shapes[i] = [2]int{4, 4}
		bboxes[i] = algebra.UnitBBox
		tiles[i] = []*array.Array{array.New(4, 4)}
	}
	return shapes, bboxes, tiles
}

func TestDispatchSequentialVisitsEveryTile(t *testing.T) {
	shapes, bboxes, tiles := makeTiles(5)
	var count int32
	err := Dispatch(Sequential, shapes, bboxes, tiles, func(a []*array.Array, shape [2]int, bbox algebra.BBox2) error {
		atomic.AddInt32(&count, 1)
		return nil
	})
	if err != nil {
		t.Fatalf("dispatch: %v", err)
	}
	if count != 5 {
		t.Fatalf("expected 5 visits, got %d", count)
	}
}

func TestDispatchDistributedVisitsEveryTile(t *testing.T) {
	shapes, bboxes, tiles := makeTiles(8)
	var count int32
	err := Dispatch(Distributed, shapes, bboxes, tiles, func(a []*array.Array, shape [2]int, bbox algebra.BBox2) error {
		atomic.AddInt32(&count, 1)
		return nil
	})
	if err != nil {
		t.Fatalf("dispatch: %v", err)
	}
	if count != 8 {
		t.Fatalf("expected 8 visits, got %d", count)
	}
}

func TestDispatchPropagatesError(t *testing.T) {
	shapes, bboxes, tiles := makeTiles(3)
	wantErr := errors.New("boom")
	err := Dispatch(Sequential, shapes, bboxes, tiles, func(a []*array.Array, shape [2]int, bbox algebra.BBox2) error {
		return wantErr
	})
	if !errors.Is(err, wantErr) {
		t.Fatalf("expected propagated error, got %v", err)
	}
}
