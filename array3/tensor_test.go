// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package array3

import (
	"testing"

	"github.com/gazed/highmap/array"
)

func TestSetSliceAndRemap(t *testing.T) {
	tn := New(2, 2, 3)
	r := array.NewFilled(2, 2, 0.5)
	if err := tn.SetSlice(0, r); err != nil {
		t.Fatalf("SetSlice: %v", err)
	}
	if tn.At(0, 0, 0) != 0.5 {
		t.Fatalf("SetSlice did not write expected channel value")
	}
	if tn.At(0, 0, 1) != 0 {
		t.Fatalf("SetSlice touched a channel it should not have")
	}
	tn.Remap(0, 0.5, 0, 1)
	if tn.At(0, 0, 0) != 1 {
		t.Fatalf("Remap: got %v", tn.At(0, 0, 0))
	}
}

func TestSetSliceShapeMismatch(t *testing.T) {
	tn := New(2, 2, 3)
	r := array.New(3, 3)
	if err := tn.SetSlice(0, r); err == nil {
		t.Fatalf("expected shape mismatch error")
	}
}
