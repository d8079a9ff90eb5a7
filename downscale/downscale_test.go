// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package downscale

import (
	"math"
	"testing"

	"github.com/gazed/highmap/array"
)

func TestTransformPreservesConstantField(t *testing.T) {
	a := array.NewFilled(16, 16, 5)
	out := Transform(a, 4, func(c *array.Array) {}, false)
	for _, v := range out.Data {
		if math.Abs(v-5) > 1e-6 {
			t.Fatalf("expected constant field preserved, got %v", v)
		}
	}
}

func TestTransformAppliesOpAtCoarseScale(t *testing.T) {
	a := array.New(16, 16)
	out := Transform(a, 4, func(c *array.Array) { c.Fill(1) }, false)
	if out.Mean() <= 0 {
		t.Fatalf("expected the coarse-scale op's contribution to raise the mean, got %v", out.Mean())
	}
}

func TestTransformMultiKcChainsLevels(t *testing.T) {
	a := array.NewFilled(16, 16, 1)
	calls := 0
	out := TransformMultiKc(a, []int{4, 2}, func(c *array.Array, level int) {
		calls++
		if level < 0 || level > 1 {
			t.Fatalf("unexpected level index %d", level)
		}
	}, false)
	if calls != 2 {
		t.Fatalf("expected 2 op invocations, got %d", calls)
	}
	if out.Shape != a.Shape {
		t.Fatalf("expected output shape to match input, got %v", out.Shape)
	}
}
