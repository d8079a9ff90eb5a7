// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package pyramid

import (
	"math"
	"testing"

	"github.com/gazed/highmap/array"
)

func TestBuildReconstructRoundTripsConstant(t *testing.T) {
	a := array.NewFilled(16, 16, 4)
	p := Build(a, 3, 0.1, 0.25)
	out := p.Reconstruct()
	if out.Shape != a.Shape {
		t.Fatalf("expected reconstruction to recover the original shape, got %v want %v", out.Shape, a.Shape)
	}
	for _, v := range out.Data {
		if math.Abs(v-4) > 1e-6 {
			t.Fatalf("expected constant field to round-trip exactly, got %v", v)
		}
	}
}

func TestBuildProducesShrinkingLevels(t *testing.T) {
	a := array.New(32, 32)
	for i := range a.Data {
		a.Data[i] = float64(i % 7)
	}
	p := Build(a, 2, 0.2, 0.25)
	if len(p.High) != 2 {
		t.Fatalf("expected 2 highpass levels, got %d", len(p.High))
	}
	if p.Residual.Nx() >= a.Nx() {
		t.Fatalf("expected residual to be coarser than the source, got %v", p.Residual.Shape)
	}
}

func TestTransformHighpassZeroWeightLeavesUnchanged(t *testing.T) {
	a := array.New(16, 16)
	for i := range a.Data {
		a.Data[i] = float64(i)
	}
	p := Build(a, 2, 0.2, 0.25)
	before := p.High[0].Clone()
	p.Transform(func(x *array.Array) { x.Fill(0) }, SupportHighpass, []float64{0, 0}, 0)
	for i := range before.Data {
		if p.High[0].Data[i] != before.Data[i] {
			t.Fatalf("expected zero weight to leave the level unchanged")
		}
	}
}
