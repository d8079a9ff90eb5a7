// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package quilt

import (
	"testing"

	"github.com/gazed/highmap/array"
)

func TestQuiltProducesExpectedShape(t *testing.T) {
	src := array.New(32, 32)
	for i := range src.Data {
		src.Data[i] = float64(i % 11)
	}
	cfg := Config{Tiling: [2]int{2, 2}, PatchBase: 8, Overlap: 4, Seed: 1}
	out := Quilt(src, cfg)
	wantNx := 2*8 + 4
	wantNy := 2*8 + 4
	if out.Nx() != wantNx || out.Ny() != wantNy {
		t.Fatalf("expected shape (%d,%d), got (%d,%d)", wantNx, wantNy, out.Nx(), out.Ny())
	}
}

func TestQuiltOnConstantFieldStaysConstant(t *testing.T) {
	src := array.NewFilled(20, 20, 7)
	cfg := Config{Tiling: [2]int{2, 2}, PatchBase: 6, Overlap: 3, Seed: 2}
	out := Quilt(src, cfg)
	for _, v := range out.Data {
		if v != 7 {
			t.Fatalf("expected constant field to quilt to a constant, got %v", v)
		}
	}
}

func TestQuiltIsDeterministic(t *testing.T) {
	src := array.New(24, 24)
	for i := range src.Data {
		src.Data[i] = float64(i % 13)
	}
	cfg := Config{Tiling: [2]int{2, 2}, PatchBase: 6, Overlap: 2, Seed: 42, AllowTransforms: true}
	a := Quilt(src, cfg)
	b := Quilt(src, cfg)
	for i := range a.Data {
		if a.Data[i] != b.Data[i] {
			t.Fatalf("expected identical seed to reproduce identical output at %d: %v vs %v", i, a.Data[i], b.Data[i])
		}
	}
}

func TestSampleFillsEveryCell(t *testing.T) {
	src := array.New(12, 12)
	for i := range src.Data {
		src.Data[i] = float64(i % 5)
	}
	cfg := SampleConfig{Shape: [2]int{10, 10}, PatchShape: [2]int{3, 3}, Threshold: 0.1, Seed: 3}
	out := Sample(src, cfg)
	if out.Nx() != 10 || out.Ny() != 10 {
		t.Fatalf("expected shape (10,10), got (%d,%d)", out.Nx(), out.Ny())
	}
}

func TestDefaultConfigAppliesAttrs(t *testing.T) {
	cfg := DefaultConfig(WithTiling(3, 5), WithPatchOverlap(16, 4), WithSeed(9), WithTransforms(true))
	if cfg.Tiling != [2]int{3, 5} {
		t.Fatalf("expected WithTiling to override Tiling, got %v", cfg.Tiling)
	}
	if cfg.PatchBase != 16 || cfg.Overlap != 4 {
		t.Fatalf("expected WithPatchOverlap to override PatchBase/Overlap, got %d/%d", cfg.PatchBase, cfg.Overlap)
	}
	if cfg.Seed != 9 {
		t.Fatalf("expected WithSeed to override Seed, got %d", cfg.Seed)
	}
	if !cfg.AllowTransforms {
		t.Fatalf("expected WithTransforms(true) to enable AllowTransforms")
	}
}

func TestSampleOnConstantSourceStaysConstant(t *testing.T) {
	src := array.NewFilled(10, 10, 3)
	cfg := SampleConfig{Shape: [2]int{8, 8}, PatchShape: [2]int{3, 3}, Threshold: 0.2, Seed: 5}
	out := Sample(src, cfg)
	for _, v := range out.Data {
		if v != 3 {
			t.Fatalf("expected constant source to synthesize a constant field, got %v", v)
		}
	}
}
