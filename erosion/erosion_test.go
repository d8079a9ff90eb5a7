// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package erosion

import (
	"math"
	"testing"

	"github.com/gazed/highmap/array"
)

func cone(nx, ny int) *array.Array {
	a := array.New(nx, ny)
	cx, cy := float64(nx)/2, float64(ny)/2
	for i := 0; i < nx; i++ {
		for j := 0; j < ny; j++ {
			d := math.Hypot(float64(i)-cx, float64(j)-cy)
			a.Set(i, j, math.Max(0, 1-d/cx))
		}
	}
	return a
}

func TestParticleErosionDeterministic(t *testing.T) {
	z1 := cone(24, 24)
	z2 := cone(24, 24)
	cfg := DefaultParticleConfig()
	cfg.NParticles = 50
	cfg.Seed = 5
	ParticleErosion(z1, cfg, nil)
	ParticleErosion(z2, cfg, nil)
	for i := range z1.Data {
		if z1.Data[i] != z2.Data[i] {
			t.Fatalf("expected particle erosion to be deterministic given the same seed")
		}
	}
}

func TestParticleErosionDoesNotProduceNaN(t *testing.T) {
	z := cone(24, 24)
	cfg := DefaultParticleConfig()
	cfg.NParticles = 80
	track := array.New(24, 24)
	ParticleErosion(z, cfg, track)
	for _, v := range z.Data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("particle erosion produced a non-finite value: %v", v)
		}
	}
}

func TestStreamPowerReducesPeaks(t *testing.T) {
	z := cone(16, 16)
	before := z.Max()
	StreamPower(z, StreamPowerConfig{Power: 0.5, ClipRatio: 2})
	if z.Max() > before {
		t.Fatalf("expected stream power erosion to not increase the peak, before=%v after=%v", before, z.Max())
	}
}

func TestStreamPowerLogDoesNotProduceNaN(t *testing.T) {
	z := cone(16, 16)
	StreamPowerLog(z, StreamPowerLogConfig{Power: 1, SaturationK: 2, DepositIters: 2})
	for _, v := range z.Data {
		if math.IsNaN(v) {
			t.Fatalf("stream power log produced NaN")
		}
	}
}

func TestThermalCapsExcessiveSlope(t *testing.T) {
	z := array.New(9, 9)
	z.Set(4, 4, 10)
	cfg := ThermalConfig{Iterations: 20, TalusAngle: 0.3, ThermalWeight: 1, StreamWeight: 0}
	Thermal(z, cfg)
	maxSlope := 0.0
	for di := -1; di <= 1; di++ {
		for dj := -1; dj <= 1; dj++ {
			if di == 0 && dj == 0 {
				continue
			}
			d := math.Hypot(float64(di), float64(dj))
			s := math.Abs(z.At(4, 4)-z.At(4+di, 4+dj)) / d
			if s > maxSlope {
				maxSlope = s
			}
		}
	}
	if maxSlope > 1.0 {
		t.Fatalf("expected thermal erosion to reduce the peak's slope substantially, got %v", maxSlope)
	}
}

func TestStratifyProducesBandedOutput(t *testing.T) {
	z := array.New(20, 1)
	for i := range z.Data {
		z.Data[i] = float64(i) / 19
	}
	Stratify(z, []float64{0.5}, []float64{1, 1})
	for _, v := range z.Data {
		if v < 0 || v > 1 {
			t.Fatalf("expected stratified output to remain in [0,1], got %v", v)
		}
	}
}

func TestDistanceTransformZeroAtMask(t *testing.T) {
	mask := array.New(9, 9)
	mask.Set(4, 4, 1)
	d := DistanceTransform(mask)
	if d.At(4, 4) != 0 {
		t.Fatalf("expected zero distance at the mask cell, got %v", d.At(4, 4))
	}
	if d.At(0, 0) < d.At(3, 4) {
		t.Fatalf("expected distance to grow away from the mask cell")
	}
}

func TestLoadParticleConfigOverridesDefaults(t *testing.T) {
	data := []byte("n_particles: 42\nseed: 99\n")
	cfg, err := LoadParticleConfig(data)
	if err != nil {
		t.Fatalf("LoadParticleConfig: %v", err)
	}
	if cfg.NParticles != 42 {
		t.Fatalf("expected n_particles to override to 42, got %d", cfg.NParticles)
	}
	if cfg.Seed != 99 {
		t.Fatalf("expected seed to override to 99, got %d", cfg.Seed)
	}
	if cfg.Dt != DefaultParticleConfig().Dt {
		t.Fatalf("expected unspecified fields to keep their default, got Dt=%v", cfg.Dt)
	}
}

func TestLoadParticleConfigRejectsInvalidYAML(t *testing.T) {
	if _, err := LoadParticleConfig([]byte("not: [valid")); err == nil {
		t.Fatalf("expected an error for malformed yaml")
	}
}

func TestDefaultParticleConfigAppliesAttrs(t *testing.T) {
	cfg := DefaultParticleConfig(WithNParticles(250), WithParticleSeed(9), WithErosionRates(2, 0.1, 0.3))
	if cfg.NParticles != 250 {
		t.Fatalf("expected WithNParticles to override NParticles, got %d", cfg.NParticles)
	}
	if cfg.Seed != 9 {
		t.Fatalf("expected WithParticleSeed to override Seed, got %d", cfg.Seed)
	}
	if cfg.CCapacity != 2 || cfg.CErosion != 0.1 || cfg.CDeposition != 0.3 {
		t.Fatalf("expected WithErosionRates to override capacity/erosion/deposition, got %+v", cfg)
	}
}
