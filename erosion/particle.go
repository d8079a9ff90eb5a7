// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

// Package erosion implements particle-based hydraulic erosion,
// stream-power erosion, Schott-coupled thermal erosion, stratification,
// and the distance transform used to seed erosion masks. The particle
// state machine is deterministic given seed and single-threaded
// execution: a bounded per-step iteration with an explicit termination
// condition, so a run can be replayed exactly from the same seed.
package erosion

import (
	"fmt"
	"math"
	"math/rand"

	"gopkg.in/yaml.v3"

	"github.com/gazed/highmap/array"
)

// ParticleConfig bundles the tunable coefficients of one hydraulic
// erosion run. Zero-valued fields are invalid; use DefaultParticleConfig
// as a starting point.
type ParticleConfig struct {
	NParticles    int     `yaml:"n_particles"`
	MaxPathLength int     `yaml:"max_path_length"`
	Dt            float64 `yaml:"dt"`
	CInertia      float64 `yaml:"c_inertia"`
	DragRate      float64 `yaml:"drag_rate"`
	CCapacity     float64 `yaml:"c_capacity"`
	CErosion      float64 `yaml:"c_erosion"`
	CDeposition   float64 `yaml:"c_deposition"`
	EvapRate      float64 `yaml:"evap_rate"`
	MinimumSlope  float64 `yaml:"minimum_slope"`
	GradientMin   float64 `yaml:"gradient_min"`
	VelocityMin   float64 `yaml:"velocity_min"`
	RadialRadius  int     `yaml:"radial_radius"`
	Seed          int64   `yaml:"seed"`
}

// LoadParticleConfig starts from DefaultParticleConfig and overrides any
// field present in the given yaml document, following load.Shd's
// "unmarshal onto a struct with yaml tags" convention for configuration
// that is easier to hand-edit as text than as Go source.
func LoadParticleConfig(data []byte) (ParticleConfig, error) {
	cfg := DefaultParticleConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("erosion: load particle config: %w", err)
	}
	return cfg, nil
}

// DefaultParticleConfig returns reasonable defaults matching the ranges
// the spec's algorithm description implies. Pass ParticleAttr values to
// override individual fields:
//
//	cfg := DefaultParticleConfig(WithNParticles(5000), WithParticleSeed(7))
func DefaultParticleConfig(attrs ...ParticleAttr) ParticleConfig {
	cfg := ParticleConfig{
		NParticles:    1000,
		MaxPathLength: 200,
		Dt:            0.2,
		CInertia:      1.0,
		DragRate:      0.01,
		CCapacity:     4.0,
		CErosion:      0.2,
		CDeposition:   0.2,
		EvapRate:      0.02,
		MinimumSlope:  1e-4,
		GradientMin:   1e-5,
		VelocityMin:   1e-5,
		RadialRadius:  1,
		Seed:          1,
	}
	for _, attr := range attrs {
		attr(&cfg)
	}
	return cfg
}

// ParticleAttr overrides one field of a ParticleConfig.
type ParticleAttr func(*ParticleConfig)

// WithNParticles sets the number of particles to simulate.
func WithNParticles(n int) ParticleAttr {
	return func(c *ParticleConfig) { c.NParticles = n }
}

// WithParticleSeed sets the deterministic RNG seed.
func WithParticleSeed(seed int64) ParticleAttr {
	return func(c *ParticleConfig) { c.Seed = seed }
}

// WithErosionRates sets the capacity, erosion, and deposition
// coefficients together.
func WithErosionRates(capacity, erosion, deposition float64) ParticleAttr {
	return func(c *ParticleConfig) {
		c.CCapacity = capacity
		c.CErosion = erosion
		c.CDeposition = deposition
	}
}

// particle is the per-particle state one simulation step operates on.
type particle struct {
	x, y         float64
	vx, vy       float64
	water        float64
	sediment     float64
}

// ParticleErosion runs cfg.NParticles hydraulic-erosion particles over z
// in place, optionally accumulating erosion (negative) and deposition
// (positive) into track if non-nil. Deterministic given cfg.Seed.
func ParticleErosion(z *array.Array, cfg ParticleConfig, track *array.Array) {
	rng := rand.New(rand.NewSource(cfg.Seed))
	nx, ny := z.Nx(), z.Ny()
	if nx < 4 || ny < 4 {
		return
	}
	for p := 0; p < cfg.NParticles; p++ {
		pt := &particle{
			x:     1 + rng.Float64()*float64(nx-3),
			y:     1 + rng.Float64()*float64(ny-3),
			water: 1,
		}
		runParticle(z, pt, cfg, rng, track)
	}
}

func runParticle(z *array.Array, pt *particle, cfg ParticleConfig, rng *rand.Rand, track *array.Array) {
	nx, ny := z.Nx(), z.Ny()
	for step := 0; step < cfg.MaxPathLength; step++ {
		i, j := int(math.Floor(pt.x)), int(math.Floor(pt.y))
		if i < 0 || i >= nx-1 || j < 0 || j >= ny-1 {
			return
		}
		u, v := pt.x-float64(i), pt.y-float64(j)

		dzdx, dzdy := z.GradientBilinearAt(i, j, u, v)
		gradLen := math.Hypot(dzdx, dzdy)
		if gradLen < cfg.GradientMin {
			return
		}

		speed := math.Hypot(pt.vx, pt.vy)
		if step > 0 && speed < cfg.VelocityMin {
			return
		}

		pt.vx = (pt.vx - cfg.Dt*dzdx/cfg.CInertia) * (1 - cfg.Dt*cfg.DragRate)
		pt.vy = (pt.vy - cfg.Dt*dzdy/cfg.CInertia) * (1 - cfg.Dt*cfg.DragRate)
		speed = math.Hypot(pt.vx, pt.vy)
		if speed*cfg.Dt > 1 && speed > 0 {
			scale := 1 / (speed * cfg.Dt)
			pt.vx *= scale
			pt.vy *= scale
		}

		zBefore := z.ValueBilinearAt(i, j, u, v)
		pt.x += pt.vx * cfg.Dt
		pt.y += pt.vy * cfg.Dt
		ni, nj := int(math.Floor(pt.x)), int(math.Floor(pt.y))
		if ni < 0 || ni >= nx-1 || nj < 0 || nj >= ny-1 {
			return
		}
		nu, nv := pt.x-float64(ni), pt.y-float64(nj)
		zAfter := z.ValueBilinearAt(ni, nj, nu, nv)
		dz := zAfter - zBefore

		capacity := cfg.CCapacity * math.Max(-dz, cfg.MinimumSlope) * math.Hypot(pt.vx, pt.vy) * pt.water
		if pt.sediment > capacity || dz > 0 {
			amount := cfg.CDeposition * (pt.sediment - capacity)
			if dz > 0 {
				amount = math.Min(pt.sediment, dz)
			}
			depositBilinear(z, i, j, u, v, amount)
			pt.sediment -= amount
			if track != nil {
				trackAdd(track, i, j, amount)
			}
		} else {
			amount := math.Min(cfg.CErosion*(capacity-pt.sediment), -dz)
			erodeRadial(z, ni, nj, amount, cfg.RadialRadius)
			pt.sediment += amount
			if track != nil {
				trackAdd(track, ni, nj, -amount)
			}
		}

		pt.water *= 1 - cfg.Dt*cfg.EvapRate
		if pt.water < 1e-4 {
			return
		}
	}
}

func depositBilinear(z *array.Array, i, j int, u, v, amount float64) {
	z.Set(i, j, z.At(i, j)+amount*(1-u)*(1-v))
	z.Set(i+1, j, z.At(i+1, j)+amount*u*(1-v))
	z.Set(i, j+1, z.At(i, j+1)+amount*(1-u)*v)
	z.Set(i+1, j+1, z.At(i+1, j+1)+amount*u*v)
}

func erodeRadial(z *array.Array, ci, cj int, amount float64, radius int) {
	if radius <= 0 {
		z.Set(ci, cj, z.At(ci, cj)-amount)
		return
	}
	nx, ny := z.Nx(), z.Ny()
	total := 0.0
	weightOf := func(p, q int) float64 {
		d := math.Hypot(float64(p), float64(q)) / float64(radius+1)
		if d > 1 {
			return 0
		}
		v := 1 - d*d
		return v * v
	}
	for p := -radius; p <= radius; p++ {
		for q := -radius; q <= radius; q++ {
			i, j := ci+p, cj+q
			if i < 0 || i >= nx || j < 0 || j >= ny {
				continue
			}
			total += weightOf(p, q)
		}
	}
	if total <= 0 {
		return
	}
	for p := -radius; p <= radius; p++ {
		for q := -radius; q <= radius; q++ {
			i, j := ci+p, cj+q
			if i < 0 || i >= nx || j < 0 || j >= ny {
				continue
			}
			w := weightOf(p, q) / total
			z.Set(i, j, z.At(i, j)-amount*w)
		}
	}
}

func trackAdd(track *array.Array, i, j int, amount float64) {
	if i < 0 || i >= track.Nx() || j < 0 || j >= track.Ny() {
		return
	}
	track.Set(i, j, track.At(i, j)+amount)
}
