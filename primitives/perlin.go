// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package primitives

import (
	"math"
	"math/rand"
)

// Perlin is a classic-Perlin (non-simplex) gradient-noise generator,
// built the same way Simplex is: a seeded, shuffled permutation table
// plus a small gradient set, but using the un-skewed square-lattice
// interpolation that distinguishes classic Perlin noise from simplex
// noise.
type Perlin struct {
	perm []byte
}

// NewPerlin returns a Perlin noise generator for the given seed.
func NewPerlin(seed int64) *Perlin {
	rng := rand.New(rand.NewSource(seed))
	base := append([]byte(nil), basePermutation...)
	pseudo := make([]byte, 0, len(base))
	for len(base) > 0 {
		idx := rng.Intn(len(base))
		pseudo = append(pseudo, base[idx])
		base = append(base[:idx], base[idx+1:]...)
	}
	perm := make([]byte, 512)
	for i := 0; i < 512; i++ {
		perm[i] = pseudo[i&255]
	}
	return &Perlin{perm: perm}
}

func fade(t float64) float64 { return t * t * t * (t*(t*6-15) + 10) }

func lerp(t, a, b float64) float64 { return a + t*(b-a) }

func grad2(hash byte, x, y float64) float64 {
	switch hash & 3 {
	case 0:
		return x + y
	case 1:
		return -x + y
	case 2:
		return x - y
	default:
		return -x - y
	}
}

// Gen2D evaluates classic Perlin noise at (x,y), returning a value
// nominally in [-1,1].
func (p *Perlin) Gen2D(x, y float64) float64 {
	xi := int(math.Floor(x)) & 255
	yi := int(math.Floor(y)) & 255
	xf := x - math.Floor(x)
	yf := y - math.Floor(y)

	u := fade(xf)
	v := fade(yf)

	aa := p.perm[p.perm[xi]+byte(yi)]
	ab := p.perm[p.perm[xi]+byte(yi)+1]
	ba := p.perm[p.perm[xi+1]+byte(yi)]
	bb := p.perm[p.perm[xi+1]+byte(yi)+1]

	x1 := lerp(u, grad2(aa, xf, yf), grad2(ba, xf-1, yf))
	x2 := lerp(u, grad2(ab, xf, yf-1), grad2(bb, xf-1, yf-1))
	return lerp(v, x1, x2)
}

// Func returns p as a NoiseFunc handle.
func (p *Perlin) Func() NoiseFunc { return p.Gen2D }

// Worley is a cellular ("Worley"/Voronoi) noise generator built on the
// distance from a point to the nearest of a seeded Poisson-ish point
// set, one per unit grid cell jittered within the cell; Gen2D returns
// that distance negated and rescaled.
type Worley struct {
	seed int64
}

// NewWorley returns a Worley noise generator for the given seed.
func NewWorley(seed int64) *Worley { return &Worley{seed: seed} }

// cellPoint deterministically derives the jittered feature point inside
// grid cell (ci,cj) from the generator's seed, so repeated evaluation is
// reproducible without storing a global point set.
func (w *Worley) cellPoint(ci, cj int) (px, py float64) {
	h := uint64(w.seed) ^ uint64(ci)*0x9E3779B97F4A7C15 ^ uint64(cj)*0xC2B2AE3D27D4EB4F
	h ^= h >> 33
	h *= 0xff51afd7ed558ccd
	h ^= h >> 33
	rx := float64(h&0xFFFF) / float64(0xFFFF)
	ry := float64((h>>16)&0xFFFF) / float64(0xFFFF)
	return float64(ci) + rx, float64(cj) + ry
}

// Gen2D returns the distance from (x,y) to the nearest feature point
// among the 3x3 neighbouring unit cells, negated and rescaled to
// nominally land in [-1,1] like the other generators.
func (w *Worley) Gen2D(x, y float64) float64 {
	ci, cj := int(math.Floor(x)), int(math.Floor(y))
	best := math.MaxFloat64
	for di := -1; di <= 1; di++ {
		for dj := -1; dj <= 1; dj++ {
			px, py := w.cellPoint(ci+di, cj+dj)
			dx, dy := x-px, y-py
			d := math.Sqrt(dx*dx + dy*dy)
			if d < best {
				best = d
			}
		}
	}
	return 1 - 2*math.Min(best, 1)
}

// Func returns w as a NoiseFunc handle.
func (w *Worley) Func() NoiseFunc { return w.Gen2D }
