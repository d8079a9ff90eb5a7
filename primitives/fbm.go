// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package primitives

import (
	"github.com/gazed/highmap/algebra"
	"github.com/gazed/highmap/array"
)

// FbmConfig parameterizes fractal brownian motion summation.
type FbmConfig struct {
	Octaves     int
	Persistence float64 // amplitude decay per octave (sometimes called "gain")
	Lacunarity  float64 // frequency growth per octave
	Kx, Ky      float64 // base wavenumbers
}

// DefaultFbmConfig returns reasonable octave defaults for terrain noise.
func DefaultFbmConfig() FbmConfig {
	return FbmConfig{Octaves: 8, Persistence: 0.55, Lacunarity: 2.0, Kx: 2.0, Ky: 2.0}
}

// Fbm sums cfg.Octaves scaled copies of noiseFn as fractional brownian
// motion: persistence decays each octave's amplitude, lacunarity grows
// its frequency. An optional per-cell ctrlParam array modulates each
// octave's contribution weight (nil to disable).
func Fbm(shape [2]int, bbox algebra.BBox2, seed int64, noiseFn NoiseFunc, cfg FbmConfig, ctrlParam *array.Array) *array.Array {
	out := array.New(shape[0], shape[1])
	nx, ny := shape[0], shape[1]
	for i := 0; i < nx; i++ {
		u := float64(i) / float64(maxInt(nx-1, 1))
		x := bbox.Xmin + u*bbox.Width()
		for j := 0; j < ny; j++ {
			v := float64(j) / float64(maxInt(ny-1, 1))
			y := bbox.Ymin + v*bbox.Height()

			total := 0.0
			freqX, freqY := cfg.Kx, cfg.Ky
			amplitude := cfg.Persistence
			for o := 0; o < cfg.Octaves; o++ {
				weight := 1.0
				if ctrlParam != nil {
					weight = ctrlParam.At(i, j)
				}
				total += noiseFn(x*freqX, y*freqY) * amplitude * weight
				freqX *= cfg.Lacunarity
				freqY *= cfg.Lacunarity
				amplitude *= cfg.Persistence
			}
			out.Set(i, j, total)
		}
	}
	return out
}
