// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package erosion

import (
	"math"

	"github.com/gazed/highmap/array"
	"github.com/gazed/highmap/hydrology"
)

// StreamPowerConfig bundles the coefficients of a stream-power erosion
// pass.
type StreamPowerConfig struct {
	Power      float64
	ClipRatio  float64
	GradScale  float64
	Moisture   *array.Array // optional per-cell multiplier, nil to disable
}

// StreamPower computes D-infinity accumulation A, clips it at
// ClipRatio*sqrt(mean(A)), raises the clipped value to Power, optionally
// scales by local gradient magnitude and moisture, and subtracts the
// result from z in place.
func StreamPower(z *array.Array, cfg StreamPowerConfig) {
	acc := hydrology.DInfinityAccumulation(z)
	clip := cfg.ClipRatio * math.Sqrt(acc.Mean())
	nx, ny := z.Nx(), z.Ny()
	for i := 1; i < nx-1; i++ {
		for j := 1; j < ny-1; j++ {
			a := math.Min(acc.At(i, j), clip)
			e := math.Pow(a, cfg.Power)
			if cfg.GradScale > 0 {
				dx, dy := z.GradientAt(i, j)
				e *= 1 + cfg.GradScale*math.Hypot(dx, dy)
			}
			if cfg.Moisture != nil {
				e *= cfg.Moisture.At(i, j)
			}
			z.Set(i, j, z.At(i, j)-e)
		}
	}
}

// StreamPowerLogConfig bundles the coefficients of the log-accumulation
// variant of stream-power erosion.
type StreamPowerLogConfig struct {
	Power        float64
	SaturationK  float64
	DepositIters int
}

// StreamPowerLog is the "log" variant of StreamPower: it erodes by
// log10(A) with a saturation knee at SaturationK, then runs a
// smooth_fill_holes-style deposition pass (raising any cell lower than
// the mean of its eight neighbours to that mean) for DepositIters
// iterations.
func StreamPowerLog(z *array.Array, cfg StreamPowerLogConfig) {
	acc := hydrology.DInfinityAccumulation(z)
	nx, ny := z.Nx(), z.Ny()
	for i := 1; i < nx-1; i++ {
		for j := 1; j < ny-1; j++ {
			a := math.Log10(1 + acc.At(i, j))
			sat := a / (1 + a/cfg.SaturationK)
			z.Set(i, j, z.At(i, j)-math.Pow(sat, cfg.Power))
		}
	}
	smoothFillHoles(z, cfg.DepositIters)
}

// smoothFillHoles raises any interior cell lower than the mean of its
// eight neighbours towards that mean, iterations times: a cheap
// deposition pass that removes single-cell pits left by erosion.
func smoothFillHoles(z *array.Array, iterations int) {
	nx, ny := z.Nx(), z.Ny()
	for it := 0; it < iterations; it++ {
		next := z.Clone()
		for i := 1; i < nx-1; i++ {
			for j := 1; j < ny-1; j++ {
				mean := (z.At(i-1, j) + z.At(i+1, j) + z.At(i, j-1) + z.At(i, j+1) +
					z.At(i-1, j-1) + z.At(i+1, j-1) + z.At(i-1, j+1) + z.At(i+1, j+1)) / 8
				if z.At(i, j) < mean {
					next.Set(i, j, mean)
				}
			}
		}
		z.Data, next.Data = next.Data, z.Data
	}
}

// ThermalConfig bundles the coefficients of one Schott-coupled thermal
// erosion pass, which interleaves stream-power erosion and slope-limited
// thermal transport, weighted by user coefficients. It has no separate
// deposition pass.
type ThermalConfig struct {
	Iterations    int
	TalusAngle    float64 // maximum stable slope, in height/cell units
	ThermalWeight float64
	StreamWeight  float64
	StreamCfg     StreamPowerConfig
}

// Thermal runs cfg.Iterations passes of stream-power erosion
// (StreamWeight) fused with slope-limited thermal transport
// (ThermalWeight): material above TalusAngle relative to each lower
// neighbour is redistributed towards it in proportion to the excess
// slope, combining the two passes with additive weighting each
// iteration.
func Thermal(z *array.Array, cfg ThermalConfig) {
	nx, ny := z.Nx(), z.Ny()
	for it := 0; it < cfg.Iterations; it++ {
		if cfg.StreamWeight > 0 {
			scratch := z.Clone()
			StreamPower(scratch, cfg.StreamCfg)
			for idx := range z.Data {
				z.Data[idx] += cfg.StreamWeight * (scratch.Data[idx] - z.Data[idx])
			}
		}
		if cfg.ThermalWeight > 0 {
			next := z.Clone()
			for i := 1; i < nx-1; i++ {
				for j := 1; j < ny-1; j++ {
					transportThermalCell(z, next, i, j, cfg.TalusAngle, cfg.ThermalWeight)
				}
			}
			z.Data, next.Data = next.Data, z.Data
		}
	}
}

func transportThermalCell(z, next *array.Array, i, j int, talus, weight float64) {
	type drop struct{ di, dj int; excess float64 }
	drops := make([]drop, 0, 8)
	total, maxExcess := 0.0, 0.0
	for di := -1; di <= 1; di++ {
		for dj := -1; dj <= 1; dj++ {
			if di == 0 && dj == 0 {
				continue
			}
			d := math.Hypot(float64(di), float64(dj))
			slope := (z.At(i, j) - z.At(i+di, j+dj)) / d
			if slope > talus {
				excess := slope - talus
				drops = append(drops, drop{di, dj, excess})
				total += excess
				maxExcess = math.Max(maxExcess, excess)
			}
		}
	}
	if total <= 0 {
		return
	}
	moved := weight * maxExcess * 0.5
	next.Set(i, j, next.At(i, j)-moved)
	for _, d := range drops {
		share := moved * d.excess / total
		next.Set(i+d.di, j+d.dj, next.At(i+d.di, j+d.dj)+share)
	}
}
