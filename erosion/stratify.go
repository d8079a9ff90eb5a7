// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package erosion

import (
	"math"

	"github.com/gazed/highmap/array"
)

// Stratify partitions [zmin,zmax] into len(levelGammas) bands bounded
// by levelHeights (strictly increasing, len(levelHeights) ==
// len(levelGammas)-1 interior boundaries plus the implicit zmin/zmax
// ends): for each cell falling in band k, it rescales to [0,1], applies
// v^gamma_k * (1 - exp(-ce*v)) with ce = 50/gamma_k (the exponential
// term suppresses floor artifacts at low v), then rescales back.
func Stratify(z *array.Array, levelHeights []float64, levelGammas []float64) {
	if len(levelGammas) == 0 {
		return
	}
	zmin, zmax := z.Min(), z.Max()
	bounds := make([]float64, 0, len(levelGammas)+1)
	bounds = append(bounds, zmin)
	bounds = append(bounds, levelHeights...)
	bounds = append(bounds, zmax)

	for idx, zVal := range z.Data {
		k := bandOf(zVal, bounds)
		lo, hi := bounds[k], bounds[k+1]
		if hi <= lo {
			continue
		}
		gamma := levelGammas[k]
		v := (zVal - lo) / (hi - lo)
		ce := 50 / gamma
		shaped := math.Pow(v, gamma) * (1 - math.Exp(-ce*v))
		z.Data[idx] = lo + shaped*(hi-lo)
	}
}

func bandOf(v float64, bounds []float64) int {
	n := len(bounds) - 1
	k := 0
	for k < n-1 && v >= bounds[k+1] {
		k++
	}
	return k
}

// StratifyMultiscale applies Stratify, then, while depth > 1 and at least
// two gammas remain, applies it again to the whole array with the first
// half of levelGammas and the heights between them, halving the number
// of bands at every recursion level. Each band's own [lo,hi) sub-range
// is not stratified separately.
func StratifyMultiscale(z *array.Array, levelHeights, levelGammas []float64, depth int) {
	Stratify(z, levelHeights, levelGammas)
	if depth <= 1 || len(levelGammas) < 2 {
		return
	}
	half := len(levelGammas) / 2
	StratifyMultiscale(z, levelHeights[:max0(half-1)], levelGammas[:half], depth-1)
}

func max0(v int) int {
	if v < 0 {
		return 0
	}
	return v
}
