// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package primitives

import (
	"math"

	"github.com/gazed/highmap/algebra"
	"github.com/gazed/highmap/array"
)

// geom evaluates a geometric primitive over shape via
// FillArrayUsingXYFunction, the common entry point every primitive in
// this file shares.
func geom(shape [2]int, bbox algebra.BBox2, noiseX, noiseY *array.Array, stretching float64, fct func(x, y float64) float64) *array.Array {
	out := array.New(shape[0], shape[1])
	FillArrayUsingXYFunction(out, bbox, nil, noiseX, noiseY, stretching, func(x, y, _ float64) float64 { return fct(x, y) })
	return out
}

// Cone returns a conical bump centred in bbox, radius r, height 1 at the
// apex falling to 0 at radius r.
func Cone(shape [2]int, bbox algebra.BBox2, r float64, noiseX, noiseY *array.Array, stretching float64) *array.Array {
	cx, cy := (bbox.Xmin+bbox.Xmax)/2, (bbox.Ymin+bbox.Ymax)/2
	return geom(shape, bbox, noiseX, noiseY, stretching, func(x, y float64) float64 {
		d := math.Hypot(x-cx, y-cy) / r
		if d > 1 {
			return 0
		}
		return 1 - d
	})
}

// Disk is a flat-topped disk of radius r, height 1 inside, 0 outside.
func Disk(shape [2]int, bbox algebra.BBox2, r float64, noiseX, noiseY *array.Array, stretching float64) *array.Array {
	cx, cy := (bbox.Xmin+bbox.Xmax)/2, (bbox.Ymin+bbox.Ymax)/2
	return geom(shape, bbox, noiseX, noiseY, stretching, func(x, y float64) float64 {
		if math.Hypot(x-cx, y-cy) > r {
			return 0
		}
		return 1
	})
}

// SlopeX is a linear ramp along x: 0 at bbox.Xmin, 1 at bbox.Xmax.
func SlopeX(shape [2]int, bbox algebra.BBox2, noiseX, noiseY *array.Array, stretching float64) *array.Array {
	return geom(shape, bbox, noiseX, noiseY, stretching, func(x, y float64) float64 {
		return (x - bbox.Xmin) / bbox.Width()
	})
}

// SlopeY is a linear ramp along y: 0 at bbox.Ymin, 1 at bbox.Ymax.
func SlopeY(shape [2]int, bbox algebra.BBox2, noiseX, noiseY *array.Array, stretching float64) *array.Array {
	return geom(shape, bbox, noiseX, noiseY, stretching, func(x, y float64) float64 {
		return (y - bbox.Ymin) / bbox.Height()
	})
}

// Step is a Heaviside step along x at the given threshold in [0,1] of
// bbox width.
func Step(shape [2]int, bbox algebra.BBox2, threshold float64, noiseX, noiseY *array.Array, stretching float64) *array.Array {
	return geom(shape, bbox, noiseX, noiseY, stretching, func(x, y float64) float64 {
		u := (x - bbox.Xmin) / bbox.Width()
		if u < threshold {
			return 0
		}
		return 1
	})
}

// WaveSine is a sinusoidal wave with the given spatial frequency (cycles
// per bbox width) along x.
func WaveSine(shape [2]int, bbox algebra.BBox2, kw float64, noiseX, noiseY *array.Array, stretching float64) *array.Array {
	return geom(shape, bbox, noiseX, noiseY, stretching, func(x, y float64) float64 {
		u := (x - bbox.Xmin) / bbox.Width()
		return math.Sin(2 * math.Pi * kw * u)
	})
}

// WaveSquare is a square wave with the given spatial frequency along x.
func WaveSquare(shape [2]int, bbox algebra.BBox2, kw float64, noiseX, noiseY *array.Array, stretching float64) *array.Array {
	return geom(shape, bbox, noiseX, noiseY, stretching, func(x, y float64) float64 {
		u := (x - bbox.Xmin) / bbox.Width()
		if math.Sin(2*math.Pi*kw*u) >= 0 {
			return 1
		}
		return -1
	})
}

// WaveTriangular is a triangular wave with the given spatial frequency
// along x.
func WaveTriangular(shape [2]int, bbox algebra.BBox2, kw float64, noiseX, noiseY *array.Array, stretching float64) *array.Array {
	return geom(shape, bbox, noiseX, noiseY, stretching, func(x, y float64) float64 {
		u := (x - bbox.Xmin) / bbox.Width() * kw
		frac := u - math.Floor(u)
		return 2*math.Abs(2*frac-1) - 1
	})
}

// WaveDune is an asymmetric dune-profile wave: a shallow windward slope
// and steep leeward slope, commonly used to fake aeolian dune fields.
func WaveDune(shape [2]int, bbox algebra.BBox2, kw, sharpness float64, noiseX, noiseY *array.Array, stretching float64) *array.Array {
	return geom(shape, bbox, noiseX, noiseY, stretching, func(x, y float64) float64 {
		u := (x - bbox.Xmin) / bbox.Width() * kw
		frac := u - math.Floor(u)
		return math.Pow(math.Sin(math.Pi*frac), sharpness) * math.Sin(2*math.Pi*frac)
	})
}

// Crater is a circular rim-and-bowl crater of radius r and the given
// rim height above the floor.
func Crater(shape [2]int, bbox algebra.BBox2, r, rimHeight, depth float64, noiseX, noiseY *array.Array, stretching float64) *array.Array {
	cx, cy := (bbox.Xmin+bbox.Xmax)/2, (bbox.Ymin+bbox.Ymax)/2
	return geom(shape, bbox, noiseX, noiseY, stretching, func(x, y float64) float64 {
		d := math.Hypot(x-cx, y-cy) / r
		if d > 1.2 {
			return 0
		}
		bowl := -depth * (1 - d*d)
		rim := rimHeight * math.Exp(-20*(d-1)*(d-1))
		return bowl + rim
	})
}

// Caldera is a crater with a flattened floor and steep inner wall,
// approximating a volcanic caldera profile.
func Caldera(shape [2]int, bbox algebra.BBox2, r, wallWidth, depth float64, noiseX, noiseY *array.Array, stretching float64) *array.Array {
	cx, cy := (bbox.Xmin+bbox.Xmax)/2, (bbox.Ymin+bbox.Ymax)/2
	return geom(shape, bbox, noiseX, noiseY, stretching, func(x, y float64) float64 {
		d := math.Hypot(x-cx, y-cy)
		if d < r-wallWidth {
			return -depth
		}
		if d < r {
			t := (d - (r - wallWidth)) / wallWidth
			return -depth * (1 - t)
		}
		return 0
	})
}

// Peak is a smooth Gaussian-profile mountain peak of radius r.
func Peak(shape [2]int, bbox algebra.BBox2, r float64, noiseX, noiseY *array.Array, stretching float64) *array.Array {
	cx, cy := (bbox.Xmin+bbox.Xmax)/2, (bbox.Ymin+bbox.Ymax)/2
	return geom(shape, bbox, noiseX, noiseY, stretching, func(x, y float64) float64 {
		d2 := math.Hypot(x-cx, y-cy)
		return math.Exp(-(d2 * d2) / (2 * r * r))
	})
}

// BumpField scatters nBumps Gaussian bumps of radius r at positions
// derived from seed, summing their contributions.
func BumpField(shape [2]int, bbox algebra.BBox2, nBumps int, r float64, seed int64) *array.Array {
	out := array.New(shape[0], shape[1])
	w := NewWorley(seed)
	for i := range out.Data {
		out.Data[i] = 0
	}
	nx, ny := shape[0], shape[1]
	for b := 0; b < nBumps; b++ {
		px, py := w.cellPoint(b, 0)
		cx := bbox.Xmin + math.Mod(px, 1)*bbox.Width()
		cy := bbox.Ymin + math.Mod(py, 1)*bbox.Height()
		for i := 0; i < nx; i++ {
			u := float64(i) / float64(maxInt(nx-1, 1))
			x := bbox.Xmin + u*bbox.Width()
			for j := 0; j < ny; j++ {
				v := float64(j) / float64(maxInt(ny-1, 1))
				y := bbox.Ymin + v*bbox.Height()
				d2 := math.Hypot(x-cx, y-cy)
				out.Set(i, j, out.At(i, j)+math.Exp(-(d2*d2)/(2*r*r)))
			}
		}
	}
	return out
}

// CubicPulse is a radial (1-d^2)^2 bump of radius r centred in bbox.
func CubicPulse(shape [2]int, bbox algebra.BBox2, r float64, noiseX, noiseY *array.Array, stretching float64) *array.Array {
	cx, cy := (bbox.Xmin+bbox.Xmax)/2, (bbox.Ymin+bbox.Ymax)/2
	return geom(shape, bbox, noiseX, noiseY, stretching, func(x, y float64) float64 {
		d := math.Hypot(x-cx, y-cy) / r
		if d > 1 {
			return 0
		}
		v := 1 - d*d
		return v * v
	})
}

// GaussianPulse is a radial Gaussian bump with standard deviation sigma
// centred in bbox.
func GaussianPulse(shape [2]int, bbox algebra.BBox2, sigma float64, noiseX, noiseY *array.Array, stretching float64) *array.Array {
	cx, cy := (bbox.Xmin+bbox.Xmax)/2, (bbox.Ymin+bbox.Ymax)/2
	return geom(shape, bbox, noiseX, noiseY, stretching, func(x, y float64) float64 {
		d := math.Hypot(x-cx, y-cy)
		return math.Exp(-(d * d) / (2 * sigma * sigma))
	})
}

// SmoothCosine is a radial raised-cosine bump of radius r centred in bbox.
func SmoothCosine(shape [2]int, bbox algebra.BBox2, r float64, noiseX, noiseY *array.Array, stretching float64) *array.Array {
	cx, cy := (bbox.Xmin+bbox.Xmax)/2, (bbox.Ymin+bbox.Ymax)/2
	return geom(shape, bbox, noiseX, noiseY, stretching, func(x, y float64) float64 {
		d := math.Hypot(x-cx, y-cy) / r
		if d > 1 {
			return 0
		}
		return 0.5 * (1 + math.Cos(math.Pi*d))
	})
}

// Checkerboard is a two-level checkerboard pattern with the given cell
// count per bbox side.
func Checkerboard(shape [2]int, bbox algebra.BBox2, nCells int, noiseX, noiseY *array.Array, stretching float64) *array.Array {
	return geom(shape, bbox, noiseX, noiseY, stretching, func(x, y float64) float64 {
		u := (x - bbox.Xmin) / bbox.Width() * float64(nCells)
		v := (y - bbox.Ymin) / bbox.Height() * float64(nCells)
		if (int(u)+int(v))%2 == 0 {
			return 1
		}
		return 0
	})
}
