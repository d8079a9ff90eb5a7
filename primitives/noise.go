// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

// Package primitives generates base terrain arrays: gradient-noise
// generators (Perlin/Simplex/Worley, reached through a single NoiseFunc
// handle) and their fBm variants, plus geometric primitives (cone, slope,
// step, dune, waves, craters). The geometric primitives walk the grid
// through FillArrayUsingXYFunction; Fbm and BumpField walk it in their
// own loops.
package primitives

import (
	"math"
	"math/rand"

	"github.com/gazed/highmap/algebra"
	"github.com/gazed/highmap/array"
)

// NoiseFunc evaluates a scalar noise field at (x,y), returning a value
// nominally in [-1,1].
type NoiseFunc func(x, y float64) float64

// gradient is a direction vector to an adjacent simplex corner.
type gradient struct{ x, y, z float64 }

var gradients = []gradient{
	{1, 1, 0}, {-1, 1, 0}, {1, -1, 0}, {-1, -1, 0},
	{1, 0, 1}, {-1, 0, 1}, {1, 0, -1}, {-1, 0, -1},
	{0, 1, 1}, {0, -1, 1}, {0, 1, -1}, {0, -1, -1},
}

func (g gradient) dot2D(x, y float64) float64 { return g.x*x + g.y*y }

var basePermutation = []byte{
	151, 160, 137, 91, 90, 15,
	131, 13, 201, 95, 96, 53, 194, 233, 7, 225, 140, 36, 103, 30, 69, 142, 8, 99, 37, 240, 21, 10, 23,
	190, 6, 148, 247, 120, 234, 75, 0, 26, 197, 62, 94, 252, 219, 203, 117, 35, 11, 32, 57, 177, 33,
	88, 237, 149, 56, 87, 174, 20, 125, 136, 171, 168, 68, 175, 74, 165, 71, 134, 139, 48, 27, 166,
	77, 146, 158, 231, 83, 111, 229, 122, 60, 211, 133, 230, 220, 105, 92, 41, 55, 46, 245, 40, 244,
	102, 143, 54, 65, 25, 63, 161, 1, 216, 80, 73, 209, 76, 132, 187, 208, 89, 18, 169, 200, 196,
	135, 130, 116, 188, 159, 86, 164, 100, 109, 198, 173, 186, 3, 64, 52, 217, 226, 250, 124, 123,
	5, 202, 38, 147, 118, 126, 255, 82, 85, 212, 207, 206, 59, 227, 47, 16, 58, 17, 182, 189, 28, 42,
	223, 183, 170, 213, 119, 248, 152, 2, 44, 154, 163, 70, 221, 153, 101, 155, 167, 43, 172, 9,
	129, 22, 39, 253, 19, 98, 108, 110, 79, 113, 224, 232, 178, 185, 112, 104, 218, 246, 97, 228,
	251, 34, 242, 193, 238, 210, 144, 12, 191, 179, 162, 241, 81, 51, 145, 235, 249, 14, 239, 107,
	49, 192, 214, 31, 181, 199, 106, 157, 184, 84, 204, 176, 115, 121, 50, 45, 127, 4, 150, 254,
	138, 236, 205, 93, 222, 114, 67, 29, 24, 72, 243, 141, 128, 195, 78, 66, 215, 61, 156, 180,
}

// Simplex is a 2D simplex gradient-noise generator. Its permutation table
// is shuffled deterministically from the seed, so the same seed always
// produces the same noise field when evaluated single-threaded.
type Simplex struct {
	perm      []byte
	permMod12 []byte
	f2, g2    float64
}

// NewSimplex returns a Simplex noise generator for the given seed. A
// seed of 0 is permitted and reproducible like any other seed; the seed
// given is always the seed used, never replaced with a random one.
func NewSimplex(seed int64) *Simplex {
	s := &Simplex{f2: 0.5 * (math.Sqrt(3) - 1), g2: (3 - math.Sqrt(3)) / 6}
	rng := rand.New(rand.NewSource(seed))
	base := append([]byte(nil), basePermutation...)
	pseudo := make([]byte, 0, len(base))
	for len(base) > 0 {
		idx := rng.Intn(len(base))
		pseudo = append(pseudo, base[idx])
		base = append(base[:idx], base[idx+1:]...)
	}
	s.perm = make([]byte, 512)
	s.permMod12 = make([]byte, 512)
	for i := 0; i < 512; i++ {
		s.perm[i] = pseudo[i&255]
		s.permMod12[i] = s.perm[i] % 12
	}
	return s
}

// Gen2D evaluates simplex noise at (x,y), returning a value in [-1,1].
func (s *Simplex) Gen2D(x, y float64) float64 {
	var n0, n1, n2 float64

	skew := (x + y) * s.f2
	i := int(math.Floor(x + skew))
	j := int(math.Floor(y + skew))
	t := float64(i+j) * s.g2
	x0Origin := float64(i) - t
	y0Origin := float64(j) - t
	x0 := x - x0Origin
	y0 := y - y0Origin

	var i1, j1 int
	if x0 > y0 {
		i1, j1 = 1, 0
	} else {
		i1, j1 = 0, 1
	}

	x1 := x0 - float64(i1) + s.g2
	y1 := y0 - float64(j1) + s.g2
	x2 := x0 - 1 + 2*s.g2
	y2 := y0 - 1 + 2*s.g2

	ii := i & 255
	jj := j & 255
	gi0 := s.permMod12[ii+int(s.perm[jj])]
	gi1 := s.permMod12[ii+i1+int(s.perm[jj+j1])]
	gi2 := s.permMod12[ii+1+int(s.perm[jj+1])]

	if t0 := 0.5 - x0*x0 - y0*y0; t0 >= 0 {
		t0 *= t0
		n0 = t0 * t0 * gradients[gi0].dot2D(x0, y0)
	}
	if t1 := 0.5 - x1*x1 - y1*y1; t1 >= 0 {
		t1 *= t1
		n1 = t1 * t1 * gradients[gi1].dot2D(x1, y1)
	}
	if t2 := 0.5 - x2*x2 - y2*y2; t2 >= 0 {
		t2 *= t2
		n2 = t2 * t2 * gradients[gi2].dot2D(x2, y2)
	}
	return 70 * (n0 + n1 + n2)
}

// Func returns s as a NoiseFunc handle.
func (s *Simplex) Func() NoiseFunc { return s.Gen2D }

// FillArrayUsingXYFunction is the dispatcher the geometric primitives
// are invoked through: it walks the grid of shape
// a.Shape, maps cell (i,j) through bbox to a world (x,y), optionally
// warps the coordinates by noiseX/noiseY scaled by stretching, and writes
// fct(x,y,zIn) into each cell, where zIn is 0 unless ctrl supplies a
// per-cell control value.
func FillArrayUsingXYFunction(a *array.Array, bbox algebra.BBox2, ctrl, noiseX, noiseY *array.Array, stretching float64, fct func(x, y, zIn float64) float64) {
	nx, ny := a.Nx(), a.Ny()
	if stretching == 0 {
		stretching = 1
	}
	for i := 0; i < nx; i++ {
		u := float64(i) / float64(maxInt(nx-1, 1))
		x := bbox.Xmin + u*bbox.Width()
		for j := 0; j < ny; j++ {
			v := float64(j) / float64(maxInt(ny-1, 1))
			y := bbox.Ymin + v*bbox.Height()
			xs, ys := x*stretching, y*stretching
			if noiseX != nil {
				xs += noiseX.At(i, j)
			}
			if noiseY != nil {
				ys += noiseY.At(i, j)
			}
			zIn := 0.0
			if ctrl != nil {
				zIn = ctrl.At(i, j)
			}
			a.Set(i, j, fct(xs, ys, zIn))
		}
	}
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
