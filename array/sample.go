// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package array

import (
	"math"

	"github.com/gazed/highmap/algebra"
)

// ValueBilinearAt interpolates the 2x2 block anchored at (i,j) using the
// local offsets u,v in [0,1). Requires i <= Nx()-2, j <= Ny()-2; unchecked.
func (a *Array) ValueBilinearAt(i, j int, u, v float64) float64 {
	v00 := a.At(i, j)
	v10 := a.At(i+1, j)
	v01 := a.At(i, j+1)
	v11 := a.At(i+1, j+1)
	return v00*(1-u)*(1-v) + v10*u*(1-v) + v01*(1-u)*v + v11*u*v
}

// ValueNearest clamps (x,y) into bbox then rounds to the nearest cell,
// reproducing the corner value when (x,y) lies outside bbox.
func (a *Array) ValueNearest(x, y float64, bbox algebra.BBox2) float64 {
	cx, cy := bbox.Clamp(x, y)
	u := (cx - bbox.Xmin) / bbox.Width()
	v := (cy - bbox.Ymin) / bbox.Height()
	i := int(math.Round(u * float64(a.Shape[0]-1)))
	j := int(math.Round(v * float64(a.Shape[1]-1)))
	i = int(algebra.Clamp(float64(i), 0, float64(a.Shape[0]-1)))
	j = int(algebra.Clamp(float64(j), 0, float64(a.Shape[1]-1)))
	return a.At(i, j)
}

// GradientAt returns the central-difference gradient (dz/di, dz/dj) at
// interior cell (i,j), scaled by 0.5. Unchecked at borders.
func (a *Array) GradientAt(i, j int) (dx, dy float64) {
	dx = 0.5 * (a.At(i+1, j) - a.At(i-1, j))
	dy = 0.5 * (a.At(i, j+1) - a.At(i, j-1))
	return
}

// GradientBilinearAt interpolates the forward-difference gradient at a
// sub-cell position (i,j,u,v), used by particle-erosion stepping.
func (a *Array) GradientBilinearAt(i, j int, u, v float64) (dx, dy float64) {
	// forward differences at the four corners of the bilinear cell
	dx00 := a.At(i+1, j) - a.At(i, j)
	dx01 := a.At(i+1, j+1) - a.At(i, j+1)
	dy00 := a.At(i, j+1) - a.At(i, j)
	dy10 := a.At(i+1, j+1) - a.At(i+1, j)
	dx = dx00*(1-v) + dx01*v
	dy = dy00*(1-u) + dy10*u
	return
}

// NormalAt returns the unit surface normal (-dx, -dy, 1) at interior
// cell (i,j).
func (a *Array) NormalAt(i, j int) algebra.Vec3 {
	dx, dy := a.GradientAt(i, j)
	return algebra.Vec3{X: -dx, Y: -dy, Z: 1}.Normalize()
}
