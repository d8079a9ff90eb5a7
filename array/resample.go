// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package array

// ResampleToShape returns a new array of shape newShape, resampling a
// with bilinear interpolation. Indices are scaled to the source grid; at
// the last row/column u or v is clamped to 1 rather than extrapolated,
// deliberately, to avoid a one-column gap at the border.
func (a *Array) ResampleToShape(nx, ny int) *Array {
	out := New(nx, ny)
	sx, sy := a.Shape[0], a.Shape[1]
	for i := 0; i < nx; i++ {
		fx := float64(i) * float64(sx-1) / float64(nx-1)
		i0 := int(fx)
		u := fx - float64(i0)
		if i0 >= sx-1 {
			i0 = sx - 2
			u = 1
		}
		if i0 < 0 {
			i0 = 0
		}
		for j := 0; j < ny; j++ {
			fy := float64(j) * float64(sy-1) / float64(ny-1)
			j0 := int(fy)
			v := fy - float64(j0)
			if j0 >= sy-1 {
				j0 = sy - 2
				v = 1
			}
			if j0 < 0 {
				j0 = 0
			}
			out.Set(i, j, a.ValueBilinearAt(i0, j0, u, v))
		}
	}
	return out
}

// ResampleToShapeBicubic returns a new array of shape newShape, resampling
// a with a Catmull-Rom bicubic convolution, clamping source indices to
// the array's border (duplicating edge values) rather than
// extrapolating. Used for bicubic reconstruction (pyramid upsampling,
// downscale-transform's final resample).
func (a *Array) ResampleToShapeBicubic(nx, ny int) *Array {
	out := New(nx, ny)
	sx, sy := a.Shape[0], a.Shape[1]
	for i := 0; i < nx; i++ {
		fx := float64(i) * float64(sx-1) / float64(maxi(nx-1, 1))
		i0 := int(fx)
		u := fx - float64(i0)
		for j := 0; j < ny; j++ {
			fy := float64(j) * float64(sy-1) / float64(maxi(ny-1, 1))
			j0 := int(fy)
			v := fy - float64(j0)
			out.Set(i, j, a.cubicAt(i0, j0, u, v))
		}
	}
	return out
}

// cubicAt evaluates the Catmull-Rom bicubic convolution anchored at
// (i,j) with fractional offsets u,v, clamping the 4x4 support to the
// array's border.
func (a *Array) cubicAt(i, j int, u, v float64) float64 {
	rows := [4]float64{}
	for dy := -1; dy <= 2; dy++ {
		jj := clampi(j+dy, 0, a.Shape[1]-1)
		var p [4]float64
		for dx := -1; dx <= 2; dx++ {
			ii := clampi(i+dx, 0, a.Shape[0]-1)
			p[dx+1] = a.At(ii, jj)
		}
		rows[dy+1] = catmullRom(p[0], p[1], p[2], p[3], u)
	}
	return catmullRom(rows[0], rows[1], rows[2], rows[3], v)
}

func catmullRom(p0, p1, p2, p3, t float64) float64 {
	a0 := -0.5*p0 + 1.5*p1 - 1.5*p2 + 0.5*p3
	a1 := p0 - 2.5*p1 + 2*p2 - 0.5*p3
	a2 := -0.5*p0 + 0.5*p2
	a3 := p1
	return ((a0*t+a1)*t+a2)*t + a3
}

func clampi(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func maxi(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// ResampleToShapeNearest returns a new array of shape newShape, using the
// floor of the mapped source coordinate: a pure selection, so every
// output value equals some input value.
func (a *Array) ResampleToShapeNearest(nx, ny int) *Array {
	out := New(nx, ny)
	sx, sy := a.Shape[0], a.Shape[1]
	for i := 0; i < nx; i++ {
		fx := float64(i) * float64(sx) / float64(nx)
		i0 := int(fx)
		if i0 >= sx {
			i0 = sx - 1
		}
		for j := 0; j < ny; j++ {
			fy := float64(j) * float64(sy) / float64(ny)
			j0 := int(fy)
			if j0 >= sy {
				j0 = sy - 1
			}
			out.Set(i, j, a.At(i0, j0))
		}
	}
	return out
}
