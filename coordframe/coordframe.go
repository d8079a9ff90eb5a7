// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

// Package coordframe implements Frame, a rotated/translated/axis-scaled
// unit-square frame, and the cross-frame resampling operations built on
// top of it. Its map_to_global/map_to_relative pair and the precomputed
// cos/sin it carries use a row-major 2x2 application with cached trig,
// tailored to the 2D rotated heightmap frame the module needs.
package coordframe

import (
	"errors"
	"math"

	"github.com/gazed/highmap/algebra"
	"github.com/gazed/highmap/array"
	"github.com/gazed/highmap/dispatch"
	"github.com/gazed/highmap/heightmap"
	"github.com/gazed/highmap/mathutil"
)

// ErrInvalidArgument is returned when a Frame is constructed with a
// degenerate size (zero or negative on either axis).
var ErrInvalidArgument = errors.New("coordframe: invalid argument")

// Frame is a rotated, translated, axis-scaled mapping from the unit
// square [0,1]^2 (relative coordinates) to world coordinates.
type Frame struct {
	Origin   algebra.Vec2
	Size     algebra.Vec2
	AngleDeg float64

	cos, sin float64
}

// New builds a Frame, precomputing its rotation trig. Returns
// ErrInvalidArgument if size is not strictly positive on both axes.
func New(origin, size algebra.Vec2, angleDeg float64) (*Frame, error) {
	if size.X <= 0 || size.Y <= 0 {
		return nil, ErrInvalidArgument
	}
	rad := angleDeg * math.Pi / 180
	return &Frame{
		Origin:   origin,
		Size:     size,
		AngleDeg: angleDeg,
		cos:      math.Cos(rad),
		sin:      math.Sin(rad),
	}, nil
}

// MapToGlobal maps relative coordinates (rx,ry) in the unit square to
// world coordinates: origin + R(angle)*diag(size)*(rx,ry).
func (f *Frame) MapToGlobal(rx, ry float64) (gx, gy float64) {
	sx, sy := rx*f.Size.X, ry*f.Size.Y
	wx := f.cos*sx - f.sin*sy
	wy := f.sin*sx + f.cos*sy
	return f.Origin.X + wx, f.Origin.Y + wy
}

// MapToRelative is the inverse of MapToGlobal: translate by -origin,
// rotate by -angle, divide by size.
func (f *Frame) MapToRelative(gx, gy float64) (rx, ry float64) {
	dx, dy := gx-f.Origin.X, gy-f.Origin.Y
	// rotate by -angle: cos(-a) = cos(a), sin(-a) = -sin(a)
	ux := f.cos*dx + f.sin*dy
	uy := -f.sin*dx + f.cos*dy
	return ux / f.Size.X, uy / f.Size.Y
}

// ComputeBoundingBox returns the axis-aligned hull of the frame's four
// mapped corners.
func (f *Frame) ComputeBoundingBox() algebra.BBox2 {
	corners := make([]algebra.Vec2, 4)
	rels := [4][2]float64{{0, 0}, {1, 0}, {0, 1}, {1, 1}}
	for i, r := range rels {
		gx, gy := f.MapToGlobal(r[0], r[1])
		corners[i] = algebra.Vec2{X: gx, Y: gy}
	}
	return algebra.FromCorners(corners)
}

// IsPointWithin reports whether (gx,gy) lies within the frame: its
// relative coordinates lie in [0,1]^2.
func (f *Frame) IsPointWithin(gx, gy float64) bool {
	rx, ry := f.MapToRelative(gx, gy)
	return rx >= 0 && rx <= 1 && ry >= 0 && ry <= 1
}

// NormalizedDistanceToEdges returns 2*min(rx, 1-rx, ry, 1-ry) for the
// relative coordinates of (gx,gy): 1 at the frame centre, 0 at its
// boundary, negative outside it.
func (f *Frame) NormalizedDistanceToEdges(gx, gy float64) float64 {
	rx, ry := f.MapToRelative(gx, gy)
	d := rx
	if v := 1 - rx; v < d {
		d = v
	}
	if ry < d {
		d = ry
	}
	if v := 1 - ry; v < d {
		d = v
	}
	return 2 * d
}

// InterpolateHeightmap resamples src (addressed through srcFrame) into
// dst (addressed through dstFrame): for every dst tile and pixel, its
// dst-relative coordinates are mapped to dst-global, then to
// src-relative, then src is sampled bilinearly at that point. Points
// falling outside src's frame sample the nearest in-bounds value (the
// array package's own bbox-clamped bilinear behaviour).
func InterpolateHeightmap(src, dst *heightmap.Heightmap, srcFrame, dstFrame *Frame) error {
	srcFlat := src.ToArray()
	return dst.Fill(dispatch.Sequential, func(a *array.Array, shape [2]int, bbox algebra.BBox2) error {
		nx, ny := shape[0], shape[1]
		for i := 0; i < nx; i++ {
			rx := (bbox.Xmin + bbox.Width()*float64(i)/float64(maxInt(nx-1, 1)) - dst.BBox.Xmin) / dst.BBox.Width()
			for j := 0; j < ny; j++ {
				ry := (bbox.Ymin + bbox.Height()*float64(j)/float64(maxInt(ny-1, 1)) - dst.BBox.Ymin) / dst.BBox.Height()
				gx, gy := dstFrame.MapToGlobal(rx, ry)
				srx, sry := srcFrame.MapToRelative(gx, gy)
				a.Set(i, j, sampleRelative(srcFlat, srx, sry))
			}
		}
		return nil
	})
}

// FlattenHeightmap merges src1 and src2 into dst, both addressed through
// their own frames: for each dst pixel, if src2's frame covers it, the
// result is lerp(v1, v2, smoothstep3(d2)) where d2 is src2's normalized
// distance to edges at that point; otherwise the result is v1 alone.
func FlattenHeightmap(src1, src2, dst *heightmap.Heightmap, f1, f2, fdst *Frame) error {
	flat1 := src1.ToArray()
	flat2 := src2.ToArray()
	return dst.Fill(dispatch.Sequential, func(a *array.Array, shape [2]int, bbox algebra.BBox2) error {
		nx, ny := shape[0], shape[1]
		for i := 0; i < nx; i++ {
			rx := (bbox.Xmin + bbox.Width()*float64(i)/float64(maxInt(nx-1, 1)) - dst.BBox.Xmin) / dst.BBox.Width()
			for j := 0; j < ny; j++ {
				ry := (bbox.Ymin + bbox.Height()*float64(j)/float64(maxInt(ny-1, 1)) - dst.BBox.Ymin) / dst.BBox.Height()
				gx, gy := fdst.MapToGlobal(rx, ry)

				r1x, r1y := f1.MapToRelative(gx, gy)
				v1 := sampleRelative(flat1, r1x, r1y)

				if !f2.IsPointWithin(gx, gy) {
					a.Set(i, j, v1)
					continue
				}
				r2x, r2y := f2.MapToRelative(gx, gy)
				v2 := sampleRelative(flat2, r2x, r2y)
				d2 := f2.NormalizedDistanceToEdges(gx, gy)
				t := mathutil.Smoothstep3(d2)
				a.Set(i, j, v1*(1-t)+v2*t)
			}
		}
		return nil
	})
}

// sampleRelative bilinearly samples a, whose extent is taken to span the
// unit square [0,1]^2, at relative coordinates (rx,ry). Coordinates
// outside [0,1]^2 are clamped, reproducing the edge value (consistent
// with Array.ValueNearest's out-of-bounds behaviour).
func sampleRelative(a *array.Array, rx, ry float64) float64 {
	rx = algebra.Clamp(rx, 0, 1)
	ry = algebra.Clamp(ry, 0, 1)
	nx, ny := a.Nx(), a.Ny()
	fx := rx * float64(nx-1)
	fy := ry * float64(ny-1)
	i := int(math.Floor(fx))
	j := int(math.Floor(fy))
	if i >= nx-1 {
		i = maxInt(nx-2, 0)
	}
	if j >= ny-1 {
		j = maxInt(ny-2, 0)
	}
	u := fx - float64(i)
	v := fy - float64(j)
	if nx == 1 || ny == 1 {
		return a.At(i, j)
	}
	return a.ValueBilinearAt(i, j, u, v)
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
