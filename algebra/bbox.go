// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package algebra

import "math"

// BBox2 is an axis-aligned bounding box in world coordinates:
// [Xmin, Xmax] x [Ymin, Ymax].
type BBox2 struct {
	Xmin, Xmax, Ymin, Ymax float64
}

// UnitBBox is the default [0,1]x[0,1] bounding box used when a heightmap
// or tile is constructed without an explicit bbox.
var UnitBBox = BBox2{Xmin: 0, Xmax: 1, Ymin: 0, Ymax: 1}

// Width returns Xmax-Xmin.
func (b BBox2) Width() float64 { return b.Xmax - b.Xmin }

// Height returns Ymax-Ymin.
func (b BBox2) Height() float64 { return b.Ymax - b.Ymin }

// Contains returns true if (x,y) lies within b, bounds inclusive.
func (b BBox2) Contains(x, y float64) bool {
	return x >= b.Xmin && x <= b.Xmax && y >= b.Ymin && y <= b.Ymax
}

// Clamp restricts (x,y) to lie within b.
func (b BBox2) Clamp(x, y float64) (cx, cy float64) {
	return Clamp(x, b.Xmin, b.Xmax), Clamp(y, b.Ymin, b.Ymax)
}

// Union returns the smallest bbox containing both b and o.
func (b BBox2) Union(o BBox2) BBox2 {
	return BBox2{
		Xmin: math.Min(b.Xmin, o.Xmin),
		Xmax: math.Max(b.Xmax, o.Xmax),
		Ymin: math.Min(b.Ymin, o.Ymin),
		Ymax: math.Max(b.Ymax, o.Ymax),
	}
}

// FromCorners returns the axis-aligned hull of the given corner points,
// used by CoordFrame.ComputeBoundingBox to hull a rotated rectangle.
func FromCorners(corners []Vec2) BBox2 {
	if len(corners) == 0 {
		return BBox2{}
	}
	b := BBox2{Xmin: corners[0].X, Xmax: corners[0].X, Ymin: corners[0].Y, Ymax: corners[0].Y}
	for _, c := range corners[1:] {
		if c.X < b.Xmin {
			b.Xmin = c.X
		}
		if c.X > b.Xmax {
			b.Xmax = c.X
		}
		if c.Y < b.Ymin {
			b.Ymin = c.Y
		}
		if c.Y > b.Ymax {
			b.Ymax = c.Y
		}
	}
	return b
}
