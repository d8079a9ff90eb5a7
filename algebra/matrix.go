// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package algebra

import "math"

// Mat2 is a 2x2 row-major rotation/scale matrix, used to map a
// coordinate-frame's unit-square interior into world space:
//
//	[Xx, Xy]
//	[Yx, Yy]
type Mat2 struct {
	Xx, Xy float64
	Yx, Yy float64
}

// Rotation2 returns the rotation matrix for angleDeg degrees,
// counter-clockwise, using the row-major convention where a vector is
// transformed as v' = v*M (row vector on the left).
func Rotation2(angleDeg float64) Mat2 {
	rad := angleDeg * math.Pi / 180
	c, s := math.Cos(rad), math.Sin(rad)
	return Mat2{Xx: c, Xy: s, Yx: -s, Yy: c}
}

// Apply transforms v by m: v' = v*M.
func (m Mat2) Apply(v Vec2) Vec2 {
	return Vec2{
		X: v.X*m.Xx + v.Y*m.Yx,
		Y: v.X*m.Xy + v.Y*m.Yy,
	}
}

// Transpose returns the transpose of m, which is also its inverse when m
// is a pure rotation.
func (m Mat2) Transpose() Mat2 {
	return Mat2{Xx: m.Xx, Xy: m.Yx, Yx: m.Xy, Yy: m.Yy}
}
