// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package sinks

import (
	"github.com/gazed/highmap/array"
	"github.com/gazed/highmap/array3"
)

// Color is one entry of a ColorMap lookup table, each channel in [0,1].
type Color struct {
	R, G, B float64
}

// ColorMap is an ordered lookup table that maps a normalized scalar
// value to a colour by linear interpolation between its nearest two
// entries.
type ColorMap []Color

// DefaultColorMap is a simple water-to-peak elevation ramp: deep blue,
// shallow blue, sand, green, grey, white.
var DefaultColorMap = ColorMap{
	{R: 0.0, G: 0.0, B: 0.4},
	{R: 0.1, G: 0.3, B: 0.8},
	{R: 0.8, G: 0.75, B: 0.5},
	{R: 0.2, G: 0.6, B: 0.2},
	{R: 0.5, G: 0.5, B: 0.5},
	{R: 1.0, G: 1.0, B: 1.0},
}

// Apply rescales a to [0,1] via array.NormalizationCoeff, then samples
// cm at each cell, returning an (nx,ny,3) RGB Tensor.
func (cm ColorMap) Apply(a *array.Array) *array3.Tensor {
	scale, offset := array.NormalizationCoeff(a.Min(), a.Max())
	out := array3.New(a.Nx(), a.Ny(), 3)
	n := len(cm)
	for i := 0; i < a.Nx(); i++ {
		for j := 0; j < a.Ny(); j++ {
			t := scale*a.At(i, j) + offset
			c := cm.sample(t, n)
			out.Set(i, j, 0, c.R)
			out.Set(i, j, 1, c.G)
			out.Set(i, j, 2, c.B)
		}
	}
	return out
}

func (cm ColorMap) sample(t float64, n int) Color {
	if n == 1 {
		return cm[0]
	}
	if t <= 0 {
		return cm[0]
	}
	if t >= 1 {
		return cm[n-1]
	}
	f := t * float64(n-1)
	lo := int(f)
	if lo >= n-1 {
		return cm[n-1]
	}
	frac := f - float64(lo)
	a, b := cm[lo], cm[lo+1]
	return Color{
		R: a.R + (b.R-a.R)*frac,
		G: a.G + (b.G-a.G)*frac,
		B: a.B + (b.B-a.B)*frac,
	}
}
