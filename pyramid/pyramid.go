// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

// Package pyramid implements a Laplacian-style multiscale decomposition:
// Build stores nlevels high-pass detail arrays plus a low-pass residual,
// Reconstruct inverts it, and Transform applies a user operator to the
// highpass levels, the residual, or the full reconstruction, blended by
// per-level weights. The low-pass filter at each level
// defaults to a single Laplace-smoother pass at sigma=0.25, using
// filters.LaplaceEdgePreserving.
package pyramid

import (
	"github.com/gazed/highmap/array"
	"github.com/gazed/highmap/filters"
)

// Pyramid holds the decomposition of one array into high-pass levels
// (finest first) plus a low-pass Residual.
type Pyramid struct {
	High     []*array.Array
	Residual *array.Array
	Shapes   [][2]int
}

// Build decomposes a into nlevels high-pass components and a residual
// low-pass: at each level the current array is low-pass filtered (a
// Laplace smoother with the given talus/sigma), the high-pass
// difference is stored, and the filtered array is downsampled to half
// shape bilinearly before recursing.
func Build(a *array.Array, nlevels int, talus, sigma float64) *Pyramid {
	p := &Pyramid{
		High:   make([]*array.Array, 0, nlevels),
		Shapes: make([][2]int, 0, nlevels+1),
	}
	current := a.Clone()
	for level := 0; level < nlevels; level++ {
		p.Shapes = append(p.Shapes, current.Shape)
		filtered := current.Clone()
		filters.LaplaceEdgePreserving(filtered, talus, sigma, 1)

		high := array.New(current.Nx(), current.Ny())
		for i := range high.Data {
			high.Data[i] = current.Data[i] - filtered.Data[i]
		}
		p.High = append(p.High, high)

		halfNx, halfNy := maxi(current.Nx()/2, 1), maxi(current.Ny()/2, 1)
		if halfNx == current.Nx() && halfNy == current.Ny() {
			current = filtered
			continue
		}
		current = filtered.ResampleToShape(halfNx, halfNy)
	}
	p.Residual = current
	p.Shapes = append(p.Shapes, current.Shape)
	return p
}

// Reconstruct inverts Build: the residual is upsampled bicubically to
// the next finer level's shape, the stored highpass is added back, and
// the result becomes the input to the next upsample, from coarsest to
// finest.
func (p *Pyramid) Reconstruct() *array.Array {
	current := p.Residual
	for level := len(p.High) - 1; level >= 0; level-- {
		targetShape := p.Shapes[level]
		upsampled := current
		if current.Shape != targetShape {
			upsampled = current.ResampleToShapeBicubic(targetShape[0], targetShape[1])
		}
		high := p.High[level]
		out := array.New(targetShape[0], targetShape[1])
		for i := range out.Data {
			out.Data[i] = upsampled.Data[i] + high.Data[i]
		}
		current = out
	}
	return current
}

// Support selects which part of the decomposition Transform applies its
// operator to.
type Support int

const (
	// SupportHighpass applies fct to each stored highpass level from
	// finestLevel to the coarsest, blended by weights[level].
	SupportHighpass Support = iota
	// SupportLowpass applies fct once, to the residual low-pass, blended
	// by weights[len(High)], when finestLevel <= len(High).
	SupportLowpass
	// SupportFull applies fct once, to the full-resolution reconstruction,
	// blended by weights[finestLevel]; the pyramid is then rebuilt from
	// the result with talus 0.1 and sigma 0.25.
	SupportFull
)

// Transform applies fct on the given support, blending the modified
// result back in proportion to the matching weight (0 leaves it
// untouched, 1 fully replaces it, a missing weight counts as 1). Only
// SupportHighpass visits the levels one by one; SupportLowpass and
// SupportFull each apply fct a single time.
func (p *Pyramid) Transform(fct func(a *array.Array), support Support, weights []float64, finestLevel int) {
	switch support {
	case SupportLowpass:
		if finestLevel <= len(p.High) {
			blendLevel(p.Residual, fct, weightAt(weights, len(p.High)))
		}
	case SupportHighpass:
		for level := finestLevel; level < len(p.High); level++ {
			blendLevel(p.High[level], fct, weightAt(weights, level))
		}
	case SupportFull:
		full := p.Reconstruct()
		blendLevel(full, fct, weightAt(weights, finestLevel))
		rebuilt := Build(full, len(p.High), 0.1, 0.25)
		p.High = rebuilt.High
		p.Residual = rebuilt.Residual
		p.Shapes = rebuilt.Shapes
	}
}

func weightAt(weights []float64, level int) float64 {
	if level < 0 || level >= len(weights) {
		return 1
	}
	return weights[level]
}

func blendLevel(a *array.Array, fct func(a *array.Array), weight float64) {
	if weight <= 0 {
		return
	}
	modified := a.Clone()
	fct(modified)
	for i := range a.Data {
		a.Data[i] = a.Data[i]*(1-weight) + modified.Data[i]*weight
	}
}

func maxi(a, b int) int {
	if a > b {
		return a
	}
	return b
}
