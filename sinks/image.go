// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package sinks

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"

	"golang.org/x/image/tiff"

	"github.com/gazed/highmap/array"
)

// ArrayImageWriter implements ImageWriter over a single scalar array,
// normalized to [0,1] via array.NormalizationCoeff before encoding.
type ArrayImageWriter struct {
	Source *array.Array
}

// rotated returns a's values as an (ny,nx) image.Gray16, rotated 90°
// counter-clockwise: dest row y (from the bottom) holds source column y.
func (w *ArrayImageWriter) rotated() *image.Gray16 {
	a := w.Source
	nx, ny := a.Nx(), a.Ny()
	scale, offset := array.NormalizationCoeff(a.Min(), a.Max())
	img := image.NewGray16(image.Rect(0, 0, ny, nx))
	for i := 0; i < nx; i++ {
		for j := 0; j < ny; j++ {
			t := scale*a.At(i, j) + offset
			v := uint16(clamp01(t) * 65535)
			px, py := j, nx-1-i
			img.SetGray16(px, py, color.Gray16{Y: v})
		}
	}
	return img
}

// WritePNG encodes the source array as a 16-bit greyscale PNG.
func (w *ArrayImageWriter) WritePNG(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrIO, err)
	}
	defer f.Close()
	if err := png.Encode(f, w.rotated()); err != nil {
		return fmt.Errorf("%w: %v", ErrIO, err)
	}
	return nil
}

// WriteTIFF encodes the source array as a 16-bit greyscale TIFF, linearly
// rescaled from its [min,max] range to [0,65535]; it does not write
// 32-bit float samples.
func (w *ArrayImageWriter) WriteTIFF(path string) error {
	a := w.Source
	nx, ny := a.Nx(), a.Ny()
	img := image.NewGray16(image.Rect(0, 0, ny, nx))
	lo, hi := a.Min(), a.Max()
	span := hi - lo
	if span == 0 {
		span = 1
	}
	for i := 0; i < nx; i++ {
		for j := 0; j < ny; j++ {
			t := (a.At(i, j) - lo) / span
			v := uint16(clamp01(t) * 65535)
			px, py := j, nx-1-i
			img.SetGray16(px, py, color.Gray16{Y: v})
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrIO, err)
	}
	defer f.Close()
	if err := tiff.Encode(f, img, nil); err != nil {
		return fmt.Errorf("%w: %v", ErrIO, err)
	}
	return nil
}

// WriteEXR has no backing codec in this module's dependency stack.
func (w *ArrayImageWriter) WriteEXR(path string) error {
	return ErrUnsupportedConfig
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
