// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

// Package sinks defines the thin I/O collaborators a heightmap pipeline
// hands off to once its own array logic is done: image writers, mesh
// exporters, an optional GPU backend mirror, and the one sink with real
// logic of its own, ColorMap. Collaborators with no backing codec or
// driver available are documented interface methods that return
// ErrUnsupportedConfig rather than fabricated implementations.
package sinks

import "errors"

// ErrUnsupportedConfig is returned by a sink contract method that has no
// backing codec or driver available.
var ErrUnsupportedConfig = errors.New("sinks: unsupported configuration")

// ErrIO wraps a failure from an underlying writer or encoder.
var ErrIO = errors.New("sinks: io failure")

// ImageWriter writes a scalar or colour field out as a raster image.
type ImageWriter interface {
	// WritePNG encodes a to path as a PNG; ArrayImageWriter writes 16-bit
	// greyscale.
	WritePNG(path string) error
	// WriteTIFF encodes a to path as a TIFF; ArrayImageWriter writes
	// 16-bit greyscale rescaled from the field's min/max, not 32-bit
	// float samples.
	WriteTIFF(path string) error
	// WriteEXR has no backing codec in this module's dependency stack;
	// it always returns ErrUnsupportedConfig.
	WriteEXR(path string) error
}

// MeshExporter writes a heightfield out as a 3D mesh asset.
type MeshExporter interface {
	// WriteOBJ encodes a as a triangulated Wavefront OBJ mesh.
	WriteOBJ(path string) error
	// WriteGLTF has no writer implementation in this module; it always
	// returns ErrUnsupportedConfig.
	WriteGLTF(path string) error
	// WriteFBX has no writer implementation in this module (FBX is a
	// closed binary format); it always returns ErrUnsupportedConfig.
	WriteFBX(path string) error
}

// GPUBackend mirrors an optional accelerated execution path. No GPU
// driver ships with this module, so Init always reports unavailable and
// callers fall back to the CPU dispatch path.
type GPUBackend interface {
	// Init attempts to acquire a GPU context, returning whether it
	// succeeded.
	Init() bool
	// Available reports whether a previously initialized context is
	// still usable.
	Available() bool
}

// cpuBackend is the only GPUBackend implementation this module ships:
// it always reports unavailable.
type cpuBackend struct{}

// NewGPUBackend returns the always-unavailable CPU-only backend mirror.
func NewGPUBackend() GPUBackend { return &cpuBackend{} }

func (b *cpuBackend) Init() bool      { return false }
func (b *cpuBackend) Available() bool { return false }
