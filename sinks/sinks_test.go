// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package sinks

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gazed/highmap/array"
)

func rampField() *array.Array {
	a := array.New(8, 6)
	for i := range a.Data {
		a.Data[i] = float64(i)
	}
	return a
}

func TestWritePNGProducesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.png")
	w := &ArrayImageWriter{Source: rampField()}
	if err := w.WritePNG(path); err != nil {
		t.Fatalf("WritePNG: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("expected file to exist: %v", err)
	}
	if info.Size() == 0 {
		t.Fatalf("expected non-empty PNG file")
	}
}

func TestWriteTIFFProducesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.tiff")
	w := &ArrayImageWriter{Source: rampField()}
	if err := w.WriteTIFF(path); err != nil {
		t.Fatalf("WriteTIFF: %v", err)
	}
	if info, err := os.Stat(path); err != nil || info.Size() == 0 {
		t.Fatalf("expected non-empty TIFF file, err=%v", err)
	}
}

func TestWriteEXRIsUnsupported(t *testing.T) {
	w := &ArrayImageWriter{Source: rampField()}
	if err := w.WriteEXR(filepath.Join(t.TempDir(), "out.exr")); err != ErrUnsupportedConfig {
		t.Fatalf("expected ErrUnsupportedConfig, got %v", err)
	}
}

func TestWriteOBJProducesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.obj")
	m := &ArrayMeshExporter{Source: rampField(), CellSize: 1, ZScale: 1}
	if err := m.WriteOBJ(path); err != nil {
		t.Fatalf("WriteOBJ: %v", err)
	}
	if info, err := os.Stat(path); err != nil || info.Size() == 0 {
		t.Fatalf("expected non-empty OBJ file, err=%v", err)
	}
}

func TestWriteGLTFAndFBXAreUnsupported(t *testing.T) {
	m := &ArrayMeshExporter{Source: rampField()}
	if err := m.WriteGLTF(""); err != ErrUnsupportedConfig {
		t.Fatalf("expected ErrUnsupportedConfig for glTF, got %v", err)
	}
	if err := m.WriteFBX(""); err != ErrUnsupportedConfig {
		t.Fatalf("expected ErrUnsupportedConfig for FBX, got %v", err)
	}
}

func TestGPUBackendAlwaysUnavailable(t *testing.T) {
	b := NewGPUBackend()
	if b.Init() {
		t.Fatalf("expected Init to report unavailable")
	}
	if b.Available() {
		t.Fatalf("expected Available to report false")
	}
}

func TestColorMapApplyProducesRGBTensor(t *testing.T) {
	a := rampField()
	tn := DefaultColorMap.Apply(a)
	if tn.Shape[0] != a.Nx() || tn.Shape[1] != a.Ny() || tn.Shape[2] != 3 {
		t.Fatalf("unexpected tensor shape %v", tn.Shape)
	}
	for _, v := range tn.Data {
		if v < 0 || v > 1 {
			t.Fatalf("expected channel values within [0,1], got %v", v)
		}
	}
}

func TestColorMapEndpointsMatchMinMax(t *testing.T) {
	a := rampField()
	tn := DefaultColorMap.Apply(a)
	first := DefaultColorMap[0]
	if tn.At(0, 0, 0) != first.R {
		t.Fatalf("expected the minimum cell to map to the first colour entry, got %v want %v", tn.At(0, 0, 0), first.R)
	}
}
