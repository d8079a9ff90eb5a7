// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package sinks

import (
	"bufio"
	"fmt"
	"math"
	"os"

	"github.com/gazed/highmap/array"
)

// ArrayMeshExporter implements MeshExporter by triangulating a scalar
// array as a regular grid mesh, one vertex per cell.
type ArrayMeshExporter struct {
	Source   *array.Array
	CellSize float64
	ZScale   float64
}

// WriteOBJ writes the source array as a triangulated Wavefront OBJ mesh:
// one "v" line per cell (x,z from the grid position, y from the scaled
// height), one "vn" per vertex (finite-difference normal), and two "f"
// triangles per grid quad. The face/vertex line shapes mirror
// load.Obj's reader, used here in reverse.
func (m *ArrayMeshExporter) WriteOBJ(path string) error {
	a := m.Source
	nx, ny := a.Nx(), a.Ny()
	cell := m.CellSize
	if cell == 0 {
		cell = 1
	}
	zscale := m.ZScale
	if zscale == 0 {
		zscale = 1
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrIO, err)
	}
	defer f.Close()
	w := bufio.NewWriter(f)
	defer w.Flush()

	fmt.Fprintln(w, "# highmap mesh export")
	for i := 0; i < nx; i++ {
		for j := 0; j < ny; j++ {
			x := float64(i) * cell
			z := float64(j) * cell
			y := a.At(i, j) * zscale
			fmt.Fprintf(w, "v %f %f %f\n", x, y, z)
		}
	}
	for i := 0; i < nx; i++ {
		for j := 0; j < ny; j++ {
			nx3, ny3, nz3 := vertexNormal(a, i, j, cell, zscale)
			fmt.Fprintf(w, "vn %f %f %f\n", nx3, ny3, nz3)
		}
	}

	idx := func(i, j int) int { return i*ny + j + 1 }
	for i := 0; i < nx-1; i++ {
		for j := 0; j < ny-1; j++ {
			v00 := idx(i, j)
			v10 := idx(i+1, j)
			v01 := idx(i, j+1)
			v11 := idx(i+1, j+1)
			fmt.Fprintf(w, "f %d//%d %d//%d %d//%d\n", v00, v00, v10, v10, v11, v11)
			fmt.Fprintf(w, "f %d//%d %d//%d %d//%d\n", v00, v00, v11, v11, v01, v01)
		}
	}
	return nil
}

func vertexNormal(a *array.Array, i, j int, cell, zscale float64) (x, y, z float64) {
	nx, ny := a.Nx(), a.Ny()
	im1, ip1 := maxi(i-1, 0), mini(i+1, nx-1)
	jm1, jp1 := maxi(j-1, 0), mini(j+1, ny-1)
	dzdx := (a.At(ip1, j) - a.At(im1, j)) * zscale / (float64(ip1-im1) * cell)
	dzdy := (a.At(i, jp1) - a.At(i, jm1)) * zscale / (float64(jp1-jm1) * cell)
	x, y, z = -dzdx, 1, -dzdy
	mag := x*x + y*y + z*z
	if mag == 0 {
		return 0, 1, 0
	}
	invLen := 1 / math.Sqrt(mag)
	return x * invLen, y * invLen, z * invLen
}

// WriteGLTF has no writer implementation in this module.
func (m *ArrayMeshExporter) WriteGLTF(path string) error {
	return ErrUnsupportedConfig
}

// WriteFBX has no writer implementation in this module.
func (m *ArrayMeshExporter) WriteFBX(path string) error {
	return ErrUnsupportedConfig
}

func maxi(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func mini(a, b int) int {
	if a < b {
		return a
	}
	return b
}
