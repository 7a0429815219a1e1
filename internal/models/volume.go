package models

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// GridVolume is an in-memory labeled atlas volume. It holds the region label
// of every voxel in row-major order together with the 4x4 affine matrix that
// maps voxel indices to world coordinates.
//
// GridVolume satisfies the read contract expected by the atlas package; any
// loader that materializes a labeled volume can stand in for it.
type GridVolume struct {
	// Data is the 3D label data as a 1D array in row-major order,
	// indexed as i*NJ*NK + j*NK + k.
	Data []int

	// NI, NJ, NK are the volume dimensions in voxels along each axis.
	NI, NJ, NK int

	// affine maps homogeneous voxel coordinates [i j k 1] to world
	// coordinates [x y z 1] by left-multiplication.
	affine *mat.Dense
}

// NewGridVolume creates an all-background volume with the given dimensions
// and affine matrix. A nil affine defaults to identity.
func NewGridVolume(ni, nj, nk int, affine *mat.Dense) (*GridVolume, error) {
	if ni <= 0 || nj <= 0 || nk <= 0 {
		return nil, fmt.Errorf("invalid volume dimensions %dx%dx%d", ni, nj, nk)
	}
	if affine == nil {
		affine = mat.NewDense(4, 4, nil)
		for d := 0; d < 4; d++ {
			affine.Set(d, d, 1)
		}
	}
	if r, c := affine.Dims(); r != 4 || c != 4 {
		return nil, fmt.Errorf("affine matrix must be 4x4, got %dx%d", r, c)
	}
	return &GridVolume{
		Data:   make([]int, ni*nj*nk),
		NI:     ni,
		NJ:     nj,
		NK:     nk,
		affine: affine,
	}, nil
}

// Dims returns the volume dimensions in voxels.
func (v *GridVolume) Dims() (ni, nj, nk int) {
	return v.NI, v.NJ, v.NK
}

// Label returns the region label at voxel (i, j, k).
func (v *GridVolume) Label(i, j, k int) int {
	return v.Data[i*v.NJ*v.NK+j*v.NK+k]
}

// SetLabel assigns the region label at voxel (i, j, k).
func (v *GridVolume) SetLabel(i, j, k, label int) {
	v.Data[i*v.NJ*v.NK+j*v.NK+k] = label
}

// Affine returns the 4x4 voxel-to-world affine matrix.
func (v *GridVolume) Affine() *mat.Dense {
	return v.affine
}
