// Package transform converts coordinate batches between voxel-index space
// and world space using a 4x4 affine matrix.
//
// The affine maps homogeneous voxel coordinates [i j k 1] to world
// coordinates [x y z 1] by left-multiplication. The world-to-voxel direction
// solves the linear system affine * x = coords rather than multiplying by a
// separately computed inverse, which is numerically inferior.
package transform

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// checkAffine confirms the matrix is 4x4.
func checkAffine(affine mat.Matrix) error {
	if r, c := affine.Dims(); r != 4 || c != 4 {
		return fmt.Errorf("affine matrix must be 4x4, got %dx%d", r, c)
	}
	return nil
}

// checkCoords confirms a coordinate batch has one axis of length 3 and
// returns it homogenized as a 4xN matrix with axes on rows and a trailing
// row of ones.
//
// Batches may be given as either 3xN or Nx3; orientation is detected by
// which axis has length 3. An ambiguous 3x3 batch is taken as one point per
// row (Nx3).
func checkCoords(coords mat.Matrix) (*mat.Dense, error) {
	r, c := coords.Dims()
	if r != 3 && c != 3 {
		return nil, fmt.Errorf("input coordinates must be of shape 3xN or Nx3, got %dx%d", r, c)
	}

	var oriented mat.Matrix = coords
	n := c
	if c == 3 {
		oriented = coords.T()
		n = r
	}

	homog := mat.NewDense(4, n, nil)
	for i := 0; i < 3; i++ {
		for j := 0; j < n; j++ {
			homog.Set(i, j, oriented.At(i, j))
		}
	}
	for j := 0; j < n; j++ {
		homog.Set(3, j, 1)
	}
	return homog, nil
}

// VoxelToWorld converts a batch of voxel-index coordinates to world
// coordinates. The batch may be 3xN or Nx3; the result is always Nx3 with
// one world coordinate per row.
func VoxelToWorld(affine mat.Matrix, coords mat.Matrix) (*mat.Dense, error) {
	if err := checkAffine(affine); err != nil {
		return nil, err
	}
	homog, err := checkCoords(coords)
	if err != nil {
		return nil, err
	}

	_, n := homog.Dims()
	var prod mat.Dense
	prod.Mul(affine, homog)

	// Drop the homogeneous row and transpose to Nx3.
	out := mat.NewDense(n, 3, nil)
	for j := 0; j < n; j++ {
		for i := 0; i < 3; i++ {
			out.Set(j, i, prod.At(i, j))
		}
	}
	return out, nil
}

// WorldToVoxel converts a batch of world coordinates to voxel indices by
// solving affine * x = coords. The batch may be 3xN or Nx3; the result is
// one voxel index triple per input coordinate, with fractional components
// truncated toward zero.
//
// Truncation rather than rounding is deliberate: it mirrors the established
// behavior of the voxel lookup this transform feeds, and is asymmetric with
// VoxelToWorld, which keeps fractional results.
//
// A singular affine matrix is a precondition violation and surfaces as the
// solver's error.
func WorldToVoxel(affine mat.Matrix, coords mat.Matrix) ([][3]int, error) {
	if err := checkAffine(affine); err != nil {
		return nil, err
	}
	homog, err := checkCoords(coords)
	if err != nil {
		return nil, err
	}

	var solved mat.Dense
	if err := solved.Solve(affine, homog); err != nil {
		return nil, fmt.Errorf("affine matrix is singular or ill-conditioned: %v", err)
	}

	_, n := homog.Dims()
	out := make([][3]int, n)
	for j := 0; j < n; j++ {
		for i := 0; i < 3; i++ {
			out[j][i] = int(solved.At(i, j))
		}
	}
	return out, nil
}
