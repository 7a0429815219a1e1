// Package atlas maps between a discretely labeled volumetric atlas and
// continuous spatial coordinates: it extracts the region labels present in
// a volume, computes per-region centroids, and assigns arbitrary query
// points to their nearest region.
//
// All operations are stateless pure functions over a read-only Volume; they
// are safe to invoke concurrently across independent inputs.
package atlas

import "gonum.org/v1/gonum/mat"

// Volume is the read contract for a labeled atlas volume. Each voxel carries
// an integer region label; 0 denotes background. The affine matrix maps
// homogeneous voxel coordinates [i j k 1] to world coordinates [x y z 1].
//
// Implementations are never mutated by this package.
type Volume interface {
	// Dims returns the volume dimensions in voxels.
	Dims() (ni, nj, nk int)

	// Label returns the region label at voxel (i, j, k).
	Label(i, j, k int) int

	// Affine returns the 4x4 voxel-to-world affine matrix.
	Affine() *mat.Dense
}
