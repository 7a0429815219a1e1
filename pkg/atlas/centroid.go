package atlas

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"atlasgeo/pkg/transform"
)

// Centroids computes the center of mass in voxel-index space for each
// requested region label, returned as an Nx3 matrix with one centroid per
// row in the same order as the request. A nil or empty label list defaults
// to all labels present in the volume (per UniqueLabels).
//
// Requesting a label absent from the volume is a caller error: the mean
// over an empty region is undefined, so it is reported as an error rather
// than masked with a sentinel value.
func Centroids(vol Volume, labels []int) (*mat.Dense, error) {
	if len(labels) == 0 {
		labels = UniqueLabels(vol)
	}
	if len(labels) == 0 {
		return nil, fmt.Errorf("volume contains no non-zero labels")
	}

	// Accumulate index sums and voxel counts for every requested label in
	// a single pass over the volume.
	type accum struct {
		sum   [3]float64
		count int
	}
	acc := make(map[int]*accum, len(labels))
	for _, label := range labels {
		if label == 0 {
			return nil, fmt.Errorf("label 0 is background, not a region")
		}
		if _, ok := acc[label]; !ok {
			acc[label] = &accum{}
		}
	}

	ni, nj, nk := vol.Dims()
	for i := 0; i < ni; i++ {
		for j := 0; j < nj; j++ {
			for k := 0; k < nk; k++ {
				a, ok := acc[vol.Label(i, j, k)]
				if !ok {
					continue
				}
				a.sum[0] += float64(i)
				a.sum[1] += float64(j)
				a.sum[2] += float64(k)
				a.count++
			}
		}
	}

	out := mat.NewDense(len(labels), 3, nil)
	for row, label := range labels {
		a := acc[label]
		if a.count == 0 {
			return nil, fmt.Errorf("label %d not present in volume", label)
		}
		n := float64(a.count)
		out.Set(row, 0, a.sum[0]/n)
		out.Set(row, 1, a.sum[1]/n)
		out.Set(row, 2, a.sum[2]/n)
	}
	return out, nil
}

// CentroidsWorld computes region centroids like Centroids and then maps
// them into world space via the volume's affine matrix.
func CentroidsWorld(vol Volume, labels []int) (*mat.Dense, error) {
	centroids, err := Centroids(vol, labels)
	if err != nil {
		return nil, err
	}
	return transform.VoxelToWorld(vol.Affine(), centroids)
}
