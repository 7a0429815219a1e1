package atlas

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// ClosestCentroid returns the row index of the centroid nearest to the query
// point by Euclidean distance. Centroids are given as an Nx3 matrix, one per
// row, in the same space as the query point.
//
// Ties resolve to the lowest index: the comparison is strictly less-than, so
// equidistant centroids keep the first occurrence. This is a deterministic,
// caller-visible guarantee. The returned index is positional; mapping it
// back to a region label is the caller's responsibility.
func ClosestCentroid(point []float64, centroids mat.Matrix) (int, error) {
	if len(point) != 3 {
		return 0, fmt.Errorf("query point must have 3 components, got %d", len(point))
	}
	n, c := centroids.Dims()
	if c != 3 {
		return 0, fmt.Errorf("centroids must be Nx3, got %dx%d", n, c)
	}
	if n == 0 {
		return 0, fmt.Errorf("centroid collection is empty")
	}

	best := 0
	bestDist := math.Inf(1)
	for row := 0; row < n; row++ {
		var d2 float64
		for i := 0; i < 3; i++ {
			diff := centroids.At(row, i) - point[i]
			d2 += diff * diff
		}
		if d2 < bestDist {
			bestDist = d2
			best = row
		}
	}
	return best, nil
}
