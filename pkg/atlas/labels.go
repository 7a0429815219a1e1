package atlas

import "sort"

// UniqueLabels returns the distinct non-zero region labels present in the
// volume, sorted ascending. Background (label 0) is always excluded. An
// all-zero volume yields an empty slice, not an error.
func UniqueLabels(vol Volume) []int {
	ni, nj, nk := vol.Dims()
	seen := make(map[int]struct{})

	for i := 0; i < ni; i++ {
		for j := 0; j < nj; j++ {
			for k := 0; k < nk; k++ {
				if label := vol.Label(i, j, k); label != 0 {
					seen[label] = struct{}{}
				}
			}
		}
	}

	labels := make([]int, 0, len(seen))
	for label := range seen {
		labels = append(labels, label)
	}
	sort.Ints(labels)
	return labels
}
