// Package neighborhood generates the set of voxel coordinates surrounding a
// point, for local-window sampling against a labeled volume.
//
// For a center c and dilation radius d, the neighborhood is the Cartesian
// product of the per-axis inclusive ranges [c-d, c+d]: (2d+1)^3 coordinate
// triples, one of which is the center itself. Coordinates are produced in
// nested axis order with the first axis varying slowest.
package neighborhood

import "fmt"

// Expand returns the fully materialized neighborhood of the center
// coordinate. With d=0 the result is exactly the input coordinate.
func Expand(center [3]int, dilation int) ([][3]int, error) {
	it, err := NewIterator(center, dilation)
	if err != nil {
		return nil, err
	}
	coords := make([][3]int, 0, it.Count())
	for {
		c, ok := it.Next()
		if !ok {
			return coords, nil
		}
		coords = append(coords, c)
	}
}

// Iterator yields neighborhood coordinates one at a time without
// materializing the full set, for callers that only need a single scan
// (e.g. testing intersections against a label volume).
//
// An Iterator is consumed exactly once; restarting requires constructing a
// new one from the same parameters.
type Iterator struct {
	lo, hi [3]int
	cur    [3]int
	done   bool
}

// NewIterator creates a lazy neighborhood sequence around the center
// coordinate. The dilation radius must be non-negative.
func NewIterator(center [3]int, dilation int) (*Iterator, error) {
	if dilation < 0 {
		return nil, fmt.Errorf("dilation radius must be non-negative, got %d", dilation)
	}
	it := &Iterator{}
	for axis := 0; axis < 3; axis++ {
		it.lo[axis] = center[axis] - dilation
		it.hi[axis] = center[axis] + dilation
	}
	it.cur = it.lo
	return it, nil
}

// Count returns the total number of coordinates the sequence produces,
// (2d+1)^3, independent of how many have been consumed.
func (it *Iterator) Count() int {
	side := it.hi[0] - it.lo[0] + 1
	return side * side * side
}

// Next returns the next coordinate in the sequence. The second return value
// is false once the sequence is exhausted.
func (it *Iterator) Next() ([3]int, bool) {
	if it.done {
		return [3]int{}, false
	}
	coord := it.cur

	// Odometer increment: last axis fastest, first axis slowest.
	for axis := 2; ; axis-- {
		if it.cur[axis] < it.hi[axis] {
			it.cur[axis]++
			break
		}
		it.cur[axis] = it.lo[axis]
		if axis == 0 {
			it.done = true
			break
		}
	}
	return coord, true
}
