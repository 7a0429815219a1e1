// Package stats provides the aggregation reducers and column statistics used
// when collapsing expression samples over atlas regions.
package stats

import (
	"fmt"
	"math"
	"math/rand"
	"sort"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// ReduceFunc collapses a slice of samples to a single scalar.
type ReduceFunc func([]float64) float64

// Reducer is an aggregation mechanism: one of the named reductions (mean,
// median) or a caller-supplied function validated by Custom. The zero value
// is not usable; obtain a Reducer from Mean, Median, Custom or Parse.
type Reducer struct {
	name string
	fn   ReduceFunc
}

// Mean returns the arithmetic-mean reducer.
func Mean() Reducer {
	return Reducer{name: "mean", fn: func(xs []float64) float64 {
		return stat.Mean(xs, nil)
	}}
}

// Median returns the median reducer.
func Median() Reducer {
	return Reducer{name: "median", fn: median}
}

// median computes the middle value, averaging the two central values for
// even-length input. Operates on a copy so the input is never reordered.
func median(xs []float64) float64 {
	if len(xs) == 0 {
		return math.NaN()
	}
	sorted := make([]float64, len(xs))
	copy(sorted, xs)
	sort.Float64s(sorted)

	n := len(sorted)
	if n%2 == 0 {
		return (sorted[n/2-1] + sorted[n/2]) / 2
	}
	return sorted[n/2]
}

// Custom wraps a caller-supplied reduction function after probing that it
// honors the reduction contract: applied down the columns of an NxM input it
// must produce M values, and applied to the full sample it must produce a
// single finite scalar. A function failing either probe is rejected.
func Custom(name string, fn ReduceFunc) (r Reducer, err error) {
	if fn == nil {
		return Reducer{}, fmt.Errorf("custom reducer %q is nil", name)
	}

	// A misbehaving function may panic on the probe input rather than
	// return; treat that as a failed probe.
	defer func() {
		if recovered := recover(); recovered != nil {
			err = fmt.Errorf("custom reducer %q does not perform as expected: %v", name, recovered)
		}
	}()

	rng := rand.New(rand.NewSource(1))
	probe := mat.NewDense(10, 10, nil)
	for i := 0; i < 10; i++ {
		for j := 0; j < 10; j++ {
			probe.Set(i, j, rng.Float64())
		}
	}

	candidate := Reducer{name: name, fn: fn}
	reduced, err := ReduceAxis(candidate, probe, 0)
	if err != nil {
		return Reducer{}, err
	}
	if len(reduced) != 10 {
		return Reducer{}, fmt.Errorf("custom reducer %q produced %d values for a 10-column input, want 10", name, len(reduced))
	}
	for _, v := range reduced {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return Reducer{}, fmt.Errorf("custom reducer %q produced non-finite value %v", name, v)
		}
	}
	if total := fn(probe.RawMatrix().Data); math.IsNaN(total) || math.IsInf(total, 0) {
		return Reducer{}, fmt.Errorf("custom reducer %q did not reduce the full sample to a finite scalar, got %v", name, total)
	}
	return candidate, nil
}

// Parse resolves a named aggregation keyword to its Reducer. Valid names are
// "mean" and "median".
func Parse(name string) (Reducer, error) {
	switch name {
	case "mean":
		return Mean(), nil
	case "median":
		return Median(), nil
	default:
		return Reducer{}, fmt.Errorf("aggregation metric %q is not valid; must be one of [mean median]", name)
	}
}

// Name returns the reducer's name.
func (r Reducer) Name() string { return r.name }

// Reduce collapses the samples to a scalar.
func (r Reducer) Reduce(xs []float64) float64 {
	return r.fn(xs)
}

// ReduceAxis applies the reducer along one axis of a matrix, collapsing an
// NxM input to M values for axis 0 or N values for axis 1.
func ReduceAxis(r Reducer, m mat.Matrix, axis int) ([]float64, error) {
	if r.fn == nil {
		return nil, fmt.Errorf("reducer is not initialized")
	}
	rows, cols := m.Dims()
	switch axis {
	case 0:
		out := make([]float64, cols)
		buf := make([]float64, rows)
		for j := 0; j < cols; j++ {
			mat.Col(buf, j, m)
			out[j] = r.fn(buf)
		}
		return out, nil
	case 1:
		out := make([]float64, rows)
		buf := make([]float64, cols)
		for i := 0; i < rows; i++ {
			mat.Row(buf, i, m)
			out[i] = r.fn(buf)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("axis must be 0 or 1, got %d", axis)
	}
}
