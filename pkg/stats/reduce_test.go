package stats

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"
)

// TestMeanReducer verifies the named mean reduction.
func TestMeanReducer(t *testing.T) {
	r := Mean()
	if r.Name() != "mean" {
		t.Errorf("Expected name \"mean\", got %q", r.Name())
	}
	if got := r.Reduce([]float64{1, 2, 3, 4}); got != 2.5 {
		t.Errorf("Expected mean 2.5, got %f", got)
	}
}

// TestMedianReducer verifies the named median reduction for odd and even
// sample counts, and that the input is not reordered.
func TestMedianReducer(t *testing.T) {
	r := Median()
	if got := r.Reduce([]float64{5, 1, 3}); got != 3 {
		t.Errorf("Expected median 3, got %f", got)
	}
	if got := r.Reduce([]float64{4, 1, 3, 2}); got != 2.5 {
		t.Errorf("Expected median 2.5, got %f", got)
	}

	xs := []float64{9, 2, 7}
	r.Reduce(xs)
	if xs[0] != 9 || xs[1] != 2 || xs[2] != 7 {
		t.Errorf("Median must not reorder its input, got %v", xs)
	}
}

// TestParse verifies named metric resolution and rejection of unknown names.
func TestParse(t *testing.T) {
	for _, name := range []string{"mean", "median"} {
		r, err := Parse(name)
		if err != nil {
			t.Errorf("Parse(%q) failed: %v", name, err)
		}
		if r.Name() != name {
			t.Errorf("Expected reducer name %q, got %q", name, r.Name())
		}
	}
	if _, err := Parse("mode"); err == nil {
		t.Error("Expected error for unknown metric \"mode\", got nil")
	}
}

// TestCustomReducer verifies that a well-behaved custom function is
// accepted.
func TestCustomReducer(t *testing.T) {
	max := func(xs []float64) float64 {
		m := math.Inf(-1)
		for _, v := range xs {
			if v > m {
				m = v
			}
		}
		return m
	}

	r, err := Custom("max", max)
	if err != nil {
		t.Fatalf("Custom rejected a valid reducer: %v", err)
	}
	if got := r.Reduce([]float64{1, 9, 4}); got != 9 {
		t.Errorf("Expected max 9, got %f", got)
	}
}

// TestCustomReducerRejection verifies the probe rejects nil, non-finite and
// panicking functions with an error rather than a crash.
func TestCustomReducerRejection(t *testing.T) {
	if _, err := Custom("nil", nil); err == nil {
		t.Error("Expected error for nil function, got nil")
	}

	if _, err := Custom("nan", func([]float64) float64 { return math.NaN() }); err == nil {
		t.Error("Expected error for NaN-producing function, got nil")
	}

	if _, err := Custom("panics", func([]float64) float64 { panic("not a reduction") }); err == nil {
		t.Error("Expected error for panicking function, got nil")
	}
}

// TestReduceAxis verifies axis-wise reduction of a matrix in both
// directions.
func TestReduceAxis(t *testing.T) {
	m := mat.NewDense(2, 3, []float64{
		1, 2, 3,
		5, 6, 7,
	})

	cols, err := ReduceAxis(Mean(), m, 0)
	if err != nil {
		t.Fatalf("ReduceAxis(axis=0) failed: %v", err)
	}
	expectedCols := []float64{3, 4, 5}
	if len(cols) != 3 {
		t.Fatalf("Expected 3 column reductions, got %d", len(cols))
	}
	for j, want := range expectedCols {
		if cols[j] != want {
			t.Errorf("Expected column %d mean %f, got %f", j, want, cols[j])
		}
	}

	rows, err := ReduceAxis(Mean(), m, 1)
	if err != nil {
		t.Fatalf("ReduceAxis(axis=1) failed: %v", err)
	}
	expectedRows := []float64{2, 6}
	if len(rows) != 2 {
		t.Fatalf("Expected 2 row reductions, got %d", len(rows))
	}
	for i, want := range expectedRows {
		if rows[i] != want {
			t.Errorf("Expected row %d mean %f, got %f", i, want, rows[i])
		}
	}

	if _, err := ReduceAxis(Mean(), m, 2); err == nil {
		t.Error("Expected error for axis 2, got nil")
	}
	if _, err := ReduceAxis(Reducer{}, m, 0); err == nil {
		t.Error("Expected error for zero-value reducer, got nil")
	}
}
