package stats

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// ColumnCorrelation computes the Pearson correlation of the i-th column of x
// with the i-th column of y, for NxM inputs with N observations of M
// variables. The result has one correlation per column pair.
//
// Implemented as the scaled product of sample z-scores (ddof=1), which
// avoids forming the full MxM correlation matrix when only the diagonal
// pairing is needed.
func ColumnCorrelation(x, y mat.Matrix) ([]float64, error) {
	xr, xc := x.Dims()
	yr, yc := y.Dims()
	if xr != yr || xc != yc {
		return nil, fmt.Errorf("input shapes %dx%d and %dx%d do not match", xr, xc, yr, yc)
	}
	if xr < 2 {
		return nil, fmt.Errorf("column correlation requires at least 2 observations, got %d", xr)
	}

	corr := make([]float64, xc)
	zx := make([]float64, xr)
	zy := make([]float64, xr)
	for j := 0; j < xc; j++ {
		mat.Col(zx, j, x)
		mat.Col(zy, j, y)
		zscore(zx)
		zscore(zy)
		corr[j] = floats.Dot(zx, zy) / float64(xr-1)
	}
	return corr, nil
}

// zscore standardizes the sample in place using the sample (ddof=1)
// standard deviation. A zero-variance sample has no defined z-scores, so
// every element becomes NaN and any correlation built on it is NaN too.
func zscore(xs []float64) {
	mean, std := stat.MeanStdDev(xs, nil)
	if std == 0 {
		for i := range xs {
			xs[i] = math.NaN()
		}
		return
	}
	floats.AddConst(-mean, xs)
	floats.Scale(1/std, xs)
}
