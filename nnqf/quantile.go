package nnqf

import (
	"fmt"
	"math"
	"sort"

	"github.com/uyouii/nnqf/common"
	"gonum.org/v1/gonum/mat"
)

// Quantile returns the q-quantile of values, linearly interpolated between
// the order statistics at rank q*(n-1). values is not modified.
// q must already be validated, an empty slice gives NaN.
func Quantile(values []float64, q float64) float64 {
	if len(values) == 0 {
		return math.NaN()
	}
	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)
	return quantileSorted(sorted, q)
}

func quantileSorted(sorted []float64, q float64) float64 {
	n := len(sorted)
	if n == 1 {
		return sorted[0]
	}
	rank := q * float64(n-1)
	lower := int(math.Floor(rank))
	if lower >= n-1 {
		return sorted[n-1]
	}
	frac := rank - float64(lower)
	return sorted[lower] + frac*(sorted[lower+1]-sorted[lower])
}

// ReduceQuantile reduces every row of table to its q-quantile.
func ReduceQuantile(table mat.Matrix, q float64) ([]float64, error) {
	res, err := ReduceQuantiles(table, []float64{q})
	if err != nil {
		return nil, err
	}
	return res[0], nil
}

// ReduceQuantiles reduces every row of table once per q, sorting each row only once.
// res[m][i] is the qs[m]-quantile of row i.
func ReduceQuantiles(table mat.Matrix, qs []float64) ([][]float64, error) {
	for _, q := range qs {
		if err := ValidateQuantile(q); err != nil {
			return nil, err
		}
	}

	rows, cols := table.Dims()
	if rows == 0 || cols == 0 {
		return nil, fmt.Errorf("%w: empty neighbor output table", common.ErrorInvalidValue)
	}
	res := make([][]float64, len(qs))
	for m := range res {
		res[m] = make([]float64, rows)
	}

	row := make([]float64, cols)
	for i := 0; i < rows; i++ {
		mat.Row(row, i, table)
		sort.Float64s(row)
		for m, q := range qs {
			res[m][i] = quantileSorted(row, q)
		}
	}
	return res, nil
}
