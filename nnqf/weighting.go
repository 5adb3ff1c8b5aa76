package nnqf

import (
	"fmt"

	"github.com/uyouii/nnqf/common"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// VarianceWeights returns 1 / var_j for every column j of x, with the
// population variance (ddof = 0).
func VarianceWeights(x mat.Matrix) ([]float64, error) {
	rows, cols := x.Dims()
	weights := make([]float64, cols)
	col := make([]float64, rows)
	for j := 0; j < cols; j++ {
		mat.Col(col, j, x)
		variance := stat.PopVariance(col, nil)
		if variance == 0 {
			return nil, fmt.Errorf("%w: column %d has zero variance", common.ErrorDegenerateFeature, j)
		}
		weights[j] = 1 / variance
	}
	return weights, nil
}

// WeightFeatures returns a copy of x, with every column scaled by its inverse
// variance when enabled. x is never modified.
func WeightFeatures(x mat.Matrix, enabled bool) (*mat.Dense, error) {
	if !enabled {
		return mat.DenseCopyOf(x), nil
	}

	weights, err := VarianceWeights(x)
	if err != nil {
		return nil, err
	}

	weighted := mat.DenseCopyOf(x)
	weighted.Apply(func(_, j int, v float64) float64 {
		return v * weights[j]
	}, weighted)
	return weighted, nil
}
