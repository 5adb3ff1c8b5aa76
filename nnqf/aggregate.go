package nnqf

import (
	"fmt"

	"github.com/uyouii/nnqf/common"
	"github.com/uyouii/nnqf/model"
	"gonum.org/v1/gonum/mat"
)

// GatherNeighborOutputs builds the N x k table whose entry [i, j] is the
// output of the j-th neighbor of sample i. The table is allocated once and
// every row, row 0 included, is filled by index.
func GatherNeighborOutputs(y []float64, table model.NeighborTable) (*mat.Dense, error) {
	rows, k := table.Rows(), table.K()
	if rows == 0 || k == 0 {
		return nil, fmt.Errorf("%w: empty neighbor table", common.ErrorInvalidValue)
	}

	outputs := mat.NewDense(rows, k, nil)
	for i, neighborSet := range table {
		if len(neighborSet) != k {
			return nil, fmt.Errorf("%w: row %d has %d neighbors, expected %d",
				common.ErrorShapeMismatch, i, len(neighborSet), k)
		}
		for j, neighbor := range neighborSet {
			if neighbor.Index < 0 || neighbor.Index >= len(y) {
				return nil, fmt.Errorf("%w: neighbor index %d out of range for %d outputs",
					common.ErrorShapeMismatch, neighbor.Index, len(y))
			}
			outputs.Set(i, j, y[neighbor.Index])
		}
	}
	return outputs, nil
}
