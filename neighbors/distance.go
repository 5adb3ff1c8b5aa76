package neighbors

import (
	"fmt"
	"math"

	"github.com/uyouii/nnqf/common"
	"gonum.org/v1/gonum/floats"
)

// ValidateOrder checks that p is a usable minkowski order, +Inf (chebyshev) included.
func ValidateOrder(p float64) error {
	if math.IsNaN(p) || p <= 0 {
		return fmt.Errorf("%w: got %v", common.ErrorInvalidMinkowskiOrder, p)
	}
	return nil
}

// Minkowski returns (sum |a_d - b_d|^p)^(1/p). p = 1, 2 and +Inf take gonum's fast paths.
func Minkowski(a, b []float64, p float64) float64 {
	return floats.Distance(a, b, p)
}
