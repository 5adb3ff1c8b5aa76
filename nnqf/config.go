package nnqf

import (
	"fmt"
	"math"

	"github.com/uyouii/nnqf/common"
	"github.com/uyouii/nnqf/neighbors"
)

type Config struct {
	// NumNeighbors is the size k of every neighbor set, 1 <= k <= N.
	// The sample itself is counted when it is its own nearest point.
	NumNeighbors int

	// Quantile probability in [0, 1] used to reduce the neighbor outputs.
	Quantile float64

	// VarWeighting multiplies every feature column by the inverse of its
	// population variance before distances are computed.
	VarWeighting bool

	// MinkowskiOrder is p of the minkowski distance, 1 manhattan, 2 euclidean.
	MinkowskiOrder float64

	Algorithm neighbors.Algorithm

	// Workers > 1 runs neighbor queries concurrently, results do not change.
	Workers int
}

func DefaultConfig() Config {
	return Config{
		NumNeighbors:   DefaultNumNeighbors,
		Quantile:       DefaultQuantile,
		VarWeighting:   DefaultVarWeighting,
		MinkowskiOrder: DefaultMinkowskiOrder,
		Algorithm:      DefaultAlgorithm,
		Workers:        DefaultWorkers,
	}
}

// Validate checks the parameters against a sample set of n rows.
func (c Config) Validate(n int) error {
	if err := ValidateK(c.NumNeighbors, n); err != nil {
		return err
	}
	if err := ValidateQuantile(c.Quantile); err != nil {
		return err
	}
	if err := neighbors.ValidateOrder(c.MinkowskiOrder); err != nil {
		return err
	}
	_, err := neighbors.NewBuilder(c.Algorithm)
	return err
}

func (c Config) workers() int {
	if c.Workers < 1 {
		return 1
	}
	return c.Workers
}

func ValidateK(k, n int) error {
	if k < 1 || k > n {
		return fmt.Errorf("%w: num_neighbors=%d, samples=%d", common.ErrorInvalidK, k, n)
	}
	return nil
}

func ValidateQuantile(q float64) error {
	if math.IsNaN(q) || q < 0 || q > 1 {
		return fmt.Errorf("%w: got %v", common.ErrorInvalidQuantile, q)
	}
	return nil
}
