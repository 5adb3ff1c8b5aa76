package neighbors

import (
	"fmt"
	"sort"

	"github.com/uyouii/nnqf/common"
	"github.com/uyouii/nnqf/model"
)

type Algorithm int

const (
	Auto Algorithm = iota
	BruteForce
	KDTree
)

func (a Algorithm) String() string {
	switch a {
	case Auto:
		return "auto"
	case BruteForce:
		return "brute"
	case KDTree:
		return "kd_tree"
	}
	return fmt.Sprintf("algorithm(%d)", int(a))
}

// Index answers exact k nearest neighbor queries over a fixed point set.
// Results are sorted by ascending distance, equal distances by ascending index.
// Implementations must be safe for concurrent Query calls.
type Index interface {
	Query(point []float64, k int) ([]model.Neighbor, error)
	Len() int
}

// Builder builds an Index over points under the minkowski distance of order p.
// Build does not keep a reference to the outer slice, the rows themselves are shared.
type Builder interface {
	Build(points [][]float64, p float64) (Index, error)
}

type BuilderFunc func(points [][]float64, p float64) (Index, error)

func (f BuilderFunc) Build(points [][]float64, p float64) (Index, error) {
	return f(points, p)
}

// NewBuilder returns the builder for algo. Auto resolves per point set, see AutoKDTreeMinPoints.
func NewBuilder(algo Algorithm) (Builder, error) {
	switch algo {
	case Auto:
		return BuilderFunc(buildAuto), nil
	case BruteForce:
		return BuilderFunc(NewBruteForce), nil
	case KDTree:
		return BuilderFunc(NewKDTree), nil
	}
	return nil, fmt.Errorf("%w: unknown neighbor algorithm %v", common.ErrorInvalidValue, algo)
}

// Resolve returns the concrete algorithm Auto would use for n points and order p.
func Resolve(algo Algorithm, n int, p float64) Algorithm {
	if algo != Auto {
		return algo
	}
	if n >= AutoKDTreeMinPoints && p >= 1 {
		return KDTree
	}
	return BruteForce
}

func buildAuto(points [][]float64, p float64) (Index, error) {
	if Resolve(Auto, len(points), p) == KDTree {
		return NewKDTree(points, p)
	}
	return NewBruteForce(points, p)
}

func validatePoints(points [][]float64, p float64) (int, error) {
	if err := ValidateOrder(p); err != nil {
		return 0, err
	}
	if len(points) == 0 {
		return 0, nil
	}
	dims := len(points[0])
	for i, point := range points {
		if len(point) != dims {
			return 0, fmt.Errorf("%w: point %d has %d dims, expected %d",
				common.ErrorShapeMismatch, i, len(point), dims)
		}
	}
	return dims, nil
}

func validateQuery(point []float64, k, n, dims int) error {
	if k < 1 || k > n {
		return fmt.Errorf("%w: k=%d with %d points", common.ErrorInvalidK, k, n)
	}
	if len(point) != dims {
		return fmt.Errorf("%w: query has %d dims, expected %d", common.ErrorShapeMismatch, len(point), dims)
	}
	return nil
}

// sortNeighbors orders by distance, then by index.
func sortNeighbors(ns []model.Neighbor) {
	sort.Slice(ns, func(i, j int) bool {
		if ns[i].Distance != ns[j].Distance {
			return ns[i].Distance < ns[j].Distance
		}
		return ns[i].Index < ns[j].Index
	})
}
