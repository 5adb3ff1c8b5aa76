package neighbors

import (
	"github.com/uyouii/nnqf/model"
)

// BruteForceIndex scans every point on each query, O(N*S) per query.
type BruteForceIndex struct {
	points [][]float64
	dims   int
	p      float64
}

func NewBruteForce(points [][]float64, p float64) (Index, error) {
	dims, err := validatePoints(points, p)
	if err != nil {
		return nil, err
	}
	return &BruteForceIndex{
		points: append([][]float64(nil), points...),
		dims:   dims,
		p:      p,
	}, nil
}

func (b *BruteForceIndex) Len() int {
	return len(b.points)
}

func (b *BruteForceIndex) Query(point []float64, k int) ([]model.Neighbor, error) {
	if err := validateQuery(point, k, len(b.points), b.dims); err != nil {
		return nil, err
	}

	all := make([]model.Neighbor, len(b.points))
	for i, candidate := range b.points {
		all[i] = model.Neighbor{
			Index:    i,
			Distance: Minkowski(point, candidate, b.p),
		}
	}
	sortNeighbors(all)

	res := make([]model.Neighbor, k)
	copy(res, all[:k])
	return res, nil
}
