package model

import "fmt"

// Neighbor is one entry of a sample's neighbor set.
type Neighbor struct {
	Index    int     // row index into the fitted sample set
	Distance float64 // minkowski distance to the query
}

// NeighborTable holds the k nearest neighbors of every sample, row i for sample i,
// sorted by ascending distance and then ascending index.
type NeighborTable [][]Neighbor

func (t NeighborTable) Rows() int {
	return len(t)
}

// K returns the neighbor count of the table, 0 if empty.
func (t NeighborTable) K() int {
	if len(t) == 0 {
		return 0
	}
	return len(t[0])
}

func (t NeighborTable) Indices(i int) []int {
	res := make([]int, len(t[i]))
	for j, n := range t[i] {
		res[j] = n.Index
	}
	return res
}

func (t NeighborTable) Contains(i, index int) bool {
	for _, n := range t[i] {
		if n.Index == index {
			return true
		}
	}
	return false
}

func (t NeighborTable) DebugString() string {
	return fmt.Sprintf("rows: %v, k: %v", t.Rows(), t.K())
}
