package neighbors

import (
	"math"

	"github.com/uyouii/nnqf/model"
	"gonum.org/v1/gonum/spatial/kdtree"
)

// treePoint is a kdtree.Comparable carrying its row index.
// Distance reports the squared minkowski distance: |a_d - b_d| never exceeds the
// minkowski distance for any p > 0, so the tree's c*c pruning stays exact.
type treePoint struct {
	coords []float64
	index  int
	p      float64
}

func (t treePoint) Compare(c kdtree.Comparable, d kdtree.Dim) float64 {
	return t.coords[d] - c.(treePoint).coords[d]
}

func (t treePoint) Dims() int {
	return len(t.coords)
}

func (t treePoint) Distance(c kdtree.Comparable) float64 {
	d := Minkowski(t.coords, c.(treePoint).coords, t.p)
	return d * d
}

type treePoints []treePoint

func (p treePoints) Index(i int) kdtree.Comparable { return p[i] }
func (p treePoints) Len() int                      { return len(p) }
func (p treePoints) Slice(start, end int) kdtree.Interface {
	return p[start:end]
}
func (p treePoints) Pivot(d kdtree.Dim) int {
	pl := treePlane{dim: d, points: p}
	return kdtree.Partition(pl, kdtree.MedianOfRandoms(pl, pivotSampleSize))
}

type treePlane struct {
	dim    kdtree.Dim
	points treePoints
}

func (p treePlane) Len() int { return len(p.points) }
func (p treePlane) Less(i, j int) bool {
	return p.points[i].coords[p.dim] < p.points[j].coords[p.dim]
}
func (p treePlane) Swap(i, j int) { p.points[i], p.points[j] = p.points[j], p.points[i] }
func (p treePlane) Slice(start, end int) kdtree.SortSlicer {
	p.points = p.points[start:end]
	return p
}

// KDTreeIndex answers queries with a gonum k-d tree.
type KDTreeIndex struct {
	tree   *kdtree.Tree
	points [][]float64
	dims   int
	p      float64
}

func NewKDTree(points [][]float64, p float64) (Index, error) {
	dims, err := validatePoints(points, p)
	if err != nil {
		return nil, err
	}

	idx := &KDTreeIndex{
		points: append([][]float64(nil), points...),
		dims:   dims,
		p:      p,
	}
	if len(points) == 0 || dims == 0 {
		// a zero dimensional tree can not pick a split plane
		return idx, nil
	}

	tps := make(treePoints, len(points))
	for i, point := range points {
		tps[i] = treePoint{coords: point, index: i, p: p}
	}
	idx.tree = kdtree.New(tps, false)
	return idx, nil
}

func (t *KDTreeIndex) Len() int {
	return len(t.points)
}

func (t *KDTreeIndex) Query(point []float64, k int) ([]model.Neighbor, error) {
	if err := validateQuery(point, k, len(t.points), t.dims); err != nil {
		return nil, err
	}
	if t.tree == nil {
		return bruteQuery(t.points, point, k, t.p), nil
	}

	q := treePoint{coords: point, index: -1, p: t.p}

	nk := kdtree.NewNKeeper(k)
	t.tree.NearestSet(nk, q)
	radius := math.Inf(-1)
	for _, c := range nk.Heap {
		if c.Comparable != nil && c.Dist > radius {
			radius = c.Dist
		}
	}

	// second pass collects every point tied with the k-th one so the
	// index ordering among equal distances does not depend on tree layout.
	// math.Pow may round a distance below its axis gap, the slack keeps the
	// tree from pruning those points. Extra candidates are dropped by the sort.
	dk := kdtree.NewDistKeeper(radius * (1 + radiusSlack))
	t.tree.NearestSet(dk, q)

	candidates := make([]model.Neighbor, 0, len(dk.Heap))
	for _, c := range dk.Heap {
		if c.Comparable == nil {
			continue
		}
		tp := c.Comparable.(treePoint)
		candidates = append(candidates, model.Neighbor{
			Index:    tp.index,
			Distance: Minkowski(point, tp.coords, t.p),
		})
	}
	sortNeighbors(candidates)

	if len(candidates) < k {
		return bruteQuery(t.points, point, k, t.p), nil
	}
	res := make([]model.Neighbor, k)
	copy(res, candidates[:k])
	return res, nil
}

func bruteQuery(points [][]float64, point []float64, k int, p float64) []model.Neighbor {
	b := &BruteForceIndex{points: points, dims: len(point), p: p}
	res, _ := b.Query(point, k)
	return res
}
