package nnqf

import (
	"math/rand"

	"gonum.org/v1/gonum/mat"
)

// demoX and demoY are the bundled demo data of the filter, 10 samples x 7 features.
func demoX() *mat.Dense {
	return mat.NewDense(10, 7, []float64{
		5, 3, 4, 6, 7, 8, 2,
		6, 3, 2, 5, 1, 1, 0,
		7, 7, 8, 3, 5, 2, 9,
		4, 5, 7, 2, 4, 6, 6,
		0, 1, 2, 4, 4, 5, 9,
		4, 2, 5, 6, 1, 3, 2,
		7, 4, 8, 1, 9, 5, 3,
		9, 7, 0, 3, 5, 6, 3,
		8, 3, 7, 3, 9, 1, 1,
		3, 6, 7, 3, 9, 0, 4,
	})
}

func demoY() []float64 {
	return []float64{1, 5, 7, 3, 8, 2, 4, 6, 8, 4}
}

// demoWeights are 1 / population variance of the columns of demoX.
var demoWeights = []float64{
	0.15600624024961, 0.25706940874035994, 0.13513513513513511, 0.40983606557377045,
	0.11848341232227487, 0.15600624024961, 0.11248593925759279,
}

// demoNeighbors is the k=3 neighbor table of demoX, weighted, euclidean.
var demoNeighbors = [][]int{
	{0, 5, 1}, {1, 5, 0}, {2, 9, 3}, {3, 6, 2}, {4, 5, 0},
	{5, 1, 0}, {6, 3, 8}, {7, 3, 2}, {8, 6, 9}, {9, 2, 8},
}

// equalVarianceX has three columns that are permutations of 0..11, so every
// column has exactly the same variance. No two candidate distances tie.
func equalVarianceX() *mat.Dense {
	return mat.NewDense(12, 3, []float64{
		4, 0, 4,
		11, 6, 5,
		2, 2, 3,
		3, 11, 7,
		9, 4, 6,
		6, 10, 10,
		1, 1, 2,
		5, 8, 9,
		10, 9, 8,
		0, 5, 11,
		7, 3, 0,
		8, 7, 1,
	})
}

var equalVarianceNeighbors = [][]int{
	{0, 2, 6, 10}, {1, 4, 8, 11}, {2, 6, 0, 10}, {3, 7, 5, 8}, {4, 1, 8, 11}, {5, 7, 3, 8},
	{6, 2, 0, 10}, {7, 5, 3, 8}, {8, 1, 5, 7}, {9, 7, 3, 5}, {10, 11, 0, 2}, {11, 10, 1, 4},
}

// randomSamples returns n x dims continuous features and integer outputs.
func randomSamples(n, dims int, seed int64) (*mat.Dense, []float64) {
	rng := rand.New(rand.NewSource(seed))
	data := make([]float64, n*dims)
	for i := range data {
		data[i] = rng.NormFloat64() * float64(1+i%dims)
	}
	y := make([]float64, n)
	for i := range y {
		y[i] = float64(rng.Intn(100))
	}
	return mat.NewDense(n, dims, data), y
}
