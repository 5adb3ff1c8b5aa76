package nnqf

import "github.com/uyouii/nnqf/neighbors"

const (
	DefaultNumNeighbors   = 10
	DefaultQuantile       = 0.5
	DefaultVarWeighting   = true
	DefaultMinkowskiOrder = 2.0
	DefaultAlgorithm      = neighbors.Auto
	DefaultWorkers        = 1
)
