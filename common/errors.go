package common

import "errors"

var (
	ErrorInvalidValue = errors.New("invalid value")

	// ErrorShapeMismatch: output length does not match the number of samples.
	ErrorShapeMismatch = errors.New("shape mismatch")
	// ErrorInvalidK: neighbor count outside [1, N].
	ErrorInvalidK              = errors.New("invalid number of neighbors")
	ErrorInvalidQuantile       = errors.New("quantile must be in [0, 1]")
	ErrorInvalidMinkowskiOrder = errors.New("minkowski order must be positive")
	// ErrorDegenerateFeature: a feature column has zero variance and can not be weighted.
	ErrorDegenerateFeature = errors.New("degenerate feature")
)
