package neighbors

const (
	// Auto picks the kd-tree once the fitted set has at least this many points,
	// below it a linear scan is faster than building the tree.
	AutoKDTreeMinPoints = 64

	// sample size for the kd-tree pivot median, same as gonum's Points.
	pivotSampleSize = 100

	// relative widening of the tie collection radius
	radiusSlack = 1e-9
)
