package geom

import "math"

// Float comparison constants. Epsilon is the spacing of float32 values
// around 1.0 and MinNormal the smallest normalized float32; segment
// containment inherited these from the original tuning and boundary
// behavior depends on them.
const (
	Epsilon   = 1.1920928955078125e-7
	MinNormal = 1.175494e-38
)

// Near reports whether a and b are equal within floating-point noise:
// |a-b| < k·ε·|a+b|, or |a-b| below the smallest normal number for
// values near zero. k defaults to 1.
func Near(a, b float64) bool {
	return NearK(a, b, 1)
}

// NearK is Near with an explicit tolerance multiplier.
func NearK(a, b, k float64) bool {
	diff := math.Abs(a - b)
	return diff < k*Epsilon*math.Abs(a+b) || diff < MinNormal
}
