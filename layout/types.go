package layout

import "math"

// DistKind selects how box edge lengths are drawn.
type DistKind int

const (
	// Uniform draws integer edges uniformly from [A, B].
	Uniform DistKind = iota
	// Normal draws edges from a normal distribution with mean A and stddev B.
	Normal
)

// String returns "uniform" or "normal".
func (k DistKind) String() string {
	if k == Normal {
		return "normal"
	}

	return "uniform"
}

// Distribution describes one box class (small or large).
type Distribution struct {
	// Kind selects the edge-length distribution.
	Kind DistKind
	// A is the lower bound (Uniform) or the mean (Normal). Negative values clamp to 0.
	A float64
	// B is the upper bound (Uniform) or the standard deviation (Normal). Negative values clamp to 0.
	B float64
	// RatioLimit rejects boxes whose w/h or h/w exceeds it.
	RatioLimit float64
}

// Region selects the placement area of sampled boxes.
type Region int

const (
	// Ellipse places centers with a polar-uniform disk sample scaled by the radii.
	Ellipse Region = iota
	// Rect places centers uniformly in [-RadiusX, RadiusX] × [-RadiusY, RadiusY].
	Rect
)

// SampleOptions configures Sample.
type SampleOptions struct {
	Region           Region
	RadiusX, RadiusY float64 // clamped to ≥ 1
	NumBox           int     // target number of distinct boxes
	MaxIteration     int     // cap on draws, rejected ones included
	SmallBoxProb     float64 // probability of drawing from Small
	Small, Large     Distribution

	// LargeBoxRadiusMultiplier shrinks ellipse placement of large boxes toward
	// the center. Clamped to ≥ 0.01; ignored for Rect.
	LargeBoxRadiusMultiplier float64
}

// Limits applied to SampleOptions before sampling.
const (
	minRadius           = 1.0
	minRadiusMultiplier = 0.01

	// MaxUniformEdge bounds B of a Uniform class so the integer draw span fits an int.
	MaxUniformEdge = math.MaxInt32
)

// SeparationRounds is the fixed number of relaxation rounds run by Separate.
const SeparationRounds = 10
