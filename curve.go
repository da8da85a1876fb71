package innovation

import "math"

// Region boundaries of the success curve.
//
// The curve borrows its vocabulary from model fitting: too few constraints
// and the idea has no clear value (underfitting), too many and it collapses
// into a traditional solution (overfitting).
const (
	UnderfitBoundary  = 2.0 // complexity < 2 is underfitting
	OverfitBoundary   = 5.0 // complexity > 5 is overfitting
	OptimalComplexity = 3.5 // midpoint of the optimal zone
	PeakScore         = 0.9 // score at OptimalComplexity
)

const (
	underfitBase   = 0.3
	underfitWeight = 0.15
	optimalWeight  = 0.1
	overfitBase    = 0.2
	overfitWeight  = 0.05
)

// Region identifies which branch of the success curve applies.
type Region int

const (
	// RegionUnderfitting covers complexity below 2: too simple to carry clear value.
	RegionUnderfitting Region = iota
	// RegionOptimal covers complexity in [2, 5], boundaries included.
	RegionOptimal
	// RegionOverfitting covers complexity above 5: the idea becomes a traditional solution.
	RegionOverfitting
)

// String returns the lower-case region name used in logs and CLI output.
func (r Region) String() string {
	switch r {
	case RegionUnderfitting:
		return "underfitting"
	case RegionOptimal:
		return "optimal"
	case RegionOverfitting:
		return "overfitting"
	default:
		return "unknown"
	}
}

// ClassifyComplexity returns the region SuccessCurve evaluates c in.
// Both boundaries belong to the optimal zone. NaN falls through to the
// optimal zone as well, since it compares false against both boundaries.
func ClassifyComplexity(c float64) Region {
	switch {
	case c < UnderfitBoundary:
		return RegionUnderfitting
	case c > OverfitBoundary:
		return RegionOverfitting
	default:
		return RegionOptimal
	}
}

// SuccessCurve models innovation success as a function of constraint complexity.
//
// Three quadratic penalty regions:
//
//	c < 2:       max(0, 0.3 - (2-c)² · 0.15)   underfitting
//	2 ≤ c ≤ 5:   0.9 - |c-3.5|² · 0.1          optimal zone
//	c > 5:       max(0, 0.2 - (c-5)² · 0.05)   overfitting
//
// The outer regions are floored at 0; the optimal zone is not. The curve
// jumps at both boundaries (0.3 → 0.675 at c=2, 0.675 → 0.2 at c=5), see
// FindDiscontinuities.
func SuccessCurve(c float64) float64 {
	switch ClassifyComplexity(c) {
	case RegionUnderfitting:
		penalty := (UnderfitBoundary - c) * (UnderfitBoundary - c)
		return math.Max(0, underfitBase-penalty*underfitWeight)
	case RegionOverfitting:
		penalty := (c - OverfitBoundary) * (c - OverfitBoundary)
		return math.Max(0, overfitBase-penalty*overfitWeight)
	default:
		distance := math.Abs(c - OptimalComplexity)
		return PeakScore - distance*distance*optimalWeight
	}
}
