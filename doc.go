// Package innovation provides closed-form scores for breakthrough innovation viability.
//
// # Overview
//
// Two independent formulas, both pure and safe for concurrent use:
//
//   - SuccessCurve - constraint complexity → success score in [0, 0.9]
//   - GospelValue  - paradox, credibility, readiness → propagation score in [0, 1]
//
// # The Success Curve
//
// Innovation success behaves like the bias-variance trade-off in model fitting.
// Too few simultaneous constraints and the idea has no clear value; too many and
// it becomes a traditional solution:
//
//	score := innovation.SuccessCurve(3) // mass producible + unique + luxury
//
//	switch innovation.ClassifyComplexity(3) {
//	case innovation.RegionUnderfitting: // c < 2
//	case innovation.RegionOptimal:      // 2 ≤ c ≤ 5
//	case innovation.RegionOverfitting:  // c > 5
//	}
//
// The three regions are not joined continuously. At c = 2 the score jumps from
// 0.3 to 0.675 and at c = 5 it falls from 0.675 to 0.2. CurveDiscontinuities
// reports both jumps.
//
// # The Gospel Model
//
// A claim spreads when it is paradoxical, carried by credible peers, and met by
// ready customers:
//
//	gospel = min(1, paradox^1.5 · credibility² · readiness^0.5)
//
// Fractional powers of a negative base are undefined, so GospelValue returns an
// error wrapping ErrDomain for a negative paradox strength or readiness:
//
//	v, err := innovation.GospelValue(0.8, 0.9, 0.7)
//	if errors.Is(err, innovation.ErrDomain) {
//	    // reject input
//	}
//
// # Testing
//
// Use assertions to validate score properties over a sweep:
//
//	points, _ := innovation.SweepCurve(innovation.DefaultSweepConfig())
//	innovation.AssertOptimalPeak(t, points, innovation.DefaultAssertionConfig())
//	innovation.AssertCurveFloor(t, points, innovation.DefaultAssertionConfig())
//
// # See Also
//
//   - cmd/innovation - command-line calculator
package innovation
