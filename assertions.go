package innovation

import (
	"math"
	"testing"
)

// AssertionConfig contains the bounds checked by the score assertions.
type AssertionConfig struct {
	// Peak of the optimal zone (SuccessCurve never exceeds this on [2, 5])
	MaxOptimalScore float64

	// Lowest score any floored region may produce
	MinScore float64

	// Upper clamp of the gospel value
	MaxGospel float64

	// Slack for floating point comparisons
	Tolerance float64
}

// DefaultAssertionConfig returns the bounds the formulas guarantee.
func DefaultAssertionConfig() AssertionConfig {
	return AssertionConfig{
		MaxOptimalScore: PeakScore,
		MinScore:        0.0,
		MaxGospel:       MaxGospelValue,
		Tolerance:       1e-12,
	}
}

// AssertOptimalPeak verifies that no sample in the optimal zone scores
// above the midpoint peak.
//
// Mathematical property:
//
//	∀ c ∈ [2, 5]: SuccessCurve(c) ≤ SuccessCurve(3.5) = 0.9
func AssertOptimalPeak(t testing.TB, points []CurvePoint, cfg AssertionConfig) {
	t.Helper()

	checked := 0
	for _, p := range points {
		if p.Region != RegionOptimal {
			continue
		}
		checked++
		if p.Score > cfg.MaxOptimalScore+cfg.Tolerance {
			t.Errorf("Optimal zone exceeds peak: f(%.4f) = %.6f (max: %.6f)",
				p.Complexity, p.Score, cfg.MaxOptimalScore)
		}
	}

	if checked == 0 {
		t.Errorf("No samples fell in the optimal zone [%.1f, %.1f]",
			UnderfitBoundary, OverfitBoundary)
		return
	}

	t.Logf("✓ Optimal peak: %d samples ≤ %.2f", checked, cfg.MaxOptimalScore)
}

// AssertCurveFloor verifies the underfitting and overfitting regions never
// drop below the floor. The optimal zone is deliberately not checked.
func AssertCurveFloor(t testing.TB, points []CurvePoint, cfg AssertionConfig) {
	t.Helper()

	checked := 0
	for _, p := range points {
		if p.Region == RegionOptimal {
			continue
		}
		checked++
		if p.Score < cfg.MinScore || math.IsNaN(p.Score) {
			t.Errorf("%s region below floor: f(%.4f) = %.6f (min: %.6f)",
				p.Region, p.Complexity, p.Score, cfg.MinScore)
		}
	}

	t.Logf("✓ Curve floor: %d outer-region samples ≥ %.2f", checked, cfg.MinScore)
}

// GospelInput is one argument triple for GospelValue.
type GospelInput struct {
	ParadoxStrength   float64
	PeerCredibility   float64
	CustomerReadiness float64
}

// AssertGospelClamped verifies GospelValue stays within [0, MaxGospel] for
// every valid input.
//
// Mathematical property:
//
//	p, r ≥ 0 ⇒ 0 ≤ min(1, p^1.5 · c² · r^0.5) ≤ 1
func AssertGospelClamped(t testing.TB, inputs []GospelInput, cfg AssertionConfig) {
	t.Helper()

	saturated := 0
	for _, in := range inputs {
		v, err := GospelValue(in.ParadoxStrength, in.PeerCredibility, in.CustomerReadiness)
		if err != nil {
			t.Errorf("GospelValue(%v, %v, %v) failed: %v",
				in.ParadoxStrength, in.PeerCredibility, in.CustomerReadiness, err)
			continue
		}
		if v < 0 || v > cfg.MaxGospel || math.IsNaN(v) {
			t.Errorf("Gospel value out of range: GospelValue(%v, %v, %v) = %.6f",
				in.ParadoxStrength, in.PeerCredibility, in.CustomerReadiness, v)
		}
		if v == cfg.MaxGospel {
			saturated++
		}
	}

	t.Logf("✓ Gospel clamp: %d inputs in [0, %.1f], %d saturated",
		len(inputs), cfg.MaxGospel, saturated)
}

// GospelGrid returns every triple on a regular grid over [lo, hi]³.
func GospelGrid(lo, hi float64, steps int) []GospelInput {
	if steps < 1 {
		steps = 1
	}

	axis := make([]float64, steps+1)
	for i := range axis {
		axis[i] = lo + (hi-lo)*float64(i)/float64(steps)
	}

	grid := make([]GospelInput, 0, len(axis)*len(axis)*len(axis))
	for _, p := range axis {
		for _, c := range axis {
			for _, r := range axis {
				grid = append(grid, GospelInput{p, c, r})
			}
		}
	}
	return grid
}
