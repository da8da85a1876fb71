package innovation

import (
	"fmt"
	"math"
)

// ScoreFunction maps a single complexity value to a score.
// SuccessCurve is the canonical example.
type ScoreFunction func(c float64) float64

// CurvePoint is one sample of a swept score function.
type CurvePoint struct {
	Complexity float64
	Score      float64
	Region     Region
}

// Discontinuity records a jump of a score function at a region boundary.
type Discontinuity struct {
	At    float64 // boundary location
	Left  float64 // f(At - Epsilon)
	Value float64 // f(At)
	Right float64 // f(At + Epsilon)
	Jump  float64 // largest one-sided jump
}

// SweepConfig controls curve sampling and boundary analysis.
type SweepConfig struct {
	Min       float64 // first complexity sampled
	Max       float64 // last complexity sampled (inclusive when on the grid)
	Step      float64 // sampling interval
	Epsilon   float64 // offset used for one-sided limits at boundaries
	Tolerance float64 // jumps at or below this are treated as continuous

	// Upper bound on the number of samples; zero means DefaultMaxSamples
	MaxSamples int
}

// DefaultMaxSamples caps a sweep at one million points.
const DefaultMaxSamples = 1_000_000

// DefaultSweepConfig covers the semantically meaningful range [0, 8].
func DefaultSweepConfig() SweepConfig {
	return SweepConfig{
		Min:        0.0,
		Max:        8.0,
		Step:       0.05,
		Epsilon:    1e-9,
		Tolerance:  1e-6,
		MaxSamples: DefaultMaxSamples,
	}
}

// samples validates cfg and returns how many points the sweep takes.
func (cfg SweepConfig) samples() (int, error) {
	if !(cfg.Step > 0) {
		return 0, fmt.Errorf("%w: step %v must be positive", ErrBadSweep, cfg.Step)
	}
	if math.IsNaN(cfg.Min) || math.IsNaN(cfg.Max) || cfg.Max < cfg.Min {
		return 0, fmt.Errorf("%w: max %v below min %v", ErrBadSweep, cfg.Max, cfg.Min)
	}
	if math.IsInf(cfg.Min, 0) || math.IsInf(cfg.Max, 0) {
		return 0, fmt.Errorf("%w: range [%v, %v] is unbounded", ErrBadSweep, cfg.Min, cfg.Max)
	}

	limit := cfg.MaxSamples
	if limit <= 0 {
		limit = DefaultMaxSamples
	}

	// Counted in float64 first: a tiny step or a huge range overflows int.
	count := math.Floor((cfg.Max-cfg.Min)/cfg.Step+1e-9) + 1
	if math.IsInf(count, 0) || math.IsNaN(count) || count > float64(limit) {
		return 0, fmt.Errorf("%w: [%v, %v] at step %v needs %v samples (max %d)",
			ErrBadSweep, cfg.Min, cfg.Max, cfg.Step, count, limit)
	}
	return int(count), nil
}

// Sweep samples f across [cfg.Min, cfg.Max].
// Points are computed as Min + i·Step so rounding does not accumulate.
func Sweep(f ScoreFunction, cfg SweepConfig) ([]CurvePoint, error) {
	n, err := cfg.samples()
	if err != nil {
		return nil, err
	}

	points := make([]CurvePoint, 0, n)

	for i := 0; i < n; i++ {
		c := cfg.Min + float64(i)*cfg.Step
		points = append(points, CurvePoint{
			Complexity: c,
			Score:      f(c),
			Region:     ClassifyComplexity(c),
		})
	}

	return points, nil
}

// SweepCurve samples SuccessCurve.
func SweepCurve(cfg SweepConfig) ([]CurvePoint, error) {
	return Sweep(SuccessCurve, cfg)
}

// FindDiscontinuities compares f at each boundary against its one-sided
// neighbours and reports the boundaries where the jump exceeds cfg.Tolerance.
func FindDiscontinuities(f ScoreFunction, cfg SweepConfig, boundaries ...float64) []Discontinuity {
	var found []Discontinuity

	for _, b := range boundaries {
		d := Discontinuity{
			At:    b,
			Left:  f(b - cfg.Epsilon),
			Value: f(b),
			Right: f(b + cfg.Epsilon),
		}
		d.Jump = math.Max(math.Abs(d.Value-d.Left), math.Abs(d.Right-d.Value))

		if d.Jump > cfg.Tolerance {
			found = append(found, d)
		}
	}

	return found
}

// CurveDiscontinuities reports the jumps of SuccessCurve at both region boundaries.
func CurveDiscontinuities(cfg SweepConfig) []Discontinuity {
	return FindDiscontinuities(SuccessCurve, cfg, UnderfitBoundary, OverfitBoundary)
}

// BestComplexity returns the highest-scoring point. Ties keep the earliest
// sample. ok is false for an empty slice.
func BestComplexity(points []CurvePoint) (best CurvePoint, ok bool) {
	for i, p := range points {
		if i == 0 || p.Score > best.Score {
			best = p
			ok = true
		}
	}
	return best, ok
}

// RegionSpan counts the samples falling in each region.
func RegionSpan(points []CurvePoint) map[Region]int {
	span := make(map[Region]int, 3)
	for _, p := range points {
		span[p.Region]++
	}
	return span
}
