package innovation

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSweep_DefaultRange(t *testing.T) {
	points, err := SweepCurve(DefaultSweepConfig())
	require.NoError(t, err)

	// [0, 8] at 0.05 → 161 samples
	require.Len(t, points, 161)
	assert.Equal(t, 0.0, points[0].Complexity)
	assert.InDelta(t, 8.0, points[len(points)-1].Complexity, 1e-9)

	span := RegionSpan(points)
	assert.Equal(t, len(points), span[RegionUnderfitting]+span[RegionOptimal]+span[RegionOverfitting])
	assert.Positive(t, span[RegionUnderfitting])
	assert.Positive(t, span[RegionOptimal])
	assert.Positive(t, span[RegionOverfitting])

	t.Logf("✓ Sweep: %d samples (underfitting %d, optimal %d, overfitting %d)",
		len(points), span[RegionUnderfitting], span[RegionOptimal], span[RegionOverfitting])
}

func TestSweep_SinglePoint(t *testing.T) {
	points, err := SweepCurve(SweepConfig{Min: 3.5, Max: 3.5, Step: 1})
	require.NoError(t, err)
	require.Len(t, points, 1)
	assert.Equal(t, PeakScore, points[0].Score)
	assert.Equal(t, RegionOptimal, points[0].Region)
}

func TestSweep_InvalidConfig(t *testing.T) {
	tests := []struct {
		name string
		cfg  SweepConfig
	}{
		{"zero step", SweepConfig{Min: 0, Max: 1, Step: 0}},
		{"negative step", SweepConfig{Min: 0, Max: 1, Step: -0.1}},
		{"NaN step", SweepConfig{Min: 0, Max: 1, Step: math.NaN()}},
		{"inverted range", SweepConfig{Min: 5, Max: 1, Step: 0.1}},
		{"NaN bound", SweepConfig{Min: math.NaN(), Max: 1, Step: 0.1}},
		{"infinite bound", SweepConfig{Min: 0, Max: math.Inf(1), Step: 0.1}},
		{"step too small for int", SweepConfig{Min: 0, Max: 8, Step: 1e-300}},
		{"range wider than float64", SweepConfig{Min: -1e308, Max: 1e308, Step: 1}},
		{"over default sample cap", SweepConfig{Min: 0, Max: 8, Step: 1e-9}},
		{"over explicit sample cap", SweepConfig{Min: 0, Max: 8, Step: 0.05, MaxSamples: 100}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := SweepCurve(tt.cfg)
			assert.ErrorIs(t, err, ErrBadSweep)
		})
	}
}

func TestSweep_SampleCapBoundary(t *testing.T) {
	// [0, 8] at 0.05 is exactly 161 samples.
	points, err := SweepCurve(SweepConfig{Min: 0, Max: 8, Step: 0.05, MaxSamples: 161})
	require.NoError(t, err)
	assert.Len(t, points, 161)

	_, err = SweepCurve(SweepConfig{Min: 0, Max: 8, Step: 0.05, MaxSamples: 160})
	assert.ErrorIs(t, err, ErrBadSweep)
}

func TestBestComplexity(t *testing.T) {
	points, err := SweepCurve(DefaultSweepConfig())
	require.NoError(t, err)

	best, ok := BestComplexity(points)
	require.True(t, ok)
	assert.InDelta(t, OptimalComplexity, best.Complexity, 1e-9)
	assert.InDelta(t, PeakScore, best.Score, 1e-12)

	_, ok = BestComplexity(nil)
	assert.False(t, ok)
}

func TestCurveDiscontinuities(t *testing.T) {
	jumps := CurveDiscontinuities(DefaultSweepConfig())
	require.Len(t, jumps, 2)

	left := jumps[0]
	assert.Equal(t, UnderfitBoundary, left.At)
	assert.InDelta(t, 0.3, left.Left, 1e-9)
	assert.InDelta(t, 0.675, left.Value, 1e-12)
	assert.InDelta(t, 0.375, left.Jump, 1e-9)

	right := jumps[1]
	assert.Equal(t, OverfitBoundary, right.At)
	assert.InDelta(t, 0.675, right.Value, 1e-12)
	assert.InDelta(t, 0.2, right.Right, 1e-9)
	assert.InDelta(t, 0.475, right.Jump, 1e-9)

	t.Logf("✓ Jump at c=%.0f: %.3f, at c=%.0f: %.3f", left.At, left.Jump, right.At, right.Jump)
}

func TestFindDiscontinuities_ContinuousFunction(t *testing.T) {
	linear := func(c float64) float64 { return c / 10 }

	jumps := FindDiscontinuities(linear, DefaultSweepConfig(), 1, 2, 3)
	assert.Empty(t, jumps)
}
