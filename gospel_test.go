package innovation

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGospelValue_ReferenceExample(t *testing.T) {
	got, err := GospelValue(0.8, 0.9, 0.7)
	require.NoError(t, err)

	want := math.Min(1.0, math.Pow(0.8, 1.5)*math.Pow(0.9, 2)*math.Pow(0.7, 0.5))
	assert.InDelta(t, want, got, 1e-12)
	assert.InDelta(t, 0.4849, got, 1e-4)

	t.Logf("✓ GospelValue(0.8, 0.9, 0.7) = %.4f", got)
}

func TestGospelValue_SaturatesAtOne(t *testing.T) {
	got, err := GospelValue(1.0, 1.0, 1.0)
	require.NoError(t, err)
	assert.Equal(t, 1.0, got)

	b, err := Gospel(2.0, 1.5, 4.0)
	require.NoError(t, err)
	assert.Equal(t, 1.0, b.Value)
	assert.True(t, b.Saturated)
	assert.Greater(t, b.Raw, 1.0)
}

func TestGospelValue_ZeroFactor(t *testing.T) {
	for _, in := range [][3]float64{{0, 1, 1}, {1, 0, 1}, {1, 1, 0}} {
		got, err := GospelValue(in[0], in[1], in[2])
		require.NoError(t, err)
		assert.Equal(t, 0.0, got, "GospelValue%v", in)
	}
}

func TestGospelValue_InfiniteInputSaturates(t *testing.T) {
	got, err := GospelValue(math.Inf(1), 0.5, 0.5)
	require.NoError(t, err)
	assert.Equal(t, 1.0, got)
}

func TestGospelValue_NegativeCredibilityIsSquared(t *testing.T) {
	pos, err := GospelValue(0.6, 0.7, 0.5)
	require.NoError(t, err)
	neg, err := GospelValue(0.6, -0.7, 0.5)
	require.NoError(t, err)

	assert.Equal(t, pos, neg)
	assert.GreaterOrEqual(t, neg, 0.0)
}

func TestGospelValue_DomainErrors(t *testing.T) {
	tests := []struct {
		name    string
		p, c, r float64
	}{
		{"negative paradox strength", -0.1, 0.5, 0.5},
		{"negative customer readiness", 0.5, 0.5, -0.1},
		{"both negative", -1, 1, -1},
		{"NaN paradox strength", math.NaN(), 0.5, 0.5},
		{"NaN peer credibility", 0.5, math.NaN(), 0.5},
		{"infinite paradox times zero credibility", math.Inf(1), 0, 1},
		{"infinite credibility times zero readiness", 0.5, math.Inf(-1), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GospelValue(tt.p, tt.c, tt.r)
			assert.ErrorIs(t, err, ErrDomain)
		})
	}
}

func TestGospel_Breakdown(t *testing.T) {
	b, err := Gospel(0.25, 0.5, 0.81)
	require.NoError(t, err)

	assert.InDelta(t, 0.125, b.MiracleImpact, 1e-12)
	assert.InDelta(t, 0.25, b.GospelCredibility, 1e-12)
	assert.InDelta(t, 0.9, b.AdoptionRate, 1e-12)
	assert.InDelta(t, 0.028125, b.Raw, 1e-12)
	assert.Equal(t, b.Raw, b.Value)
	assert.False(t, b.Saturated)
}

// TestGospelValue_ClampInvariant covers [0, 1]³ and inputs well past 1.
func TestGospelValue_ClampInvariant(t *testing.T) {
	cfg := DefaultAssertionConfig()

	AssertGospelClamped(t, GospelGrid(0, 1, 10), cfg)
	AssertGospelClamped(t, GospelGrid(0, 3, 6), cfg)
}

func TestGospelGrid(t *testing.T) {
	grid := GospelGrid(0, 1, 2)
	require.Len(t, grid, 27)
	assert.Equal(t, GospelInput{0, 0, 0}, grid[0])
	assert.Equal(t, GospelInput{1, 1, 1}, grid[26])

	assert.Len(t, GospelGrid(0, 1, 0), 8)
}
