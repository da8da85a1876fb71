package innovation

import (
	"fmt"
	"math"
)

// Exponents of the gospel propagation model.
const (
	MiracleExponent     = 1.5 // paradox strength → miracle impact
	CredibilityExponent = 2.0 // peer credibility → gospel credibility
	AdoptionExponent    = 0.5 // customer readiness → adoption rate
	MaxGospelValue      = 1.0
)

// GospelBreakdown holds each factor of the gospel value.
type GospelBreakdown struct {
	MiracleImpact     float64 // paradox_strength^1.5
	GospelCredibility float64 // peer_credibility^2
	AdoptionRate      float64 // customer_readiness^0.5
	Raw               float64 // product before clamping
	Value             float64 // min(1, Raw)
	Saturated         bool    // true if Raw exceeded MaxGospelValue
}

// Gospel computes the gospel propagation model and returns every factor.
//
// Paradox strength and customer readiness are raised to fractional powers,
// so a negative value for either is rejected with ErrDomain. Peer
// credibility is squared and accepts any sign. An infinite factor meeting a
// zero factor has no defined product and is rejected with ErrDomain too.
func Gospel(paradoxStrength, peerCredibility, customerReadiness float64) (GospelBreakdown, error) {
	if paradoxStrength < 0 || math.IsNaN(paradoxStrength) {
		return GospelBreakdown{}, fmt.Errorf("%w: paradox strength %v raised to %v",
			ErrDomain, paradoxStrength, MiracleExponent)
	}
	if customerReadiness < 0 || math.IsNaN(customerReadiness) {
		return GospelBreakdown{}, fmt.Errorf("%w: customer readiness %v raised to %v",
			ErrDomain, customerReadiness, AdoptionExponent)
	}
	if math.IsNaN(peerCredibility) {
		return GospelBreakdown{}, fmt.Errorf("%w: peer credibility is NaN", ErrDomain)
	}

	b := GospelBreakdown{
		MiracleImpact:     math.Pow(paradoxStrength, MiracleExponent),
		GospelCredibility: peerCredibility * peerCredibility,
		AdoptionRate:      math.Sqrt(customerReadiness),
	}
	b.Raw = b.MiracleImpact * b.GospelCredibility * b.AdoptionRate
	if math.IsNaN(b.Raw) {
		return GospelBreakdown{}, fmt.Errorf("%w: product of %v, %v and %v is undefined",
			ErrDomain, b.MiracleImpact, b.GospelCredibility, b.AdoptionRate)
	}
	b.Value = math.Min(MaxGospelValue, b.Raw)
	b.Saturated = b.Raw > MaxGospelValue

	return b, nil
}

// GospelValue scores the viral propagation likelihood of an innovation claim:
//
//	min(1, paradox^1.5 · credibility² · readiness^0.5)
//
// The result lies in [0, 1] whenever err is nil.
func GospelValue(paradoxStrength, peerCredibility, customerReadiness float64) (float64, error) {
	b, err := Gospel(paradoxStrength, peerCredibility, customerReadiness)
	if err != nil {
		return 0, err
	}
	return b.Value, nil
}
