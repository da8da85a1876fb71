package innovation

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Scenario is a named set of inputs for both scores.
type Scenario struct {
	Name                 string  `yaml:"name"`
	ConstraintComplexity float64 `yaml:"constraint_complexity"`
	ParadoxStrength      float64 `yaml:"paradox_strength"`
	PeerCredibility      float64 `yaml:"peer_credibility"`
	CustomerReadiness    float64 `yaml:"customer_readiness"`
}

// ScenarioFile is the on-disk layout read by LoadScenarios.
//
//	scenarios:
//	  - name: spray-on dress
//	    constraint_complexity: 3   # mass producible + unique + luxury
//	    paradox_strength: 0.8
//	    peer_credibility: 0.9
//	    customer_readiness: 0.7
type ScenarioFile struct {
	Scenarios []Scenario `yaml:"scenarios"`
}

// Assessment is the result of evaluating one scenario.
type Assessment struct {
	Scenario Scenario
	Success  float64
	Region   Region
	Gospel   GospelBreakdown
}

// DefaultScenarios returns the reference analysis: a spray-on dress that is
// mass producible, unique and luxury at once (complexity 3).
func DefaultScenarios() []Scenario {
	return []Scenario{
		{
			Name:                 "spray-on dress",
			ConstraintComplexity: 3,
			ParadoxStrength:      0.8,
			PeerCredibility:      0.9,
			CustomerReadiness:    0.7,
		},
	}
}

// LoadScenarios reads a YAML scenario file.
func LoadScenarios(path string) ([]Scenario, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	scenarios, err := DecodeScenarios(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return scenarios, nil
}

// DecodeScenarios parses scenarios from r. Unknown keys are rejected.
func DecodeScenarios(r io.Reader) ([]Scenario, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var file ScenarioFile
	if err := dec.Decode(&file); err != nil {
		if err == io.EOF {
			return nil, ErrNoScenarios
		}
		return nil, err
	}
	if len(file.Scenarios) == 0 {
		return nil, ErrNoScenarios
	}

	for i := range file.Scenarios {
		if file.Scenarios[i].Name == "" {
			file.Scenarios[i].Name = fmt.Sprintf("scenario-%d", i+1)
		}
	}
	return file.Scenarios, nil
}

// Evaluate scores a scenario with both formulas.
func Evaluate(s Scenario) (Assessment, error) {
	gospel, err := Gospel(s.ParadoxStrength, s.PeerCredibility, s.CustomerReadiness)
	if err != nil {
		return Assessment{}, fmt.Errorf("scenario %q: %w", s.Name, err)
	}

	return Assessment{
		Scenario: s,
		Success:  SuccessCurve(s.ConstraintComplexity),
		Region:   ClassifyComplexity(s.ConstraintComplexity),
		Gospel:   gospel,
	}, nil
}

// EvaluateAll evaluates every scenario, stopping at the first error.
func EvaluateAll(scenarios []Scenario) ([]Assessment, error) {
	if len(scenarios) == 0 {
		return nil, ErrNoScenarios
	}

	out := make([]Assessment, 0, len(scenarios))
	for _, s := range scenarios {
		a, err := Evaluate(s)
		if err != nil {
			return out, err
		}
		out = append(out, a)
	}
	return out, nil
}
