package cmd

import (
	"fmt"
	"io"
	"strconv"

	"github.com/fatih/color"

	"github.com/alexshd/innovation"
)

var (
	headerStyle   = color.New(color.FgCyan, color.Bold)
	optimalStyle  = color.New(color.FgGreen, color.Bold)
	underfitStyle = color.New(color.FgHiYellow)
	overfitStyle  = color.New(color.FgRed)
	jumpStyle     = color.New(color.FgMagenta, color.Bold)
)

func regionLabel(r innovation.Region) string {
	switch r {
	case innovation.RegionOptimal:
		return optimalStyle.Sprint(r.String())
	case innovation.RegionUnderfitting:
		return underfitStyle.Sprint(r.String())
	case innovation.RegionOverfitting:
		return overfitStyle.Sprint(r.String())
	default:
		return r.String()
	}
}

func printHeader(w io.Writer, title string) {
	fmt.Fprintln(w, headerStyle.Sprint(title))
	fmt.Fprintln(w, "========================================")
}

func printAssessment(w io.Writer, a innovation.Assessment) {
	fmt.Fprintf(w, "%s\n", headerStyle.Sprint(a.Scenario.Name))
	fmt.Fprintf(w, "  constraint complexity: %.2f (%s)\n", a.Scenario.ConstraintComplexity, regionLabel(a.Region))
	fmt.Fprintf(w, "  success probability:   %.2f\n", a.Success)
	fmt.Fprintf(w, "  miracle impact:        %.4f\n", a.Gospel.MiracleImpact)
	fmt.Fprintf(w, "  gospel credibility:    %.4f\n", a.Gospel.GospelCredibility)
	fmt.Fprintf(w, "  adoption rate:         %.4f\n", a.Gospel.AdoptionRate)
	fmt.Fprintf(w, "  gospel value:          %.2f", a.Gospel.Value)
	if a.Gospel.Saturated {
		fmt.Fprint(w, " (saturated)")
	}
	fmt.Fprintln(w)
}

func parseFloats(args []string) ([]float64, error) {
	out := make([]float64, 0, len(args))
	for _, a := range args {
		v, err := strconv.ParseFloat(a, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid number %q: %w", a, err)
		}
		out = append(out, v)
	}
	return out, nil
}
