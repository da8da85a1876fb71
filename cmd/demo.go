package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/alexshd/innovation"
)

func newDemoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Print the reference spray-on dress analysis",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(cmd.OutOrStdout())
		},
	}
}

func runDemo(w io.Writer) error {
	s := innovation.DefaultScenarios()[0]

	fmt.Fprintln(w, "Innovation Science Calculator")
	fmt.Fprintln(w, "========================================")

	success := innovation.SuccessCurve(s.ConstraintComplexity)
	logger.Debug("Success curve evaluated",
		"complexity", s.ConstraintComplexity,
		"region", innovation.ClassifyComplexity(s.ConstraintComplexity).String(),
		"score", success)
	fmt.Fprintf(w, "Spray-on dress constraint optimization: %.2f\n", success)

	gospel, err := innovation.GospelValue(s.ParadoxStrength, s.PeerCredibility, s.CustomerReadiness)
	if err != nil {
		return err
	}
	logger.Debug("Gospel value evaluated", "value", gospel)
	fmt.Fprintf(w, "Innovation gospel value: %.2f\n", gospel)

	return nil
}
