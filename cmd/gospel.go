package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexshd/innovation"
)

func newGospelCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "gospel <paradox-strength> <peer-credibility> <customer-readiness>",
		Short: "Compute the gospel propagation value",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := parseFloats(args)
			if err != nil {
				return err
			}

			b, err := innovation.Gospel(v[0], v[1], v[2])
			if err != nil {
				return err
			}
			logger.Debug("Gospel value evaluated",
				"miracle_impact", b.MiracleImpact,
				"gospel_credibility", b.GospelCredibility,
				"adoption_rate", b.AdoptionRate,
				"raw", b.Raw)
			if b.Saturated {
				logger.Warn("Gospel value saturated", "raw", b.Raw, "clamped", b.Value)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Innovation gospel value: %.2f\n", b.Value)
			return nil
		},
	}
}
