package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexshd/innovation"
)

func newCurveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "curve <complexity>...",
		Short: "Evaluate the success curve for one or more constraint complexities",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := parseFloats(args)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			for _, c := range values {
				score := innovation.SuccessCurve(c)
				region := innovation.ClassifyComplexity(c)
				logger.Debug("Success curve evaluated", "complexity", c, "region", region.String(), "score", score)
				fmt.Fprintf(w, "%8.3f  %-12s  %.4f\n", c, regionLabel(region), score)
			}
			return nil
		},
	}
}
