package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexshd/innovation"
)

func newSweepCmd() *cobra.Command {
	cfg := innovation.DefaultSweepConfig()
	var showPoints bool

	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Sample the success curve and report its peak and boundary jumps",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			points, err := innovation.SweepCurve(cfg)
			if err != nil {
				return err
			}
			logger.Debug("Curve swept", "min", cfg.Min, "max", cfg.Max, "step", cfg.Step, "samples", len(points))

			w := cmd.OutOrStdout()
			printHeader(w, "Success Curve Sweep")

			if showPoints {
				for _, p := range points {
					fmt.Fprintf(w, "%8.3f  %-12s  %.4f\n", p.Complexity, regionLabel(p.Region), p.Score)
				}
			}

			span := innovation.RegionSpan(points)
			fmt.Fprintf(w, "samples: %d (underfitting %d, optimal %d, overfitting %d)\n",
				len(points),
				span[innovation.RegionUnderfitting],
				span[innovation.RegionOptimal],
				span[innovation.RegionOverfitting])

			if best, ok := innovation.BestComplexity(points); ok {
				fmt.Fprintf(w, "peak: %.4f at complexity %.3f\n", best.Score, best.Complexity)
			}

			for _, d := range innovation.CurveDiscontinuities(cfg) {
				if d.At < cfg.Min || d.At > cfg.Max {
					continue
				}
				fmt.Fprintf(w, "%s at %.1f: %.4f | %.4f | %.4f (jump %.4f)\n",
					jumpStyle.Sprint("discontinuity"), d.At, d.Left, d.Value, d.Right, d.Jump)
			}
			return nil
		},
	}

	cmd.Flags().Float64Var(&cfg.Min, "min", cfg.Min, "First complexity sampled")
	cmd.Flags().Float64Var(&cfg.Max, "max", cfg.Max, "Last complexity sampled")
	cmd.Flags().Float64Var(&cfg.Step, "step", cfg.Step, "Sampling interval")
	cmd.Flags().IntVar(&cfg.MaxSamples, "max-samples", cfg.MaxSamples, "Largest number of samples allowed")
	cmd.Flags().BoolVar(&showPoints, "points", false, "Print every sample")

	return cmd
}
