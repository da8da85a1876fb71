package cmd

import (
	"github.com/spf13/cobra"

	"github.com/alexshd/innovation"
)

func newScenariosCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "scenarios [file.yaml]",
		Short: "Evaluate scenarios from a YAML file (defaults to the reference scenario)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			scenarios := innovation.DefaultScenarios()
			if len(args) == 1 {
				loaded, err := innovation.LoadScenarios(args[0])
				if err != nil {
					return err
				}
				scenarios = loaded
				logger.Info("Scenarios loaded", "path", args[0], "count", len(scenarios))
			}

			assessments, err := innovation.EvaluateAll(scenarios)
			w := cmd.OutOrStdout()
			printHeader(w, "Innovation Science Calculator")
			for _, a := range assessments {
				printAssessment(w, a)
			}
			return err
		},
	}
}
