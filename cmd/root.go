package cmd

import (
	"io"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"
)

var (
	verbose bool
	noColor bool

	logger = newLogger(os.Stderr, slog.LevelInfo, false)
)

func newLogger(w io.Writer, level slog.Level, plain bool) *slog.Logger {
	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: "15:04:05",
		NoColor:    plain,
	}))
}

// NewRootCommand builds the command tree. With no subcommand it runs the demo.
func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "innovation",
		Short:         "innovation - calculator for breakthrough innovation viability",
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelInfo
			if verbose {
				level = slog.LevelDebug
			}
			if noColor {
				color.NoColor = true
			}
			logger = newLogger(cmd.ErrOrStderr(), level, noColor)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(cmd.OutOrStdout())
		},
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	root.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable coloured output")

	root.AddCommand(newDemoCmd())
	root.AddCommand(newCurveCmd())
	root.AddCommand(newGospelCmd())
	root.AddCommand(newSweepCmd())
	root.AddCommand(newScenariosCmd())

	return root
}

func Execute() error {
	return execute(NewRootCommand())
}

func execute(root *cobra.Command) error {
	err := root.Execute()
	if err != nil {
		logger.Error("Command failed", "error", err)
	}
	return err
}
