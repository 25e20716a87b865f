// Command dancetrace runs a built-in formation headless and writes a YAML
// trace of where every dancer was.
//
// Usage:
//
//	dancetrace run --scenario circle --duration 4s --step 16ms --every 10
//	dancetrace scenarios
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type options struct {
	verbose  bool
	scenario string
	duration time.Duration
	step     time.Duration
	every    int
}

func newRootCmd() *cobra.Command {
	var opts options
	var logger *zap.Logger

	root := &cobra.Command{
		Use:           "dancetrace",
		Short:         "Trace dancevis formations headless",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			config := zap.NewProductionConfig()
			if opts.verbose {
				config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			var err error
			logger, err = config.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
	}
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Enable debug logging of ticks and lifecycle events")

	run := &cobra.Command{
		Use:   "run",
		Short: "Run a scenario and print its trace",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTrace(cmd.OutOrStdout(), opts, logger)
		},
	}
	run.Flags().StringVarP(&opts.scenario, "scenario", "s", "circle", "Scenario to run (see 'dancetrace scenarios')")
	run.Flags().DurationVar(&opts.duration, "duration", 4*time.Second, "Simulated time to run for")
	run.Flags().DurationVar(&opts.step, "step", 16*time.Millisecond, "Simulated time between ticks")
	run.Flags().IntVar(&opts.every, "every", 10, "Record every Nth tick")

	list := &cobra.Command{
		Use:   "scenarios",
		Short: "List built-in scenarios",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			for _, name := range scenarioNames() {
				fmt.Fprintf(out, "%-8s %s\n", name, scenarios[name].summary)
			}
		},
	}

	root.AddCommand(run, list)
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
