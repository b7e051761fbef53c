package main

import (
	"errors"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/arloliu/solvemon"
	"github.com/arloliu/solvemon/errs"
	"github.com/arloliu/solvemon/format"
	"github.com/arloliu/solvemon/logfile"
	"github.com/arloliu/solvemon/render"
)

// defaultLogFile matches the producer's conventional output name.
const defaultLogFile = "metrics.bin"

var (
	// CLI flags; the producer's build configuration cannot be discovered from
	// the log, so workers and schema must be supplied when they differ from
	// the defaults.
	workers     int    // Worker count the producer was built with
	schemaName  string // Record layout variant: base or extended
	compression string // Log compression: auto, none, zstd, s2, lz4
	logLevel    string // Log verbosity level
	plot        bool   // Draw rate histograms after the summary
)

// rootCmd decodes one metrics log and prints the analysis.
var rootCmd = &cobra.Command{
	Use:   "solvemon [metrics.bin]",
	Short: "Decode and summarize work-stealing solver telemetry logs",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)

		path := defaultLogFile
		if len(args) == 1 {
			path = args[0]
		}

		variant, err := format.ParseSchemaVariant(schemaName)
		if err != nil {
			return err
		}

		codec, err := format.ParseCompression(compression)
		if err != nil {
			return err
		}

		metrics, err := solvemon.Analyze(path,
			logfile.WithMaxWorkers(workers),
			logfile.WithSchemaVariant(variant),
			logfile.WithCompression(codec),
		)
		switch {
		case errors.Is(err, errs.ErrFileNotFound):
			// Nothing to show; not a program failure.
			logrus.Warnf("Metrics log %q not found", path)
			return nil
		case errors.Is(err, errs.ErrEmptyDataset):
			logrus.Warn("No valid data found")
			return nil
		case err != nil:
			return err
		}

		if err := render.Summary(os.Stdout, metrics); err != nil {
			return err
		}

		if plot {
			return render.Histograms(os.Stdout, metrics)
		}

		return nil
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.Flags().IntVarP(&workers, "workers", "w", logfile.DefaultMaxWorkers, "worker count the producer was built with")
	rootCmd.Flags().StringVar(&schemaName, "schema", "extended", "record layout variant: base or extended")
	rootCmd.Flags().StringVar(&compression, "compression", "auto", "log compression: auto, none, zstd, s2, lz4")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "info", "log verbosity level")
	rootCmd.Flags().BoolVar(&plot, "plot", true, "draw rate histograms after the summary")
}
