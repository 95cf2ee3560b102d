package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"circleprogress/internal/animator"
	"circleprogress/internal/collector"
	"circleprogress/internal/config"
	"circleprogress/internal/engine"
	"circleprogress/internal/output"
	"circleprogress/internal/ring"
	"circleprogress/ui/console"
	"circleprogress/ui/tui"
	"circleprogress/ui/tui/components"

	"github.com/spf13/cobra"
)

var (
	configPath string
	logPath    string

	settings config.Settings
	logger   *slog.Logger
	logFile  *os.File

	// demo / watch
	gridWidth    int
	gridHeight   int
	easingName   string
	duration     time.Duration
	pollInterval time.Duration

	// snapshot
	snapProgress float64
	snapCols     int
	snapRows     int
	snapSource   string
)

var rootCmd = &cobra.Command{
	Use:           "circleprogress",
	Short:         "A circular progress ring for the terminal",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logger = slog.New(slog.DiscardHandler)
		if logPath != "" {
			f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
			if err != nil {
				return fmt.Errorf("open log file: %w", err)
			}
			logFile = f
			logger = slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
		}

		s, err := config.Load(configPath)
		if err != nil {
			return err
		}
		settings = s
		logger.Debug("configuration loaded", "path", configPath, "command", cmd.Name())
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logFile != nil {
			logFile.Close()
			logFile = nil
		}
	},
}

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Drive the ring from the keyboard or a live sensor",
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := tuiOptions()
		if err != nil {
			return err
		}
		return tui.Start(opts)
	},
}

var watchCmd = &cobra.Command{
	Use:       "watch <cpu|mem|disk>",
	Short:     "Animate the ring to each new sensor reading",
	Args:      cobra.ExactArgs(1),
	ValidArgs: collector.Sources(),
	RunE: func(cmd *cobra.Command, args []string) error {
		if pollInterval > 0 {
			settings.Collector = settings.Collector.WithPollInterval(pollInterval)
		}
		// Fail before the screen switches if the source is unknown.
		if _, err := collector.NewProvider(args[0], settings.Collector); err != nil {
			return err
		}

		opts, err := tuiOptions()
		if err != nil {
			return err
		}
		opts.Source = args[0]
		return tui.Start(opts)
	},
}

var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Print a single frame of the ring",
	RunE: func(cmd *cobra.Command, args []string) error {
		progress := snapProgress
		var reading *output.Reading

		if snapSource != "" {
			p, err := collector.NewProvider(snapSource, settings.Collector)
			if err != nil {
				return err
			}
			defer p.Close(cmd.Context())

			sample, err := p.Sample(cmd.Context())
			if err != nil {
				return err
			}
			progress = sample.Percent
			reading = &output.Reading{Sample: sample, Result: engine.Evaluate(sample, settings.Thresholds)}
		}

		w := components.NewCircleProgress(
			components.WithStyle(settings.Style),
			components.WithGrid(snapCols, snapRows),
			components.WithLogger(logger),
		)
		w.SetProgress(progress)

		size := w.Measure(ring.Constraints{
			Width:  ring.Dimension{Mode: ring.Unspecified},
			Height: ring.Dimension{Mode: ring.Unspecified},
		})
		tm := components.NewTermSurface(snapCols, snapRows, size).Measurer()
		report := output.BuildReport(progress, w.Commands(size.Width, size.Height, tm), w.Style(), reading)

		console.Print(cmd.OutOrStdout(), w.View(), report)
		return nil
	},
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default configuration file",
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := config.Default().Marshal()
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	},
}

// tuiOptions merges the loaded settings with command-line overrides.
func tuiOptions() (tui.Options, error) {
	opts := tui.DefaultOptions()
	opts.Style = settings.Style
	opts.Collector = settings.Collector
	opts.Thresholds = settings.Thresholds
	opts.Duration = settings.Duration
	opts.Easing = settings.Easing
	opts.Logger = logger

	col := settings.Collector
	opts.Providers = func(source string) (collector.Provider, error) {
		return collector.NewProvider(source, col)
	}

	if easingName != "" {
		e, err := animator.EasingByName(easingName)
		if err != nil {
			return tui.Options{}, err
		}
		opts.Easing = e
	}
	if duration > 0 {
		opts.Duration = duration
	}
	if gridWidth > 0 && gridHeight > 0 {
		opts.Cols, opts.Rows = gridWidth, gridHeight
	}
	return opts, nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "YAML file overriding style, animation, sensor and threshold defaults")
	rootCmd.PersistentFlags().StringVar(&logPath, "log-file", "", "Write debug logs to this file (the terminal belongs to the UI)")

	for _, c := range []*cobra.Command{demoCmd, watchCmd} {
		c.Flags().IntVar(&gridWidth, "width", 0, "Ring width in cells (0 follows the window)")
		c.Flags().IntVar(&gridHeight, "height", 0, "Ring height in cells (0 follows the window)")
		c.Flags().StringVar(&easingName, "easing", "", "Easing curve: linear, accelerate, decelerate, accelerate-decelerate or spring")
		c.Flags().DurationVar(&duration, "duration", 0, "Length of each animated transition")
	}
	watchCmd.Flags().DurationVar(&pollInterval, "interval", 0, "Time between sensor readings")

	snapshotCmd.Flags().Float64Var(&snapProgress, "progress", 0, "Progress value to draw (any number is accepted)")
	snapshotCmd.Flags().IntVar(&snapCols, "cols", components.DefaultCols, "Frame width in cells")
	snapshotCmd.Flags().IntVar(&snapRows, "rows", components.DefaultRows, "Frame height in cells")
	snapshotCmd.Flags().StringVar(&snapSource, "source", "", "Draw a live reading from cpu, mem or disk instead of --progress")

	rootCmd.AddCommand(demoCmd, watchCmd, snapshotCmd, configCmd)
}
