package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"popsim/internal/app"
	"popsim/internal/sims/biome"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	cfg     = app.NewConfig()
	verbose bool
	logger  zerolog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "popsim",
	Short: "Grid terrain and population simulation",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := zerolog.InfoLevel
		if verbose {
			level = zerolog.DebugLevel
		}
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
			Level(level).With().Timestamp().Logger()
	},
	SilenceUsage: true,
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Open a window and run the simulation",
	RunE: func(cmd *cobra.Command, args []string) error {
		world, err := buildWorld()
		if err != nil {
			return err
		}
		return runGUI(world)
	},
}

var (
	headlessTicks int
	headlessEvery int
	headlessTPS   int
)

var headlessCmd = &cobra.Command{
	Use:   "headless",
	Short: "Run the simulation without a window and log statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		world, err := buildWorld()
		if err != nil {
			return err
		}
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		h := app.NewHeadless(world, cfg.HistoryLen, logger)
		h.Every = headlessEvery
		h.TPS = headlessTPS
		if _, err := h.Run(ctx, headlessTicks); err != nil && ctx.Err() == nil {
			return fmt.Errorf("headless: %w", err)
		}
		return nil
	},
}

var (
	sweepParam   string
	sweepValues  string
	sweepTicks   int
	sweepTrials  int
	sweepWorkers int
)

var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Compare final populations across values of one rule parameter",
	RunE: func(cmd *cobra.Command, args []string) error {
		base, err := cfg.SimConfig()
		if err != nil {
			return err
		}
		values, err := parseValues(sweepValues)
		if err != nil {
			return err
		}
		start := time.Now()
		records, err := biome.Sweep(base, sweepParam, values, sweepTicks, sweepTrials, sweepWorkers)
		if err != nil {
			return err
		}
		logger.Info().
			Str("param", sweepParam).
			Int("values", len(values)).
			Int("trials", sweepTrials).
			Dur("elapsed", time.Since(start)).
			Msg("sweep complete")
		printSweep(cmd, records)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	cfg.Bind(rootCmd.PersistentFlags())
	cfg.BindView(runCmd.Flags())

	headlessCmd.Flags().IntVar(&headlessTicks, "ticks", 1000, "ticks to simulate")
	headlessCmd.Flags().IntVar(&headlessEvery, "every", 100, "log statistics every N ticks (0 for summary only)")
	headlessCmd.Flags().IntVar(&headlessTPS, "tps", 0, "pace the run at N ticks per second (0 is unpaced)")

	sweepCmd.Flags().StringVar(&sweepParam, "param", "migration_chance", "float parameter to vary")
	sweepCmd.Flags().StringVar(&sweepValues, "values", "0.001,0.005,0.01", "comma separated values to try")
	sweepCmd.Flags().IntVar(&sweepTicks, "ticks", 2000, "ticks per trial")
	sweepCmd.Flags().IntVar(&sweepTrials, "trials", 4, "seeds per value")
	sweepCmd.Flags().IntVar(&sweepWorkers, "workers", runtime.NumCPU(), "parallel trials")

	rootCmd.AddCommand(runCmd, headlessCmd, sweepCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func buildWorld() (*biome.World, error) {
	simCfg, err := cfg.SimConfig()
	if err != nil {
		return nil, err
	}
	return biome.NewWithConfig(simCfg), nil
}

func parseValues(s string) ([]float64, error) {
	var values []float64
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		v, err := strconv.ParseFloat(part, 64)
		if err != nil {
			return nil, fmt.Errorf("sweep: bad value %q: %w", part, err)
		}
		values = append(values, v)
	}
	if len(values) == 0 {
		return nil, fmt.Errorf("sweep: no values given")
	}
	return values, nil
}

func printSweep(cmd *cobra.Command, records []biome.SweepRecord) {
	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "rank\tvalue\tmean final\tmean peak\textinct")
	for i, rec := range records {
		fmt.Fprintf(tw, "%d\t%g\t%.0f\t%.0f\t%d/%d\n", i+1, rec.Value, rec.MeanFinal, rec.MeanPeak, rec.Extinctions, len(rec.Runs))
	}
	tw.Flush()
}
