package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/philipparndt/gocurves/internal/logging"
	"github.com/philipparndt/gocurves/pkg/analysis"
	"github.com/philipparndt/gocurves/pkg/config"
	"github.com/philipparndt/gocurves/pkg/curves"
	"github.com/philipparndt/gocurves/pkg/report"
)

var (
	runConfigPath string
	runFlags      = config.Default()
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Generate curves, print their evaluation and the circle radius sum",
	Long: `Generate a random population of curves, print the point and first
derivative of every curve at t, then the circles sorted by radius and the
sum of their radii.

Settings come from the defaults, then the --config file, then flags given
on the command line.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := resolveConfig(cmd, runConfigPath)
		if err != nil {
			return err
		}
		return runPipeline(cmd.OutOrStdout(), cfg)
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVarP(&runConfigPath, "config", "c", "", "YAML config file")
	addPipelineFlags(runCmd)
}

// addPipelineFlags binds the pipeline settings to cmd's flags.
func addPipelineFlags(cmd *cobra.Command) {
	def := config.Default()
	cmd.Flags().IntVarP(&runFlags.Count, "count", "n", def.Count, "Number of curves to generate (at least 3)")
	cmd.Flags().Float64Var(&runFlags.T, "t", def.T, "Curve parameter to evaluate at")
	cmd.Flags().Uint64Var(&runFlags.Seed, "seed", def.Seed, "Random seed (0 seeds from OS entropy)")
	cmd.Flags().Float64Var(&runFlags.Min, "min", def.Min, "Lower bound of random shape parameters")
	cmd.Flags().Float64Var(&runFlags.Max, "max", def.Max, "Upper bound of random shape parameters")
	cmd.Flags().BoolVarP(&runFlags.Parallel, "parallel", "p", def.Parallel, "Sum radii with the parallel reducer")
	cmd.Flags().IntVar(&runFlags.Threshold, "threshold", def.Threshold, "Largest range the parallel reducer sums without splitting")
	cmd.Flags().IntVar(&runFlags.Workers, "workers", def.Workers, "Concurrent parallel reducer leaves (0 = GOMAXPROCS)")
	cmd.Flags().StringVarP(&runFlags.Format, "format", "f", def.Format, "Output format (plain, table, markdown)")
}

// resolveConfig layers explicitly set flags over the config file or defaults.
func resolveConfig(cmd *cobra.Command, path string) (config.Config, error) {
	cfg := config.Default()
	if path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return config.Config{}, err
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("count") {
		cfg.Count = runFlags.Count
	}
	if flags.Changed("t") {
		cfg.T = runFlags.T
	}
	if flags.Changed("seed") {
		cfg.Seed = runFlags.Seed
	}
	if flags.Changed("min") {
		cfg.Min = runFlags.Min
	}
	if flags.Changed("max") {
		cfg.Max = runFlags.Max
	}
	if flags.Changed("parallel") {
		cfg.Parallel = runFlags.Parallel
	}
	if flags.Changed("threshold") {
		cfg.Threshold = runFlags.Threshold
	}
	if flags.Changed("workers") {
		cfg.Workers = runFlags.Workers
	}
	if flags.Changed("format") {
		cfg.Format = runFlags.Format
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func newGenerator(cfg config.Config) (*curves.Generator, error) {
	rangeOpt := curves.WithRange(cfg.Min, cfg.Max)
	if cfg.Seed != 0 {
		return curves.NewSeededGenerator(cfg.Seed, rangeOpt)
	}
	return curves.NewEntropyGenerator(rangeOpt)
}

// runPipeline generates a population and writes the full report to w.
func runPipeline(w io.Writer, cfg config.Config) error {
	logger := logging.New("run")

	gen, err := newGenerator(cfg)
	if err != nil {
		return err
	}
	population, err := gen.Generate(cfg.Count)
	if err != nil {
		return fmt.Errorf("failed to generate curves: %w", err)
	}

	reducer := analysis.NewReducer(cfg.Parallel, cfg.Threshold, cfg.Workers)
	summary := analysis.Summarize(population, reducer)

	logger.Info("pipeline finished",
		"circles", summary.Counts[curves.KindCircle],
		"ellipses", summary.Counts[curves.KindEllipse],
		"helices", summary.Counts[curves.KindHelix],
		"parallel", cfg.Parallel)

	format := cfg.ReportFormat()
	if err := report.Write(w, format, "All curves", report.Evaluate(summary.Curves, cfg.T)); err != nil {
		return err
	}
	if err := report.Write(w, format, "Sorted circles", report.Evaluate(summary.Circles, cfg.T)); err != nil {
		return err
	}
	return report.WriteSum(w, summary.RadiusSum)
}
