package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/cobra"

	"github.com/hupe1980/openlist"
	"github.com/hupe1980/openlist/eval"
	"github.com/hupe1980/openlist/internal/gridworld"
	"github.com/hupe1980/openlist/prommetrics"
	"github.com/hupe1980/openlist/search"
)

type solveFlags struct {
	config        string
	width         int
	height        int
	density       float64
	gridSeed      int64
	seed          int64
	timeout       string
	maxExpansions int
	queueType     string
	kind          string
	render        bool
	metrics       bool
	logLevel      string
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "fractal",
		Short: "Greedy best-first search with fractal tie-breaking",
		Long: `fractal runs greedy best-first search over random grid worlds. Ties
among equally promising states are broken by a fractal or typed
tie-breaking open list.`,
		SilenceUsage: true,
	}
	rootCmd.AddCommand(newSolveCmd())
	return rootCmd
}

func newSolveCmd() *cobra.Command {
	var f solveFlags

	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Solve a generated grid world",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(f.config)
			if err != nil {
				return err
			}
			if err := f.apply(cmd, &cfg); err != nil {
				return err
			}
			if err := validateFileConfig(cfg); err != nil {
				return err
			}

			level, err := parseLevel(f.logLevel)
			if err != nil {
				return err
			}
			logger := openlist.NewLogger(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

			return runSolve(cmd.Context(), cmd.OutOrStdout(), cfg, logger, f.render, f.metrics)
		},
	}

	fl := cmd.Flags()
	fl.StringVar(&f.config, "config", "", "YAML configuration file")
	fl.IntVar(&f.width, "width", 0, "grid width")
	fl.IntVar(&f.height, "height", 0, "grid height")
	fl.Float64Var(&f.density, "density", 0, "probability of a blocked cell")
	fl.Int64Var(&f.gridSeed, "grid-seed", 0, "seed of the grid generator")
	fl.Int64Var(&f.seed, "seed", 0, "seed of the open list random source")
	fl.StringVar(&f.timeout, "timeout", "", "search time budget (e.g. 10s)")
	fl.IntVar(&f.maxExpansions, "max-expansions", 0, "expansion limit (0 = none)")
	fl.StringVar(&f.queueType, "queue-type", "", "bucket eviction policy: FIFO, LIFO or RANDOM")
	fl.StringVar(&f.kind, "kind", "", "open list kind: fractal or tiebreaking")
	fl.BoolVar(&f.render, "render", false, "print the grid with the plan")
	fl.BoolVar(&f.metrics, "metrics", false, "print open list metrics in Prometheus text format")
	fl.StringVar(&f.logLevel, "log-level", "warn", "log level: debug, info, warn or error")
	return cmd
}

// apply overrides cfg with the flags set on the command line.
func (f *solveFlags) apply(cmd *cobra.Command, cfg *fileConfig) error {
	fl := cmd.Flags()
	if fl.Changed("width") {
		cfg.Grid.Width = f.width
	}
	if fl.Changed("height") {
		cfg.Grid.Height = f.height
	}
	if fl.Changed("density") {
		cfg.Grid.Density = f.density
	}
	if fl.Changed("grid-seed") {
		cfg.Grid.Seed = f.gridSeed
	}
	if fl.Changed("seed") {
		cfg.Search.Seed = f.seed
	}
	if fl.Changed("max-expansions") {
		cfg.Search.MaxExpansions = f.maxExpansions
	}
	if fl.Changed("timeout") {
		d, err := parseDuration(f.timeout)
		if err != nil {
			return err
		}
		cfg.Search.Timeout = d
	}
	if fl.Changed("queue-type") {
		qt, err := openlist.ParseQueueType(f.queueType)
		if err != nil {
			return err
		}
		cfg.List.QueueType = qt
	}
	if fl.Changed("kind") {
		cfg.List.Kind = openlist.Kind(strings.ToLower(f.kind))
	}
	return nil
}

func runSolve(ctx context.Context, out io.Writer, cfg fileConfig, logger *openlist.Logger, render, dumpMetrics bool) error {
	if ctx == nil {
		ctx = context.Background()
	}

	grid := gridworld.Random(cfg.Grid.Width, cfg.Grid.Height, cfg.Grid.Density, cfg.Grid.Seed)
	h := grid.Manhattan()

	reg := prometheus.NewRegistry()
	mc := prommetrics.New(reg)
	optFns := []openlist.Option{
		openlist.WithSeed(cfg.Search.Seed),
		openlist.WithLogger(logger),
		openlist.WithMetricsCollector(mc),
	}

	var (
		res       search.Result
		histogram map[int]int
	)
	if len(cfg.Portfolio) == 0 {
		f, err := cfg.List.factory(h, optFns...)
		if err != nil {
			return err
		}
		s := search.NewEager(grid, f.NewStateOpenList(),
			search.WithProgressEvaluator(h),
			search.WithMaxExpansions(cfg.Search.MaxExpansions),
			search.WithLogger(logger),
		)

		runCtx, cancel := context.WithTimeout(ctx, cfg.Search.Timeout)
		res, err = s.Run(runCtx)
		cancel()
		if err != nil && res.Status != search.StatusTimeout {
			return err
		}
		histogram = depthHistogram(f)
	} else {
		runs := make([]search.Run, 0, len(cfg.Portfolio))
		for _, rc := range cfg.Portfolio {
			runs = append(runs, search.Run{
				Name:         rc.Name,
				RelativeTime: rc.RelativeTime,
				New: func() (*search.Eager, error) {
					f, err := rc.List.factory(h, optFns...)
					if err != nil {
						return nil, err
					}
					return search.NewEager(grid, f.NewStateOpenList(),
						search.WithMaxExpansions(cfg.Search.MaxExpansions),
						search.WithLogger(logger),
					), nil
				},
			})
		}

		run := search.RunPortfolio
		if cfg.Search.Race {
			run = search.Race
		}
		pres, err := run(ctx, cfg.Search.Timeout, runs, search.WithPortfolioLogger(logger))
		if err != nil {
			return err
		}
		for _, r := range pres.Runs {
			fmt.Fprintf(out, "run %s: %s (expanded %d)\n", r.Name, r.Result.Status, r.Result.Expanded)
		}
		res.Status = pres.Status
		if pres.Best != nil {
			res = pres.Best.Result
			fmt.Fprintf(out, "best: %s\n", pres.Best.Name)
		}
	}

	printResult(out, res)
	if len(histogram) > 0 {
		printHistogram(out, histogram)
	}
	if render {
		fmt.Fprint(out, grid.Render(res.Path))
	}
	if dumpMetrics {
		return writeMetrics(out, reg)
	}
	return nil
}

func printResult(out io.Writer, res search.Result) {
	fmt.Fprintf(out, "status: %s\n", res.Status)
	if res.Status == search.StatusSolved {
		fmt.Fprintf(out, "plan length: %d\n", len(res.Plan))
		fmt.Fprintf(out, "plan cost: %d\n", res.Cost)
	}
	fmt.Fprintf(out, "expanded: %d\n", res.Expanded)
	fmt.Fprintf(out, "generated: %d\n", res.Generated)
	fmt.Fprintf(out, "evaluated: %d\n", res.Evaluated)
}

// depthHistogram returns the plateau depth histogram of the factory's
// default type evaluator, if it records one.
func depthHistogram(f *openlist.Factory) map[int]int {
	for _, e := range f.Config().TypeEvaluators {
		if d, ok := e.(*eval.Depth); ok {
			return d.Histogram()
		}
	}
	return nil
}

func printHistogram(out io.Writer, histogram map[int]int) {
	depths := make([]int, 0, len(histogram))
	for d := range histogram {
		depths = append(depths, d)
	}
	slices.Sort(depths)

	fmt.Fprintln(out, "plateau depths:")
	for _, d := range depths {
		fmt.Fprintf(out, "  %d: %d\n", d, histogram[d])
	}
}

func writeMetrics(out io.Writer, g prometheus.Gatherer) error {
	mfs, err := g.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}
	for _, mf := range mfs {
		if _, err := expfmt.MetricFamilyToText(out, mf); err != nil {
			return fmt.Errorf("write metrics: %w", err)
		}
	}
	return nil
}
