package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"sortbench/bench"
	"sortbench/complexity"
	"sortbench/config"
	"sortbench/report"
	"sortbench/store"
)

type runFlags struct {
	sizes      []int
	preset     string
	number     int
	repeat     int
	seed       int64
	algorithms []string
	styles     []string
	input      string
	method     string
	noPlot     bool
	logLog     bool
	format     string
}

func newRunCmd() *cobra.Command {
	f := &runFlags{}
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Benchmark the selected algorithms and write results",
		Long: `Runs every algorithm in every style over every input size, measuring the
best per-call time of "number" calls repeated "repeat" times.

Example:
  sortbench run --preset extended --log-log
  sortbench run --sizes 100,1000,10000 --algorithms merge,quick,parallel-merge`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBench(cmd, f)
		},
	}

	flags := cmd.Flags()
	flags.IntSliceVar(&f.sizes, "sizes", nil, "input sizes, comma separated")
	flags.StringVar(&f.preset, "preset", "", "size preset: default, extended")
	flags.IntVarP(&f.number, "number", "n", 0, "calls per trial")
	flags.IntVarP(&f.repeat, "repeat", "r", 0, "trials per measurement (best is kept)")
	flags.Int64Var(&f.seed, "seed", 0, "random seed (0: time based)")
	flags.StringSliceVarP(&f.algorithms, "algorithms", "a", nil, "algorithm keys (see 'sortbench algorithms')")
	flags.StringSliceVar(&f.styles, "styles", nil, "styles: func, object")
	flags.StringVarP(&f.input, "input", "i", "", "dataset file instead of random data")
	flags.StringVar(&f.method, "method", "", "complexity method: regression, endpoints")
	flags.BoolVar(&f.noPlot, "no-plot", false, "skip charts")
	flags.BoolVar(&f.logLog, "log-log", false, "log-log chart axes")
	flags.StringVar(&f.format, "plot-format", "", "chart format: png, svg, pdf")
	return cmd
}

// apply 명시적으로 지정된 플래그만 설정에 덮어씀
func (f *runFlags) apply(cmd *cobra.Command, c *config.Config) error {
	flags := cmd.Flags()
	if flags.Changed("preset") {
		if err := c.ApplyPreset(f.preset); err != nil {
			return err
		}
	}
	if flags.Changed("sizes") {
		c.Sizes = f.sizes
	}
	if flags.Changed("number") {
		c.Number = f.number
	}
	if flags.Changed("repeat") {
		c.Repeat = f.repeat
	}
	if flags.Changed("seed") {
		c.Seed = f.seed
	}
	if flags.Changed("algorithms") {
		c.Algorithms = f.algorithms
	}
	if flags.Changed("styles") {
		c.Styles = f.styles
	}
	if flags.Changed("input") {
		c.Input = f.input
	}
	if flags.Changed("method") {
		c.Complexity.Method = f.method
	}
	if f.noPlot {
		c.Output.Plot = false
	}
	if f.logLog {
		c.Output.LogLog = true
	}
	if flags.Changed("plot-format") {
		c.Output.PlotFormat = f.format
	}
	return nil
}

func runBench(cmd *cobra.Command, f *runFlags) error {
	ctx := commandContext(cmd)

	if err := f.apply(cmd, cfg); err != nil {
		return err
	}
	if err := validateConfig(); err != nil {
		return err
	}

	opts := bench.Options{
		Sizes:      cfg.Sizes,
		Number:     cfg.Number,
		Repeat:     cfg.Repeat,
		Seed:       cfg.Seed,
		MinValue:   cfg.MinValue,
		MaxValue:   cfg.MaxValue,
		Algorithms: cfg.Algorithms,
		Styles:     bench.ParseStyles(cfg.Styles),
	}
	if cfg.Input != "" {
		data, err := bench.ReadDataset(cfg.Input)
		if err != nil {
			return err
		}
		opts.Dataset = data
		opts.DatasetName = cfg.Input
		logger.Info("입력 파일 사용", zap.String("path", cfg.Input), zap.Int("values", len(data)))
	}

	runner, err := bench.NewRunner(opts, logger)
	if err != nil {
		return err
	}
	run, err := runner.Run(ctx)
	if err != nil {
		return err
	}

	a := report.Analyze(run, complexity.Method(cfg.Complexity.Method))
	fmt.Fprint(cmd.OutOrStdout(), report.RenderTables(a))

	paths, err := report.NewWriter(writerOptions(cfg), logger).Write(ctx, a)
	if err != nil {
		return err
	}
	for _, p := range paths {
		fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", p)
	}

	if err := saveRun(ctx, run); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "run %s\n", run.ID)
	return nil
}

func saveRun(ctx context.Context, run *bench.Run) error {
	if cfg.Store.Backend == store.BackendNone {
		return nil
	}
	st, err := store.Open(cfg.Store.Backend, cfg.StorePath(), logger)
	if err != nil {
		return err
	}
	defer st.Close()

	if err := st.Save(ctx, run); err != nil {
		return fmt.Errorf("failed to save run %s: %w", run.ID, err)
	}
	logger.Info("실행 기록 저장", zap.String("run_id", run.ID), zap.String("backend", cfg.Store.Backend))
	return nil
}

func writerOptions(c *config.Config) report.Options {
	return report.Options{
		Dir:        c.Output.Dir,
		Markdown:   c.Output.Markdown,
		JSON:       c.Output.JSON,
		Plot:       c.Output.Plot,
		PlotFormat: c.Output.PlotFormat,
		LogLog:     c.Output.LogLog,
	}
}

func validateConfig() error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
