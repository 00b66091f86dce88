package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvcluster/cluster"
	"github.com/katalvlaran/lvcluster/internal/config"
	"github.com/katalvlaran/lvcluster/point"
)

func newSolveCmd() *cobra.Command {
	var (
		merges      int
		top         int
		metricsFile string
	)

	cmd := &cobra.Command{
		Use:   "solve <file>",
		Short: "Print the BoundedMerge and FullConnectivity answers for a point file",
		Long: `Solve reads one "x,y,z" point per line and prints two numbers:

  Part 1: the product of the largest --top component sizes after unioning
          the endpoints of the --merges cheapest edges.
  Part 2: the product of the X coordinates of the edge that first joins
          every point into one component.`,
		Example: `  lvcluster solve input.txt
  lvcluster solve input.txt -k 10
  lvcluster solve input.txt --config lvcluster.toml --metrics-file run.prom`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := configFromContext(cmd.Context())
			flags := cmd.Flags()
			if flags.Changed("merges") {
				cfg.Merges = merges
			}
			if flags.Changed("top") {
				cfg.Top = top
			}
			if flags.Changed("metrics-file") {
				cfg.MetricsFile = metricsFile
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			return runSolve(cmd.Context(), cmd.OutOrStdout(), args[0], cfg)
		},
	}

	def := config.Default()
	cmd.Flags().IntVarP(&merges, "merges", "k", def.Merges, "number of cheapest edges to union for part 1")
	cmd.Flags().IntVar(&top, "top", def.Top, "number of largest components multiplied for part 1")
	cmd.Flags().StringVar(&metricsFile, "metrics-file", "", "write Prometheus text-format metrics to this path")

	return cmd
}

func runSolve(ctx context.Context, out io.Writer, path string, cfg config.Config) error {
	logger := loggerFromContext(ctx)

	pts, err := loadPoints(ctx, path)
	if err != nil {
		return err
	}

	prog := newProgress(logger)
	opts := []cluster.Option{cluster.WithTop(cfg.Top), cluster.WithLogger(logger)}
	var reg *prometheus.Registry
	if cfg.MetricsFile != "" {
		reg = prometheus.NewRegistry()
		opts = append(opts, cluster.WithMetrics(cluster.NewMetrics(reg)))
	}
	a := cluster.New(pts, opts...)
	prog.done(fmt.Sprintf("Enumerated %s edges", humanize.Comma(int64(a.Edges()))))

	if err := ctx.Err(); err != nil {
		return err
	}
	part1, err := a.BoundedMerge(cfg.Merges)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Part 1: %d\n", part1)

	if err := ctx.Err(); err != nil {
		return err
	}
	fmt.Fprintf(out, "Part 2: %d\n", a.FullConnectivity())

	if reg != nil {
		if err := prometheus.WriteToTextfile(cfg.MetricsFile, reg); err != nil {
			return fmt.Errorf("write metrics: %w", err)
		}
		logger.Debug("wrote metrics", "path", cfg.MetricsFile)
	}

	return nil
}

// loadPoints reads path, logging every skipped record at warn level.
func loadPoints(ctx context.Context, path string) ([]point.Point, error) {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	pts, skipped, err := point.ReadFileWithReport(path)
	if err != nil {
		return nil, err
	}
	for _, s := range skipped {
		logger.Warn("skipped record", "file", path, "line", s.Line, "err", s.Err)
	}
	prog.done(fmt.Sprintf("Loaded %s points from %s", humanize.Comma(int64(len(pts))), path))

	return pts, nil
}
