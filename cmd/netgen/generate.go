package main

import (
	"context"
	"fmt"
	"math/rand/v2"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/netgen/builder"
	"github.com/katalvlaran/netgen/core"
	"github.com/katalvlaran/netgen/internal/config"
	"github.com/katalvlaran/netgen/internal/rng"
	"github.com/katalvlaran/netgen/netstat"
	"github.com/katalvlaran/netgen/observe"
)

// generator runs one model with the given stream and options.
type generator func(r *rand.Rand, opts ...builder.BuilderOption) (*core.Graph, error)

func newBACmd(a *app) *cobra.Command {
	var n, m int
	cmd := &cobra.Command{
		Use:   "ba",
		Short: "Barabási–Albert preferential attachment",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.run(cmd.Context(), "ba", func(r *rand.Rand, opts ...builder.BuilderOption) (*core.Graph, error) {
				return builder.GenerateBarabasiAlbert(n, m, r, opts...)
			})
		},
	}
	cmd.Flags().IntVarP(&n, "nodes", "n", 100, "number of nodes")
	cmd.Flags().IntVarP(&m, "edges", "m", 2, "edges brought by every new node")

	return cmd
}

func newKECmd(a *app) *cobra.Command {
	var (
		n, m int
		pMu  float64
	)
	cmd := &cobra.Command{
		Use:   "ke",
		Short: "Klemm–Eguíluz active-set growth",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.run(cmd.Context(), "ke", func(r *rand.Rand, opts ...builder.BuilderOption) (*core.Graph, error) {
				return builder.GenerateKlemmEguiluz(n, m, pMu, r, opts...)
			})
		},
	}
	cmd.Flags().IntVarP(&n, "nodes", "n", 100, "number of nodes")
	cmd.Flags().IntVarP(&m, "edges", "m", 3, "active-set size and edges per new node")
	cmd.Flags().Float64Var(&pMu, "p-mu", 0.1, "probability of linking to the active node instead of a deactivated one")

	return cmd
}

func newWSCmd(a *app) *cobra.Command {
	var (
		n, k int
		p    float64
	)
	cmd := &cobra.Command{
		Use:   "ws",
		Short: "Watts–Strogatz small-world rewiring",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.run(cmd.Context(), "ws", func(r *rand.Rand, opts ...builder.BuilderOption) (*core.Graph, error) {
				return builder.GenerateWattsStrogatz(n, k, p, r, opts...)
			})
		},
	}
	cmd.Flags().IntVarP(&n, "nodes", "n", 100, "number of nodes")
	cmd.Flags().IntVarP(&k, "degree", "k", 4, "ring-lattice degree (even)")
	cmd.Flags().Float64Var(&p, "p", 0.1, "rewiring probability")

	return cmd
}

// run generates settings.Trials graphs on derived streams and prints the
// per-metric mean of their statistics.
func (a *app) run(ctx context.Context, model string, gen generator) error {
	if ctx == nil {
		ctx = context.Background()
	}
	s, err := config.Read(a.v)
	if err != nil {
		return err
	}
	logger, err := a.newLogger(s.Verbose, s.Trace)
	if err != nil {
		return fmt.Errorf("netgen: logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()
	logger = logger.Named(model)

	opts := []builder.BuilderOption{
		builder.WithMaxRetries(s.MaxRetries),
		builder.WithRewirePolicy(s.Rewire),
	}

	summaries := make([]netstat.Stats, 0, s.Trials)
	for i, r := range rng.Streams(s.Seed, s.Trials) {
		trialOpts := opts
		if s.Trace {
			trialOpts = append(trialOpts[:len(opts):len(opts)],
				builder.WithObserver(observe.Logger(logger.With(zap.Int("trial", i)))))
		}
		g, err := gen(r, trialOpts...)
		if err != nil {
			logger.Error("generation failed", zap.Int("trial", i), zap.Error(err))
			return err
		}
		st, err := netstat.Summarize(ctx, g)
		if err != nil {
			return err
		}
		logger.Info("trial done",
			zap.Int("trial", i),
			zap.Int("nodes", st.Nodes),
			zap.Int("edges", st.Edges),
			zap.Float64("clustering", st.Clustering),
			zap.Float64("avg_path_length", st.AvgPathLength),
		)
		summaries = append(summaries, st)
	}

	return a.report(model, s, summaries)
}

// report writes the averaged statistics as an aligned two-column table.
func (a *app) report(model string, s config.Settings, sums []netstat.Stats) error {
	mean := func(f func(netstat.Stats) float64) float64 {
		xs := make([]float64, len(sums))
		for i, st := range sums {
			xs[i] = f(st)
		}
		return stat.Mean(xs, nil)
	}

	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	rows := []struct {
		name string
		val  string
	}{
		{"model", model},
		{"seed", fmt.Sprint(s.Seed)},
		{"trials", fmt.Sprint(len(sums))},
		{"nodes", fmt.Sprintf("%.0f", mean(func(st netstat.Stats) float64 { return float64(st.Nodes) }))},
		{"edges", fmt.Sprintf("%.2f", mean(func(st netstat.Stats) float64 { return float64(st.Edges) }))},
		{"mean_degree", fmt.Sprintf("%.4f", mean(func(st netstat.Stats) float64 { return st.MeanDegree }))},
		{"degree_variance", fmt.Sprintf("%.4f", mean(func(st netstat.Stats) float64 { return st.DegreeVariance }))},
		{"max_degree", fmt.Sprintf("%.2f", mean(func(st netstat.Stats) float64 { return float64(st.MaxDegree) }))},
		{"clustering", fmt.Sprintf("%.4f", mean(func(st netstat.Stats) float64 { return st.Clustering }))},
		{"avg_path_length", fmt.Sprintf("%.4f", mean(func(st netstat.Stats) float64 { return st.AvgPathLength }))},
		{"diameter", fmt.Sprintf("%.2f", mean(func(st netstat.Stats) float64 { return float64(st.Diameter) }))},
		{"components", fmt.Sprintf("%.2f", mean(func(st netstat.Stats) float64 { return float64(st.Components) }))},
	}
	for _, r := range rows {
		fmt.Fprintf(tw, "%s\t%s\n", r.name, r.val)
	}

	return tw.Flush()
}
