package main

import (
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/katalvlaran/netgen/builder"
	"github.com/katalvlaran/netgen/internal/config"
)

// version is set at link time with -ldflags "-X main.version=...".
var version = "dev"

// app carries what every subcommand shares.
type app struct {
	v   *viper.Viper
	out io.Writer
	// newLogger is replaced in tests.
	newLogger func(verbose, trace bool) (*zap.Logger, error)
}

func newApp(out io.Writer) *app {
	return &app{v: config.New(), out: out, newLogger: newLogger}
}

func newRootCmd(out io.Writer) *cobra.Command {
	return newApp(out).command()
}

// command assembles the cobra tree bound to a's viper instance.
func (a *app) command() *cobra.Command {
	var cfgFile string
	root := &cobra.Command{
		Use:           "netgen",
		Short:         "Generate scale-free and small-world networks",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			return config.Load(a.v, cfgFile)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
	root.SetOut(a.out)

	pf := root.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "config file (yaml, json or toml)")
	pf.Uint64(config.Seed.Flag(), 1, "base seed; trial i uses an independent stream derived from it")
	pf.Int(config.Trials.Flag(), 1, "number of independent generations to average")
	pf.Int(config.MaxRetries.Flag(), builder.DefaultMaxRetries, "draw budget per rejection-sampling selection")
	pf.String(config.Rewire.Flag(), "distinct", "Watts–Strogatz target policy: distinct or independent")
	pf.Bool(config.Trace.Flag(), false, "log every generator step at debug level")
	pf.BoolP(config.Verbose.Flag(), "v", false, "human-readable development logging")
	for _, k := range []config.Key{config.Seed, config.Trials, config.MaxRetries, config.Rewire, config.Trace, config.Verbose} {
		_ = a.v.BindPFlag(string(k), pf.Lookup(k.Flag()))
	}

	root.AddCommand(
		newBACmd(a),
		newKECmd(a),
		newWSCmd(a),
		newVersionCmd(),
	)

	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of netgen",
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Println("netgen " + version)
		},
	}
}

// newLogger builds a production logger, or a development one with verbose.
// Tracing lowers the level to debug so step records are emitted.
func newLogger(verbose, trace bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	if verbose {
		cfg = zap.NewDevelopmentConfig()
	}
	if trace {
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}

	return cfg.Build()
}
