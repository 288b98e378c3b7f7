// SPDX-License-Identifier: MIT

// Package cmd holds the lvtopo cobra commands.
package cmd

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/lvtopo/homology"
)

// app is the state shared by all subcommands of one invocation.
type app struct {
	configPath string
	cfg        *Config
	log        zerolog.Logger
}

// NewRootCommand returns the lvtopo command tree.
func NewRootCommand() *cobra.Command {
	a := &app{log: zerolog.Nop()}
	root := &cobra.Command{
		Use:   "lvtopo",
		Short: "Persistent homology of simplicial complexes",
		Long: `lvtopo computes persistence barcodes of filtered simplicial complexes,
zigzag barcodes of insertion/removal sequences and bottleneck distances.

Configuration is read from flags, LVTOPO_* environment variables and an
optional YAML file given with --config, in that order of precedence.

Examples:
  lvtopo barcodes complex.yaml --field modular --prime 5
  lvtopo zigzag events.yaml --max-dim 2
  lvtopo bottleneck a.yaml b.yaml --format yaml
  lvtopo bootstrap complex.yaml --samples 10 --size 20 --seed 1`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := LoadConfig(viper.New(), cmd, a.configPath)
			if err != nil {
				return err
			}
			a.cfg = cfg
			a.log = newLogger(cmd.ErrOrStderr(), cfg.Verbose)
			a.log.Debug().Interface("config", cfg).Msg("configuration resolved")

			return nil
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "YAML configuration file")
	pf.String("field", string(homology.Boolean), "coefficients: boolean, modular or rational")
	pf.Int("prime", homology.DefaultPrime, "modulus for modular coefficients")
	pf.String("variant", string(homology.AbsoluteVariant), "persistence variant: absolute, relative or classical")
	pf.Int("min-dim", homology.DefaultMinDimension, "lowest reported dimension")
	pf.Int("max-dim", homology.DefaultMaxDimension, "highest reported dimension")
	pf.String("format", FormatText, "output format: text or yaml")
	pf.Bool("index", false, "report filtration indices instead of values")
	pf.BoolP("verbose", "v", false, "debug logging on stderr")

	root.AddCommand(
		newBarcodesCommand(a),
		newZigzagCommand(a),
		newBottleneckCommand(a),
		newBootstrapCommand(a),
	)

	return root
}

// Execute runs the root command and exits non-zero on error.
func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
