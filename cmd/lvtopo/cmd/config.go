// SPDX-License-Identifier: MIT
// Package: lvtopo/cmd/lvtopo/cmd
//
// config.go - layered configuration: defaults < config file < LVTOPO_*
// environment < command-line flags.

package cmd

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/lvtopo/homology"
	"github.com/katalvlaran/lvtopo/stream"
)

// EnvPrefix prefixes every environment variable read by lvtopo.
const EnvPrefix = "LVTOPO"

// Output formats.
const (
	FormatText = "text"
	FormatYAML = "yaml"
)

// ErrInvalidConfig indicates a configuration value outside its domain.
var ErrInvalidConfig = errors.New("lvtopo: invalid configuration")

// Config holds the resolved command configuration.
type Config struct {
	Field        string `mapstructure:"field"`
	Prime        int    `mapstructure:"prime"`
	Variant      string `mapstructure:"variant"`
	MinDimension int    `mapstructure:"min_dimension"`
	MaxDimension int    `mapstructure:"max_dimension"`
	Format       string `mapstructure:"format"`
	Index        bool   `mapstructure:"index"`
	Verbose      bool   `mapstructure:"verbose"`
}

// flagKeys maps persistent flag names to configuration keys.
var flagKeys = map[string]string{
	"field":   "field",
	"prime":   "prime",
	"variant": "variant",
	"min-dim": "min_dimension",
	"max-dim": "max_dimension",
	"format":  "format",
	"index":   "index",
	"verbose": "verbose",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("field", string(homology.Boolean))
	v.SetDefault("prime", homology.DefaultPrime)
	v.SetDefault("variant", string(homology.AbsoluteVariant))
	v.SetDefault("min_dimension", homology.DefaultMinDimension)
	v.SetDefault("max_dimension", homology.DefaultMaxDimension)
	v.SetDefault("format", FormatText)
	v.SetDefault("index", false)
	v.SetDefault("verbose", false)
}

// LoadConfig resolves the configuration of cmd. An empty path skips the
// config file.
func LoadConfig(v *viper.Viper, cmd *cobra.Command, path string) (*Config, error) {
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	for name, key := range flagKeys {
		if f := cmd.Flags().Lookup(name); f != nil {
			if err := v.BindPFlag(key, f); err != nil {
				return nil, fmt.Errorf("LoadConfig: bind %s: %w", name, err)
			}
		}
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("LoadConfig: read %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("LoadConfig: decode: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	switch homology.Coefficients(c.Field) {
	case homology.Boolean, homology.Modular, homology.Rational:
	default:
		return fmt.Errorf("field %q: %w", c.Field, ErrInvalidConfig)
	}
	switch homology.Variant(c.Variant) {
	case homology.AbsoluteVariant, homology.RelativeVariant, homology.ClassicalVariant:
	default:
		return fmt.Errorf("variant %q: %w", c.Variant, ErrInvalidConfig)
	}
	if c.MinDimension < 0 || c.MaxDimension < c.MinDimension {
		return fmt.Errorf("dimensions %d..%d: %w", c.MinDimension, c.MaxDimension, ErrInvalidConfig)
	}
	if c.Format != FormatText && c.Format != FormatYAML {
		return fmt.Errorf("format %q: %w", c.Format, ErrInvalidConfig)
	}

	return nil
}

// algorithm builds the static persistence algorithm; sub is the relative
// subcomplex, nil when the input has none.
func (c *Config) algorithm(sub func(stream.Simplex) bool, log zerolog.Logger) (homology.Algorithm[stream.Simplex], error) {
	return homology.Select(homology.Config[stream.Simplex]{
		Coefficients: homology.Coefficients(c.Field),
		Variant:      homology.Variant(c.Variant),
		MinDimension: c.MinDimension,
		MaxDimension: c.MaxDimension,
		Prime:        c.Prime,
		Subcomplex:   sub,
		Logger:       &log,
	})
}

// newLogger writes human-readable logs to w at info level, or debug when verbose.
func newLogger(w io.Writer, verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}

	return zerolog.New(zerolog.ConsoleWriter{Out: w, NoColor: true}).
		Level(level).
		With().Timestamp().Logger()
}
