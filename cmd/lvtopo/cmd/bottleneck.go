// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvtopo/barcode"
	"github.com/katalvlaran/lvtopo/bottleneck"
)

// DistanceDoc is one line of bottleneck output.
type DistanceDoc struct {
	Dimension int     `yaml:"dimension"`
	Distance  float64 `yaml:"distance"`
}

func newBottleneckCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "bottleneck <a.yaml> <b.yaml>",
		Short: "Bottleneck distance between the barcodes of two complexes",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var bcs [2]*barcode.Collection[float64]
			for i, path := range args {
				s, sub, err := readComplex(path)
				if err != nil {
					return err
				}
				alg, err := a.cfg.algorithm(sub, a.log)
				if err != nil {
					return err
				}
				if a.cfg.Index {
					idx, err := alg.ComputeIndexIntervals(s)
					if err != nil {
						return fmt.Errorf("bottleneck: %s: %w", path, err)
					}
					bcs[i] = barcode.AsFloat(idx)
					continue
				}
				if bcs[i], err = alg.ComputeIntervals(s); err != nil {
					return fmt.Errorf("bottleneck: %s: %w", path, err)
				}
			}

			var out []DistanceDoc
			for dim := a.cfg.MinDimension; dim <= a.cfg.MaxDimension; dim++ {
				d := bottleneck.AtDimension(bcs[0], bcs[1], dim)
				a.log.Debug().Int("dim", dim).Float64("distance", d).Msg("bottleneck")
				out = append(out, DistanceDoc{Dimension: dim, Distance: d})
			}
			if a.cfg.Format == FormatYAML {
				return writeYAML(cmd.OutOrStdout(), out)
			}
			for _, d := range out {
				if _, err := fmt.Fprintf(cmd.OutOrStdout(), "H%d: %g\n", d.Dimension, d.Distance); err != nil {
					return err
				}
			}

			return nil
		},
	}
}
