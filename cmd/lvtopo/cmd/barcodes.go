// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newBarcodesCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "barcodes <complex.yaml>",
		Short: "Static persistence barcodes of a filtered complex",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, sub, err := readComplex(args[0])
			if err != nil {
				return err
			}
			alg, err := a.cfg.algorithm(sub, a.log)
			if err != nil {
				return err
			}
			a.log.Info().Str("file", args[0]).Int("cells", s.Size()).
				Str("field", a.cfg.Field).Str("variant", a.cfg.Variant).Msg("computing barcodes")

			if a.cfg.Index {
				bc, err := alg.ComputeIndexIntervals(s)
				if err != nil {
					return fmt.Errorf("barcodes: %w", err)
				}
				return writeCollection(cmd.OutOrStdout(), a.cfg.Format, bc)
			}
			bc, err := alg.ComputeIntervals(s)
			if err != nil {
				return fmt.Errorf("barcodes: %w", err)
			}

			return writeCollection(cmd.OutOrStdout(), a.cfg.Format, bc)
		},
	}
}
