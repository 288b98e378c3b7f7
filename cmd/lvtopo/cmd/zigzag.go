// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newZigzagCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "zigzag <events.yaml>",
		Short: "Zigzag barcode of a sequence of simplex insertions and removals",
		Long: `Replays the add/remove events of the file on an empty complex. Events are
numbered from 0; a class born by event b and killed by event d is [b, d).`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			events, err := readEvents(args[0])
			if err != nil {
				return err
			}
			a.log.Info().Str("file", args[0]).Int("events", len(events)).Msg("replaying zigzag")
			bc, err := runEvents(a.cfg, events, a.log)
			if err != nil {
				return fmt.Errorf("zigzag: %w", err)
			}

			return writeCollection(cmd.OutOrStdout(), a.cfg.Format, bc)
		},
	}
}
