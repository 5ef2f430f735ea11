package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"chess-zobrist/zobrist"
)

func newStreamCommand(ctx *commandContext) *cobra.Command {
	var count int
	var seed uint32

	cmd := &cobra.Command{
		Use:   "stream",
		Short: "Print values from the key generator",
		RunE: func(cmd *cobra.Command, args []string) error {
			n := ctx.config.StreamCount
			if cmd.Flags().Changed("count") {
				n = count
			}
			if n <= 0 {
				return fmt.Errorf("count must be positive, got %d", n)
			}

			g, err := zobrist.NewGenerator(zobrist.Key(seed))
			if err != nil {
				return fmt.Errorf("stream: %w", err)
			}
			ctx.logger.Debug("streaming keys", "seed", seed, "count", n)

			rows := make([][]string, 0, n)
			for i, k := range g.Take(n) {
				rows = append(rows, []string{strconv.Itoa(i), ctx.formatKey(k)})
			}
			return ctx.writeRows(cmd.OutOrStdout(), []string{"Step", "Value"}, rows,
				[]columnAlignment{alignRight, alignRight})
		},
	}

	cmd.Flags().IntVarP(&count, "count", "n", 0, "Number of values to print (default from config)")
	cmd.Flags().Uint32Var(&seed, "seed", uint32(zobrist.Seed), "Generator seed")
	return cmd
}
