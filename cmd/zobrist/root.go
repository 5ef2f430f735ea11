package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	var configFlag string
	var formatFlag string
	var verbose bool
	var forceTable bool

	ctx := newCommandContext(&configFlag, &formatFlag, &verbose, &forceTable)

	rootCmd := &cobra.Command{
		Use:           "zobrist",
		Short:         "Deterministic Zobrist keys for chess positions",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return ctx.init(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path (TOML)")
	rootCmd.PersistentFlags().StringVar(&formatFlag, "format", "", "Key format: hex or dec (overrides config)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log diagnostics to stderr")
	rootCmd.PersistentFlags().BoolVar(&forceTable, "table", false, "Render tables even when stdout is not a terminal")

	rootCmd.AddCommand(newHashCommand(ctx))
	rootCmd.AddCommand(newKeysCommand(ctx))
	rootCmd.AddCommand(newStreamCommand(ctx))
	rootCmd.AddCommand(newVerifyCommand(ctx))

	return rootCmd
}
