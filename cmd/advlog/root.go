package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	var configFlag string

	ctx := newCommandContext(&configFlag)

	rootCmd := &cobra.Command{
		Use:           "advlog",
		Short:         "Inspect and demo the advlog formatting stack",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Session configuration file (TOML)")

	rootCmd.AddCommand(newFormatsCommand())
	rootCmd.AddCommand(newDemoCommand(ctx))
	rootCmd.AddCommand(newProgressCommand())
	rootCmd.AddCommand(newVersionCommand())

	return rootCmd
}
