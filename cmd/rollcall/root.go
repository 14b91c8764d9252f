package main

import (
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "rollcall",
		Short:         "Canvas participation analyzer and grader",
		Long: "rollcall aggregates forum and direct-message activity for a Canvas " +
			"course, reconciles both channels per learner, and maps participation " +
			"counts to grades under a configurable curve.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.AddCommand(newRunCmd())
	rootCmd.AddCommand(newPreviewCmd())
	rootCmd.AddCommand(newCheckCmd())
	return rootCmd
}
