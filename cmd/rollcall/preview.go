package main

import (
	"fmt"

	"github.com/spf13/cobra"

	grading "rollcall/internal/services/grading/service"
)

func newPreviewCmd() *cobra.Command {
	var upto int
	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Tabulate every grading curve over a participation range",
		RunE: func(cmd *cobra.Command, args []string) error {
			if upto < 0 {
				return fmt.Errorf("--upto must be non-negative, got %d", upto)
			}
			participations := make([]int, upto+1)
			for i := range participations {
				participations[i] = i
			}
			fmt.Fprint(cmd.OutOrStdout(), grading.Preview(participations))
			return nil
		},
	}
	cmd.Flags().IntVar(&upto, "upto", 11, "highest participation count to tabulate")
	return cmd
}
