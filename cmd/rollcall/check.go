package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"rollcall/internal/core/curves"
	"rollcall/internal/platform/config/raw"
)

// newCheckCmd reports configuration readiness without panicking on missing
// keys, so it stays usable on a half-configured environment
func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Check the environment configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			rc := raw.New()

			baseURL := rc.Get("CANVAS_BASE_URL", "")
			token := rc.Get("CANVAS_TOKEN", "")
			courseID := rc.Get("CANVAS_COURSE_ID", "")

			status(out, "CANVAS_BASE_URL", baseURL != "", baseURL)
			status(out, "CANVAS_TOKEN", token != "", mask(token))
			status(out, "CANVAS_COURSE_ID", courseID != "", courseID)

			scheme := rc.Get("GRADING_SCHEME", string(curves.SchemeTiered))
			_, known := curves.For(curves.Scheme(scheme))
			status(out, "GRADING_SCHEME", known, scheme)

			roster := rc.Get("ANALYSIS_ROSTER_PATH", "")
			if roster == "" {
				fmt.Fprintln(out, "-- ANALYSIS_ROSTER_PATH not set, grades cover participants only")
			} else if _, err := os.Stat(roster); err != nil {
				fmt.Fprintf(out, "warn ANALYSIS_ROSTER_PATH %s not readable\n", roster)
			} else {
				fmt.Fprintf(out, "ok ANALYSIS_ROSTER_PATH %s\n", roster)
			}

			if baseURL == "" || token == "" || courseID == "" || !known {
				return fmt.Errorf("configuration incomplete")
			}
			fmt.Fprintln(out, "configuration looks complete")
			return nil
		},
	}
}

func status(out io.Writer, key string, ok bool, value string) {
	if ok {
		fmt.Fprintf(out, "ok %s %s\n", key, value)
	} else {
		fmt.Fprintf(out, "missing %s\n", key)
	}
}

// mask keeps only the tail of a secret for recognition
func mask(token string) string {
	if len(token) <= 4 {
		return "****"
	}
	return "**********" + token[len(token)-4:]
}
