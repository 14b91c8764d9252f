// Command rollcall analyzes course participation on a Canvas LMS instance
// and turns it into grades
package main

import (
	"os"

	"rollcall/internal/platform/config"
	"rollcall/internal/platform/logger"
)

func main() {
	config.LoadDotenv()
	logger.Init(logger.FromEnv())

	if err := newRootCmd().Execute(); err != nil {
		logger.Get().Error().Err(err).Msg("rollcall failed")
		os.Exit(1)
	}
}
