package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"

	"rollcall/internal/platform/logger"
)

// dotenvFiles are loaded in order; later files override earlier ones
var dotenvFiles = []string{".env", ".env.local"}

// LoadDotenv overlays local env files onto the process environment.
// Missing files are skipped silently; a present-but-broken file is logged
// and skipped so a stray .env never aborts a run.
func LoadDotenv() {
	loaded := make([]string, 0, len(dotenvFiles))
	for _, f := range dotenvFiles {
		if _, err := os.Stat(f); err != nil {
			continue
		}
		if err := godotenv.Overload(f); err != nil {
			logger.Get().Warn().Err(err).Str("file", f).Msg("failed to load env file")
			continue
		}
		loaded = append(loaded, f)
	}
	if len(loaded) > 0 {
		logger.Get().Debug().Str("files", strings.Join(loaded, ",")).Msg("env files loaded")
	}
}
