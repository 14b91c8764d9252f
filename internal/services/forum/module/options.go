package module

import (
	"rollcall/internal/platform/config"
	"rollcall/internal/services/forum/service"
)

// FromConfig assembles the aggregator config from the environment.
// CANVAS_COURSE_ID names the course; ANALYSIS_EXCLUDED_NAMES and
// ANALYSIS_EXCLUDED_IDS are comma-separated staff identities
func FromConfig(cfg config.Conf) service.Config {
	return service.Config{
		CourseID:      cfg.Prefix("CANVAS_").MustInt64("COURSE_ID"),
		ExcludedNames: cfg.Prefix("ANALYSIS_").MayCSV("EXCLUDED_NAMES", nil),
		ExcludedIDs:   cfg.Prefix("ANALYSIS_").MayCSV("EXCLUDED_IDS", nil),
	}
}
