package module

import (
	"rollcall/internal/platform/config"
	"rollcall/internal/services/messages/service"
)

// FromConfig assembles the aggregator config from the environment.
// ANALYSIS_START_DATE (2006-01-02) scopes conversations by last activity;
// empty analyzes the full history
func FromConfig(cfg config.Conf) service.Config {
	return service.Config{
		CourseID:      cfg.Prefix("CANVAS_").MustInt64("COURSE_ID"),
		StartDate:     cfg.Prefix("ANALYSIS_").MayString("START_DATE", ""),
		ExcludedNames: cfg.Prefix("ANALYSIS_").MayCSV("EXCLUDED_NAMES", nil),
		ExcludedIDs:   cfg.Prefix("ANALYSIS_").MayCSV("EXCLUDED_IDS", nil),
	}
}
