package module

import (
	"rollcall/internal/core/curves"
	"rollcall/internal/platform/config"
	"rollcall/internal/services/analysis/service"
	"rollcall/internal/services/export"
)

// FromConfig assembles the run options from the environment.
// GRADING_SCHEME picks the curve; ANALYSIS_ROSTER_PATH points at the
// optional student list
func FromConfig(cfg config.Conf) service.Options {
	analysis := cfg.Prefix("ANALYSIS_")
	return service.Options{
		IncludeForums:   analysis.MayBool("INCLUDE_FORUMS", true),
		IncludeMessages: analysis.MayBool("INCLUDE_MESSAGES", true),
		Scheme: curves.Scheme(cfg.Prefix("GRADING_").MayEnum(
			"SCHEME", string(curves.SchemeTiered), curves.Names()...,
		)),
		RosterPath: analysis.MayString("ROSTER_PATH", ""),
		RawPath:    cfg.Prefix("EXPORT_").MayString("RAW_PATH", export.DefaultRawPath),
		GradesPath: cfg.Prefix("EXPORT_").MayString("GRADES_PATH", export.DefaultGradesPath),
	}
}
