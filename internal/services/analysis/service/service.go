// Package service orchestrates a full participation analysis run
package service

import (
	"context"
	"sort"

	"github.com/go-playground/validator/v10"

	"rollcall/internal/core/curves"
	perr "rollcall/internal/platform/errors"
	"rollcall/internal/platform/logger"
	"rollcall/internal/services/export"
	forumdom "rollcall/internal/services/forum/domain"
	gradedom "rollcall/internal/services/grading/domain"
	grading "rollcall/internal/services/grading/service"
	msgdom "rollcall/internal/services/messages/domain"
	reconciledom "rollcall/internal/services/reconcile/domain"
	reconcile "rollcall/internal/services/reconcile/service"
	rosterdom "rollcall/internal/services/roster/domain"
	rosterrepo "rollcall/internal/services/roster/repo"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Options configures one analysis run
type Options struct {
	IncludeForums   bool
	IncludeMessages bool

	Scheme curves.Scheme `validate:"required,oneof=tiered linear logarithmic square_root percentage"`

	// RosterPath is optional; empty runs ungraded by roster
	RosterPath string

	RawPath    string `validate:"required"`
	GradesPath string `validate:"required"`
}

// Report is the outcome of one analysis run
type Report struct {
	Records []reconciledom.UnifiedRecord
	Graded  []gradedom.GradedRecord
	Stats   gradedom.Statistics

	// RosterMerged reports whether grades were roster-scoped
	RosterMerged bool
}

// Service runs the pipeline end to end: aggregate both channels, reconcile,
// export the raw report, grade, export grades
type Service struct {
	Forums   forumdom.AggregatorPort
	Messages msgdom.AggregatorPort
	Opts     Options
}

// New validates the options and constructs the runner. Aggregator ports may
// be nil only when the matching channel is disabled
func New(forums forumdom.AggregatorPort, messages msgdom.AggregatorPort, opts Options) (*Service, error) {
	if err := validate.Struct(opts); err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeValidation, "analysis options")
	}
	if opts.IncludeForums && forums == nil {
		return nil, perr.InvalidArgf("forums enabled but no forum aggregator wired")
	}
	if opts.IncludeMessages && messages == nil {
		return nil, perr.InvalidArgf("messages enabled but no message aggregator wired")
	}
	return &Service{Forums: forums, Messages: messages, Opts: opts}, nil
}

// Run executes the pipeline. Channel and export failures are recoverable:
// the run logs them and continues with what it has. Only an unknown grading
// scheme halts, and that is caught at construction
func (s *Service) Run(ctx context.Context) (Report, error) {
	log := logger.C(ctx).With().Str("component", "analysis").Logger()

	var forumRecs []*forumdom.ActorRecord
	if s.Opts.IncludeForums {
		res, err := s.Forums.Aggregate(ctx)
		if err != nil {
			log.Warn().Err(err).Msg("forum channel unavailable, continuing without it")
		}
		forumRecs = res.Students
	}

	var msgRecs []*msgdom.ActorRecord
	if s.Opts.IncludeMessages {
		res, err := s.Messages.Aggregate(ctx)
		if err != nil {
			log.Warn().Err(err).Msg("message channel unavailable, continuing without it")
		}
		msgRecs = res.Students
	}

	records := reconcile.Merge(forumRecs, msgRecs)
	if len(records) == 0 {
		log.Warn().Msg("no participation data found, check course id, token and permissions")
		return Report{}, nil
	}

	if err := export.RawToFile(s.Opts.RawPath, records); err != nil {
		log.Error().Err(err).Str("path", s.Opts.RawPath).Msg("raw report export failed")
	}

	roster := s.loadRoster(log)

	graded, err := grading.Apply(records, s.Opts.Scheme, roster)
	if err != nil {
		return Report{}, perr.WithOp(err, "analysis.run")
	}

	withStudent := roster != nil && roster.HasStudentColumn()
	if err := export.GradesToFile(s.Opts.GradesPath, graded, withStudent); err != nil {
		log.Error().Err(err).Str("path", s.Opts.GradesPath).Msg("grade report export failed")
	}

	stats := grading.Stats(graded)
	logSummary(log, graded, stats)

	return Report{
		Records:      records,
		Graded:       graded,
		Stats:        stats,
		RosterMerged: roster != nil,
	}, nil
}

// loadRoster resolves the optional roster. A missing file is normal and
// only logged; any other load failure is also recoverable
func (s *Service) loadRoster(log logger.Logger) *rosterdom.Roster {
	if s.Opts.RosterPath == "" {
		return nil
	}
	roster, err := rosterrepo.Load(s.Opts.RosterPath)
	if err != nil {
		if perr.IsCode(err, perr.ErrorCodeNotFound) {
			log.Info().Str("path", s.Opts.RosterPath).Msg("no roster file, grading participants only")
		} else {
			log.Warn().Err(err).Str("path", s.Opts.RosterPath).Msg("roster unusable, grading participants only")
		}
		return nil
	}
	return roster
}

// logSummary emits the run summary: cohort statistics, top participants and
// the level and grade distributions
func logSummary(log logger.Logger, graded []gradedom.GradedRecord, stats gradedom.Statistics) {
	log.Info().Int("students", stats.Count).
		Float64("avg_grade", stats.Mean).
		Float64("median_grade", stats.Median).
		Float64("min_grade", stats.Min).
		Float64("max_grade", stats.Max).
		Msg("analysis summary")

	top := make([]gradedom.GradedRecord, len(graded))
	copy(top, graded)
	sort.SliceStable(top, func(i, j int) bool {
		return top[i].TotalParticipations > top[j].TotalParticipations
	})
	if len(top) > 5 {
		top = top[:5]
	}
	for i, rec := range top {
		log.Info().Int("rank", i+1).Str("name", rec.UserName).
			Int("participations", rec.TotalParticipations).
			Float64("grade", rec.Grade).Msg("top participant")
	}

	levels := make(map[string]int)
	for _, rec := range graded {
		levels[rec.ActivityLevel]++
	}
	for level, count := range levels {
		log.Info().Str("level", level).Int("students", count).Msg("activity level distribution")
	}
	for grade, count := range stats.Distribution {
		log.Info().Float64("grade", grade).Int("students", count).Msg("grade distribution")
	}
}
