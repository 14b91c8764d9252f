// Package service applies grading curves to unified participation records
package service

import (
	"math"
	"sort"
	"strconv"

	"rollcall/internal/core/curves"
	perr "rollcall/internal/platform/errors"
	"rollcall/internal/platform/logger"
	"rollcall/internal/services/grading/domain"
	reconcile "rollcall/internal/services/reconcile/domain"
	roster "rollcall/internal/services/roster/domain"
)

// Apply grades every record under the named scheme. An unknown scheme is a
// typed error and halts grading.
//
// When a roster is present the output is roster-scoped: every roster
// identity appears exactly once, participants absent from the roster are
// dropped, and roster students with no recorded activity are zero-filled
// and graded at the scheme floor. Every grade is rounded to one decimal
func Apply(records []reconcile.UnifiedRecord, scheme curves.Scheme, r *roster.Roster) ([]domain.GradedRecord, error) {
	curve, ok := curves.For(scheme)
	if !ok {
		return nil, perr.InvalidArgf("unknown grading scheme %q, available: %v", scheme, curves.Names())
	}
	log := logger.Named("grading")

	var out []domain.GradedRecord
	if r == nil {
		out = make([]domain.GradedRecord, 0, len(records))
		for _, rec := range records {
			out = append(out, domain.GradedRecord{
				UnifiedRecord: rec,
				Grade:         curves.Round1(curve(rec.TotalParticipations)),
			})
		}
	} else {
		out = joinRoster(records, r, curve)
	}

	log.Info().Str("scheme", string(scheme)).Int("students", len(out)).
		Bool("roster_scoped", r != nil).Msg("grading applied")
	return out, nil
}

// joinRoster left-joins the roster against the participation records.
// Identity comparison is uniform across the whole join: integer when every
// id on both sides parses, string otherwise
func joinRoster(records []reconcile.UnifiedRecord, r *roster.Roster, curve curves.Func) []domain.GradedRecord {
	normalize := keyNormalizer(records, r)

	byID := make(map[string]reconcile.UnifiedRecord, len(records))
	for _, rec := range records {
		byID[normalize(rec.UserID)] = rec
	}

	out := make([]domain.GradedRecord, 0, len(r.Entries))
	for _, entry := range r.Entries {
		key := normalize(entry.UserID)
		rec, ok := byID[key]
		if !ok {
			// zero-filled, graded from zero activity
			rec = reconcile.UnifiedRecord{
				UserID:                  entry.UserID,
				ActivityLevel:           reconcile.LevelFor(0),
				CommunicationPreference: reconcile.PreferenceFor(0, 0),
			}
		}
		out = append(out, domain.GradedRecord{
			UnifiedRecord: rec,
			Student:       entry.StudentName(),
			Grade:         curves.Round1(curve(rec.TotalParticipations)),
		})
	}
	return out
}

// keyNormalizer picks the join representation for user ids. Integer ids may
// arrive zero-padded or whitespace-wrapped on the roster side, so when every
// id parses the canonical integer form joins them; any unparsable id on
// either side falls the whole join back to string comparison
func keyNormalizer(records []reconcile.UnifiedRecord, r *roster.Roster) func(string) string {
	allInts := true
	check := func(id string) {
		if _, err := strconv.ParseInt(id, 10, 64); err != nil {
			allInts = false
		}
	}
	for _, rec := range records {
		check(rec.UserID)
	}
	for _, entry := range r.Entries {
		check(entry.UserID)
	}
	if !allInts {
		return func(id string) string { return id }
	}
	return func(id string) string {
		n, _ := strconv.ParseInt(id, 10, 64)
		return strconv.FormatInt(n, 10)
	}
}

// Stats summarizes a graded cohort
func Stats(records []domain.GradedRecord) domain.Statistics {
	s := domain.Statistics{Count: len(records), Distribution: make(map[float64]int)}
	if s.Count == 0 {
		return s
	}

	grades := make([]float64, 0, len(records))
	var sum float64
	s.Min, s.Max = records[0].Grade, records[0].Grade
	for _, rec := range records {
		g := rec.Grade
		grades = append(grades, g)
		sum += g
		if g < s.Min {
			s.Min = g
		}
		if g > s.Max {
			s.Max = g
		}
		if rec.TotalParticipations == 0 {
			s.Zeroes++
		}
		s.Distribution[g]++
	}
	s.Mean = sum / float64(s.Count)
	s.AtMax = s.Distribution[s.Max]

	sort.Float64s(grades)
	mid := len(grades) / 2
	if len(grades)%2 == 1 {
		s.Median = grades[mid]
	} else {
		s.Median = (grades[mid-1] + grades[mid]) / 2
	}

	var variance float64
	for _, g := range grades {
		d := g - s.Mean
		variance += d * d
	}
	s.StdDev = math.Sqrt(variance / float64(s.Count))
	return s
}
