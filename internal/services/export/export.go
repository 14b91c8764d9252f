// Package export writes participation and grade reports as CSV
package export

import (
	"encoding/csv"
	"io"
	"os"
	"sort"
	"strconv"

	perr "rollcall/internal/platform/errors"
	"rollcall/internal/platform/logger"
	grading "rollcall/internal/services/grading/domain"
	reconcile "rollcall/internal/services/reconcile/domain"
)

// Default output paths
const (
	DefaultRawPath    = "raw_participation_data.csv"
	DefaultGradesPath = "participation_grades_final.csv"
)

// WriteRaw writes the unified participation report
func WriteRaw(w io.Writer, records []reconcile.UnifiedRecord) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{
		"user_id", "user_name", "forum_participations", "messages_total",
		"total_participations", "activity_level", "communication_preference",
	}); err != nil {
		return perr.Wrap(err, perr.ErrorCodeUnknown, "write raw header")
	}
	for _, r := range records {
		row := []string{
			r.UserID,
			r.UserName,
			strconv.Itoa(r.ForumTotal),
			strconv.Itoa(r.MessagesTotal),
			strconv.Itoa(r.TotalParticipations),
			r.ActivityLevel,
			r.CommunicationPreference,
		}
		if err := cw.Write(row); err != nil {
			return perr.Wrap(err, perr.ErrorCodeUnknown, "write raw row")
		}
	}
	cw.Flush()
	return perr.WrapIf(cw.Error(), perr.ErrorCodeUnknown, "flush raw report")
}

// WriteGrades writes the final grade report, descending by grade. The
// Student column appears only when the grading run merged a roster
func WriteGrades(w io.Writer, records []grading.GradedRecord, withStudent bool) error {
	sorted := make([]grading.GradedRecord, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Grade > sorted[j].Grade })

	header := []string{"user_id", "user_name", "total_participations", "grade"}
	if withStudent {
		header = []string{"user_id", "Student", "user_name", "total_participations", "grade"}
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return perr.Wrap(err, perr.ErrorCodeUnknown, "write grades header")
	}
	for _, r := range sorted {
		row := []string{r.UserID}
		if withStudent {
			row = append(row, r.Student)
		}
		row = append(row,
			r.UserName,
			strconv.Itoa(r.TotalParticipations),
			strconv.FormatFloat(r.Grade, 'f', 1, 64),
		)
		if err := cw.Write(row); err != nil {
			return perr.Wrap(err, perr.ErrorCodeUnknown, "write grades row")
		}
	}
	cw.Flush()
	return perr.WrapIf(cw.Error(), perr.ErrorCodeUnknown, "flush grade report")
}

// RawToFile writes the unified participation report to path
func RawToFile(path string, records []reconcile.UnifiedRecord) error {
	return toFile(path, "raw participation report", func(f *os.File) error {
		return WriteRaw(f, records)
	})
}

// GradesToFile writes the final grade report to path
func GradesToFile(path string, records []grading.GradedRecord, withStudent bool) error {
	return toFile(path, "grade report", func(f *os.File) error {
		return WriteGrades(f, records, withStudent)
	})
}

func toFile(path, what string, write func(*os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return perr.Wrap(err, perr.ErrorCodeUnknown, "create "+what)
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return perr.Wrap(err, perr.ErrorCodeUnknown, "close "+what)
	}
	logger.Named("export").Info().Str("path", path).Msg(what + " written")
	return nil
}
