package service

import (
	"context"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"rollcall/internal/core/curves"
	perr "rollcall/internal/platform/errors"
	forumdom "rollcall/internal/services/forum/domain"
	msgdom "rollcall/internal/services/messages/domain"
)

type fakeForums struct {
	res forumdom.Result
	err error
}

func (f *fakeForums) Aggregate(context.Context) (forumdom.Result, error) { return f.res, f.err }

type fakeMessages struct {
	res msgdom.Result
	err error
}

func (f *fakeMessages) Aggregate(context.Context) (msgdom.Result, error) { return f.res, f.err }

func forumActor(id int64, name string, total int) *forumdom.ActorRecord {
	r := &forumdom.ActorRecord{UserID: id, UserName: name}
	for i := 0; i < total; i++ {
		r.Observe(i > 0, "topic", "")
	}
	return r
}

func msgActor(id int64, name string, total int) *msgdom.ActorRecord {
	r := &msgdom.ActorRecord{UserID: id, UserName: name}
	for i := 0; i < total; i++ {
		r.Observe(false, 1, "")
	}
	return r
}

func options(t *testing.T) Options {
	t.Helper()
	dir := t.TempDir()
	return Options{
		IncludeForums:   true,
		IncludeMessages: true,
		Scheme:          curves.SchemeTiered,
		RawPath:         filepath.Join(dir, "raw.csv"),
		GradesPath:      filepath.Join(dir, "grades.csv"),
	}
}

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	return rows
}

func TestRunFullPipeline(t *testing.T) {
	forums := &fakeForums{res: forumdom.Result{Students: []*forumdom.ActorRecord{
		forumActor(1, "Alice", 7),
		forumActor(2, "Bob", 1),
	}}}
	msgs := &fakeMessages{res: msgdom.Result{Students: []*msgdom.ActorRecord{
		msgActor(1, "Alice", 2),
	}}}

	opts := options(t)
	svc, err := New(forums, msgs, opts)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	report, err := svc.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(report.Records) != 2 || len(report.Graded) != 2 {
		t.Fatalf("report sizes = %d records, %d graded", len(report.Records), len(report.Graded))
	}
	if report.RosterMerged {
		t.Fatal("no roster configured")
	}
	if report.Stats.Count != 2 {
		t.Fatalf("stats = %+v", report.Stats)
	}

	raw := readCSV(t, opts.RawPath)
	if len(raw) != 3 || raw[1][1] != "Alice" || raw[1][4] != "9" {
		t.Fatalf("raw rows = %v", raw)
	}
	grades := readCSV(t, opts.GradesPath)
	// alice: 9 participations, tiered 5.0
	if grades[1][3] != "5.0" {
		t.Fatalf("grades rows = %v", grades)
	}
}

func TestRunWithRoster(t *testing.T) {
	dir := t.TempDir()
	rosterPath := filepath.Join(dir, "lista.csv")
	if err := os.WriteFile(rosterPath, []byte("ID,Student\n1,Alice Johnson\n3,Caro Diaz\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	forums := &fakeForums{res: forumdom.Result{Students: []*forumdom.ActorRecord{
		forumActor(1, "Alice", 7),
		forumActor(2, "Bob", 3), // not on the roster
	}}}

	opts := options(t)
	opts.RosterPath = rosterPath
	svc, err := New(forums, &fakeMessages{}, opts)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	report, err := svc.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !report.RosterMerged {
		t.Fatal("roster not merged")
	}
	if len(report.Graded) != 2 {
		t.Fatalf("graded = %+v", report.Graded)
	}

	grades := readCSV(t, opts.GradesPath)
	if grades[0][1] != "Student" {
		t.Fatalf("header = %v", grades[0])
	}
	// alice graded 5.0, caro back-filled at the tiered floor
	if grades[1][1] != "Alice Johnson" || grades[1][4] != "5.0" {
		t.Fatalf("rows = %v", grades)
	}
	if grades[2][1] != "Caro Diaz" || grades[2][4] != "0.0" {
		t.Fatalf("rows = %v", grades)
	}
}

func TestRunMissingRosterIsRecoverable(t *testing.T) {
	forums := &fakeForums{res: forumdom.Result{Students: []*forumdom.ActorRecord{forumActor(1, "Alice", 2)}}}
	opts := options(t)
	opts.RosterPath = filepath.Join(t.TempDir(), "absent.csv")

	svc, err := New(forums, &fakeMessages{}, opts)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	report, err := svc.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if report.RosterMerged || len(report.Graded) != 1 {
		t.Fatalf("report = %+v", report)
	}
}

func TestRunChannelFailureContinues(t *testing.T) {
	forums := &fakeForums{err: perr.Unavailablef("canvas down")}
	msgs := &fakeMessages{res: msgdom.Result{Students: []*msgdom.ActorRecord{msgActor(5, "Eve", 4)}}}

	opts := options(t)
	svc, err := New(forums, msgs, opts)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	report, err := svc.Run(context.Background())
	if err != nil {
		t.Fatalf("forum failure must not halt the run: %v", err)
	}
	if len(report.Records) != 1 || report.Records[0].UserName != "Eve" {
		t.Fatalf("records = %+v", report.Records)
	}
}

func TestRunNoDataShortCircuits(t *testing.T) {
	opts := options(t)
	svc, err := New(&fakeForums{}, &fakeMessages{}, opts)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	report, err := svc.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(report.Records) != 0 {
		t.Fatalf("report = %+v", report)
	}
	if _, err := os.Stat(opts.RawPath); !os.IsNotExist(err) {
		t.Fatal("no exports expected without data")
	}
}

func TestNewValidatesOptions(t *testing.T) {
	_, err := New(&fakeForums{}, &fakeMessages{}, Options{Scheme: "bell_curve", RawPath: "r", GradesPath: "g"})
	if !perr.IsCode(err, perr.ErrorCodeValidation) {
		t.Fatalf("error = %v", err)
	}
	_, err = New(nil, &fakeMessages{}, Options{
		IncludeForums: true, Scheme: curves.SchemeTiered, RawPath: "r", GradesPath: "g",
	})
	if !perr.IsCode(err, perr.ErrorCodeInvalidArgument) {
		t.Fatalf("error = %v", err)
	}
}

func TestRunDisabledChannels(t *testing.T) {
	opts := options(t)
	opts.IncludeForums = false
	opts.IncludeMessages = false
	svc, err := New(nil, nil, opts)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, err := svc.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
}
