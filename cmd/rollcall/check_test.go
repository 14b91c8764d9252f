package main

import (
	"bytes"
	"strings"
	"testing"
)

func runCheck(t *testing.T) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	cmd := newCheckCmd()
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	err := cmd.Execute()
	return buf.String(), err
}

func TestCheckIncomplete(t *testing.T) {
	t.Setenv("CANVAS_BASE_URL", "")
	t.Setenv("CANVAS_TOKEN", "")
	t.Setenv("CANVAS_COURSE_ID", "")

	out, err := runCheck(t)
	if err == nil {
		t.Fatal("expected failure on empty configuration")
	}
	if !strings.Contains(out, "missing CANVAS_BASE_URL") {
		t.Fatalf("output = %s", out)
	}
}

func TestCheckComplete(t *testing.T) {
	t.Setenv("CANVAS_BASE_URL", "https://canvas.example.edu/api/v1")
	t.Setenv("CANVAS_TOKEN", "secret-token-1234")
	t.Setenv("CANVAS_COURSE_ID", "12345")
	t.Setenv("GRADING_SCHEME", "linear")
	t.Setenv("ANALYSIS_ROSTER_PATH", "")

	out, err := runCheck(t)
	if err != nil {
		t.Fatalf("check: %v\n%s", err, out)
	}
	if !strings.Contains(out, "configuration looks complete") {
		t.Fatalf("output = %s", out)
	}
	// token tail only
	if strings.Contains(out, "secret-token") {
		t.Fatalf("token leaked: %s", out)
	}
	if !strings.Contains(out, "1234") {
		t.Fatalf("token tail missing: %s", out)
	}
}

func TestCheckUnknownScheme(t *testing.T) {
	t.Setenv("CANVAS_BASE_URL", "https://canvas.example.edu/api/v1")
	t.Setenv("CANVAS_TOKEN", "secret-token-1234")
	t.Setenv("CANVAS_COURSE_ID", "12345")
	t.Setenv("GRADING_SCHEME", "bell_curve")

	out, err := runCheck(t)
	if err == nil {
		t.Fatalf("unknown scheme must fail the check: %s", out)
	}
}

func TestPreviewTabulatesRange(t *testing.T) {
	var buf bytes.Buffer
	cmd := newPreviewCmd()
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"--upto", "3"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("preview: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "Tiered") || !strings.Contains(out, "Percentage") {
		t.Fatalf("output = %s", out)
	}
	// header plus rows 0 through 3
	if got := len(strings.Split(strings.TrimRight(out, "\n"), "\n")); got != 5 {
		t.Fatalf("rows = %d:\n%s", got, out)
	}
}
