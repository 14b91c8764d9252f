package logger

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]zerolog.Level{
		"trace":   zerolog.TraceLevel,
		"debug":   zerolog.DebugLevel,
		"info":    zerolog.InfoLevel,
		"warn":    zerolog.WarnLevel,
		"warning": zerolog.WarnLevel,
		"error":   zerolog.ErrorLevel,
		"fatal":   zerolog.FatalLevel,
		"panic":   zerolog.PanicLevel,
		"bogus":   zerolog.InfoLevel,
		"":        zerolog.InfoLevel,
	}
	for in, want := range cases {
		if got := parseLevel(in); got != want {
			t.Fatalf("parseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

// Init is once-per-process, so all output assertions share one buffer-backed root
func TestRootNamedAndRunScoped(t *testing.T) {
	var buf bytes.Buffer
	Init(Options{Level: "debug", Format: "json", Service: "rollcall-test", Writer: &buf})

	Get().Info().Msg("root line")
	if out := buf.String(); !strings.Contains(out, `"service":"rollcall-test"`) || !strings.Contains(out, "root line") {
		t.Fatalf("root output missing fields: %s", out)
	}

	buf.Reset()
	Named("canvas").Info().Msg("component line")
	if out := buf.String(); !strings.Contains(out, `"component":"canvas"`) {
		t.Fatalf("Named output missing component: %s", out)
	}

	buf.Reset()
	ctx, id := WithRun(context.Background())
	if id == "" {
		t.Fatal("WithRun returned empty run id")
	}
	C(ctx).Info().Msg("run line")
	if out := buf.String(); !strings.Contains(out, `"run_id":"`+id+`"`) {
		t.Fatalf("C(ctx) output missing run_id %s: %s", id, out)
	}

	buf.Reset()
	C(context.Background()).Info().Msg("bare ctx")
	if out := buf.String(); strings.Contains(out, "run_id") {
		t.Fatalf("bare context should not carry run_id: %s", out)
	}
}
