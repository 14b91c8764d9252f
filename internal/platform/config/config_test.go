package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	kit "rollcall/internal/platform/testkit"
)

func TestPrefixAndKey(t *testing.T) {
	root := New()
	canvas := root.Prefix("CANVAS_")
	if got := canvas.key("TOKEN"); got != "CANVAS_TOKEN" {
		t.Fatalf("key() = %q, want %q", got, "CANVAS_TOKEN")
	}
	nested := canvas.Prefix("HTTP_")
	if got := nested.key("TIMEOUT"); got != "CANVAS_HTTP_TIMEOUT" {
		t.Fatalf("nested key() = %q, want %q", got, "CANVAS_HTTP_TIMEOUT")
	}
}

// Must* panics

func TestMustString(t *testing.T) {
	c := New().Prefix("APP_")
	t.Setenv("APP_NAME", "  rollcall ")
	if got := c.MustString("NAME"); got != "rollcall" {
		t.Fatalf("MustString = %q, want %q", got, "rollcall")
	}
	kit.MustPanic(t, func() { _ = c.MustString("MISSING") })
}

func TestMustInt64(t *testing.T) {
	c := New().Prefix("COURSE_")
	t.Setenv("COURSE_ID", " 12345 ")
	if got := c.MustInt64("ID"); got != 12345 {
		t.Fatalf("MustInt64 = %d, want 12345", got)
	}
	kit.MustPanic(t, func() { _ = c.MustInt64("MISSING") })
	t.Setenv("COURSE_BAD", "x")
	kit.MustPanic(t, func() { _ = c.MustInt64("BAD") })
}

func TestMustURL(t *testing.T) {
	c := New().Prefix("U_")
	t.Setenv("U_BASE", "https://canvas.example.edu/api/v1")
	if u := c.MustURL("BASE"); !u.IsAbs() {
		t.Fatalf("MustURL returned non-absolute URL")
	}
	t.Setenv("U_BAD", "/relative")
	kit.MustPanic(t, func() { _ = c.MustURL("BAD") })
}

func TestRequire(t *testing.T) {
	c := New().Prefix("REQ_")
	t.Setenv("REQ_A", "1")
	t.Setenv("REQ_B", "2")
	kit.MustNotPanic(t, func() { c.Require("A", "B") })
	kit.MustPanic(t, func() { c.Require("A", "C") })
}

// May* fallbacks

func TestMayDefaults(t *testing.T) {
	c := New().Prefix("OPT_")
	if got := c.MayString("NAME", "def"); got != "def" {
		t.Fatalf("MayString default = %q", got)
	}
	if got := c.MayInt("N", 3); got != 3 {
		t.Fatalf("MayInt default = %d", got)
	}
	if got := c.MayBool("B", true); !got {
		t.Fatalf("MayBool default = false")
	}
	if got := c.MayFloat64("F", 2.5); got != 2.5 {
		t.Fatalf("MayFloat64 default = %v", got)
	}
	if got := c.MayDuration("D", time.Second); got != time.Second {
		t.Fatalf("MayDuration default = %v", got)
	}
}

func TestMayParsesValid(t *testing.T) {
	c := New().Prefix("OPT_")
	t.Setenv("OPT_N", "9")
	t.Setenv("OPT_B", "false")
	t.Setenv("OPT_F", "1.5")
	t.Setenv("OPT_D", "250ms")
	t.Setenv("OPT_ID", "987654321012")
	if got := c.MayInt("N", 3); got != 9 {
		t.Fatalf("MayInt = %d, want 9", got)
	}
	if got := c.MayBool("B", true); got {
		t.Fatalf("MayBool = true, want false")
	}
	if got := c.MayFloat64("F", 0); got != 1.5 {
		t.Fatalf("MayFloat64 = %v, want 1.5", got)
	}
	if got := c.MayDuration("D", 0); got != 250*time.Millisecond {
		t.Fatalf("MayDuration = %v, want 250ms", got)
	}
	if got := c.MayInt64("ID", 0); got != 987654321012 {
		t.Fatalf("MayInt64 = %d", got)
	}
}

func TestMayInvalidFallsBack(t *testing.T) {
	c := New().Prefix("OPT_")
	t.Setenv("OPT_N", "nope")
	t.Setenv("OPT_B", "maybe")
	t.Setenv("OPT_D", "soon")
	if got := c.MayInt("N", 4); got != 4 {
		t.Fatalf("MayInt invalid = %d, want default 4", got)
	}
	if got := c.MayBool("B", true); !got {
		t.Fatalf("MayBool invalid should fall back to default")
	}
	if got := c.MayDuration("D", time.Minute); got != time.Minute {
		t.Fatalf("MayDuration invalid = %v, want 1m", got)
	}
}

func TestMayCSV(t *testing.T) {
	c := New().Prefix("X_")
	t.Setenv("X_NAMES", " Ada Lovelace , , Grace Hopper ")
	got := c.MayCSV("NAMES", nil)
	if len(got) != 2 || got[0] != "Ada Lovelace" || got[1] != "Grace Hopper" {
		t.Fatalf("MayCSV = %v", got)
	}
	def := []string{"fallback"}
	if got := c.MayCSV("MISSING", def); len(got) != 1 || got[0] != "fallback" {
		t.Fatalf("MayCSV default = %v", got)
	}
	t.Setenv("X_EMPTY", " , ,")
	if got := c.MayCSV("EMPTY", def); len(got) != 1 || got[0] != "fallback" {
		t.Fatalf("MayCSV all-empty = %v, want default", got)
	}
}

func TestMayEnum(t *testing.T) {
	c := New().Prefix("G_")
	if got := c.MayEnum("SCHEME", "tiered", "tiered", "linear"); got != "tiered" {
		t.Fatalf("MayEnum default = %q", got)
	}
	t.Setenv("G_SCHEME", "Linear")
	if got := c.MayEnum("SCHEME", "tiered", "tiered", "linear"); got != "Linear" {
		t.Fatalf("MayEnum case-insensitive match = %q", got)
	}
	t.Setenv("G_SCHEME", "bogus")
	kit.MustPanic(t, func() { _ = c.MayEnum("SCHEME", "tiered", "tiered", "linear") })
}

func TestLoadDotenvOverlays(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte("ROLLCALL_DOTENV_PROBE=hello\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd); _ = os.Unsetenv("ROLLCALL_DOTENV_PROBE") })

	LoadDotenv()
	if got := os.Getenv("ROLLCALL_DOTENV_PROBE"); got != "hello" {
		t.Fatalf("dotenv overlay = %q, want %q", got, "hello")
	}
}
