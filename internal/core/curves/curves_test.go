package curves

import (
	"math"
	"testing"
)

func almost(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestTieredTable(t *testing.T) {
	want := map[int]float64{
		0: 0.0, 1: 2.0, 2: 2.5, 3: 3.0, 4: 3.5, 5: 4.0, 6: 4.5, 7: 5.0,
		8: 5.0, 100: 5.0,
	}
	for n, g := range want {
		if got := Tiered(n); !almost(got, g) {
			t.Fatalf("Tiered(%d) = %v, want %v", n, got, g)
		}
	}
}

func TestTieredMonotoneAndBounded(t *testing.T) {
	prev := -1.0
	for n := 0; n <= 200; n++ {
		g := Tiered(n)
		if g < prev {
			t.Fatalf("Tiered not non-decreasing at n=%d: %v < %v", n, g, prev)
		}
		if g < 0 || g > 5 {
			t.Fatalf("Tiered(%d) = %v out of [0,5]", n, g)
		}
		prev = g
	}
}

func TestFloors(t *testing.T) {
	cases := map[Scheme]float64{
		SchemeTiered:      0.0,
		SchemeLinear:      1.0,
		SchemeLogarithmic: 1.0,
		SchemeSquareRoot:  0.5,
		SchemePercentage:  0.0,
	}
	for s, want := range cases {
		f, ok := For(s)
		if !ok {
			t.Fatalf("For(%q) unknown", s)
		}
		if got := Floor(f); !almost(got, want) {
			t.Fatalf("floor of %q = %v, want %v", s, got, want)
		}
	}
}

func TestLinearEndpoints(t *testing.T) {
	// n=1: min + 0.5; n=11 (default max): full max grade
	if got := Linear(1, Params{}); !almost(got, 1.5) {
		t.Fatalf("Linear(1) = %v, want 1.5", got)
	}
	if got := Linear(11, Params{}); !almost(got, 5.0) {
		t.Fatalf("Linear(11) = %v, want 5.0", got)
	}
	// midpoints spread evenly: n=6 -> 1.5 + 5*3.5/10
	if got := Linear(6, Params{}); !almost(got, 1.5+5*3.5/10) {
		t.Fatalf("Linear(6) = %v", got)
	}
}

func TestLogarithmicShape(t *testing.T) {
	// ln(n+1)/ln(12) against the fixed reference max of 11
	want := 1.0 + math.Log(4)/math.Log(12)*4.0
	if got := Logarithmic(3, Params{}); !almost(got, want) {
		t.Fatalf("Logarithmic(3) = %v, want %v", got, want)
	}
	if got := Logarithmic(11, Params{}); !almost(got, 5.0) {
		t.Fatalf("Logarithmic(11) = %v, want 5.0", got)
	}
}

func TestSquareRootShape(t *testing.T) {
	want := 0.5 + math.Sqrt(4)/math.Sqrt(11)*4.5
	if got := SquareRoot(4, Params{}); !almost(got, want) {
		t.Fatalf("SquareRoot(4) = %v, want %v", got, want)
	}
	if got := SquareRoot(11, Params{}); !almost(got, 5.0) {
		t.Fatalf("SquareRoot(11) = %v, want 5.0", got)
	}
}

func TestPercentageCaps(t *testing.T) {
	if got := Percentage(5, Params{}); !almost(got, 5.0/11.0*5.0) {
		t.Fatalf("Percentage(5) = %v", got)
	}
	// once n >= max participations the grade pins to the ceiling
	for _, n := range []int{11, 12, 50} {
		if got := Percentage(n, Params{}); !almost(got, 5.0) {
			t.Fatalf("Percentage(%d) = %v, want 5.0", n, got)
		}
	}
}

func TestCustomParams(t *testing.T) {
	p := Params{MinGrade: 2.0, MaxGrade: 10.0, MaxParticipations: 5}
	if got := Linear(5, p); !almost(got, 10.0) {
		t.Fatalf("Linear(5, custom) = %v, want 10.0", got)
	}
	if got := Linear(0, p); !almost(got, 2.0) {
		t.Fatalf("Linear(0, custom) = %v, want 2.0", got)
	}
}

func TestForUnknownScheme(t *testing.T) {
	if _, ok := For(Scheme("bell_curve")); ok {
		t.Fatal("unknown scheme should not resolve")
	}
}

func TestNamesStable(t *testing.T) {
	got := Names()
	want := []string{"tiered", "linear", "logarithmic", "square_root", "percentage"}
	if len(got) != len(want) {
		t.Fatalf("Names() = %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Names()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestRound1(t *testing.T) {
	cases := map[float64]float64{
		1.44: 1.4, 1.45: 1.5, 1.46: 1.5, 5.0: 5.0, 0.0: 0.0, 2.349999: 2.3,
	}
	for in, want := range cases {
		if got := Round1(in); !almost(got, want) {
			t.Fatalf("Round1(%v) = %v, want %v", in, got, want)
		}
	}
}
