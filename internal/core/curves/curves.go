// Package curves holds the pure grading curve functions.
//
// Every curve maps a non-negative participation count to a bounded grade.
// A curve's value at zero is its documented floor: 0.0 for Tiered and
// Percentage, the configured minimum for Linear, Logarithmic and SquareRoot
package curves

import "math"

// Params bounds a curve. A zero value means "use the scheme's default"
type Params struct {
	MinGrade          float64
	MaxGrade          float64
	MaxParticipations int
}

// Scheme names a grading curve
type Scheme string

// The five supported schemes
const (
	SchemeTiered      Scheme = "tiered"
	SchemeLinear      Scheme = "linear"
	SchemeLogarithmic Scheme = "logarithmic"
	SchemeSquareRoot  Scheme = "square_root"
	SchemePercentage  Scheme = "percentage"
)

// Names returns the known scheme names in stable order
func Names() []string {
	return []string{
		string(SchemeTiered),
		string(SchemeLinear),
		string(SchemeLogarithmic),
		string(SchemeSquareRoot),
		string(SchemePercentage),
	}
}

// DefaultParams returns the documented defaults for a scheme.
// Tiered takes no parameters; its zero Params is returned for uniformity
func DefaultParams(s Scheme) Params {
	switch s {
	case SchemeLinear, SchemeLogarithmic:
		return Params{MinGrade: 1.0, MaxGrade: 5.0, MaxParticipations: 11}
	case SchemeSquareRoot:
		return Params{MinGrade: 0.5, MaxGrade: 5.0, MaxParticipations: 11}
	case SchemePercentage:
		return Params{MinGrade: 0.0, MaxGrade: 5.0, MaxParticipations: 11}
	default:
		return Params{}
	}
}

// Tiered is the stepwise table scheme. Discontinuous on purpose; the steps
// are fixed milestones, not a formula
func Tiered(n int) float64 {
	switch {
	case n <= 0:
		return 0.0
	case n == 1:
		return 2.0
	case n == 2:
		return 2.5
	case n == 3:
		return 3.0
	case n == 4:
		return 3.5
	case n == 5:
		return 4.0
	case n == 6:
		return 4.5
	default: // 7+
		return 5.0
	}
}

// Linear scales proportionally above a floor: zero gets MinGrade, one gets
// MinGrade+0.5, and the remainder of the band is spread evenly up to
// MaxParticipations
func Linear(n int, p Params) float64 {
	p = withDefaults(p, SchemeLinear)
	if n <= 0 {
		return p.MinGrade
	}
	return p.MinGrade + 0.5 +
		float64(n-1)*(p.MaxGrade-p.MinGrade-0.5)/float64(p.MaxParticipations-1)
}

// Logarithmic is generous to low counts: grade grows with ln(n+1) against a
// reference maximum of MaxParticipations
func Logarithmic(n int, p Params) float64 {
	p = withDefaults(p, SchemeLogarithmic)
	if n <= 0 {
		return p.MinGrade
	}
	normalized := math.Log(float64(n)+1) / math.Log(float64(p.MaxParticipations)+1)
	return p.MinGrade + normalized*(p.MaxGrade-p.MinGrade)
}

// SquareRoot is a balanced middle ground between Linear and Logarithmic
func SquareRoot(n int, p Params) float64 {
	p = withDefaults(p, SchemeSquareRoot)
	if n <= 0 {
		return p.MinGrade
	}
	normalized := math.Sqrt(float64(n)) / math.Sqrt(float64(p.MaxParticipations))
	return p.MinGrade + normalized*(p.MaxGrade-p.MinGrade)
}

// Percentage is a plain fraction of MaxParticipations, capped at MaxGrade
func Percentage(n int, p Params) float64 {
	p = withDefaults(p, SchemePercentage)
	if n <= 0 {
		return p.MinGrade
	}
	frac := min(float64(n)/float64(p.MaxParticipations), 1.0)
	return p.MinGrade + frac*(p.MaxGrade-p.MinGrade)
}

// withDefaults fills unset fields from the scheme defaults
func withDefaults(p Params, s Scheme) Params {
	def := DefaultParams(s)
	if p.MaxGrade == 0 {
		p.MinGrade = def.MinGrade
		p.MaxGrade = def.MaxGrade
	}
	if p.MaxParticipations == 0 {
		p.MaxParticipations = def.MaxParticipations
	}
	return p
}

// Round1 rounds a grade to one decimal digit, the precision of the exports
func Round1(g float64) float64 {
	return math.Round(g*10) / 10
}
