package curves

// Func maps a participation count to a grade
type Func func(n int) float64

// For returns the curve for a scheme, bound to that scheme's default
// parameters. ok is false for unknown scheme names; there is no sane
// default curve to fall back to, so callers must fail the grading step
func For(s Scheme) (Func, bool) {
	switch s {
	case SchemeTiered:
		return Tiered, true
	case SchemeLinear:
		return func(n int) float64 { return Linear(n, Params{}) }, true
	case SchemeLogarithmic:
		return func(n int) float64 { return Logarithmic(n, Params{}) }, true
	case SchemeSquareRoot:
		return func(n int) float64 { return SquareRoot(n, Params{}) }, true
	case SchemePercentage:
		return func(n int) float64 { return Percentage(n, Params{}) }, true
	default:
		return nil, false
	}
}

// Floor returns f(0), the grade a zero-participation enrollee receives
func Floor(f Func) float64 { return f(0) }
