package service

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"rollcall/internal/core/curves"
)

// Preview tabulates every grading curve over a range of participation
// counts, values rounded to two decimals. A nil range previews 0 through 11
func Preview(participations []int) string {
	if participations == nil {
		participations = make([]int, 12)
		for i := range participations {
			participations[i] = i
		}
	}

	schemes := []struct {
		label string
		s     curves.Scheme
	}{
		{"Tiered", curves.SchemeTiered},
		{"Linear", curves.SchemeLinear},
		{"Logarithmic", curves.SchemeLogarithmic},
		{"Square Root", curves.SchemeSquareRoot},
		{"Percentage", curves.SchemePercentage},
	}

	var b strings.Builder
	w := tabwriter.NewWriter(&b, 0, 0, 2, ' ', 0)

	fmt.Fprint(w, "Participations")
	for _, sc := range schemes {
		fmt.Fprintf(w, "\t%s", sc.label)
	}
	fmt.Fprintln(w)

	for _, n := range participations {
		fmt.Fprintf(w, "%d", n)
		for _, sc := range schemes {
			curve, _ := curves.For(sc.s)
			fmt.Fprintf(w, "\t%.2f", curve(n))
		}
		fmt.Fprintln(w)
	}
	w.Flush()
	return b.String()
}
