// Package domain holds the graded participation types
package domain

import reconcile "rollcall/internal/services/reconcile/domain"

// GradedRecord is one learner's unified activity with a grade attached.
// Student carries the roster display name when a roster was merged
type GradedRecord struct {
	reconcile.UnifiedRecord

	Student string
	Grade   float64
}

// Statistics summarizes one grading run
type Statistics struct {
	Count  int
	Mean   float64
	Median float64
	Min    float64
	Max    float64
	StdDev float64

	// Zeroes counts students with zero participations; AtMax counts
	// students at the maximum observed grade
	Zeroes int
	AtMax  int

	// Distribution counts students per rounded grade
	Distribution map[float64]int
}
