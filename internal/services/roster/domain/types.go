// Package domain holds the student roster types
package domain

// Entry is one roster row. Fields carries every non-identity column by
// header name, preserved verbatim for downstream exports
type Entry struct {
	UserID string
	Fields map[string]string
}

// StudentName returns the roster's display name column when present
func (e Entry) StudentName() string { return e.Fields["Student"] }

// Roster is a complete student list loaded from file, in file order
type Roster struct {
	// Columns lists the non-identity headers in file order
	Columns []string
	Entries []Entry
}

// HasStudentColumn reports whether the roster carries a display name column
func (r *Roster) HasStudentColumn() bool {
	for _, c := range r.Columns {
		if c == "Student" {
			return true
		}
	}
	return false
}
