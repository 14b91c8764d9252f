// Package identity decides whether an actor counts as a participant or an
// excluded staff identity.
//
// Matching is deliberately loose: besides exact name and id matches, any
// display name that contains an excluded name as a case-insensitive
// substring is treated as staff. That bias under-counts staff rather than
// over-counting students and is kept as documented behavior
package identity

import (
	"strings"
	"sync"

	"golang.org/x/text/cases"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// pool of fresh transformer chains; cases.Fold is not safe for reuse without Reset
var chainPool = sync.Pool{
	New: func() any {
		return transform.Chain(
			norm.NFKC,
			cases.Fold(), // unicode case folding
		)
	},
}

// Fold returns s normalized to NFKC and case folded, for caseless comparison
func Fold(s string) string {
	if s == "" {
		return ""
	}
	s = strings.ToValidUTF8(s, "")
	tr := chainPool.Get().(transform.Transformer)
	ns, _, err := transform.String(tr, s)
	tr.Reset()
	chainPool.Put(tr)
	if err != nil {
		return s
	}
	return ns
}

// Excluded reports whether an actor is an excluded staff identity.
// The three checks run in order:
//  1. displayName exactly equals an excluded name (case sensitive)
//  2. the string form of the actor id equals an excluded id
//  3. displayName contains an excluded name as a case-insensitive substring
func Excluded(displayName, actorID string, excludedNames, excludedIDs []string) bool {
	for _, n := range excludedNames {
		if displayName == n {
			return true
		}
	}
	for _, id := range excludedIDs {
		if actorID == id {
			return true
		}
	}
	folded := Fold(displayName)
	for _, n := range excludedNames {
		if n == "" {
			continue
		}
		if strings.Contains(folded, Fold(n)) {
			return true
		}
	}
	return false
}
