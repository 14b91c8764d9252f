// Package domain holds the core types for direct-message aggregation
package domain

// ActorRecord accumulates one actor's messaging activity across every
// conversation of a run
type ActorRecord struct {
	UserID   int64
	UserName string

	// Excluded marks staff identities; they are tallied for reporting but
	// never returned in the student set
	Excluded bool

	// Total counts every message authored by the actor
	Total int

	// Initiated counts conversations whose oldest message the actor wrote
	Initiated int

	// Conversations holds the distinct conversation ids participated in
	Conversations map[int64]struct{}

	// FirstSeen/LastSeen are ISO-8601 timestamps as delivered by the API;
	// lexicographic order is chronological order
	FirstSeen string
	LastSeen  string
}

// ConversationsCount returns the number of distinct conversations
// participated in
func (r *ActorRecord) ConversationsCount() int { return len(r.Conversations) }

// Observe folds one authored message into the record
func (r *ActorRecord) Observe(initiated bool, conversationID int64, createdAt string) {
	r.Total++
	if initiated {
		r.Initiated++
	}
	if r.Conversations == nil {
		r.Conversations = make(map[int64]struct{})
	}
	r.Conversations[conversationID] = struct{}{}
	if createdAt != "" {
		if r.FirstSeen == "" || createdAt < r.FirstSeen {
			r.FirstSeen = createdAt
		}
		if r.LastSeen == "" || createdAt > r.LastSeen {
			r.LastSeen = createdAt
		}
	}
}

// Result is the outcome of one message aggregation run
type Result struct {
	// Students holds non-excluded actors, descending by Total
	// (ties keep first-encounter order)
	Students []*ActorRecord

	// Excluded holds staff activity, available separately for reporting
	Excluded []*ActorRecord

	// ConversationsProcessed counts conversations that passed the date
	// filter and had their detail fetched
	ConversationsProcessed int

	// MessagesProcessed counts every attributed message
	MessagesProcessed int
}
