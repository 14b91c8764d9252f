// Package domain holds the core types for forum participation aggregation
package domain

// ActorRecord accumulates one actor's forum activity across every topic of
// a run. Records are built incrementally while entries stream in and are
// never mutated after the aggregator returns
type ActorRecord struct {
	UserID   int64
	UserName string

	// Excluded marks staff identities; they are tallied for reporting but
	// never returned in the student set
	Excluded bool

	// Total == Posts + Replies, maintained per update
	Total   int
	Posts   int
	Replies int

	// Topics holds the distinct topic titles the actor participated in
	Topics map[string]struct{}

	// FirstSeen/LastSeen are ISO-8601 timestamps as delivered by the API;
	// lexicographic order is chronological order. Empty when no entry
	// carried a timestamp
	FirstSeen string
	LastSeen  string
}

// TopicsCount returns the number of distinct topics participated in
func (r *ActorRecord) TopicsCount() int { return len(r.Topics) }

// Observe folds one entry occurrence into the record
func (r *ActorRecord) Observe(isReply bool, topicTitle, createdAt string) {
	r.Total++
	if isReply {
		r.Replies++
	} else {
		r.Posts++
	}
	if r.Topics == nil {
		r.Topics = make(map[string]struct{})
	}
	r.Topics[topicTitle] = struct{}{}
	if createdAt != "" {
		if r.FirstSeen == "" || createdAt < r.FirstSeen {
			r.FirstSeen = createdAt
		}
		if r.LastSeen == "" || createdAt > r.LastSeen {
			r.LastSeen = createdAt
		}
	}
}

// Result is the outcome of one forum aggregation run
type Result struct {
	// Students holds non-excluded actors, descending by Total
	// (ties keep first-encounter order)
	Students []*ActorRecord

	// Excluded holds staff activity, available separately for reporting
	Excluded []*ActorRecord

	// EntriesProcessed counts every visited entry with an attributable author
	EntriesProcessed int
}
