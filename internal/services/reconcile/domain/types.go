// Package domain holds the unified participation types produced by merging
// the forum and message channels
package domain

// Activity level labels derived from total participations
const (
	LevelInactive = "Inactive"
	LevelLow      = "Low"
	LevelMedium   = "Medium"
	LevelHigh     = "High"
)

// Channel preference labels derived from which channels carry activity
const (
	PrefBoth     = "Both channels"
	PrefForums   = "Forums only"
	PrefMessages = "Messages only"
	PrefNone     = "No activity"
)

// UnifiedRecord is one learner's combined activity across both channels.
// UserID is a string so roster identities that are not numeric still join
type UnifiedRecord struct {
	UserID   string
	UserName string

	ForumTotal   int
	ForumPosts   int
	ForumReplies int
	ForumTopics  int

	MessagesTotal         int
	MessagesInitiated     int
	MessagesConversations int

	// TotalParticipations == ForumTotal + MessagesTotal
	TotalParticipations int

	ActivityLevel           string
	CommunicationPreference string
	UsesBothChannels        bool

	FirstForumSeen   string
	LastForumSeen    string
	FirstMessageSeen string
	LastMessageSeen  string
}

// LevelFor maps a participation total onto its activity level
func LevelFor(total int) string {
	switch {
	case total >= 15:
		return LevelHigh
	case total >= 8:
		return LevelMedium
	case total >= 1:
		return LevelLow
	default:
		return LevelInactive
	}
}

// PreferenceFor maps per-channel totals onto a communication preference
func PreferenceFor(forumTotal, messagesTotal int) string {
	switch {
	case forumTotal > 0 && messagesTotal > 0:
		return PrefBoth
	case forumTotal > 0:
		return PrefForums
	case messagesTotal > 0:
		return PrefMessages
	default:
		return PrefNone
	}
}
