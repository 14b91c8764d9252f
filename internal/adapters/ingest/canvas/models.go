package canvas

// Topic is one discussion topic header from the course forum listing
type Topic struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
}

// Entry is a discussion entry. Replies nest to arbitrary depth; the API may
// deliver them under replies, recent_replies, or both
type Entry struct {
	UserID        int64   `json:"user_id"`
	UserName      string  `json:"user_name"`
	CreatedAt     string  `json:"created_at"`
	Replies       []Entry `json:"replies"`
	RecentReplies []Entry `json:"recent_replies"`
}

// ChildReplies collects every reply edge of an entry regardless of which
// field the API delivered it under
func (e Entry) ChildReplies() []Entry {
	if len(e.RecentReplies) == 0 {
		return e.Replies
	}
	out := make([]Entry, 0, len(e.RecentReplies)+len(e.Replies))
	out = append(out, e.RecentReplies...)
	out = append(out, e.Replies...)
	return out
}

// ConversationSummary is one row of the paginated conversation listing
type ConversationSummary struct {
	ID            int64  `json:"id"`
	LastMessageAt string `json:"last_message_at"`
}

// Message is one direct message inside a conversation.
// The API delivers messages newest-first
type Message struct {
	AuthorID  int64  `json:"author_id"`
	CreatedAt string `json:"created_at"`
}

// Participant attributes an author id to a display name within one conversation
type Participant struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// ConversationDetail is the full view of one conversation
type ConversationDetail struct {
	ID           int64         `json:"id"`
	Messages     []Message     `json:"messages"`
	Participants []Participant `json:"participants"`
}
