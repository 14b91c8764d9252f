package domain

import (
	"context"

	"rollcall/internal/adapters/ingest/canvas"
)

// ConversationsPort abstracts what the aggregator needs from the messaging
// side of the course platform
type ConversationsPort interface {
	Conversations(ctx context.Context, courseID int64, page int) ([]canvas.ConversationSummary, error)
	ConversationDetail(ctx context.Context, conversationID int64) (canvas.ConversationDetail, error)
	PerPage() int
}

// AggregatorPort is the public port exposed by the messages module
type AggregatorPort interface {
	Aggregate(ctx context.Context) (Result, error)
}
