package domain

import (
	"context"

	"rollcall/internal/adapters/ingest/canvas"
)

// CoursePort abstracts what the aggregator needs from the course platform
type CoursePort interface {
	DiscussionTopics(ctx context.Context, courseID int64) ([]canvas.Topic, error)
	TopicEntries(ctx context.Context, courseID, topicID int64) ([]canvas.Entry, error)
}

// AggregatorPort is the public port exposed by the forum module
type AggregatorPort interface {
	Aggregate(ctx context.Context) (Result, error)
}
