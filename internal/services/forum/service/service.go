// Package service provides the forum aggregation service implementation
package service

import (
	"context"
	"sort"
	"strconv"

	"rollcall/internal/adapters/ingest/canvas"
	"rollcall/internal/core/identity"
	perr "rollcall/internal/platform/errors"
	"rollcall/internal/platform/logger"
	"rollcall/internal/services/forum/domain"
)

// Config holds configuration options for the forum aggregator
type Config struct {
	CourseID      int64
	ExcludedNames []string
	ExcludedIDs   []string
}

// Service walks every discussion topic of a course and aggregates one
// ActorRecord per participant
type Service struct {
	Course domain.CoursePort
	Cfg    Config
}

// New constructs the forum aggregation service
func New(course domain.CoursePort, cfg Config) *Service {
	if course == nil {
		panic("forum.Service requires a non-nil CoursePort")
	}
	return &Service{Course: course, Cfg: cfg}
}

// node is one pending entry on the traversal worklist
type node struct {
	entry   canvas.Entry
	isReply bool
	topic   string
}

// Aggregate visits every topic, entry and nested reply sequentially.
//
// A failed topic listing is fatal to this run: the typed error is returned
// alongside an empty result so the caller can continue the wider analysis.
// A single topic's entry fetch failing only skips that topic
func (s *Service) Aggregate(ctx context.Context) (domain.Result, error) {
	log := logger.C(ctx).With().Str("component", "forum").Logger()

	topics, err := s.Course.DiscussionTopics(ctx, s.Cfg.CourseID)
	if err != nil {
		log.Error().Err(err).Int64("course_id", s.Cfg.CourseID).Msg("listing discussion topics failed")
		return domain.Result{}, perr.WithOp(err, "forum.aggregate")
	}
	log.Info().Int("topics", len(topics)).Msg("aggregating discussion forums")

	acc := make(map[int64]*domain.ActorRecord)
	var order []int64
	processed := 0

	for _, topic := range topics {
		entries, err := s.Course.TopicEntries(ctx, s.Cfg.CourseID, topic.ID)
		if err != nil {
			log.Warn().Err(err).Int64("topic_id", topic.ID).Str("title", topic.Title).
				Msg("skipping topic, entries fetch failed")
			continue
		}
		log.Debug().Str("title", topic.Title).Int("entries", len(entries)).Msg("processing topic")

		// Explicit worklist instead of recursion: reply trees nest
		// arbitrarily deep and the source does not guarantee sane depth
		stack := make([]node, 0, len(entries))
		for _, e := range entries {
			stack = append(stack, node{entry: e, topic: topic.Title})
		}
		for len(stack) > 0 {
			n := stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			if n.entry.UserID != 0 && n.entry.UserName != "" {
				rec, ok := acc[n.entry.UserID]
				if !ok {
					rec = &domain.ActorRecord{UserID: n.entry.UserID, UserName: n.entry.UserName}
					rec.Excluded = identity.Excluded(
						n.entry.UserName,
						strconv.FormatInt(n.entry.UserID, 10),
						s.Cfg.ExcludedNames, s.Cfg.ExcludedIDs,
					)
					acc[n.entry.UserID] = rec
					order = append(order, n.entry.UserID)
				}
				rec.Observe(n.isReply, n.topic, n.entry.CreatedAt)
				processed++
			}

			// replies are visited even when the parent has no attributable author
			for _, child := range n.entry.ChildReplies() {
				stack = append(stack, node{entry: child, isReply: true, topic: n.topic})
			}
		}
	}

	res := split(acc, order)
	res.EntriesProcessed = processed

	for _, ex := range res.Excluded {
		log.Info().Str("name", ex.UserName).Int("participations", ex.Total).
			Msg("staff forum activity excluded from student analysis")
	}
	log.Info().Int("entries", processed).Int("students", len(res.Students)).Msg("forum aggregation done")
	return res, nil
}

// split separates students from excluded staff, each descending by total
// with first-encounter order breaking ties
func split(acc map[int64]*domain.ActorRecord, order []int64) domain.Result {
	var res domain.Result
	for _, id := range order {
		rec := acc[id]
		if rec.Excluded {
			res.Excluded = append(res.Excluded, rec)
		} else {
			res.Students = append(res.Students, rec)
		}
	}
	sort.SliceStable(res.Students, func(i, j int) bool {
		return res.Students[i].Total > res.Students[j].Total
	})
	sort.SliceStable(res.Excluded, func(i, j int) bool {
		return res.Excluded[i].Total > res.Excluded[j].Total
	})
	return res
}
