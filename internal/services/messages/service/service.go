// Package service provides the message aggregation service implementation
package service

import (
	"context"
	"sort"
	"strconv"
	"time"

	"rollcall/internal/adapters/ingest/canvas"
	"rollcall/internal/core/identity"
	"rollcall/internal/platform/logger"
	"rollcall/internal/services/messages/domain"
)

// Timestamp layouts used by the conversation listing. The listing carries
// full ISO-8601 timestamps; the date filter compares only the first 19
// characters against midnight of the configured start date
const (
	cutoffLayout    = "2006-01-02"
	timestampLayout = "2006-01-02T15:04:05"
)

// Config holds configuration options for the message aggregator
type Config struct {
	CourseID int64

	// StartDate filters conversations whose last message predates it.
	// Empty disables the filter. Format 2006-01-02
	StartDate string

	ExcludedNames []string
	ExcludedIDs   []string
}

// Service paginates the conversation listing and aggregates one
// ActorRecord per message author
type Service struct {
	Conv domain.ConversationsPort
	Cfg  Config
}

// New constructs the message aggregation service
func New(conv domain.ConversationsPort, cfg Config) *Service {
	if conv == nil {
		panic("messages.Service requires a non-nil ConversationsPort")
	}
	return &Service{Conv: conv, Cfg: cfg}
}

// Aggregate pages through the course's conversations sequentially.
//
// Pagination stops on the first short or empty page. A failed page fetch
// terminates pagination and the partial result is returned without error.
// A failed conversation detail fetch only skips that conversation
func (s *Service) Aggregate(ctx context.Context) (domain.Result, error) {
	log := logger.C(ctx).With().Str("component", "messages").Logger()

	cutoff, haveCutoff := s.cutoff()
	if haveCutoff {
		log.Info().Str("start_date", s.Cfg.StartDate).Msg("aggregating direct messages")
	} else {
		log.Info().Msg("aggregating direct messages, no date filter")
	}

	acc := make(map[int64]*domain.ActorRecord)
	var order []int64
	conversations := 0
	processed := 0

	perPage := s.Conv.PerPage()
	for page := 1; ; page++ {
		summaries, err := s.Conv.Conversations(ctx, s.Cfg.CourseID, page)
		if err != nil {
			log.Warn().Err(err).Int("page", page).
				Msg("conversation page fetch failed, keeping partial result")
			break
		}
		if len(summaries) == 0 {
			break
		}
		log.Debug().Int("page", page).Int("conversations", len(summaries)).Msg("processing page")

		for _, summary := range summaries {
			if haveCutoff && before(summary.LastMessageAt, cutoff) {
				continue
			}
			conversations++

			detail, err := s.Conv.ConversationDetail(ctx, summary.ID)
			if err != nil {
				log.Warn().Err(err).Int64("conversation_id", summary.ID).
					Msg("skipping conversation, detail fetch failed")
				continue
			}

			// Messages arrive newest-first, so the conversation opener
			// is the last element
			for i, msg := range detail.Messages {
				if msg.AuthorID == 0 {
					continue
				}
				rec, ok := acc[msg.AuthorID]
				if !ok {
					name := authorName(detail, msg.AuthorID)
					rec = &domain.ActorRecord{UserID: msg.AuthorID, UserName: name}
					rec.Excluded = identity.Excluded(
						name,
						strconv.FormatInt(msg.AuthorID, 10),
						s.Cfg.ExcludedNames, s.Cfg.ExcludedIDs,
					)
					acc[msg.AuthorID] = rec
					order = append(order, msg.AuthorID)
				}
				rec.Observe(i == len(detail.Messages)-1, detail.ID, msg.CreatedAt)
				processed++
			}
		}

		if len(summaries) < perPage {
			break
		}
	}

	res := split(acc, order)
	res.ConversationsProcessed = conversations
	res.MessagesProcessed = processed

	for _, ex := range res.Excluded {
		log.Info().Str("name", ex.UserName).Int("messages", ex.Total).
			Msg("staff message activity excluded from student analysis")
	}
	log.Info().Int("conversations", conversations).Int("messages", processed).
		Int("students", len(res.Students)).Msg("message aggregation done")
	return res, nil
}

// cutoff parses the configured start date into midnight of that day
func (s *Service) cutoff() (time.Time, bool) {
	if s.Cfg.StartDate == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(cutoffLayout, s.Cfg.StartDate)
	if err != nil {
		logger.Named("messages").Warn().Str("start_date", s.Cfg.StartDate).
			Msg("unparsable start date, date filter disabled")
		return time.Time{}, false
	}
	return t, true
}

// before reports whether a conversation's last activity predates the cutoff.
// Empty or unparsable timestamps keep the conversation in scope
func before(lastMessageAt string, cutoff time.Time) bool {
	if len(lastMessageAt) < len(timestampLayout) {
		return false
	}
	t, err := time.Parse(timestampLayout, lastMessageAt[:len(timestampLayout)])
	if err != nil {
		return false
	}
	return t.Before(cutoff)
}

// authorName resolves an author id through the conversation's participant
// list. Authors absent from the list keep a placeholder name
func authorName(detail canvas.ConversationDetail, authorID int64) string {
	for _, p := range detail.Participants {
		if p.ID == authorID {
			if p.Name == "" {
				return "Unknown User"
			}
			return p.Name
		}
	}
	return "Unknown User"
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
