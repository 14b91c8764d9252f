// Package service merges per-channel aggregation results into unified
// participation records
package service

import (
	"sort"
	"strconv"

	"rollcall/internal/platform/logger"
	forumdom "rollcall/internal/services/forum/domain"
	msgdom "rollcall/internal/services/messages/domain"
	"rollcall/internal/services/reconcile/domain"
)

// Merge joins forum and message records by user id. Identities present on
// one side only are carried through with the other channel zeroed. The
// forum side names the actor when both sides carry a name.
//
// Output is sorted descending by total participations, ties keeping
// first-encounter order (forum records before message-only records)
func Merge(forum []*forumdom.ActorRecord, messages []*msgdom.ActorRecord) []domain.UnifiedRecord {
	acc := make(map[string]*domain.UnifiedRecord)
	var order []string

	for _, f := range forum {
		id := strconv.FormatInt(f.UserID, 10)
		acc[id] = &domain.UnifiedRecord{
			UserID:         id,
			UserName:       f.UserName,
			ForumTotal:     f.Total,
			ForumPosts:     f.Posts,
			ForumReplies:   f.Replies,
			ForumTopics:    f.TopicsCount(),
			FirstForumSeen: f.FirstSeen,
			LastForumSeen:  f.LastSeen,
		}
		order = append(order, id)
	}

	for _, m := range messages {
		id := strconv.FormatInt(m.UserID, 10)
		rec, ok := acc[id]
		if !ok {
			rec = &domain.UnifiedRecord{UserID: id, UserName: m.UserName}
			acc[id] = rec
			order = append(order, id)
		}
		rec.MessagesTotal = m.Total
		rec.MessagesInitiated = m.Initiated
		rec.MessagesConversations = m.ConversationsCount()
		rec.FirstMessageSeen = m.FirstSeen
		rec.LastMessageSeen = m.LastSeen
	}

	out := make([]domain.UnifiedRecord, 0, len(order))
	for _, id := range order {
		rec := acc[id]
		rec.TotalParticipations = rec.ForumTotal + rec.MessagesTotal
		rec.ActivityLevel = domain.LevelFor(rec.TotalParticipations)
		rec.CommunicationPreference = domain.PreferenceFor(rec.ForumTotal, rec.MessagesTotal)
		rec.UsesBothChannels = rec.ForumTotal > 0 && rec.MessagesTotal > 0
		out = append(out, *rec)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].TotalParticipations > out[j].TotalParticipations
	})

	log := logger.Named("reconcile")
	withForum, withMessages, both := 0, 0, 0
	for i := range out {
		if out[i].ForumTotal > 0 {
			withForum++
		}
		if out[i].MessagesTotal > 0 {
			withMessages++
		}
		if out[i].UsesBothChannels {
			both++
		}
	}
	log.Info().Int("students", len(out)).Int("with_forum", withForum).
		Int("with_messages", withMessages).Int("both_channels", both).
		Msg("channels reconciled")
	return out
}
