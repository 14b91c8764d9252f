package canvas

import (
	"context"
	json "encoding/json"
	"fmt"
	"net/url"

	perr "rollcall/internal/platform/errors"
)

// DiscussionTopics lists all discussion topics of a course
func (c *Client) DiscussionTopics(ctx context.Context, courseID int64) ([]Topic, error) {
	path := fmt.Sprintf("/courses/%d/discussion_topics", courseID)
	body, err := c.get(ctx, path)
	if err != nil {
		return nil, err
	}
	var out []Topic
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeJSON, "canvas topics payload not a topic list")
	}
	return out, nil
}

// TopicEntries fetches the entry tree of one discussion topic
func (c *Client) TopicEntries(ctx context.Context, courseID, topicID int64) ([]Entry, error) {
	path := fmt.Sprintf("/courses/%d/discussion_topics/%d/entries", courseID, topicID)
	body, err := c.get(ctx, path)
	if err != nil {
		return nil, err
	}
	var out []Entry
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeJSON, "canvas entries payload not an entry list")
	}
	return out, nil
}

// Conversations returns one page of conversation summaries for a course.
// Pages are 1-based; the caller stops on a short or empty page
func (c *Client) Conversations(ctx context.Context, courseID int64, page int) ([]ConversationSummary, error) {
	q := url.Values{}
	q.Set("per_page", fmt.Sprintf("%d", c.opts.PerPage))
	q.Set("page", fmt.Sprintf("%d", page))
	if courseID > 0 {
		q.Add("filter[]", fmt.Sprintf("course_%d", courseID))
	}
	body, err := c.get(ctx, "/conversations?"+q.Encode())
	if err != nil {
		return nil, err
	}
	var out []ConversationSummary
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeJSON, "canvas conversations payload not a list")
	}
	return out, nil
}

// ConversationDetail fetches the messages and participants of one conversation
func (c *Client) ConversationDetail(ctx context.Context, convID int64) (ConversationDetail, error) {
	path := fmt.Sprintf("/conversations/%d", convID)
	body, err := c.get(ctx, path)
	if err != nil {
		return ConversationDetail{}, err
	}
	var out ConversationDetail
	if err := json.Unmarshal(body, &out); err != nil {
		return ConversationDetail{}, perr.Wrapf(err, perr.ErrorCodeJSON, "canvas conversation payload undecodable")
	}
	return out, nil
}
