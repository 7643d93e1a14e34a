package services

import (
	"time"
)

// ThreadComment is a flat comment row from either discussion table.
type ThreadComment struct {
	ID        uint64    `json:"id"`
	UserID    uint32    `json:"user_id"`
	Username  string    `json:"username"`
	Text      string    `json:"text"`
	RespondTo *uint64   `json:"respond_to,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// ThreadedComment is a top-level comment with its replies attached.
type ThreadedComment struct {
	ThreadComment
	Replies []ThreadComment `json:"replies"`
}

// BuildThread splits a flat, chronologically ordered comment list into
// top-level comments and their replies with a single linear scan. Threads
// are two levels deep only; a reply whose parent is itself a reply is hung
// off that parent's top-level comment, and orphaned replies are promoted to
// top level rather than dropped.
func BuildThread(comments []ThreadComment) []ThreadedComment {
	topLevel := make([]ThreadedComment, 0, len(comments))
	index := make(map[uint64]int)       // comment id -> position in topLevel
	parentOf := make(map[uint64]uint64) // reply id -> top-level id

	for _, c := range comments {
		if c.RespondTo == nil {
			index[c.ID] = len(topLevel)
			topLevel = append(topLevel, ThreadedComment{ThreadComment: c})
			continue
		}

		parent := *c.RespondTo
		if top, ok := parentOf[parent]; ok {
			parent = top
		}
		pos, ok := index[parent]
		if !ok {
			index[c.ID] = len(topLevel)
			topLevel = append(topLevel, ThreadedComment{ThreadComment: c})
			continue
		}
		topLevel[pos].Replies = append(topLevel[pos].Replies, c)
		parentOf[c.ID] = parent
	}

	return topLevel
}
