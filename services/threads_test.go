package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func reply(id, userID uint64, parent uint64) ThreadComment {
	p := parent
	return ThreadComment{ID: id, UserID: uint32(userID), RespondTo: &p}
}

func TestBuildThreadGroupsReplies(t *testing.T) {
	comments := []ThreadComment{
		{ID: 1, UserID: 1, Text: "first"},
		reply(2, 2, 1),
		{ID: 3, UserID: 3, Text: "second"},
		reply(4, 1, 3),
		reply(5, 2, 1),
	}

	thread := BuildThread(comments)

	assert.Len(t, thread, 2)
	assert.Equal(t, uint64(1), thread[0].ID)
	assert.Len(t, thread[0].Replies, 2)
	assert.Equal(t, uint64(2), thread[0].Replies[0].ID)
	assert.Equal(t, uint64(5), thread[0].Replies[1].ID)
	assert.Equal(t, uint64(3), thread[1].ID)
	assert.Len(t, thread[1].Replies, 1)
}

func TestBuildThreadFlattensDeepReplies(t *testing.T) {
	// A reply to a reply hangs off the top-level comment, not the reply.
	comments := []ThreadComment{
		{ID: 1, UserID: 1},
		reply(2, 2, 1),
		reply(3, 3, 2),
	}

	thread := BuildThread(comments)

	assert.Len(t, thread, 1)
	assert.Len(t, thread[0].Replies, 2)
	assert.Equal(t, uint64(3), thread[0].Replies[1].ID)
}

func TestBuildThreadPromotesOrphans(t *testing.T) {
	comments := []ThreadComment{
		{ID: 1, UserID: 1},
		reply(2, 2, 99),
	}

	thread := BuildThread(comments)

	assert.Len(t, thread, 2)
	assert.Equal(t, uint64(2), thread[1].ID)
	assert.Empty(t, thread[1].Replies)
}

func TestBuildThreadEmpty(t *testing.T) {
	assert.Empty(t, BuildThread(nil))
}
