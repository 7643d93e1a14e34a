package services

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAssembleLeaderboardOrdering(t *testing.T) {
	scores := map[uint32]*UserScore{
		3: {UserID: 3, Username: "carol", Points: 150},
		1: {UserID: 1, Username: "alice", Points: 300},
		2: {UserID: 2, Username: "bob", Points: 300},
	}

	entries := AssembleLeaderboard(scores)

	assert.Len(t, entries, 3)
	// Ties break on ascending user id, ranks stay distinct.
	assert.Equal(t, LeaderboardEntry{Rank: 1, UserID: 1, Username: "alice", Points: 300}, entries[0])
	assert.Equal(t, LeaderboardEntry{Rank: 2, UserID: 2, Username: "bob", Points: 300}, entries[1])
	assert.Equal(t, LeaderboardEntry{Rank: 3, UserID: 3, Username: "carol", Points: 150}, entries[2])
}

func TestAssembleLeaderboardEmpty(t *testing.T) {
	entries := AssembleLeaderboard(map[uint32]*UserScore{})
	assert.Empty(t, entries)
}

func TestPaginateLeaderboard(t *testing.T) {
	entries := make([]LeaderboardEntry, 25)
	for i := range entries {
		entries[i] = LeaderboardEntry{Rank: i + 1, UserID: uint32(i + 1), Username: fmt.Sprintf("u%d", i+1)}
	}

	page, num, total := PaginateLeaderboard(entries, 1, 10)
	assert.Len(t, page, 10)
	assert.Equal(t, 1, num)
	assert.Equal(t, 3, total)
	assert.Equal(t, 1, page[0].Rank)

	page, num, _ = PaginateLeaderboard(entries, 3, 10)
	assert.Len(t, page, 5)
	assert.Equal(t, 3, num)
	assert.Equal(t, 21, page[0].Rank)
}

func TestPaginateLeaderboardClampsOutOfRange(t *testing.T) {
	entries := make([]LeaderboardEntry, 12)
	for i := range entries {
		entries[i] = LeaderboardEntry{Rank: i + 1, UserID: uint32(i + 1)}
	}

	page, num, total := PaginateLeaderboard(entries, 99, 10)
	assert.Equal(t, 2, num)
	assert.Equal(t, 2, total)
	assert.Len(t, page, 2)

	page, num, _ = PaginateLeaderboard(entries, 0, 10)
	assert.Equal(t, 1, num)
	assert.Len(t, page, 10)
}

func TestPaginateLeaderboardEmpty(t *testing.T) {
	page, num, total := PaginateLeaderboard(nil, 1, 10)
	assert.Empty(t, page)
	assert.Equal(t, 1, num)
	assert.Equal(t, 1, total)
}
