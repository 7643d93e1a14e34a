package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAggregateCountsOnlySolvedPoints(t *testing.T) {
	entries := []LedgerEntry{
		{UserID: 1, Username: "alice", ChallengeID: 1, Points: 100, Done: true, Tries: 2, FirstBlood: true},
		{UserID: 1, Username: "alice", ChallengeID: 2, Points: 200, Done: false, Tries: 5},
		{UserID: 1, Username: "alice", ChallengeID: 3, Points: 300, Done: true, Tries: 1},
		{UserID: 2, Username: "bob", ChallengeID: 1, Points: 100, Done: false, Tries: 3},
	}

	scores := Aggregate(entries)

	alice := scores[1]
	assert.Equal(t, uint(400), alice.Points)
	assert.Equal(t, uint(8), alice.Attempts)
	assert.Equal(t, uint(2), alice.SolvedCount)
	assert.Equal(t, uint(1), alice.UnsolvedCount)
	assert.Equal(t, uint(1), alice.FirstBloodCount)

	bob := scores[2]
	assert.Equal(t, uint(0), bob.Points)
	assert.Equal(t, uint(3), bob.Attempts)
	assert.Equal(t, uint(0), bob.SolvedCount)
}

func TestAccuracy(t *testing.T) {
	s := &UserScore{SolvedCount: 1, Attempts: 3}
	assert.Equal(t, 33.33, s.Accuracy())

	s = &UserScore{SolvedCount: 2, Attempts: 2}
	assert.Equal(t, 100.0, s.Accuracy())
}

func TestAccuracyZeroAttempts(t *testing.T) {
	s := &UserScore{}
	assert.Equal(t, 0.0, s.Accuracy())
}

func TestZeroFillAddsMissingUsers(t *testing.T) {
	scores := Aggregate([]LedgerEntry{
		{UserID: 1, Username: "alice", ChallengeID: 1, Points: 100, Done: true, Tries: 1},
	})

	ZeroFill(scores, []ScoreboardUser{
		{ID: 1, Username: "alice"},
		{ID: 2, Username: "bob"},
	})

	assert.Len(t, scores, 2)
	assert.Equal(t, uint(100), scores[1].Points)
	assert.Equal(t, uint(0), scores[2].Points)
	assert.Equal(t, "bob", scores[2].Username)
}
