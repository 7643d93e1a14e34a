package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xndadelin/NXT/models"
)

func TestLoadLedgerScopes(t *testing.T) {
	db := newTestDB(t)
	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")
	ch := createTestChallenge(t, db, "warmup", 100, 0)

	contestID := uint32(1)
	require.NoError(t, db.Create(&models.ContestChallenge{
		ContestID:   contestID,
		ChallengeID: ch.ID,
		Points:      300,
		MaxPoints:   300,
	}).Error)

	require.NoError(t, db.Create(&models.Submission{
		UserID: alice.ID, ChallengeID: ch.ID, Done: true, Tries: 2, FirstBlood: true,
	}).Error)
	require.NoError(t, db.Create(&models.Submission{
		UserID: bob.ID, ChallengeID: ch.ID, Done: false, Tries: 4,
	}).Error)
	require.NoError(t, db.Create(&models.Submission{
		UserID: alice.ID, ChallengeID: ch.ID, ContestID: &contestID, Done: true, Tries: 1,
	}).Error)

	// Global scope sees only NULL-contest rows at the challenge's value.
	entries, err := LoadLedger(db, LedgerScope{})
	require.NoError(t, err)
	require.Len(t, entries, 2)
	for _, e := range entries {
		assert.Equal(t, uint(100), e.Points)
	}

	// Contest scope sees only that contest's rows at the link's value.
	entries, err = LoadLedger(db, LedgerScope{ContestID: &contestID})
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, alice.ID, entries[0].UserID)
	assert.Equal(t, "alice", entries[0].Username)
	assert.Equal(t, uint(300), entries[0].Points)

	// UserID narrows further.
	entries, err = LoadLedger(db, LedgerScope{UserID: &bob.ID})
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, uint(4), entries[0].Tries)
	assert.False(t, entries[0].Done)
}
