package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/xndadelin/NXT/models"
)

func createTestChallenge(t *testing.T, db *gorm.DB, title string, points uint, decay float64) *models.Challenge {
	t.Helper()

	ch := &models.Challenge{
		Title:       title,
		Category:    "web",
		Description: "test challenge",
		Flag:        "NXT{correct}",
		Points:      points,
		MaxPoints:   points,
		MinPoints:   100,
		Decay:       decay,
	}
	require.NoError(t, db.Create(ch).Error)
	return ch
}

func TestSubmitFlagWrong(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "alice")
	ch := createTestChallenge(t, db, "warmup", 100, 0)

	res, err := SubmitFlag(db, user.ID, ch.ID, nil, "NXT{wrong}")
	require.NoError(t, err)

	assert.False(t, res.Correct)
	assert.False(t, res.AlreadySolved)
	assert.Equal(t, uint(1), res.Tries)
	assert.Equal(t, uint(0), res.PointsAwarded)

	var sub models.Submission
	require.NoError(t, db.Where("user_id = ?", user.ID).First(&sub).Error)
	assert.False(t, sub.Done)
	assert.Equal(t, uint(1), sub.Tries)

	var u models.User
	require.NoError(t, db.First(&u, user.ID).Error)
	assert.Equal(t, uint(0), u.Points)
}

func TestSubmitFlagSolveAfterFailures(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "alice")
	ch := createTestChallenge(t, db, "warmup", 100, 0)

	for i := 0; i < 3; i++ {
		_, err := SubmitFlag(db, user.ID, ch.ID, nil, "NXT{wrong}")
		require.NoError(t, err)
	}

	res, err := SubmitFlag(db, user.ID, ch.ID, nil, "NXT{correct}")
	require.NoError(t, err)

	assert.True(t, res.Correct)
	assert.Equal(t, uint(4), res.Tries)
	assert.Equal(t, uint(100), res.PointsAwarded)
	assert.True(t, res.FirstBlood)

	var sub models.Submission
	require.NoError(t, db.Where("user_id = ?", user.ID).First(&sub).Error)
	assert.True(t, sub.Done)
	assert.Equal(t, uint(4), sub.Tries)
	assert.True(t, sub.FirstBlood)

	var u models.User
	require.NoError(t, db.First(&u, user.ID).Error)
	assert.Equal(t, uint(100), u.Points)

	var c models.Challenge
	require.NoError(t, db.First(&c, ch.ID).Error)
	assert.Equal(t, uint(1), c.Solves)
}

func TestSubmitFlagIdempotentAfterSolve(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "alice")
	ch := createTestChallenge(t, db, "warmup", 100, 0)

	_, err := SubmitFlag(db, user.ID, ch.ID, nil, "NXT{correct}")
	require.NoError(t, err)

	// Re-submitting after a solve keeps counting tries but awards nothing,
	// correct or not.
	res, err := SubmitFlag(db, user.ID, ch.ID, nil, "NXT{correct}")
	require.NoError(t, err)
	assert.True(t, res.AlreadySolved)
	assert.Equal(t, uint(2), res.Tries)
	assert.Equal(t, uint(0), res.PointsAwarded)

	res, err = SubmitFlag(db, user.ID, ch.ID, nil, "NXT{wrong}")
	require.NoError(t, err)
	assert.True(t, res.AlreadySolved)
	assert.Equal(t, uint(3), res.Tries)

	var u models.User
	require.NoError(t, db.First(&u, user.ID).Error)
	assert.Equal(t, uint(100), u.Points)

	var c models.Challenge
	require.NoError(t, db.First(&c, ch.ID).Error)
	assert.Equal(t, uint(1), c.Solves)
}

func TestSubmitFlagCaseInsensitive(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "alice")
	ch := createTestChallenge(t, db, "warmup", 100, 0)
	require.NoError(t, db.Model(ch).Update("case_insensitive", true).Error)

	res, err := SubmitFlag(db, user.ID, ch.ID, nil, "nxt{CORRECT}")
	require.NoError(t, err)
	assert.True(t, res.Correct)
}

func TestSubmitFlagDecayWriteback(t *testing.T) {
	db := newTestDB(t)
	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")
	carol := createTestUser(t, db, "carol")
	ch := createTestChallenge(t, db, "crypto-hard", 500, 0.5)

	// First solver gets the full value; the writeback at one solve still
	// equals the base.
	res, err := SubmitFlag(db, alice.ID, ch.ID, nil, "NXT{correct}")
	require.NoError(t, err)
	assert.Equal(t, uint(500), res.PointsAwarded)
	assert.True(t, res.FirstBlood)

	var c models.Challenge
	require.NoError(t, db.First(&c, ch.ID).Error)
	assert.Equal(t, uint(500), c.Points)

	// The second solve is awarded before its own decay lands.
	res, err = SubmitFlag(db, bob.ID, ch.ID, nil, "NXT{correct}")
	require.NoError(t, err)
	assert.Equal(t, uint(500), res.PointsAwarded)
	assert.False(t, res.FirstBlood)

	require.NoError(t, db.First(&c, ch.ID).Error)
	assert.Equal(t, uint(371), c.Points)

	res, err = SubmitFlag(db, carol.ID, ch.ID, nil, "NXT{correct}")
	require.NoError(t, err)
	assert.Equal(t, uint(371), res.PointsAwarded)
}

func TestSubmitFlagContestScope(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "alice")
	ch := createTestChallenge(t, db, "warmup", 100, 0)

	contestID := uint32(1)
	link := models.ContestChallenge{
		ContestID:   contestID,
		ChallengeID: ch.ID,
		Points:      300,
		MaxPoints:   300,
		Decay:       0.5,
	}
	require.NoError(t, db.Create(&link).Error)

	res, err := SubmitFlag(db, user.ID, ch.ID, &contestID, "NXT{correct}")
	require.NoError(t, err)
	assert.True(t, res.Correct)
	assert.Equal(t, uint(300), res.PointsAwarded)
	assert.True(t, res.FirstBlood)

	// Contest solves decay the contest link, not the challenge, and never
	// touch the user's cumulative points.
	var c models.Challenge
	require.NoError(t, db.First(&c, ch.ID).Error)
	assert.Equal(t, uint(0), c.Solves)
	assert.Equal(t, uint(100), c.Points)

	var l models.ContestChallenge
	require.NoError(t, db.First(&l, link.ID).Error)
	assert.Equal(t, uint(1), l.Solves)

	var u models.User
	require.NoError(t, db.First(&u, user.ID).Error)
	assert.Equal(t, uint(0), u.Points)

	var sub models.Submission
	require.NoError(t, db.Where("user_id = ?", user.ID).First(&sub).Error)
	require.NotNil(t, sub.ContestID)
	assert.Equal(t, contestID, *sub.ContestID)
}

func TestSubmitFlagScopesAreIndependent(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "alice")
	ch := createTestChallenge(t, db, "warmup", 100, 0)

	contestID := uint32(1)
	require.NoError(t, db.Create(&models.ContestChallenge{
		ContestID:   contestID,
		ChallengeID: ch.ID,
		Points:      300,
		MaxPoints:   300,
	}).Error)

	_, err := SubmitFlag(db, user.ID, ch.ID, &contestID, "NXT{correct}")
	require.NoError(t, err)

	// Solving in the contest leaves the global row untouched; a global
	// solve of the same challenge is a fresh first blood.
	res, err := SubmitFlag(db, user.ID, ch.ID, nil, "NXT{correct}")
	require.NoError(t, err)
	assert.False(t, res.AlreadySolved)
	assert.Equal(t, uint(1), res.Tries)
	assert.Equal(t, uint(100), res.PointsAwarded)

	var count int64
	require.NoError(t, db.Model(&models.Submission{}).Where("user_id = ?", user.ID).Count(&count).Error)
	assert.Equal(t, int64(2), count)
}

func TestSubmitFlagChallengeNotFound(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "alice")

	_, err := SubmitFlag(db, user.ID, 999, nil, "NXT{correct}")
	assert.ErrorIs(t, err, ErrChallengeNotFound)
}

func TestSubmitFlagNotInContest(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "alice")
	ch := createTestChallenge(t, db, "warmup", 100, 0)

	contestID := uint32(7)
	_, err := SubmitFlag(db, user.ID, ch.ID, &contestID, "NXT{correct}")
	assert.ErrorIs(t, err, ErrNotInContest)
}
