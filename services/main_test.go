package services

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/xndadelin/NXT/models"
)

// newTestDB opens a fresh in-memory database with the full schema so each
// test starts from a clean slate.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Challenge{},
		&models.Submission{},
		&models.Contest{},
		&models.ContestParticipant{},
		&models.ContestChallenge{},
		&models.Topic{},
		&models.TopicSection{},
		&models.QuizQuestion{},
	))
	return db
}

func createTestUser(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()

	user := &models.User{
		Username: username,
		Password: "password123",
		Email:    username + "@example.com",
	}
	require.NoError(t, db.Create(user).Error)
	return user
}
