package database

import (
	"log"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"github.com/xndadelin/NXT/config"
	"github.com/xndadelin/NXT/models"
)

var DB *gorm.DB

func Connect(cfg *config.Config) {
	var err error
	DB, err = gorm.Open(mysql.Open(cfg.DB.DSN()), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	sqlDB, err := DB.DB()
	if err != nil {
		log.Fatal("Failed to get underlying sql.DB:", err)
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	// MySQL closes idle connections after wait_timeout; recycle ours first.
	sqlDB.SetConnMaxLifetime(time.Hour)

	log.Println("Database connection successfully established and connection pool configured.")
}

func MigrateTables() {
	err := DB.AutoMigrate(
		&models.User{},
		&models.Challenge{},
		&models.Submission{},
		&models.Contest{},
		&models.ContestParticipant{},
		&models.ContestChallenge{},
		&models.ChallengeVote{},
		&models.Discussion{},
		&models.Writeup{},
		&models.WriteupComment{},
		&models.Topic{},
		&models.TopicSection{},
		&models.QuizQuestion{},
	)
	if err != nil {
		log.Fatal("Failed to migrate database:", err)
	}
	log.Println("Database migration completed.")
}
