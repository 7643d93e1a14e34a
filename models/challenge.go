package models

import (
	"time"
)

type ChallengeDifficulty string

const (
	ChallengeDifficultyEasy   ChallengeDifficulty = "easy"
	ChallengeDifficultyMedium ChallengeDifficulty = "medium"
	ChallengeDifficultyHard   ChallengeDifficulty = "hard"
	ChallengeDifficultyInsane ChallengeDifficulty = "insane"
)

type Challenge struct {
	ID              uint32              `gorm:"primarykey"`
	Title           string              `gorm:"size:100;unique;not null"`
	Category        string              `gorm:"size:50;not null"`
	Difficulty      ChallengeDifficulty `gorm:"type:enum('easy','medium','hard','insane');default:'medium'"`
	Description     string              `gorm:"type:text;not null"`
	Flag            string              `gorm:"size:255;not null"`
	CaseInsensitive bool                `gorm:"default:false"`
	// Points is the current (decayed) value; MaxPoints the base it decays
	// from. Points never increases once decay kicks in.
	Points    uint    `gorm:"not null"`
	MaxPoints uint    `gorm:"not null"`
	MinPoints uint    `gorm:"default:50"`
	Decay     float64 `gorm:"default:0"`
	Solves    uint    `gorm:"default:0"`
	Private   bool    `gorm:"default:false"`
	Hints     string  `gorm:"type:text"`
	Resource  string  `gorm:"size:2048"`
	Mitre     string  `gorm:"size:2048"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Challenge) TableName() string {
	return "nxt_challenge"
}
