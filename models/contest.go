package models

import (
	"time"
)

type ContestStatus string

const (
	ContestStatusPreparing ContestStatus = "preparing"
	ContestStatusRunning   ContestStatus = "running"
	ContestStatusEnded     ContestStatus = "ended"
)

type Contest struct {
	ID          uint32    `gorm:"primarykey" json:"id,omitempty"`
	Title       string    `gorm:"size:100;not null" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	Rules       string    `gorm:"type:text" json:"rules"`
	Banner      string    `gorm:"size:2048" json:"banner"`
	StartTime   time.Time `gorm:"not null" json:"start_time"`
	EndTime     time.Time `gorm:"not null" json:"end_time"`
	Key         string    `gorm:"size:36;unique;not null" json:"-"`
	CreatedBy   uint32    `gorm:"not null" json:"created_by"`
	CreatedAt   time.Time `json:"created_at,omitempty"`
	UpdatedAt   time.Time `json:"updated_at,omitempty"`
}

func (Contest) TableName() string {
	return "nxt_contest"
}

// Status is derived from the clock, never stored.
func (c Contest) Status(now time.Time) ContestStatus {
	if now.Before(c.StartTime) {
		return ContestStatusPreparing
	}
	if now.After(c.EndTime) {
		return ContestStatusEnded
	}
	return ContestStatusRunning
}

type ContestParticipant struct {
	ID        uint32 `gorm:"primarykey"`
	ContestID uint32 `gorm:"uniqueIndex:unique_contest_user;not null"`
	UserID    uint32 `gorm:"uniqueIndex:unique_contest_user;not null"`
	JoinedAt  time.Time
}

func (ContestParticipant) TableName() string {
	return "nxt_contest_participants"
}

// ContestChallenge links a challenge into a contest with contest-specific
// point configuration, independent of the challenge's global values.
type ContestChallenge struct {
	ID          uint32  `gorm:"primarykey" json:"id,omitempty"`
	ContestID   uint32  `gorm:"uniqueIndex:unique_contest_challenge;not null" json:"contest_id"`
	ChallengeID uint32  `gorm:"uniqueIndex:unique_contest_challenge;not null" json:"challenge_id"`
	Points      uint    `gorm:"not null" json:"points"`
	MaxPoints   uint    `gorm:"not null" json:"max_points"`
	Decay       float64 `gorm:"default:0" json:"decay"`
	Solves      uint    `gorm:"default:0" json:"solves"`
}

func (ContestChallenge) TableName() string {
	return "nxt_contest_challenges"
}
