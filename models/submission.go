package models

import (
	"time"
)

// Submission is the single attempt ledger row for a (user, challenge,
// contest-scope) triple. ContestID is NULL for the global board. Tries only
// grows; Done flips false to true at most once and further submissions are
// idempotent overwrites.
type Submission struct {
	ID          uint64  `gorm:"primarykey"`
	UserID      uint32  `gorm:"uniqueIndex:unique_user_challenge_contest;not null"`
	ChallengeID uint32  `gorm:"uniqueIndex:unique_user_challenge_contest;not null"`
	ContestID   *uint32 `gorm:"uniqueIndex:unique_user_challenge_contest"`
	Done        bool    `gorm:"default:false"`
	Tries       uint    `gorm:"default:0"`
	// FirstBlood is set when this row's solve was the challenge's first;
	// aggregation reads it back instead of recomputing.
	FirstBlood bool `gorm:"default:false"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (Submission) TableName() string {
	return "nxt_submission"
}
