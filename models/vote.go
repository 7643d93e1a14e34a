package models

import (
	"time"
)

// ChallengeVote holds one signed vote per (challenge, user) pair; repeated
// votes overwrite the direction (last write wins).
type ChallengeVote struct {
	ID          uint64 `gorm:"primarykey"`
	ChallengeID uint32 `gorm:"uniqueIndex:unique_challenge_user;not null"`
	UserID      uint32 `gorm:"uniqueIndex:unique_challenge_user;not null"`
	VoteType    int8   `gorm:"not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (ChallengeVote) TableName() string {
	return "nxt_challenge_votes"
}
