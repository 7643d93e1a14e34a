package models

import (
	"time"
)

// Discussion rows form two-level threads on a challenge: RespondTo is nil
// for top-level comments and references a top-level row for replies. Replies
// to replies are not a thing.
type Discussion struct {
	ID          uint64  `gorm:"primarykey"`
	ChallengeID uint32  `gorm:"not null"`
	UserID      uint32  `gorm:"not null"`
	Text        string  `gorm:"type:text;not null"`
	RespondTo   *uint64 `gorm:"index"`
	CreatedAt   time.Time
}

func (Discussion) TableName() string {
	return "nxt_discussion"
}

// WriteupComment is the same two-level shape attached to a writeup.
type WriteupComment struct {
	ID        uint64  `gorm:"primarykey"`
	WriteupID uint32  `gorm:"not null"`
	UserID    uint32  `gorm:"not null"`
	Text      string  `gorm:"type:text;not null"`
	RespondTo *uint64 `gorm:"index"`
	CreatedAt time.Time
}

func (WriteupComment) TableName() string {
	return "nxt_writeup_comments"
}
