package models

import (
	"time"
)

type Writeup struct {
	ID               uint32    `gorm:"primarykey" json:"id"`
	Title            string    `gorm:"size:200;not null" json:"title"`
	ChallengeID      uint32    `gorm:"not null" json:"challenge_id"`
	AuthorID         uint32    `gorm:"not null" json:"author_id"`
	ContentMarkdown  string    `gorm:"type:text;not null" json:"content_markdown"`
	ShortDescription string    `gorm:"size:500" json:"short_description"`
	Published        bool      `gorm:"default:true" json:"published"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func (Writeup) TableName() string {
	return "nxt_writeup"
}
