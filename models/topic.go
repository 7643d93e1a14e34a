package models

import (
	"time"
)

// Topic is a learning document: ordered sections forming a tree via parent
// references, each section carrying zero or more inline quiz questions.
type Topic struct {
	ID               uint32    `gorm:"primarykey" json:"id"`
	Title            string    `gorm:"size:200;not null" json:"title"`
	ShortDescription string    `gorm:"size:500" json:"short_description"`
	AuthorID         uint32    `gorm:"not null" json:"author_id"`
	Published        bool      `gorm:"default:true" json:"published"`
	CreatedAt        time.Time `json:"created_at"`
}

func (Topic) TableName() string {
	return "nxt_topic"
}

type TopicSection struct {
	ID      uint32 `gorm:"primarykey" json:"id"`
	TopicID uint32 `gorm:"index;not null" json:"topic_id"`
	Title   string `gorm:"size:200;not null" json:"title"`
	Anchor  string `gorm:"size:200;not null" json:"anchor"`
	Content string `gorm:"type:text" json:"content"`
	// Level is the heading depth (1-6); ParentID points at the nearest
	// shallower section, nil for top-level ones.
	Level      int     `gorm:"not null" json:"level"`
	ParentID   *uint32 `gorm:"index" json:"parent_id"`
	OrderIndex int     `gorm:"not null" json:"order_index"`
}

func (TopicSection) TableName() string {
	return "nxt_topic_sections"
}

type QuizQuestion struct {
	ID        uint32 `gorm:"primarykey" json:"id"`
	SectionID uint32 `gorm:"index;not null" json:"section_id"`
	Question  string `gorm:"type:text;not null" json:"question"`
	Answer    string `gorm:"size:500;not null" json:"-"`
}

func (QuizQuestion) TableName() string {
	return "nxt_quiz_questions"
}
