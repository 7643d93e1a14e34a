package dto

import (
	"strings"

	"github.com/xndadelin/NXT/services"
)

type CreateTopicReq struct {
	Title            string               `json:"title"`
	ShortDescription string               `json:"short_description"`
	Content          string               `json:"content"`
	Quizzes          []services.QuizDraft `json:"quizzes"`
}

func (r *CreateTopicReq) Normalize() {
	r.Title = strings.TrimSpace(r.Title)
	r.ShortDescription = strings.TrimSpace(r.ShortDescription)
}

type QuizAnswerReq struct {
	Answer string `json:"answer" binding:"required"`
}
