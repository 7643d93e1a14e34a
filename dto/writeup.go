package dto

import "strings"

type UpsertWriteupReq struct {
	Title            string `json:"title"`
	ChallengeID      uint32 `json:"challenge_id"`
	ContentMarkdown  string `json:"content_markdown"`
	ShortDescription string `json:"short_description"`
	Published        *bool  `json:"published"`
}

func (r *UpsertWriteupReq) Normalize() {
	r.Title = strings.TrimSpace(r.Title)
	r.ShortDescription = strings.TrimSpace(r.ShortDescription)
}

type WriteupItemResp struct {
	ID               uint32 `json:"id"`
	Title            string `json:"title"`
	ShortDescription string `json:"short_description"`
	ChallengeID      uint32 `json:"challenge_id"`
	ChallengeTitle   string `json:"challenge_title"`
	CreatedAt        string `json:"created_at"`
}
