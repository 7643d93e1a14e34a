package dto

import "strings"

// ========== request DTOs ==========

type UpsertChallengeReq struct {
	ID              uint32  `json:"id"`
	Title           string  `json:"title"`
	Category        string  `json:"category"`
	Difficulty      string  `json:"difficulty"` // easy / medium / hard / insane
	Description     string  `json:"description"`
	Flag            string  `json:"flag"`
	CaseInsensitive bool    `json:"case_insensitive"`
	Points          uint    `json:"points"`
	MinPoints       uint    `json:"min_points"`
	Decay           float64 `json:"decay"`
	Private         bool    `json:"private"`
	Hints           string  `json:"hints"`
	Resource        string  `json:"resource"`
	Mitre           string  `json:"mitre"`
}

func (r *UpsertChallengeReq) Normalize() {
	r.Title = strings.TrimSpace(r.Title)
	r.Category = strings.TrimSpace(r.Category)
	r.Description = strings.TrimSpace(r.Description)
	r.Flag = strings.TrimSpace(r.Flag)
	r.Difficulty = strings.ToLower(strings.TrimSpace(r.Difficulty))
	if r.Difficulty == "" {
		r.Difficulty = "medium"
	}
}

type SubmitFlagReq struct {
	Flag      string `json:"flag"`
	FlagUpper string `json:"Flag"`
}

func (r *SubmitFlagReq) Normalize() {
	if r.Flag == "" && r.FlagUpper != "" {
		r.Flag = r.FlagUpper
	}
	r.Flag = strings.TrimSpace(r.Flag)
}

type VoteReq struct {
	VoteType int8 `json:"vote_type" binding:"required,oneof=1 -1"`
}

type AddCommentReq struct {
	Text      string  `json:"text" binding:"required"`
	RespondTo *uint64 `json:"respond_to"`
}

// ========== response DTOs ==========

type ChallengeItemResp struct {
	ID         uint32  `json:"id"`
	Title      string  `json:"title"`
	Category   string  `json:"category"`
	Difficulty string  `json:"difficulty"`
	Points     uint    `json:"points"`
	Solves     uint    `json:"solves"`
	Accuracy   float64 `json:"accuracy"`
	Upvotes    int64   `json:"upvotes"`
	Downvotes  int64   `json:"downvotes"`
	SolvedByMe bool    `json:"solved_by_me"`
	CreatedAt  string  `json:"created_at"`
}

type ChallengeDetailResp struct {
	ID          uint32  `json:"id"`
	Title       string  `json:"title"`
	Category    string  `json:"category"`
	Difficulty  string  `json:"difficulty"`
	Description string  `json:"description"`
	Points      uint    `json:"points"`
	MaxPoints   uint    `json:"max_points"`
	Decay       float64 `json:"decay"`
	Solves      uint    `json:"solves"`
	Hints       string  `json:"hints,omitempty"`
	Resource    string  `json:"resource,omitempty"`
	Mitre       string  `json:"mitre,omitempty"`
	Done        bool    `json:"done"`
	CreatedAt   string  `json:"created_at"`
}
