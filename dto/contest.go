package dto

import (
	"strings"
	"time"
)

type ContestChallengeConfig struct {
	ChallengeID uint32  `json:"challenge_id"`
	Points      uint    `json:"points"`
	MaxPoints   uint    `json:"max_points"`
	Decay       float64 `json:"decay"`
}

type UpsertContestReq struct {
	Title       string                   `json:"title"`
	Description string                   `json:"description"`
	Rules       string                   `json:"rules"`
	Banner      string                   `json:"banner"`
	StartTime   time.Time                `json:"start_time" binding:"required"`
	EndTime     time.Time                `json:"end_time" binding:"required"`
	Challenges  []ContestChallengeConfig `json:"challenges"`
}

func (r *UpsertContestReq) Normalize() {
	r.Title = strings.TrimSpace(r.Title)
	for i := range r.Challenges {
		if r.Challenges[i].MaxPoints == 0 {
			r.Challenges[i].MaxPoints = r.Challenges[i].Points
		}
	}
}

type JoinContestReq struct {
	Key string `json:"key" binding:"required"`
}

type ContestItemResp struct {
	ID            uint32 `json:"id"`
	Title         string `json:"title"`
	Description   string `json:"description"`
	Banner        string `json:"banner"`
	StartTime     string `json:"start_time"`
	EndTime       string `json:"end_time"`
	Status        string `json:"status"`
	Participating bool   `json:"participating"`
}

type ContestChallengeResp struct {
	ChallengeID uint32 `json:"challenge_id"`
	Title       string `json:"title"`
	Category    string `json:"category"`
	Difficulty  string `json:"difficulty"`
	Points      uint   `json:"points"`
}

type ContestDetailResp struct {
	ID          uint32                 `json:"id"`
	Title       string                 `json:"title"`
	Description string                 `json:"description"`
	Rules       string                 `json:"rules"`
	Banner      string                 `json:"banner"`
	StartTime   string                 `json:"start_time"`
	EndTime     string                 `json:"end_time"`
	Status      string                 `json:"status"`
	HasEnded    bool                   `json:"has_ended"`
	Challenges  []ContestChallengeResp `json:"challenges"`
}
