package services

import (
	"math"
)

// UserScore is the per-user fold of the submission ledger. Unsolved rows
// contribute zero points but still count toward attempts and accuracy.
type UserScore struct {
	UserID          uint32
	Username        string
	Points          uint
	Attempts        uint
	SolvedCount     uint
	UnsolvedCount   uint
	FirstBloodCount uint
}

// Accuracy is solvedCount/attempts as a percentage rounded to 2 decimal
// places, 0 when there are no attempts.
func (s *UserScore) Accuracy() float64 {
	if s.Attempts == 0 {
		return 0
	}
	return math.Round(float64(s.SolvedCount)/float64(s.Attempts)*100*100) / 100
}

// Aggregate groups ledger entries by user. Users with no submissions are
// absent from the map; callers wanting a full roster zero-fill afterwards
// (see ZeroFill).
func Aggregate(entries []LedgerEntry) map[uint32]*UserScore {
	scores := make(map[uint32]*UserScore)
	for _, e := range entries {
		s, ok := scores[e.UserID]
		if !ok {
			s = &UserScore{UserID: e.UserID, Username: e.Username}
			scores[e.UserID] = s
		}
		s.Attempts += e.Tries
		if e.Done {
			s.Points += e.Points
			s.SolvedCount++
			if e.FirstBlood {
				s.FirstBloodCount++
			}
		} else {
			s.UnsolvedCount++
		}
	}
	return scores
}

// ZeroFill adds an empty score for every listed user missing from the map.
// The global leaderboard lists all users, not just those with submissions.
func ZeroFill(scores map[uint32]*UserScore, users []ScoreboardUser) {
	for _, u := range users {
		if _, ok := scores[u.ID]; !ok {
			scores[u.ID] = &UserScore{UserID: u.ID, Username: u.Username}
		}
	}
}

// ScoreboardUser is the minimal user projection zero-filling needs.
type ScoreboardUser struct {
	ID       uint32
	Username string
}
