package services

import (
	"fmt"

	"gorm.io/gorm"
)

// LedgerScope selects which submission rows feed an aggregation run. The
// global and contest scopes are mutually exclusive: a nil ContestID means
// only rows with a NULL contest reference, a non-nil one means only rows
// tagged with that contest. UserID optionally narrows to one user.
type LedgerScope struct {
	ContestID *uint32
	UserID    *uint32
}

// LedgerEntry is one submission row joined with the owner's username and the
// point value it is worth in this scope (the challenge's current points
// globally, the contest link's points in contest scope).
type LedgerEntry struct {
	UserID      uint32
	Username    string
	ChallengeID uint32
	Points      uint
	Done        bool
	Tries       uint
	FirstBlood  bool
}

// LoadLedger reads every submission in the scope. All-or-nothing: a query
// failure returns no partial rows.
func LoadLedger(db *gorm.DB, scope LedgerScope) ([]LedgerEntry, error) {
	q := db.Table("nxt_submission s").
		Joins("JOIN nxt_user u ON s.user_id = u.id")

	if scope.ContestID != nil {
		q = q.Select("s.user_id, u.username, s.challenge_id, cc.points, s.done, s.tries, s.first_blood").
			Joins("JOIN nxt_contest_challenges cc ON s.challenge_id = cc.challenge_id AND cc.contest_id = ?", *scope.ContestID).
			Where("s.contest_id = ?", *scope.ContestID)
	} else {
		q = q.Select("s.user_id, u.username, s.challenge_id, c.points, s.done, s.tries, s.first_blood").
			Joins("JOIN nxt_challenge c ON s.challenge_id = c.id").
			Where("s.contest_id IS NULL")
	}

	if scope.UserID != nil {
		q = q.Where("s.user_id = ?", *scope.UserID)
	}

	var entries []LedgerEntry
	if err := q.Scan(&entries).Error; err != nil {
		return nil, fmt.Errorf("load submission ledger: %w", err)
	}
	return entries, nil
}
