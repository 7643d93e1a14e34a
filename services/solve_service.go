package services

import (
	"errors"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/xndadelin/NXT/models"
)

var (
	ErrChallengeNotFound = errors.New("challenge not found")
	ErrNotInContest      = errors.New("challenge is not part of this contest")
)

// SolveResult reports what a flag submission did to the ledger.
type SolveResult struct {
	Correct       bool `json:"correct"`
	AlreadySolved bool `json:"already_solved"`
	Tries         uint `json:"tries"`
	PointsAwarded uint `json:"points_awarded"`
	FirstBlood    bool `json:"first_blood"`
}

// SubmitFlag runs the whole solve path in one transaction: the flag check,
// the tries/done upsert, and on a first-time solve the solve-count bump, the
// user's point award and the decayed-value writeback. The challenge row is
// locked FOR UPDATE so concurrent solvers serialize and never read a stale
// solve count.
//
// The Solved state is absorbing: once done, further submissions re-write the
// row (tries keeps counting) but award nothing.
func SubmitFlag(db *gorm.DB, userID, challengeID uint32, contestID *uint32, flag string) (*SolveResult, error) {
	res := &SolveResult{}

	err := db.Transaction(func(tx *gorm.DB) error {
		var challenge models.Challenge
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&challenge, challengeID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrChallengeNotFound
			}
			return err
		}

		var link models.ContestChallenge
		if contestID != nil {
			if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
				Where("contest_id = ? AND challenge_id = ?", *contestID, challengeID).
				First(&link).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return ErrNotInContest
				}
				return err
			}
		}

		res.Correct = checkFlag(challenge, flag)

		var sub models.Submission
		q := tx.Where("user_id = ? AND challenge_id = ?", userID, challengeID)
		if contestID != nil {
			q = q.Where("contest_id = ?", *contestID)
		} else {
			q = q.Where("contest_id IS NULL")
		}
		err := q.First(&sub).Error
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		if errors.Is(err, gorm.ErrRecordNotFound) {
			sub = models.Submission{
				UserID:      userID,
				ChallengeID: challengeID,
				ContestID:   contestID,
			}
		}

		sub.Tries++
		res.Tries = sub.Tries

		if sub.Done {
			// Absorbing state: idempotent overwrite, no double award.
			res.AlreadySolved = true
			return tx.Save(&sub).Error
		}

		if !res.Correct {
			return tx.Save(&sub).Error
		}

		sub.Done = true

		if contestID != nil {
			sub.FirstBlood = link.Solves == 0
			res.FirstBlood = sub.FirstBlood
			res.PointsAwarded = link.Points

			link.Solves++
			link.Points = CurrentPoints(link.MaxPoints, 0, link.Decay, link.Solves)
			if err := tx.Save(&link).Error; err != nil {
				return err
			}
			return tx.Save(&sub).Error
		}

		sub.FirstBlood = challenge.Solves == 0
		res.FirstBlood = sub.FirstBlood
		// The award is the value before this solve's decay writeback.
		res.PointsAwarded = challenge.Points

		challenge.Solves++
		challenge.Points = CurrentPoints(challenge.MaxPoints, challenge.MinPoints, challenge.Decay, challenge.Solves)
		if err := tx.Save(&challenge).Error; err != nil {
			return err
		}

		if err := tx.Model(&models.User{}).Where("id = ?", userID).
			Update("points", gorm.Expr("points + ?", res.PointsAwarded)).Error; err != nil {
			return err
		}

		return tx.Save(&sub).Error
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

func checkFlag(challenge models.Challenge, flag string) bool {
	if challenge.CaseInsensitive {
		return strings.EqualFold(challenge.Flag, flag)
	}
	return challenge.Flag == flag
}
