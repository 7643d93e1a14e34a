package controllers

import (
	"errors"
	"math"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm/clause"

	"github.com/xndadelin/NXT/database"
	"github.com/xndadelin/NXT/dto"
	"github.com/xndadelin/NXT/models"
	"github.com/xndadelin/NXT/services"
	"github.com/xndadelin/NXT/utils"
)

// UpsertChallenge creates or updates a challenge (admin only). MaxPoints is
// initialized from the submitted point value; the current value then decays
// from it as solves accumulate.
func UpsertChallenge(c *gin.Context) {
	var req dto.UpsertChallengeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 1001, "Invalid parameters: "+err.Error())
		return
	}
	req.Normalize()

	if req.Title == "" || req.Category == "" || req.Description == "" || req.Flag == "" || req.Points == 0 {
		utils.Error(c, 1001, "Missing required fields")
		return
	}
	switch req.Difficulty {
	case "easy", "medium", "hard", "insane":
	default:
		utils.Error(c, 1001, "Invalid difficulty (easy/medium/hard/insane)")
		return
	}
	if req.MinPoints > req.Points {
		utils.Error(c, 1001, "min_points cannot exceed points")
		return
	}

	challenge := models.Challenge{
		ID:              req.ID,
		Title:           req.Title,
		Category:        req.Category,
		Difficulty:      models.ChallengeDifficulty(req.Difficulty),
		Description:     req.Description,
		Flag:            req.Flag,
		CaseInsensitive: req.CaseInsensitive,
		Points:          req.Points,
		MaxPoints:       req.Points,
		MinPoints:       req.MinPoints,
		Decay:           req.Decay,
		Private:         req.Private,
		Hints:           req.Hints,
		Resource:        req.Resource,
		Mitre:           req.Mitre,
	}

	if err := database.DB.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"title", "category", "difficulty", "description", "flag",
			"case_insensitive", "min_points", "decay", "private", "hints",
			"resource", "mitre",
		}),
	}).Create(&challenge).Error; err != nil {
		utils.Error(c, 5000, "Failed to save challenge: "+err.Error())
		return
	}

	utils.Success(c, "Challenge saved successfully", gin.H{"id": challenge.ID})
}

// ListChallenges returns the public catalog with per-challenge solve
// accuracy voting totals and the caller's solved markers folded in.
func ListChallenges(c *gin.Context) {
	var challenges []models.Challenge
	if err := database.DB.Where("private = ?", false).Find(&challenges).Error; err != nil {
		utils.Error(c, 5000, "Failed to load challenges")
		return
	}

	// Tries/solves per challenge across all global submissions.
	type challengeStat struct {
		ChallengeID uint32
		Tries       uint
		SolvesCount uint
	}
	var stats []challengeStat
	database.DB.Table("nxt_submission").
		Select("challenge_id, SUM(tries) as tries, SUM(done) as solves_count").
		Where("contest_id IS NULL").
		Group("challenge_id").
		Scan(&stats)
	statMap := make(map[uint32]challengeStat, len(stats))
	for _, s := range stats {
		statMap[s.ChallengeID] = s
	}

	type voteStat struct {
		ChallengeID uint32
		Upvotes     int64
		Downvotes   int64
	}
	var votes []voteStat
	database.DB.Table("nxt_challenge_votes").
		Select("challenge_id, SUM(vote_type = 1) as upvotes, SUM(vote_type = -1) as downvotes").
		Group("challenge_id").
		Scan(&votes)
	voteMap := make(map[uint32]voteStat, len(votes))
	for _, v := range votes {
		voteMap[v.ChallengeID] = v
	}

	solvedByMe := make(map[uint32]bool)
	if userID, ok := currentUserID(c); ok {
		var solved []uint32
		database.DB.Model(&models.Submission{}).
			Where("user_id = ? AND done = ? AND contest_id IS NULL", userID, true).
			Pluck("challenge_id", &solved)
		for _, id := range solved {
			solvedByMe[id] = true
		}
	}

	items := make([]dto.ChallengeItemResp, 0, len(challenges))
	for _, ch := range challenges {
		stat := statMap[ch.ID]
		accuracy := 0.0
		if stat.Tries > 0 {
			accuracy = math.Round(float64(stat.SolvesCount)/float64(stat.Tries)*100*100) / 100
		}
		vote := voteMap[ch.ID]
		items = append(items, dto.ChallengeItemResp{
			ID:         ch.ID,
			Title:      ch.Title,
			Category:   ch.Category,
			Difficulty: string(ch.Difficulty),
			Points:     ch.Points,
			Solves:     ch.Solves,
			Accuracy:   accuracy,
			Upvotes:    vote.Upvotes,
			Downvotes:  vote.Downvotes,
			SolvedByMe: solvedByMe[ch.ID],
			CreatedAt:  ch.CreatedAt.Format("2006-01-02 15:04:05"),
		})
	}

	utils.Success(c, "success", gin.H{
		"total":      len(items),
		"challenges": items,
	})
}

func GetChallengeDetail(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var challenge models.Challenge
	if err := database.DB.First(&challenge, id).Error; err != nil {
		utils.Error(c, 4004, "Challenge not found")
		return
	}
	if challenge.Private {
		isAdmin, _ := c.Get("is_admin")
		if admin, ok := isAdmin.(bool); !ok || !admin {
			utils.Error(c, 4004, "Challenge not found")
			return
		}
	}

	done := false
	if userID, ok := currentUserID(c); ok {
		var count int64
		database.DB.Model(&models.Submission{}).
			Where("user_id = ? AND challenge_id = ? AND done = ? AND contest_id IS NULL", userID, id, true).
			Count(&count)
		done = count > 0
	}

	resp := dto.ChallengeDetailResp{
		ID:          challenge.ID,
		Title:       challenge.Title,
		Category:    challenge.Category,
		Difficulty:  string(challenge.Difficulty),
		Description: challenge.Description,
		Points:      challenge.Points,
		MaxPoints:   challenge.MaxPoints,
		Decay:       challenge.Decay,
		Solves:      challenge.Solves,
		Hints:       challenge.Hints,
		Resource:    challenge.Resource,
		Mitre:       challenge.Mitre,
		Done:        done,
		CreatedAt:   challenge.CreatedAt.Format("2006-01-02 15:04:05"),
	}
	utils.Success(c, "success", resp)
}

func DeleteChallenge(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	result := database.DB.Delete(&models.Challenge{}, id)
	if result.Error != nil {
		utils.Error(c, 5000, "Failed to delete challenge: "+result.Error.Error())
		return
	}
	if result.RowsAffected == 0 {
		utils.Error(c, 4004, "Challenge not found")
		return
	}
	utils.Success(c, "Challenge deleted successfully", nil)
}

// SubmitFlag handles global-scope flag submissions; contest-scope ones go
// through SubmitContestFlag.
func SubmitFlag(c *gin.Context) {
	challengeID, _ := strconv.Atoi(c.Param("id"))
	submitFlagScoped(c, uint32(challengeID), nil)
}

func submitFlagScoped(c *gin.Context, challengeID uint32, contestID *uint32) {
	var req dto.SubmitFlagReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 1001, "Invalid parameters: "+err.Error())
		return
	}
	req.Normalize()
	if req.Flag == "" {
		utils.Error(c, 1001, "Flag cannot be empty")
		return
	}

	userID, ok := currentUserID(c)
	if !ok {
		utils.Error(c, 4001, "Not authenticated")
		return
	}

	result, err := services.SubmitFlag(database.DB, userID, challengeID, contestID, req.Flag)
	if err != nil {
		if errors.Is(err, services.ErrChallengeNotFound) {
			utils.Error(c, 4004, "Challenge not found")
			return
		}
		if errors.Is(err, services.ErrNotInContest) {
			utils.Error(c, 4004, "Challenge is not part of this contest")
			return
		}
		utils.Error(c, 5001, "Failed to submit flag: "+err.Error())
		return
	}

	// A fresh solve invalidates cached leaderboards and notifies listeners.
	if result.Correct && !result.AlreadySolved {
		services.InvalidateLeaderboardCache()

		var challenge models.Challenge
		if database.DB.First(&challenge, challengeID).Error == nil {
			services.PublishSolveEvent(services.SolveEvent{
				UserID:      userID,
				Username:    c.GetString("username"),
				ChallengeID: challengeID,
				Title:       challenge.Title,
				Points:      result.PointsAwarded,
				FirstBlood:  result.FirstBlood,
			})
		}
	}

	msg := "The flag you submitted is incorrect"
	if result.Correct {
		msg = "Correct flag! Challenge completed."
		if result.AlreadySolved {
			msg = "Challenge already completed."
		}
	}
	utils.Success(c, msg, result)
}
