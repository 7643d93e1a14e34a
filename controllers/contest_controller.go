package controllers

import (
	"errors"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/xndadelin/NXT/database"
	"github.com/xndadelin/NXT/dto"
	"github.com/xndadelin/NXT/models"
	"github.com/xndadelin/NXT/services"
	"github.com/xndadelin/NXT/utils"
)

// CreateContest creates a contest with a generated join key; the creator is
// enrolled as the first participant.
func CreateContest(c *gin.Context) {
	var req dto.UpsertContestReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 1001, "Invalid parameters: "+err.Error())
		return
	}
	req.Normalize()

	if req.Title == "" {
		utils.Error(c, 1001, "Missing required fields")
		return
	}
	if !req.EndTime.After(req.StartTime) {
		utils.Error(c, 1001, "end_time must be after start_time")
		return
	}

	userID, _ := currentUserID(c)

	contest := models.Contest{
		Title:       req.Title,
		Description: req.Description,
		Rules:       req.Rules,
		Banner:      req.Banner,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		Key:         utils.GenerateContestKey(),
		CreatedBy:   userID,
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&contest).Error; err != nil {
			return err
		}
		if err := tx.Create(&models.ContestParticipant{
			ContestID: contest.ID,
			UserID:    userID,
			JoinedAt:  time.Now(),
		}).Error; err != nil {
			return err
		}
		for _, cc := range req.Challenges {
			link := models.ContestChallenge{
				ContestID:   contest.ID,
				ChallengeID: cc.ChallengeID,
				Points:      cc.Points,
				MaxPoints:   cc.MaxPoints,
				Decay:       cc.Decay,
			}
			if err := tx.Create(&link).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		utils.Error(c, 5000, "Failed to create contest: "+err.Error())
		return
	}

	utils.Success(c, "Contest created successfully", gin.H{
		"id":  contest.ID,
		"key": contest.Key,
	})
}

// UpdateContest rewrites contest metadata and its challenge links. Only the
// creator may edit.
func UpdateContest(c *gin.Context) {
	contestID, _ := strconv.Atoi(c.Param("id"))

	var req dto.UpsertContestReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 1001, "Invalid parameters: "+err.Error())
		return
	}
	req.Normalize()

	userID, _ := currentUserID(c)

	var contest models.Contest
	if err := database.DB.First(&contest, contestID).Error; err != nil {
		utils.Error(c, 4004, "Contest not found")
		return
	}
	if contest.CreatedBy != userID {
		utils.Error(c, 4003, "Only the contest creator can edit it")
		return
	}

	contest.Title = req.Title
	contest.Description = req.Description
	contest.Rules = req.Rules
	contest.Banner = req.Banner
	contest.StartTime = req.StartTime
	contest.EndTime = req.EndTime

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&contest).Error; err != nil {
			return err
		}
		for _, cc := range req.Challenges {
			link := models.ContestChallenge{
				ContestID:   contest.ID,
				ChallengeID: cc.ChallengeID,
				Points:      cc.Points,
				MaxPoints:   cc.MaxPoints,
				Decay:       cc.Decay,
			}
			if err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "contest_id"}, {Name: "challenge_id"}},
				DoUpdates: clause.AssignmentColumns([]string{"points", "max_points", "decay"}),
			}).Create(&link).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		utils.Error(c, 5000, "Failed to update contest: "+err.Error())
		return
	}

	utils.Success(c, "Contest updated successfully", nil)
}

func ListContests(c *gin.Context) {
	var contests []models.Contest
	if err := database.DB.Order("start_time desc").Find(&contests).Error; err != nil {
		utils.Error(c, 5000, "Failed to load contests")
		return
	}

	participating := make(map[uint32]bool)
	if userID, ok := currentUserID(c); ok {
		var ids []uint32
		database.DB.Model(&models.ContestParticipant{}).
			Where("user_id = ?", userID).
			Pluck("contest_id", &ids)
		for _, id := range ids {
			participating[id] = true
		}
	}

	now := time.Now()
	items := make([]dto.ContestItemResp, 0, len(contests))
	for _, contest := range contests {
		items = append(items, dto.ContestItemResp{
			ID:            contest.ID,
			Title:         contest.Title,
			Description:   contest.Description,
			Banner:        contest.Banner,
			StartTime:     contest.StartTime.Format("2006-01-02 15:04:05"),
			EndTime:       contest.EndTime.Format("2006-01-02 15:04:05"),
			Status:        string(contest.Status(now)),
			Participating: participating[contest.ID],
		})
	}

	utils.Success(c, "success", gin.H{
		"total":    len(items),
		"contests": items,
	})
}

// GetContestDetail is participants-only; the challenge list stays hidden
// until the contest starts.
func GetContestDetail(c *gin.Context) {
	contestID, _ := strconv.Atoi(c.Param("id"))

	userID, ok := currentUserID(c)
	if !ok {
		utils.Error(c, 4001, "Not authenticated")
		return
	}

	var contest models.Contest
	if err := database.DB.First(&contest, contestID).Error; err != nil {
		utils.Error(c, 4004, "Contest not found")
		return
	}

	if !isParticipant(uint32(contestID), userID) {
		utils.Error(c, 4003, "Join the contest to view it")
		return
	}

	now := time.Now()
	resp := dto.ContestDetailResp{
		ID:          contest.ID,
		Title:       contest.Title,
		Description: contest.Description,
		Rules:       contest.Rules,
		Banner:      contest.Banner,
		StartTime:   contest.StartTime.Format("2006-01-02 15:04:05"),
		EndTime:     contest.EndTime.Format("2006-01-02 15:04:05"),
		Status:      string(contest.Status(now)),
		HasEnded:    now.After(contest.EndTime),
		Challenges:  []dto.ContestChallengeResp{},
	}

	if now.After(contest.StartTime) {
		var challenges []dto.ContestChallengeResp
		err := database.DB.Table("nxt_contest_challenges cc").
			Select("cc.challenge_id, c.title, c.category, c.difficulty, cc.points").
			Joins("JOIN nxt_challenge c ON cc.challenge_id = c.id").
			Where("cc.contest_id = ?", contestID).
			Scan(&challenges).Error
		if err != nil {
			utils.Error(c, 5000, "Failed to load contest challenges")
			return
		}
		resp.Challenges = challenges
	}

	utils.Success(c, "success", resp)
}

// JoinContest enrolls the caller when the submitted key matches.
func JoinContest(c *gin.Context) {
	contestID, _ := strconv.Atoi(c.Param("id"))

	var req dto.JoinContestReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 1001, "Contest key is required")
		return
	}

	userID, ok := currentUserID(c)
	if !ok {
		utils.Error(c, 4001, "Not authenticated")
		return
	}

	var contest models.Contest
	if err := database.DB.First(&contest, contestID).Error; err != nil {
		utils.Error(c, 4004, "Contest not found")
		return
	}
	if contest.Key != req.Key {
		utils.Error(c, 2003, "Invalid contest key")
		return
	}

	participant := models.ContestParticipant{
		ContestID: uint32(contestID),
		UserID:    userID,
		JoinedAt:  time.Now(),
	}
	if err := database.DB.Clauses(clause.OnConflict{DoNothing: true}).
		Create(&participant).Error; err != nil {
		utils.Error(c, 5000, "Failed to join contest: "+err.Error())
		return
	}

	utils.Success(c, "You have joined the contest successfully!", nil)
}

// GetContestChallenge returns a challenge through the lens of a contest:
// base metadata with the contest link's point configuration.
func GetContestChallenge(c *gin.Context) {
	contestID, _ := strconv.Atoi(c.Param("id"))
	challengeID, _ := strconv.Atoi(c.Param("challenge_id"))

	userID, ok := currentUserID(c)
	if !ok {
		utils.Error(c, 4001, "Not authenticated")
		return
	}
	if !isParticipant(uint32(contestID), userID) {
		utils.Error(c, 4003, "Join the contest to view its challenges")
		return
	}

	var link models.ContestChallenge
	if err := database.DB.Where("contest_id = ? AND challenge_id = ?", contestID, challengeID).
		First(&link).Error; err != nil {
		utils.Error(c, 4004, "Challenge is not part of this contest")
		return
	}

	var challenge models.Challenge
	if err := database.DB.First(&challenge, challengeID).Error; err != nil {
		utils.Error(c, 4004, "Challenge not found")
		return
	}

	resp := dto.ChallengeDetailResp{
		ID:          challenge.ID,
		Title:       challenge.Title,
		Category:    challenge.Category,
		Difficulty:  string(challenge.Difficulty),
		Description: challenge.Description,
		Points:      link.Points,
		MaxPoints:   link.MaxPoints,
		Decay:       link.Decay,
		Solves:      link.Solves,
		Resource:    challenge.Resource,
		Mitre:       challenge.Mitre,
		CreatedAt:   challenge.CreatedAt.Format("2006-01-02 15:04:05"),
	}
	utils.Success(c, "success", resp)
}

// SubmitContestFlag is the contest-scoped solve path.
func SubmitContestFlag(c *gin.Context) {
	contestID, _ := strconv.Atoi(c.Param("id"))
	challengeID, _ := strconv.Atoi(c.Param("challenge_id"))

	userID, ok := currentUserID(c)
	if !ok {
		utils.Error(c, 4001, "Not authenticated")
		return
	}
	if !isParticipant(uint32(contestID), userID) {
		utils.Error(c, 4003, "Join the contest to submit flags")
		return
	}

	var contest models.Contest
	if err := database.DB.First(&contest, contestID).Error; err != nil {
		utils.Error(c, 4004, "Contest not found")
		return
	}
	now := time.Now()
	if contest.Status(now) != models.ContestStatusRunning {
		utils.Error(c, 2004, "Contest is not running")
		return
	}

	id := uint32(contestID)
	submitFlagScoped(c, uint32(challengeID), &id)
}

// GetContestLeaderboard recomputes the contest board from scratch on every
// request: contest-scoped ledger, aggregated, zero-filled with every
// participant.
func GetContestLeaderboard(c *gin.Context) {
	contestID64, _ := strconv.Atoi(c.Param("id"))
	contestID := uint32(contestID64)

	var contest models.Contest
	if err := database.DB.First(&contest, contestID).Error; err != nil {
		utils.Error(c, 4004, "Contest not found")
		return
	}

	entries, err := services.LoadLedger(database.DB, services.LedgerScope{ContestID: &contestID})
	if err != nil {
		utils.Error(c, 5000, "Failed to load contest submissions")
		return
	}
	scores := services.Aggregate(entries)

	var participants []services.ScoreboardUser
	err = database.DB.Table("nxt_contest_participants cp").
		Select("u.id, u.username").
		Joins("JOIN nxt_user u ON cp.user_id = u.id").
		Where("cp.contest_id = ?", contestID).
		Scan(&participants).Error
	if err != nil {
		utils.Error(c, 5000, "Failed to load participants")
		return
	}
	services.ZeroFill(scores, participants)

	board := services.AssembleLeaderboard(scores)

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "10"))
	pageEntries, page, totalPages := services.PaginateLeaderboard(board, page, perPage)

	utils.Success(c, "success", gin.H{
		"total":       len(board),
		"page":        page,
		"total_pages": totalPages,
		"leaderboard": pageEntries,
	})
}

func isParticipant(contestID, userID uint32) bool {
	var count int64
	err := database.DB.Model(&models.ContestParticipant{}).
		Where("contest_id = ? AND user_id = ?", contestID, userID).
		Count(&count).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return false
	}
	return count > 0
}
