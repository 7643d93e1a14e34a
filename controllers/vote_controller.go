package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/xndadelin/NXT/database"
	"github.com/xndadelin/NXT/dto"
	"github.com/xndadelin/NXT/models"
	"github.com/xndadelin/NXT/utils"
)

// VoteChallenge upserts the caller's vote on a challenge; voting again in
// the other direction overwrites (last write wins).
func VoteChallenge(c *gin.Context) {
	challengeID, _ := strconv.Atoi(c.Param("id"))

	var req dto.VoteReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 1001, "Invalid vote (must be 1 or -1)")
		return
	}

	userID, ok := currentUserID(c)
	if !ok {
		utils.Error(c, 4001, "Not authenticated")
		return
	}

	var challenge models.Challenge
	if err := database.DB.First(&challenge, challengeID).Error; err != nil {
		utils.Error(c, 4004, "Challenge not found")
		return
	}

	vote := models.ChallengeVote{
		ChallengeID: uint32(challengeID),
		UserID:      userID,
		VoteType:    req.VoteType,
	}
	if err := database.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "challenge_id"}, {Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"vote_type", "updated_at"}),
	}).Create(&vote).Error; err != nil {
		utils.Error(c, 5000, "Failed to save vote: "+err.Error())
		return
	}

	utils.Success(c, "Vote recorded", nil)
}

// GetChallengeVotes returns up/down totals plus the caller's own vote when
// authenticated.
func GetChallengeVotes(c *gin.Context) {
	challengeID, _ := strconv.Atoi(c.Param("id"))

	var upvotes, downvotes int64
	database.DB.Model(&models.ChallengeVote{}).
		Where("challenge_id = ? AND vote_type = ?", challengeID, 1).Count(&upvotes)
	database.DB.Model(&models.ChallengeVote{}).
		Where("challenge_id = ? AND vote_type = ?", challengeID, -1).Count(&downvotes)

	var userVote *int8
	if userID, ok := currentUserID(c); ok {
		var vote models.ChallengeVote
		err := database.DB.Where("challenge_id = ? AND user_id = ?", challengeID, userID).First(&vote).Error
		if err == nil {
			userVote = &vote.VoteType
		} else if err != gorm.ErrRecordNotFound {
			utils.Error(c, 5000, "Failed to load vote")
			return
		}
	}

	utils.Success(c, "success", gin.H{
		"upvotes":   upvotes,
		"downvotes": downvotes,
		"user_vote": userVote,
	})
}
