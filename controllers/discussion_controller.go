package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/xndadelin/NXT/database"
	"github.com/xndadelin/NXT/dto"
	"github.com/xndadelin/NXT/models"
	"github.com/xndadelin/NXT/services"
	"github.com/xndadelin/NXT/utils"
)

// GetDiscussion returns a challenge's comments as two-level threads,
// chronological within each level.
func GetDiscussion(c *gin.Context) {
	challengeID, _ := strconv.Atoi(c.Param("id"))

	var comments []services.ThreadComment
	err := database.DB.Table("nxt_discussion d").
		Select("d.id, d.user_id, u.username, d.text, d.respond_to, d.created_at").
		Joins("JOIN nxt_user u ON d.user_id = u.id").
		Where("d.challenge_id = ?", challengeID).
		Order("d.created_at asc").
		Scan(&comments).Error
	if err != nil {
		utils.Error(c, 5000, "Failed to load discussion")
		return
	}

	utils.Success(c, "success", services.BuildThread(comments))
}

func AddDiscussionComment(c *gin.Context) {
	challengeID, _ := strconv.Atoi(c.Param("id"))

	var req dto.AddCommentReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 1001, "Invalid parameters: "+err.Error())
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

	comment := models.Discussion{
		ChallengeID: uint32(challengeID),
		UserID:      userID,
		Text:        req.Text,
		RespondTo:   req.RespondTo,
	}
	if err := database.DB.Create(&comment).Error; err != nil {
		utils.Error(c, 5000, "Failed to add comment: "+err.Error())
		return
	}

	utils.Success(c, "Comment added", gin.H{"id": comment.ID})
}

// GetWriteupComments is the same thread shape for writeups.
func GetWriteupComments(c *gin.Context) {
	writeupID, _ := strconv.Atoi(c.Param("id"))

	var comments []services.ThreadComment
	err := database.DB.Table("nxt_writeup_comments wc").
		Select("wc.id, wc.user_id, u.username, wc.text, wc.respond_to, wc.created_at").
		Joins("JOIN nxt_user u ON wc.user_id = u.id").
		Where("wc.writeup_id = ?", writeupID).
		Order("wc.created_at asc").
		Scan(&comments).Error
	if err != nil {
		utils.Error(c, 5000, "Failed to load comments")
		return
	}

	utils.Success(c, "success", services.BuildThread(comments))
}

func AddWriteupComment(c *gin.Context) {
	writeupID, _ := strconv.Atoi(c.Param("id"))

	var req dto.AddCommentReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 1001, "Invalid parameters: "+err.Error())
		return
	}

	userID, ok := currentUserID(c)
	if !ok {
		utils.Error(c, 4001, "Not authenticated")
		return
	}

	var writeup models.Writeup
	if err := database.DB.First(&writeup, writeupID).Error; err != nil {
		utils.Error(c, 4004, "Writeup not found")
		return
	}

	comment := models.WriteupComment{
		WriteupID: uint32(writeupID),
		UserID:    userID,
		Text:      req.Text,
		RespondTo: req.RespondTo,
	}
	if err := database.DB.Create(&comment).Error; err != nil {
		utils.Error(c, 5000, "Failed to add comment: "+err.Error())
		return
	}

	utils.Success(c, "Comment added", gin.H{"id": comment.ID})
}
