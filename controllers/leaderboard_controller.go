package controllers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/xndadelin/NXT/database"
	"github.com/xndadelin/NXT/services"
	"github.com/xndadelin/NXT/utils"
)

// GetLeaderboard serves the global board, redis-cached, paginated in fixed
// pages with clamp-to-last-page.
func GetLeaderboard(c *gin.Context) {
	board, err := services.GetCachedLeaderboard()
	if err != nil {
		utils.Error(c, 5000, "Failed to compute leaderboard")
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "10"))
	entries, page, totalPages := services.PaginateLeaderboard(board, page, perPage)

	utils.Success(c, "success", gin.H{
		"total":       len(board),
		"page":        page,
		"total_pages": totalPages,
		"leaderboard": entries,
	})
}

// GetRecentActivity lists global solves from the last 24 hours, newest
// first.
func GetRecentActivity(c *gin.Context) {
	since := time.Now().Add(-24 * time.Hour)

	type activity struct {
		UserID      uint32    `json:"user_id"`
		Username    string    `json:"username"`
		ChallengeID uint32    `json:"challenge_id"`
		Title       string    `json:"title"`
		Points      uint      `json:"points"`
		FirstBlood  bool      `json:"first_blood"`
		UpdatedAt   time.Time `json:"updated_at"`
	}

	var recent []activity
	err := database.DB.Table("nxt_submission s").
		Select("s.user_id, u.username, s.challenge_id, c.title, c.points, s.first_blood, s.updated_at").
		Joins("JOIN nxt_user u ON s.user_id = u.id").
		Joins("JOIN nxt_challenge c ON s.challenge_id = c.id").
		Where("s.done = ? AND s.contest_id IS NULL AND s.updated_at >= ?", true, since).
		Order("s.updated_at desc").
		Scan(&recent).Error
	if err != nil {
		utils.Error(c, 5000, "Failed to load recent activity")
		return
	}

	utils.Success(c, "success", recent)
}
