package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/xndadelin/NXT/database"
	"github.com/xndadelin/NXT/models"
	"github.com/xndadelin/NXT/services"
	"github.com/xndadelin/NXT/utils"
)

// --- public endpoints ---

func Register(c *gin.Context) {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password" binding:"required,min=8"`
		Email    string `json:"email" binding:"required,email"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 1001, "Invalid parameters: "+err.Error())
		return
	}
	if req.Username == "" {
		req.Username = utils.GenerateRandomUsername()
	}

	var existing models.User
	if err := database.DB.Where("username = ? OR email = ?", req.Username, req.Email).First(&existing).Error; err == nil {
		utils.Error(c, 2001, "Username or email already registered")
		return
	}

	newUser := models.User{
		Username: req.Username,
		Password: req.Password,
		Email:    req.Email,
	}
	if err := database.DB.Create(&newUser).Error; err != nil {
		utils.Error(c, 5000, "Database error: "+err.Error())
		return
	}

	utils.Success(c, "User registered successfully", gin.H{
		"id":       newUser.ID,
		"username": newUser.Username,
	})
}

func Login(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 1001, "Invalid parameters: "+err.Error())
		return
	}

	var user models.User
	if err := database.DB.Where("email = ?", req.Email).First(&user).Error; err != nil {
		utils.Error(c, 2002, "Wrong email or password")
		return
	}
	if !user.CheckPassword(req.Password) {
		utils.Error(c, 2002, "Wrong email or password")
		return
	}

	token, err := utils.GenerateToken(user)
	if err != nil {
		utils.Error(c, 5002, "Failed to generate token")
		return
	}

	utils.Success(c, "Login success", gin.H{
		"token": token,
		"user": gin.H{
			"id":       user.ID,
			"username": user.Username,
			"points":   user.Points,
			"admin":    user.Admin,
		},
	})
}

// --- authenticated endpoints ---

func GetProfile(c *gin.Context) {
	userID, _ := currentUserID(c)

	var user models.User
	if err := database.DB.First(&user, userID).Error; err != nil {
		utils.Error(c, 4004, "User not found")
		return
	}
	utils.Success(c, "success", user)
}

// GetUserStats folds the caller's own slice of the ledger into solve/try
// counts and accuracy.
func GetUserStats(c *gin.Context) {
	userID, _ := currentUserID(c)

	entries, err := services.LoadLedger(database.DB, services.LedgerScope{UserID: &userID})
	if err != nil {
		utils.Error(c, 5000, "Failed to load submissions")
		return
	}

	scores := services.Aggregate(entries)
	score, ok := scores[userID]
	if !ok {
		score = &services.UserScore{UserID: userID}
	}

	utils.Success(c, "success", gin.H{
		"solved_challenges": score.SolvedCount,
		"tried_challenges":  score.UnsolvedCount,
		"attempts":          score.Attempts,
		"first_bloods":      score.FirstBloodCount,
		"accuracy":          score.Accuracy(),
	})
}

func GetUserDetail(c *gin.Context) {
	targetUserID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, 1002, "Invalid user id")
		return
	}

	var user models.User
	if err := database.DB.First(&user, targetUserID).Error; err != nil {
		utils.Error(c, 4004, "User not found")
		return
	}
	utils.Success(c, "success", gin.H{
		"id":       user.ID,
		"username": user.Username,
		"points":   user.Points,
	})
}
