package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/xndadelin/NXT/database"
	"github.com/xndadelin/NXT/dto"
	"github.com/xndadelin/NXT/models"
	"github.com/xndadelin/NXT/utils"
)

func ListWriteups(c *gin.Context) {
	var items []dto.WriteupItemResp
	err := database.DB.Table("nxt_writeup w").
		Select("w.id, w.title, w.short_description, w.challenge_id, c.title as challenge_title, w.created_at").
		Joins("LEFT JOIN nxt_challenge c ON w.challenge_id = c.id").
		Where("w.published = ?", true).
		Order("w.created_at desc").
		Scan(&items).Error
	if err != nil {
		utils.Error(c, 5000, "Failed to load writeups")
		return
	}

	utils.Success(c, "success", gin.H{
		"total":    len(items),
		"writeups": items,
	})
}

func GetWriteup(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var writeup models.Writeup
	if err := database.DB.First(&writeup, id).Error; err != nil {
		utils.Error(c, 4004, "Writeup not found")
		return
	}

	if !writeup.Published {
		userID, _ := currentUserID(c)
		if writeup.AuthorID != userID {
			utils.Error(c, 4004, "Writeup not found")
			return
		}
	}

	utils.Success(c, "success", writeup)
}

func CreateWriteup(c *gin.Context) {
	var req dto.UpsertWriteupReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 1001, "Invalid parameters: "+err.Error())
		return
	}
	req.Normalize()

	if req.Title == "" || req.ContentMarkdown == "" || req.ChallengeID == 0 {
		utils.Error(c, 1001, "Missing required fields")
		return
	}

	userID, _ := currentUserID(c)

	var challenge models.Challenge
	if err := database.DB.First(&challenge, req.ChallengeID).Error; err != nil {
		utils.Error(c, 4004, "Challenge not found")
		return
	}

	writeup := models.Writeup{
		Title:            req.Title,
		ChallengeID:      req.ChallengeID,
		AuthorID:         userID,
		ContentMarkdown:  req.ContentMarkdown,
		ShortDescription: req.ShortDescription,
		Published:        req.Published == nil || *req.Published,
	}
	if err := database.DB.Create(&writeup).Error; err != nil {
		utils.Error(c, 5000, "Failed to create writeup: "+err.Error())
		return
	}

	utils.Success(c, "Writeup created successfully", gin.H{"id": writeup.ID})
}

// UpdateWriteup lets only the author edit.
func UpdateWriteup(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var req dto.UpsertWriteupReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 1001, "Invalid parameters: "+err.Error())
		return
	}
	req.Normalize()

	userID, _ := currentUserID(c)

	var writeup models.Writeup
	if err := database.DB.First(&writeup, id).Error; err != nil {
		utils.Error(c, 4004, "Writeup not found")
		return
	}
	if writeup.AuthorID != userID {
		utils.Error(c, 4003, "Only the author can edit a writeup")
		return
	}

	writeup.Title = req.Title
	writeup.ContentMarkdown = req.ContentMarkdown
	writeup.ShortDescription = req.ShortDescription
	if req.Published != nil {
		writeup.Published = *req.Published
	}
	if err := database.DB.Save(&writeup).Error; err != nil {
		utils.Error(c, 5000, "Failed to update writeup: "+err.Error())
		return
	}

	utils.Success(c, "Writeup updated successfully", nil)
}
