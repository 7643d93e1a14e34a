package controllers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/xndadelin/NXT/database"
	"github.com/xndadelin/NXT/dto"
	"github.com/xndadelin/NXT/models"
	"github.com/xndadelin/NXT/services"
	"github.com/xndadelin/NXT/utils"
)

func ListTopics(c *gin.Context) {
	var topics []models.Topic
	if err := database.DB.Where("published = ?", true).
		Order("created_at desc").Find(&topics).Error; err != nil {
		utils.Error(c, 5000, "Failed to load topics")
		return
	}

	utils.Success(c, "success", gin.H{
		"total":  len(topics),
		"topics": topics,
	})
}

// GetTopicDetail returns the topic with its ordered section rows and their
// quiz questions (answers stay server-side).
func GetTopicDetail(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var topic models.Topic
	if err := database.DB.First(&topic, id).Error; err != nil {
		utils.Error(c, 4004, "Topic not found")
		return
	}

	var sections []models.TopicSection
	if err := database.DB.Where("topic_id = ?", id).
		Order("order_index asc").Find(&sections).Error; err != nil {
		utils.Error(c, 5000, "Failed to load sections")
		return
	}

	sectionIDs := make([]uint32, 0, len(sections))
	for _, s := range sections {
		sectionIDs = append(sectionIDs, s.ID)
	}

	var questions []models.QuizQuestion
	if len(sectionIDs) > 0 {
		if err := database.DB.Where("section_id IN ?", sectionIDs).
			Find(&questions).Error; err != nil {
			utils.Error(c, 5000, "Failed to load quiz questions")
			return
		}
	}

	utils.Success(c, "success", gin.H{
		"topic":          topic,
		"sections":       sections,
		"quiz_questions": questions,
	})
}

// CreateTopic parses the submitted markdown into a section tree and persists
// it atomically.
func CreateTopic(c *gin.Context) {
	var req dto.CreateTopicReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 1001, "Invalid parameters: "+err.Error())
		return
	}
	req.Normalize()

	if req.Title == "" || req.ShortDescription == "" || req.Content == "" {
		utils.Error(c, 1001, "Please fill in all required fields")
		return
	}

	userID, _ := currentUserID(c)

	topic, err := services.CreateTopic(database.DB, userID, req.Title, req.ShortDescription, req.Content, req.Quizzes)
	if err != nil {
		if errors.Is(err, services.ErrNoSections) {
			utils.Error(c, 1002, "Topic content must contain at least one heading")
			return
		}
		utils.Error(c, 5000, "Failed to create topic: "+err.Error())
		return
	}

	utils.Success(c, "Topic created!", gin.H{"id": topic.ID})
}

// CheckQuizAnswer grades one quiz question by exact match.
func CheckQuizAnswer(c *gin.Context) {
	questionID, _ := strconv.Atoi(c.Param("question_id"))

	var req dto.QuizAnswerReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 1001, "Answer is required")
		return
	}

	correct, err := services.CheckQuizAnswer(database.DB, uint32(questionID), req.Answer)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.Error(c, 4004, "Quiz question not found")
			return
		}
		utils.Error(c, 5000, "Failed to check answer")
		return
	}

	msg := "Wrong! Try again!"
	if correct {
		msg = "Correct! Keep it up!"
	}
	utils.Success(c, msg, gin.H{"correct": correct})
}
