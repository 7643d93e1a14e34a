package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/xndadelin/NXT/controllers"
	"github.com/xndadelin/NXT/middlewares"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	apiV1 := r.Group("/api/v1")
	{
		usersPublic := apiV1.Group("/users")
		{
			usersPublic.POST("/register", controllers.Register)
			usersPublic.POST("/login", controllers.Login)
		}
		usersAuth := apiV1.Group("/users")
		usersAuth.Use(middlewares.JWTAuthMiddleware())
		{
			usersAuth.GET("/me", controllers.GetProfile)
			usersAuth.GET("/me/stats", controllers.GetUserStats)
			usersAuth.GET("/:id", controllers.GetUserDetail)
		}

		challengeRoutes := apiV1.Group("/challenges")
		{
			challengeRoutes.GET("", middlewares.JWTTryAuthMiddleware(), controllers.ListChallenges)
			challengeRoutes.GET("/:id", middlewares.JWTTryAuthMiddleware(), controllers.GetChallengeDetail)
			challengeRoutes.POST("", middlewares.JWTAuthMiddleware(), middlewares.AdminAuthMiddleware(), controllers.UpsertChallenge)
			challengeRoutes.DELETE("/:id", middlewares.JWTAuthMiddleware(), middlewares.AdminAuthMiddleware(), controllers.DeleteChallenge)

			challengeRoutes.POST("/:id/submit", middlewares.JWTAuthMiddleware(), controllers.SubmitFlag)

			challengeRoutes.POST("/:id/vote", middlewares.JWTAuthMiddleware(), controllers.VoteChallenge)
			challengeRoutes.GET("/:id/votes", middlewares.JWTTryAuthMiddleware(), controllers.GetChallengeVotes)

			challengeRoutes.GET("/:id/discussion", controllers.GetDiscussion)
			challengeRoutes.POST("/:id/discussion", middlewares.JWTAuthMiddleware(), controllers.AddDiscussionComment)
		}

		contestRoutes := apiV1.Group("/contests")
		contestRoutes.Use(middlewares.JWTAuthMiddleware())
		{
			contestRoutes.GET("", controllers.ListContests)
			contestRoutes.POST("", controllers.CreateContest)
			contestRoutes.PUT("/:id", controllers.UpdateContest)
			contestRoutes.GET("/:id", controllers.GetContestDetail)
			contestRoutes.POST("/:id/join", controllers.JoinContest)
			contestRoutes.GET("/:id/challenges/:challenge_id", controllers.GetContestChallenge)
			contestRoutes.POST("/:id/challenges/:challenge_id/submit", controllers.SubmitContestFlag)
			contestRoutes.GET("/:id/leaderboard", controllers.GetContestLeaderboard)
		}

		writeupRoutes := apiV1.Group("/writeups")
		writeupRoutes.Use(middlewares.JWTAuthMiddleware())
		{
			writeupRoutes.GET("", controllers.ListWriteups)
			writeupRoutes.GET("/:id", controllers.GetWriteup)
			writeupRoutes.POST("", controllers.CreateWriteup)
			writeupRoutes.PUT("/:id", controllers.UpdateWriteup)
			writeupRoutes.GET("/:id/comments", controllers.GetWriteupComments)
			writeupRoutes.POST("/:id/comments", controllers.AddWriteupComment)
		}

		topicRoutes := apiV1.Group("/topics")
		{
			topicRoutes.GET("", controllers.ListTopics)
			topicRoutes.GET("/:id", controllers.GetTopicDetail)
			topicRoutes.POST("", middlewares.JWTAuthMiddleware(), middlewares.AdminAuthMiddleware(), controllers.CreateTopic)
			topicRoutes.POST("/quiz/:question_id/answer", middlewares.JWTAuthMiddleware(), controllers.CheckQuizAnswer)
		}

		apiV1.GET("/leaderboard", controllers.GetLeaderboard)
		apiV1.GET("/activity", controllers.GetRecentActivity)

		apiV1.POST("/assistant", middlewares.JWTAuthMiddleware(), controllers.AskAssistant)
	}

	return r
}
