package main

import (
	"log"

	"github.com/joho/godotenv"

	"github.com/xndadelin/NXT/config"
	"github.com/xndadelin/NXT/controllers"
	"github.com/xndadelin/NXT/database"
	"github.com/xndadelin/NXT/routes"
	"github.com/xndadelin/NXT/services"
	"github.com/xndadelin/NXT/utils"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading configuration from the environment")
	}
	cfg := config.LoadConfig()

	utils.InitJWT(cfg.JWTSecret)

	database.Connect(cfg)
	database.MigrateTables()
	database.InitRedis(cfg)

	controllers.InitAssistant(cfg)

	services.StartLeaderboardRefresher()

	r := routes.SetupRouter()

	log.Printf("Starting server on :%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}
