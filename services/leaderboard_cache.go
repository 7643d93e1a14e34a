package services

import (
	"encoding/json"
	"log"
	"time"

	"github.com/go-co-op/gocron/v2"

	"github.com/xndadelin/NXT/database"
	"github.com/xndadelin/NXT/models"
)

const (
	leaderboardCacheKey = "leaderboard:global"
	leaderboardCacheTTL = 15 * time.Second
	solveEventChannel   = "nxt:solves"
)

// ComputeGlobalLeaderboard re-reads and re-aggregates the global scope from
// scratch: full ledger, zero-filled with every registered user.
func ComputeGlobalLeaderboard() ([]LeaderboardEntry, error) {
	entries, err := LoadLedger(database.DB, LedgerScope{})
	if err != nil {
		return nil, err
	}
	scores := Aggregate(entries)

	var users []ScoreboardUser
	if err := database.DB.Model(&models.User{}).Select("id, username").Scan(&users).Error; err != nil {
		return nil, err
	}
	ZeroFill(scores, users)

	return AssembleLeaderboard(scores), nil
}

// GetCachedLeaderboard serves the global board from redis when fresh,
// recomputing and re-caching on a miss.
func GetCachedLeaderboard() ([]LeaderboardEntry, error) {
	val, err := database.RDB.Get(database.Ctx, leaderboardCacheKey).Result()
	if err == nil {
		var cached []LeaderboardEntry
		if json.Unmarshal([]byte(val), &cached) == nil {
			return cached, nil
		}
	}

	board, err := ComputeGlobalLeaderboard()
	if err != nil {
		return nil, err
	}

	if jsonData, err := json.Marshal(board); err == nil {
		database.RDB.Set(database.Ctx, leaderboardCacheKey, jsonData, leaderboardCacheTTL)
	}
	return board, nil
}

// InvalidateLeaderboardCache drops every cached leaderboard page so the next
// read recomputes from the ledger.
func InvalidateLeaderboardCache() {
	keys, err := database.RDB.Keys(database.Ctx, "leaderboard:*").Result()
	if err == nil && len(keys) > 0 {
		database.RDB.Del(database.Ctx, keys...)
	}
}

// SolveEvent is what gets published on the solve channel. Subscribers treat
// it as a refresh trigger and re-fetch; no delta merging.
type SolveEvent struct {
	UserID      uint32 `json:"user_id"`
	Username    string `json:"username"`
	ChallengeID uint32 `json:"challenge_id"`
	Title       string `json:"title"`
	Points      uint   `json:"points"`
	FirstBlood  bool   `json:"first_blood"`
}

func PublishSolveEvent(event SolveEvent) {
	payload, err := json.Marshal(event)
	if err != nil {
		return
	}
	if err := database.RDB.Publish(database.Ctx, solveEventChannel, payload).Err(); err != nil {
		log.Printf("Failed to publish solve event: %v", err)
	}
}

// StartLeaderboardRefresher warms the global leaderboard cache every minute
// as a backstop for the write-path invalidation.
func StartLeaderboardRefresher() {
	sched, err := gocron.NewScheduler()
	if err != nil {
		log.Printf("Failed to create scheduler: %v", err)
		return
	}
	sched.Start()

	_, _ = sched.NewJob(
		gocron.DurationJob(1*time.Minute),
		gocron.NewTask(func() {
			board, err := ComputeGlobalLeaderboard()
			if err != nil {
				log.Printf("[Refresher] leaderboard recompute failed: %v", err)
				return
			}
			if jsonData, err := json.Marshal(board); err == nil {
				database.RDB.Set(database.Ctx, leaderboardCacheKey, jsonData, leaderboardCacheTTL)
			}
		}),
	)
}
