package utils

import (
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"
)

const charset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

var seededRand *rand.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))

// GenerateContestKey produces the secret participants must supply to join a
// contest.
func GenerateContestKey() string {
	return uuid.New().String()
}

// GenerateRandomUsername builds a fallback display name for accounts created
// without one.
func GenerateRandomUsername() string {
	var sb strings.Builder
	sb.Grow(8)
	for i := 0; i < 8; i++ {
		sb.WriteByte(charset[seededRand.Intn(len(charset))])
	}
	return "player_" + strings.ToLower(sb.String())
}
