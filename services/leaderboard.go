package services

import (
	"sort"
)

type LeaderboardEntry struct {
	Rank     int    `json:"rank"`
	UserID   uint32 `json:"user_id"`
	Username string `json:"username"`
	Points   uint   `json:"points"`
}

// AssembleLeaderboard orders aggregated scores by points descending. Ties
// break on ascending user id so the order is deterministic. Rank is the
// 1-based position; equal point totals still get distinct ranks.
func AssembleLeaderboard(scores map[uint32]*UserScore) []LeaderboardEntry {
	entries := make([]LeaderboardEntry, 0, len(scores))
	for _, s := range scores {
		entries = append(entries, LeaderboardEntry{
			UserID:   s.UserID,
			Username: s.Username,
			Points:   s.Points,
		})
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Points != entries[j].Points {
			return entries[i].Points > entries[j].Points
		}
		return entries[i].UserID < entries[j].UserID
	})

	for i := range entries {
		entries[i].Rank = i + 1
	}
	return entries
}

// PaginateLeaderboard slices the full ordering into fixed-size pages. A page
// past the end clamps to the last page; the clamped page number is returned
// alongside the slice.
func PaginateLeaderboard(entries []LeaderboardEntry, page, perPage int) ([]LeaderboardEntry, int, int) {
	if perPage <= 0 {
		perPage = 10
	}
	totalPages := (len(entries) + perPage - 1) / perPage
	if totalPages == 0 {
		totalPages = 1
	}
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	start := (page - 1) * perPage
	end := start + perPage
	if start > len(entries) {
		start = len(entries)
	}
	if end > len(entries) {
		end = len(entries)
	}
	return entries[start:end], page, totalPages
}
