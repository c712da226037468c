package lottery

import (
	"sort"
	"sync"
)

type LeaderboardEntry struct {
	UserID string `json:"user_id"`
	Profit int64  `json:"profit"`
}

// Leaderboard tracks net profit per user since process start. It is
// rebuilt empty on restart; history remains the durable record.
type Leaderboard struct {
	data map[string]int64
	mu   sync.Mutex
}

func NewLeaderboard() *Leaderboard {
	return &Leaderboard{
		data: make(map[string]int64),
	}
}

func (l *Leaderboard) Record(userID string, profit int64) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.data[userID] += profit
}

func (l *Leaderboard) Top(n int) []LeaderboardEntry {
	l.mu.Lock()
	defer l.mu.Unlock()

	entries := []LeaderboardEntry{}
	for userID, profit := range l.data {
		entries = append(entries, LeaderboardEntry{
			UserID: userID,
			Profit: profit,
		})
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Profit != entries[j].Profit {
			return entries[i].Profit > entries[j].Profit
		}
		return entries[i].UserID < entries[j].UserID
	})

	if len(entries) > n {
		return entries[:n]
	}
	return entries
}
