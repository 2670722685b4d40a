package analysis

import (
	"fmt"
	"riftwind/pkg/models/match"
)

// StreakGame is the context of one game inside the best streak.
type StreakGame struct {
	Champion string `json:"champion"`
	Date     string `json:"date"`
	KDA      string `json:"kda"`
}

// WinStreakResult describes the longest run of consecutive wins.
type WinStreakResult struct {
	Streak     int         `json:"streak"`
	StartIndex int         `json:"start_index"`
	StartGame  *StreakGame `json:"start_game,omitempty"`
	EndGame    *StreakGame `json:"end_game,omitempty"`
}

// FindLongestWinStreak scans the season chronologically, resetting on any
// loss and snapshotting the streak whenever the running maximum improves.
// A season without wins yields a zero streak, never nil.
func (a *Analyzer) FindLongestWinStreak() *WinStreakResult {
	ordered := a.chronological()

	current := 0
	best := 0
	streakStart := 0
	bestStart := 0
	var currentMatches, bestMatches []match.Record

	for i, m := range ordered {
		if !m.Win {
			current = 0
			currentMatches = nil
			continue
		}
		if current == 0 {
			streakStart = i
			currentMatches = nil
		}
		current++
		currentMatches = append(currentMatches, m)
		if current > best {
			best = current
			bestStart = streakStart
			bestMatches = append([]match.Record(nil), currentMatches...)
		}
	}

	result := &WinStreakResult{
		Streak:     best,
		StartIndex: bestStart,
	}
	if len(bestMatches) > 0 {
		result.StartGame = streakGame(bestMatches[0])
		result.EndGame = streakGame(bestMatches[len(bestMatches)-1])
	}
	return result
}

func streakGame(m match.Record) *StreakGame {
	return &StreakGame{
		Champion: m.ChampionName,
		Date:     m.CreationTime().Format(dateFormat),
		KDA:      fmt.Sprintf("%d/%d/%d", m.Kills, m.Deaths, m.Assists),
	}
}
