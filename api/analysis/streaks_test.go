package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFindLongestWinStreak(t *testing.T) {
	tests := []struct {
		name       string
		results    []bool
		wantStreak int
		wantStart  int
	}{
		{"noMatches", nil, 0, 0},
		{"noWins", repeat(false, 5), 0, 0},
		{"allWins", repeat(true, 7), 7, 0},
		{"streakInMiddle", []bool{false, true, true, true, false, true}, 3, 1},
		{"tieKeepsFirst", []bool{true, true, false, true, true}, 2, 0},
		{"streakAtEnd", []bool{false, false, true, true, true}, 3, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := newTestAnalyzer(seasonFromResults(tt.results)).FindLongestWinStreak()
			assert.NotNil(t, result)
			assert.Equal(t, tt.wantStreak, result.Streak)
			assert.Equal(t, tt.wantStart, result.StartIndex)
			assert.LessOrEqual(t, result.Streak, len(tt.results))

			if tt.wantStreak == 0 {
				assert.Nil(t, result.StartGame)
				assert.Nil(t, result.EndGame)
			} else {
				assert.NotNil(t, result.StartGame)
				assert.NotNil(t, result.EndGame)
			}
		})
	}
}

func TestFindLongestWinStreakSnapshot(t *testing.T) {
	matches := seasonFromResults([]bool{false, true, true, false})
	// Chronological indexes 1 and 2; newest-first positions 2 and 1.
	matches[2].ChampionName = "Zed"
	matches[2].Kills, matches[2].Deaths, matches[2].Assists = 10, 2, 4
	matches[1].ChampionName = "Jinx"
	matches[1].Kills, matches[1].Deaths, matches[1].Assists = 3, 1, 12

	result := newTestAnalyzer(matches).FindLongestWinStreak()
	assert.Equal(t, 2, result.Streak)
	assert.Equal(t, "Zed", result.StartGame.Champion)
	assert.Equal(t, "10/2/4", result.StartGame.KDA)
	assert.Equal(t, "Jinx", result.EndGame.Champion)
	assert.Equal(t, "3/1/12", result.EndGame.KDA)
}
