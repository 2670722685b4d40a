package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"riftwind/pkg/models/match"
)

func TestGetHighlightStats(t *testing.T) {
	matches := seasonFromResults(repeat(true, 4))

	matches[0].PentaKills = 1
	matches[0].QuadraKills = 2
	matches[0].Kills = 22
	matches[0].Deaths = 3
	matches[0].Assists = 7
	matches[0].ChampionName = "Katarina"

	matches[1].LongestTimeSpentLiving = 2400
	matches[1].ChampionName = "Soraka"

	matches[2].LargestCriticalStrike = 1800
	matches[2].LargestKillingSpree = 12
	matches[2].Kills = 15
	matches[2].ChampionName = "Tryndamere"

	matches[3].TimeCCingOthers = 90

	result := newTestAnalyzer(matches).GetHighlightStats()
	assert.NotNil(t, result)

	assert.Equal(t, 1, result.TotalPentakills)
	assert.Equal(t, 2, result.TotalQuadrakills)
	assert.Equal(t, 2400, result.LongestLiving)
	assert.Equal(t, 1800, result.LargestCrit)
	assert.Equal(t, 12, result.LargestSpree)
	assert.Equal(t, 22, result.MostKillsGame)
	assert.Equal(t, 90, result.TotalCCTime)

	// Record holders are independent per category.
	assert.Equal(t, "Soraka", result.LongestLivingDetails.Champion)
	assert.Equal(t, "Tryndamere", result.LargestCritDetails.Champion)
	assert.Equal(t, "Tryndamere", result.LargestSpreeDetails.Champion)
	assert.Equal(t, 15, result.LargestSpreeDetails.Kills)
	assert.Equal(t, "Katarina", result.MostKillsDetails.Champion)
	assert.Equal(t, "22/3/7", result.MostKillsDetails.KDA)
}

func TestGetHighlightStatsEmpty(t *testing.T) {
	assert.Nil(t, newTestAnalyzer(nil).GetHighlightStats())
}

func TestFindMiracleComeback(t *testing.T) {
	tests := []struct {
		name       string
		setup      func([]match.Record)
		wantNil    bool
		wantDeaths int
	}{
		{
			name:    "noQualifyingGames",
			setup:   func(m []match.Record) { m[0].Deaths = 7 },
			wantNil: true,
		},
		{
			name: "lossesIgnored",
			setup: func(m []match.Record) {
				m[0].Deaths = 12
				m[0].Win = false
			},
			wantNil: true,
		},
		{
			name: "highestDeathWin",
			setup: func(m []match.Record) {
				m[0].Deaths = 9
				m[1].Deaths = 14
				m[2].Deaths = 8
			},
			wantDeaths: 14,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			matches := seasonFromResults(repeat(true, 3))
			tt.setup(matches)

			result := newTestAnalyzer(matches).FindMiracleComeback()
			if tt.wantNil {
				assert.Nil(t, result)
				return
			}
			assert.NotNil(t, result)
			assert.Equal(t, tt.wantDeaths, result.Deaths)
		})
	}
}

func TestFindPentakillBreaker(t *testing.T) {
	matches := seasonFromResults(repeat(true, 6))
	for i := 0; i < 5; i++ {
		matches[i].QuadraKills = 1
	}
	// A quadra that became a penta doesn't count as almost.
	matches[4].PentaKills = 1

	result := newTestAnalyzer(matches).FindPentakillBreaker()
	assert.NotNil(t, result)
	assert.Equal(t, 4, result.Count)
	assert.Len(t, result.Games, 3)
}
