package analysis

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"riftwind/pkg/models/match"
)

func TestRunNoMatches(t *testing.T) {
	analyzer := newTestAnalyzer(nil)

	result, err := analyzer.Run()
	assert.Nil(t, result)
	assert.ErrorIs(t, err, ErrNoMatches)
}

func TestRunAllKeysPresent(t *testing.T) {
	analyzer := newTestAnalyzer(seasonFromResults(repeat(true, 40)))

	result, err := analyzer.Run()
	assert.NoError(t, err)

	payload, err := json.Marshal(result)
	assert.NoError(t, err)

	var asMap map[string]json.RawMessage
	assert.NoError(t, json.Unmarshal(payload, &asMap))

	keys := []string{
		"nemesis", "bff", "hot_streak_month", "slump_month", "glow_up",
		"miracle_comeback", "pentakill_breaker", "afk_stats", "highlight_stats",
		"role_evolution", "longest_win_streak", "surrender_analysis",
		"what_if_scenarios", "time_analysis", "champion_diversity",
		"total_hours", "cs_efficiency", "kill_steals", "tilt_detection",
		"champion_fatigue", "learning_curves", "meta_adaptation",
	}
	for _, key := range keys {
		assert.Contains(t, asMap, key)
	}
}

// Running the full orchestration twice on the same input must produce
// byte-identical output.
func TestRunIdempotent(t *testing.T) {
	results := []bool{true, true, false, true, false, false, true, true, false, true, true, false}
	matches := seasonFromResults(results)
	for i := range matches {
		matches[i].ChampionName = []string{"Ahri", "Zed", "Jinx"}[i%3]
		matches[i].IndividualPosition = []string{"MIDDLE", "JUNGLE", "BOTTOM"}[i%3]
	}

	first, err := newTestAnalyzer(matches).Run()
	assert.NoError(t, err)
	second, err := newTestAnalyzer(matches).Run()
	assert.NoError(t, err)

	firstJSON, err := json.Marshal(first)
	assert.NoError(t, err)
	secondJSON, err := json.Marshal(second)
	assert.NoError(t, err)
	assert.Equal(t, firstJSON, secondJSON)
}

func TestKDAZeroDeaths(t *testing.T) {
	m := match.Record{Kills: 5, Deaths: 0, Assists: 3}
	assert.Equal(t, 8.0, m.KDA())
}

// Every win-rate value anywhere in the output must land inside [0,100].
func TestWinRatesInRange(t *testing.T) {
	tests := []struct {
		name    string
		results []bool
	}{
		{"allWins", repeat(true, 35)},
		{"allLosses", repeat(false, 35)},
		{"mixed", []bool{true, false, false, true, true, false, true, false, true, true, false, false}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := newTestAnalyzer(seasonFromResults(tt.results)).Run()
			assert.NoError(t, err)

			payload, err := json.Marshal(result)
			assert.NoError(t, err)

			var decoded map[string]any
			assert.NoError(t, json.Unmarshal(payload, &decoded))
			assertRatesInRange(t, "", decoded)
		})
	}
}

// assertRatesInRange walks the decoded payload and checks every key that
// reports a rate or percentage.
func assertRatesInRange(t *testing.T, path string, node any) {
	t.Helper()

	switch v := node.(type) {
	case map[string]any:
		for key, child := range v {
			childPath := path + "/" + key
			switch key {
			case "winrate", "afk_rate", "surrender_rate", "steal_rate",
				"top_3_percentage", "early_winrate", "late_winrate":
				rate, ok := child.(float64)
				assert.True(t, ok, "%s is not numeric", childPath)
				assert.GreaterOrEqual(t, rate, 0.0, childPath)
				assert.LessOrEqual(t, rate, 100.0, childPath)
			default:
				assertRatesInRange(t, childPath, child)
			}
		}
	case []any:
		for i, child := range v {
			assertRatesInRange(t, fmt.Sprintf("%s[%d]", path, i), child)
		}
	}
}
