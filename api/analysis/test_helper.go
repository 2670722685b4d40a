package analysis

import (
	"fmt"
	"time"

	"riftwind/pkg/models/match"
)

// seasonStart anchors the synthetic seasons so month bucketing is stable.
var seasonStart = time.Date(2025, time.January, 10, 14, 0, 0, 0, time.UTC)

// testMatch builds a minimal record. Index 0 is the oldest game; callers
// mutate additional fields as needed.
func testMatch(index int, win bool, champion string) match.Record {
	created := seasonStart.Add(time.Duration(index) * 24 * time.Hour)
	return match.Record{
		MatchId:      fmt.Sprintf("NA1_%04d", index),
		GameMode:     "CLASSIC",
		GameDuration: 1800,
		GameCreation: created.UnixMilli(),
		GameVersion:  "15.1.654.9591",
		ChampionName: champion,
		Kills:        5,
		Deaths:       4,
		Assists:      7,
		Win:          win,
		TeamId:       100,
	}
}

// seasonFromResults builds one match per result, oldest first in the input,
// returned newest first the way the riot processor hands them over.
func seasonFromResults(results []bool) []match.Record {
	matches := make([]match.Record, len(results))
	for i, win := range results {
		matches[len(results)-1-i] = testMatch(i, win, "Ahri")
	}
	return matches
}

// repeat returns a season of n matches with the same outcome.
func repeat(win bool, n int) []bool {
	out := make([]bool, n)
	for i := range out {
		out[i] = win
	}
	return out
}

// newTestAnalyzer wraps a match list with default identity fields.
func newTestAnalyzer(matches []match.Record) *Analyzer {
	return New(matches, "TestPlayer#NA1", "na1", nil)
}
