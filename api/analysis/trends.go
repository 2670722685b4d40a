package analysis

import (
	"riftwind/pkg/models/match"
)

// Minimum match counts before the trend routines produce anything.
const (
	glowUpMinMatches         = 10
	learningCurvesMinMatches = 30
)

// HalfStats summarizes one quarter-season slice.
type HalfStats struct {
	WinRate   float64 `json:"winrate"`
	KDA       float64 `json:"kda"`
	AvgKills  float64 `json:"avg_kills"`
	AvgDeaths float64 `json:"avg_deaths"`
}

// GlowUpDelta is the signed improvement between the two slices.
type GlowUpDelta struct {
	WinRate         float64 `json:"winrate"`
	KDA             float64 `json:"kda"`
	DeathsReduction float64 `json:"deaths_reduction"`
}

// GlowUpResult compares the season's first quarter against its last.
type GlowUpResult struct {
	Early       HalfStats   `json:"early"`
	Late        HalfStats   `json:"late"`
	Improvement GlowUpDelta `json:"improvement"`
}

// CalculateGlowUp compares the oldest quarter of the season against the most
// recent one. The input list is newest first, so "early" is the tail slice
// and "late" is the head slice; the naming is inherited from the product and
// must stay this way or the reported deltas flip sign.
func (a *Analyzer) CalculateGlowUp() *GlowUpResult {
	if len(a.matches) < glowUpMinMatches {
		return nil
	}

	split := len(a.matches) / 4
	early := a.matches[len(a.matches)-split:]
	late := a.matches[:split]

	earlyStats := sliceStats(early)
	lateStats := sliceStats(late)

	return &GlowUpResult{
		Early: earlyStats,
		Late:  lateStats,
		Improvement: GlowUpDelta{
			WinRate:         round1(lateStats.WinRate - earlyStats.WinRate),
			KDA:             round2(lateStats.KDA - earlyStats.KDA),
			DeathsReduction: round2(earlyStats.AvgDeaths - lateStats.AvgDeaths),
		},
	}
}

// sliceStats aggregates win rate, KDA and per-game averages over a slice.
func sliceStats(matches []match.Record) HalfStats {
	games := len(matches)
	if games == 0 {
		return HalfStats{}
	}

	wins, kills, deaths, assists := 0, 0, 0, 0
	for _, m := range matches {
		if m.Win {
			wins++
		}
		kills += m.Kills
		deaths += m.Deaths
		assists += m.Assists
	}

	kdaDeaths := deaths
	if kdaDeaths < 1 {
		kdaDeaths = 1
	}

	return HalfStats{
		WinRate:   winRate(wins, games),
		KDA:       float64(kills+assists) / float64(kdaDeaths),
		AvgKills:  float64(kills) / float64(games),
		AvgDeaths: float64(deaths) / float64(games),
	}
}

// ThirdStats summarizes one third of the chronological season.
type ThirdStats struct {
	CSPerMin float64 `json:"cs_per_min"`
	KDA      float64 `json:"kda"`
	WinRate  float64 `json:"winrate"`
}

// LearningCurvesResult splits the season into three contiguous thirds and
// reports whether any efficiency metric trended up.
type LearningCurvesResult struct {
	Early         ThirdStats `json:"early"`
	Mid           ThirdStats `json:"mid"`
	Late          ThirdStats `json:"late"`
	CSPerMinDelta float64    `json:"cs_per_min_delta"`
	KDADelta      float64    `json:"kda_delta"`
	WinRateDelta  float64    `json:"winrate_delta"`
	IsImproving   bool       `json:"isImproving"`
}

// CalculateLearningCurves splits the chronological season into equal thirds.
// Improvement triggers on any of: CS/min up by >0.5, KDA up by >0.3, or
// win rate up by >5 points.
func (a *Analyzer) CalculateLearningCurves() *LearningCurvesResult {
	if len(a.matches) < learningCurvesMinMatches {
		return nil
	}

	ordered := a.chronological()
	third := len(ordered) / 3

	early := thirdStats(ordered[:third])
	mid := thirdStats(ordered[third : 2*third])
	late := thirdStats(ordered[2*third:])

	csDelta := late.CSPerMin - early.CSPerMin
	kdaDelta := late.KDA - early.KDA
	wrDelta := late.WinRate - early.WinRate

	return &LearningCurvesResult{
		Early:         early,
		Mid:           mid,
		Late:          late,
		CSPerMinDelta: round2(csDelta),
		KDADelta:      round2(kdaDelta),
		WinRateDelta:  round1(wrDelta),
		IsImproving:   csDelta > 0.5 || kdaDelta > 0.3 || wrDelta > 5,
	}
}

func thirdStats(matches []match.Record) ThirdStats {
	games := len(matches)
	if games == 0 {
		return ThirdStats{}
	}

	wins, kills, deaths, assists, cs := 0, 0, 0, 0, 0
	minutes := 0.0
	for _, m := range matches {
		if m.Win {
			wins++
		}
		kills += m.Kills
		deaths += m.Deaths
		assists += m.Assists
		cs += m.CreepScore()
		minutes += m.Minutes()
	}

	kdaDeaths := deaths
	if kdaDeaths < 1 {
		kdaDeaths = 1
	}
	csPerMin := 0.0
	if minutes > 0 {
		csPerMin = float64(cs) / minutes
	}

	return ThirdStats{
		CSPerMin: round2(csPerMin),
		KDA:      round2(float64(kills+assists) / float64(kdaDeaths)),
		WinRate:  round1(winRate(wins, games)),
	}
}
