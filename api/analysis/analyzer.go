package analysis

import (
	"errors"
	"math"
	"riftwind/pkg/models/match"
)

// Format strings for game context dates, matching what the frontend renders.
const (
	dateFormat = "January 02, 2006"
	timeFormat = "03:04 PM"
)

// ErrNoMatches is returned when there is nothing to analyze.
// This is the only fatal condition; every routine below degrades to a nil
// payload instead of failing.
var ErrNoMatches = errors.New("no matches to analyze")

// Analyzer owns one request's match history, newest first, plus any timeline
// logs that came with it. It is built per request and thrown away with the
// response; every routine is a pure read over the slices.
type Analyzer struct {
	matches      []match.Record
	timelines    []match.TimelineLog
	summonerName string
	region       string
}

// New creates an analyzer over a newest-first match list.
func New(matches []match.Record, summonerName, region string, timelines []match.TimelineLog) *Analyzer {
	return &Analyzer{
		matches:      matches,
		timelines:    timelines,
		summonerName: summonerName,
		region:       region,
	}
}

// Result is the full year-in-review fact mapping. Nil fields mean the
// routine had too little data; the keys are fixed and always present.
type Result struct {
	Nemesis           *NemesisResult            `json:"nemesis"`
	BFF               *AllyResult               `json:"bff"`
	HotStreakMonth    *HotStreakMonth           `json:"hot_streak_month"`
	SlumpMonth        *SlumpMonth               `json:"slump_month"`
	GlowUp            *GlowUpResult             `json:"glow_up"`
	MiracleComeback   *ComebackResult           `json:"miracle_comeback"`
	PentakillBreaker  *PentakillBreakerResult   `json:"pentakill_breaker"`
	AFKStats          *AFKStatsResult           `json:"afk_stats"`
	HighlightStats    *HighlightsResult         `json:"highlight_stats"`
	RoleEvolution     map[string]map[string]int `json:"role_evolution"`
	LongestWinStreak  *WinStreakResult          `json:"longest_win_streak"`
	SurrenderAnalysis *SurrenderResult          `json:"surrender_analysis"`
	WhatIfScenarios   *WhatIfResult             `json:"what_if_scenarios"`
	TimeAnalysis      *TimeOfDayResult          `json:"time_analysis"`
	ChampionDiversity *DiversityResult          `json:"champion_diversity"`
	TotalHours        *TotalHoursResult         `json:"total_hours"`
	CSEfficiency      *CSEfficiencyResult       `json:"cs_efficiency"`
	KillSteals        *KillStealResult          `json:"kill_steals"`
	TiltDetection     *TiltResult               `json:"tilt_detection"`
	ChampionFatigue   *FatigueResult            `json:"champion_fatigue"`
	LearningCurves    *LearningCurvesResult     `json:"learning_curves"`
	MetaAdaptation    *MetaAdaptationResult     `json:"meta_adaptation"`
}

// Run executes every routine in a fixed order and assembles the mapping.
// The order doesn't affect correctness, but keeping it stable makes traces
// comparable between runs.
func (a *Analyzer) Run() (*Result, error) {
	if len(a.matches) == 0 {
		return nil, ErrNoMatches
	}

	return &Result{
		Nemesis:           a.FindNemesis(),
		BFF:               a.FindBestAlly(),
		HotStreakMonth:    a.FindHotStreakMonth(),
		SlumpMonth:        a.FindSlumpMonth(),
		GlowUp:            a.CalculateGlowUp(),
		MiracleComeback:   a.FindMiracleComeback(),
		PentakillBreaker:  a.FindPentakillBreaker(),
		AFKStats:          a.CalculateAFKStats(),
		HighlightStats:    a.GetHighlightStats(),
		RoleEvolution:     a.TrackRoleEvolution(),
		LongestWinStreak:  a.FindLongestWinStreak(),
		SurrenderAnalysis: a.AnalyzeSurrenders(),
		WhatIfScenarios:   a.GenerateWhatIfScenarios(),
		TimeAnalysis:      a.AnalyzePerformanceByTime(),
		ChampionDiversity: a.CalculateChampionDiversity(),
		TotalHours:        a.CalculateTotalHours(),
		CSEfficiency:      a.CalculateCSEfficiency(),
		KillSteals:        a.DetectKillSteals(),
		TiltDetection:     a.DetectTilt(),
		ChampionFatigue:   a.DetectChampionFatigue(),
		LearningCurves:    a.CalculateLearningCurves(),
		MetaAdaptation:    a.AnalyzeMetaAdaptation(),
	}, nil
}

// chronological returns a copy of the match list in played order.
// The input arrives newest first, so this is a simple reversal.
func (a *Analyzer) chronological() []match.Record {
	out := make([]match.Record, len(a.matches))
	for i, m := range a.matches {
		out[len(a.matches)-1-i] = m
	}
	return out
}

// winRate computes wins/games*100, with an empty denominator counting as 0.
func winRate(wins, games int) float64 {
	if games == 0 {
		return 0
	}
	return float64(wins) / float64(games) * 100
}

// round1 rounds to one decimal place.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// round2 rounds to two decimal places.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
