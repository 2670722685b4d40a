package analysis

import (
	"sort"
)

// AFKStatsResult counts games where a teammate went missing.
type AFKStatsResult struct {
	GamesWithAFK int     `json:"games_with_afk"`
	WonWithAFK   int     `json:"won_with_afk"`
	AFKRate      float64 `json:"afk_rate"`
}

// CalculateAFKStats tallies games flagged with an AFK teammate and how many
// of those were still won.
func (a *Analyzer) CalculateAFKStats() *AFKStatsResult {
	result := &AFKStatsResult{}
	for _, m := range a.matches {
		if !m.TeamHadAFK {
			continue
		}
		result.GamesWithAFK++
		if m.Win {
			result.WonWithAFK++
		}
	}
	result.AFKRate = round1(winRate(result.GamesWithAFK, len(a.matches)))
	return result
}

// Rough full-game and surrender-game durations used for the time-saved
// estimate. A full game runs about 25 minutes, a surrendered one about 20.
const (
	avgFullGameSeconds  = 25 * 60
	avgSurrenderSeconds = 20 * 60
)

// SurrenderResult summarizes how often games ended in a surrender vote.
type SurrenderResult struct {
	TotalSurrenders  int     `json:"total_surrenders"`
	EarlySurrenders  int     `json:"early_surrenders"`
	SurrenderRate    float64 `json:"surrender_rate"`
	TimeSavedSeconds int     `json:"time_saved_seconds"`
	TimeSavedHours   float64 `json:"time_saved_hours"`
}

// AnalyzeSurrenders counts surrendered games and estimates the time early
// surrenders saved, at five minutes apiece.
func (a *Analyzer) AnalyzeSurrenders() *SurrenderResult {
	surrenders, early := 0, 0
	for _, m := range a.matches {
		if m.GameEndedInSurrender {
			surrenders++
		}
		if m.GameEndedInEarlySurrender {
			early++
		}
	}

	timeSaved := early * (avgFullGameSeconds - avgSurrenderSeconds)

	return &SurrenderResult{
		TotalSurrenders:  surrenders,
		EarlySurrenders:  early,
		SurrenderRate:    round1(winRate(surrenders, len(a.matches))),
		TimeSavedSeconds: timeSaved,
		TimeSavedHours:   round1(float64(timeSaved) / 3600),
	}
}

// MainChampionScenario is the "what if you only played your main" comparison.
type MainChampionScenario struct {
	Champion    string  `json:"champion"`
	GamesPlayed int     `json:"games_played"`
	WinRate     float64 `json:"winrate"`
	Difference  float64 `json:"difference"`
}

// RoleScenario is a single-role win-rate comparison.
type RoleScenario struct {
	Role    string  `json:"role"`
	WinRate float64 `json:"winrate"`
	Games   int     `json:"games"`
}

// WhatIfResult holds the counterfactual comparisons.
type WhatIfResult struct {
	MainChampionOnly MainChampionScenario `json:"main_champion_only"`
	BestRoleOnly     RoleScenario         `json:"best_role_only"`
	WorstRoleSwap    RoleScenario         `json:"worst_role_swap"`
}

// GenerateWhatIfScenarios compares the overall win rate against the
// most-played champion's and against the best and worst role. Ties on game
// count or win rate resolve by champion or role name so repeat runs agree.
func (a *Analyzer) GenerateWhatIfScenarios() *WhatIfResult {
	championGames := make(map[string]int)
	championWins := make(map[string]int)
	overallWins := 0
	for _, m := range a.matches {
		championGames[m.ChampionName]++
		if m.Win {
			championWins[m.ChampionName]++
			overallWins++
		}
	}

	mainChampion := "Unknown"
	mainGames := 0
	for _, name := range sortedKeys(championGames) {
		if championGames[name] > mainGames {
			mainChampion = name
			mainGames = championGames[name]
		}
	}

	mainWR := winRate(championWins[mainChampion], mainGames)
	overallWR := winRate(overallWins, len(a.matches))

	type roleTotals struct {
		games int
		wins  int
	}
	roles := make(map[string]*roleTotals)
	for _, m := range a.matches {
		role := m.IndividualPosition
		if role == "" {
			role = "NONE"
		}
		if roles[role] == nil {
			roles[role] = &roleTotals{}
		}
		roles[role].games++
		if m.Win {
			roles[role].wins++
		}
	}

	roleNames := make([]string, 0, len(roles))
	for name := range roles {
		roleNames = append(roleNames, name)
	}
	sort.Strings(roleNames)

	bestRole, worstRole := "NONE", "NONE"
	bestWR, worstWR := -1.0, 101.0
	for _, name := range roleNames {
		wr := winRate(roles[name].wins, roles[name].games)
		if wr > bestWR {
			bestRole = name
			bestWR = wr
		}
		if wr < worstWR {
			worstRole = name
			worstWR = wr
		}
	}

	result := &WhatIfResult{
		MainChampionOnly: MainChampionScenario{
			Champion:    mainChampion,
			GamesPlayed: mainGames,
			WinRate:     round1(mainWR),
			Difference:  round1(mainWR - overallWR),
		},
	}
	if r, ok := roles[bestRole]; ok {
		result.BestRoleOnly = RoleScenario{Role: bestRole, WinRate: round1(bestWR), Games: r.games}
	} else {
		result.BestRoleOnly = RoleScenario{Role: "NONE"}
	}
	if r, ok := roles[worstRole]; ok {
		result.WorstRoleSwap = RoleScenario{Role: worstRole, WinRate: round1(worstWR), Games: r.games}
	} else {
		result.WorstRoleSwap = RoleScenario{Role: "NONE"}
	}
	return result
}

// ChampionCount pairs a champion with how often it was played.
type ChampionCount struct {
	Name  string `json:"name"`
	Games int    `json:"games"`
}

// DiversityResult measures how concentrated the champion pool is.
type DiversityResult struct {
	UniqueChampions int             `json:"unique_champions"`
	TotalGames      int             `json:"total_games"`
	DiversityScore  float64         `json:"diversity_score"`
	Top3Champions   []ChampionCount `json:"top_3_champions"`
	Top3Percentage  float64         `json:"top_3_percentage"`
	OneTrick        bool            `json:"one_trick"`
}

// CalculateChampionDiversity reports pool size, the top-3 concentration, and
// the one-trick flag, which trips strictly above 70 percent concentration.
func (a *Analyzer) CalculateChampionDiversity() *DiversityResult {
	counts := make(map[string]int)
	for _, m := range a.matches {
		counts[m.ChampionName]++
	}

	ranked := make([]ChampionCount, 0, len(counts))
	for _, name := range sortedKeys(counts) {
		ranked = append(ranked, ChampionCount{Name: name, Games: counts[name]})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Games > ranked[j].Games
	})

	top3 := ranked
	if len(top3) > 3 {
		top3 = top3[:3]
	}
	top3Games := 0
	for _, c := range top3 {
		top3Games += c.Games
	}

	totalGames := len(a.matches)
	top3Pct := winRate(top3Games, totalGames)

	return &DiversityResult{
		UniqueChampions: len(counts),
		TotalGames:      totalGames,
		DiversityScore:  round1(winRate(len(counts), totalGames)),
		Top3Champions:   top3,
		Top3Percentage:  round1(top3Pct),
		OneTrick:        top3Pct > 70.0,
	}
}
