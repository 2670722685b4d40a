package analysis

import (
	"sort"
)

const (
	fatigueMinMatches = 20
	metaMinMatches    = 20

	// Session game numbers 1-3 count as fresh, 5+ as deep into a session.
	fatigueEarlyCutoff = 3
	fatigueLateCutoff  = 5

	fatigueDropThreshold = 15.0
	metaDiversityFloor   = 0.3
)

// FatigueEntry is one champion's fresh-vs-deep session comparison.
type FatigueEntry struct {
	Champion     string  `json:"champion"`
	EarlyGames   int     `json:"early_games"`
	LateGames    int     `json:"late_games"`
	EarlyWinRate float64 `json:"early_winrate"`
	LateWinRate  float64 `json:"late_winrate"`
	Drop         float64 `json:"drop"`
	Fatigued     bool    `json:"fatigued"`
}

// FatigueResult lists up to three champions with the biggest win-rate drop
// between fresh and deep session games.
type FatigueResult struct {
	Champions  []FatigueEntry `json:"champions"`
	HasFatigue bool           `json:"has_fatigue"`
}

// DetectChampionFatigue tracks a per-champion session game number that
// resets whenever the played champion changes from the previous game, then
// compares win rates for session games 1-3 against session games 5+.
func (a *Analyzer) DetectChampionFatigue() *FatigueResult {
	if len(a.matches) < fatigueMinMatches {
		return nil
	}

	ordered := a.chronological()

	// results[champion][sessionGame] holds the win/loss outcomes recorded
	// at that position within a session.
	results := make(map[string]map[int][]bool)

	sessionGame := 0
	prevChampion := ""
	for _, m := range ordered {
		if m.ChampionName == prevChampion {
			sessionGame++
		} else {
			sessionGame = 1
			prevChampion = m.ChampionName
		}

		if results[m.ChampionName] == nil {
			results[m.ChampionName] = make(map[int][]bool)
		}
		results[m.ChampionName][sessionGame] = append(results[m.ChampionName][sessionGame], m.Win)
	}

	var entries []FatigueEntry
	for champion, sessions := range results {
		if len(sessions) < 5 {
			continue
		}

		earlyGames, earlyWins := 0, 0
		lateGames, lateWins := 0, 0
		for num, outcomes := range sessions {
			for _, win := range outcomes {
				switch {
				case num <= fatigueEarlyCutoff:
					earlyGames++
					if win {
						earlyWins++
					}
				case num >= fatigueLateCutoff:
					lateGames++
					if win {
						lateWins++
					}
				}
			}
		}

		if earlyGames < 3 || lateGames < 3 {
			continue
		}

		earlyWR := winRate(earlyWins, earlyGames)
		lateWR := winRate(lateWins, lateGames)
		drop := earlyWR - lateWR

		entries = append(entries, FatigueEntry{
			Champion:     champion,
			EarlyGames:   earlyGames,
			LateGames:    lateGames,
			EarlyWinRate: round1(earlyWR),
			LateWinRate:  round1(lateWR),
			Drop:         round1(drop),
			Fatigued:     drop >= fatigueDropThreshold,
		})
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Drop != entries[j].Drop {
			return entries[i].Drop > entries[j].Drop
		}
		return entries[i].Champion < entries[j].Champion
	})
	if len(entries) > 3 {
		entries = entries[:3]
	}

	hasFatigue := false
	for _, e := range entries {
		if e.Fatigued {
			hasFatigue = true
		}
	}

	return &FatigueResult{
		Champions:  entries,
		HasFatigue: hasFatigue,
	}
}

// PatchStats is the per-patch aggregate used by the meta analysis.
type PatchStats struct {
	Patch           string  `json:"patch"`
	Games           int     `json:"games"`
	Wins            int     `json:"wins"`
	WinRate         float64 `json:"winrate"`
	ChampionsPlayed int     `json:"champions_played"`
	DiversityScore  float64 `json:"diversity_score"`
}

// MetaAdaptationResult reports the most-played patches and whether the
// player rotates champions when the meta shifts.
type MetaAdaptationResult struct {
	Patches       []PatchStats `json:"patches"`
	MeanDiversity float64      `json:"mean_diversity"`
	IsAdapting    bool         `json:"isAdapting"`
}

// AnalyzeMetaAdaptation buckets games by major.minor patch and scores
// champion diversity (distinct champions / games) across the five busiest
// patches. Adapting means the mean diversity exceeds 0.3.
func (a *Analyzer) AnalyzeMetaAdaptation() *MetaAdaptationResult {
	if len(a.matches) < metaMinMatches {
		return nil
	}

	type patchBucket struct {
		games     int
		wins      int
		champions map[string]bool
	}
	patches := make(map[string]*patchBucket)

	for _, m := range a.matches {
		key := m.PatchVersion()
		b, ok := patches[key]
		if !ok {
			b = &patchBucket{champions: make(map[string]bool)}
			patches[key] = b
		}
		b.games++
		if m.Win {
			b.wins++
		}
		b.champions[m.ChampionName] = true
	}

	stats := make([]PatchStats, 0, len(patches))
	for key, b := range patches {
		stats = append(stats, PatchStats{
			Patch:           key,
			Games:           b.games,
			Wins:            b.wins,
			WinRate:         round1(winRate(b.wins, b.games)),
			ChampionsPlayed: len(b.champions),
			DiversityScore:  round2(float64(len(b.champions)) / float64(b.games)),
		})
	}

	sort.Slice(stats, func(i, j int) bool {
		if stats[i].Games != stats[j].Games {
			return stats[i].Games > stats[j].Games
		}
		return stats[i].Patch > stats[j].Patch
	})
	if len(stats) > 5 {
		stats = stats[:5]
	}

	sum := 0.0
	for _, s := range stats {
		sum += s.DiversityScore
	}
	mean := sum / float64(len(stats))

	return &MetaAdaptationResult{
		Patches:       stats,
		MeanDiversity: round2(mean),
		IsAdapting:    mean > metaDiversityFloor,
	}
}
