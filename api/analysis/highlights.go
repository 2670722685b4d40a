package analysis

import (
	"fmt"
	"riftwind/pkg/models/match"
)

// GameContext points a record stat back at the game that set it.
type GameContext struct {
	Champion string `json:"champion"`
	Date     string `json:"date"`
	Time     string `json:"time"`
	Kills    int    `json:"kills,omitempty"`
	KDA      string `json:"kda,omitempty"`
}

// HighlightsResult collects season records. Each maximum is found
// independently, so the record-holder games may differ per category.
type HighlightsResult struct {
	TotalPentakills  int `json:"total_pentakills"`
	TotalQuadrakills int `json:"total_quadrakills"`
	LongestLiving    int `json:"longest_living"`
	LargestCrit      int `json:"largest_crit"`
	LargestSpree     int `json:"largest_spree"`
	MostKillsGame    int `json:"most_kills_game"`
	TotalCCTime      int `json:"total_cc_time"`

	LongestLivingDetails *GameContext `json:"longest_living_details,omitempty"`
	LargestCritDetails   *GameContext `json:"largest_crit_details,omitempty"`
	LargestSpreeDetails  *GameContext `json:"largest_spree_details,omitempty"`
	MostKillsDetails     *GameContext `json:"most_kills_details,omitempty"`
}

// GetHighlightStats computes the season's record extremes with the context
// of the game that achieved each one.
func (a *Analyzer) GetHighlightStats() *HighlightsResult {
	if len(a.matches) == 0 {
		return nil
	}

	result := &HighlightsResult{}

	longestLiving := a.matches[0]
	largestCrit := a.matches[0]
	largestSpree := a.matches[0]
	mostKills := a.matches[0]

	for _, m := range a.matches {
		result.TotalPentakills += m.PentaKills
		result.TotalQuadrakills += m.QuadraKills
		result.TotalCCTime += m.TimeCCingOthers

		if m.LongestTimeSpentLiving > longestLiving.LongestTimeSpentLiving {
			longestLiving = m
		}
		if m.LargestCriticalStrike > largestCrit.LargestCriticalStrike {
			largestCrit = m
		}
		if m.LargestKillingSpree > largestSpree.LargestKillingSpree {
			largestSpree = m
		}
		if m.Kills > mostKills.Kills {
			mostKills = m
		}
	}

	result.LongestLiving = longestLiving.LongestTimeSpentLiving
	result.LargestCrit = largestCrit.LargestCriticalStrike
	result.LargestSpree = largestSpree.LargestKillingSpree
	result.MostKillsGame = mostKills.Kills

	result.LongestLivingDetails = gameContext(longestLiving)
	result.LargestCritDetails = gameContext(largestCrit)

	spreeCtx := gameContext(largestSpree)
	spreeCtx.Kills = largestSpree.Kills
	result.LargestSpreeDetails = spreeCtx

	killsCtx := gameContext(mostKills)
	killsCtx.KDA = fmt.Sprintf("%d/%d/%d", mostKills.Kills, mostKills.Deaths, mostKills.Assists)
	result.MostKillsDetails = killsCtx

	return result
}

func gameContext(m match.Record) *GameContext {
	return &GameContext{
		Champion: m.ChampionName,
		Date:     m.CreationTime().Format(dateFormat),
		Time:     m.CreationTime().Format(timeFormat),
	}
}

// ComebackResult is the won game with the most deaths, the closest proxy to
// "behind but won" without gold-differential data.
type ComebackResult struct {
	MatchId      string  `json:"matchId"`
	ChampionName string  `json:"championName"`
	Kills        int     `json:"kills"`
	Deaths       int     `json:"deaths"`
	Assists      int     `json:"assists"`
	GameDuration int     `json:"gameDuration"`
	Date         string  `json:"date"`
	Time         string  `json:"time"`
	KDA          float64 `json:"kda"`
}

// FindMiracleComeback picks the won game with the highest death count,
// requiring at least 8 deaths. Gold-swing detection would need timeline
// gold deltas, which aren't fetched; the death heuristic stands in for it.
func (a *Analyzer) FindMiracleComeback() *ComebackResult {
	var best *match.Record
	for i := range a.matches {
		m := &a.matches[i]
		if !m.Win || m.Deaths < 8 {
			continue
		}
		if best == nil || m.Deaths > best.Deaths {
			best = m
		}
	}

	if best == nil {
		return nil
	}

	return &ComebackResult{
		MatchId:      best.MatchId,
		ChampionName: best.ChampionName,
		Kills:        best.Kills,
		Deaths:       best.Deaths,
		Assists:      best.Assists,
		GameDuration: best.GameDuration,
		Date:         best.CreationTime().Format(dateFormat),
		Time:         best.CreationTime().Format(timeFormat),
		KDA:          round2(best.KDA()),
	}
}

// PentakillBreakerResult counts quadra kills that never became pentas.
type PentakillBreakerResult struct {
	Count int            `json:"count"`
	Games []match.Record `json:"games"`
}

// FindPentakillBreaker returns the games where a quadra kill was left
// hanging, with up to three examples.
func (a *Analyzer) FindPentakillBreaker() *PentakillBreakerResult {
	var almost []match.Record
	for _, m := range a.matches {
		if m.QuadraKills > 0 && m.PentaKills == 0 {
			almost = append(almost, m)
		}
	}

	examples := almost
	if len(examples) > 3 {
		examples = examples[:3]
	}

	return &PentakillBreakerResult{
		Count: len(almost),
		Games: examples,
	}
}
