package analysis

import (
	"riftwind/pkg/models/match"
	"sort"
)

// NemesisResult is the opponent the player lost to the most.
type NemesisResult struct {
	Name   string             `json:"name"`
	Losses int                `json:"losses"`
	Info   *match.Participant `json:"info"`
}

// AllyResult is the most co-played teammate, ties broken by win rate.
type AllyResult struct {
	Name    string             `json:"name"`
	Games   int                `json:"games"`
	Wins    int                `json:"wins"`
	WinRate float64            `json:"winrate"`
	Info    *match.Participant `json:"info"`
}

// FindNemesis tallies opponents across lost games and returns the one with
// the most losses. Nil when the player never lost. True ties resolve by
// sorted key order, which is arbitrary but stable.
func (a *Analyzer) FindNemesis() *NemesisResult {
	losses := make(map[string]int)
	info := make(map[string]match.Participant)

	for _, m := range a.matches {
		if m.Win {
			continue
		}
		for _, opp := range m.Opponents {
			key := opp.RiotId()
			losses[key]++
			info[key] = opp
		}
	}

	if len(losses) == 0 {
		return nil
	}

	keys := sortedKeys(losses)
	best := keys[0]
	for _, k := range keys[1:] {
		if losses[k] > losses[best] {
			best = k
		}
	}

	winner := info[best]
	return &NemesisResult{
		Name:   best,
		Losses: losses[best],
		Info:   &winner,
	}
}

// FindBestAlly finds the teammate with the most shared games, ties broken
// by win rate together. Teammates without a display name are skipped.
func (a *Analyzer) FindBestAlly() *AllyResult {
	type duo struct {
		games int
		wins  int
	}
	stats := make(map[string]*duo)
	info := make(map[string]match.Participant)

	for _, m := range a.matches {
		for _, tm := range m.Teammates {
			if tm.RiotIdGameName == "" {
				continue
			}
			key := tm.RiotId()
			d, ok := stats[key]
			if !ok {
				d = &duo{}
				stats[key] = d
			}
			d.games++
			if m.Win {
				d.wins++
			}
			info[key] = tm
		}
	}

	if len(stats) == 0 {
		return nil
	}

	keys := make([]string, 0, len(stats))
	for k := range stats {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	best := keys[0]
	for _, k := range keys[1:] {
		cur, top := stats[k], stats[best]
		if cur.games > top.games {
			best = k
			continue
		}
		if cur.games == top.games && winRate(cur.wins, cur.games) > winRate(top.wins, top.games) {
			best = k
		}
	}

	top := stats[best]
	bestInfo := info[best]
	return &AllyResult{
		Name:    best,
		Games:   top.games,
		Wins:    top.wins,
		WinRate: round1(winRate(top.wins, top.games)),
		Info:    &bestInfo,
	}
}

// sortedKeys returns the map keys in sorted order for deterministic scans.
func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
