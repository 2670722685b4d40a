package analysis

import (
	"sort"
)

const monthKeyFormat = "2006-01"

// HotStreakMonth is the calendar month with the best performance.
type HotStreakMonth struct {
	Month   string  `json:"month"`
	Games   int     `json:"games"`
	Wins    int     `json:"wins"`
	WinRate float64 `json:"winrate"`
	KDA     float64 `json:"kda"`
}

// SlumpMonth is the calendar month with the worst win rate.
type SlumpMonth struct {
	Month   string  `json:"month"`
	Games   int     `json:"games"`
	Wins    int     `json:"wins"`
	WinRate float64 `json:"winrate"`
}

type monthTotals struct {
	games   int
	wins    int
	kills   int
	deaths  int
	assists int
}

func (t monthTotals) kda() float64 {
	deaths := t.deaths
	if deaths < 1 {
		deaths = 1
	}
	return float64(t.kills+t.assists) / float64(deaths)
}

// bucketByMonth aggregates per-month totals keyed by "YYYY-MM" in UTC.
func (a *Analyzer) bucketByMonth() map[string]*monthTotals {
	months := make(map[string]*monthTotals)
	for _, m := range a.matches {
		key := m.CreationTime().Format(monthKeyFormat)
		t, ok := months[key]
		if !ok {
			t = &monthTotals{}
			months[key] = t
		}
		t.games++
		if m.Win {
			t.wins++
		}
		t.kills += m.Kills
		t.deaths += m.Deaths
		t.assists += m.Assists
	}
	return months
}

// FindHotStreakMonth picks the month with the lexicographic max of
// (win rate, KDA). Nil when there are no matches.
func (a *Analyzer) FindHotStreakMonth() *HotStreakMonth {
	months := a.bucketByMonth()
	if len(months) == 0 {
		return nil
	}

	keys := make([]string, 0, len(months))
	for k := range months {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	best := keys[0]
	for _, k := range keys[1:] {
		cur, top := months[k], months[best]
		curWR, topWR := winRate(cur.wins, cur.games), winRate(top.wins, top.games)
		if curWR > topWR || (curWR == topWR && cur.kda() > top.kda()) {
			best = k
		}
	}

	t := months[best]
	return &HotStreakMonth{
		Month:   best,
		Games:   t.games,
		Wins:    t.wins,
		WinRate: round1(winRate(t.wins, t.games)),
		KDA:     round2(t.kda()),
	}
}

// FindSlumpMonth picks the month with the lowest win rate.
func (a *Analyzer) FindSlumpMonth() *SlumpMonth {
	months := a.bucketByMonth()
	if len(months) == 0 {
		return nil
	}

	keys := make([]string, 0, len(months))
	for k := range months {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	worst := keys[0]
	for _, k := range keys[1:] {
		if winRate(months[k].wins, months[k].games) < winRate(months[worst].wins, months[worst].games) {
			worst = k
		}
	}

	t := months[worst]
	return &SlumpMonth{
		Month:   worst,
		Games:   t.games,
		Wins:    t.wins,
		WinRate: round1(winRate(t.wins, t.games)),
	}
}

// TrackRoleEvolution counts games per declared position for every month.
func (a *Analyzer) TrackRoleEvolution() map[string]map[string]int {
	evolution := make(map[string]map[string]int)
	for _, m := range a.matches {
		key := m.CreationTime().Format(monthKeyFormat)
		if evolution[key] == nil {
			evolution[key] = make(map[string]int)
		}
		role := m.IndividualPosition
		if role == "" {
			role = "NONE"
		}
		evolution[key][role]++
	}
	return evolution
}
