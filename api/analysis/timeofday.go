package analysis

// Fixed hour-of-day bands. Band order doubles as the deterministic
// tie-break order when picking the best time.
var dayPeriods = []struct {
	label     string
	startHour int
	endHour   int
}{
	{"Night Owl (12am-6am)", 0, 6},
	{"Early Bird (6am-12pm)", 6, 12},
	{"Afternoon (12pm-6pm)", 12, 18},
	{"Evening (6pm-12am)", 18, 24},
}

// TimeOfDayResult maps day periods to performance; bands without games are
// omitted from the detail map.
type TimeOfDayResult struct {
	Periods  map[string]PeriodStats `json:"periods"`
	BestTime string                 `json:"best_time"`
}

// PeriodStats holds one band's aggregates, all rounded to one decimal.
type PeriodStats struct {
	Games     int     `json:"games"`
	WinRate   float64 `json:"winrate"`
	AvgKills  float64 `json:"avg_kills"`
	AvgDeaths float64 `json:"avg_deaths"`
}

// AnalyzePerformanceByTime buckets games into four fixed day periods and
// reports per-band performance plus the band with the highest win rate.
func (a *Analyzer) AnalyzePerformanceByTime() *TimeOfDayResult {
	if len(a.matches) == 0 {
		return nil
	}

	type totals struct {
		games  int
		wins   int
		kills  int
		deaths int
	}
	buckets := make(map[string]*totals)

	for _, m := range a.matches {
		hour := m.CreationTime().Hour()
		label := dayPeriods[0].label
		for _, p := range dayPeriods {
			if hour >= p.startHour && hour < p.endHour {
				label = p.label
				break
			}
		}

		t, ok := buckets[label]
		if !ok {
			t = &totals{}
			buckets[label] = t
		}
		t.games++
		if m.Win {
			t.wins++
		}
		t.kills += m.Kills
		t.deaths += m.Deaths
	}

	result := &TimeOfDayResult{Periods: make(map[string]PeriodStats, len(buckets))}

	bestRate := -1.0
	for _, p := range dayPeriods {
		t, ok := buckets[p.label]
		if !ok {
			continue
		}
		rate := winRate(t.wins, t.games)
		result.Periods[p.label] = PeriodStats{
			Games:     t.games,
			WinRate:   round1(rate),
			AvgKills:  round1(float64(t.kills) / float64(t.games)),
			AvgDeaths: round1(float64(t.deaths) / float64(t.games)),
		}
		if rate > bestRate {
			bestRate = rate
			result.BestTime = p.label
		}
	}

	return result
}

// TotalHoursResult sums up the season's time investment.
type TotalHoursResult struct {
	TotalHours         float64 `json:"total_hours"`
	TotalMinutes       float64 `json:"total_minutes"`
	TotalSeconds       int     `json:"total_seconds"`
	AverageGameMinutes float64 `json:"average_game_minutes"`
	LongestGameMinutes float64 `json:"longest_game_minutes"`
	ShortestGameMinutes float64 `json:"shortest_game_minutes"`
}

// CalculateTotalHours aggregates game durations with per-game extremes.
func (a *Analyzer) CalculateTotalHours() *TotalHoursResult {
	if len(a.matches) == 0 {
		return nil
	}

	totalSeconds := 0
	longest := 0
	shortest := a.matches[0].GameDuration
	for _, m := range a.matches {
		totalSeconds += m.GameDuration
		if m.GameDuration > longest {
			longest = m.GameDuration
		}
		if m.GameDuration < shortest {
			shortest = m.GameDuration
		}
	}

	return &TotalHoursResult{
		TotalHours:          round1(float64(totalSeconds) / 3600),
		TotalMinutes:        round1(float64(totalSeconds) / 60),
		TotalSeconds:        totalSeconds,
		AverageGameMinutes:  round1(float64(totalSeconds) / float64(len(a.matches)) / 60),
		LongestGameMinutes:  round1(float64(longest) / 60),
		ShortestGameMinutes: round1(float64(shortest) / 60),
	}
}
