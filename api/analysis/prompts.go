package analysis

import (
	"fmt"
	"strings"
)

// RoastFallback is returned when the roast generator is unreachable.
const RoastFallback = "Even the roast bot gave up on you... just like your teammates."

// NarrativeFallback is the canned narrative used when generation fails.
func (a *Analyzer) NarrativeFallback() string {
	return fmt.Sprintf("Had an incredible year with %d games played!", len(a.matches))
}

// BuildNarrativePrompt interpolates the headline facts of a finished analysis
// into the year-in-review narrative prompt.
func (a *Analyzer) BuildNarrativePrompt(result *Result) string {
	wins := 0
	for _, m := range a.matches {
		if m.Win {
			wins++
		}
	}

	nemesisName := "None"
	if result.Nemesis != nil {
		nemesisName = result.Nemesis.Name
	}
	bffName := "None"
	if result.BFF != nil {
		bffName = result.BFF.Name
	}
	hotMonth := "Unknown"
	if result.HotStreakMonth != nil {
		hotMonth = result.HotStreakMonth.Month
	}
	pentakills := 0
	if result.HighlightStats != nil {
		pentakills = result.HighlightStats.TotalPentakills
	}

	return fmt.Sprintf(`You are a League of Legends analyst creating a fun year-in-review for %s.

Based on these stats, write a short, engaging narrative (3-4 sentences) about their year:

Total Games: %d
Win Rate: %.1f%%
Nemesis: %s
BFF: %s
Hot Streak Month: %s
Pentakills: %d

Make it fun, personal, and celebratory! Use emojis sparingly.`,
		a.summonerName, len(a.matches), winRate(wins, len(a.matches)),
		nemesisName, bffName, hotMonth, pentakills)
}

// BuildRoastPrompt gathers the most roastable stats across the season and
// packs them into the roast prompt.
func (a *Analyzer) BuildRoastPrompt() string {
	totalGames := len(a.matches)
	wins := 0
	mostDeaths := 0
	deathsSum := 0
	worstKDA := 0.0
	kdaSum := 0.0
	for i, m := range a.matches {
		if m.Win {
			wins++
		}
		if m.Deaths > mostDeaths {
			mostDeaths = m.Deaths
		}
		deathsSum += m.Deaths
		kda := m.KDA()
		if i == 0 || kda < worstKDA {
			worstKDA = kda
		}
		kdaSum += kda
	}

	avgDeaths := 0.0
	avgKDA := 0.0
	if totalGames > 0 {
		avgDeaths = float64(deathsSum) / float64(totalGames)
		avgKDA = kdaSum / float64(totalGames)
	}

	afk := a.CalculateAFKStats()
	diversity := a.CalculateChampionDiversity()
	nemesis := a.FindNemesis()
	breaker := a.FindPentakillBreaker()
	timeAnalysis := a.AnalyzePerformanceByTime()
	worstChamp := a.worstChampion()

	var b strings.Builder
	fmt.Fprintf(&b, `You are a SAVAGE League of Legends roaster. You've been given extensive data about %s's gameplay. Pick the FUNNIEST and most BRUTAL things to roast them about. Be creative, witty, and ruthless (but playful)!

COMPREHENSIVE PLAYER DATA:

Overall Performance:
- Total Games: %d
- Win Rate: %.1f%%
- Average KDA: %.2f
- Worst KDA in a game: %.2f

Death Stats:
- Most deaths in one game: %d
- Average deaths per game: %.1f

Tilt & Mentality:
- Games with AFK teammates: %d
- Won with AFK: %d

Champion Pool:
- Unique champions played: %d
- One-trick?: %t
- Top 3 champions take up %.1f%% of games
`,
		a.summonerName, totalGames, winRate(wins, totalGames), avgKDA, worstKDA,
		mostDeaths, avgDeaths, afk.GamesWithAFK, afk.WonWithAFK,
		diversity.UniqueChampions, diversity.OneTrick, diversity.Top3Percentage)

	if worstChamp != nil {
		fmt.Fprintf(&b, "- Worst champion: %s with %.1f%% winrate\n", worstChamp.Name, worstChamp.WinRate)
	}

	b.WriteString("\nRivals:\n")
	if nemesis != nil {
		fmt.Fprintf(&b, "- Has a nemesis (%s) who beat them %d times\n", nemesis.Name, nemesis.Losses)
	} else {
		b.WriteString("- No nemesis (no one cares enough)\n")
	}

	fmt.Fprintf(&b, "\nMissed Opportunities:\n- Quadra kills that didn't become Pentas: %d\n", breaker.Count)

	b.WriteString("\nTime of Day Performance:\n")
	if timeAnalysis != nil {
		fmt.Fprintf(&b, "- Best time: %s\n", timeAnalysis.BestTime)
	}

	b.WriteString("\nYOUR TASK:\nWrite 2-4 hilarious roast lines. Choose the FUNNIEST stats to roast. Mix in some unexpected observations. Be savage but keep it fun!")

	return b.String()
}

// worstChampStats is the lowest win-rate champion with at least 3 games.
type worstChampStats struct {
	Name    string
	WinRate float64
	Games   int
}

func (a *Analyzer) worstChampion() *worstChampStats {
	games := make(map[string]int)
	wins := make(map[string]int)
	for _, m := range a.matches {
		games[m.ChampionName]++
		if m.Win {
			wins[m.ChampionName]++
		}
	}

	var worst *worstChampStats
	for _, name := range sortedKeys(games) {
		if games[name] < 3 {
			continue
		}
		wr := winRate(wins[name], games[name])
		if worst == nil || wr < worst.WinRate {
			worst = &worstChampStats{Name: name, WinRate: wr, Games: games[name]}
		}
	}
	return worst
}
