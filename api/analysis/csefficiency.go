package analysis

import (
	tiervalues "riftwind/pkg/riotvalues/tier"
)

// CSEfficiencyResult breaks down farming efficiency per month and estimates
// a skill tier from the overall CS/min.
type CSEfficiencyResult struct {
	Monthly         map[string]MonthlyCS `json:"monthly"`
	OverallCSPerMin float64              `json:"overall_cs_per_min"`
	PrimaryRole     string               `json:"primary_role"`
	EstimatedTier   string               `json:"estimated_tier"`
}

// MonthlyCS holds one month's creep score aggregates.
type MonthlyCS struct {
	Games    int     `json:"games"`
	CS       int     `json:"cs"`
	Minutes  float64 `json:"minutes"`
	CSPerMin float64 `json:"cs_per_min"`
}

// CalculateCSEfficiency sums creep score and minutes per month and maps the
// overall CS/min onto the tier threshold table. The primary role is jungle
// when over half the games were jungle, otherwise the most played position.
func (a *Analyzer) CalculateCSEfficiency() *CSEfficiencyResult {
	if len(a.matches) == 0 {
		return nil
	}

	type bucket struct {
		games   int
		cs      int
		minutes float64
	}
	months := make(map[string]*bucket)
	roleCounts := make(map[string]int)

	totalCS := 0
	totalMinutes := 0.0

	for _, m := range a.matches {
		key := m.CreationTime().Format(monthKeyFormat)
		b, ok := months[key]
		if !ok {
			b = &bucket{}
			months[key] = b
		}
		b.games++
		b.cs += m.CreepScore()
		b.minutes += m.Minutes()

		totalCS += m.CreepScore()
		totalMinutes += m.Minutes()

		role := m.IndividualPosition
		if role == "" {
			role = "NONE"
		}
		roleCounts[role]++
	}

	monthly := make(map[string]MonthlyCS, len(months))
	for key, b := range months {
		perMin := 0.0
		if b.minutes > 0 {
			perMin = float64(b.cs) / b.minutes
		}
		monthly[key] = MonthlyCS{
			Games:    b.games,
			CS:       b.cs,
			Minutes:  round1(b.minutes),
			CSPerMin: round2(perMin),
		}
	}

	overall := 0.0
	if totalMinutes > 0 {
		overall = float64(totalCS) / totalMinutes
	}

	return &CSEfficiencyResult{
		Monthly:         monthly,
		OverallCSPerMin: round2(overall),
		PrimaryRole:     a.primaryRole(roleCounts),
		EstimatedTier:   tiervalues.TierForCSPerMin(overall),
	}
}

// primaryRole is JUNGLE when over 50% of games were jungle; otherwise the
// most played position, sorted-name stable on ties.
func (a *Analyzer) primaryRole(roleCounts map[string]int) string {
	if winRate(roleCounts["JUNGLE"], len(a.matches)) > 50 {
		return "JUNGLE"
	}

	keys := sortedKeys(roleCounts)
	best := keys[0]
	for _, k := range keys[1:] {
		if roleCounts[k] > roleCounts[best] {
			best = k
		}
	}
	return best
}
