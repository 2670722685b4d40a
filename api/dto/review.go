package dto

import (
	"riftwind/pkg/models/match"
)

// SummonerInfo is the header block of the summoner payload.
type SummonerInfo struct {
	Name          string `json:"name"`
	Level         int    `json:"level"`
	ProfileIconId int    `json:"profileIconId"`
}

// MostPlayedChampion is the top mastery entry with its resolved name.
type MostPlayedChampion struct {
	ChampionId     int    `json:"championId"`
	ChampionName   string `json:"championName"`
	ChampionLevel  int    `json:"championLevel"`
	ChampionPoints int    `json:"championPoints"`
}

// DeathPosition is one kill event with map coordinates from the timeline.
type DeathPosition struct {
	Timestamp               int64           `json:"timestamp"`
	Position                *match.Position `json:"position"`
	VictimId                int             `json:"victimId"`
	KillerId                int             `json:"killerId"`
	AssistingParticipantIds []int           `json:"assistingParticipantIds"`
}

// TimelineSummary reports whether the first match had a timeline and the
// kill positions found in it.
type TimelineSummary struct {
	HasTimeline    bool            `json:"hasTimeline"`
	DeathPositions []DeathPosition `json:"deathPositions"`
	TotalKills     int             `json:"totalKills"`
}

// SummonerData is the full response of the summoner pipeline.
type SummonerData struct {
	Summoner           SummonerInfo        `json:"summoner"`
	MostPlayedChampion *MostPlayedChampion `json:"mostPlayedChampion"`
	TotalGames         int                 `json:"totalGames"`
	RecentMatches      []match.Record      `json:"recentMatches"`
	Timelines          []match.TimelineLog `json:"-"`
	FirstMatchTimeline TimelineSummary     `json:"firstMatchTimeline"`
}

// PreviewStats is the quick aggregate over the first matches.
type PreviewStats struct {
	MatchesAnalyzed    int     `json:"matches_analyzed"`
	Wins               int     `json:"wins"`
	Losses             int     `json:"losses"`
	WinRate            float64 `json:"winrate"`
	AvgKills           float64 `json:"avg_kills"`
	AvgDeaths          float64 `json:"avg_deaths"`
	AvgAssists         float64 `json:"avg_assists"`
	KDA                float64 `json:"kda"`
	MostPlayedChampion string  `json:"most_played_champion"`
	MostPlayedGames    int     `json:"most_played_games"`
}

// YearInReview bundles the analysis output with the generated narrative.
type YearInReview struct {
	Analysis     any    `json:"analysis"`
	Narrative    string `json:"narrative"`
	TotalMatches int    `json:"total_matches"`
}

// Roast is the roast endpoint response.
type Roast struct {
	Roast string `json:"roast"`
}
