package match

import (
	"strings"
	"time"
)

// Record holds one finished game from the subject player's perspective.
// Built by the riot processor from the raw match payload; numeric fields
// default to zero and list fields to empty when the API omits them.
type Record struct {
	MatchId      string `json:"matchId"`
	GameMode     string `json:"gameMode"`
	GameDuration int    `json:"gameDuration"`
	GameCreation int64  `json:"gameCreation"`
	GameVersion  string `json:"gameVersion"`

	GameEndedInEarlySurrender bool `json:"gameEndedInEarlySurrender"`
	GameEndedInSurrender      bool `json:"gameEndedInSurrender"`

	ChampionName       string `json:"championName"`
	ChampionId         int    `json:"championId"`
	Lane               string `json:"lane"`
	Role               string `json:"role"`
	IndividualPosition string `json:"individualPosition"`

	Kills   int  `json:"kills"`
	Deaths  int  `json:"deaths"`
	Assists int  `json:"assists"`
	Win     bool `json:"win"`

	PentaKills             int `json:"pentaKills"`
	QuadraKills            int `json:"quadraKills"`
	TripleKills            int `json:"tripleKills"`
	DoubleKills            int `json:"doubleKills"`
	LargestMultiKill       int `json:"largestMultiKill"`
	KillingSprees          int `json:"killingSprees"`
	LargestKillingSpree    int `json:"largestKillingSpree"`
	LargestCriticalStrike  int `json:"largestCriticalStrike"`
	LongestTimeSpentLiving int `json:"longestTimeSpentLiving"`

	GoldEarned           int `json:"goldEarned"`
	TotalMinionsKilled   int `json:"totalMinionsKilled"`
	NeutralMinionsKilled int `json:"neutralMinionsKilled"`

	TotalDamageDealt int `json:"totalDamageDealt"`
	TotalDamageTaken int `json:"totalDamageTaken"`

	TimeCCingOthers int `json:"timeCCingOthers"`

	VisionScore int `json:"visionScore"`
	WardsPlaced int `json:"wardsPlaced"`
	WardsKilled int `json:"wardsKilled"`

	ObjectivesStolen int `json:"objectivesStolen"`
	TurretKills      int `json:"turretKills"`
	InhibitorKills   int `json:"inhibitorKills"`

	TeamId     int  `json:"teamId"`
	TeamHadAFK bool `json:"teamHadAFK"`

	Teammates []Participant `json:"teammates"`
	Opponents []Participant `json:"opponents"`

	// Final item slots 0-6, zero when empty.
	Items []int `json:"items"`
}

// Participant describes another player that shared the lobby.
type Participant struct {
	Puuid          string `json:"puuid"`
	RiotIdGameName string `json:"riotIdGameName"`
	RiotIdTagline  string `json:"riotIdTagline"`
	ChampionName   string `json:"championName"`
}

// RiotId joins the display name and tagline the way the client shows it.
func (p Participant) RiotId() string {
	return p.RiotIdGameName + "#" + p.RiotIdTagline
}

// KDA computes the standard (kills+assists)/max(deaths,1) ratio.
func (r Record) KDA() float64 {
	deaths := r.Deaths
	if deaths < 1 {
		deaths = 1
	}
	return float64(r.Kills+r.Assists) / float64(deaths)
}

// CreationTime converts the epoch millisecond creation stamp.
// Always UTC so calendar bucketing is stable across hosts.
func (r Record) CreationTime() time.Time {
	return time.UnixMilli(r.GameCreation).UTC()
}

// CreepScore is lane plus jungle minions.
func (r Record) CreepScore() int {
	return r.TotalMinionsKilled + r.NeutralMinionsKilled
}

// Minutes returns the game duration in minutes.
func (r Record) Minutes() float64 {
	return float64(r.GameDuration) / 60.0
}

// PatchVersion normalizes the game version to major.minor.
func (r Record) PatchVersion() string {
	parts := strings.SplitN(r.GameVersion, ".", 3)
	if len(parts) < 2 {
		return "unknown"
	}
	return parts[0] + "." + parts[1]
}
