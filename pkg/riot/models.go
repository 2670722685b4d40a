package riot

// Account is the riot account resolved from a riot id.
type Account struct {
	Puuid    string `json:"puuid"`
	GameName string `json:"gameName"`
	TagLine  string `json:"tagLine"`
}

// Summoner is the platform-level summoner record.
type Summoner struct {
	SummonerLevel int `json:"summonerLevel"`
	ProfileIconId int `json:"profileIconId"`
}

// Mastery is one champion mastery entry, ordered by points descending.
type Mastery struct {
	ChampionId     int `json:"championId"`
	ChampionLevel  int `json:"championLevel"`
	ChampionPoints int `json:"championPoints"`
}

// RawMatch is the match-v5 payload, trimmed to the fields the processor
// consumes.
type RawMatch struct {
	Metadata RawMatchMetadata `json:"metadata"`
	Info     RawMatchInfo     `json:"info"`
}

type RawMatchMetadata struct {
	MatchId string `json:"matchId"`
}

type RawMatchInfo struct {
	GameMode     string           `json:"gameMode"`
	GameDuration int              `json:"gameDuration"`
	GameCreation int64            `json:"gameCreation"`
	GameVersion  string           `json:"gameVersion"`
	Participants []RawParticipant `json:"participants"`
}

// RawParticipant mirrors the per-player stat block of match-v5.
type RawParticipant struct {
	Puuid          string `json:"puuid"`
	RiotIdGameName string `json:"riotIdGameName"`
	RiotIdTagline  string `json:"riotIdTagline"`

	TeamId int `json:"teamId"`

	ChampionName       string `json:"championName"`
	ChampionId         int    `json:"championId"`
	Lane               string `json:"lane"`
	Role               string `json:"role"`
	IndividualPosition string `json:"individualPosition"`

	Kills   int  `json:"kills"`
	Deaths  int  `json:"deaths"`
	Assists int  `json:"assists"`
	Win     bool `json:"win"`

	GameEndedInEarlySurrender bool `json:"gameEndedInEarlySurrender"`
	GameEndedInSurrender      bool `json:"gameEndedInSurrender"`

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

	TotalDamageDealtToChampions int `json:"totalDamageDealtToChampions"`
	TotalDamageTaken            int `json:"totalDamageTaken"`

	TimeCCingOthers int `json:"timeCCingOthers"`

	VisionScore int `json:"visionScore"`
	WardsPlaced int `json:"wardsPlaced"`
	WardsKilled int `json:"wardsKilled"`

	ObjectivesStolen int `json:"objectivesStolen"`
	TurretKills      int `json:"turretKills"`
	InhibitorKills   int `json:"inhibitorKills"`

	Item0 int `json:"item0"`
	Item1 int `json:"item1"`
	Item2 int `json:"item2"`
	Item3 int `json:"item3"`
	Item4 int `json:"item4"`
	Item5 int `json:"item5"`
	Item6 int `json:"item6"`
}

// RawTimeline is the match-v5 timeline payload.
type RawTimeline struct {
	Metadata RawMatchMetadata `json:"metadata"`
	Info     RawTimelineInfo  `json:"info"`
}

type RawTimelineInfo struct {
	Frames []RawTimelineFrame `json:"frames"`
}

type RawTimelineFrame struct {
	Timestamp int64              `json:"timestamp"`
	Events    []RawTimelineEvent `json:"events"`
}

type RawTimelineEvent struct {
	Type                    string              `json:"type"`
	Timestamp               int64               `json:"timestamp"`
	KillerId                int                 `json:"killerId"`
	VictimId                int                 `json:"victimId"`
	AssistingParticipantIds []int               `json:"assistingParticipantIds"`
	Position                *RawPosition        `json:"position"`
	VictimDamageReceived    []RawDamageReceived `json:"victimDamageReceived"`
}

type RawPosition struct {
	X int `json:"x"`
	Y int `json:"y"`
}

type RawDamageReceived struct {
	ParticipantId  int `json:"participantId"`
	PhysicalDamage int `json:"physicalDamage"`
	MagicDamage    int `json:"magicDamage"`
	TrueDamage     int `json:"trueDamage"`
}
