package match

// TimelineLog is the per-match event log. Zero or one per Record;
// routines that need it must treat absence as a valid state.
type TimelineLog struct {
	MatchId string          `json:"matchId"`
	Frames  []TimelineFrame `json:"frames"`
}

// TimelineFrame groups the discrete events emitted inside one frame interval.
type TimelineFrame struct {
	Timestamp int64           `json:"timestamp"`
	Events    []TimelineEvent `json:"events"`
}

// TimelineEvent is a single discrete event. Participant ids run 1-10,
// with 1-5 on the first team and 6-10 on the second.
type TimelineEvent struct {
	Type                    string               `json:"type"`
	Timestamp               int64                `json:"timestamp"`
	KillerId                int                  `json:"killerId"`
	VictimId                int                  `json:"victimId"`
	AssistingParticipantIds []int                `json:"assistingParticipantIds"`
	Position                *Position            `json:"position,omitempty"`
	VictimDamageReceived    []DamageContribution `json:"victimDamageReceived,omitempty"`
}

// Position on the map grid.
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// DamageContribution is one participant's share of the damage dealt to the
// victim in the window before a kill.
type DamageContribution struct {
	ParticipantId  int `json:"participantId"`
	PhysicalDamage int `json:"physicalDamage"`
	MagicDamage    int `json:"magicDamage"`
	TrueDamage     int `json:"trueDamage"`
}

// Total sums the three damage types.
func (d DamageContribution) Total() int {
	return d.PhysicalDamage + d.MagicDamage + d.TrueDamage
}

// SameTeam reports whether two participant ids fall in the same id range.
func SameTeam(a, b int) bool {
	return (a <= 5) == (b <= 5)
}
