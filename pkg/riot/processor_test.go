package riot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRawMatch() *RawMatch {
	raw := &RawMatch{}
	raw.Metadata.MatchId = "NA1_1234"
	raw.Info.GameMode = "CLASSIC"
	raw.Info.GameDuration = 2100
	raw.Info.GameCreation = 1736510400000
	raw.Info.GameVersion = "15.2.1"
	raw.Info.Participants = []RawParticipant{
		{
			Puuid:              "subject-puuid",
			ChampionName:       "Ahri",
			ChampionId:         103,
			TeamId:             100,
			Lane:               "MIDDLE",
			Role:               "SOLO",
			IndividualPosition: "MIDDLE",
			Kills:              7,
			Deaths:             3,
			Assists:            9,
			Win:                true,
			Item0:              3152,
			Item6:              3364,
		},
		{
			Puuid:          "teammate-puuid",
			RiotIdGameName: "Teammate",
			RiotIdTagline:  "NA1",
			ChampionName:   "Leona",
			TeamId:         100,
		},
		{
			Puuid:          "opponent-puuid",
			RiotIdGameName: "Opponent",
			RiotIdTagline:  "NA1",
			ChampionName:   "Zed",
			TeamId:         200,
		},
	}
	return raw
}

func TestProcessMatch(t *testing.T) {
	record, ok := ProcessMatch(testRawMatch(), "subject-puuid")
	require.True(t, ok)

	assert.Equal(t, "NA1_1234", record.MatchId)
	assert.Equal(t, "Ahri", record.ChampionName)
	assert.Equal(t, 7, record.Kills)
	assert.True(t, record.Win)
	assert.Equal(t, "MIDDLE", record.IndividualPosition)

	require.Len(t, record.Items, 7)
	assert.Equal(t, 3152, record.Items[0])
	assert.Equal(t, 3364, record.Items[6])

	require.Len(t, record.Teammates, 1)
	assert.Equal(t, "Teammate", record.Teammates[0].RiotIdGameName)
	require.Len(t, record.Opponents, 1)
	assert.Equal(t, "Zed", record.Opponents[0].ChampionName)

	assert.False(t, record.TeamHadAFK)
}

func TestProcessMatchSubjectMissing(t *testing.T) {
	_, ok := ProcessMatch(testRawMatch(), "someone-else")
	assert.False(t, ok)
}

func TestProcessMatchPositionDefaults(t *testing.T) {
	raw := testRawMatch()
	raw.Info.Participants[0].Lane = ""
	raw.Info.Participants[0].Role = ""
	raw.Info.Participants[0].IndividualPosition = ""

	record, ok := ProcessMatch(raw, "subject-puuid")
	require.True(t, ok)

	assert.Equal(t, "NONE", record.Lane)
	assert.Equal(t, "NONE", record.Role)
	assert.Equal(t, "NONE", record.IndividualPosition)
}

func TestProcessMatchTeamAFK(t *testing.T) {
	tests := []struct {
		name        string
		participant int
		expectAFK   bool
	}{
		{"teammate early surrender flags the team", 1, true},
		{"opponent early surrender is ignored", 2, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := testRawMatch()
			raw.Info.Participants[tt.participant].GameEndedInEarlySurrender = true

			record, ok := ProcessMatch(raw, "subject-puuid")
			require.True(t, ok)
			assert.Equal(t, tt.expectAFK, record.TeamHadAFK)
		})
	}
}

func TestProcessTimeline(t *testing.T) {
	raw := &RawTimeline{}
	raw.Info.Frames = []RawTimelineFrame{
		{
			Timestamp: 60000,
			Events: []RawTimelineEvent{
				{
					Type:                    "CHAMPION_KILL",
					Timestamp:               61000,
					KillerId:                6,
					VictimId:                1,
					AssistingParticipantIds: []int{7, 8},
					Position:                &RawPosition{X: 5000, Y: 9000},
					VictimDamageReceived: []RawDamageReceived{
						{ParticipantId: 6, PhysicalDamage: 400, MagicDamage: 100, TrueDamage: 50},
					},
				},
				{Type: "ITEM_PURCHASED", Timestamp: 62000},
			},
		},
	}

	timeline := ProcessTimeline(raw, "NA1_1234")

	assert.Equal(t, "NA1_1234", timeline.MatchId)
	require.Len(t, timeline.Frames, 1)
	require.Len(t, timeline.Frames[0].Events, 2)

	kill := timeline.Frames[0].Events[0]
	assert.Equal(t, "CHAMPION_KILL", kill.Type)
	assert.Equal(t, 6, kill.KillerId)
	require.NotNil(t, kill.Position)
	assert.Equal(t, 9000, kill.Position.Y)
	require.Len(t, kill.VictimDamageReceived, 1)
	assert.Equal(t, 550, kill.VictimDamageReceived[0].Total())

	assert.Nil(t, timeline.Frames[0].Events[1].Position)
}
