package reviewservice

import (
	"fmt"
	"time"

	servicetestutil "riftwind/api/services/testutil"
	"riftwind/pkg/models/match"
	"riftwind/pkg/riot"
)

// Helper to initialize the service with all mocks.
func setupTestService() (*ReviewService, *servicetestutil.MockRiotFetcher, *servicetestutil.MockReviewRedisClient, *servicetestutil.MockMemCache, *servicetestutil.MockGenerator, *servicetestutil.MockMetaFetcher) {
	mockRiot := new(servicetestutil.MockRiotFetcher)
	mockRedis := new(servicetestutil.MockReviewRedisClient)
	mockMemCache := new(servicetestutil.MockMemCache)
	mockGenerator := new(servicetestutil.MockGenerator)
	mockMeta := new(servicetestutil.MockMetaFetcher)

	service := &ReviewService{
		riot:      mockRiot,
		redis:     mockRedis,
		memCache:  mockMemCache,
		generator: mockGenerator,
		meta:      mockMeta,
	}

	return service, mockRiot, mockRedis, mockMemCache, mockGenerator, mockMeta
}

// Create a played match with controllable outcome and champion.
func playedMatch(index int, win bool, champion string) match.Record {
	creation := time.Date(2025, time.March, 1, 12, 0, 0, 0, time.UTC).
		Add(time.Duration(index) * 24 * time.Hour)

	return match.Record{
		MatchId:            fmt.Sprintf("NA1_%04d", index),
		GameMode:           "CLASSIC",
		GameDuration:       1800,
		GameCreation:       creation.UnixMilli(),
		GameVersion:        "15.5.1",
		ChampionName:       champion,
		IndividualPosition: "MIDDLE",
		Kills:              6,
		Deaths:             4,
		Assists:            8,
		Win:                win,
	}
}

// Create a season of matches, newest first.
func playedSeason(count int, champion string) []match.Record {
	matches := make([]match.Record, 0, count)
	for i := count - 1; i >= 0; i-- {
		matches = append(matches, playedMatch(i, i%2 == 0, champion))
	}
	return matches
}

// Create a raw match payload containing the subject player.
func rawMatchFor(matchId, puuid string, creation int64) *riot.RawMatch {
	raw := &riot.RawMatch{}
	raw.Metadata.MatchId = matchId
	raw.Info.GameMode = "CLASSIC"
	raw.Info.GameDuration = 1800
	raw.Info.GameCreation = creation
	raw.Info.GameVersion = "15.5.1"
	raw.Info.Participants = []riot.RawParticipant{
		{
			Puuid:        puuid,
			ChampionName: "Ahri",
			TeamId:       100,
			Kills:        6,
			Deaths:       4,
			Assists:      8,
			Win:          true,
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
			Win:            false,
		},
	}
	return raw
}
