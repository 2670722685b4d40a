package reviewservice

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"riftwind/api/analysis"
	servicetestutil "riftwind/api/services/testutil"
	"riftwind/internal/testutil"
	"riftwind/pkg/models/match"
	"riftwind/pkg/regions"
	"riftwind/pkg/riot"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestPreviewStatsNoMatches(t *testing.T) {
	service, _, _, _, _, _ := setupTestService()

	stats, err := service.PreviewStats(nil)

	assert.Error(t, err)
	assert.Nil(t, stats)
}

func TestPreviewStatsAggregates(t *testing.T) {
	service, _, _, _, _, _ := setupTestService()

	matches := []match.Record{
		playedMatch(2, true, "Ahri"),
		playedMatch(1, false, "Ahri"),
		playedMatch(0, true, "Zed"),
	}

	stats, err := service.PreviewStats(matches)
	require.NoError(t, err)

	assert.Equal(t, 3, stats.MatchesAnalyzed)
	assert.Equal(t, 2, stats.Wins)
	assert.Equal(t, 1, stats.Losses)
	assert.Equal(t, 66.7, stats.WinRate)
	assert.Equal(t, 6.0, stats.AvgKills)
	assert.Equal(t, 4.0, stats.AvgDeaths)
	assert.Equal(t, 8.0, stats.AvgAssists)
	assert.Equal(t, 3.5, stats.KDA)
	assert.Equal(t, "Ahri", stats.MostPlayedChampion)
	assert.Equal(t, 2, stats.MostPlayedGames)
}

func TestPreviewStatsTruncatesToTen(t *testing.T) {
	service, _, _, _, _, _ := setupTestService()

	stats, err := service.PreviewStats(playedSeason(12, "Ahri"))
	require.NoError(t, err)

	assert.Equal(t, 10, stats.MatchesAnalyzed)
	assert.Equal(t, 5, stats.Wins)
	assert.Equal(t, 50.0, stats.WinRate)
}

func TestPreviewStatsZeroDeaths(t *testing.T) {
	service, _, _, _, _, _ := setupTestService()

	perfect := playedMatch(0, true, "Ahri")
	perfect.Deaths = 0

	stats, err := service.PreviewStats([]match.Record{perfect})
	require.NoError(t, err)

	assert.Equal(t, 0.0, stats.AvgDeaths)
	assert.Equal(t, 14.0, stats.KDA)
}

func TestYearInReviewRejectsShortHistory(t *testing.T) {
	service, _, _, _, _, _ := setupTestService()

	review, err := service.YearInReview(context.Background(), playedSeason(4, "Ahri"), "Test#NA1", "na1", nil)

	assert.ErrorIs(t, err, ErrNotEnoughMatches)
	assert.Nil(t, review)
}

func TestYearInReviewSuccess(t *testing.T) {
	service, _, _, _, mockGenerator, _ := setupTestService()

	mockGenerator.On("Generate", mock.Anything, mock.Anything).
		Return("What a year it was!", nil)

	review, err := service.YearInReview(context.Background(), playedSeason(6, "Ahri"), "Test#NA1", "na1", nil)
	require.NoError(t, err)

	assert.Equal(t, "What a year it was!", review.Narrative)
	assert.Equal(t, 6, review.TotalMatches)
	assert.NotNil(t, review.Analysis)

	servicetestutil.VerifyAllMocks(t, mockGenerator)
}

func TestYearInReviewGeneratorFallback(t *testing.T) {
	service, _, _, _, mockGenerator, _ := setupTestService()

	failure := testutil.GetMockUpstreamError[string]()
	mockGenerator.On("Generate", mock.Anything, mock.Anything).
		Return(failure.Data, failure.Err)

	review, err := service.YearInReview(context.Background(), playedSeason(6, "Ahri"), "Test#NA1", "na1", nil)
	require.NoError(t, err)

	assert.Equal(t, "Had an incredible year with 6 games played!", review.Narrative)

	servicetestutil.VerifyAllMocks(t, mockGenerator)
}

func TestRoastNoMatches(t *testing.T) {
	service, _, _, _, _, _ := setupTestService()

	roast, err := service.Roast(context.Background(), nil, "Test#NA1", "na1")

	assert.Error(t, err)
	assert.Empty(t, roast)
}

func TestRoastWithMetaEnrichment(t *testing.T) {
	service, _, _, _, mockGenerator, mockMeta := setupTestService()

	mockMeta.On("ChampionAnalysis", mock.Anything, "Ahri", "MIDDLE", "na1").
		Return("Ahri mid reference winrate 52%", nil)
	mockGenerator.On("Generate", mock.Anything, mock.MatchedBy(func(prompt string) bool {
		return strings.Contains(prompt, "Ahri mid reference winrate 52%")
	})).Return("You got roasted.", nil)

	roast, err := service.Roast(context.Background(), playedSeason(6, "Ahri"), "Test#NA1", "na1")
	require.NoError(t, err)

	assert.Equal(t, "You got roasted.", roast)

	servicetestutil.VerifyAllMocks(t, mockGenerator, mockMeta)
}

func TestRoastGeneratorFallback(t *testing.T) {
	service, _, _, _, mockGenerator, mockMeta := setupTestService()

	mockMeta.On("ChampionAnalysis", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return("", errors.New("meta unavailable"))
	mockGenerator.On("Generate", mock.Anything, mock.Anything).
		Return("", errors.New("generation failed"))

	roast, err := service.Roast(context.Background(), playedSeason(6, "Ahri"), "Test#NA1", "na1")
	require.NoError(t, err)

	assert.Equal(t, analysis.RoastFallback, roast)
}

func TestMatchDetailMemoryCacheHit(t *testing.T) {
	service, mockRiot, mockRedis, mockMemCache, _, _ := setupTestService()

	raw := rawMatchFor("NA1_0001", "puuid-1", 1000)
	mockMemCache.On("Get", "riot:match:NA1_0001").Return(raw)

	result, err := service.matchDetail(context.Background(), regions.Americas, "NA1_0001")
	require.NoError(t, err)

	assert.Same(t, raw, result)

	mockRiot.AssertNotCalled(t, "MatchById", mock.Anything, mock.Anything, mock.Anything)
	mockRedis.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
	servicetestutil.VerifyAllMocks(t, mockMemCache)
}

func TestMatchDetailRedisCacheHit(t *testing.T) {
	service, mockRiot, mockRedis, mockMemCache, _, _ := setupTestService()

	raw := rawMatchFor("NA1_0001", "puuid-1", 1000)
	payload, err := json.Marshal(raw)
	require.NoError(t, err)

	mockMemCache.On("Get", "riot:match:NA1_0001").Return(nil)
	mockRedis.On("Get", mock.Anything, "riot:match:NA1_0001").Return(string(payload), nil)
	mockMemCache.On("Set", "riot:match:NA1_0001", mock.Anything, matchMemoryCacheDuration).Return()

	result, err := service.matchDetail(context.Background(), regions.Americas, "NA1_0001")
	require.NoError(t, err)

	assert.Equal(t, "NA1_0001", result.Metadata.MatchId)

	mockRiot.AssertNotCalled(t, "MatchById", mock.Anything, mock.Anything, mock.Anything)
	servicetestutil.VerifyAllMocks(t, mockMemCache, mockRedis)
}

func TestMatchDetailFullMiss(t *testing.T) {
	service, mockRiot, mockRedis, mockMemCache, _, _ := setupTestService()

	raw := rawMatchFor("NA1_0001", "puuid-1", 1000)

	mockMemCache.On("Get", "riot:match:NA1_0001").Return(nil)
	mockRedis.On("Get", mock.Anything, "riot:match:NA1_0001").Return("", errors.New("redis: nil"))
	mockRiot.On("MatchById", mock.Anything, regions.Americas, "NA1_0001").Return(raw, nil)
	mockMemCache.On("Set", "riot:match:NA1_0001", raw, matchMemoryCacheDuration).Return()
	mockRedis.On("Set", mock.Anything, "riot:match:NA1_0001", mock.Anything, matchRedisCacheDuration).Return(nil)

	result, err := service.matchDetail(context.Background(), regions.Americas, "NA1_0001")
	require.NoError(t, err)

	assert.Same(t, raw, result)

	servicetestutil.VerifyAllMocks(t, mockRiot, mockRedis, mockMemCache)
}

func TestFetchSummonerData(t *testing.T) {
	service, mockRiot, mockRedis, mockMemCache, _, _ := setupTestService()

	mockArchiver := new(servicetestutil.MockPayloadArchiver)
	service.archiver = mockArchiver

	account := &riot.Account{Puuid: "puuid-1", GameName: "Test", TagLine: "NA1"}
	summoner := &riot.Summoner{SummonerLevel: 120, ProfileIconId: 512}
	masteries := []riot.Mastery{{ChampionId: 103, ChampionLevel: 7, ChampionPoints: 250000}}
	matchIds := []string{"NA1_0002", "NA1_0001"}

	mockRiot.On("AccountByRiotId", mock.Anything, regions.Americas, "Test", "NA1").Return(account, nil)
	mockRiot.On("SummonerByPuuid", mock.Anything, regions.Platform("na1"), "puuid-1").Return(summoner, nil)
	mockRiot.On("MasteriesByPuuid", mock.Anything, regions.Platform("na1"), "puuid-1").Return(masteries, nil)
	mockRiot.On("ChampionNameById", mock.Anything, 103).Return("Ahri", nil)
	mockRiot.On("MatchIdsByPuuid", mock.Anything, regions.Americas, "puuid-1", mock.Anything, mock.Anything, maxMatchIds).
		Return(matchIds, nil)

	// Both matches miss every cache layer.
	mockMemCache.On("Get", mock.Anything).Return(nil)
	mockRedis.On("Get", mock.Anything, mock.Anything).Return("", errors.New("redis: nil"))
	mockMemCache.On("Set", mock.Anything, mock.Anything, matchMemoryCacheDuration).Return()
	mockRedis.On("Set", mock.Anything, mock.Anything, mock.Anything, matchRedisCacheDuration).Return(nil)

	mockRiot.On("MatchById", mock.Anything, regions.Americas, "NA1_0002").
		Return(rawMatchFor("NA1_0002", "puuid-1", 2000), nil)
	mockRiot.On("MatchById", mock.Anything, regions.Americas, "NA1_0001").
		Return(rawMatchFor("NA1_0001", "puuid-1", 1000), nil)

	timeline := &riot.RawTimeline{}
	timeline.Info.Frames = []riot.RawTimelineFrame{
		{
			Timestamp: 60000,
			Events: []riot.RawTimelineEvent{
				{
					Type:      "CHAMPION_KILL",
					Timestamp: 61000,
					KillerId:  6,
					VictimId:  1,
					Position:  &riot.RawPosition{X: 5000, Y: 5000},
				},
			},
		},
	}
	mockRiot.On("TimelineById", mock.Anything, regions.Americas, "NA1_0002").Return(timeline, nil)

	mockArchiver.On("Save", mock.Anything, "Test", "NA1", "na1", mock.Anything).Return(nil)

	data, err := service.FetchSummonerData(context.Background(), "Test", "NA1", "na1")
	require.NoError(t, err)

	assert.Equal(t, "Test#NA1", data.Summoner.Name)
	assert.Equal(t, 120, data.Summoner.Level)
	assert.Equal(t, 2, data.TotalGames)

	require.Len(t, data.RecentMatches, 2)
	assert.Equal(t, "NA1_0002", data.RecentMatches[0].MatchId)
	assert.Equal(t, "NA1_0001", data.RecentMatches[1].MatchId)
	assert.Equal(t, "Ahri", data.RecentMatches[0].ChampionName)
	require.Len(t, data.RecentMatches[0].Teammates, 1)
	require.Len(t, data.RecentMatches[0].Opponents, 1)

	require.NotNil(t, data.MostPlayedChampion)
	assert.Equal(t, "Ahri", data.MostPlayedChampion.ChampionName)
	assert.Equal(t, 250000, data.MostPlayedChampion.ChampionPoints)

	assert.True(t, data.FirstMatchTimeline.HasTimeline)
	assert.Equal(t, 1, data.FirstMatchTimeline.TotalKills)
	require.Len(t, data.Timelines, 1)

	servicetestutil.VerifyAllMocks(t, mockRiot, mockArchiver)
}
