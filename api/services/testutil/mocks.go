package testutil

import (
	"context"
	"testing"
	"time"

	"riftwind/pkg/regions"
	"riftwind/pkg/riot"

	"github.com/stretchr/testify/mock"
)

// Assert the expectations of all mocks.
func VerifyAllMocks(t *testing.T, mocks ...any) {
	t.Helper()

	for _, m := range mocks {
		if mockObj, ok := m.(interface{ AssertExpectations(*testing.T) bool }); ok {
			mockObj.AssertExpectations(t)
		}
	}
}

// ============================================================================
// Mock Implementations used on the Review service tests.
// ============================================================================

// Riot client mock implementation.
type MockRiotFetcher struct {
	mock.Mock
}

func (m *MockRiotFetcher) AccountByRiotId(ctx context.Context, routing regions.Routing, gameName, tagLine string) (*riot.Account, error) {
	args := m.Called(ctx, routing, gameName, tagLine)
	return args.Get(0).(*riot.Account), args.Error(1)
}

func (m *MockRiotFetcher) SummonerByPuuid(ctx context.Context, platform regions.Platform, puuid string) (*riot.Summoner, error) {
	args := m.Called(ctx, platform, puuid)
	return args.Get(0).(*riot.Summoner), args.Error(1)
}

func (m *MockRiotFetcher) MasteriesByPuuid(ctx context.Context, platform regions.Platform, puuid string) ([]riot.Mastery, error) {
	args := m.Called(ctx, platform, puuid)
	return args.Get(0).([]riot.Mastery), args.Error(1)
}

func (m *MockRiotFetcher) MatchIdsByPuuid(ctx context.Context, routing regions.Routing, puuid string, start, end time.Time, count int) ([]string, error) {
	args := m.Called(ctx, routing, puuid, start, end, count)
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockRiotFetcher) MatchById(ctx context.Context, routing regions.Routing, matchId string) (*riot.RawMatch, error) {
	args := m.Called(ctx, routing, matchId)
	return args.Get(0).(*riot.RawMatch), args.Error(1)
}

func (m *MockRiotFetcher) TimelineById(ctx context.Context, routing regions.Routing, matchId string) (*riot.RawTimeline, error) {
	args := m.Called(ctx, routing, matchId)
	return args.Get(0).(*riot.RawTimeline), args.Error(1)
}

func (m *MockRiotFetcher) ChampionNameById(ctx context.Context, championId int) (string, error) {
	args := m.Called(ctx, championId)
	return args.Get(0).(string), args.Error(1)
}

// Redis client mock implementation.
type MockReviewRedisClient struct {
	mock.Mock
}

func (m *MockReviewRedisClient) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.Get(0).(string), args.Error(1)
}

func (m *MockReviewRedisClient) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	args := m.Called(ctx, key, value, ttl)
	return args.Error(0)
}

// MemCache mock implementation.
type MockMemCache struct {
	mock.Mock
}

func (m *MockMemCache) Get(key string) any {
	args := m.Called(key)
	return args.Get(0)
}

func (m *MockMemCache) Set(key string, value any, ttl time.Duration) {
	m.Called(key, value, ttl)
}

// Archiver mock implementation.
type MockPayloadArchiver struct {
	mock.Mock
}

func (m *MockPayloadArchiver) Save(ctx context.Context, gameName, tagLine, region string, responses map[string]any) error {
	args := m.Called(ctx, gameName, tagLine, region, responses)
	return args.Error(0)
}

// Text generator mock implementation.
type MockGenerator struct {
	mock.Mock
}

func (m *MockGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	args := m.Called(ctx, prompt)
	return args.Get(0).(string), args.Error(1)
}

// OP.GG meta client mock implementation.
type MockMetaFetcher struct {
	mock.Mock
}

func (m *MockMetaFetcher) ChampionAnalysis(ctx context.Context, champion, position, region string) (string, error) {
	args := m.Called(ctx, champion, position, region)
	return args.Get(0).(string), args.Error(1)
}
