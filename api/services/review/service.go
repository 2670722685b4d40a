package reviewservice

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"sort"
	"time"

	"riftwind/api/analysis"
	"riftwind/api/dto"
	"riftwind/pkg/genai"
	"riftwind/pkg/models/match"
	"riftwind/pkg/regions"
	"riftwind/pkg/riot"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

const (
	// How many match details are fetched for the full analysis.
	maxMatchDetails = 50

	// How many ids the year-bounded listing asks for.
	maxMatchIds = 100

	// The review needs a minimum of history to say anything useful.
	minReviewMatches = 5

	// Preview looks at the first matches only.
	previewMatches = 10

	matchMemoryCacheDuration = 15 * time.Minute
	matchRedisCacheDuration  = 24 * time.Hour

	// Concurrent detail fetches. The rate limiter is the real ceiling;
	// this just keeps the goroutine count bounded.
	detailFetchConcurrency = 5
)

// ErrNotEnoughMatches rejects review requests with too little history.
var ErrNotEnoughMatches = fmt.Errorf("need at least %d matches for year-in-review", minReviewMatches)

// RiotFetcher is the slice of the riot client the service consumes.
type RiotFetcher interface {
	AccountByRiotId(ctx context.Context, routing regions.Routing, gameName, tagLine string) (*riot.Account, error)
	SummonerByPuuid(ctx context.Context, platform regions.Platform, puuid string) (*riot.Summoner, error)
	MasteriesByPuuid(ctx context.Context, platform regions.Platform, puuid string) ([]riot.Mastery, error)
	MatchIdsByPuuid(ctx context.Context, routing regions.Routing, puuid string, start, end time.Time, count int) ([]string, error)
	MatchById(ctx context.Context, routing regions.Routing, matchId string) (*riot.RawMatch, error)
	TimelineById(ctx context.Context, routing regions.Routing, matchId string) (*riot.RawTimeline, error)
	ChampionNameById(ctx context.Context, championId int) (string, error)
}

// ReviewRedisClient is the slice of the redis client the service consumes.
type ReviewRedisClient interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
}

// PayloadArchiver stores the raw response bundle for later replay.
type PayloadArchiver interface {
	Save(ctx context.Context, gameName, tagLine, region string, responses map[string]any) error
}

// MetaFetcher is the OP.GG lookup used to enrich the roast.
type MetaFetcher interface {
	ChampionAnalysis(ctx context.Context, champion, position, region string) (string, error)
}

// MatchMemCache is the slice of the memory cache the service consumes.
type MatchMemCache interface {
	Get(key string) any
	Set(key string, value any, ttl time.Duration)
}

// ReviewService runs the fetch, analyze and narrate pipeline.
type ReviewService struct {
	riot      RiotFetcher
	redis     ReviewRedisClient
	memCache  MatchMemCache
	archiver  PayloadArchiver
	generator genai.Generator
	meta      MetaFetcher
}

// ReviewServiceDeps is the dependency list for the review service.
type ReviewServiceDeps struct {
	Riot      RiotFetcher
	Redis     ReviewRedisClient
	MemCache  MatchMemCache
	Archiver  PayloadArchiver
	Generator genai.Generator
	Meta      MetaFetcher
}

// NewReviewService creates a review service.
func NewReviewService(deps *ReviewServiceDeps) *ReviewService {
	return &ReviewService{
		riot:      deps.Riot,
		redis:     deps.Redis,
		memCache:  deps.MemCache,
		archiver:  deps.Archiver,
		generator: deps.Generator,
		meta:      deps.Meta,
	}
}

// FetchSummonerData resolves a riot id and assembles the season's processed
// match history plus the first match's timeline.
func (s *ReviewService) FetchSummonerData(ctx context.Context, gameName, tagLine string, platform regions.Platform) (*dto.SummonerData, error) {
	routing := regions.RoutingFor(platform)

	account, err := s.riot.AccountByRiotId(ctx, routing, gameName, tagLine)
	if err != nil {
		return nil, err
	}

	summoner, err := s.riot.SummonerByPuuid(ctx, platform, account.Puuid)
	if err != nil {
		return nil, err
	}

	// Mastery failures degrade to an empty list; the review works without.
	masteries, err := s.riot.MasteriesByPuuid(ctx, platform, account.Puuid)
	if err != nil {
		log.Warn().Err(err).Str("puuid", account.Puuid).Msg("mastery fetch failed")
		masteries = nil
	}

	start, end := seasonWindow(time.Now().UTC())
	matchIds, err := s.riot.MatchIdsByPuuid(ctx, routing, account.Puuid, start, end, maxMatchIds)
	if err != nil {
		log.Warn().Err(err).Msg("match id listing failed")
		matchIds = nil
	}

	rawMatches := s.fetchMatchDetails(ctx, routing, matchIds)

	records := make([]match.Record, 0, len(rawMatches))
	for _, raw := range rawMatches {
		record, ok := riot.ProcessMatch(raw, account.Puuid)
		if !ok {
			continue
		}
		records = append(records, record)
	}
	// Newest first by creation, matching the id listing order.
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].GameCreation > records[j].GameCreation
	})

	data := &dto.SummonerData{
		Summoner: dto.SummonerInfo{
			Name:          gameName + "#" + tagLine,
			Level:         summoner.SummonerLevel,
			ProfileIconId: summoner.ProfileIconId,
		},
		TotalGames:    len(matchIds),
		RecentMatches: records,
	}

	if len(masteries) > 0 {
		top := masteries[0]
		name, err := s.riot.ChampionNameById(ctx, top.ChampionId)
		if err != nil {
			name = fmt.Sprintf("Champion %d", top.ChampionId)
		}
		data.MostPlayedChampion = &dto.MostPlayedChampion{
			ChampionId:     top.ChampionId,
			ChampionName:   name,
			ChampionLevel:  top.ChampionLevel,
			ChampionPoints: top.ChampionPoints,
		}
	}

	var rawTimeline *riot.RawTimeline
	if len(matchIds) > 0 {
		rawTimeline, err = s.riot.TimelineById(ctx, routing, matchIds[0])
		if err != nil {
			log.Warn().Err(err).Str("matchId", matchIds[0]).Msg("timeline fetch failed")
			rawTimeline = nil
		}
	}
	if rawTimeline != nil {
		timeline := riot.ProcessTimeline(rawTimeline, matchIds[0])
		data.Timelines = []match.TimelineLog{timeline}
		data.FirstMatchTimeline = timelineSummary(timeline)
	}

	s.archivePayloads(ctx, gameName, tagLine, string(platform), data, rawTimeline)

	return data, nil
}

// fetchMatchDetails pulls up to maxMatchDetails payloads concurrently,
// going through the caches first. Individual failures are dropped.
func (s *ReviewService) fetchMatchDetails(ctx context.Context, routing regions.Routing, matchIds []string) []*riot.RawMatch {
	if len(matchIds) > maxMatchDetails {
		matchIds = matchIds[:maxMatchDetails]
	}

	results := make([]*riot.RawMatch, len(matchIds))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(detailFetchConcurrency)

	for i, matchId := range matchIds {
		g.Go(func() error {
			raw, err := s.matchDetail(gctx, routing, matchId)
			if err != nil {
				log.Warn().Err(err).Str("matchId", matchId).Msg("match detail fetch failed")
				return nil
			}
			results[i] = raw
			return nil
		})
	}
	g.Wait()

	details := make([]*riot.RawMatch, 0, len(results))
	for _, raw := range results {
		if raw != nil {
			details = append(details, raw)
		}
	}
	return details
}

// matchDetail checks the memory cache, then redis, then the API.
func (s *ReviewService) matchDetail(ctx context.Context, routing regions.Routing, matchId string) (*riot.RawMatch, error) {
	key := "riot:match:" + matchId

	if cached := s.memCache.Get(key); cached != nil {
		return cached.(*riot.RawMatch), nil
	}

	if fromRedis := s.matchFromRedis(ctx, key); fromRedis != nil {
		s.memCache.Set(key, fromRedis, matchMemoryCacheDuration)
		return fromRedis, nil
	}

	raw, err := s.riot.MatchById(ctx, routing, matchId)
	if err != nil {
		return nil, err
	}

	s.memCache.Set(key, raw, matchMemoryCacheDuration)
	if payload, err := json.Marshal(raw); err == nil {
		if err := s.redis.Set(ctx, key, payload, matchRedisCacheDuration); err != nil {
			log.Debug().Err(err).Str("key", key).Msg("redis set failed")
		}
	}

	return raw, nil
}

// matchFromRedis retrieves a cached match payload from redis.
func (s *ReviewService) matchFromRedis(ctx context.Context, key string) *riot.RawMatch {
	ctx, cancel := context.WithTimeout(ctx, 200*time.Millisecond)
	defer cancel()

	cached, err := s.redis.Get(ctx, key)
	if err != nil || cached == "" {
		return nil
	}

	var raw riot.RawMatch
	if err := json.Unmarshal([]byte(cached), &raw); err != nil {
		return nil
	}
	return &raw
}

// PreviewStats aggregates quick stats over the first matches.
func (s *ReviewService) PreviewStats(matches []match.Record) (*dto.PreviewStats, error) {
	if len(matches) == 0 {
		return nil, errors.New("no matches found")
	}
	if len(matches) > previewMatches {
		matches = matches[:previewMatches]
	}

	wins, kills, deaths, assists := 0, 0, 0, 0
	championGames := make(map[string]int)
	for _, m := range matches {
		if m.Win {
			wins++
		}
		kills += m.Kills
		deaths += m.Deaths
		assists += m.Assists
		championGames[m.ChampionName]++
	}

	mostPlayed, mostGames := "Unknown", 0
	names := make([]string, 0, len(championGames))
	for name := range championGames {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if championGames[name] > mostGames {
			mostPlayed = name
			mostGames = championGames[name]
		}
	}

	games := float64(len(matches))
	kdaDeaths := deaths
	if kdaDeaths < 1 {
		kdaDeaths = 1
	}

	return &dto.PreviewStats{
		MatchesAnalyzed:    len(matches),
		Wins:               wins,
		Losses:             len(matches) - wins,
		WinRate:            round1(float64(wins) / games * 100),
		AvgKills:           round1(float64(kills) / games),
		AvgDeaths:          round1(float64(deaths) / games),
		AvgAssists:         round1(float64(assists) / games),
		KDA:                round2(float64(kills+assists) / float64(kdaDeaths)),
		MostPlayedChampion: mostPlayed,
		MostPlayedGames:    mostGames,
	}, nil
}

// YearInReview runs the full analysis and generates the narrative.
func (s *ReviewService) YearInReview(ctx context.Context, matches []match.Record, summonerName, region string, timelines []match.TimelineLog) (*dto.YearInReview, error) {
	if len(matches) < minReviewMatches {
		return nil, ErrNotEnoughMatches
	}

	analyzer := analysis.New(matches, summonerName, region, timelines)
	result, err := analyzer.Run()
	if err != nil {
		return nil, err
	}

	narrative, err := s.generator.Generate(ctx, analyzer.BuildNarrativePrompt(result))
	if err != nil {
		log.Warn().Err(err).Str("summoner", summonerName).Msg("narrative generation failed")
		narrative = analyzer.NarrativeFallback()
	}

	return &dto.YearInReview{
		Analysis:     result,
		Narrative:    narrative,
		TotalMatches: len(matches),
	}, nil
}

// Roast builds the roast prompt, optionally enriched with OP.GG meta data
// for the most played champion, and generates the roast text.
func (s *ReviewService) Roast(ctx context.Context, matches []match.Record, summonerName, region string) (string, error) {
	if len(matches) == 0 {
		return "", errors.New("no match data provided")
	}

	analyzer := analysis.New(matches, summonerName, region, nil)
	prompt := analyzer.BuildRoastPrompt()

	if s.meta != nil {
		if enrichment := s.metaEnrichment(ctx, matches, region); enrichment != "" {
			prompt += "\n\nMeta reference for their main champion (roast harder if they're below it):\n" + enrichment
		}
	}

	roast, err := s.generator.Generate(ctx, prompt)
	if err != nil {
		log.Warn().Err(err).Str("summoner", summonerName).Msg("roast generation failed")
		return analysis.RoastFallback, nil
	}
	return roast, nil
}

// metaEnrichment looks up the reference stats for the most played champion.
func (s *ReviewService) metaEnrichment(ctx context.Context, matches []match.Record, region string) string {
	championGames := make(map[string]int)
	positionGames := make(map[string]int)
	for _, m := range matches {
		championGames[m.ChampionName]++
		if m.IndividualPosition != "" && m.IndividualPosition != "NONE" {
			positionGames[m.IndividualPosition]++
		}
	}

	champion := topKey(championGames)
	if champion == "" {
		return ""
	}
	position := topKey(positionGames)
	if position == "" {
		position = "MID"
	}

	enrichment, err := s.meta.ChampionAnalysis(ctx, champion, position, region)
	if err != nil {
		log.Debug().Err(err).Str("champion", champion).Msg("meta lookup failed")
		return ""
	}
	return enrichment
}

// archivePayloads saves the raw bundle, logging failures without surfacing
// them to the caller.
func (s *ReviewService) archivePayloads(ctx context.Context, gameName, tagLine, region string, data *dto.SummonerData, timeline *riot.RawTimeline) {
	if s.archiver == nil {
		return
	}

	responses := map[string]any{
		"summoner":  data.Summoner,
		"mastery":   data.MostPlayedChampion,
		"matches":   data.RecentMatches,
		"timeline":  timeline,
		"total_ids": data.TotalGames,
	}
	if err := s.archiver.Save(ctx, gameName, tagLine, region, responses); err != nil {
		log.Warn().Err(err).Msg("payload archive failed")
	}
}

// seasonWindow is the current calendar year in UTC.
func seasonWindow(now time.Time) (time.Time, time.Time) {
	start := time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(now.Year(), time.December, 31, 23, 59, 59, 0, time.UTC)
	return start, end
}

// timelineSummary extracts the kill positions from the first timeline.
func timelineSummary(timeline match.TimelineLog) dto.TimelineSummary {
	summary := dto.TimelineSummary{HasTimeline: true}
	for _, frame := range timeline.Frames {
		for _, ev := range frame.Events {
			if ev.Type != "CHAMPION_KILL" || ev.VictimId == 0 || ev.Position == nil {
				continue
			}
			summary.DeathPositions = append(summary.DeathPositions, dto.DeathPosition{
				Timestamp:               ev.Timestamp,
				Position:                ev.Position,
				VictimId:                ev.VictimId,
				KillerId:                ev.KillerId,
				AssistingParticipantIds: ev.AssistingParticipantIds,
			})
		}
	}
	summary.TotalKills = len(summary.DeathPositions)
	return summary
}

// topKey returns the key with the highest count, ties resolved by name.
func topKey(counts map[string]int) string {
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	best, bestCount := "", 0
	for _, k := range keys {
		if counts[k] > bestCount {
			best = k
			bestCount = counts[k]
		}
	}
	return best
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
