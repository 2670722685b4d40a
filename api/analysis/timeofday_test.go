package analysis

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func hourStamp(hour int) int64 {
	return time.Date(2025, time.March, 15, hour, 30, 0, 0, time.UTC).UnixMilli()
}

func TestAnalyzePerformanceByTime(t *testing.T) {
	matches := seasonFromResults([]bool{true, true, false, true, false})

	// Two night games split 1-1, three evening games going 2-1.
	matches[0].GameCreation = hourStamp(2)
	matches[1].GameCreation = hourStamp(4)
	matches[2].GameCreation = hourStamp(19)
	matches[3].GameCreation = hourStamp(20)
	matches[4].GameCreation = hourStamp(23)

	result := newTestAnalyzer(matches).AnalyzePerformanceByTime()
	assert.NotNil(t, result)
	assert.Len(t, result.Periods, 2)

	night := result.Periods["Night Owl (12am-6am)"]
	assert.Equal(t, 2, night.Games)
	evening := result.Periods["Evening (6pm-12am)"]
	assert.Equal(t, 3, evening.Games)

	// Zero-game bands stay out of the detail map.
	assert.NotContains(t, result.Periods, "Early Bird (6am-12pm)")
	assert.NotContains(t, result.Periods, "Afternoon (12pm-6pm)")
}

func TestAnalyzePerformanceByTimeBestTime(t *testing.T) {
	matches := seasonFromResults([]bool{true, true, false})
	matches[0].GameCreation = hourStamp(9)
	matches[1].GameCreation = hourStamp(14)
	matches[2].GameCreation = hourStamp(15)

	result := newTestAnalyzer(matches).AnalyzePerformanceByTime()
	assert.Equal(t, "Afternoon (12pm-6pm)", result.BestTime)
}

func TestAnalyzePerformanceByTimeEmpty(t *testing.T) {
	assert.Nil(t, newTestAnalyzer(nil).AnalyzePerformanceByTime())
}
