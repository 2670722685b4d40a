package analysis

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCalculateCSEfficiency(t *testing.T) {
	matches := seasonFromResults(repeat(true, 4))

	// Two 30-minute January games at 180 CS, two in February at 240.
	for i := 0; i < 2; i++ {
		matches[i].GameCreation = monthStamp(2025, time.January, i+1)
		matches[i].GameDuration = 1800
		matches[i].TotalMinionsKilled = 150
		matches[i].NeutralMinionsKilled = 30
		matches[i].IndividualPosition = "MIDDLE"
	}
	for i := 2; i < 4; i++ {
		matches[i].GameCreation = monthStamp(2025, time.February, i+1)
		matches[i].GameDuration = 1800
		matches[i].TotalMinionsKilled = 200
		matches[i].NeutralMinionsKilled = 40
		matches[i].IndividualPosition = "BOTTOM"
	}

	result := newTestAnalyzer(matches).CalculateCSEfficiency()
	assert.NotNil(t, result)

	jan := result.Monthly["2025-01"]
	assert.Equal(t, 2, jan.Games)
	assert.Equal(t, 360, jan.CS)
	assert.Equal(t, 6.0, jan.CSPerMin)

	feb := result.Monthly["2025-02"]
	assert.Equal(t, 8.0, feb.CSPerMin)

	// 840 CS over 120 minutes.
	assert.Equal(t, 7.0, result.OverallCSPerMin)
	assert.Equal(t, "Master", result.EstimatedTier)
	assert.Equal(t, "BOTTOM", result.PrimaryRole)
}

func TestCalculateCSEfficiencyJunglePrimary(t *testing.T) {
	matches := seasonFromResults(repeat(true, 5))
	for i := 0; i < 3; i++ {
		matches[i].IndividualPosition = "JUNGLE"
	}
	matches[3].IndividualPosition = "MIDDLE"
	matches[4].IndividualPosition = "TOP"

	result := newTestAnalyzer(matches).CalculateCSEfficiency()
	assert.Equal(t, "JUNGLE", result.PrimaryRole)
}

func TestCalculateCSEfficiencyEmpty(t *testing.T) {
	assert.Nil(t, newTestAnalyzer(nil).CalculateCSEfficiency())
}
