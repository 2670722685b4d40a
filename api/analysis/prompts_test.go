package analysis

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"riftwind/pkg/models/match"
)

func TestBuildNarrativePrompt(t *testing.T) {
	matches := seasonFromResults(repeat(true, 10))
	analyzer := newTestAnalyzer(matches)

	result, err := analyzer.Run()
	assert.NoError(t, err)

	prompt := analyzer.BuildNarrativePrompt(result)
	assert.Contains(t, prompt, "TestPlayer#NA1")
	assert.Contains(t, prompt, "Total Games: 10")
	assert.Contains(t, prompt, "Win Rate: 100.0%")
	// No losses means no nemesis.
	assert.Contains(t, prompt, "Nemesis: None")
}

func TestBuildNarrativePromptWithNemesis(t *testing.T) {
	matches := seasonFromResults([]bool{false, true})
	matches[1].Opponents = append(matches[1].Opponents, opponent("Rival", "NA1"))

	analyzer := newTestAnalyzer(matches)
	result, err := analyzer.Run()
	assert.NoError(t, err)

	prompt := analyzer.BuildNarrativePrompt(result)
	assert.Contains(t, prompt, "Nemesis: Rival#NA1")
}

func TestBuildRoastPrompt(t *testing.T) {
	matches := seasonFromResults(repeat(false, 10))
	for i := range matches {
		matches[i].Deaths = 10 + i
		matches[i].Opponents = []match.Participant{opponent("Rival", "NA1")}
	}

	prompt := newTestAnalyzer(matches).BuildRoastPrompt()
	assert.Contains(t, prompt, "TestPlayer#NA1")
	assert.Contains(t, prompt, "Win Rate: 0.0%")
	assert.Contains(t, prompt, "Most deaths in one game: 19")
	assert.Contains(t, prompt, "Has a nemesis")
	assert.True(t, strings.Contains(prompt, "Worst champion: Ahri"))
}

func TestNarrativeFallback(t *testing.T) {
	analyzer := newTestAnalyzer(seasonFromResults(repeat(true, 7)))
	assert.Equal(t, "Had an incredible year with 7 games played!", analyzer.NarrativeFallback())
}
