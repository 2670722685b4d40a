package analysis

import (
	"riftwind/pkg/models/match"
)

const tiltMinMatches = 10

// Win-rate drops (in points) against the normal baseline that flag tilt.
const (
	tiltDropAfterTwo   = 15.0
	tiltDropAfterThree = 20.0
)

// BucketStats is the record inside one tilt classification bucket.
type BucketStats struct {
	Games   int     `json:"games"`
	Wins    int     `json:"wins"`
	WinRate float64 `json:"winrate"`
}

// TiltResult reports performance after consecutive losses plus the loss-run
// episodes found in the season.
type TiltResult struct {
	Normal            BucketStats `json:"normal"`
	AfterTwoLosses    BucketStats `json:"after_2_losses"`
	AfterThreeLosses  BucketStats `json:"after_3_losses"`
	IsTilting         bool        `json:"is_tilting"`
	TiltEpisodes      int         `json:"tilt_episodes"`
	LongestLossStreak int         `json:"longest_loss_streak"`
}

// DetectTilt classifies each game by the results directly before it. A game
// lands in the after-2 bucket when both preceding games were losses, and
// additionally in the after-3 bucket when the three preceding were; normal
// means at least one of the two preceding was a win. The first two games of
// the season have no history and stay unbucketed.
func (a *Analyzer) DetectTilt() *TiltResult {
	if len(a.matches) < tiltMinMatches {
		return nil
	}

	ordered := a.chronological()

	var normal, afterTwo, afterThree BucketStats
	for i := 2; i < len(ordered); i++ {
		twoLosses := !ordered[i-1].Win && !ordered[i-2].Win
		if twoLosses {
			afterTwo.Games++
			if ordered[i].Win {
				afterTwo.Wins++
			}
			if i >= 3 && !ordered[i-3].Win {
				afterThree.Games++
				if ordered[i].Win {
					afterThree.Wins++
				}
			}
		} else {
			normal.Games++
			if ordered[i].Win {
				normal.Wins++
			}
		}
	}

	normal.WinRate = round1(winRate(normal.Wins, normal.Games))
	afterTwo.WinRate = round1(winRate(afterTwo.Wins, afterTwo.Games))
	afterThree.WinRate = round1(winRate(afterThree.Wins, afterThree.Games))

	tilting := false
	if normal.Games > 0 {
		if afterTwo.Games > 0 && normal.WinRate-afterTwo.WinRate >= tiltDropAfterTwo {
			tilting = true
		}
		if afterThree.Games > 0 && normal.WinRate-afterThree.WinRate >= tiltDropAfterThree {
			tilting = true
		}
	}

	episodes, longest := lossEpisodes(ordered)

	return &TiltResult{
		Normal:            normal,
		AfterTwoLosses:    afterTwo,
		AfterThreeLosses:  afterThree,
		IsTilting:         tilting,
		TiltEpisodes:      episodes,
		LongestLossStreak: longest,
	}
}

// lossEpisodes counts maximal contiguous loss runs of length >= 3 and the
// longest run seen.
func lossEpisodes(ordered []match.Record) (int, int) {
	episodes, longest, run := 0, 0, 0
	for _, m := range ordered {
		if m.Win {
			if run >= 3 {
				episodes++
			}
			run = 0
			continue
		}
		run++
		if run > longest {
			longest = run
		}
	}
	if run >= 3 {
		episodes++
	}
	return episodes, longest
}
