package analysis

import (
	"riftwind/pkg/models/match"
)

// A kill counts as stolen when the killer dealt under 15% of their team's
// damage to the victim in the window before the kill.
const killStealShareThreshold = 15.0

// StolenKill is one kill event with the killer's damage share.
type StolenKill struct {
	MatchId     string  `json:"matchId"`
	Timestamp   int64   `json:"timestamp"`
	KillerId    int     `json:"killer_id"`
	VictimId    int     `json:"victim_id"`
	DamageShare float64 `json:"damage_share"`
}

// KillStealResult aggregates damage shares over every scanned kill.
// The timeline gives no participant-to-player mapping, so kills from all ten
// participants are scored, not just the subject player's.
type KillStealResult struct {
	TotalKills    int         `json:"total_kills"`
	StealCount    int         `json:"steal_count"`
	StealRate     float64     `json:"steal_rate"`
	MeanShare     float64     `json:"mean_share"`
	MostShameless *StolenKill `json:"most_shameless,omitempty"`
}

// DetectKillSteals walks every timeline's CHAMPION_KILL events, computes the
// killer's share of their team's damage to the victim, and flags low-share
// kills. Returns nil when no timelines were fetched.
func (a *Analyzer) DetectKillSteals() *KillStealResult {
	if len(a.timelines) == 0 {
		return nil
	}

	result := &KillStealResult{}
	shareSum := 0.0
	lowestShare := killStealShareThreshold

	for _, tl := range a.timelines {
		for _, frame := range tl.Frames {
			for _, ev := range frame.Events {
				if ev.Type != "CHAMPION_KILL" || ev.KillerId == 0 {
					continue
				}

				teamTotal := 0.0
				killerDamage := 0.0
				for _, dc := range ev.VictimDamageReceived {
					if !match.SameTeam(dc.ParticipantId, ev.KillerId) {
						continue
					}
					total := float64(dc.Total())
					teamTotal += total
					if dc.ParticipantId == ev.KillerId {
						killerDamage += total
					}
				}
				if teamTotal == 0 {
					continue
				}

				share := killerDamage / teamTotal * 100
				result.TotalKills++
				shareSum += share

				if share < killStealShareThreshold {
					result.StealCount++
					if result.MostShameless == nil || share < lowestShare {
						lowestShare = share
						result.MostShameless = &StolenKill{
							MatchId:     tl.MatchId,
							Timestamp:   ev.Timestamp,
							KillerId:    ev.KillerId,
							VictimId:    ev.VictimId,
							DamageShare: round1(share),
						}
					}
				}
			}
		}
	}

	if result.TotalKills > 0 {
		result.StealRate = round1(winRate(result.StealCount, result.TotalKills))
		result.MeanShare = round1(shareSum / float64(result.TotalKills))
	}
	return result
}
