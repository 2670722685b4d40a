package riot

import (
	"riftwind/pkg/models/match"
)

// ProcessMatch extracts the subject player's record from a raw match.
// The second return is false when the player isn't in the participant list,
// which happens for payloads cached under a stale puuid.
func ProcessMatch(raw *RawMatch, puuid string) (match.Record, bool) {
	var subject *RawParticipant
	for i := range raw.Info.Participants {
		if raw.Info.Participants[i].Puuid == puuid {
			subject = &raw.Info.Participants[i]
			break
		}
	}
	if subject == nil {
		return match.Record{}, false
	}

	record := match.Record{
		MatchId:      raw.Metadata.MatchId,
		GameMode:     raw.Info.GameMode,
		GameDuration: raw.Info.GameDuration,
		GameCreation: raw.Info.GameCreation,
		GameVersion:  raw.Info.GameVersion,

		GameEndedInEarlySurrender: subject.GameEndedInEarlySurrender,
		GameEndedInSurrender:      subject.GameEndedInSurrender,

		ChampionName:       subject.ChampionName,
		ChampionId:         subject.ChampionId,
		Lane:               defaultString(subject.Lane, "NONE"),
		Role:               defaultString(subject.Role, "NONE"),
		IndividualPosition: defaultString(subject.IndividualPosition, "NONE"),

		Kills:   subject.Kills,
		Deaths:  subject.Deaths,
		Assists: subject.Assists,
		Win:     subject.Win,

		PentaKills:             subject.PentaKills,
		QuadraKills:            subject.QuadraKills,
		TripleKills:            subject.TripleKills,
		DoubleKills:            subject.DoubleKills,
		LargestMultiKill:       subject.LargestMultiKill,
		KillingSprees:          subject.KillingSprees,
		LargestKillingSpree:    subject.LargestKillingSpree,
		LargestCriticalStrike:  subject.LargestCriticalStrike,
		LongestTimeSpentLiving: subject.LongestTimeSpentLiving,

		GoldEarned:           subject.GoldEarned,
		TotalMinionsKilled:   subject.TotalMinionsKilled,
		NeutralMinionsKilled: subject.NeutralMinionsKilled,

		TotalDamageDealt: subject.TotalDamageDealtToChampions,
		TotalDamageTaken: subject.TotalDamageTaken,

		TimeCCingOthers: subject.TimeCCingOthers,

		VisionScore: subject.VisionScore,
		WardsPlaced: subject.WardsPlaced,
		WardsKilled: subject.WardsKilled,

		ObjectivesStolen: subject.ObjectivesStolen,
		TurretKills:      subject.TurretKills,
		InhibitorKills:   subject.InhibitorKills,

		TeamId: subject.TeamId,

		Items: []int{
			subject.Item0, subject.Item1, subject.Item2, subject.Item3,
			subject.Item4, subject.Item5, subject.Item6,
		},
	}

	// Split the lobby into teammates and opponents, and flag the team AFK
	// when any teammate bailed through an early surrender.
	for _, p := range raw.Info.Participants {
		participant := match.Participant{
			Puuid:          p.Puuid,
			RiotIdGameName: p.RiotIdGameName,
			RiotIdTagline:  p.RiotIdTagline,
			ChampionName:   p.ChampionName,
		}

		if p.TeamId != subject.TeamId {
			record.Opponents = append(record.Opponents, participant)
			continue
		}
		if p.GameEndedInEarlySurrender {
			record.TeamHadAFK = true
		}
		if p.Puuid != puuid {
			record.Teammates = append(record.Teammates, participant)
		}
	}

	return record, true
}

// ProcessTimeline converts a raw timeline into the engine's event log.
func ProcessTimeline(raw *RawTimeline, matchId string) match.TimelineLog {
	log := match.TimelineLog{MatchId: matchId}

	for _, frame := range raw.Info.Frames {
		converted := match.TimelineFrame{Timestamp: frame.Timestamp}
		for _, ev := range frame.Events {
			event := match.TimelineEvent{
				Type:                    ev.Type,
				Timestamp:               ev.Timestamp,
				KillerId:                ev.KillerId,
				VictimId:                ev.VictimId,
				AssistingParticipantIds: ev.AssistingParticipantIds,
			}
			if ev.Position != nil {
				event.Position = &match.Position{X: ev.Position.X, Y: ev.Position.Y}
			}
			for _, dmg := range ev.VictimDamageReceived {
				event.VictimDamageReceived = append(event.VictimDamageReceived, match.DamageContribution{
					ParticipantId:  dmg.ParticipantId,
					PhysicalDamage: dmg.PhysicalDamage,
					MagicDamage:    dmg.MagicDamage,
					TrueDamage:     dmg.TrueDamage,
				})
			}
			converted.Events = append(converted.Events, event)
		}
		log.Frames = append(log.Frames, converted)
	}

	return log
}

func defaultString(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
