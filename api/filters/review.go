package filters

import (
	"riftwind/pkg/models/match"
)

// Body params for the summoner lookup.
type SummonerRequest struct {
	GameName string `json:"gameName" binding:"required"`
	TagLine  string `json:"tagLine" binding:"required"`
	Region   string `json:"region"`
}

// Body params for the preview stats endpoint.
type PreviewRequest struct {
	Matches []match.Record `json:"matches" binding:"required"`
}

// Body params for the year-in-review and roast endpoints.
type ReviewRequest struct {
	Matches      []match.Record      `json:"matches" binding:"required"`
	SummonerName string              `json:"summonerName"`
	Region       string              `json:"region"`
	Timelines    []match.TimelineLog `json:"timelines"`
}

// Body params for the feedback endpoint.
type FeedbackRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Feedback string `json:"feedback" binding:"required"`
}
