package handlers

import (
	"errors"
	"net/http"

	"riftwind/api/dto"
	"riftwind/api/filters"
	reviewservice "riftwind/api/services/review"
	"riftwind/pkg/regions"
	"riftwind/pkg/riot"

	"github.com/gin-gonic/gin"
)

// Review handler.
type ReviewHandler struct {
	reviewService *reviewservice.ReviewService
}

type ReviewHandlerDependencies struct {
	ReviewService *reviewservice.ReviewService
}

// Create a new instance of the review handler.
func NewReviewHandler(deps *ReviewHandlerDependencies) *ReviewHandler {
	return &ReviewHandler{
		reviewService: deps.ReviewService,
	}
}

// Handler for fetching the summoner and season match history.
func (h *ReviewHandler) GetSummonerData(c *gin.Context) {
	var body filters.SummonerRequest

	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	platform := regions.Platform(body.Region)
	if body.Region != "" && !regions.IsKnown(platform) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown region: " + body.Region})
		return
	}
	if body.Region == "" {
		platform = "na1"
	}

	data, err := h.reviewService.FetchSummonerData(c.Request.Context(), body.GameName, body.TagLine, platform)
	if err != nil {
		var notFound *riot.NotFoundError
		if errors.As(err, &notFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, data)
}

// Handler for the quick preview stats.
func (h *ReviewHandler) GetPreviewStats(c *gin.Context) {
	var body filters.PreviewRequest

	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	stats, err := h.reviewService.PreviewStats(body.Matches)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, stats)
}

// Handler for the full year in review.
func (h *ReviewHandler) GetYearInReview(c *gin.Context) {
	var body filters.ReviewRequest

	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	review, err := h.reviewService.YearInReview(
		c.Request.Context(), body.Matches, body.SummonerName, body.Region, body.Timelines)
	if err != nil {
		if errors.Is(err, reviewservice.ErrNotEnoughMatches) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, review)
}

// Handler for the roast.
func (h *ReviewHandler) GetRoast(c *gin.Context) {
	var body filters.ReviewRequest

	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	roast, err := h.reviewService.Roast(c.Request.Context(), body.Matches, body.SummonerName, body.Region)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, dto.Roast{Roast: roast})
}
