package handlers

import (
	"context"
	"net/http"

	"riftwind/api/filters"

	"github.com/gin-gonic/gin"
)

// FeedbackSender delivers a feedback message to the maintainers.
type FeedbackSender interface {
	SendFeedback(ctx context.Context, email, feedback string) error
}

// Feedback handler.
type FeedbackHandler struct {
	sender FeedbackSender
}

type FeedbackHandlerDependencies struct {
	Sender FeedbackSender
}

// Create a new instance of the feedback handler.
func NewFeedbackHandler(deps *FeedbackHandlerDependencies) *FeedbackHandler {
	return &FeedbackHandler{
		sender: deps.Sender,
	}
}

// Handler for submitting feedback.
func (h *FeedbackHandler) PostFeedback(c *gin.Context) {
	var body filters.FeedbackRequest

	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if h.sender == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "feedback delivery is not configured"})
		return
	}

	if err := h.sender.SendFeedback(c.Request.Context(), body.Email, body.Feedback); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to send feedback"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "sent"})
}
