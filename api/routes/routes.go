package routes

import (
	"riftwind/api/handlers"

	"github.com/gin-gonic/gin"
)

type Router struct {
	engine *gin.Engine
	api    *gin.RouterGroup
}

func NewRouter(engine *gin.Engine) *Router {
	return &Router{
		api:    engine.Group("/api/v1"),
		engine: engine,
	}
}

func (r *Router) SetupRoutes(handlerList ...any) {
	for _, h := range handlerList {
		switch handler := h.(type) {
		case *handlers.ReviewHandler:
			r.registerReviewHandler(handler)
		case *handlers.FeedbackHandler:
			r.registerFeedbackHandler(handler)
		}
	}
}

// Register the review handler.
func (r *Router) registerReviewHandler(handler *handlers.ReviewHandler) {
	review := r.api.Group("")
	{
		review.POST("/summoner", handler.GetSummonerData)
		review.POST("/preview-stats", handler.GetPreviewStats)
		review.POST("/year-in-review", handler.GetYearInReview)
		review.POST("/roast-me", handler.GetRoast)
	}
}

// Register the feedback handler.
func (r *Router) registerFeedbackHandler(handler *handlers.FeedbackHandler) {
	feedback := r.api.Group("/feedback")
	{
		feedback.POST("", handler.PostFeedback)
	}
}

// Start the router.
func (r *Router) Run(addr string) error {
	return r.engine.Run(addr)
}
