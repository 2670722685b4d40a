package modules

import (
	"riftwind/api/handlers"
	reviewservice "riftwind/api/services/review"
)

func initializeReviewHandler(deps *ModuleDependencies) *handlers.ReviewHandler {
	// Initialize the review service and handler.
	reviewDeps := &reviewservice.ReviewServiceDeps{
		Riot:      deps.RiotClient,
		Redis:     deps.Redis,
		MemCache:  deps.MemCache,
		Archiver:  deps.Archiver,
		Generator: deps.Generator,
		Meta:      deps.Meta,
	}

	reviewService := reviewservice.NewReviewService(reviewDeps)

	reviewHandlerDeps := &handlers.ReviewHandlerDependencies{
		ReviewService: reviewService,
	}

	return handlers.NewReviewHandler(reviewHandlerDeps)
}
