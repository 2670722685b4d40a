package modules

import (
	"riftwind/api/handlers"
)

func initializeFeedbackHandler(deps *ModuleDependencies) *handlers.FeedbackHandler {
	feedbackDeps := &handlers.FeedbackHandlerDependencies{}

	// A nil typed pointer must not end up behind the interface, or the
	// handler's nil check stops working.
	if deps.Mailer != nil {
		feedbackDeps.Sender = deps.Mailer
	}

	return handlers.NewFeedbackHandler(feedbackDeps)
}
