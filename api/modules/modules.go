package modules

import (
	"context"

	"riftwind/api/cache"
	"riftwind/api/handlers"
	"riftwind/pkg/archive"
	"riftwind/pkg/genai"
	"riftwind/pkg/mailer"
	"riftwind/pkg/opgg"
	"riftwind/pkg/redis"
	"riftwind/pkg/riot"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// Module containing the necessary handlers.
type Module struct {
	Router          *gin.Engine
	ReviewHandler   *handlers.ReviewHandler
	FeedbackHandler *handlers.FeedbackHandler
}

// Shared dependencies for the handler initializers.
type ModuleDependencies struct {
	RiotClient *riot.Client
	Redis      *redis.RedisClient
	MemCache   *cache.MemCache
	Archiver   *archive.Archiver
	Generator  genai.Generator
	Meta       *opgg.Client
	Mailer     *mailer.Mailer
}

// Create a new module with all the necessary handlers initialized.
func NewModule(ctx context.Context) (*Module, error) {
	router := gin.Default()

	riotClient, err := riot.NewClient()
	if err != nil {
		return nil, err
	}

	generator, err := genai.NewAnthropicGenerator()
	if err != nil {
		return nil, err
	}

	// The mailer is optional; without it the feedback endpoint reports
	// itself unavailable.
	sesMailer, err := mailer.NewMailer(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("mailer unavailable")
		sesMailer = nil
	}

	deps := &ModuleDependencies{
		RiotClient: riotClient,
		Redis:      redis.GetClient(),
		MemCache:   cache.NewMemCache(),
		Archiver:   archive.NewArchiver(),
		Generator:  generator,
		Meta:       opgg.NewClient(),
		Mailer:     sesMailer,
	}

	// Return the module with all handlers.
	return &Module{
		Router:          router,
		ReviewHandler:   initializeReviewHandler(deps),
		FeedbackHandler: initializeFeedbackHandler(deps),
	}, nil
}
