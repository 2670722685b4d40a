package main

import (
	"context"
	"os"

	"riftwind/api/modules"
	"riftwind/api/routes"
	"riftwind/pkg/config"
	"riftwind/pkg/logging"
	"riftwind/pkg/redis"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

func main() {
	// Load the environment variables if not running on Docker.
	if os.Getenv("ENVIRONMENT") != "docker" {
		if err := godotenv.Load(); err != nil {
			log.Fatal().Msg("Error loading .env file")
		}
	}

	config.LoadEnv()
	logging.Init(os.Getenv("VERBOSE") != "")

	// Create a module with all necessary handlers.
	module, err := modules.NewModule(context.Background())
	if err != nil {
		log.Fatal().Err(err).Msg("couldn't initialize the api module")
	}
	defer redis.GetClient().Close()

	// Create a new router with the routes setup.
	router := routes.NewRouter(module.Router)
	router.SetupRoutes(
		module.ReviewHandler,
		module.FeedbackHandler,
	)

	// Start the server.
	if err := router.Run(":8080"); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
