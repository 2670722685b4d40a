package config

import (
	"os"
	"strconv"
	"time"
)

// Riot API configuration.
type RiotConfiguration struct {
	ApiKey string
}

// Redis configuration struct.
type RedisConfiguration struct {
	Host     string
	Port     string
	Password string
}

// Bucket configuration for the raw payload archive.
type BucketConfiguration struct {
	Region        string
	Endpoint      string
	AccessKey     string
	AccessSecret  string
	ArchiveBucket string
}

// Mailer configuration for the feedback emails.
type MailerConfiguration struct {
	Region       string
	AccessKey    string
	AccessSecret string
	Source       string
	Destination  string
}

// GenAI configuration for the narrative generator.
type GenAIConfiguration struct {
	ApiKey string
	Model  string
}

// OPGG configuration for the meta lookup collaborator.
type OPGGConfiguration struct {
	Endpoint string
}

// Single rate limit window.
type RateWindow struct {
	Count         int
	ResetInterval time.Duration
}

// Riot rate limits, matching the development key defaults.
type RateLimits struct {
	Lower  RateWindow
	Higher RateWindow
}

var (
	Riot   RiotConfiguration
	Redis  RedisConfiguration
	Bucket BucketConfiguration
	Mailer MailerConfiguration
	GenAI  GenAIConfiguration
	OPGG   OPGGConfiguration
	Limits RateLimits
)

// Load the variables.
func LoadEnv() {
	Riot.ApiKey = os.Getenv("RIOT_API_KEY")

	// Load the Redis configuration.
	Redis.Host = os.Getenv("REDIS_HOST")
	Redis.Port = os.Getenv("REDIS_PORT")
	Redis.Password = os.Getenv("REDIS_PASSWORD")

	// Load the bucket configuration.
	Bucket.Region = os.Getenv("BUCKET_REGION")
	Bucket.Endpoint = os.Getenv("BUCKET_ENDPOINT")
	Bucket.AccessKey = os.Getenv("BUCKET_ACCESS_KEY")
	Bucket.AccessSecret = os.Getenv("BUCKET_ACCESS_SECRET")
	Bucket.ArchiveBucket = os.Getenv("BUCKET_ARCHIVE_NAME")

	// Load the mailer configuration.
	Mailer.Region = getEnvDefault("SES_REGION", "us-east-1")
	Mailer.AccessKey = os.Getenv("SES_ACCESS_KEY")
	Mailer.AccessSecret = os.Getenv("SES_ACCESS_SECRET")
	Mailer.Source = os.Getenv("SES_SOURCE")
	Mailer.Destination = os.Getenv("SES_DESTINATION")

	// Load the generator configuration.
	GenAI.ApiKey = os.Getenv("ANTHROPIC_API_KEY")
	GenAI.Model = getEnvDefault("ANTHROPIC_MODEL", "claude-3-5-haiku-latest")

	OPGG.Endpoint = getEnvDefault("OPGG_MCP_ENDPOINT", "https://mcp-api.op.gg/mcp")

	// Development key limits: 20 requests each second, 100 each 2 minutes.
	Limits.Lower = RateWindow{
		Count:         getEnvInt("RIOT_LIMIT_LOW_COUNT", 20),
		ResetInterval: time.Second,
	}
	Limits.Higher = RateWindow{
		Count:         getEnvInt("RIOT_LIMIT_HIGH_COUNT", 100),
		ResetInterval: 2 * time.Minute,
	}
}

// getEnvDefault reads a variable with a fallback value.
func getEnvDefault(key string, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// getEnvInt reads a integer variable with a fallback value.
func getEnvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}
