package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	DBUrl       string
	FrontendURL string
	// Moderation credential (shared operator secret)
	AdminSecret      string
	AdminTokenSecret string // optional separate signing key for session tokens
	AdminTokenTTLMin int
	// Redis (optional, backs rate limiting)
	RedisURL      string
	RedisPassword string
	// Rate Limiting Configuration
	RateLimitWindowSeconds   int
	RateLimitSubmitThreshold int
	RateLimitGlobalThreshold int
}

func LoadConfig() (*Config, error) {
	// Load .env file (only effective locally, ignored in production if absent)
	_ = godotenv.Load()

	cfg := &Config{
		Port:        getEnv("PORT", "8080"),
		DBUrl:       getEnv("DATABASE_URL", ""),
		FrontendURL: getEnv("FRONTEND_URL", "http://localhost:5173"),
		// Moderation credential
		AdminSecret:      getEnv("ADMIN_SECRET", ""),
		AdminTokenSecret: getEnv("ADMIN_TOKEN_SECRET", ""),
		AdminTokenTTLMin: getEnvInt("ADMIN_TOKEN_TTL_MINUTES", 60),
		// Redis
		RedisURL:      getEnv("REDIS_URL", ""),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		// Rate Limiting Configuration (with sensible defaults)
		RateLimitWindowSeconds:   getEnvInt("RATE_LIMIT_WINDOW_SECONDS", 60),
		RateLimitSubmitThreshold: getEnvInt("RATE_LIMIT_SUBMIT_THRESHOLD", 10),
		RateLimitGlobalThreshold: getEnvInt("RATE_LIMIT_GLOBAL_THRESHOLD", 100),
	}

	// A missing DATABASE_URL is not fatal here: every request is answered
	// with a configuration error instead, so the condition is visible to
	// operators through the API and the logs rather than a crash loop.
	if cfg.DBUrl == "" {
		log.Println("WARNING: DATABASE_URL is missing. All store-backed requests will fail.")
	}
	if cfg.AdminSecret == "" {
		log.Println("WARNING: ADMIN_SECRET is missing. The moderation endpoint will be unavailable.")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt returns an integer environment variable or fallback if not set/invalid
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}
