package config

import (
	"os"
	"strconv"
)

type Config struct {
	// Server
	Port        string
	Environment string

	// Redis (cart persistence)
	RedisURL string

	// NATS (optional audit events)
	NATSURL string

	// Stripe
	StripeSecretKey string
	BaseURL         string // success/cancel redirect base

	// Admin session
	AdminUsername string
	AdminPassword string
	SessionSecret string

	// Style matcher
	MLServiceURL string

	// Pagination
	DefaultPageSize int
	MaxPageSize     int
}

func Load() *Config {
	defaultPageSize, _ := strconv.Atoi(getEnv("DEFAULT_PAGE_SIZE", "12"))
	maxPageSize, _ := strconv.Atoi(getEnv("MAX_PAGE_SIZE", "100"))

	return &Config{
		// Server
		Port:        getEnv("PORT", "8080"),
		Environment: getEnv("ENVIRONMENT", "development"),

		// Redis
		RedisURL: getEnv("REDIS_URL", "redis://localhost:6379/0"),

		// NATS - empty disables event publishing
		NATSURL: getEnv("NATS_URL", ""),

		// Stripe
		StripeSecretKey: getEnv("STRIPE_SECRET_KEY", ""),
		BaseURL:         getEnv("BASE_URL", "http://localhost:3000"),

		// Admin session
		AdminUsername: getEnv("ADMIN_USERNAME", "admin"),
		AdminPassword: getEnv("ADMIN_PASSWORD", ""),
		SessionSecret: getEnv("SESSION_SECRET", "dev-session-secret"),

		// Style matcher
		MLServiceURL: getEnv("ML_SERVICE_URL", "http://localhost:8090"),

		// Pagination
		DefaultPageSize: defaultPageSize,
		MaxPageSize:     maxPageSize,
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
