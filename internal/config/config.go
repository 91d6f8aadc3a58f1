package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// OnboardingPredicate selects how an account-updated event decides the
// onboarded flag.
type OnboardingPredicate string

const (
	// PredicateStrict requires charges enabled, details submitted, nothing
	// currently due and no disabled reason.
	PredicateStrict OnboardingPredicate = "strict"
	// PredicateLoose requires only charges enabled and details submitted.
	PredicateLoose OnboardingPredicate = "loose"
)

// Config holds all configuration values
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Stripe   StripeConfig
	Platform PlatformConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port string
	Env  string
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// URL returns the database connection URL
func (c DatabaseConfig) URL() string {
	return "postgres://" + c.User + ":" + c.Password + "@" + c.Host + ":" + strconv.Itoa(c.Port) + "/" + c.DBName + "?sslmode=" + c.SSLMode + "&prepare_threshold=0"
}

// RedisConfig holds Redis configuration
type RedisConfig struct {
	URL      string
	PASSWORD string
}

// StripeConfig holds payment gateway configuration
type StripeConfig struct {
	SecretKey        string
	WebhookSecret    string
	APIBase          string
	WebhookTolerance time.Duration
}

// PlatformConfig holds marketplace-level settings
type PlatformConfig struct {
	// SiteURL is the public base URL used to build redirect URLs; no
	// trailing slash.
	SiteURL string
	// FeeBps is the platform fee in basis points; fee = floor(amount*bps/10000).
	FeeBps int64
	// Country is the two-letter country code for new connected accounts.
	Country string
	// Onboarding selects the strict or loose account-updated predicate.
	Onboarding OnboardingPredicate
}

// Load loads configuration from environment variables
func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", "8080"),
			Env:  getEnv("SERVER_ENV", "development"),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnvAsInt("DB_PORT", 5432),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "postgres"),
			DBName:   getEnv("DB_NAME", "coachmarket"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		Redis: RedisConfig{
			URL:      getEnv("REDIS_URL", "redis://localhost:6379"),
			PASSWORD: getEnv("REDIS_PASSWORD", ""),
		},
		Stripe: StripeConfig{
			SecretKey:        getEnv("STRIPE_SECRET_KEY", ""),
			WebhookSecret:    getEnv("STRIPE_WEBHOOK_SECRET", ""),
			APIBase:          getEnv("STRIPE_API_BASE", "https://api.stripe.com"),
			WebhookTolerance: getEnvAsDuration("WEBHOOK_TOLERANCE", 5*time.Minute),
		},
		Platform: PlatformConfig{
			SiteURL:    strings.TrimRight(getEnv("SITE_URL", "http://localhost:3000"), "/"),
			FeeBps:     getEnvAsInt64("PLATFORM_FEE_BPS", 0),
			Country:    getEnv("PLATFORM_COUNTRY", "US"),
			Onboarding: loadPredicate(),
		},
	}
}

func loadPredicate() OnboardingPredicate {
	if getEnv("ONBOARDING_PREDICATE", "strict") == string(PredicateLoose) {
		return PredicateLoose
	}
	return PredicateStrict
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 64); err == nil && intVal >= 0 {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
