package config

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort  string
	DBPath      string
	Environment string
	// Email (Resend)
	ResendAPIKey  string
	EmailFrom     string
	EmailFromName string
	EmailTestMode bool // When true, emails are logged to console instead of sent
	// Operations inbox notified of recruitment outcomes
	NotifyEmail string
	// Other
	AllowedOrigins []string
	AppURL         string
}

func Load() *Config {
	// Load .env file (ignore error if not present - use system env vars)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	return &Config{
		ServerPort:     getEnv("SERVER_PORT", "8080"),
		DBPath:         getEnv("DB_PATH", "db/app.db"),
		Environment:    getEnv("ENVIRONMENT", "development"),
		ResendAPIKey:   getEnv("RESEND_API_KEY", ""),
		EmailFrom:      getEnv("EMAIL_FROM", "noreply@lawlink.app"),
		EmailFromName:  getEnv("EMAIL_FROM_NAME", "LawLink App"),
		EmailTestMode:  getEnvBool("EMAIL_TEST_MODE", true), // Default true for safety
		NotifyEmail:    getEnv("NOTIFY_EMAIL", ""),
		AllowedOrigins: strings.Split(getEnv("ALLOWED_ORIGINS", "*"), ","),
		AppURL:         getEnv("APP_URL", "http://localhost:8080"),
	}
}

// IsProduction reports whether the app is running in the production environment
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		log.Printf("Using default value for %s: %s", key, defaultValue)
		return defaultValue
	}
	return value
}

func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	// Accept common boolean representations
	switch strings.ToLower(value) {
	case "true", "1", "yes", "on":
		return true
	case "false", "0", "no", "off":
		return false
	default:
		return defaultValue
	}
}
