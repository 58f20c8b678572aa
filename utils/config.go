package utils

import (
	"fmt"
	"os"
)

// Config represents application configuration loaded from environment variables.
type Config struct {
	AppEnv           string
	Port             string
	MongoURI         string
	DBName           string
	JWTSecret        string
	StripeSecretKey  string
	PostmarkAPIToken string
	EmailSender      string
}

// LoadConfig loads configuration from environment variables and applies
// defaults where needed. The Postmark settings are optional; notification
// email is disabled when they are absent.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		AppEnv:           getEnv("APP_ENV", "development"),
		Port:             getEnv("PORT", "8000"),
		MongoURI:         os.Getenv("MONGODB_URI"),
		DBName:           getEnv("DB_NAME", "bloodaid"),
		JWTSecret:        os.Getenv("JWT_SECRET"),
		StripeSecretKey:  os.Getenv("STRIPE_SECRET_KEY"),
		PostmarkAPIToken: os.Getenv("POSTMARK_API_TOKEN"),
		EmailSender:      os.Getenv("EMAIL_SENDER"),
	}

	if cfg.MongoURI == "" {
		return nil, fmt.Errorf("MONGODB_URI is required")
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
