package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Provider exposes the configuration values the application depends on.
// Handlers and tests depend on this interface rather than the concrete
// Config struct so they can substitute their own values.
type Provider interface {
	GetAddr() string
	GetAPIBaseURL() string
	GetBaseDomain() string
	GetSessionSecret() string
}

// Config holds all configuration for the application.
type Config struct {
	// Addr is the listen address of the HTTP server, e.g. ":8080".
	Addr string
	// APIBaseURL is the base URL of the remote shop API.
	APIBaseURL string
	// BaseDomain is the domain under which tenant origins are built,
	// e.g. "localhost:8080" yields shop origins like "acme.localhost:8080".
	BaseDomain string
	// SessionSecret signs the cookie session that carries the API credential.
	SessionSecret string
}

// New loads configuration from environment variables.
func New() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	cfg := &Config{
		Addr:          getenv("SHOPFRONT_ADDR", ":8080"),
		APIBaseURL:    os.Getenv("SHOP_API_URL"),
		BaseDomain:    getenv("BASE_DOMAIN", "localhost:8080"),
		SessionSecret: os.Getenv("SESSION_SECRET"),
	}

	if cfg.APIBaseURL == "" || cfg.SessionSecret == "" {
		log.Fatal("Required environment variables SHOP_API_URL or SESSION_SECRET are not set.")
	}

	return cfg
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func (c *Config) GetAddr() string          { return c.Addr }
func (c *Config) GetAPIBaseURL() string    { return c.APIBaseURL }
func (c *Config) GetBaseDomain() string    { return c.BaseDomain }
func (c *Config) GetSessionSecret() string { return c.SessionSecret }
