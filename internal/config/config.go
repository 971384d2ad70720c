package config

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Storage drivers understood by the profile store
const (
	StorageMemory   = "memory"
	StorageRedis    = "redis"
	StoragePostgres = "postgres"
)

// Config holds all configuration for the application
type Config struct {
	Server   ServerConfig
	Storage  StorageConfig
	Database DatabaseConfig
	Redis    RedisConfig
	GitHub   GitHubConfig
	Discord  DiscordConfig
	Contact  ContactConfig
	Visitor  VisitorConfig
	Feed     FeedConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port           string
	Host           string
	ReadTimeout    int
	WriteTimeout   int
	IdleTimeout    int
	AllowedOrigins []string
}

// StorageConfig selects the backend of the profile slot
type StorageConfig struct {
	Driver string
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Driver   string
	DSN      string
	MaxConns int
	MinConns int
}

// RedisConfig holds Redis configuration
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// GitHubConfig holds the GitHub account whose repositories are listed
type GitHubConfig struct {
	Username string
	APIURL   string
	Token    string
	Timeout  time.Duration
}

// DiscordConfig holds Discord OAuth configuration
type DiscordConfig struct {
	ClientID    string
	RedirectURI string
	APIURL      string
	Timeout     time.Duration
}

// ContactConfig holds contact form configuration
type ContactConfig struct {
	WebhookURL string
	Timeout    time.Duration
}

// VisitorConfig holds visitor cookie configuration
type VisitorConfig struct {
	Secret     string
	CookieName string
	TTL        time.Duration
}

// FeedConfig holds repository feed session configuration
type FeedConfig struct {
	SessionIdle time.Duration
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// .env is optional
	if err := godotenv.Load(); err != nil {
		slog.Info("no .env file found, using environment variables")
	}

	config := &Config{
		Server: ServerConfig{
			Port:           getEnv("SERVER_PORT", "8080"),
			Host:           getEnv("SERVER_HOST", "0.0.0.0"),
			ReadTimeout:    getEnvAsInt("SERVER_READ_TIMEOUT", 30),
			WriteTimeout:   getEnvAsInt("SERVER_WRITE_TIMEOUT", 0),
			IdleTimeout:    getEnvAsInt("SERVER_IDLE_TIMEOUT", 120),
			AllowedOrigins: getEnvAsSlice("CORS_ALLOWED_ORIGINS", ",", []string{"*"}),
		},
		Storage: StorageConfig{
			Driver: strings.ToLower(getEnv("STORAGE_DRIVER", StorageMemory)),
		},
		Database: DatabaseConfig{
			Driver:   getEnv("DB_DRIVER", "postgres"),
			DSN:      getEnv("DB_DSN", ""),
			MaxConns: getEnvAsInt("DB_MAX_CONNS", 10),
			MinConns: getEnvAsInt("DB_MIN_CONNS", 2),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", ""),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvAsInt("REDIS_DB", 0),
		},
		GitHub: GitHubConfig{
			Username: strings.TrimSpace(getEnv("GITHUB_USERNAME", "")),
			APIURL:   strings.TrimRight(getEnv("GITHUB_API_URL", "https://api.github.com"), "/"),
			Token:    getEnv("GITHUB_TOKEN", ""),
			Timeout:  getEnvAsSeconds("GITHUB_TIMEOUT_SECONDS", 0),
		},
		Discord: DiscordConfig{
			ClientID:    getEnv("DISCORD_CLIENT_ID", ""),
			RedirectURI: getEnv("DISCORD_REDIRECT_URI", "http://localhost:8080/auth/discord/callback"),
			APIURL:      strings.TrimRight(getEnv("DISCORD_API_URL", "https://discord.com/api"), "/"),
			Timeout:     getEnvAsSeconds("DISCORD_TIMEOUT_SECONDS", 0),
		},
		Contact: ContactConfig{
			WebhookURL: getEnv("CONTACT_WEBHOOK_URL", ""),
			Timeout:    getEnvAsSeconds("CONTACT_TIMEOUT_SECONDS", 0),
		},
		Visitor: VisitorConfig{
			Secret:     getEnv("VISITOR_SECRET", ""),
			CookieName: getEnv("VISITOR_COOKIE_NAME", "visitor"),
			TTL:        time.Duration(getEnvAsInt("VISITOR_COOKIE_DAYS", 365)) * 24 * time.Hour,
		},
		Feed: FeedConfig{
			SessionIdle: time.Duration(getEnvAsInt("FEED_SESSION_IDLE_MINUTES", 30)) * time.Minute,
		},
	}

	if config.Visitor.Secret == "" {
		secret, err := generateSecret()
		if err != nil {
			return nil, fmt.Errorf("failed to generate visitor secret: %w", err)
		}
		config.Visitor.Secret = secret
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration.
// Missing feature settings are not errors: the feature degrades instead.
func (c *Config) Validate() error {
	switch c.Storage.Driver {
	case StorageMemory:
	case StorageRedis:
		if c.Redis.Addr == "" {
			return fmt.Errorf("REDIS_ADDR is required when STORAGE_DRIVER=redis")
		}
	case StoragePostgres:
		if c.Database.DSN == "" {
			return fmt.Errorf("DB_DSN is required when STORAGE_DRIVER=postgres")
		}
	default:
		return fmt.Errorf("unknown STORAGE_DRIVER %q", c.Storage.Driver)
	}
	if c.Visitor.Secret == "" {
		return fmt.Errorf("VISITOR_SECRET is required")
	}
	if c.Feed.SessionIdle <= 0 {
		return fmt.Errorf("FEED_SESSION_IDLE_MINUTES must be positive")
	}
	return nil
}

// GetServerAddress returns the server address
func (c *Config) GetServerAddress() string {
	return fmt.Sprintf("%s:%s", c.Server.Host, c.Server.Port)
}

// generateSecret returns 32 random bytes, hex encoded
func generateSecret() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

// getEnv gets an environment variable with a fallback value
func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// getEnvAsInt gets an environment variable as integer with a fallback value
func getEnvAsInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return fallback
}

// getEnvAsSeconds reads a whole number of seconds; 0 means no timeout
func getEnvAsSeconds(key string, fallback int) time.Duration {
	return time.Duration(getEnvAsInt(key, fallback)) * time.Second
}

// getEnvAsSlice gets an environment variable as slice with a fallback value
func getEnvAsSlice(key, separator string, fallback []string) []string {
	if value := os.Getenv(key); value != "" {
		parts := strings.Split(value, separator)
		out := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				out = append(out, p)
			}
		}
		return out
	}
	return fallback
}
