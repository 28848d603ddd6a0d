package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// DevOrigin is the local frontend dev server allowed outside production
const DevOrigin = "http://localhost:5173"

// Config is the process configuration, read from the environment
type Config struct {
	Env               string
	Port              string
	GeminiAPIKey      string
	Model             string
	GeminiBaseURL     string
	AllowedOrigins    []string
	GenerationTimeout time.Duration
	ChatTTL           time.Duration
	LogLevel          string
	LogFile           string
	SiteContentPath   string
}

// Production reports whether the service runs in production mode
func (c *Config) Production() bool {
	return c.Env == "production"
}

// Load reads .env.local and .env when present, then the environment.
// Variables already set in the environment win over dotenv files.
func Load() (*Config, error) {
	_ = godotenv.Load(".env.local")
	_ = godotenv.Load(".env")

	v := viper.New()
	v.SetDefault("ENV", "development")
	v.SetDefault("PORT", "8080")
	v.SetDefault("GEMINI_MODEL", "gemini-2.5-flash")
	v.SetDefault("GENERATION_TIMEOUT", "60s")
	v.SetDefault("CHAT_TTL", "1h")
	v.SetDefault("LOG_LEVEL", "info")
	v.AutomaticEnv()

	for _, key := range []string{"GEMINI_API_KEY", "GEMINI_BASE_URL", "ALLOWED_ORIGINS", "CLOUD_RUN_URL", "LOG_FILE", "SITE_CONTENT"} {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", key, err)
		}
	}

	cfg := &Config{
		Env:               v.GetString("ENV"),
		Port:              v.GetString("PORT"),
		GeminiAPIKey:      strings.TrimSpace(v.GetString("GEMINI_API_KEY")),
		Model:             v.GetString("GEMINI_MODEL"),
		GeminiBaseURL:     v.GetString("GEMINI_BASE_URL"),
		GenerationTimeout: v.GetDuration("GENERATION_TIMEOUT"),
		ChatTTL:           v.GetDuration("CHAT_TTL"),
		LogLevel:          v.GetString("LOG_LEVEL"),
		LogFile:           v.GetString("LOG_FILE"),
		SiteContentPath:   v.GetString("SITE_CONTENT"),
	}

	if cfg.GenerationTimeout <= 0 {
		return nil, fmt.Errorf("GENERATION_TIMEOUT must be a positive duration, got %q", v.GetString("GENERATION_TIMEOUT"))
	}
	if cfg.ChatTTL <= 0 {
		return nil, fmt.Errorf("CHAT_TTL must be a positive duration, got %q", v.GetString("CHAT_TTL"))
	}

	if !cfg.Production() {
		cfg.AllowedOrigins = append(cfg.AllowedOrigins, DevOrigin)
	}
	if cloudRunURL := v.GetString("CLOUD_RUN_URL"); cloudRunURL != "" {
		cfg.AllowedOrigins = append(cfg.AllowedOrigins, cloudRunURL)
	}
	if extraOrigins := v.GetString("ALLOWED_ORIGINS"); extraOrigins != "" {
		for _, origin := range strings.Split(extraOrigins, ",") {
			if origin = strings.TrimSpace(origin); origin != "" {
				cfg.AllowedOrigins = append(cfg.AllowedOrigins, origin)
			}
		}
	}

	return cfg, nil
}
