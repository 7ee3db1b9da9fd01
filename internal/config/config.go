package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// Config holds everything the server reads from the environment.
type Config struct {
	Port        string
	DatabaseDSN string

	// GeminiAPIKey authenticates against the external LLM endpoint.
	GeminiAPIKey string
	GeminiModel  string

	// JWTSecret signs login tokens and websocket identity tokens.
	JWTSecret string
	TokenTTL  time.Duration

	// AllowedOrigins is the CORS allowlist for both HTTP and websocket upgrades.
	AllowedOrigins []string

	// UploadDir is where resume files land.
	UploadDir string

	// RedisAddr enables the shared presence store when set; empty means
	// in-process presence only.
	RedisAddr string

	// BroadcastFallback re-enables the legacy "broadcast when target offline"
	// relay behavior. Off by default.
	BroadcastFallback bool
}

// Load reads configuration from the environment. DATABASE_URL, GEMINI_API_KEY
// and JWT_SECRET are required; everything else has a dev-friendly default.
func Load() (*Config, error) {
	cfg := &Config{
		Port:              getenv("PORT", "8080"),
		DatabaseDSN:       os.Getenv("DATABASE_URL"),
		GeminiAPIKey:      os.Getenv("GEMINI_API_KEY"),
		GeminiModel:       getenv("GEMINI_MODEL", "gemini-2.5-flash"),
		JWTSecret:         os.Getenv("JWT_SECRET"),
		TokenTTL:          24 * time.Hour,
		UploadDir:         getenv("UPLOAD_DIR", "./uploads"),
		RedisAddr:         os.Getenv("REDIS_ADDR"),
		BroadcastFallback: os.Getenv("NOTIFY_BROADCAST_FALLBACK") == "true",
	}

	origins := getenv("ALLOWED_ORIGINS", "http://localhost:5173")
	for _, o := range strings.Split(origins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			cfg.AllowedOrigins = append(cfg.AllowedOrigins, o)
		}
	}

	if cfg.DatabaseDSN == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}
	if cfg.GeminiAPIKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY is required")
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}
	return cfg, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
