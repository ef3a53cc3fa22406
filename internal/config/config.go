package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config carries everything the server reads from the environment.
type Config struct {
	Port string

	GeminiAPIKey string
	GeminiModel  string

	TTSAPIKey  string
	TTSBaseURL string
	TTSVoiceID string

	SupabaseURL        string
	SupabaseServiceKey string
	StorageBucket      string

	ShareBaseURL string

	ExportDir          string
	EncoderProfilePath string
}

// Load reads .env (if present) and the environment. Only the Gemini key is
// hard-required; TTS and Supabase degrade to disabled features when unset.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		Log.WithError(err).Warn("Could not load .env file")
	}

	cfg := &Config{
		Port:               envOr("PORT", "8080"),
		GeminiAPIKey:       os.Getenv("GEMINI_API_KEY"),
		GeminiModel:        envOr("GEMINI_MODEL", "gemini-2.0-flash"),
		TTSAPIKey:          os.Getenv("TTS_API_KEY"),
		TTSBaseURL:         envOr("TTS_BASE_URL", "https://api.elevenlabs.io"),
		TTSVoiceID:         envOr("TTS_VOICE_ID", "21m00Tcm4TlvDq8ikWAM"),
		SupabaseURL:        os.Getenv("SUPABASE_URL"),
		SupabaseServiceKey: os.Getenv("SUPABASE_SERVICE_KEY"),
		StorageBucket:      envOr("STORAGE_BUCKET", "narration-audio"),
		ShareBaseURL:       envOr("SHARE_BASE_URL", "http://localhost:8080"),
		ExportDir:          envOr("EXPORT_DIR", "exports"),
		EncoderProfilePath: os.Getenv("ENCODER_PROFILE"),
	}

	if cfg.GeminiAPIKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY is not set")
	}
	return cfg, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// EnvInt reads an integer environment variable with a fallback.
func EnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		Log.WithField("key", key).WithError(err).Warn("Invalid integer in environment, using fallback")
		return fallback
	}
	return n
}
