package config

import (
	"log"
	"os"
	"time"
)

// SessionTTL bounds both the server-side session entry and the cookie max
// age. Fixed at 24h.
const SessionTTL = 24 * time.Hour

type Config struct {
	Port string

	// ClientOrigin is the front-end origin the auth flow redirects back to
	// and the only origin allowed by CORS.
	ClientOrigin string

	GoogleClientID     string
	GoogleClientSecret string
	RedirectURL        string

	// Transcript extraction subprocess.
	PythonBin        string
	TranscriptScript string

	ModelName    string
	LLMBackend   string // "delegated" or "genai"
	GeminiAPIKey string
	UseMockLLM   bool

	StorageBackend string // "memory" or "firestore"
	GCPProjectID   string
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getBoolEnv(key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	if v == "1" || v == "true" || v == "TRUE" {
		return true
	}
	return false
}

// Load reads all env vars and builds the config
func Load() *Config {
	cfg := &Config{
		Port: getEnv("PORT", "8080"),

		ClientOrigin: getEnv("COMPENTUBE_CLIENT_ORIGIN", "https://compentube.top"),

		GoogleClientID:     getEnv("GOOGLE_CLIENT_ID", ""),
		GoogleClientSecret: getEnv("GOOGLE_CLIENT_SECRET", ""),
		RedirectURL:        getEnv("COMPENTUBE_REDIRECT_URL", "http://localhost:8080/auth/callback"),

		PythonBin:        getEnv("COMPENTUBE_PYTHON", "python"),
		TranscriptScript: getEnv("COMPENTUBE_TRANSCRIPT_SCRIPT", "get_transcript.py"),

		ModelName:    getEnv("COMPENTUBE_MODEL_NAME", "gemini-1.5-flash"),
		LLMBackend:   getEnv("COMPENTUBE_LLM_BACKEND", "delegated"),
		GeminiAPIKey: getEnv("GEMINI_API_KEY", ""),
		UseMockLLM:   getBoolEnv("COMPENTUBE_USE_MOCK_LLM", false),

		StorageBackend: getEnv("COMPENTUBE_STORAGE_BACKEND", "memory"),
		GCPProjectID:   getEnv("COMPENTUBE_GCP_PROJECT", ""),
	}

	// Fail fast on missing provider credentials; nothing works without them.
	if cfg.GoogleClientID == "" || cfg.GoogleClientSecret == "" {
		log.Fatal("GOOGLE_CLIENT_ID and GOOGLE_CLIENT_SECRET must be set")
	}
	if cfg.LLMBackend == "genai" && cfg.GeminiAPIKey == "" && !cfg.UseMockLLM {
		log.Fatal("GEMINI_API_KEY must be set for the genai LLM backend")
	}
	if cfg.StorageBackend == "firestore" && cfg.GCPProjectID == "" {
		log.Fatal("COMPENTUBE_GCP_PROJECT is required for the firestore storage backend")
	}

	return cfg
}
