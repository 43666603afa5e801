package config

import (
	"os"
)

// Config carries all runtime settings, sourced from the environment.
type Config struct {
	Port        string
	Environment string
	CORSOrigins string

	// RootFolderName is the fixed, well-known name of the root folder
	// that owns all note folders in the user's drive.
	RootFolderName string

	// GoogleJWKSURL serves the keys for optional ID token verification.
	GoogleJWKSURL string

	// Summarization endpoint
	GeminiAPIKey string
	GeminiModel  string

	// LogDir enables file logging with rotation when non-empty.
	LogDir string

	Debug bool
}

// Load reads configuration from the environment with dev defaults.
func Load() *Config {
	env := getEnv("ENVIRONMENT", "dev")

	return &Config{
		Port:           getEnv("PORT", "8080"),
		Environment:    env,
		CORSOrigins:    getEnv("CORS_ORIGINS", "http://localhost:3000"),
		RootFolderName: getEnv("ROOT_FOLDER_NAME", "Notes"),
		GoogleJWKSURL:  getEnv("GOOGLE_JWKS_URL", "https://www.googleapis.com/oauth2/v3/certs"),
		GeminiAPIKey:   getEnv("GEMINI_API_KEY", ""),
		GeminiModel:    getEnv("GEMINI_MODEL", "gemini-2.5-flash"),
		LogDir:         getEnv("LOG_DIR", ""),
		Debug:          getEnv("DEBUG", getDefaultDebug(env)) == "true",
	}
}

// getDefaultDebug returns the default debug setting based on environment
func getDefaultDebug(env string) string {
	if env == "prod" {
		return "false"
	}
	return "true"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
