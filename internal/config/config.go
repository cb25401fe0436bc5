package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Server  ServerConfig
	Storage StorageConfig
	Gemini  GeminiConfig
	Export  ExportConfig
}

type ServerConfig struct {
	Port string
}

type StorageConfig struct {
	// Path to the sqlite state file. Empty means in-memory only.
	Path string
}

type GeminiConfig struct {
	APIKey string
	Model  string
}

type ExportConfig struct {
	Directory string
}

// LoadFromEnv reads configuration from the environment, loading a local .env
// file first when one exists.
func LoadFromEnv() *Config {
	_ = godotenv.Load()

	return &Config{
		Server: ServerConfig{
			Port: getEnvOrDefault("PORT", "8080"),
		},
		Storage: StorageConfig{
			Path: getEnvOrDefault("STATE_PATH", "habitflow.db"),
		},
		Gemini: GeminiConfig{
			APIKey: os.Getenv("GEMINI_API_KEY"),
			Model:  getEnvOrDefault("GEMINI_MODEL", "gemini-2.5-flash"),
		},
		Export: ExportConfig{
			Directory: getEnvOrDefault("EXPORT_DIR", "exports"),
		},
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
