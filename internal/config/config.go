package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Environment    string
	Port           string
	RequestTimeout time.Duration
	Database       DatabaseConfig
	Store          StoreConfig
	JWT            JWTConfig
	AI             AIConfig
	CORS           CORSConfig
}

type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
}

type StoreConfig struct {
	// Backend selects the persistence backend: "postgres" or "memory".
	Backend string
}

type JWTConfig struct {
	Secret    string
	ExpiresIn string
}

type AIConfig struct {
	AnthropicAPIKey string
	AnthropicModel  string
	OCRAPIKey       string
	OCRURL          string
}

type CORSConfig struct {
	AllowedOrigins []string
}

func Load() *Config {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	return &Config{
		Environment:    getEnv("APP_ENV", "development"),
		Port:           getEnv("PORT", "3001"),
		RequestTimeout: getDuration("REQUEST_TIMEOUT", 10*time.Second),
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "postgres"),
			Port:     getEnv("DB_PORT", "5432"),
			Name:     getEnv("DB_NAME", "frijio"),
			User:     getEnv("DB_USER", "frijio"),
			Password: getEnv("DB_PASSWORD", "frijio_password"),
		},
		Store: StoreConfig{
			Backend: getEnv("STORE_BACKEND", "postgres"),
		},
		JWT: JWTConfig{
			Secret:    getEnv("JWT_SECRET", "your-super-secret-jwt-key-change-this-in-production"),
			ExpiresIn: getEnv("JWT_EXPIRES_IN", "168h"),
		},
		AI: AIConfig{
			AnthropicAPIKey: getEnv("ANTHROPIC_API_KEY", ""),
			AnthropicModel:  getEnv("ANTHROPIC_MODEL", "claude-3-5-haiku-latest"),
			OCRAPIKey:       getEnv("OCR_API_KEY", ""),
			OCRURL:          getEnv("OCR_API_URL", "https://api.ocr.space/parse/image"),
		},
		CORS: CORSConfig{
			AllowedOrigins: []string{
				getEnv("FRONTEND_URL", "http://localhost:3000"),
				"http://localhost:3000",
			},
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
		log.Printf("Invalid duration for %s, using default %s", key, defaultValue)
	}
	return defaultValue
}
