package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Identity IdentityConfig
	Events   EventsConfig
}

type AppConfig struct {
	Port               string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
}

type DatabaseConfig struct {
	Connection string
}

type IdentityConfig struct {
	BaseURL        string
	TimeoutSeconds int
	// InsecureSkipVerify disables TLS verification toward the identity
	// endpoint. Local development only.
	InsecureSkipVerify bool
}

type EventsConfig struct {
	SessionLifecycleTopic string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
		},
		Database: DatabaseConfig{
			Connection: getEnv("DB_CONNECTION_STRING", ""),
		},
		Identity: IdentityConfig{
			BaseURL:            getEnv("IDENTITY_API_URL", "https://localhost"),
			TimeoutSeconds:     getEnvAsInt("IDENTITY_API_TIMEOUT_SECONDS", 5),
			InsecureSkipVerify: getEnvAsBool("IDENTITY_API_INSECURE_SKIP_VERIFY", false),
		},
		Events: EventsConfig{
			SessionLifecycleTopic: getEnv("SESSION_LIFECYCLE_TOPIC_NAME", "SESSION_LIFECYCLE"),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}

func getEnvAsBool(key string, fallback bool) bool {
	strValue := getEnv(key, "")
	if value, err := strconv.ParseBool(strValue); err == nil {
		return value
	}
	return fallback
}
