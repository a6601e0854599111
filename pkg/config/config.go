package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Server       ServerConfig
	Database     DatabaseConfig
	Logging      LoggingConfig
	OpenHolidays OpenHolidaysConfig
	Worker       WorkerConfig
}

type ServerConfig struct {
	Port string
	Mode string
}

type DatabaseConfig struct {
	Path string
}

type LoggingConfig struct {
	Level string
}

type OpenHolidaysConfig struct {
	BaseURL string
}

type WorkerConfig struct {
	RefreshEnabled bool
	RefreshCron    string
}

var AppConfig *Config

// Load loads configuration from .env file and environment variables
func Load() error {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	AppConfig = &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "8080"),
			Mode: getEnv("GIN_MODE", "release"),
		},
		Database: DatabaseConfig{
			Path: getEnv("DB_PATH", "./workhours.db"),
		},
		Logging: LoggingConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
		OpenHolidays: OpenHolidaysConfig{
			BaseURL: getEnv("OPENHOLIDAYS_BASE_URL", "https://openholidaysapi.org"),
		},
		Worker: WorkerConfig{
			RefreshEnabled: getEnvAsBool("HOLIDAY_REFRESH_ENABLED", false),
			RefreshCron:    getEnv("HOLIDAY_REFRESH_CRON", "0 3 * * *"),
		},
	}

	return nil
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsBool gets an environment variable as boolean or returns a default value
func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}
