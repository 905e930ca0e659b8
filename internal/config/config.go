package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	Database DatabaseConfig
	App      AppConfig
	Client   ClientConfig
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Driver   string // postgres | memory
	URL      string
	LogLevel string
}

// AppConfig holds HTTP server configuration
type AppConfig struct {
	Port        string
	CORSOrigins string
}

// ClientConfig holds settings of the terminal client
type ClientConfig struct {
	APIURL   string
	PageSize int
}

const (
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

const defaultDSN = "host=localhost user=postgres password=postgres dbname=warehouse port=5432 sslmode=disable"

// Load loads configuration from environment variables, reading .env first
// when present.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, relying on system env")
	}
	return FromEnv()
}

// FromEnv builds the configuration from the current environment only.
func FromEnv() *Config {
	return &Config{
		Database: DatabaseConfig{
			Driver:   strings.ToLower(getEnv("STORAGE_DRIVER", DriverPostgres)),
			URL:      getEnv("DATABASE_URL", defaultDSN),
			LogLevel: strings.ToLower(getEnv("DB_LOG_LEVEL", "warn")),
		},
		App: AppConfig{
			Port:        getEnv("PORT", "3000"),
			CORSOrigins: getEnv("CORS_ORIGINS", "*"),
		},
		Client: ClientConfig{
			APIURL:   strings.TrimRight(getEnv("API_URL", "http://localhost:3000/api"), "/"),
			PageSize: getEnvInt("PAGE_SIZE", 6),
		},
	}
}

// getEnv gets an environment variable with a fallback value
func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	n, err := strconv.Atoi(getEnv(key, ""))
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}
