// config/config.go - Application configuration from environment
package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds everything the application reads from the environment.
// It is built once in main and passed to whoever needs it.
type Config struct {
	DatabaseURL    string
	Port           string
	SessionSecret  string
	UploadDir      string
	MaxUploadBytes int
	CORSOrigins    string
}

// Load builds a Config from environment variables with local defaults.
func Load() *Config {
	return &Config{
		DatabaseURL:    databaseURL(),
		Port:           getEnv("PORT", "5000"),
		SessionSecret:  getEnv("SESSION_SECRET", "dev-secret-key-change-in-production"),
		UploadDir:      getEnv("UPLOAD_DIR", "static/uploads"),
		MaxUploadBytes: getEnvInt("MAX_UPLOAD_BYTES", 16*1024*1024),
		CORSOrigins:    getEnv("CORS_ORIGINS", "*"),
	}
}

// databaseURL returns DATABASE_URL if set, otherwise assembles a DSN
// from the individual DB_* parameters.
func databaseURL() string {
	if dsn := os.Getenv("DATABASE_URL"); dsn != "" {
		return dsn
	}

	host := getEnv("DB_HOST", "localhost")
	port := getEnv("DB_PORT", "5432")
	user := getEnv("DB_USER", "postgres")
	password := getEnv("DB_PASSWORD", "")
	dbname := getEnv("DB_NAME", "event_scores")
	sslmode := getEnv("DB_SSLMODE", "disable")

	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		host, port, user, password, dbname, sslmode)
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	n, err := strconv.Atoi(val)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}
