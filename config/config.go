package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Port      string
	JWTKey    string
	SaltRound int

	DBDriver   string // postgres or sqlite
	DBName     string // sqlite file path when DBDriver is sqlite
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string

	ProgressStore      string // db or file
	ProgressFile       string // backing file when ProgressStore is file
	WatchFlushInterval int    // seconds between watch-time flushes

	EmailSender string
	Password    string // SMTP Password

	LiveProbeTimeout int // seconds to wait when probing a live stream URL
}

// AppConfig is a global variable to access configuration
var AppConfig *Config

// LoadConfig initializes configuration from environment variables or defaults
func LoadConfig() {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found. Using system environment variables.")
	}

	AppConfig = &Config{
		Port:      getEnv("PORT", "3000"),
		JWTKey:    getEnv("JWT_SECRET_KEY", "defaultSecret"),
		SaltRound: getEnvInt("SALT_ROUND", 10),

		DBDriver:   getEnv("DB_DRIVER", "sqlite"),
		DBName:     getEnv("DB_NAME", "lms.db"),
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", ""),

		ProgressStore:      getEnv("PROGRESS_STORE", "db"),
		ProgressFile:       getEnv("PROGRESS_FILE", "data/progress.json"),
		WatchFlushInterval: getEnvInt("WATCH_FLUSH_INTERVAL", 30),

		EmailSender: getEnv("EMAIL_SENDER", "defaultSecret"),
		Password:    getEnv("PASSWORD", "defaultSecret"),

		LiveProbeTimeout: getEnvInt("LIVE_PROBE_TIMEOUT", 10),
	}

	// Validate critical configuration
	if AppConfig.JWTKey == "defaultSecret" {
		log.Println("Warning: Using default JWT_SECRET_KEY. Update it in your environment.")
	}
	if AppConfig.DBDriver != "postgres" && AppConfig.DBDriver != "sqlite" {
		log.Printf("Warning: Unknown DB_DRIVER %q, falling back to sqlite.", AppConfig.DBDriver)
		AppConfig.DBDriver = "sqlite"
	}
	if AppConfig.ProgressStore != "db" && AppConfig.ProgressStore != "file" {
		log.Printf("Warning: Unknown PROGRESS_STORE %q, falling back to db.", AppConfig.ProgressStore)
		AppConfig.ProgressStore = "db"
	}
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvInt retrieves an environment variable as an integer or returns the default integer value
func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	intValue, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Error converting environment variable %s to int: %v", key, err)
		return defaultValue
	}
	return intValue
}
