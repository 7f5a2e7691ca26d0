package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

var (
	JwtSecret  string
	DbHost     string
	DbPort     string
	DbUser     string
	DbPassword string
	DbName     string
	ServerPort string
	Issuer     string

	MinioEndpoint  string
	MinioAccessKey string
	MinioSecretKey string
	MinioUseSSL    bool
	MinioBucket    string

	// ChatbotURL points at the external assistant backend.
	ChatbotURL string

	// UrgentDaysDefault is the deadline window used when ?days is absent.
	UrgentDaysDefault int

	// AutoAssignInterval drives the background triage sweep.
	AutoAssignInterval time.Duration

	// ActivityRetentionDays bounds the activity log cleanup task.
	ActivityRetentionDays int
)

func LoadConfig() {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, using environment variables")
	}

	JwtSecret = getEnv("JWT_SECRET", "defaultsecret")
	DbHost = getEnv("DB_HOST", "localhost")
	DbPort = getEnv("DB_PORT", "5432")
	DbUser = getEnv("DB_USER", "postgres")
	DbPassword = getEnv("DB_PASSWORD", "password")
	DbName = getEnv("DB_NAME", "portal")
	ServerPort = getEnv("SERVER_PORT", "8080")
	Issuer = getEnv("JWT_ISSUER", "portal")

	MinioEndpoint = getEnv("MINIO_ENDPOINT", "localhost:9000")
	MinioAccessKey = getEnv("MINIO_ACCESS_KEY", "minioadmin")
	MinioSecretKey = getEnv("MINIO_SECRET_KEY", "minioadmin")
	MinioBucket = getEnv("MINIO_BUCKET", "documents")
	MinioUseSSL, _ = strconv.ParseBool(getEnv("MINIO_USE_SSL", "false"))

	ChatbotURL = getEnv("CHATBOT_URL", "http://localhost:8000")

	UrgentDaysDefault = getEnvInt("URGENT_DAYS_DEFAULT", 3)
	ActivityRetentionDays = getEnvInt("ACTIVITY_RETENTION_DAYS", 90)

	intervalMinutes := getEnvInt("AUTO_ASSIGN_INTERVAL_MINUTES", 15)
	AutoAssignInterval = time.Duration(intervalMinutes) * time.Minute
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return fallback
}
