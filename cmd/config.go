package cmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string
	DBLogLevel string

	RabbitMQURL           string
	NotificationsExchange string

	OutboxRelaySchedule string
	OutboxRelayBatch    int
	StockAlertSchedule  string
	StockExpiryHorizon  time.Duration

	// WorkflowMode is "permissive" or "strict".
	WorkflowMode       string
	DefaultOrderPrefix string
}

// LoadConfig reads the configuration from the environment. Values from a .env file
// in the working directory are used when present; the file is optional.
func LoadConfig() Config {
	_ = godotenv.Load()

	return Config{
		HTTPPort:              getEnv("HTTP_PORT", "8080"),
		DBHost:                getEnv("DB_HOST", "localhost"),
		DBPort:                getEnv("DB_PORT", "5432"),
		DBUser:                getEnv("DB_USER", "postgres"),
		DBPassword:            getEnv("DB_PASSWORD", ""),
		DBName:                getEnv("DB_NAME", "catering"),
		DBSslMode:             getEnv("DB_SSLMODE", "disable"),
		DBLogLevel:            getEnv("DB_LOG_LEVEL", "warn"),
		RabbitMQURL:           getEnv("RABBITMQ_URL", ""),
		NotificationsExchange: getEnv("NOTIFICATIONS_EXCHANGE", "catering.notifications"),
		OutboxRelaySchedule:   getEnv("OUTBOX_RELAY_SCHEDULE", "*/5 * * * * *"),
		OutboxRelayBatch:      getEnvInt("OUTBOX_RELAY_BATCH", 100),
		StockAlertSchedule:    getEnv("STOCK_ALERT_SCHEDULE", "0 0 6 * * *"),
		StockExpiryHorizon:    getEnvDuration("STOCK_EXPIRY_HORIZON", 72*time.Hour),
		WorkflowMode:          getEnv("WORKFLOW_MODE", "permissive"),
		DefaultOrderPrefix:    getEnv("DEFAULT_ORDER_PREFIX", "KA"),
	}
}

// DSN builds the PostgreSQL connection string.
func (c Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode,
	)
}

func getEnv(key, fallback string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	return value
}

func getEnvInt(key string, fallback int) int {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return fallback
	}
	return d
}
