package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config carries everything the process needs from the environment. It is
// built once in main and handed to constructors explicitly.
type Config struct {
	HTTPPort string

	DBHost     string
	DBPort     int
	DBUser     string
	DBPassword string
	DBName     string

	JWTSecret    string
	TokenTTL     time.Duration
	CookieMaxAge time.Duration

	UploadDir      string
	UploadMaxBytes int64

	KafkaBrokers      []string
	NotificationTopic string
	AuditTopic        string

	CORSOrigins []string

	AdminEmail    string
	AdminPassword string
}

func Load() (*Config, error) {
	loadDotenv()

	cfg := &Config{
		HTTPPort:          getEnv("HTTP_PORT", "9000"),
		DBHost:            getEnv("DB_HOST", "localhost"),
		DBPort:            getEnvInt("DB_PORT", 5432),
		DBUser:            os.Getenv("POSTGRES_USER"),
		DBPassword:        os.Getenv("POSTGRES_PASSWORD"),
		DBName:            os.Getenv("POSTGRES_DB"),
		JWTSecret:         os.Getenv("JWT_SECRET"),
		TokenTTL:          getEnvDuration("TOKEN_TTL", 24*time.Hour),
		CookieMaxAge:      getEnvDuration("COOKIE_MAX_AGE", 24*time.Hour),
		UploadDir:         getEnv("UPLOAD_DIR", "public/uploads"),
		UploadMaxBytes:    int64(getEnvInt("UPLOAD_MAX_BYTES", 10<<20)),
		NotificationTopic: getEnv("NOTIFICATION_TOPIC", "notification_events"),
		AuditTopic:        getEnv("AUDIT_TOPIC", "audit_logs"),
		AdminEmail:        os.Getenv("ADMIN_EMAIL"),
		AdminPassword:     os.Getenv("ADMIN_PASSWORD"),
	}

	if brokers := os.Getenv("KAFKA_BROKERS"); brokers != "" {
		cfg.KafkaBrokers = strings.Split(brokers, ",")
	}
	if origins := os.Getenv("CORS_ORIGINS"); origins != "" {
		cfg.CORSOrigins = strings.Split(origins, ",")
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is not set")
	}
	return cfg, nil
}

// DSN builds the Postgres connection string for pgxpool.
func (c *Config) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName)
}

// loadDotenv walks a few levels up from the working directory so the same
// binary works from the repo root, cmd/ and tests.
func loadDotenv() {
	wd, err := os.Getwd()
	if err != nil {
		return
	}
	for _, p := range []string{
		filepath.Join(wd, ".env"),
		filepath.Join(wd, "..", ".env"),
		filepath.Join(wd, "..", "..", ".env"),
	} {
		if err := godotenv.Load(p); err == nil {
			return
		}
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return v
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	v, err := time.ParseDuration(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return v
}
