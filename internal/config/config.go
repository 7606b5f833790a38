package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata"
)

// App holds the runtime configuration loaded from environment variables.
type App struct {
	Env  string
	Port string

	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string
	DBSSLMode  string

	RedisAddr   string
	KafkaBroker string

	JWTSecret  string
	AccessTTL  time.Duration
	RefreshTTL time.Duration

	// Timezone is the business time zone used to decide the calendar day of a scan.
	Timezone        string
	QRRadiusMeters  float64
	ExportTopic     string
	ExportGroupID   string
	OutboxPoll      time.Duration
	CORSOrigins     []string
	ConnectRetries  int
	ShutdownTimeout time.Duration
}

// Load returns application config populated from environment variables with sensible defaults.
func Load() App {
	return App{
		Env:             getEnv("APP_ENV", "development"),
		Port:            getEnv("PORT", "3000"),
		DBHost:          getEnv("DB_HOST", "localhost"),
		DBUser:          getEnv("DB_USER", "postgres"),
		DBPassword:      getEnv("DB_PASSWORD", "postgres"),
		DBName:          getEnv("DB_NAME", "lt_attendance"),
		DBPort:          getEnv("DB_PORT", "5432"),
		DBSSLMode:       getEnv("DB_SSLMODE", "disable"),
		RedisAddr:       getEnv("REDIS_ADDR", "localhost:6379"),
		KafkaBroker:     getEnv("KAFKA_BROKER", ""),
		JWTSecret:       getEnv("JWT_SECRET", ""),
		AccessTTL:       durationEnv("ACCESS_TTL", 15*time.Minute),
		RefreshTTL:      durationEnv("REFRESH_TTL", 7*24*time.Hour),
		Timezone:        getEnv("APP_TIMEZONE", "UTC"),
		QRRadiusMeters:  floatEnv("QR_RADIUS_METERS", 100),
		ExportTopic:     getEnv("REPORT_EXPORT_TOPIC", "lt.report.salary.export.requested.v1"),
		ExportGroupID:   getEnv("REPORT_EXPORT_GROUP_ID", "lt-att-report-export"),
		OutboxPoll:      durationEnv("OUTBOX_POLL_INTERVAL", 3*time.Second),
		CORSOrigins:     listEnv("CORS_ORIGINS"),
		ConnectRetries:  intEnv("CONNECT_RETRIES", 5),
		ShutdownTimeout: durationEnv("SHUTDOWN_TIMEOUT", 10*time.Second),
	}
}

func (a App) IsProduction() bool {
	return a.Env == "production" || a.Env == "prod"
}

// Location resolves Timezone, falling back to UTC when the name is unknown.
func (a App) Location() *time.Location {
	loc, err := time.LoadLocation(a.Timezone)
	if err != nil {
		log.Printf("invalid APP_TIMEZONE %q: %v, using UTC", a.Timezone, err)
		return time.UTC
	}
	return loc
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func durationEnv(key string, fallback time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		d, err := time.ParseDuration(val)
		if err != nil {
			log.Printf("invalid duration for %s: %v, using fallback %s", key, err, fallback)
			return fallback
		}
		return d
	}
	return fallback
}

func intEnv(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		parsed, err := strconv.Atoi(val)
		if err != nil {
			log.Printf("invalid int for %s: %v, using fallback %d", key, err, fallback)
			return fallback
		}
		return parsed
	}
	return fallback
}

func floatEnv(key string, fallback float64) float64 {
	if val := os.Getenv(key); val != "" {
		parsed, err := strconv.ParseFloat(val, 64)
		if err != nil || parsed < 0 {
			log.Printf("invalid float for %s: %q, using fallback %v", key, val, fallback)
			return fallback
		}
		return parsed
	}
	return fallback
}

func listEnv(key string) []string {
	val := strings.TrimSpace(os.Getenv(key))
	if val == "" {
		return nil
	}
	parts := strings.Split(val, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
