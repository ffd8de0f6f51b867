package config

import (
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds everything the banking API reads from the environment
type Config struct {
	HTTPAddr          string
	AppEnv            string
	LogLevel          string
	StatementTimezone string
	ShutdownTimeout   time.Duration
	CORSOrigins       []string
	Kafka             KafkaConfig
}

// KafkaConfig holds event publishing configuration. No brokers means
// publishing is off.
type KafkaConfig struct {
	Brokers []string
	Topic   string
}

// Load reads an optional .env file, then environment variables with defaults
func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on system env vars")
	}

	return Config{
		HTTPAddr:          getEnv("HTTP_ADDR", ":3333"),
		AppEnv:            getEnv("APP_ENV", "production"),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		StatementTimezone: getEnv("STATEMENT_TIMEZONE", "Local"),
		ShutdownTimeout:   getDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
		CORSOrigins:       splitList(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		Kafka: KafkaConfig{
			Brokers: splitList(getEnv("KAFKA_BROKERS", "")),
			Topic:   getEnv("KAFKA_TOPIC", "statement_operation_recorded"),
		},
	}
}

// Location resolves StatementTimezone, falling back to local time
func (c Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.StatementTimezone)
	if err != nil {
		log.Printf("unknown STATEMENT_TIMEZONE %q, using local time", c.StatementTimezone)
		return time.Local
	}
	return loc
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Printf("invalid %s %q, using %s", key, v, fallback)
		return fallback
	}
	return d
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
