package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

type Config struct {
	ServiceName string
	ServerPort  int

	DatabaseURL string

	AccessSecret  []byte
	RefreshSecret []byte
	AccessTTL     time.Duration
	RefreshTTL    time.Duration

	BcryptCost int

	KafkaBrokers []string

	LogLevel string
}

// Load reads configuration from the environment. A .env file is picked up
// when present so local runs do not need exported variables.
func Load() Config {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("notice: .env not found, using system environment: %v", err)
	}

	return Config{
		ServiceName: EnvDefault("SERVICE_NAME", "pomodoro-backend"),
		ServerPort:  EnvIntDefault("SERVER_PORT", 5050),

		DatabaseURL: os.Getenv("DATABASE_URL"),

		AccessSecret:  []byte(os.Getenv("JWT_SECRET")),
		RefreshSecret: []byte(os.Getenv("REFRESH_SECRET")),
		AccessTTL:     EnvDurationDefault("ACCESS_TTL", 15*time.Minute),
		RefreshTTL:    EnvDurationDefault("REFRESH_TTL", 7*24*time.Hour),

		BcryptCost: EnvIntDefault("BCRYPT_COST", bcrypt.DefaultCost),

		KafkaBrokers: CSV(os.Getenv("KAFKA_BROKERS")),

		LogLevel: EnvDefault("LOG_LEVEL", "info"),
	}
}

// MustValidate exits the process when a required value is missing. Secrets
// are read once at startup and never reloaded.
func (c Config) MustValidate() {
	MustNonEmpty(c.DatabaseURL, "DATABASE_URL")
	MustNonEmptyBytes(c.AccessSecret, "JWT_SECRET")
	MustNonEmptyBytes(c.RefreshSecret, "REFRESH_SECRET")
}

func CSV(v string) []string {
	if v == "" {
		return nil
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

func EnvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func EnvIntDefault(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func EnvDurationDefault(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return def
	}
	return d
}
