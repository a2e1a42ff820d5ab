package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	APIURL         string
	RequestTimeout time.Duration
	DebounceMS     int

	RedisAddr     string
	RedisPassword string
	KafkaBrokers  []string

	ReceiptDir string
	StoreName  string
	StoreLine1 string
	StoreLine2 string

	LogLevel string
	LogFile  string
}

// Load reads configuration from the environment. A .env file in the working
// directory is applied first when present.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		APIURL:         getEnv("API_URL", "http://localhost:3000"),
		RequestTimeout: getEnvDuration("REQUEST_TIMEOUT", 10*time.Second),
		DebounceMS:     getEnvInt("DEBOUNCE_MS", 300),
		RedisAddr:      getEnv("REDIS_ADDR", ""),
		RedisPassword:  getEnv("REDIS_PASSWORD", ""),
		KafkaBrokers:   splitList(getEnv("KAFKA_BROKERS", "")),
		ReceiptDir:     getEnv("RECEIPT_DIR", "receipts"),
		StoreName:      getEnv("STORE_NAME", "DIARY KASIR"),
		StoreLine1:     getEnv("STORE_LINE1", "Fried Chicken Expert"),
		StoreLine2:     getEnv("STORE_LINE2", "Jl. Sudirman No. 10"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		LogFile:        getEnv("LOG_FILE", "pos.log"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return defaultValue
	}
	return d
}

func getEnvInt(key string, defaultValue int) int {
	v := os.Getenv(key)
	if v == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return defaultValue
	}
	return n
}

func splitList(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
