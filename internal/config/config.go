package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration.
type Config struct {
	// HTTP listen address
	Addr string

	// Database configuration; empty means the in-memory store
	DatabaseURL string

	// Event configuration; no brokers means events are dropped
	KafkaBrokers []string
	KafkaTopic   string

	// Days until a not-yet-billed registration is considered due when its
	// league has no payment due date configured
	VirtualDueDays int
}

// Load reads configuration from a .env file (if present) and the
// environment. Every setting has a default; nothing is required.
func Load() *Config {
	_ = godotenv.Load()

	config := &Config{
		Addr:           ":8080",
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		KafkaTopic:     "payments.reconciled",
		VirtualDueDays: 30,
	}

	if addr := os.Getenv("ADDR"); addr != "" {
		config.Addr = addr
	}
	if topic := os.Getenv("KAFKA_TOPIC"); topic != "" {
		config.KafkaTopic = topic
	}
	if brokers := os.Getenv("KAFKA_BROKERS"); brokers != "" {
		for _, b := range strings.Split(brokers, ",") {
			b = strings.TrimSpace(b)
			if b != "" {
				config.KafkaBrokers = append(config.KafkaBrokers, b)
			}
		}
	}
	if days := os.Getenv("VIRTUAL_DUE_DAYS"); days != "" {
		if parsed, err := strconv.Atoi(days); err == nil && parsed > 0 {
			config.VirtualDueDays = parsed
		}
	}

	return config
}

// VirtualDueIn is VirtualDueDays as a duration.
func (c *Config) VirtualDueIn() time.Duration {
	return time.Duration(c.VirtualDueDays) * 24 * time.Hour
}
