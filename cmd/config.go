package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPPort               string
	DBHost                 string
	DBPort                 string
	DBUser                 string
	DBPassword             string
	DBName                 string
	DBSslMode              string
	WeatherAPIURL          string
	WeatherAPIKey          string
	WeatherTimeout         time.Duration
	JWTSecret              string
	KafkaHost              string
	KafkaOrderChangedTopic string
	OutboxBatchSize        int
	LogLevel               string
}

// LoadConfig reads the environment after loading envFile into it. A missing envFile is
// not an error; variables already set in the environment win over the file.
func LoadConfig(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	weatherTimeoutMS, err := intVariable("WEATHER_TIMEOUT_MS", 300)
	if err != nil {
		return Config{}, err
	}

	batchSize, err := intVariable("OUTBOX_BATCH_SIZE", 100)
	if err != nil {
		return Config{}, err
	}

	config := Config{
		HTTPPort:               variable("HTTP_PORT", "8080"),
		DBHost:                 variable("DB_HOST", "localhost"),
		DBPort:                 variable("DB_PORT", "5432"),
		DBUser:                 variable("DB_USER", "postgres"),
		DBPassword:             variable("DB_PASSWORD", ""),
		DBName:                 variable("DB_NAME", "orders"),
		DBSslMode:              variable("DB_SSLMODE", "disable"),
		WeatherAPIURL:          variable("WEATHER_API_URL", ""),
		WeatherAPIKey:          variable("WEATHER_API_KEY", ""),
		WeatherTimeout:         time.Duration(weatherTimeoutMS) * time.Millisecond,
		JWTSecret:              variable("JWT_SECRET", ""),
		KafkaHost:              variable("KAFKA_HOST", ""),
		KafkaOrderChangedTopic: variable("KAFKA_ORDER_CHANGED_TOPIC", "orders.changed"),
		OutboxBatchSize:        batchSize,
		LogLevel:               variable("LOG_LEVEL", "info"),
	}

	if config.JWTSecret == "" {
		return Config{}, errors.New("JWT_SECRET must be set")
	}

	return config, nil
}

func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

// RelayEnabled reports whether outbox events have somewhere to go.
func (c Config) RelayEnabled() bool {
	return strings.TrimSpace(c.KafkaHost) != ""
}

func variable(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && strings.TrimSpace(v) != "" {
		return strings.TrimSpace(v)
	}
	return fallback
}

func intVariable(key string, fallback int) (int, error) {
	raw := variable(key, "")
	if raw == "" {
		return fallback, nil
	}

	v, err := strconv.Atoi(raw)
	if err != nil || v <= 0 {
		return 0, fmt.Errorf("%s must be a positive integer, got %q", key, raw)
	}
	return v, nil
}
