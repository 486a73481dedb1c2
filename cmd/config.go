package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
)

const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"
)

type Config struct {
	HTTPPort int
	Storage  string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	ORSAPIKey  string
	ORSBaseURL string
	ORSCountry string

	RedisAddr     string
	GeoCacheTTL   time.Duration
	KafkaBrokers  []string
	KafkaTopic    string
	ClockTickSpec string
	ClockTickStep time.Duration
	// ClockStart is the initial virtual time. Zero means the wall clock at startup.
	ClockStart time.Time
	LogLevel   slog.Level
	RandomSeed uint64
}

// DSN is the postgres connection string built from the DB_* settings.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

// LoadConfig reads configuration in order: envFile (if present), environment,
// then command line flags.
func LoadConfig(envFile string, args []string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	cfg := Config{
		Storage:    env("STORAGE", StorageMemory),
		DBHost:     env("DB_HOST", "localhost"),
		DBPort:     env("DB_PORT", "5432"),
		DBUser:     env("DB_USER", "postgres"),
		DBPassword: env("DB_PASSWORD", "postgres"),
		DBName:     env("DB_NAME", "dispatch"),
		DBSslMode:  env("DB_SSLMODE", "disable"),
		ORSAPIKey:  env("ORS_API_KEY", ""),
		ORSBaseURL: env("ORS_BASE_URL", ""),
		ORSCountry: env("ORS_COUNTRY", ""),
		RedisAddr:  env("REDIS_ADDR", ""),
		KafkaTopic: env("KAFKA_TOPIC", ""),

		ClockTickSpec: env("CLOCK_TICK_SPEC", ""),
	}
	if brokers := env("KAFKA_BROKERS", ""); brokers != "" {
		cfg.KafkaBrokers = splitList(brokers)
	}

	var errList []error
	var err error
	if cfg.HTTPPort, err = strconv.Atoi(env("HTTP_PORT", "8080")); err != nil {
		errList = append(errList, fmt.Errorf("HTTP_PORT: %w", err))
	}
	if cfg.GeoCacheTTL, err = time.ParseDuration(env("GEO_CACHE_TTL", "168h")); err != nil {
		errList = append(errList, fmt.Errorf("GEO_CACHE_TTL: %w", err))
	}
	if cfg.ClockTickStep, err = time.ParseDuration(env("CLOCK_TICK_STEP", "1m")); err != nil {
		errList = append(errList, fmt.Errorf("CLOCK_TICK_STEP: %w", err))
	}
	if cfg.RandomSeed, err = strconv.ParseUint(env("RANDOM_SEED", "1"), 10, 64); err != nil {
		errList = append(errList, fmt.Errorf("RANDOM_SEED: %w", err))
	}
	if start := env("CLOCK_START", ""); start != "" {
		if cfg.ClockStart, err = time.Parse(time.RFC3339, start); err != nil {
			errList = append(errList, fmt.Errorf("CLOCK_START: %w", err))
		}
	}
	logLevel := env("LOG_LEVEL", "info")
	if err = errors.Join(errList...); err != nil {
		return Config{}, err
	}

	flags := pflag.NewFlagSet("dispatch", pflag.ContinueOnError)
	flags.IntVarP(&cfg.HTTPPort, "port", "p", cfg.HTTPPort, "port to listen on")
	flags.StringVar(&cfg.Storage, "storage", cfg.Storage, "entity store: memory or postgres")
	flags.StringVar(&logLevel, "log-level", logLevel, "debug, info, warn or error")
	flags.StringVar(&cfg.ClockTickSpec, "clock-tick", cfg.ClockTickSpec, "cron spec (with seconds) that advances the clock; empty disables")
	flags.DurationVar(&cfg.ClockTickStep, "clock-step", cfg.ClockTickStep, "virtual time added per clock tick")
	flags.Uint64Var(&cfg.RandomSeed, "seed", cfg.RandomSeed, "seed of the random source used by the reconciler and demo data")
	if err = flags.Parse(args); err != nil {
		return Config{}, err
	}

	if err = cfg.LogLevel.UnmarshalText([]byte(logLevel)); err != nil {
		return Config{}, fmt.Errorf("log level: %w", err)
	}
	if err = cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	var errList []error
	if c.HTTPPort <= 0 || c.HTTPPort > 65535 {
		errList = append(errList, fmt.Errorf("invalid port: %d", c.HTTPPort))
	}
	if c.Storage != StorageMemory && c.Storage != StoragePostgres {
		errList = append(errList, fmt.Errorf("invalid storage %q, want %s or %s", c.Storage, StorageMemory, StoragePostgres))
	}
	if c.ClockTickSpec != "" && c.ClockTickStep <= 0 {
		errList = append(errList, fmt.Errorf("clock tick step must be positive, got %s", c.ClockTickStep))
	}
	if c.GeoCacheTTL <= 0 {
		errList = append(errList, fmt.Errorf("geo cache ttl must be positive, got %s", c.GeoCacheTTL))
	}
	return errors.Join(errList...)
}

func env(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
