// Env loader
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv string
	Port   string

	DBDriver   string
	DBPath     string
	DBHost     string
	DBPort     string
	DBName     string
	DBUser     string
	DBPassword string
	DBSchema   string

	CorpusAPIURL       string
	CorpusFetchTimeout time.Duration
	CorpusFetchRetries int
	SeedRetryInterval  time.Duration

	StaticDir   string
	LogLevel    string
	LogFormat   string
	SwaggerHost string
}

// LoadConfig loads environment variables from the .env file
func LoadConfig() (*Config, error) {
	appEnv := os.Getenv("APP_ENV")

	switch appEnv {
	case "production":
		if err := godotenv.Load(".env.production"); err == nil {
			fmt.Println("Loaded .env.production")
		}
	default:
		if err := godotenv.Load(".env.development"); err == nil {
			fmt.Println("Loaded .env.development")
		}
	}

	cfg := &Config{
		AppEnv:     getEnv("APP_ENV", "development"),
		Port:       getEnv("PORT", "3000"),
		DBDriver:   strings.ToLower(getEnv("DB_DRIVER", "sqlite")),
		DBPath:     getEnv("DB_PATH", "quran.db"),
		DBHost:     getEnv("BLUEPRINT_DB_HOST", "localhost"),
		DBPort:     getEnv("BLUEPRINT_DB_PORT", "5432"),
		DBName:     getEnv("BLUEPRINT_DB_DATABASE", "quran"),
		DBUser:     getEnv("BLUEPRINT_DB_USERNAME", "postgres"),
		DBPassword: getEnv("BLUEPRINT_DB_PASSWORD", ""),
		DBSchema:   getEnv("BLUEPRINT_DB_SCHEMA", "public"),
		CorpusAPIURL: strings.TrimRight(
			getEnv("CORPUS_API_URL", "https://api.alquran.cloud/v1"), "/"),
		StaticDir:   getEnv("STATIC_DIR", ""),
		LogLevel:    strings.ToLower(getEnv("LOG_LEVEL", "info")),
		LogFormat:   strings.ToLower(getEnv("LOG_FORMAT", "text")),
		SwaggerHost: getEnv("SWAGGER_HOST", "localhost:3000"),
	}

	var err error
	if cfg.CorpusFetchTimeout, err = getDuration("CORPUS_FETCH_TIMEOUT", 60*time.Second); err != nil {
		return nil, err
	}
	if cfg.SeedRetryInterval, err = getDuration("SEED_RETRY_INTERVAL", 0); err != nil {
		return nil, err
	}
	if cfg.CorpusFetchRetries, err = getInt("CORPUS_FETCH_RETRIES", 3); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// Validate checks the values that cannot be defaulted away.
func (c *Config) Validate() error {
	switch c.DBDriver {
	case "sqlite":
		if c.DBPath == "" {
			return fmt.Errorf("DB_PATH is required for the sqlite driver")
		}
	case "postgres":
		if c.DBHost == "" || c.DBName == "" {
			return fmt.Errorf("BLUEPRINT_DB_HOST and BLUEPRINT_DB_DATABASE are required for the postgres driver")
		}
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q (want sqlite or postgres)", c.DBDriver)
	}

	if c.CorpusAPIURL == "" {
		return fmt.Errorf("CORPUS_API_URL is required")
	}
	if c.CorpusFetchRetries < 0 {
		return fmt.Errorf("CORPUS_FETCH_RETRIES must not be negative")
	}
	if c.SeedRetryInterval < 0 {
		return fmt.Errorf("SEED_RETRY_INTERVAL must not be negative")
	}

	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("unsupported LOG_FORMAT %q (want text or json)", c.LogFormat)
	}

	return nil
}

// PostgresURL builds the pgx connection string from the BLUEPRINT_DB_* settings.
func (c *Config) PostgresURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable&search_path=%s",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName, c.DBSchema)
}

func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	raw, exists := os.LookupEnv(key)
	if !exists || raw == "" {
		return defaultValue, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("parsing %s %q: %w", key, raw, err)
	}
	return d, nil
}

func getInt(key string, defaultValue int) (int, error) {
	raw, exists := os.LookupEnv(key)
	if !exists || raw == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("parsing %s %q: %w", key, raw, err)
	}
	return n, nil
}
