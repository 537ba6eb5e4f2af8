// Package config loads the service configuration once at startup.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds every setting the service needs. It is built once by Load and
// passed by value to the components that need it.
type Config struct {
	AppHost     string
	AppPort     string
	AppEnv      string
	LogLevel    string
	PageSize    int
	BodyLimit   int64
	CORSOrigins []string

	PostgresHost         string
	PostgresPort         int
	PostgresUser         string
	PostgresPassword     string
	PostgresDB           string
	PostgresMaxOpenConns int
	PostgresMaxIdleConns int

	JWTSecretKey string
	JWTExp       time.Duration
}

// Addr returns the HTTP listen address.
func (c Config) Addr() string {
	return fmt.Sprintf("%s:%s", c.AppHost, c.AppPort)
}

// PostgresDSN returns the pgx connection string.
func (c Config) PostgresDSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		c.PostgresUser, c.PostgresPassword, c.PostgresHost, c.PostgresPort, c.PostgresDB)
}

// Load reads environment variables from the file at path (if it exists) and
// then from the process environment, falling back to defaults.
func Load(path string) (Config, error) {
	_ = godotenv.Load(path)

	var (
		cfg Config
		err error
	)

	// Application config
	cfg.AppHost = getEnv("APP_HOST", "localhost")
	cfg.AppPort = getEnv("APP_PORT", "3500")
	cfg.AppEnv = getEnv("APP_ENV", "production")
	cfg.LogLevel = getEnv("APP_LOG_LEVEL", "info")
	if cfg.PageSize, err = getInt("APP_PAGE_SIZE", 4); err != nil {
		return Config{}, err
	}
	if cfg.PageSize < 1 {
		return Config{}, fmt.Errorf("APP_PAGE_SIZE must be positive, got %d", cfg.PageSize)
	}
	bodyLimit, err := getInt("APP_BODY_LIMIT", 50*1024)
	if err != nil {
		return Config{}, err
	}
	cfg.BodyLimit = int64(bodyLimit)
	cfg.CORSOrigins = splitList(getEnv("CORS_ALLOWED_ORIGINS", "*"))

	// PostgreSQL config
	cfg.PostgresHost = getEnv("POSTGRES_HOST", "localhost")
	cfg.PostgresUser = getEnv("POSTGRES_USER", "user")
	cfg.PostgresPassword = getEnv("POSTGRES_PASSWORD", "password")
	cfg.PostgresDB = getEnv("POSTGRES_DB", "blog")
	if cfg.PostgresPort, err = getInt("POSTGRES_PORT", 5432); err != nil {
		return Config{}, err
	}
	if cfg.PostgresMaxOpenConns, err = getInt("POSTGRES_MAX_OPEN_CONNS", 16); err != nil {
		return Config{}, err
	}
	if cfg.PostgresMaxIdleConns, err = getInt("POSTGRES_MAX_IDLE_CONNS", 8); err != nil {
		return Config{}, err
	}

	// JWT config
	cfg.JWTSecretKey = getEnv("JWT_SECRET_KEY", "")
	expSeconds, err := getInt("JWT_EXP_SECOND", 3600)
	if err != nil {
		return Config{}, err
	}
	cfg.JWTExp = time.Duration(expSeconds) * time.Second

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if val, ok := os.LookupEnv(key); ok && val != "" {
		return val
	}
	return defaultValue
}

func getInt(key string, defaultValue int) (int, error) {
	raw := getEnv(key, strconv.Itoa(defaultValue))
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, raw, err)
	}
	return v, nil
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
