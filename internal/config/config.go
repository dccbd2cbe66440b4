package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
	_ "time/tzdata" // TIMEZONE must resolve without system zoneinfo

	"github.com/joho/godotenv"
)

// Config holds application level configuration loaded from environment variables.
type Config struct {
	ServerPort    string
	APIBasePath   string
	DBDriver      string
	DBDSN         string
	MembersTable  string
	AutoMigrate   bool
	RedisAddr     string
	RedisDB       int
	RedisPass     string
	StatsCacheTTL time.Duration
	Timezone      string
	LogLevel      string
	LogFormat     string
	SwaggerHost   string
	SeedSource    string
}

// Load builds Config from environment with sensible defaults. A .env file in
// the working directory is read first when present; real environment
// variables take precedence over it.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		ServerPort:    getEnv("SERVER_PORT", "8080"),
		APIBasePath:   os.Getenv("API_BASE_PATH"),
		DBDriver:      getEnv("DB_DRIVER", "mysql"),
		DBDSN:         getEnv("DB_DSN", "user:password@tcp(localhost:3306)/gymcloud?charset=utf8mb4&parseTime=True&loc=UTC"),
		MembersTable:  getEnv("MEMBERS_TABLE", "gymcloud_users"),
		AutoMigrate:   getEnvBool("DB_AUTO_MIGRATE", false),
		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisDB:       getEnvInt("REDIS_DB", 0),
		RedisPass:     os.Getenv("REDIS_PASSWORD"),
		StatsCacheTTL: getEnvDuration("STATS_CACHE_TTL", 30*time.Second),
		Timezone:      getEnv("TIMEZONE", "UTC"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		LogFormat:     getEnv("LOG_FORMAT", "json"),
		SwaggerHost:   os.Getenv("SWAGGER_HOST"),
		SeedSource:    getEnv("SEED_SOURCE", "members.json"),
	}
}

// Location resolves the configured time zone. An unknown zone returns UTC
// together with the lookup error so callers can report the fallback.
func (c *Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC, fmt.Errorf("load TIMEZONE %q: %w", c.Timezone, err)
	}
	return loc, nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			return parsed
		}
	}
	return def
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			return parsed
		}
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.ParseBool(v); err == nil {
			return parsed
		}
	}
	return def
}
