package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config captures the runtime configuration for the application.
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Session  SessionConfig
	Catalog  CatalogConfig
	LogLevel string
}

// ServerConfig configures the HTTP server runtime behavior.
type ServerConfig struct {
	Addr string
}

// DatabaseConfig contains the database connection settings. When URL is set
// the postgres driver is used, otherwise recipes are kept in the sqlite file
// at SQLitePath.
type DatabaseConfig struct {
	URL             string
	SQLitePath      string
	MaxIdleConns    int
	MaxOpenConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

// SessionConfig controls the scs session cookie.
type SessionConfig struct {
	Lifetime     time.Duration
	CookieName   string
	CookieDomain string
	CookieSecure bool
}

// CatalogConfig points at an optional JSON overlay merged over the built-in
// oil and modifier tables at startup.
type CatalogConfig struct {
	OverlayPath string
}

// Load inspects the environment and builds a Config value.
func Load() (Config, error) {
	cfg := Config{}

	cfg.Server = ServerConfig{
		Addr: firstNonEmpty(
			os.Getenv("SERVER_ADDR"),
			os.Getenv("ADDR"),
			":8080",
		),
	}

	cfg.Database = DatabaseConfig{
		URL: firstNonEmpty(
			os.Getenv("DATABASE_URL"),
			os.Getenv("DB_URL"),
			"",
		),
		SQLitePath:      firstNonEmpty(os.Getenv("SQLITE_PATH"), "saponify.db"),
		MaxIdleConns:    parseIntWithDefault(os.Getenv("DB_MAX_IDLE_CONNS"), 2),
		MaxOpenConns:    parseIntWithDefault(os.Getenv("DB_MAX_OPEN_CONNS"), 10),
		ConnMaxLifetime: parseDurationWithDefault(os.Getenv("DB_CONN_MAX_LIFETIME"), time.Hour),
		ConnMaxIdleTime: parseDurationWithDefault(os.Getenv("DB_CONN_MAX_IDLE_TIME"), 10*time.Minute),
	}

	cfg.Session = SessionConfig{
		Lifetime:     parseDurationWithDefault(os.Getenv("SESSION_LIFETIME"), 12*time.Hour),
		CookieName:   firstNonEmpty(os.Getenv("SESSION_COOKIE_NAME"), "saponify_session"),
		CookieDomain: os.Getenv("SESSION_COOKIE_DOMAIN"),
		CookieSecure: parseBoolWithDefault(os.Getenv("SESSION_COOKIE_SECURE"), false),
	}

	cfg.Catalog = CatalogConfig{
		OverlayPath: os.Getenv("CATALOG_PATH"),
	}

	cfg.LogLevel = os.Getenv("LOG_LEVEL")

	if strings.TrimSpace(cfg.Server.Addr) == "" {
		return Config{}, fmt.Errorf("server address must not be empty")
	}

	return cfg, nil
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if strings.TrimSpace(value) != "" {
			return value
		}
	}
	return ""
}

func parseIntWithDefault(value string, def int) int {
	if strings.TrimSpace(value) == "" {
		return def
	}
	parsed, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return def
	}
	return parsed
}

func parseDurationWithDefault(value string, def time.Duration) time.Duration {
	if strings.TrimSpace(value) == "" {
		return def
	}
	parsed, err := time.ParseDuration(strings.TrimSpace(value))
	if err != nil {
		return def
	}
	return parsed
}

func parseBoolWithDefault(value string, def bool) bool {
	if strings.TrimSpace(value) == "" {
		return def
	}
	parsed, err := strconv.ParseBool(strings.TrimSpace(value))
	if err != nil {
		return def
	}
	return parsed
}
