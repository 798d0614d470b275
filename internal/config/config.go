package config

import (
	"fmt"
	"net/url"
	"os"
)

// Config holds the database connection parameters. Each field comes
// from a DB_* env var, with a fallback default when unset.
type Config struct {
	Host     string
	User     string
	Password string
	Database string
	Port     string
}

func Load() Config {
	return Config{
		Host:     getenv("DB_HOST", "localhost"),
		User:     getenv("DB_USER", "postgres"),
		Password: getenv("DB_PASSWORD", "postgres"),
		Database: getenv("DB_DATABASE", "tasks"),
		Port:     getenv("DB_PORT", "5432"),
	}
}

// URL renders the config as a postgres connection URL with the
// credentials escaped.
func (c Config) URL() string {
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(c.User, c.Password),
		Host:   fmt.Sprintf("%s:%s", c.Host, c.Port),
		Path:   c.Database,
	}
	return u.String()
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
