// Package config loads application settings from a .env file and environment variables.
// Environment variables always take precedence over .env file values.
package config

import (
	"log"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	// Database – DATABASE_URL selects PostgreSQL, MYSQL_DSN selects MySQL.
	// If neither is set the app falls back to a local SQLite file.
	DatabaseURL string
	MySQLDSN    string
	SQLitePath  string

	// Upstream Bible API.
	APIKey      string
	BibleID     string
	BibleAPIURL string

	// CORS origin of the deployed frontend, in addition to localhost.
	FrontendURL string

	// Server
	Debug      bool
	Port       string
	TLSDomains []string
}

// Load reads configuration from a .env file (if present) and then from
// environment variables. Environment variables always win.
func Load() *Config {
	v := newViper()

	// Defaults
	v.SetDefault("PORT", "4000")
	v.SetDefault("SQLITE_PATH", "temp.db")
	v.SetDefault("BIBLE_ID", "de4e12af7f28f599-02")
	v.SetDefault("BIBLE_API_URL", "https://rest.api.bible/v1")
	v.SetDefault("DEBUG", false)

	cfg := &Config{
		DatabaseURL: v.GetString("DATABASE_URL"),
		MySQLDSN:    v.GetString("MYSQL_DSN"),
		SQLitePath:  v.GetString("SQLITE_PATH"),
		APIKey:      v.GetString("API_KEY"),
		BibleID:     v.GetString("BIBLE_ID"),
		BibleAPIURL: v.GetString("BIBLE_API_URL"),
		FrontendURL: v.GetString("FRONTEND_URL"),
		Debug:       v.GetBool("DEBUG"),
		Port:        normalizePort(v.GetString("PORT")),
		TLSDomains:  splitTrimmed(v.GetString("TLS_DOMAINS")),
	}

	cfg.warn()
	return cfg
}

// AllowedOrigins returns the CORS origins: local development plus the
// configured frontend, when set.
func (c *Config) AllowedOrigins() []string {
	origins := []string{"http://localhost:3000"}
	if c.FrontendURL != "" {
		origins = append(origins, c.FrontendURL)
	}
	return origins
}

// warn flags missing-but-survivable settings. Nothing here is fatal: the
// database falls back to SQLite and the Bible proxy simply forwards an
// empty key upstream.
func (c *Config) warn() {
	if c.DatabaseURL == "" && c.MySQLDSN == "" {
		log.Printf("config: DATABASE_URL not set, falling back to sqlite file %q", c.SQLitePath)
	}
	if c.APIKey == "" {
		log.Println("config: API_KEY not set, Bible API requests will be unauthenticated")
	}
}

// normalizePort accepts either "4000" or ":4000".
func normalizePort(p string) string {
	if p == "" {
		return ":4000"
	}
	if !strings.HasPrefix(p, ":") {
		return ":" + p
	}
	return p
}

func newViper() *viper.Viper {
	// Silently load .env – OK if the file doesn't exist (production uses real env vars).
	if err := godotenv.Load(); err != nil {
		log.Println("config: no .env file found, using environment variables only")
	}

	v := viper.New()
	v.AutomaticEnv()
	return v
}

func splitTrimmed(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	return out
}
