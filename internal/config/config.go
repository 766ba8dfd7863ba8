// Package config reads service settings from the environment, after
// loading an optional .env file.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

var ErrTokenKey = errors.New("config: TOKEN_KEY is required when DATABASE_URL is set")

type Config struct {
	Addr        string
	TLSCert     string
	TLSKey      string
	TokenKey    string
	DatabaseURL string
	RateLimit   float64
	RateBurst   int
	CORSOrigin  string
	DefaultLang string
	// ReportFont is a UTF-8 TTF used for localized PDF reports.
	ReportFont string
}

// TLS reports whether both certificate and key are configured.
func (c Config) TLS() bool {
	return c.TLSCert != "" && c.TLSKey != ""
}

// Library reports whether the saved-driver library is enabled.
func (c Config) Library() bool {
	return c.DatabaseURL != ""
}

// Load reads files (default ".env") if present, then the environment.
// Variables already set in the environment win over file entries.
func Load(files ...string) (Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("config: %s: %w", f, err)
		}
	}

	c := Config{
		Addr:        get("ADDR", ":8080"),
		TLSCert:     os.Getenv("TLS_CERT"),
		TLSKey:      os.Getenv("TLS_KEY"),
		TokenKey:    os.Getenv("TOKEN_KEY"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		CORSOrigin:  get("CORS_ORIGIN", "*"),
		DefaultLang: get("DEFAULT_LANG", "en"),
		ReportFont:  os.Getenv("REPORT_FONT"),
	}
	var err error
	if c.RateLimit, err = strconv.ParseFloat(get("RATE_LIMIT_RPS", "5"), 64); err != nil || c.RateLimit <= 0 {
		return Config{}, fmt.Errorf("config: RATE_LIMIT_RPS: invalid value %q", os.Getenv("RATE_LIMIT_RPS"))
	}
	if c.RateBurst, err = strconv.Atoi(get("RATE_LIMIT_BURST", "10")); err != nil || c.RateBurst <= 0 {
		return Config{}, fmt.Errorf("config: RATE_LIMIT_BURST: invalid value %q", os.Getenv("RATE_LIMIT_BURST"))
	}
	if c.Library() && c.TokenKey == "" {
		return Config{}, ErrTokenKey
	}
	return c, nil
}

func get(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
