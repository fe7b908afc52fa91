package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config is the application-wide configuration read from the environment.
type Config struct {
	Port string

	JWTSecret  string
	AccessTTL  time.Duration
	RefreshTTL time.Duration
	SessionTTL time.Duration

	GoEnv        string // dev/prod
	FEURL        string // storefront origin, used for CORS
	CookieSecure bool
}

// Load reads the environment. JWT_SECRET is the only hard requirement in
// prod; everything else has a development default.
func Load() (Config, error) {
	cfg := Config{
		Port:         getenv("PORT", "8080"),
		JWTSecret:    os.Getenv("JWT_SECRET"),
		AccessTTL:    durationEnv("ACCESS_TTL_MINUTES", 15) * time.Minute,
		RefreshTTL:   durationEnv("REFRESH_TTL_DAYS", 14) * 24 * time.Hour,
		SessionTTL:   durationEnv("SESSION_TTL_HOURS", 24) * time.Hour,
		GoEnv:        getenv("GO_ENV", "dev"),
		FEURL:        getenv("FE_URL", "http://localhost:5173"),
		CookieSecure: boolEnv("COOKIE_SECURE", true),
	}

	if cfg.JWTSecret == "" {
		if cfg.GoEnv == "prod" {
			return Config{}, fmt.Errorf("JWT_SECRET is required")
		}
		cfg.JWTSecret = "dev_secret_change_me"
	}

	return cfg, nil
}

// Addr is the listen address for the HTTP server.
func (c Config) Addr() string {
	if len(c.Port) > 0 && c.Port[0] == ':' {
		return c.Port
	}
	return ":" + c.Port
}

func getenv(key string, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}

func durationEnv(key string, def int64) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return time.Duration(def)
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil || n <= 0 {
		return time.Duration(def)
	}
	return time.Duration(n)
}

func boolEnv(key string, def bool) bool {
	switch os.Getenv(key) {
	case "1", "true", "TRUE", "True":
		return true
	case "0", "false", "FALSE", "False":
		return false
	default:
		return def
	}
}
