// Package config loads process configuration from the environment, with an
// optional .env file for local development.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Addr        string
	DatabaseURL string
	StockAPIURL string
	JWTSecret   string
	SessionTTL  time.Duration
	RedisAddr   string // optional; enables the rate limiter when set
	RedisUser   string
	RedisPass   string
	Env         string
}

// Load reads the environment, after best-effort loading of .env.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		Addr:        getenv("ADDR", ":8080"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		StockAPIURL: getenv("STOCK_API_URL", "http://localhost:7001"),
		JWTSecret:   os.Getenv("AUTH_JWT_SECRET"),
		SessionTTL:  getduration("AUTH_SESSION_TTL", 12*time.Hour),
		RedisAddr:   os.Getenv("REDIS_ADDR"),
		RedisUser:   getenv("REDIS_USER", "default"),
		RedisPass:   os.Getenv("REDIS_PASSWORD"),
		Env:         getenv("APP_ENV", "dev"),
	}
	if cfg.DatabaseURL == "" {
		return Config{}, fmt.Errorf("DATABASE_URL not set")
	}
	if len(cfg.JWTSecret) < 32 {
		return Config{}, fmt.Errorf("AUTH_JWT_SECRET must be at least 32 characters")
	}
	return cfg, nil
}

// LoadStockAPI is the config for the stand-alone stock service, which needs
// no database or secrets.
func LoadStockAPI() Config {
	_ = godotenv.Load()
	return Config{
		Addr: getenv("STOCK_ADDR", ":7001"),
		Env:  getenv("APP_ENV", "dev"),
	}
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getduration(k string, def time.Duration) time.Duration {
	if v := os.Getenv(k); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			return d
		}
	}
	return def
}
