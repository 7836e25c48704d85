package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config carries every setting the server reads from the environment.
type Config struct {
	AppURI         string
	MongoURI       string
	MongoDB        string
	RedisURI       string
	AllowedOrigins string
	FormCacheTTL   time.Duration
	RequestTimeout time.Duration
	SeedFile       string
	LogLevel       string
}

// Load reads .env (if present) and then the process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ Warning: No .env file found")
	}
	return FromEnv(os.Getenv)
}

// FromEnv builds a Config from a lookup function so tests need not touch the real environment.
func FromEnv(getenv func(string) string) (*Config, error) {
	cfg := &Config{
		AppURI:         withDefault(getenv("APP_URI"), "8888"),
		MongoURI:       getenv("MONGO_URI"),
		MongoDB:        withDefault(getenv("MONGO_DB"), "FormBuilderDB"),
		RedisURI:       getenv("REDIS_URI"),
		AllowedOrigins: withDefault(getenv("ALLOWED_ORIGINS"), "*"),
		SeedFile:       getenv("SEED_FILE"),
		LogLevel:       withDefault(getenv("LOG_LEVEL"), "info"),
	}
	if cfg.MongoURI == "" {
		return nil, errors.New("MONGO_URI environment variable not set")
	}

	var err error
	if cfg.FormCacheTTL, err = parseDuration(getenv, "FORM_CACHE_TTL", 10*time.Minute); err != nil {
		return nil, err
	}
	if cfg.RequestTimeout, err = parseDuration(getenv, "REQUEST_TIMEOUT", 5*time.Second); err != nil {
		return nil, err
	}
	return cfg, nil
}

func withDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

func parseDuration(getenv func(string) string, key string, def time.Duration) (time.Duration, error) {
	raw := getenv(key)
	if raw == "" {
		return def, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, raw, err)
	}
	return d, nil
}
