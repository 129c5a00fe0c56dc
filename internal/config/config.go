// internal/config/config.go
//
// Process configuration, read from the environment once at start-up.
// A .env file in the working directory is loaded first when present.
//
// Environment variables:
//   PORT               listen port (default 5175)
//   LOG_LEVEL          zerolog level (default info)
//   LOG_PRETTY         "1" for console output instead of JSON
//   DB_PATH            SQLite file for the results archive (default ./data/crossclues.db)
//   JWT_SECRET         HMAC key for seat tokens
//   JWT_EXPIRES_HOURS  seat token lifetime (default 24)
//   CLIENT_ORIGIN      allowed CORS origin (default http://localhost:5173)
//   WORDS_DIR          directory of *.txt word lists replacing the embedded ones

package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const devSecret = "dev_secret_change_me"

type Config struct {
	Port         string
	LogLevel     string
	LogPretty    bool
	DBPath       string
	JWTSecret    string
	TokenTTL     time.Duration
	ClientOrigin string
	WordsDir     string
}

// Load reads .env (if any) and the environment.
func Load() Config {
	_ = godotenv.Load()
	return FromEnv()
}

// FromEnv reads the environment without touching .env.
func FromEnv() Config {
	return Config{
		Port:         getEnv("PORT", "5175"),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
		LogPretty:    os.Getenv("LOG_PRETTY") == "1",
		DBPath:       getEnv("DB_PATH", "./data/crossclues.db"),
		JWTSecret:    getEnv("JWT_SECRET", devSecret),
		TokenTTL:     time.Duration(envInt("JWT_EXPIRES_HOURS", 24)) * time.Hour,
		ClientOrigin: getEnv("CLIENT_ORIGIN", "http://localhost:5173"),
		WordsDir:     os.Getenv("WORDS_DIR"),
	}
}

// InsecureSecret reports whether the built-in development secret is in use.
func (c Config) InsecureSecret() bool { return c.JWTSecret == devSecret }

// getEnv returns the value of k or def if unset/empty.
func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func envInt(k string, def int) int {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return def
}
