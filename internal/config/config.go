// apps/wordle-engine/internal/config/config.go
//
// Environment-driven configuration.
// A .env file in the working directory is loaded first (if present);
// real environment variables always win over .env values.
//
// Environment variables:
//   PORT=5175                           HTTP listen port
//   LOG_LEVEL=info                      zerolog level
//   CLIENT_ORIGIN=http://localhost:5173 CORS origin
//   JWT_SECRET=dev_secret_change_me     game token signing key
//   TOKEN_TTL=24h                       game token lifetime
//   GUESS_LIMIT=6                       default rows per game
//   RESULTS_DB=                         sqlite path for finished-game results (empty disables)
//   WORDS_ANSWERS_FILE / WORDS_ALLOWED_FILE   word list files (embedded lists otherwise)

package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/robalobadob/wordle/apps/wordle-engine/internal/game"
)

// Config holds every setting read from the environment.
type Config struct {
	Port         string
	LogLevel     zerolog.Level
	ClientOrigin string
	JWTSecret    string
	TokenTTL     time.Duration
	GuessLimit   int
	ResultsDB    string
	AnswersFile  string
	AllowedFile  string
}

// Load reads .env (best effort) and the process environment.
func Load() (*Config, error) {
	_ = godotenv.Load()
	return FromEnv()
}

// FromEnv builds a Config from the current environment only.
func FromEnv() (*Config, error) {
	c := &Config{
		Port:         getEnv("PORT", "5175"),
		ClientOrigin: getEnv("CLIENT_ORIGIN", "http://localhost:5173"),
		JWTSecret:    getEnv("JWT_SECRET", "dev_secret_change_me"),
		ResultsDB:    os.Getenv("RESULTS_DB"),
		AnswersFile:  os.Getenv("WORDS_ANSWERS_FILE"),
		AllowedFile:  os.Getenv("WORDS_ALLOWED_FILE"),
	}

	lvl, err := zerolog.ParseLevel(getEnv("LOG_LEVEL", "info"))
	if err != nil {
		return nil, fmt.Errorf("LOG_LEVEL: %w", err)
	}
	c.LogLevel = lvl

	if c.TokenTTL, err = time.ParseDuration(getEnv("TOKEN_TTL", "24h")); err != nil {
		return nil, fmt.Errorf("TOKEN_TTL: %w", err)
	}

	if c.GuessLimit, err = strconv.Atoi(getEnv("GUESS_LIMIT", strconv.Itoa(game.DefaultGuessLimit))); err != nil {
		return nil, fmt.Errorf("GUESS_LIMIT: %w", err)
	}
	if c.GuessLimit < 1 {
		return nil, fmt.Errorf("GUESS_LIMIT must be positive, got %d", c.GuessLimit)
	}
	return c, nil
}

// getEnv returns the value of k or def if unset/empty.
func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
