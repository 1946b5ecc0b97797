package config

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	for _, k := range []string{"PORT", "LOG_LEVEL", "CLIENT_ORIGIN", "JWT_SECRET", "TOKEN_TTL", "GUESS_LIMIT", "RESULTS_DB", "WORDS_ANSWERS_FILE", "WORDS_ALLOWED_FILE"} {
		t.Setenv(k, "")
	}
	c, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, "5175", c.Port)
	assert.Equal(t, zerolog.InfoLevel, c.LogLevel)
	assert.Equal(t, 24*time.Hour, c.TokenTTL)
	assert.Equal(t, 6, c.GuessLimit)
	assert.Empty(t, c.ResultsDB)
}

func TestOverrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("TOKEN_TTL", "90m")
	t.Setenv("GUESS_LIMIT", "4")
	t.Setenv("RESULTS_DB", "/tmp/results.db")

	c, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, "9000", c.Port)
	assert.Equal(t, zerolog.DebugLevel, c.LogLevel)
	assert.Equal(t, 90*time.Minute, c.TokenTTL)
	assert.Equal(t, 4, c.GuessLimit)
	assert.Equal(t, "/tmp/results.db", c.ResultsDB)
}

func TestInvalid(t *testing.T) {
	t.Setenv("GUESS_LIMIT", "0")
	_, err := FromEnv()
	assert.Error(t, err)

	t.Setenv("GUESS_LIMIT", "")
	t.Setenv("TOKEN_TTL", "soon")
	_, err = FromEnv()
	assert.Error(t, err)
}
