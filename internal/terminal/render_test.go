package terminal

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordle/apps/wordle-engine/internal/game"
)

func TestRenderPlain(t *testing.T) {
	s, err := game.New("apple", []string{"alpha"}, game.WithGuessLimit(3))
	require.NoError(t, err)
	s.SetInput("alpha")
	require.NoError(t, s.AcceptCurrentInput())
	s.SetInput("ap")

	var sb strings.Builder
	require.NoError(t, Render(&sb, s.Board(), false))

	lines := strings.Split(strings.TrimSuffix(sb.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "[A] (L) [P]  H   A ", lines[0])
	assert.Equal(t, " A   P   _   _   _ ", lines[1])
	assert.Equal(t, " _   _   _   _   _ ", lines[2])
}

func TestRenderColour(t *testing.T) {
	s, err := game.New("apple", []string{"apple"})
	require.NoError(t, err)
	s.SetInput("apple")
	require.NoError(t, s.AcceptCurrentInput())

	var sb strings.Builder
	require.NoError(t, Render(&sb, s.Board(), true))
	out := sb.String()
	assert.Equal(t, 5, strings.Count(strings.SplitN(out, "\n", 2)[0], palette[game.TileCorrect]))
	assert.Contains(t, out, reset)
}

func TestStatusLine(t *testing.T) {
	s, err := game.New("apple", []string{"apple", "tiger"}, game.WithGuessLimit(2))
	require.NoError(t, err)
	assert.Equal(t, "2 guess(es) left.", StatusLine(s))

	s.SetInput("tiger")
	require.NoError(t, s.AcceptCurrentInput())
	s.SetInput("tiger")
	require.NoError(t, s.AcceptCurrentInput())
	assert.Equal(t, "Out of guesses. The word was APPLE.", StatusLine(s))

	s, _ = game.New("apple", []string{"apple"})
	s.SetInput("apple")
	require.NoError(t, s.AcceptCurrentInput())
	assert.Equal(t, "Solved in 1/6. The word was APPLE.", StatusLine(s))
}
