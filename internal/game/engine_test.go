package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testWords = []string{"", "apple", "alpha", "bravo", "delta", " sauce ", "tiger", "limit", "toolong", "abc"}

func newTestSession(t *testing.T, opts ...Option) *Session {
	t.Helper()
	s, err := New("apple", testWords, opts...)
	require.NoError(t, err)
	return s
}

func pendingRow(size int, letters string) Row {
	r := emptyRow(size)
	for i, c := range []rune(letters) {
		r.Tiles[i] = Tile{Letter: string(c), State: TilePending}
	}
	return r
}

func typeWord(s *Session, w string) {
	for _, c := range w {
		s.AppendLetter(string(c))
	}
}

func TestNewSession(t *testing.T) {
	s := newTestSession(t)

	assert.Equal(t, StatePlaying, s.State())
	assert.Equal(t, "APPLE", s.Answer())
	assert.Equal(t, 5, s.Size())
	assert.Equal(t, DefaultGuessLimit, s.GuessLimit())
	assert.Empty(t, s.Guesses())
	assert.Empty(t, s.Input())
	assert.Equal(t, 7, s.DictionarySize())
	assert.True(t, s.Knows("sauce"))
	assert.False(t, s.Knows("toolong"))

	b := s.Board()
	require.Len(t, b, 6)
	for _, row := range b {
		assert.Equal(t, emptyRow(5), row)
	}
}

func TestNewSessionValidation(t *testing.T) {
	_, err := New("  ", testWords)
	assert.ErrorIs(t, err, ErrEmptyAnswer)

	s, err := New("apple", testWords, WithGuessLimit(0))
	require.NoError(t, err)
	assert.Equal(t, DefaultGuessLimit, s.GuessLimit())

	s, err = New("apple", testWords, WithGuessLimit(3))
	require.NoError(t, err)
	assert.Len(t, s.Board(), 3)

	s, err = New(" apple\n", testWords)
	require.NoError(t, err)
	assert.Equal(t, "APPLE", s.Answer())
	assert.Equal(t, 5, s.Size())
}

func TestSetInput(t *testing.T) {
	s := newTestSession(t)

	s.SetInput("a")
	assert.Equal(t, "A", s.Input())
	assert.Empty(t, s.Guesses())

	b := s.Board()
	assert.Equal(t, pendingRow(5, "A"), b[0])
	assert.False(t, b[0].Flipped)
	assert.Equal(t, emptyRow(5), b[1])

	s.SetInput("sauces and more")
	assert.Equal(t, "SAUCE", s.Input())
}

func TestAppendLetter(t *testing.T) {
	s := newTestSession(t)

	assert.Equal(t, "A", s.AppendLetter("a"))
	assert.Equal(t, "Z", s.AppendLetter("zebra"))
	assert.Equal(t, "AZ", s.Input())
	assert.Equal(t, pendingRow(5, "AZ"), s.Board()[0])

	assert.Equal(t, "", s.AppendLetter(""))
	assert.Equal(t, "AZ", s.Input())

	typeWord(s, "xyz")
	assert.Equal(t, "AZXYZ", s.Input())
	assert.Equal(t, "", s.AppendLetter("q"), "full input is a no-op")
	assert.Equal(t, "AZXYZ", s.Input())
}

func TestRemoveLetter(t *testing.T) {
	s := newTestSession(t)

	assert.Equal(t, "", s.RemoveLetter())
	assert.Equal(t, "", s.Input())

	typeWord(s, "ap")
	assert.Equal(t, "P", s.RemoveLetter())
	assert.Equal(t, "A", s.Input())
	assert.Equal(t, "A", s.RemoveLetter())
	assert.Equal(t, "", s.RemoveLetter())
	assert.Equal(t, emptyRow(5), s.Board()[0])
}

func TestAcceptRejections(t *testing.T) {
	s := newTestSession(t)

	typeWord(s, "app")
	assert.ErrorIs(t, s.AcceptCurrentInput(), ErrIncorrectLength)
	assert.Equal(t, "APP", s.Input())
	assert.Empty(t, s.Guesses())

	typeWord(s, "ly")
	assert.ErrorIs(t, s.AcceptCurrentInput(), ErrUnknownWord)
	assert.Equal(t, "APPLY", s.Input())
	assert.Empty(t, s.Guesses())
	assert.Equal(t, StatePlaying, s.State())
}

func TestAcceptValidGuess(t *testing.T) {
	s := newTestSession(t)

	typeWord(s, "alpha")
	require.NoError(t, s.AcceptCurrentInput())
	assert.Equal(t, []string{"ALPHA"}, s.Guesses())
	assert.Equal(t, "", s.Input())
	assert.Equal(t, StatePlaying, s.State())
	assert.Equal(t, 5, s.Remaining())

	b := s.Board()
	assert.True(t, b[0].Flipped)
	assert.Equal(t, []Tile{
		{Letter: "A", State: TileCorrect},
		{Letter: "L", State: TileNear},
		{Letter: "P", State: TileCorrect},
		{Letter: "H", State: TileAbsent},
		{Letter: "A", State: TileAbsent},
	}, b[0].Tiles)
	assert.False(t, b[1].Flipped)

	typeWord(s, "ti")
	b = s.Board()
	assert.True(t, b[0].Flipped)
	assert.Equal(t, pendingRow(5, "TI"), b[1])
}

func TestWin(t *testing.T) {
	s := newTestSession(t)

	typeWord(s, "tiger")
	require.NoError(t, s.AcceptCurrentInput())
	typeWord(s, "apple")
	require.NoError(t, s.AcceptCurrentInput())

	assert.Equal(t, StateWon, s.State())
	assert.True(t, s.Done())
	assert.Equal(t, []string{"TIGER", "APPLE"}, s.Guesses())

	// input is frozen after the game is decided
	assert.Equal(t, "", s.AppendLetter("a"))
	s.SetInput("apple")
	assert.Equal(t, "", s.Input())
	assert.ErrorIs(t, s.AcceptCurrentInput(), ErrIncorrectLength)
	assert.Len(t, s.Guesses(), 2)
	assert.Equal(t, StateWon, s.State())
}

func TestLose(t *testing.T) {
	s := newTestSession(t, WithGuessLimit(3))

	for _, w := range []string{"tiger", "limit", "delta"} {
		assert.Equal(t, StatePlaying, s.State())
		s.SetInput(w)
		require.NoError(t, s.AcceptCurrentInput())
	}
	assert.Equal(t, StateLost, s.State())
	assert.Equal(t, 0, s.Remaining())

	assert.ErrorIs(t, s.AcceptCurrentInput(), ErrOutOfGuesses)
	assert.Len(t, s.Guesses(), 3)
	assert.Equal(t, "", s.AppendLetter("a"))
	assert.Equal(t, StateLost, s.State())

	for _, row := range s.Board() {
		assert.True(t, row.Flipped)
	}
}

func TestWinOnLastGuess(t *testing.T) {
	s := newTestSession(t, WithGuessLimit(2))

	s.SetInput("tiger")
	require.NoError(t, s.AcceptCurrentInput())
	s.SetInput("apple")
	require.NoError(t, s.AcceptCurrentInput())
	assert.Equal(t, StateWon, s.State())
	assert.ErrorIs(t, s.AcceptCurrentInput(), ErrOutOfGuesses)
}
