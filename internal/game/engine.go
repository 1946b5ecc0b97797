// apps/wordle-engine/internal/game/engine.go
//
// Game session for a single Wordle board.
// Responsibilities:
//   - Build the dictionary for the answer's word size.
//   - Track the input buffer (append/remove/set) and freeze it once the game ends.
//   - Validate and commit guesses (limit, length, dictionary).
//   - Track state transitions: playing → won/lost.
//   - Derive the board snapshot by evaluating each committed guess.
//
// Notes:
//   - A Session is not safe for concurrent use; callers serialize access.
//   - Listeners registered with Subscribe are notified synchronously.
package game

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Session owns all mutable state of one game.
type Session struct {
	answer     string
	size       int
	guessLimit int
	dictionary map[string]struct{}

	input   string
	guesses []string
	state   State

	subs    []subscription
	nextSub int
}

// Option configures a Session at construction time.
type Option func(*Session)

// WithGuessLimit sets the maximum number of guesses. Values below 1 keep the default.
func WithGuessLimit(n int) Option {
	return func(s *Session) {
		if n > 0 {
			s.guessLimit = n
		}
	}
}

// New constructs a session for answer. Candidate words are trimmed and
// uppercased; only those with the answer's length enter the dictionary.
func New(answer string, words []string, opts ...Option) (*Session, error) {
	ans := strings.ToUpper(strings.TrimSpace(answer))
	if ans == "" {
		return nil, ErrEmptyAnswer
	}
	s := &Session{
		answer:     ans,
		size:       utf8.RuneCountInString(ans),
		guessLimit: DefaultGuessLimit,
		guesses:    []string{},
		state:      StatePlaying,
	}
	for _, opt := range opts {
		opt(s)
	}

	s.dictionary = make(map[string]struct{}, len(words))
	for _, w := range words {
		w = strings.ToUpper(strings.TrimSpace(w))
		if utf8.RuneCountInString(w) == s.size {
			s.dictionary[w] = struct{}{}
		}
	}
	return s, nil
}

func (s *Session) Answer() string { return s.answer }
func (s *Session) Size() int { return s.size }
func (s *Session) GuessLimit() int { return s.guessLimit }
func (s *Session) State() State { return s.state }
func (s *Session) Input() string { return s.input }
func (s *Session) Done() bool { return s.state.Terminal() }
func (s *Session) Remaining() int { return s.guessLimit - len(s.guesses) }
func (s *Session) DictionarySize() int { return len(s.dictionary) }

// Guesses returns a copy of the committed guesses, oldest first.
func (s *Session) Guesses() []string {
	return append([]string(nil), s.guesses...)
}

// Knows reports whether word is in the session dictionary.
func (s *Session) Knows(word string) bool {
	_, ok := s.dictionary[strings.ToUpper(strings.TrimSpace(word))]
	return ok
}

// inputFrozen is true once no further guess can be committed.
func (s *Session) inputFrozen() bool {
	return s.state != StatePlaying || len(s.guesses) >= s.guessLimit
}

// SetInput replaces the input buffer with the first Size() letters of text,
// uppercased. Ignored once the game is over.
func (s *Session) SetInput(text string) {
	if s.inputFrozen() {
		return
	}
	s.setInput(truncate(strings.ToUpper(text), s.size))
}

// setInput stores v and, if it differs from the previous buffer, publishes
// the new input and the re-derived board.
func (s *Session) setInput(v string) {
	if v == s.input {
		return
	}
	s.input = v
	if len(s.subs) == 0 {
		return
	}
	s.publish(Event{Kind: EventInput, Input: v})
	s.publishBoard()
}

// AppendLetter adds the first character of ch to the input.
// Returns the character added, or "" if the input did not change.
func (s *Session) AppendLetter(ch string) string {
	if utf8.RuneCountInString(s.input) >= s.size {
		return ""
	}
	if ch == "" {
		return ""
	}
	if s.inputFrozen() {
		return ""
	}
	r, _ := utf8.DecodeRuneInString(ch)
	c := string(unicode.ToUpper(r))
	s.setInput(s.input + c)
	return c
}

// RemoveLetter drops the last character of the input.
// Returns the character removed, or "" if the input was already empty.
func (s *Session) RemoveLetter() string {
	if s.input == "" || s.inputFrozen() {
		return ""
	}
	r, n := utf8.DecodeLastRuneInString(s.input)
	s.setInput(s.input[:len(s.input)-n])
	return string(r)
}

// AcceptCurrentInput commits the input buffer as a guess.
//
// Validation order:
//   - ErrOutOfGuesses if the guess limit has been reached.
//   - ErrIncorrectLength if the input is not exactly Size() letters.
//   - ErrUnknownWord if the input is not in the dictionary.
//
// On success the guess is appended, the input cleared, and the state moves
// to won (guess equals answer) or lost (limit reached); nil is returned.
// Rejections leave every piece of state untouched.
func (s *Session) AcceptCurrentInput() error {
	word := s.input

	if len(s.guesses) >= s.guessLimit {
		return s.reject(ErrOutOfGuesses)
	}
	if utf8.RuneCountInString(word) != s.size {
		return s.reject(ErrIncorrectLength)
	}
	if _, ok := s.dictionary[word]; !ok {
		return s.reject(ErrUnknownWord)
	}

	s.guesses = append(s.guesses, word)
	s.setInput("")

	switch {
	case word == s.answer:
		s.setState(StateWon)
	case len(s.guesses) == s.guessLimit:
		s.setState(StateLost)
	}
	return nil
}

func (s *Session) reject(err error) error {
	s.publish(Event{Kind: EventError, Err: err})
	return err
}

func (s *Session) setState(st State) {
	if st == s.state {
		return
	}
	s.state = st
	s.publish(Event{Kind: EventState, State: st})
}

// Board derives the snapshot: committed guesses (flipped and evaluated),
// then the pending input row if any, then empty rows up to the guess limit.
func (s *Session) Board() Board {
	b := make(Board, 0, s.guessLimit)

	for _, g := range s.guesses {
		states, _ := Evaluate(s.answer, g)
		tiles := make([]Tile, 0, s.size)
		for i, r := range []rune(g) {
			tiles = append(tiles, Tile{Letter: string(r), State: states[i]})
		}
		b = append(b, Row{Flipped: true, Tiles: tiles})
	}

	if len(b) < s.guessLimit && s.input != "" {
		letters := []rune(s.input)
		tiles := make([]Tile, s.size)
		for i := range tiles {
			if i < len(letters) {
				tiles[i] = Tile{Letter: string(letters[i]), State: TilePending}
			} else {
				tiles[i] = Tile{State: TileEmpty}
			}
		}
		b = append(b, Row{Tiles: tiles})
	}

	for len(b) < s.guessLimit {
		b = append(b, emptyRow(s.size))
	}
	return b
}

func emptyRow(size int) Row {
	tiles := make([]Tile, size)
	for i := range tiles {
		tiles[i] = Tile{State: TileEmpty}
	}
	return Row{Tiles: tiles}
}

// truncate returns at most n runes of s.
func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}
