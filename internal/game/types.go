// apps/wordle-engine/internal/game/types.go
//
// Core type definitions for the Wordle rules engine.
// Defines:
//   - TileState: per-letter classification of a board tile.
//   - State: session outcome (playing/won/lost).
//   - Tile, Row, Board: the derived, renderable board snapshot.
//   - Acceptance errors returned when a guess cannot be committed.

package game

import "errors"

// TileState represents the classification of a single board tile.
// Possible values:
//   - "empty":   no letter present.
//   - "guess":   letter typed but not yet committed.
//   - "absent":  letter does not occur in the answer (or its count is used up).
//   - "near":    letter occurs in the answer at another position.
//   - "correct": letter is in the correct position.
type TileState string

const (
	TileEmpty   TileState = "empty"
	TilePending TileState = "guess"
	TileAbsent  TileState = "absent"
	TileNear    TileState = "near"
	TileCorrect TileState = "correct"
)

// State is the coarse outcome of a session. Won and Lost are terminal.
type State string

const (
	StatePlaying State = "playing"
	StateWon     State = "won"
	StateLost    State = "lost"
)

// Terminal reports whether no further guesses can change the outcome.
func (s State) Terminal() bool { return s == StateWon || s == StateLost }

// Tile is one letter position within a board row.
type Tile struct {
	Letter string    `json:"letter"`
	State  TileState `json:"state"`
}

// Row is one line of the board. Flipped is true only for committed guesses.
type Row struct {
	Flipped bool   `json:"flipped"`
	Tiles   []Tile `json:"tiles"`
}

// Board is a snapshot of every row, one per allowed guess.
type Board []Row

// Acceptance errors. A nil error from AcceptCurrentInput means the guess was committed.
var (
	ErrOutOfGuesses    = errors.New("out of guesses")
	ErrIncorrectLength = errors.New("incorrect size")
	ErrUnknownWord     = errors.New("not in word list")
)

var (
	// ErrLengthMismatch is returned by Evaluate when answer and guess differ in length.
	ErrLengthMismatch = errors.New("answer and guess lengths differ")
	// ErrEmptyAnswer is returned by New when no answer is supplied.
	ErrEmptyAnswer = errors.New("answer must not be empty")
)

// DefaultGuessLimit is the number of rows on a classic board.
const DefaultGuessLimit = 6
