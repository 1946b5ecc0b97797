// Package terminal draws board snapshots for a text terminal.
package terminal

import (
	"fmt"
	"io"
	"strings"

	"github.com/robalobadob/wordle/apps/wordle-engine/internal/game"
)

const reset = "\033[0m"

// ANSI background + foreground per tile state.
var palette = map[game.TileState]string{
	game.TileCorrect: "\033[42;30m",
	game.TileNear:    "\033[43;30m",
	game.TileAbsent:  "\033[100;37m",
	game.TilePending: "\033[1m",
}

// plainTile marks tiles without colour: [A] correct, (A) near, bare letter otherwise.
func plainTile(t game.Tile) string {
	l := t.Letter
	if l == "" {
		l = "_"
	}
	switch t.State {
	case game.TileCorrect:
		return "[" + l + "]"
	case game.TileNear:
		return "(" + l + ")"
	default:
		return " " + l + " "
	}
}

func colourTile(t game.Tile) string {
	l := t.Letter
	if l == "" {
		l = "·"
	}
	if c, ok := palette[t.State]; ok {
		return c + " " + l + " " + reset
	}
	return " " + l + " "
}

// Render writes one line per board row.
func Render(w io.Writer, b game.Board, colour bool) error {
	var sb strings.Builder
	for _, row := range b {
		for i, t := range row.Tiles {
			if i > 0 {
				sb.WriteByte(' ')
			}
			if colour {
				sb.WriteString(colourTile(t))
			} else {
				sb.WriteString(plainTile(t))
			}
		}
		sb.WriteByte('\n')
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

// StatusLine summarizes the session in one line.
func StatusLine(s *game.Session) string {
	switch s.State() {
	case game.StateWon:
		n := len(s.Guesses())
		return fmt.Sprintf("Solved in %d/%d. The word was %s.", n, s.GuessLimit(), s.Answer())
	case game.StateLost:
		return fmt.Sprintf("Out of guesses. The word was %s.", s.Answer())
	default:
		return fmt.Sprintf("%d guess(es) left.", s.Remaining())
	}
}
