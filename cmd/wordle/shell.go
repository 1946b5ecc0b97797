package main

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/robalobadob/wordle/apps/wordle-engine/internal/game"
	"github.com/robalobadob/wordle/apps/wordle-engine/internal/terminal"
)

func usage(w io.Writer) {
	io.WriteString(w, "commands:\n")
	io.WriteString(w, "<word>        - type a word and submit it\n")
	io.WriteString(w, ":type <chars> - add letters to the input without submitting\n")
	io.WriteString(w, ":back         - remove the last letter\n")
	io.WriteString(w, ":enter        - submit the current input\n")
	io.WriteString(w, ":board        - show the board\n")
	io.WriteString(w, ":help         - show this help\n")
	io.WriteString(w, ":quit         - leave\n")
}

// shell feeds typed lines into one session and reacts to its events.
type shell struct {
	out     io.Writer
	session *game.Session
	colour  bool
	flipped int
}

func newShell(out io.Writer, s *game.Session, colour bool) *shell {
	sh := &shell{out: out, session: s, colour: colour}
	s.Subscribe(sh.onEvent)
	return sh
}

// onEvent redraws the board whenever a guess is committed and reports
// rejections and the final outcome.
func (sh *shell) onEvent(e game.Event) {
	switch e.Kind {
	case game.EventBoard:
		n := 0
		for _, row := range e.Board {
			if row.Flipped {
				n++
			}
		}
		if n > sh.flipped {
			sh.flipped = n
			sh.render(e.Board)
		}
	case game.EventError:
		fmt.Fprintf(sh.out, "%s\n", e.Err)
	case game.EventState:
		fmt.Fprintln(sh.out, terminal.StatusLine(sh.session))
	}
}

func (sh *shell) render(b game.Board) {
	if err := terminal.Render(sh.out, b, sh.colour); err != nil {
		fmt.Fprintf(sh.out, "render: %v\n", err)
	}
}

// exec runs one input line. It returns true when the shell should exit.
func (sh *shell) exec(line string) bool {
	line = strings.TrimSpace(line)
	if line == "" {
		return false
	}
	if !strings.HasPrefix(line, ":") {
		if utf8.RuneCountInString(line) != sh.session.Size() {
			fmt.Fprintf(sh.out, "%s\n", game.ErrIncorrectLength)
			return false
		}
		sh.session.SetInput(line)
		sh.submit()
		return sh.session.Done()
	}

	cmd, arg, _ := strings.Cut(line[1:], " ")
	switch cmd {
	case "q", "quit", "exit":
		return true
	case "type", "t":
		for _, r := range strings.TrimSpace(arg) {
			if sh.session.AppendLetter(string(r)) == "" {
				break
			}
		}
		sh.echoInput()
	case "back", "b":
		sh.session.RemoveLetter()
		sh.echoInput()
	case "enter", "e":
		sh.submit()
		return sh.session.Done()
	case "board":
		sh.render(sh.session.Board())
		fmt.Fprintln(sh.out, terminal.StatusLine(sh.session))
	case "help", "h":
		usage(sh.out)
	default:
		fmt.Fprintf(sh.out, "unknown command %q, try :help\n", cmd)
	}
	return false
}

func (sh *shell) submit() {
	if err := sh.session.AcceptCurrentInput(); err == nil && !sh.session.Done() {
		fmt.Fprintln(sh.out, terminal.StatusLine(sh.session))
	}
}

func (sh *shell) echoInput() {
	fmt.Fprintf(sh.out, "input: %s\n", sh.session.Input())
}
