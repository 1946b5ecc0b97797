// Command wordle plays one game in the terminal against a supplied answer.
//
//	wordle -answer crane [-words list.txt] [-limit 6] [-db results.db] [-color auto|always|never]
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"
	"github.com/google/uuid"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/wordle-engine/internal/game"
	"github.com/robalobadob/wordle/apps/wordle-engine/internal/results"
	"github.com/robalobadob/wordle/apps/wordle-engine/internal/terminal"
	"github.com/robalobadob/wordle/apps/wordle-engine/internal/words"
)

var (
	answerFlag = flag.String("answer", "", "the secret word (required)")
	wordsFlag  = flag.String("words", "", "word list file, one word per line (embedded list if empty)")
	limitFlag  = flag.Int("limit", game.DefaultGuessLimit, "number of guesses allowed")
	dbFlag     = flag.String("db", "", "sqlite file to record the result in")
	colorFlag  = flag.String("color", "auto", "auto, always or never")
	levelFlag  = flag.String("log-level", "warn", "log level")
)

func filterInput(r rune) (rune, bool) {
	switch r {
	// block CtrlZ feature
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}

func main() {
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	if lvl, err := zerolog.ParseLevel(*levelFlag); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	if *answerFlag == "" {
		fmt.Fprintln(os.Stderr, "-answer is required")
		flag.Usage()
		os.Exit(2)
	}

	lists, err := words.LoadLists("", *wordsFlag)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load word list")
	}
	if !lists.IsAllowed(*answerFlag) {
		log.Fatal().Str("answer", *answerFlag).Msg("answer is not in the word list")
	}

	session, err := game.New(*answerFlag, lists.Allowed(), game.WithGuessLimit(*limitFlag))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to start game")
	}
	if err := play(session); err != nil {
		log.Fatal().Err(err).Msg("wordle exited")
	}
}

// play runs the input loop; deferred closes complete before it returns.
func play(session *game.Session) error {
	if *dbFlag != "" {
		ledger, err := results.Open(context.Background(), *dbFlag)
		if err != nil {
			return fmt.Errorf("open results db: %w", err)
		}
		defer ledger.Close()
		session.Subscribe(ledger.Recorder(context.Background(), uuid.NewString(), session))
	}

	l, err := readline.NewEx(&readline.Config{
		Prompt:          "\033[32mwordle>\033[0m ",
		HistoryFile:     filepath.Join(os.TempDir(), "wordle_history.tmp"),
		EOFPrompt:       "exit",
		InterruptPrompt: "^C",

		HistorySearchFold:   true,
		FuncFilterInputRune: filterInput,
	})
	if err != nil {
		return fmt.Errorf("start readline: %w", err)
	}
	defer l.Close()

	sh := newShell(l.Stdout(), session, useColour(*colorFlag))
	fmt.Fprintf(l.Stdout(), "Guess the %d-letter word. %s\n", session.Size(), terminal.StatusLine(session))
	usage(l.Stdout())

	for {
		line, err := l.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			if len(line) == 0 {
				break
			}
			continue
		} else if errors.Is(err, io.EOF) {
			break
		}
		if sh.exec(line) {
			break
		}
	}
	return nil
}

func useColour(mode string) bool {
	switch strings.ToLower(mode) {
	case "always":
		return true
	case "never":
		return false
	}
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
