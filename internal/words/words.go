// apps/wordle-engine/internal/words/words.go
//
// Provides the word sequences a game session is built from.
//
// Responsibilities:
//   - Read word lists (one word per line) from files or the embedded defaults.
//   - Maintain sets for quick lookups (answers only, answers∪allowed).
//
// Word Lists:
//   - "answers": words that may be supplied as the secret answer.
//   - "allowed": valid guesses (always includes answers).
//
// Loading behavior (LoadLists):
//   1. If both paths are set, answers come from the first and allowed guesses from the second.
//   2. If only the allowed path is set, that file is used for both lists.
//   3. If only the answers path is set, that file is used for both lists.
//   4. If neither is set, the embedded lists from the assets package are used.
//
// Constraints:
//   • Lines are trimmed and lowercased; blank lines and "#" comments are skipped.
//   • Words must consist of letters only. Length is not checked here; a
//     session keeps only the words matching its answer's length.

package words

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"

	"github.com/samber/lo"

	"github.com/robalobadob/wordle/apps/wordle-engine/assets"
)

// ErrNoAnswers is returned when the answers list ends up empty.
var ErrNoAnswers = errors.New("words: answers list is empty")

// Lists holds the loaded answer and allowed-guess lists.
type Lists struct {
	answers    []string
	allowed    []string
	answersSet map[string]struct{}
	allowedSet map[string]struct{}
}

// LoadLists reads the configured word files, falling back to the embedded defaults.
func LoadLists(answersPath, allowedPath string) (*Lists, error) {
	var ansList, allowList []string
	var err error

	switch {
	case answersPath != "" && allowedPath != "":
		if ansList, err = readWordFile(answersPath); err != nil {
			return nil, err
		}
		if allowList, err = readWordFile(allowedPath); err != nil {
			return nil, err
		}

	case allowedPath != "":
		if allowList, err = readWordFile(allowedPath); err != nil {
			return nil, err
		}
		ansList = allowList

	case answersPath != "":
		if ansList, err = readWordFile(answersPath); err != nil {
			return nil, err
		}
		allowList = ansList

	default:
		if ansList, err = readEmbedded(assets.Answers); err != nil {
			return nil, err
		}
		if allowList, err = readEmbedded(assets.Allowed); err != nil {
			return nil, err
		}
	}
	return NewLists(ansList, allowList)
}

// NewLists builds Lists from already-normalized word slices.
// Answers are always included in the allowed list.
func NewLists(answers, allowed []string) (*Lists, error) {
	if len(answers) == 0 {
		return nil, ErrNoAnswers
	}
	l := &Lists{
		answers: lo.Uniq(answers),
		allowed: lo.Uniq(append(append([]string{}, answers...), allowed...)),
	}
	l.answersSet = toSet(l.answers)
	l.allowedSet = toSet(l.allowed)
	return l, nil
}

// Load reads one word per line from r.
func Load(r io.Reader) ([]string, error) {
	var out []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		w := strings.ToLower(strings.TrimSpace(sc.Text()))
		if w == "" || strings.HasPrefix(w, "#") {
			continue
		}
		out = append(out, w)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return lo.Filter(out, func(w string, _ int) bool { return isAlpha(w) }), nil
}

// readWordFile loads one word per line from a file.
func readWordFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open word list %s: %w", path, err)
	}
	defer f.Close()
	out, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("read word list %s: %w", path, err)
	}
	return out, nil
}

func readEmbedded(open func() (io.ReadCloser, error)) ([]string, error) {
	f, err := open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Load(f)
}

// toSet converts a list of strings into a lookup set.
func toSet(list []string) map[string]struct{} {
	m := make(map[string]struct{}, len(list))
	for _, w := range list {
		m[w] = struct{}{}
	}
	return m
}

// isAlpha reports whether s is made of letters only.
func isAlpha(s string) bool {
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

// Answers returns the answer list (lowercase).
func (l *Lists) Answers() []string { return l.answers }

// Allowed returns every valid guess (lowercase); answers are included.
func (l *Lists) Allowed() []string { return l.allowed }

// IsAllowed reports whether w is a valid guess (answers ∪ allowed).
func (l *Lists) IsAllowed(w string) bool {
	_, ok := l.allowedSet[strings.ToLower(strings.TrimSpace(w))]
	return ok
}

// IsAnswer reports whether w is an answer word.
func (l *Lists) IsAnswer(w string) bool {
	_, ok := l.answersSet[strings.ToLower(strings.TrimSpace(w))]
	return ok
}

// Stats returns counts of loaded words: (answers, allowed).
func (l *Lists) Stats() (answersCount int, allowedCount int) {
	return len(l.answers), len(l.allowed)
}
