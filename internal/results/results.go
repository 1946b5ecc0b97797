// Package results keeps a ledger of finished games for statistics.
// Only outcomes are stored; live sessions are never persisted or resumed.
package results

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/robalobadob/wordle/apps/wordle-engine/internal/game"
)

// Result is the outcome of one finished game.
type Result struct {
	GameID     string     `json:"gameId"`
	Answer     string     `json:"answer"`
	State      game.State `json:"state"`
	Guesses    int        `json:"guesses"`
	GuessLimit int        `json:"guessLimit"`
	FinishedAt time.Time  `json:"finishedAt"`
}

// Summary aggregates every recorded result.
type Summary struct {
	Played        int         `json:"played"`
	Wins          int         `json:"wins"`
	CurrentStreak int         `json:"currentStreak"`
	MaxStreak     int         `json:"maxStreak"`
	Distribution  map[int]int `json:"distribution"` // guesses used → wins
}

// timeLayout is fixed-width so finished_at sorts lexically.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// Store is a sqlite-backed results ledger.
type Store struct {
	db *sql.DB
}

// Open opens the database at dsn and applies migrations.
func Open(ctx context.Context, dsn string) (*Store, error) {
	db, err := openDB(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("open results db: %w", err)
	}
	if err := migrate(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate results db: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error { return s.db.Close() }

// Record inserts r. A game already recorded is ignored.
func (s *Store) Record(ctx context.Context, r Result) error {
	if !r.State.Terminal() {
		return fmt.Errorf("record %s: game still %s", r.GameID, r.State)
	}
	if r.FinishedAt.IsZero() {
		r.FinishedAt = time.Now()
	}
	_, err := s.db.ExecContext(ctx, `
        INSERT OR IGNORE INTO results
            (game_id, answer, state, guesses, guess_limit, finished_at)
        VALUES (?, ?, ?, ?, ?, ?)`,
		r.GameID, r.Answer, string(r.State), r.Guesses, r.GuessLimit,
		r.FinishedAt.UTC().Format(timeLayout),
	)
	return err
}

// Recent returns the latest results, newest first. Default limit is 20.
func (s *Store) Recent(ctx context.Context, limit int) ([]Result, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx, `
        SELECT game_id, answer, state, guesses, guess_limit, finished_at
        FROM results
        ORDER BY finished_at DESC, rowid DESC
        LIMIT ?`, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Result, 0, limit)
	for rows.Next() {
		r, err := scanResult(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// Summary walks the ledger oldest first and computes totals and streaks.
func (s *Store) Summary(ctx context.Context) (Summary, error) {
	sum := Summary{Distribution: map[int]int{}}

	rows, err := s.db.QueryContext(ctx, `
        SELECT state, guesses
        FROM results
        ORDER BY finished_at ASC, rowid ASC`)
	if err != nil {
		return sum, err
	}
	defer rows.Close()

	var winGuesses []int
	for rows.Next() {
		var state string
		var guesses int
		if err := rows.Scan(&state, &guesses); err != nil {
			return sum, err
		}
		sum.Played++
		if game.State(state) == game.StateWon {
			sum.Wins++
			sum.CurrentStreak++
			sum.MaxStreak = max(sum.MaxStreak, sum.CurrentStreak)
			winGuesses = append(winGuesses, guesses)
		} else {
			sum.CurrentStreak = 0
		}
	}
	if err := rows.Err(); err != nil {
		return sum, err
	}
	sum.Distribution = lo.CountValues(winGuesses)
	return sum, nil
}

func scanResult(rows *sql.Rows) (Result, error) {
	var r Result
	var state, finished string
	if err := rows.Scan(&r.GameID, &r.Answer, &state, &r.Guesses, &r.GuessLimit, &finished); err != nil {
		return r, err
	}
	r.State = game.State(state)
	r.FinishedAt, _ = time.Parse(timeLayout, finished)
	return r, nil
}

// Recorder returns a listener that records the game once it reaches a
// terminal state. Failures are logged; they never affect the session.
func (s *Store) Recorder(ctx context.Context, gameID string, sess *game.Session) game.Listener {
	return func(e game.Event) {
		if e.Kind != game.EventState || !e.State.Terminal() {
			return
		}
		r := Result{
			GameID:     gameID,
			Answer:     sess.Answer(),
			State:      e.State,
			Guesses:    len(sess.Guesses()),
			GuessLimit: sess.GuessLimit(),
			FinishedAt: time.Now(),
		}
		if err := s.Record(ctx, r); err != nil {
			log.Warn().Err(err).Str("gameId", gameID).Msg("record result")
			return
		}
		log.Debug().Str("gameId", gameID).Str("state", string(e.State)).Int("guesses", r.Guesses).Msg("result recorded")
	}
}
