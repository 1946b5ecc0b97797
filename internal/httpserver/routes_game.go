// apps/wordle-engine/internal/httpserver/routes_game.go
//
// Game routes. Each maps onto one session operation:
//   - POST   /game/new            → game.New (answer supplied by the client)
//   - GET    /game/{id}           → current view
//   - PUT    /game/{id}/input     → SetInput
//   - POST   /game/{id}/letters   → AppendLetter
//   - DELETE /game/{id}/letters   → RemoveLetter
//   - POST   /game/{id}/accept    → AcceptCurrentInput
//   - DELETE /game/{id}           → discard the session
//
// All /game/{id} routes require the bearer token returned by /game/new.

package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/wordle-engine/internal/game"
	"github.com/robalobadob/wordle/apps/wordle-engine/internal/store"
)

func (s *Server) mountGame(r chi.Router) {
	r.Post("/game/new", s.handleNewGame)
	r.Route("/game/{id}", func(r chi.Router) {
		r.Use(s.requireGameToken)
		r.Get("/", s.handleView)
		r.Delete("/", s.handleDiscard)
		r.Put("/input", s.handleSetInput)
		r.Post("/letters", s.handleAppend)
		r.Delete("/letters", s.handleRemove)
		r.Post("/accept", s.handleAccept)
	})
}

// gameView is the JSON shape of a session. Answer is only revealed once the game is over.
type gameView struct {
	GameID     string     `json:"gameId"`
	State      game.State `json:"state"`
	Size       int        `json:"size"`
	GuessLimit int        `json:"guessLimit"`
	Remaining  int        `json:"remaining"`
	Input      string     `json:"input"`
	Guesses    []string   `json:"guesses"`
	Board      game.Board `json:"board"`
	Answer     string     `json:"answer,omitempty"`
}

func viewOf(id string, g *game.Session) gameView {
	v := gameView{
		GameID:     id,
		State:      g.State(),
		Size:       g.Size(),
		GuessLimit: g.GuessLimit(),
		Remaining:  g.Remaining(),
		Input:      g.Input(),
		Guesses:    g.Guesses(),
		Board:      g.Board(),
	}
	if g.Done() {
		v.Answer = g.Answer()
	}
	return v
}

// errorCode maps acceptance errors to stable machine-readable codes.
func errorCode(err error) string {
	switch {
	case errors.Is(err, game.ErrOutOfGuesses):
		return "out_of_guesses"
	case errors.Is(err, game.ErrIncorrectLength):
		return "incorrect_length"
	case errors.Is(err, game.ErrUnknownWord):
		return "unknown_word"
	default:
		return "rejected"
	}
}

// ------------------------------- new ---------------------------------------

type newGameReq struct {
	Answer     string `json:"answer"`
	GuessLimit int    `json:"guessLimit"`
}

type newGameRes struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
	gameView
}

// maxGuessLimit caps client-chosen limits; the board holds one row per guess.
const maxGuessLimit = 20

// handleNewGame registers a session for the supplied answer and returns its token.
func (s *Server) handleNewGame(w http.ResponseWriter, r *http.Request) {
	var req newGameReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}
	answer := strings.TrimSpace(req.Answer)
	if answer == "" {
		writeError(w, http.StatusBadRequest, "answer_required")
		return
	}
	if !s.lists.IsAllowed(answer) {
		writeError(w, http.StatusBadRequest, "unknown_answer")
		return
	}
	if req.GuessLimit < 0 || req.GuessLimit > maxGuessLimit {
		writeError(w, http.StatusBadRequest, "bad_guess_limit")
		return
	}
	limit := req.GuessLimit
	if limit == 0 {
		limit = s.guessLimit
	}

	g, err := game.New(answer, s.lists.Allowed(), game.WithGuessLimit(limit))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	e := store.NewEntry(g)
	if s.ledger != nil {
		g.Subscribe(s.ledger.Recorder(context.WithoutCancel(r.Context()), e.ID, g))
	}
	g.Subscribe(logEvents(e.ID))

	if err := s.store.Save(r.Context(), e); err != nil {
		log.Error().Err(err).Msg("save game")
		writeError(w, http.StatusInternalServerError, "save_failed")
		return
	}
	tok, exp, err := s.tokens.sign(e.ID)
	if err != nil {
		log.Error().Err(err).Msg("sign token")
		writeError(w, http.StatusInternalServerError, "sign_failed")
		return
	}

	log.Info().Str("gameId", e.ID).Int("size", g.Size()).Int("guessLimit", g.GuessLimit()).Msg("game created")
	writeJSON(w, http.StatusCreated, newGameRes{Token: tok, ExpiresAt: exp, gameView: viewOf(e.ID, g)})
}

// logEvents traces session events at debug level.
func logEvents(id string) game.Listener {
	return func(e game.Event) {
		switch e.Kind {
		case game.EventState:
			log.Info().Str("gameId", id).Str("state", string(e.State)).Msg("game finished")
		case game.EventError:
			log.Debug().Str("gameId", id).Err(e.Err).Msg("guess rejected")
		}
	}
}

// ------------------------------ per game -----------------------------------

// withSession loads the entry for the token's game and runs fn under its lock.
func (s *Server) withSession(w http.ResponseWriter, r *http.Request, fn func(id string, g *game.Session)) {
	id := gameIDFrom(r.Context())
	e, err := s.store.Get(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusNotFound, "not_found")
		return
	}
	_ = e.Do(func(g *game.Session) error {
		fn(id, g)
		return nil
	})
}

func (s *Server) handleView(w http.ResponseWriter, r *http.Request) {
	s.withSession(w, r, func(id string, g *game.Session) {
		writeJSON(w, http.StatusOK, viewOf(id, g))
	})
}

func (s *Server) handleDiscard(w http.ResponseWriter, r *http.Request) {
	if err := s.store.Delete(r.Context(), gameIDFrom(r.Context())); err != nil {
		writeError(w, http.StatusNotFound, "not_found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

type inputReq struct {
	Text string `json:"text"`
}

func (s *Server) handleSetInput(w http.ResponseWriter, r *http.Request) {
	var req inputReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}
	s.withSession(w, r, func(id string, g *game.Session) {
		g.SetInput(req.Text)
		writeJSON(w, http.StatusOK, viewOf(id, g))
	})
}

type letterReq struct {
	Letter string `json:"letter"`
}

type letterRes struct {
	Letter string   `json:"letter"` // empty when the input did not change
	Game   gameView `json:"game"`
}

func (s *Server) handleAppend(w http.ResponseWriter, r *http.Request) {
	var req letterReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}
	s.withSession(w, r, func(id string, g *game.Session) {
		c := g.AppendLetter(req.Letter)
		writeJSON(w, http.StatusOK, letterRes{Letter: c, Game: viewOf(id, g)})
	})
}

func (s *Server) handleRemove(w http.ResponseWriter, r *http.Request) {
	s.withSession(w, r, func(id string, g *game.Session) {
		c := g.RemoveLetter()
		writeJSON(w, http.StatusOK, letterRes{Letter: c, Game: viewOf(id, g)})
	})
}

type acceptErrRes struct {
	Error string   `json:"error"`
	Code  string   `json:"code"`
	Game  gameView `json:"game"`
}

func (s *Server) handleAccept(w http.ResponseWriter, r *http.Request) {
	s.withSession(w, r, func(id string, g *game.Session) {
		if err := g.AcceptCurrentInput(); err != nil {
			writeJSON(w, http.StatusUnprocessableEntity, acceptErrRes{
				Error: err.Error(),
				Code:  errorCode(err),
				Game:  viewOf(id, g),
			})
			return
		}
		writeJSON(w, http.StatusOK, viewOf(id, g))
	})
}
