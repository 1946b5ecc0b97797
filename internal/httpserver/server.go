// apps/wordle-engine/internal/httpserver/server.go
//
// HTTP adapter over the rules engine.
// Responsibilities:
//   - Router + middleware (JSON, CORS, timeouts, panic recovery, request IDs).
//   - Public endpoints: "/", "/health", "/debug/words", "/stats".
//   - Game endpoints: POST /game/new, then token-gated /game/{id}/* routes that
//     map one-to-one onto session operations.
//
// Notes:
//   - The client supplies the answer; the server never picks one.
//   - Every session access goes through store.Entry.Do, so a session only
//     ever sees one caller at a time.
//   - CORS is origin-aware and credentials-enabled.

package httpserver

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/wordle-engine/internal/game"
	"github.com/robalobadob/wordle/apps/wordle-engine/internal/results"
	"github.com/robalobadob/wordle/apps/wordle-engine/internal/store"
	"github.com/robalobadob/wordle/apps/wordle-engine/internal/words"
)

// Ledger records finished games and reports statistics. It may be nil.
type Ledger interface {
	Recorder(ctx context.Context, gameID string, s *game.Session) game.Listener
	Summary(ctx context.Context) (results.Summary, error)
	Recent(ctx context.Context, limit int) ([]results.Result, error)
}

// Options configures a Server.
type Options struct {
	ClientOrigin string
	JWTSecret    string
	TokenTTL     time.Duration
	GuessLimit   int
}

// Server bundles router, live sessions, word lists and the optional ledger.
type Server struct {
	r          *chi.Mux
	store      store.Store
	lists      *words.Lists
	ledger     Ledger
	tokens     tokens
	guessLimit int
}

// New constructs a Server, installs middleware, and registers routes.
func New(st store.Store, lists *words.Lists, ledger Ledger, opts Options) *Server {
	if opts.TokenTTL <= 0 {
		opts.TokenTTL = 24 * time.Hour
	}
	if opts.GuessLimit <= 0 {
		opts.GuessLimit = game.DefaultGuessLimit
	}
	s := &Server{
		r:          chi.NewRouter(),
		store:      st,
		lists:      lists,
		ledger:     ledger,
		tokens:     tokens{secret: []byte(opts.JWTSecret), ttl: opts.TokenTTL},
		guessLimit: opts.GuessLimit,
	}

	// --- middleware ---
	s.r.Use(chimw.RequestID)
	s.r.Use(chimw.RealIP)
	s.r.Use(requestLogger)
	s.r.Use(chimw.Recoverer)
	s.r.Use(chimw.Timeout(10 * time.Second))
	s.r.Use(jsonContentType)
	s.r.Use(cors(opts.ClientOrigin))

	// --- diagnostics ---
	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"service":   "wordle-engine",
			"endpoints": []string{"/health", "/stats", "POST /game/new", "/game/{id}"},
		})
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"ok": true, "games": s.store.Len()})
	})
	s.r.Get("/debug/words", func(w http.ResponseWriter, r *http.Request) {
		a, g := s.lists.Stats()
		writeJSON(w, http.StatusOK, map[string]int{"answers": a, "allowed": g})
	})
	s.r.Get("/stats", s.handleStats)

	s.mountGame(s.r)

	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "not_found", "path": r.URL.Path})
	})
	return s
}

// Router exposes the internal router; it is the server's http.Handler.
func (s *Server) Router() chi.Router { return s.r }

// ----------------------------- middleware ----------------------------------

// jsonContentType sets a default JSON Content-Type header on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

// cors enables credentialed CORS for a single origin.
func cors(origin string) func(http.Handler) http.Handler {
	if origin == "" {
		origin = "http://localhost:5173"
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Vary", "Origin")
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Credentials", "true")
			w.Header().Set("Access-Control-Allow-Methods", "GET,POST,PUT,DELETE,OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// requestLogger logs one line per request through zerolog.
func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		log.Debug().
			Str("requestId", chimw.GetReqID(r.Context())).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Dur("elapsed", time.Since(start)).
			Msg("request")
	})
}

// ------------------------------- stats -------------------------------------

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	if s.ledger == nil {
		writeError(w, http.StatusNotFound, "stats_disabled")
		return
	}
	sum, err := s.ledger.Summary(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("stats summary")
		writeError(w, http.StatusInternalServerError, "db_error")
		return
	}
	recent, err := s.ledger.Recent(r.Context(), 20)
	if err != nil {
		log.Error().Err(err).Msg("stats recent")
		writeError(w, http.StatusInternalServerError, "db_error")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"summary": sum, "recent": recent})
}

// ------------------------------- util --------------------------------------

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Warn().Err(err).Msg("encode response")
	}
}

func writeError(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, map[string]string{"error": msg})
}
