package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/wordle-engine/internal/config"
	"github.com/robalobadob/wordle/apps/wordle-engine/internal/httpserver"
	"github.com/robalobadob/wordle/apps/wordle-engine/internal/results"
	"github.com/robalobadob/wordle/apps/wordle-engine/internal/store"
	"github.com/robalobadob/wordle/apps/wordle-engine/internal/words"
)

const gracefulShutdownTimeout = 10 * time.Second

func main() {
	if err := run(); err != nil {
		log.Fatal().Err(err).Msg("wordle-engine exited")
	}
}

// run owns every resource so deferred closes happen before main exits.
func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	zerolog.SetGlobalLevel(cfg.LogLevel)

	lists, err := words.LoadLists(cfg.AnswersFile, cfg.AllowedFile)
	if err != nil {
		return fmt.Errorf("load word lists: %w", err)
	}

	var ledger httpserver.Ledger
	if cfg.ResultsDB != "" {
		rs, err := results.Open(context.Background(), cfg.ResultsDB)
		if err != nil {
			return fmt.Errorf("open results db %s: %w", cfg.ResultsDB, err)
		}
		defer rs.Close()
		ledger = rs
	}

	srv := httpserver.New(store.NewMemoryStore(), lists, ledger, httpserver.Options{
		ClientOrigin: cfg.ClientOrigin,
		JWTSecret:    cfg.JWTSecret,
		TokenTTL:     cfg.TokenTTL,
		GuessLimit:   cfg.GuessLimit,
	})
	httpSrv := &http.Server{Addr: ":" + cfg.Port, Handler: srv.Router()}

	idleConnsClosed := make(chan struct{})
	go func() {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
		<-sig
		log.Info().Msg("got quit signal...")
		ctx, cancel := context.WithTimeout(context.Background(), gracefulShutdownTimeout)
		defer cancel()
		if err := httpSrv.Shutdown(ctx); err != nil {
			log.Error().Err(err).Msg("shutdown")
		}
		close(idleConnsClosed)
	}()

	answers, allowed := lists.Stats()
	log.Info().Str("port", cfg.Port).Int("answers", answers).Int("allowed", allowed).
		Bool("results", ledger != nil).Msg("starting wordle-engine")
	if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server exited: %w", err)
	}
	<-idleConnsClosed
	return nil
}
