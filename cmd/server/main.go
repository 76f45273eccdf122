package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/sentinela/gateway/internal/ai"
	"github.com/sentinela/gateway/internal/backend"
	"github.com/sentinela/gateway/internal/config"
	"github.com/sentinela/gateway/internal/geocode"
	httpapi "github.com/sentinela/gateway/internal/http"
	"github.com/sentinela/gateway/internal/service"
	"github.com/sentinela/gateway/internal/session"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	zerolog.TimeFieldFormat = time.RFC3339
	level, _ := zerolog.ParseLevel(cfg.LogLevel)
	logger := log.Level(level).With().Str("service", "sentinela-gateway").Logger()

	client := backend.New(cfg.BackendURL, cfg.RequestTimeout, cfg.UpstreamRPS)

	var enricher ai.Enricher
	if cfg.MockAnalysis() {
		enricher = ai.MockEnricher{}
		logger.Info().Msg("using mock transcription analysis")
	} else {
		enricher = ai.BackendEnricher{Backend: client}
	}

	notes := service.NewNotes()
	sessions := session.NewTracker(cfg.SessionIdleTimeout)
	sessions.OnExpire = notes.Forget
	dash := &service.Dashboard{
		Backend:          client,
		Enricher:         enricher,
		Locator:          geocode.TableLocator{},
		Notes:            notes,
		Logger:           logger,
		MergeKm:          cfg.MarkerMergeKm,
		Parallelism:      cfg.DrillDownParallelism,
		PlaceholderPhoto: cfg.PlaceholderPhoto,
	}

	router := httpapi.Router(cfg, httpapi.Deps{
		Backend:   client,
		Dashboard: dash,
		Notes:     notes,
		Sessions:  sessions,
		Logger:    logger,
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	ctx, stop := context.WithCancel(context.Background())
	defer stop()
	go sweepSessions(ctx, sessions, logger)

	go func() {
		logger.Info().Str("port", cfg.Port).Str("backend", cfg.BackendURL).Msg("server started")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	stop()

	ctxShutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(ctxShutdown)
	logger.Info().Msg("server stopped")
}

func sweepSessions(ctx context.Context, sessions *session.Tracker, logger zerolog.Logger) {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			if n := sessions.Sweep(now); n > 0 {
				logger.Debug().Int("sessions", n).Msg("expired idle sessions")
			}
		}
	}
}
