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

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/JacksenSE/AutomatedGameTiktok/internal/config"
	"github.com/JacksenSE/AutomatedGameTiktok/internal/live"
	"github.com/JacksenSE/AutomatedGameTiktok/internal/server"
	"github.com/JacksenSE/AutomatedGameTiktok/internal/sim"
	"github.com/JacksenSE/AutomatedGameTiktok/internal/units"
)

func main() {
	cfg := config.Load()

	logger, err := buildLogger(cfg.Env)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to build logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()
	log := logger.Sugar()

	catalog, err := units.Load(cfg.CatalogPath)
	if err != nil {
		log.Fatalw("failed to load unit catalog", "path", cfg.CatalogPath, "error", err)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	hub := server.NewHub(logger)
	srv := server.NewServer(hub, logger)

	var lobbyClient *live.Client
	arena := sim.New(sim.Options{
		Catalog: catalog,
		Tuning:  sim.DefaultTuning(),
		Logger:  logger,
		Seed:    seed,
		DeclareWinner: func(name string) {
			if lobbyClient != nil {
				lobbyClient.DeclareWinner(name)
			}
		},
	})
	lobbyClient = live.New(cfg.LobbyURL, arena, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	httpServer := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      srv.Router(cfg.AllowedOrigins),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return hub.Run(ctx)
	})

	g.Go(func() error {
		return arena.Run(ctx, cfg.Frame, srv.Publish)
	})

	g.Go(func() error {
		return lobbyClient.Run(ctx)
	})

	g.Go(func() error {
		log.Infow("server starting", "port", cfg.Port, "env", cfg.Env, "lobby", cfg.LobbyURL)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		log.Infow("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return httpServer.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		log.Fatalw("server exited", "error", err)
	}
	log.Infow("server stopped")
}

func buildLogger(env string) (*zap.Logger, error) {
	if env == "production" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
