package main

import (
	"context"
	"errors"
	"hash/maphash"
	"log/slog"
	"math/rand/v2"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lmittmann/tint"
	"golang.org/x/sync/errgroup"

	"github.com/vancomm/minesweeper-agent/internal/config"
	"github.com/vancomm/minesweeper-agent/internal/database"
	"github.com/vancomm/minesweeper-agent/internal/middleware"
	"github.com/vancomm/minesweeper-agent/internal/repository"
	"github.com/vancomm/minesweeper-agent/internal/sweep"
)

func createRand() *rand.Rand {
	return rand.New(rand.NewPCG(
		new(maphash.Hash).Sum64(), new(maphash.Hash).Sum64(),
	))
}

func main() {
	var logger *slog.Logger
	if config.Development() {
		logger = slog.New(
			tint.NewHandler(os.Stderr, &tint.Options{Level: slog.LevelDebug}),
		)
	} else {
		logger = slog.New(slog.NewJSONHandler(os.Stderr, nil))
	}
	sweep.Log = logger

	ctx, cancel := signal.NotifyContext(
		context.Background(), os.Interrupt, syscall.SIGTERM,
	)
	defer cancel()

	db, err := database.ConnectAndMigrate(ctx)
	if err != nil {
		logger.Error("unable to connect and migrate db", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	jwt, err := config.NewJWT()
	if err != nil {
		logger.Error("unable to load jwt config", "error", err)
		os.Exit(1)
	}

	cookies, err := config.NewCookies(jwt)
	if err != nil {
		logger.Error("unable to load cookies config", "error", err)
		os.Exit(1)
	}

	app := &application{
		logger:  logger,
		repo:    repository.New(db),
		cookies: cookies,
		jwt:     jwt,
		ws:      config.NewWebSocket(),
		rnd:     createRand(),
	}

	addr := config.Addr()
	server := &http.Server{
		Addr: addr,
		Handler: middleware.Wrap(
			app.ServeMux(),
			middleware.Auth(cookies),
			middleware.Cors(),
			middleware.Logging(logger),
		),
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info(
			"server listening",
			slog.String("addr", addr),
			slog.String("base path", config.BasePath()),
		)
		err := server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(
			context.Background(), 30*time.Second,
		)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Error("server error", "error", err)
		os.Exit(1)
	}
}
