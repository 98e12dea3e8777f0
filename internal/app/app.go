package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/daniilsolovey/discussion-board/config"
	"github.com/daniilsolovey/discussion-board/internal/board"
	"github.com/daniilsolovey/discussion-board/internal/db"
	"github.com/daniilsolovey/discussion-board/internal/rest"
	"github.com/daniilsolovey/discussion-board/internal/rpc"
	"github.com/getsentry/sentry-go"
	sentryecho "github.com/getsentry/sentry-go/echo"
	"github.com/go-pg/pg/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

const (
	rpcPath            = "/rpc/"
	sentryFlushTimeout = 2 * time.Second
)

type App struct {
	DB     *db.Repository
	Logger *slog.Logger
	Echo   *echo.Echo
	Config config.Config
}

func New(cfg config.Config, dbConnect *pg.DB, logger *slog.Logger) (*App, error) {
	if cfg.App.LogQueries {
		dbConnect.AddQueryHook(db.NewQueryHook(logger))
	}

	repo := db.New(dbConnect)
	manager := board.NewManager(repo)

	handler := rest.NewBoardHandler(manager, repo, logger)
	e := handler.RegisterRoutes()
	e.Use(middleware.Recover())

	if cfg.Sentry.DSN != "" {
		err := sentry.Init(sentry.ClientOptions{
			Dsn:         cfg.Sentry.DSN,
			Environment: cfg.Sentry.Environment,
		})
		if err != nil {
			return nil, fmt.Errorf("init sentry: %w", err)
		}
		e.Use(sentryecho.New(sentryecho.Options{Repanic: true}))
	}

	rpcServer := rpc.New(logger, manager)
	e.Any(rpcPath, echo.WrapHandler(rpcServer))

	return &App{
		DB:     repo,
		Logger: logger,
		Echo:   e,
		Config: cfg,
	}, nil
}

func (a *App) Run(ctx context.Context) error {
	a.Logger.InfoContext(ctx, "service starting", "addr", a.Config.Addr())

	err := a.Echo.Start(a.Config.Addr())
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

func (a *App) GracefulShutdown(ctx context.Context) error {
	if a.Config.Sentry.DSN != "" {
		sentry.Flush(sentryFlushTimeout)
	}

	err := a.Echo.Shutdown(ctx)
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}
