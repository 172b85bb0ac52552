package app

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/daniilsolovey/sanctuary-blog/config"
	"github.com/daniilsolovey/sanctuary-blog/internal/blog"
	"github.com/daniilsolovey/sanctuary-blog/internal/rest"
	"github.com/daniilsolovey/sanctuary-blog/internal/rpc"
	"github.com/labstack/echo/v4"
)

const rpcPath = "/v1/rpc/"

type App struct {
	Manager *blog.Manager
	Logger  *slog.Logger
	Echo    *echo.Echo
	Config  config.Config
}

func New(cfg config.Config, manager *blog.Manager, logger *slog.Logger) *App {
	handler := rest.NewBlogHandler(manager, logger)

	e := handler.RegisterRoutes()
	e.Any(rpcPath, echo.WrapHandler(rpc.New(logger, manager)))

	return &App{
		Manager: manager,
		Logger:  logger,
		Echo:    e,
		Config:  cfg,
	}
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
	err := a.Echo.Shutdown(ctx)
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}
