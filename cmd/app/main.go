package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/go-pg/pg/v10"
	"github.com/namsral/flag"

	"github.com/daniilsolovey/sanctuary-blog/config"
	_ "github.com/daniilsolovey/sanctuary-blog/docs"
	"github.com/daniilsolovey/sanctuary-blog/internal/app"
	"github.com/daniilsolovey/sanctuary-blog/internal/blog"
	"github.com/daniilsolovey/sanctuary-blog/internal/db"
)

var (
	flConfig = flag.String("config", "config.toml", "path to TOML configuration file")
	flDebug  = flag.Bool("debug", false, "enable debug mode")
	cfg      = config.Default()
	lg       *slog.Logger
)

// @title Sanctuary Blog API
// @version 1.0
// @description Posts, search, related posts and statistics for the farm sanctuary blog
// @host localhost:3000
// @BasePath /

func main() {
	flag.Parse()

	lg = app.NewLogger(*flDebug, "")

	_, err := toml.DecodeFile(*flConfig, &cfg)
	if err != nil {
		exitOnError(err)
	}
	exitOnError(cfg.Validate())

	if cfg.App.LogFile != "" {
		lg = app.NewLogger(*flDebug, cfg.App.LogFile)
	}

	ctx := context.Background()

	content, err := loadContent(ctx)
	exitOnError(err)

	store, err := blog.NewStore(content)
	exitOnError(err)

	lg.Info("content loaded",
		"source", cfg.Blog.Source,
		"posts", len(content.Posts),
		"categories", len(content.Categories),
		"tags", len(content.Tags),
		"authors", len(content.Authors),
	)

	manager := blog.NewManager(store).WithPageSize(cfg.Blog.PageSize)
	service := app.New(cfg, manager, lg)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		err := service.Run(ctx)
		if err != nil {
			lg.Error("service run failed", "error", err)
			quit <- syscall.SIGTERM
		}
	}()

	<-quit
	lg.Info("service stopping")

	shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	err = service.GracefulShutdown(shutdownCtx)
	if err != nil {
		lg.Error("service graceful shutdown failed", "error", err)
	}
}

// loadContent reads the blog from the configured source. The database is
// only used at start; the store keeps everything in memory afterwards.
func loadContent(ctx context.Context) (blog.Content, error) {
	if cfg.Blog.Source == config.SourceSeed {
		return blog.LoadSeed(cfg.Blog.SeedFile)
	}

	if cfg.Blog.Migrate {
		if err := db.RunMigrations(ctx, cfg.Database.URL, cfg.Blog.MigrationsDir); err != nil {
			return blog.Content{}, fmt.Errorf("migrate: %w", err)
		}
	}

	opt, err := cfg.PGOptions()
	if err != nil {
		return blog.Content{}, err
	}

	dbc := pg.Connect(opt)
	if cfg.Database.LogQueries {
		dbc.AddQueryHook(db.NewQueryHook(lg))
	}

	repo := db.New(dbc)
	defer func() {
		if err := repo.Close(); err != nil {
			lg.Error("failed to close database connection", "error", err)
		}
	}()

	if err := repo.Ping(ctx); err != nil {
		return blog.Content{}, fmt.Errorf("ping db: %w", err)
	}

	content, err := blog.LoadContent(ctx, repo)
	if err != nil {
		return blog.Content{}, fmt.Errorf("load content: %w", err)
	}

	return content, nil
}

func exitOnError(err error) {
	if err != nil {
		lg.Error("app init failed", "error", err)
		os.Exit(1)
	}
}
