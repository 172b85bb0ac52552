package db

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/jackc/pgx"
	"github.com/jackc/pgx/stdlib"
	"github.com/pressly/goose/v3"
)

// RunMigrations applies the goose migrations in dir to the database at url.
func RunMigrations(ctx context.Context, url, dir string) error {
	config, err := pgx.ParseConnectionString(url)
	if err != nil {
		return fmt.Errorf("parse connection string: %w", err)
	}

	sqldb := stdlib.OpenDB(config)
	defer sqldb.Close()

	if err := sqldb.PingContext(ctx); err != nil {
		return fmt.Errorf("ping db: %w", err)
	}

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("set goose dialect: %w", err)
	}

	files, err := filepath.Glob(filepath.Join(dir, "*.sql"))
	if err != nil {
		return fmt.Errorf("glob migrations: %w", err)
	}
	if len(files) == 0 {
		return fmt.Errorf("no migration files found in %s", dir)
	}

	if err := goose.UpContext(ctx, sqldb, dir); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}

	return nil
}
