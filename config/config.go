package config

import (
	"fmt"
	"time"

	"github.com/go-pg/pg/v10"
)

const (
	SourceSeed     = "seed"
	SourcePostgres = "postgres"
)

type Config struct {
	Database Database
	App      App
	Blog     Blog
}

type Database struct {
	URL             string
	MaxConns        int
	MaxConnLifetime string
	LogQueries      bool
}

type App struct {
	Host    string
	Port    int
	LogFile string
}

type Blog struct {
	// Source is where the store is populated from: seed or postgres.
	Source        string
	SeedFile      string
	PageSize      int
	Migrate       bool
	MigrationsDir string
}

// Default returns the values used for keys missing from the TOML file.
func Default() Config {
	return Config{
		Database: Database{
			MaxConns:        5,
			MaxConnLifetime: "300s",
		},
		App: App{
			Host: "0.0.0.0",
			Port: 3000,
		},
		Blog: Blog{
			Source:        SourceSeed,
			SeedFile:      "data/seed.toml",
			PageSize:      10,
			MigrationsDir: "docs/patches",
		},
	}
}

func (c Config) Validate() error {
	switch c.Blog.Source {
	case SourceSeed:
		if c.Blog.SeedFile == "" {
			return fmt.Errorf("blog.seedFile is required for source %q", SourceSeed)
		}
	case SourcePostgres:
		if c.Database.URL == "" {
			return fmt.Errorf("database.url is required for source %q", SourcePostgres)
		}
	default:
		return fmt.Errorf("unknown blog.source %q", c.Blog.Source)
	}

	if c.App.Port <= 0 {
		return fmt.Errorf("invalid app.port %d", c.App.Port)
	}

	return nil
}

// PGOptions builds go-pg options from the database section.
func (c Config) PGOptions() (*pg.Options, error) {
	opt, err := pg.ParseURL(c.Database.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database URL: %w", err)
	}

	opt.MaxRetries = 3
	if c.Database.MaxConns > 0 {
		opt.PoolSize = c.Database.MaxConns
	}

	if c.Database.MaxConnLifetime != "" {
		lifetime, err := time.ParseDuration(c.Database.MaxConnLifetime)
		if err != nil {
			return nil, fmt.Errorf("failed to parse database.maxConnLifetime: %w", err)
		}
		opt.MaxConnAge = lifetime
	}

	return opt, nil
}

func (c Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.App.Host, c.App.Port)
}
