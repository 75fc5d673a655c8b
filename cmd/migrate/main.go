// cmd/migrate/main.go applies the embedded Postgres migrations.
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/joho/godotenv"
	"github.com/umputun/go-flags"

	"go_workout_tracker/internal/repository"
)

var opts struct {
	DatabaseURL string `short:"d" long:"db" env:"DATABASE_URL" description:"postgres connection url"`
	Steps       int    `short:"n" long:"steps" default:"0" description:"number of migrations to roll back with down, 0 means all"`
	Args        struct {
		Command string `positional-arg-name:"command" description:"up, down or version"`
	} `positional-args:"yes"`
}

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	if err := godotenv.Load(); err != nil {
		logger.Info("No .env file found")
	}
	if _, err := flags.Parse(&opts); err != nil {
		os.Exit(2)
	}

	if opts.DatabaseURL == "" {
		logger.Error("DATABASE_URL or --db is required")
		os.Exit(2)
	}

	command := opts.Args.Command
	if command == "" {
		command = "up"
	}
	if err := run(command, logger); err != nil {
		logger.Error("Migration failed", slog.String("command", command), slog.Any("error", err))
		os.Exit(1)
	}
}

func run(command string, logger *slog.Logger) error {
	source, err := iofs.New(repository.MigrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("open embedded migrations: %w", err)
	}
	m, err := migrate.NewWithSourceInstance("iofs", source, opts.DatabaseURL)
	if err != nil {
		return fmt.Errorf("connect: %w", err)
	}
	defer m.Close()

	switch command {
	case "up":
		err = m.Up()
	case "down":
		if opts.Steps > 0 {
			err = m.Steps(-opts.Steps)
		} else {
			err = m.Down()
		}
	case "version":
		version, dirty, verr := m.Version()
		if errors.Is(verr, migrate.ErrNilVersion) {
			logger.Info("No migration applied yet")
			return nil
		}
		if verr != nil {
			return verr
		}
		logger.Info("Current migration version", slog.Uint64("version", uint64(version)), slog.Bool("dirty", dirty))
		return nil
	default:
		return fmt.Errorf("unknown command %q (want up, down or version)", command)
	}

	if errors.Is(err, migrate.ErrNoChange) {
		logger.Info("No change", slog.String("command", command))
		return nil
	}
	if err != nil {
		return err
	}
	logger.Info("Migration successful", slog.String("command", command))
	return nil
}
