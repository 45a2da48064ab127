// Command seed writes a fixture version into the database, creating the
// schema if needed. Re-running it replaces the preset sessions in place.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/mmynk/karaokebattle/internal/config"
	"github.com/mmynk/karaokebattle/internal/fixtures"
	"github.com/mmynk/karaokebattle/internal/storage/sqlite"
	"github.com/mmynk/karaokebattle/pkg/logging"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		slog.Error("Seed failed", "error", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to load .env: %w", err)
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	// Flags override the environment
	fs := flag.NewFlagSet("seed", flag.ContinueOnError)
	fs.StringVar(&cfg.DBPath, "db", cfg.DBPath, "SQLite database path")
	fs.IntVar(&cfg.FixtureVersion, "version", cfg.FixtureVersion, "Fixture version to load")
	list := fs.Bool("list", false, "List available fixture versions and exit")
	if err := fs.Parse(args); err != nil {
		return err
	}

	logging.Setup(cfg.LogLevel, cfg.LogFormat)

	if *list {
		for _, v := range fixtures.Versions() {
			fmt.Println(v)
		}
		return nil
	}

	set, err := fixtures.Load(cfg.FixtureVersion)
	if err != nil {
		return err
	}

	store, err := sqlite.New(cfg.DBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if err := fixtures.Seed(context.Background(), store, set); err != nil {
		return err
	}

	slog.Info("Database initialized", "database", cfg.DBPath, "version", set.Version)
	return nil
}
