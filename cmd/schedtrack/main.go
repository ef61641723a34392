package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/dfields/schedtrack/internal/cli"
	"github.com/dfields/schedtrack/internal/config"
	"github.com/dfields/schedtrack/internal/db"
	"github.com/dfields/schedtrack/internal/importer"
	"github.com/dfields/schedtrack/internal/remote"
	"github.com/dfields/schedtrack/internal/repository"
	"github.com/dfields/schedtrack/internal/server"
	"github.com/dfields/schedtrack/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := newLogger(cfg.Log.Level)
	parser := importer.NewParser(cfg.Import.Sheet, cfg.Import.HeaderRow)

	var observer service.UseCaseObserver = service.NoopUseCaseObserver{}
	if cfg.Log.Level == "debug" {
		observer = service.NewLogUseCaseObserver(os.Stderr)
	}

	app := &cli.App{
		ListenAddr: cfg.Server.Addr,
		IsInteractive: func() bool {
			return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
		},
	}

	if cfg.Server.RemoteURL != "" {
		// Records live on the shared server; display settings stay in the
		// local database, they are per-workstation.
		store := remote.NewClient(cfg.Server.RemoteURL)
		database, err := db.OpenDB(cfg.DB.Path)
		if err != nil {
			return fmt.Errorf("opening database: %w", err)
		}
		defer database.Close()
		settings := repository.NewSQLiteSettingsRepo(database)

		app.Imports = service.NewImportService(store, nil, parser, observer)
		app.Projects = service.NewProjectService(store, settings, observer)
	} else {
		database, err := db.OpenDB(cfg.DB.Path)
		if err != nil {
			return fmt.Errorf("opening database: %w", err)
		}
		defer database.Close()

		store := repository.NewSQLiteProjectStore(database)
		settings := repository.NewSQLiteSettingsRepo(database)
		uow := db.NewSQLiteUnitOfWork(database)

		app.Imports = service.NewImportService(store, uow, parser, observer)
		app.Projects = service.NewProjectService(store, settings, observer)
		app.ServerHandler = func() http.Handler {
			return server.New(server.NewProjectHandler(store), logger).Handler()
		}
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}

func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
}
