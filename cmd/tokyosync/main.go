package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mattn/go-isatty"
	"github.com/vincenthsieh/tokyosync/internal/cli"
	"github.com/vincenthsieh/tokyosync/internal/db"
	"github.com/vincenthsieh/tokyosync/internal/repository"
	"github.com/vincenthsieh/tokyosync/internal/route"
	"github.com/vincenthsieh/tokyosync/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Optional .env for local overrides; missing file is fine.
	_ = godotenv.Load()

	// Determine DB path: env var or default ~/.tokyosync/tokyosync.db
	dbPath := os.Getenv("TOKYOSYNC_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".tokyosync", "tokyosync.db")
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	app := &cli.App{
		Itinerary: service.NewItineraryService(repository.NewSQLiteSnapshotRepo(database)),
	}

	// Detect interactive terminal for the bare TUI entrypoint.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	// Route suggestions stay nil unless explicitly enabled.
	routeCfg := route.LoadConfig()
	if routeCfg.Enabled {
		var observer route.Observer = route.NoopObserver{}
		if routeCfg.LogCalls {
			observer = route.NewLogObserver(os.Stderr)
		}
		app.Routes = route.NewOllamaPlanner(routeCfg, observer)
	}

	return cli.NewRootCmd(app).Execute()
}
