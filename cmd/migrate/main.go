package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/chemtai/portfolio/internal/config"
	"github.com/chemtai/portfolio/internal/logging"
	"github.com/chemtai/portfolio/internal/repository"
)

func usage() {
	fmt.Fprintln(os.Stderr, `Usage: migrate [command]

Commands:
  (default)   apply pending migrations
  status      show current schema version and pending migrations
  down N      roll back the last N migrations`)
	os.Exit(1)
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	logging.Setup(cfg.App.LogLevel, cfg.IsDevelopment())

	cmd := ""
	if len(os.Args) > 1 {
		cmd = os.Args[1]
	}

	switch cmd {
	case "":
		if err := repository.Migrate(cfg.Database.URL); err != nil {
			logging.Fatal("migrate failed", "error", err)
		}
		fmt.Println("migrations applied")
	case "status":
		st, err := repository.Status(cfg.Database.URL)
		if err != nil {
			logging.Fatal("status failed", "error", err)
		}
		fmt.Printf("version: %d\ndirty: %v\npending: %d\n", st.Version, st.Dirty, st.Pending)
	case "down":
		if len(os.Args) < 3 {
			usage()
		}
		n, err := strconv.Atoi(os.Args[2])
		if err != nil || n < 1 {
			usage()
		}
		if err := repository.MigrateDown(cfg.Database.URL, n); err != nil {
			logging.Fatal("rollback failed", "error", err)
		}
		fmt.Printf("rolled back %d migration(s)\n", n)
	default:
		usage()
	}
}
