// Command migrate manages the SQLite schema.
//
// Usage:
//
//	migrate [up|down|status]
//
// The database path comes from the regular application configuration
// (storage.sqlite_path / STORAGE_SQLITE_PATH). The default command is up.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"text/tabwriter"
	"time"

	"github.com/joho/godotenv"

	"github.com/graffhyrum/jobAppTracker-sub000/internal/adapter/sqlite"
	"github.com/graffhyrum/jobAppTracker-sub000/internal/app"
	"github.com/graffhyrum/jobAppTracker-sub000/internal/config"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: migrate [up|down|status]")
	}
	flag.Parse()

	cmd := "up"
	if flag.NArg() > 0 {
		cmd = flag.Arg(0)
	}

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	db, err := sqlite.Open(ctx, cfg.Storage)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	defer db.Close()

	switch cmd {
	case "up":
		err = sqlite.Migrate(ctx, db, logger)
	case "down":
		err = sqlite.MigrateDown(ctx, db, logger)
	case "status":
		var states []sqlite.MigrationState
		states, err = sqlite.MigrationStatus(ctx, db)
		if err == nil {
			printStatus(states)
		}
	default:
		flag.Usage()
		os.Exit(2)
	}
	if err != nil {
		log.Fatalf("migrate %s: %v", cmd, err)
	}
}

func printStatus(states []sqlite.MigrationState) {
	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "VERSION\tFILE\tAPPLIED")
	for _, s := range states {
		applied := "pending"
		if s.Applied {
			applied = s.AppliedAt.Format(time.RFC3339)
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\n", s.Version, s.File, applied)
	}
	tw.Flush()
}
