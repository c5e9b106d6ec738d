// Command analytics prints the combined analytics report as JSON.
//
// Usage:
//
//	analytics [-start YYYY-MM-DD] [-end YYYY-MM-DD]
//
// Without a range the report spans every application date.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/graffhyrum/jobAppTracker-sub000/internal/analytics"
	"github.com/graffhyrum/jobAppTracker-sub000/internal/app"
	"github.com/graffhyrum/jobAppTracker-sub000/internal/config"
)

func main() {
	start := flag.String("start", "", "first application date to include (YYYY-MM-DD)")
	end := flag.String("end", "", "last application date to include (YYYY-MM-DD)")
	flag.Parse()

	rng, err := analytics.ParseDateRange(*start, *end)
	if err != nil {
		log.Fatalf("invalid range: %v", err)
	}

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	store, err := app.OpenStore(ctx, cfg.Storage, logger)
	if err != nil {
		log.Fatalf("open storage: %v", err)
	}
	defer store.Close()

	report, err := app.NewServices(store, logger).Analytics.ComputeAll(ctx, rng)
	if err != nil {
		log.Fatalf("compute analytics: %v", err)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(report); err != nil {
		log.Fatalf("encode: %v", err)
	}
}
