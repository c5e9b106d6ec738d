// Command jobtracker serves the job application tracker: the JSON API under
// /api, the HTML interface and the Prometheus endpoint.
//
// Configuration is read from CONFIG_PATH (or ./config.yaml) and the
// environment; a .env file in the working directory is loaded first.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/graffhyrum/jobAppTracker-sub000/internal/app"
)

func main() {
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil {
		log.Fatalf("jobtracker: %v", err)
	}
}
