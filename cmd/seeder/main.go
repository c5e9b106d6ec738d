// Command seeder loads job applications, boards and pipeline labels from a
// YAML fixture into the configured store. Records already present are
// skipped, so it is safe to run more than once.
//
// Flags:
//
//	--fixture        path to the fixture file (overrides SEEDER_FIXTURE_PATH)
//	--phase          comma-separated list of phases to run (default: all)
//	--dry-run        parse the fixture without writing
//	--seeder-config  path to seeder YAML config file
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/joho/godotenv"

	"github.com/graffhyrum/jobAppTracker-sub000/internal/app"
	"github.com/graffhyrum/jobAppTracker-sub000/internal/app/seeder"
	"github.com/graffhyrum/jobAppTracker-sub000/internal/config"
)

func main() {
	fixtureFlag := flag.String("fixture", "", "path to the fixture file")
	phaseFlag := flag.String("phase", "", "comma-separated phases to run (default: all)")
	dryRunFlag := flag.Bool("dry-run", false, "parse the fixture without writing")
	seederConfigFlag := flag.String("seeder-config", "", "path to seeder YAML config file")
	flag.Parse()

	_ = godotenv.Load()

	appCfg, err := config.Load()
	if err != nil {
		log.Fatalf("load app config: %v", err)
	}
	logger := app.NewLogger(appCfg.Log)

	if err := run(logger, appCfg, *fixtureFlag, *phaseFlag, *dryRunFlag, *seederConfigFlag); err != nil {
		logger.Error("seeder failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(logger *slog.Logger, appCfg *config.Config, fixture, phaseList string, dryRun bool, seederConfig string) error {
	cfg, err := seeder.LoadConfig(seederConfig)
	if err != nil {
		return err
	}
	if fixture != "" {
		cfg.FixturePath = fixture
	}
	if dryRun {
		cfg.DryRun = true
	}
	if cfg.FixturePath == "" {
		return fmt.Errorf("no fixture: pass --fixture or set SEEDER_FIXTURE_PATH")
	}

	fx, err := seeder.LoadFixture(cfg.FixturePath)
	if err != nil {
		return err
	}

	var phases []string
	if phaseList != "" {
		phases = strings.Split(phaseList, ",")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	store, err := app.OpenStore(ctx, appCfg.Storage, logger)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer store.Close()

	svc := app.NewServices(store, logger)
	pipeline := seeder.NewPipeline(logger, seeder.Services{
		Pipeline:     svc.Pipeline,
		Boards:       svc.JobBoards,
		Applications: svc.Applications,
		Contacts:     svc.Contacts,
		Interviews:   svc.Interviews,
	}, *cfg, fx)

	if err := pipeline.Run(ctx, phases); err != nil {
		return err
	}
	printResults(pipeline.Results())

	if pipeline.HasErrors() {
		return fmt.Errorf("pipeline completed with errors")
	}
	return nil
}

func printResults(results map[string]seeder.PhaseResult) {
	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "PHASE\tINSERTED\tSKIPPED\tERRORS\tDURATION")
	for _, phase := range seeder.Phases() {
		r, ok := results[phase]
		if !ok {
			continue
		}
		fmt.Fprintf(tw, "%s\t%d\t%d\t%d\t%s\n", phase, r.Inserted, r.Skipped, r.Errors, r.Duration.Round(time.Millisecond))
	}
	tw.Flush()
}
