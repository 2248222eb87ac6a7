// Command seed copies the built-in demo data into the configured remote or
// postgres backend. Collections that already hold records are left alone
// unless --force is given.
//
// Flags:
//
//	--phase    comma-separated list of phases to run (default: all)
//	--dry-run  count records without writing
//	--force    seed collections that are not empty
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/apper-apps/feedbackhub-driver-pixel/internal/adapter/memory"
	"github.com/apper-apps/feedbackhub-driver-pixel/internal/app"
	"github.com/apper-apps/feedbackhub-driver-pixel/internal/app/seeder"
	"github.com/apper-apps/feedbackhub-driver-pixel/internal/config"
)

func main() {
	phaseFlag := flag.String("phase", "", "comma-separated phases to run (default: all)")
	dryRunFlag := flag.Bool("dry-run", false, "count records without writing")
	forceFlag := flag.Bool("force", false, "seed collections that are not empty")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	if !cfg.Store.UsesRecordStore() {
		logger.Error("the mock backend is seeded in memory; set STORE_BACKEND to remote or postgres")
		os.Exit(1)
	}

	var phases []string
	if *phaseFlag != "" {
		phases = strings.Split(*phaseFlag, ",")
		for i := range phases {
			phases[i] = strings.TrimSpace(phases[i])
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	repos, err := app.OpenRepos(ctx, cfg, logger)
	if err != nil {
		logger.Error("open backend", slog.String("backend", cfg.Store.Backend), slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer repos.Close()

	data, err := memory.LoadSeed()
	if err != nil {
		logger.Error("load seed data", slog.String("error", err.Error()))
		os.Exit(1)
	}

	pipeline := seeder.NewPipeline(logger, seeder.Targets{
		Projects:   repos.Projects,
		Ideas:      repos.Ideas,
		Reviews:    repos.Reviews,
		Changelog:  repos.Changelog,
		Activities: repos.Activities,
	}, data, seeder.Config{DryRun: *dryRunFlag, Force: *forceFlag})

	if err := pipeline.Run(ctx, phases); err != nil {
		logger.Error("pipeline failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if pipeline.HasErrors() {
		logger.Warn("pipeline completed with errors")
		os.Exit(1)
	}

	logger.Info("pipeline completed successfully")
}
