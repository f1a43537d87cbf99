// Command ingest fetches NBA reference data from the balldontlie API, stages
// it as CSV files, and loads it into Postgres. Each run is idempotent:
// loading the same data twice leaves the database in the same state.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	appgames "nba-ingest/internal/app/games"
	appplayers "nba-ingest/internal/app/players"
	appteams "nba-ingest/internal/app/teams"
	"nba-ingest/internal/config"
	"nba-ingest/internal/logging"
	"nba-ingest/internal/metrics"
	"nba-ingest/internal/pipeline"
	"nba-ingest/internal/providers"
	"nba-ingest/internal/providers/balldontlie"
	"nba-ingest/internal/ratelimit"
	"nba-ingest/internal/stagefile"
	"nba-ingest/internal/store/postgres"
)

func main() {
	os.Exit(run())
}

func run() int {
	// A .env file is a convenience for local runs; absence is not an error.
	_ = godotenv.Load()

	stageFlag := flag.String("stage", "all", "stages to run: teams, players, games or all")
	seasonFlag := flag.Int("season", 0, "season start year for the games stage (overrides SEASON)")
	skipFetch := flag.Bool("skip-fetch", false, "load existing stage files without fetching")
	skipLoad := flag.Bool("skip-load", false, "fetch and stage without loading to the database")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "ingest: %v\n", err)
		return 1
	}

	logger := logging.NewLogger(logging.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})

	selection, err := pipeline.ParseSelection(*stageFlag)
	if err != nil {
		logging.Error(logger, "invalid stage selection", err)
		return 1
	}

	seasonYear := cfg.Season
	if *seasonFlag > 0 {
		seasonYear = *seasonFlag
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	recorder := metrics.NewRecorder()

	client, err := balldontlie.NewClient(balldontlie.Config{
		BaseURL:          cfg.BaseURL,
		APIKey:           cfg.APIKey,
		Limiter:          ratelimit.New(cfg.FetchDelay, cfg.RateLimitCooldown),
		TeamsPerPage:     cfg.TeamsPerPage,
		PlayersPerPage:   cfg.PlayersPerPage,
		GamesPerPage:     cfg.GamesPerPage,
		MaxPlayers:       cfg.MaxPlayers,
		RateLimitRetries: cfg.RateLimitRetries,
		FetchDelay:       cfg.FetchDelay,
		GamesFetchDelay:  cfg.GamesFetchDelay,
		Logger:           logger,
		Metrics:          recorder,
	})
	if err != nil {
		logging.Error(logger, "provider setup failed", err)
		return 1
	}
	provider := providers.NewLoggingProvider(client, logger)

	var store *postgres.Store
	if !*skipLoad {
		if err := cfg.RequireDatabaseURL(); err != nil {
			logging.Error(logger, "store setup failed", err)
			return 1
		}
		store, err = postgres.Open(ctx, cfg.DatabaseURL, postgres.Options{
			BatchSize: cfg.BatchSize,
			Logger:    logger,
			Metrics:   recorder,
		})
		if err != nil {
			logging.Error(logger, "store setup failed", err)
			return 1
		}
		defer store.Close()

		if err := store.EnsureSchema(ctx); err != nil {
			logging.Error(logger, "store setup failed", err)
			return 1
		}
	}

	stage := stagefile.NewStore(cfg.StageDir)
	p := pipeline.New(
		appteams.NewService(provider, stage, store, logger, recorder),
		appplayers.NewService(provider, stage, store, logger, recorder),
		appgames.NewService(provider, stage, store, logger, recorder),
		logger,
	)

	res, err := p.Run(ctx, pipeline.Options{
		Stages:    selection,
		Season:    seasonYear,
		SkipFetch: *skipFetch,
		SkipLoad:  *skipLoad,
	})
	reportStages(logger, res)

	switch {
	case errors.Is(err, context.Canceled):
		logging.Warn(logger, "run interrupted")
		return 1
	case err != nil:
		logging.Error(logger, "run failed", err)
		return 1
	case res.RowErrors > 0:
		logging.Warn(logger, "run completed with rejected rows",
			slog.Int(logging.FieldCount, res.RowErrors))
		return 1
	}

	logging.Info(logger, "run complete")
	return 0
}

func reportStages(logger *slog.Logger, res pipeline.Result) {
	for _, s := range res.Stages {
		logging.Info(logger, "stage complete",
			slog.String(logging.FieldStage, s.Name),
			slog.Int("fetched", s.Fetched),
			slog.Int("duplicates", s.Duplicates),
			slog.Int("staged", s.Staged),
			slog.Int("upserted", s.Upserted),
			slog.Int("row_errors", s.RowErrors),
		)
	}
}
