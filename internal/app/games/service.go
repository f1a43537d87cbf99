// Package games runs the game ingestion stage for one season. The season is
// fetched one date window at a time, with a single deduplication set spanning
// every window so a game sitting on a partition edge lands exactly once.
package games

import (
	"context"
	"fmt"
	"log/slog"

	"nba-ingest/internal/dedupe"
	domaingames "nba-ingest/internal/domain/games"
	"nba-ingest/internal/logging"
	"nba-ingest/internal/metrics"
	"nba-ingest/internal/providers"
	"nba-ingest/internal/season"
	"nba-ingest/internal/stagefile"
	"nba-ingest/internal/store/postgres"
)

const stageName = "games"

// Loader persists game rows.
type Loader interface {
	UpsertGames(ctx context.Context, rows []domaingames.Row) (postgres.Result, error)
}

// Options selects which halves of the stage run.
type Options struct {
	// SkipFetch loads rows from the existing stage file instead of the API.
	SkipFetch bool
	// SkipLoad stops after staging without touching the database.
	SkipLoad bool
}

// Summary reports what one stage run did.
type Summary struct {
	Fetched    int
	Duplicates int
	Staged     int
	Upserted   int
	RowErrors  int
	StagePath  string
}

// Service coordinates the games stage.
type Service struct {
	provider providers.GameProvider
	stage    *stagefile.Store
	loader   Loader
	logger   *slog.Logger
	metrics  *metrics.Recorder
}

// NewService constructs a Service. Logger and metrics may be nil.
func NewService(provider providers.GameProvider, stage *stagefile.Store, loader Loader, logger *slog.Logger, rec *metrics.Recorder) *Service {
	return &Service{provider: provider, stage: stage, loader: loader, logger: logger, metrics: rec}
}

// Run executes the stage for the given season.
func (s *Service) Run(ctx context.Context, seasonYear int, opts Options) (Summary, error) {
	var sum Summary
	var rows []domaingames.Row

	if opts.SkipFetch {
		staged, err := s.stage.ReadGames(seasonYear)
		if err != nil {
			return sum, fmt.Errorf("games stage: %w", err)
		}
		rows = staged
		sum.Staged = len(rows)
		sum.StagePath = s.stage.GamesPath(seasonYear)
	} else {
		fetched, err := s.fetchSeason(ctx, seasonYear, &rows)
		if err != nil {
			return sum, err
		}
		sum.Fetched = fetched
		sum.Duplicates = fetched - len(rows)
		s.metrics.RecordDuplicates(stageName, sum.Duplicates)

		path, err := s.stage.WriteGames(seasonYear, rows)
		if err != nil {
			return sum, fmt.Errorf("games stage: %w", err)
		}
		sum.Staged = len(rows)
		sum.StagePath = path
		logging.Info(s.logger, "stage file written",
			slog.String(logging.FieldStage, stageName),
			slog.Int(logging.FieldSeason, seasonYear),
			slog.String(logging.FieldPath, path),
			slog.Int(logging.FieldCount, len(rows)),
		)
	}

	if opts.SkipLoad {
		return sum, nil
	}

	res, err := s.loader.UpsertGames(ctx, rows)
	sum.Upserted = res.Upserted
	sum.RowErrors = len(res.RowErrors)
	if err != nil {
		return sum, fmt.Errorf("games stage: load: %w", err)
	}
	return sum, nil
}

// fetchSeason walks every date window of the season, appending first-seen
// rows to out. It returns the raw fetched count including duplicates.
func (s *Service) fetchSeason(ctx context.Context, seasonYear int, out *[]domaingames.Row) (int, error) {
	set := dedupe.NewSet[int]()
	fetched := 0

	for _, window := range season.Partition(seasonYear) {
		batch, err := s.provider.FetchGames(ctx, seasonYear, window)
		if err != nil {
			return fetched, fmt.Errorf("games stage: fetch %s..%s: %w", window.Start, window.End, err)
		}
		fetched += len(batch)
		*out = append(*out, dedupe.Filter(set, batch, domaingames.Row.Key)...)
	}
	return fetched, nil
}
