// Package players runs the player ingestion stage. Players load after teams
// because their team reference points at the teams table.
package players

import (
	"context"
	"fmt"
	"log/slog"

	"nba-ingest/internal/dedupe"
	"nba-ingest/internal/domain/players"
	"nba-ingest/internal/logging"
	"nba-ingest/internal/metrics"
	"nba-ingest/internal/providers"
	"nba-ingest/internal/stagefile"
	"nba-ingest/internal/store/postgres"
)

const stageName = "players"

// Loader persists player rows.
type Loader interface {
	UpsertPlayers(ctx context.Context, rows []players.Row) (postgres.Result, error)
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

// Service coordinates the players stage.
type Service struct {
	provider providers.PlayerProvider
	stage    *stagefile.Store
	loader   Loader
	logger   *slog.Logger
	metrics  *metrics.Recorder
}

// NewService constructs a Service. Logger and metrics may be nil.
func NewService(provider providers.PlayerProvider, stage *stagefile.Store, loader Loader, logger *slog.Logger, rec *metrics.Recorder) *Service {
	return &Service{provider: provider, stage: stage, loader: loader, logger: logger, metrics: rec}
}

// Run executes the stage. The provider owns the fetch cap; this stage only
// deduplicates and stages whatever it hands back.
func (s *Service) Run(ctx context.Context, opts Options) (Summary, error) {
	var sum Summary
	var rows []players.Row

	if opts.SkipFetch {
		staged, err := s.stage.ReadPlayers()
		if err != nil {
			return sum, fmt.Errorf("players stage: %w", err)
		}
		rows = staged
		sum.Staged = len(rows)
		sum.StagePath = s.stage.PlayersPath()
	} else {
		fetched, err := s.provider.FetchPlayers(ctx)
		if err != nil {
			return sum, fmt.Errorf("players stage: fetch: %w", err)
		}
		sum.Fetched = len(fetched)

		rows = dedupe.Filter(dedupe.NewSet[int](), fetched, players.Row.Key)
		sum.Duplicates = sum.Fetched - len(rows)
		s.metrics.RecordDuplicates(stageName, sum.Duplicates)

		path, err := s.stage.WritePlayers(rows)
		if err != nil {
			return sum, fmt.Errorf("players stage: %w", err)
		}
		sum.Staged = len(rows)
		sum.StagePath = path
		logging.Info(s.logger, "stage file written",
			slog.String(logging.FieldStage, stageName),
			slog.String(logging.FieldPath, path),
			slog.Int(logging.FieldCount, len(rows)),
		)
	}

	if opts.SkipLoad {
		return sum, nil
	}

	res, err := s.loader.UpsertPlayers(ctx, rows)
	sum.Upserted = res.Upserted
	sum.RowErrors = len(res.RowErrors)
	if err != nil {
		return sum, fmt.Errorf("players stage: load: %w", err)
	}
	return sum, nil
}
