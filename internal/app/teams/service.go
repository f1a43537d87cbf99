// Package teams runs the team ingestion stage: fetch the full team list,
// deduplicate it, stage it to disk, and load it into the store.
package teams

import (
	"context"
	"fmt"
	"log/slog"

	"nba-ingest/internal/dedupe"
	"nba-ingest/internal/domain/teams"
	"nba-ingest/internal/logging"
	"nba-ingest/internal/metrics"
	"nba-ingest/internal/providers"
	"nba-ingest/internal/stagefile"
	"nba-ingest/internal/store/postgres"
)

const stageName = "teams"

// Loader persists team rows.
type Loader interface {
	UpsertTeams(ctx context.Context, rows []teams.Row) (postgres.Result, error)
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

// Service coordinates the teams stage.
type Service struct {
	provider providers.TeamProvider
	stage    *stagefile.Store
	loader   Loader
	logger   *slog.Logger
	metrics  *metrics.Recorder
}

// NewService constructs a Service. Logger and metrics may be nil.
func NewService(provider providers.TeamProvider, stage *stagefile.Store, loader Loader, logger *slog.Logger, rec *metrics.Recorder) *Service {
	return &Service{provider: provider, stage: stage, loader: loader, logger: logger, metrics: rec}
}

// Run executes the stage. With SkipFetch the rows come from the stage file;
// otherwise they are fetched, deduplicated first-wins, and staged before the
// load.
func (s *Service) Run(ctx context.Context, opts Options) (Summary, error) {
	var sum Summary
	var rows []teams.Row

	if opts.SkipFetch {
		staged, err := s.stage.ReadTeams()
		if err != nil {
			return sum, fmt.Errorf("teams stage: %w", err)
		}
		rows = staged
		sum.Staged = len(rows)
		sum.StagePath = s.stage.TeamsPath()
	} else {
		fetched, err := s.provider.FetchTeams(ctx)
		if err != nil {
			return sum, fmt.Errorf("teams stage: fetch: %w", err)
		}
		sum.Fetched = len(fetched)

		rows = dedupe.Filter(dedupe.NewSet[int](), fetched, teams.Row.Key)
		sum.Duplicates = sum.Fetched - len(rows)
		s.metrics.RecordDuplicates(stageName, sum.Duplicates)

		path, err := s.stage.WriteTeams(rows)
		if err != nil {
			return sum, fmt.Errorf("teams stage: %w", err)
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

	res, err := s.loader.UpsertTeams(ctx, rows)
	sum.Upserted = res.Upserted
	sum.RowErrors = len(res.RowErrors)
	if err != nil {
		return sum, fmt.Errorf("teams stage: load: %w", err)
	}
	return sum, nil
}
