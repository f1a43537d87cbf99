// Package pipeline sequences the ingestion stages. Entity order is fixed at
// teams, then players, then games, because player and game rows carry foreign
// keys into the teams table. A stage failure stops the run before any
// dependent stage starts.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	appgames "nba-ingest/internal/app/games"
	appplayers "nba-ingest/internal/app/players"
	appteams "nba-ingest/internal/app/teams"
	"nba-ingest/internal/logging"
)

// Selection names the stages one run executes.
type Selection struct {
	Teams   bool
	Players bool
	Games   bool
}

// ParseSelection maps the -stage flag value to a Selection.
func ParseSelection(value string) (Selection, error) {
	switch value {
	case "", "all":
		return Selection{Teams: true, Players: true, Games: true}, nil
	case "teams":
		return Selection{Teams: true}, nil
	case "players":
		return Selection{Players: true}, nil
	case "games":
		return Selection{Games: true}, nil
	default:
		return Selection{}, fmt.Errorf("pipeline: unknown stage %q (want teams, players, games or all)", value)
	}
}

// TeamsRunner runs the teams stage.
type TeamsRunner interface {
	Run(ctx context.Context, opts appteams.Options) (appteams.Summary, error)
}

// PlayersRunner runs the players stage.
type PlayersRunner interface {
	Run(ctx context.Context, opts appplayers.Options) (appplayers.Summary, error)
}

// GamesRunner runs the games stage for one season.
type GamesRunner interface {
	Run(ctx context.Context, seasonYear int, opts appgames.Options) (appgames.Summary, error)
}

// Options configures one pipeline run.
type Options struct {
	Stages    Selection
	Season    int
	SkipFetch bool
	SkipLoad  bool
}

// StageOutcome records what one completed stage did.
type StageOutcome struct {
	Name       string
	Fetched    int
	Duplicates int
	Staged     int
	Upserted   int
	RowErrors  int
}

// Result aggregates the run. RowErrors is the total across stages; callers
// treat a non-zero count as a degraded run even when no stage failed.
type Result struct {
	Stages    []StageOutcome
	RowErrors int
}

// Pipeline owns the stage runners.
type Pipeline struct {
	teams   TeamsRunner
	players PlayersRunner
	games   GamesRunner
	logger  *slog.Logger
}

// New constructs a Pipeline. Logger may be nil.
func New(teams TeamsRunner, players PlayersRunner, games GamesRunner, logger *slog.Logger) *Pipeline {
	return &Pipeline{teams: teams, players: players, games: games, logger: logger}
}

// Run executes the selected stages in dependency order. The first stage
// error aborts the run; stages after it never start.
func (p *Pipeline) Run(ctx context.Context, opts Options) (Result, error) {
	var res Result

	if opts.Stages.Teams {
		sum, err := p.teams.Run(ctx, appteams.Options{SkipFetch: opts.SkipFetch, SkipLoad: opts.SkipLoad})
		res.add(StageOutcome{Name: "teams", Fetched: sum.Fetched, Duplicates: sum.Duplicates, Staged: sum.Staged, Upserted: sum.Upserted, RowErrors: sum.RowErrors})
		if err != nil {
			return res, fmt.Errorf("pipeline: teams stage: %w", err)
		}
	}

	if opts.Stages.Players {
		p.warnMissingPrerequisite(opts, "players")
		sum, err := p.players.Run(ctx, appplayers.Options{SkipFetch: opts.SkipFetch, SkipLoad: opts.SkipLoad})
		res.add(StageOutcome{Name: "players", Fetched: sum.Fetched, Duplicates: sum.Duplicates, Staged: sum.Staged, Upserted: sum.Upserted, RowErrors: sum.RowErrors})
		if err != nil {
			return res, fmt.Errorf("pipeline: players stage: %w", err)
		}
	}

	if opts.Stages.Games {
		p.warnMissingPrerequisite(opts, "games")
		sum, err := p.games.Run(ctx, opts.Season, appgames.Options{SkipFetch: opts.SkipFetch, SkipLoad: opts.SkipLoad})
		res.add(StageOutcome{Name: "games", Fetched: sum.Fetched, Duplicates: sum.Duplicates, Staged: sum.Staged, Upserted: sum.Upserted, RowErrors: sum.RowErrors})
		if err != nil {
			return res, fmt.Errorf("pipeline: games stage: %w", err)
		}
	}

	return res, nil
}

func (r *Result) add(outcome StageOutcome) {
	r.Stages = append(r.Stages, outcome)
	r.RowErrors += outcome.RowErrors
}

// warnMissingPrerequisite notes when a dependent stage runs without the teams
// stage in the same run. The load then relies on the teams table being
// populated by an earlier run; rows referencing absent teams surface as row
// errors.
func (p *Pipeline) warnMissingPrerequisite(opts Options, stage string) {
	if opts.Stages.Teams || opts.SkipLoad {
		return
	}
	logging.Warn(p.logger, "prerequisite stage not selected, assuming teams are already loaded",
		slog.String(logging.FieldStage, stage),
	)
}
