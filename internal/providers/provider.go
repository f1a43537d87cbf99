package providers

import (
	"context"

	domaingames "nba-ingest/internal/domain/games"
	"nba-ingest/internal/domain/players"
	"nba-ingest/internal/domain/teams"
	"nba-ingest/internal/season"
)

// TeamProvider fetches the complete set of teams, flattened to rows.
type TeamProvider interface {
	FetchTeams(ctx context.Context) ([]teams.Row, error)
}

// PlayerProvider fetches players, flattened to rows. Implementations follow
// the cursor chain to exhaustion (or a configured cap) in one call.
type PlayerProvider interface {
	FetchPlayers(ctx context.Context) ([]players.Row, error)
}

// GameProvider fetches the games inside one date window of a season,
// flattened to rows. Callers partition a season into windows and merge the
// results themselves.
type GameProvider interface {
	FetchGames(ctx context.Context, seasonYear int, window season.Window) ([]domaingames.Row, error)
}

// DataProvider combines all provider capabilities.
type DataProvider interface {
	TeamProvider
	PlayerProvider
	GameProvider
}
