package postgres

import (
	"context"

	domaingames "nba-ingest/internal/domain/games"
)

const upsertGameSQL = `
INSERT INTO games (game_id, game_date, season, home_team_id, visitor_team_id,
                   home_team_score, visitor_team_score, postseason, status)
VALUES ($1, $2::date, $3, $4, $5, $6, $7, $8, $9)
ON CONFLICT (game_id) DO UPDATE SET
    game_date          = EXCLUDED.game_date,
    season             = EXCLUDED.season,
    home_team_id       = EXCLUDED.home_team_id,
    visitor_team_id    = EXCLUDED.visitor_team_id,
    home_team_score    = EXCLUDED.home_team_score,
    visitor_team_score = EXCLUDED.visitor_team_score,
    postseason         = EXCLUDED.postseason,
    status             = EXCLUDED.status`

// UpsertGames applies game rows with full-overwrite semantics, so a re-run
// after results come in replaces scheduled-time statuses with finals.
func (s *Store) UpsertGames(ctx context.Context, rows []domaingames.Row) (Result, error) {
	keys := make([]int, len(rows))
	args := make([][]any, len(rows))
	for i, r := range rows {
		keys[i] = r.GameID
		args[i] = []any{
			r.GameID, r.GameDate, r.Season, r.HomeTeamID, r.VisitorTeamID,
			r.HomeTeamScore, r.VisitorTeamScore, r.Postseason, r.Status,
		}
	}
	return s.upsertRows(ctx, "games", upsertGameSQL, keys, args)
}
