package postgres

import (
	"context"

	"nba-ingest/internal/domain/players"
)

const upsertPlayerSQL = `
INSERT INTO players (id, first_name, last_name, position, height, weight,
                     jersey_number, college, country, draft_year, draft_round,
                     draft_number, team_id)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
ON CONFLICT (id) DO UPDATE SET
    first_name    = EXCLUDED.first_name,
    last_name     = EXCLUDED.last_name,
    position      = EXCLUDED.position,
    height        = EXCLUDED.height,
    weight        = EXCLUDED.weight,
    jersey_number = EXCLUDED.jersey_number,
    college       = EXCLUDED.college,
    country       = EXCLUDED.country,
    draft_year    = EXCLUDED.draft_year,
    draft_round   = EXCLUDED.draft_round,
    draft_number  = EXCLUDED.draft_number,
    team_id       = EXCLUDED.team_id`

// UpsertPlayers applies player rows with full-overwrite semantics. Rows whose
// team reference is not yet loaded come back as RowErrors; teams must load
// first.
func (s *Store) UpsertPlayers(ctx context.Context, rows []players.Row) (Result, error) {
	keys := make([]int, len(rows))
	args := make([][]any, len(rows))
	for i, r := range rows {
		keys[i] = r.ID
		args[i] = []any{
			r.ID, r.FirstName, r.LastName, r.Position, r.Height, r.Weight,
			r.JerseyNumber, r.College, r.Country, r.DraftYear, r.DraftRound,
			r.DraftNumber, r.TeamID,
		}
	}
	return s.upsertRows(ctx, "players", upsertPlayerSQL, keys, args)
}
