package postgres

import (
	"context"

	"nba-ingest/internal/domain/teams"
)

const upsertTeamSQL = `
INSERT INTO teams (team_id, abbreviation, city, conference, division, full_name, name)
VALUES ($1, $2, $3, $4, $5, $6, $7)
ON CONFLICT (team_id) DO UPDATE SET
    abbreviation = EXCLUDED.abbreviation,
    city         = EXCLUDED.city,
    conference   = EXCLUDED.conference,
    division     = EXCLUDED.division,
    full_name    = EXCLUDED.full_name,
    name         = EXCLUDED.name`

// UpsertTeams applies team rows, inserting new ids and fully overwriting the
// attributes of existing ones.
func (s *Store) UpsertTeams(ctx context.Context, rows []teams.Row) (Result, error) {
	keys := make([]int, len(rows))
	args := make([][]any, len(rows))
	for i, r := range rows {
		keys[i] = r.TeamID
		args[i] = []any{
			r.TeamID, r.Abbreviation, r.City, r.Conference,
			r.Division, r.FullName, r.Name,
		}
	}
	return s.upsertRows(ctx, "teams", upsertTeamSQL, keys, args)
}
