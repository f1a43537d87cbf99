package players

import "nba-ingest/internal/nullable"

// Row is the flat player shape persisted to the players table. Height stays
// in the upstream "feet-dash-inches" encoding; TeamID is null for unsigned
// players.
type Row struct {
	ID           int
	FirstName    nullable.String
	LastName     nullable.String
	Position     nullable.String
	Height       nullable.String
	Weight       nullable.Int
	JerseyNumber nullable.String
	College      nullable.String
	Country      nullable.String
	DraftYear    nullable.Int
	DraftRound   nullable.Int
	DraftNumber  nullable.Int
	TeamID       nullable.Int
}

// Key returns the natural key used for deduplication and upserts.
func (r Row) Key() int {
	return r.ID
}

// Columns lists the table columns in persistence order.
func Columns() []string {
	return []string{
		"id", "first_name", "last_name", "position", "height", "weight",
		"jersey_number", "college", "country", "draft_year", "draft_round",
		"draft_number", "team_id",
	}
}

// Fields renders the row in CSV field order, nulls as empty strings.
func (r Row) Fields() []string {
	return []string{
		nullable.NewInt(r.ID).Field(),
		r.FirstName.Field(),
		r.LastName.Field(),
		r.Position.Field(),
		r.Height.Field(),
		r.Weight.Field(),
		r.JerseyNumber.Field(),
		r.College.Field(),
		r.Country.Field(),
		r.DraftYear.Field(),
		r.DraftRound.Field(),
		r.DraftNumber.Field(),
		r.TeamID.Field(),
	}
}
