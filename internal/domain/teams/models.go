package teams

import "nba-ingest/internal/nullable"

// Row is the flat team shape persisted to the teams table. TeamID is the
// upstream natural key; everything else is overwritten wholesale on upsert.
type Row struct {
	TeamID       int
	Abbreviation nullable.String
	City         nullable.String
	Conference   nullable.String
	Division     nullable.String
	FullName     nullable.String
	Name         nullable.String
}

// Key returns the natural key used for deduplication and upserts.
func (r Row) Key() int {
	return r.TeamID
}

// Columns lists the table columns in persistence order.
func Columns() []string {
	return []string{"team_id", "abbreviation", "city", "conference", "division", "full_name", "name"}
}

// Fields renders the row in CSV field order, nulls as empty strings.
func (r Row) Fields() []string {
	return []string{
		nullable.NewInt(r.TeamID).Field(),
		r.Abbreviation.Field(),
		r.City.Field(),
		r.Conference.Field(),
		r.Division.Field(),
		r.FullName.Field(),
		r.Name.Field(),
	}
}
