package games

import "nba-ingest/internal/nullable"

// Row is the flat game shape persisted to the games table. GameDate carries
// only the calendar date; scores stay null until the game has been played.
// Season is the year the season starts, supplied by the ingestion run.
type Row struct {
	GameID           int
	GameDate         nullable.String
	Season           int
	HomeTeamID       nullable.Int
	VisitorTeamID    nullable.Int
	HomeTeamScore    nullable.Int
	VisitorTeamScore nullable.Int
	Postseason       bool
	Status           nullable.String
}

// Key returns the natural key used for deduplication and upserts.
func (r Row) Key() int {
	return r.GameID
}

// Columns lists the table columns in persistence order.
func Columns() []string {
	return []string{
		"game_id", "game_date", "season", "home_team_id", "visitor_team_id",
		"home_team_score", "visitor_team_score", "postseason", "status",
	}
}

// Fields renders the row in CSV field order, nulls as empty strings.
func (r Row) Fields() []string {
	postseason := "false"
	if r.Postseason {
		postseason = "true"
	}
	return []string{
		nullable.NewInt(r.GameID).Field(),
		r.GameDate.Field(),
		nullable.NewInt(r.Season).Field(),
		r.HomeTeamID.Field(),
		r.VisitorTeamID.Field(),
		r.HomeTeamScore.Field(),
		r.VisitorTeamScore.Field(),
		postseason,
		r.Status.Field(),
	}
}
