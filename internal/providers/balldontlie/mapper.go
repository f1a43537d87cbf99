package balldontlie

import (
	domaingames "nba-ingest/internal/domain/games"
	"nba-ingest/internal/domain/players"
	"nba-ingest/internal/domain/teams"
	"nba-ingest/internal/nullable"
	"nba-ingest/internal/timeutil"
)

// The mappers are pure and total: any individual malformed field lands as
// null in the row. Only a record with no usable id is rejected, since a row
// without its natural key cannot be upserted.

func mapTeam(t teamPayload) (teams.Row, bool) {
	if !t.ID.Valid {
		return teams.Row{}, false
	}
	return teams.Row{
		TeamID:       t.ID.Int,
		Abbreviation: t.Abbreviation,
		City:         t.City,
		Conference:   t.Conference,
		Division:     t.Division,
		FullName:     t.FullName,
		Name:         t.Name,
	}, true
}

func mapPlayer(p playerPayload) (players.Row, bool) {
	if !p.ID.Valid {
		return players.Row{}, false
	}
	row := players.Row{
		ID:           p.ID.Int,
		FirstName:    p.FirstName,
		LastName:     p.LastName,
		Position:     p.Position,
		Height:       p.Height,
		Weight:       p.Weight,
		JerseyNumber: p.JerseyNumber,
		College:      p.College,
		Country:      p.Country,
		DraftYear:    p.DraftYear,
		DraftRound:   p.DraftRound,
		DraftNumber:  p.DraftNumber,
	}
	// An unsigned player has no team; the foreign key stays null.
	if p.Team != nil {
		row.TeamID = p.Team.ID
	}
	return row, true
}

func mapGame(g gamePayload, seasonYear int) (domaingames.Row, bool) {
	if !g.ID.Valid {
		return domaingames.Row{}, false
	}
	row := domaingames.Row{
		GameID:           g.ID.Int,
		Season:           seasonYear,
		HomeTeamScore:    g.HomeTeamScore,
		VisitorTeamScore: g.VisitorTeamScore,
		Postseason:       g.Postseason.Or(false),
		Status:           g.Status,
	}
	if g.Date.Valid {
		row.GameDate = nullable.NewString(timeutil.TruncateDate(g.Date.String))
	}
	if g.HomeTeam != nil {
		row.HomeTeamID = g.HomeTeam.ID
	}
	if g.VisitorTeam != nil {
		row.VisitorTeamID = g.VisitorTeam.ID
	}
	return row, true
}
