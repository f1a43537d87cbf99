// Package fixture provides a static DataProvider useful for local runs and
// pipeline tests that must not touch the real API.
package fixture

import (
	"context"

	domaingames "nba-ingest/internal/domain/games"
	"nba-ingest/internal/domain/players"
	"nba-ingest/internal/domain/teams"
	"nba-ingest/internal/nullable"
	"nba-ingest/internal/season"
)

// Provider returns a small deterministic dataset.
type Provider struct{}

// New creates a fixture provider.
func New() *Provider {
	return &Provider{}
}

// FetchTeams returns two example teams.
func (p *Provider) FetchTeams(ctx context.Context) ([]teams.Row, error) {
	_ = ctx
	return []teams.Row{
		{
			TeamID:       1,
			Abbreviation: nullable.NewString("BOS"),
			City:         nullable.NewString("Boston"),
			Conference:   nullable.NewString("East"),
			Division:     nullable.NewString("Atlantic"),
			FullName:     nullable.NewString("Boston Celtics"),
			Name:         nullable.NewString("Celtics"),
		},
		{
			TeamID:       2,
			Abbreviation: nullable.NewString("LAL"),
			City:         nullable.NewString("Los Angeles"),
			Conference:   nullable.NewString("West"),
			Division:     nullable.NewString("Pacific"),
			FullName:     nullable.NewString("Los Angeles Lakers"),
			Name:         nullable.NewString("Lakers"),
		},
	}, nil
}

// FetchPlayers returns one signed and one unsigned player.
func (p *Provider) FetchPlayers(ctx context.Context) ([]players.Row, error) {
	_ = ctx
	return []players.Row{
		{
			ID:        100,
			FirstName: nullable.NewString("Jayson"),
			LastName:  nullable.NewString("Tatum"),
			Position:  nullable.NewString("F"),
			Height:    nullable.NewString("6-8"),
			Weight:    nullable.NewInt(210),
			TeamID:    nullable.NewInt(1),
		},
		{
			ID:        101,
			FirstName: nullable.NewString("Free"),
			LastName:  nullable.NewString("Agent"),
		},
	}, nil
}

// FetchGames returns one finished game dated inside the requested window
// when the window covers October; other windows are empty.
func (p *Provider) FetchGames(ctx context.Context, seasonYear int, window season.Window) ([]domaingames.Row, error) {
	_ = ctx
	if len(window.Start) < 7 || window.Start[5:7] != "10" {
		return nil, nil
	}
	return []domaingames.Row{
		{
			GameID:           1000,
			GameDate:         nullable.NewString(window.Start),
			Season:           seasonYear,
			HomeTeamID:       nullable.NewInt(1),
			VisitorTeamID:    nullable.NewInt(2),
			HomeTeamScore:    nullable.NewInt(112),
			VisitorTeamScore: nullable.NewInt(98),
			Postseason:       false,
			Status:           nullable.NewString("Final"),
		},
	}, nil
}
