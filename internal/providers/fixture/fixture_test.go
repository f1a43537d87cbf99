package fixture

import (
	"context"
	"testing"

	"nba-ingest/internal/season"
)

func TestFixtureProviderReturnsDeterministicData(t *testing.T) {
	p := New()
	ctx := context.Background()

	teams, err := p.FetchTeams(ctx)
	if err != nil || len(teams) != 2 {
		t.Fatalf("expected 2 teams, got %d err %v", len(teams), err)
	}

	players, err := p.FetchPlayers(ctx)
	if err != nil || len(players) != 2 {
		t.Fatalf("expected 2 players, got %d err %v", len(players), err)
	}
	if players[1].TeamID.Valid {
		t.Fatal("expected unsigned player with null team reference")
	}

	games, err := p.FetchGames(ctx, 2023, season.Window{Start: "2023-10-01", End: "2023-10-31"})
	if err != nil || len(games) != 1 {
		t.Fatalf("expected 1 game in October, got %d err %v", len(games), err)
	}
	empty, err := p.FetchGames(ctx, 2023, season.Window{Start: "2024-03-01", End: "2024-03-31"})
	if err != nil || len(empty) != 0 {
		t.Fatalf("expected empty window, got %d err %v", len(empty), err)
	}
}
