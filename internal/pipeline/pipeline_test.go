package pipeline

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appgames "nba-ingest/internal/app/games"
	appplayers "nba-ingest/internal/app/players"
	appteams "nba-ingest/internal/app/teams"
)

type teamsRunnerFunc func(context.Context, appteams.Options) (appteams.Summary, error)

func (f teamsRunnerFunc) Run(ctx context.Context, opts appteams.Options) (appteams.Summary, error) {
	return f(ctx, opts)
}

type playersRunnerFunc func(context.Context, appplayers.Options) (appplayers.Summary, error)

func (f playersRunnerFunc) Run(ctx context.Context, opts appplayers.Options) (appplayers.Summary, error) {
	return f(ctx, opts)
}

type gamesRunnerFunc func(context.Context, int, appgames.Options) (appgames.Summary, error)

func (f gamesRunnerFunc) Run(ctx context.Context, seasonYear int, opts appgames.Options) (appgames.Summary, error) {
	return f(ctx, seasonYear, opts)
}

func TestParseSelection(t *testing.T) {
	cases := []struct {
		value string
		want  Selection
	}{
		{"all", Selection{Teams: true, Players: true, Games: true}},
		{"", Selection{Teams: true, Players: true, Games: true}},
		{"teams", Selection{Teams: true}},
		{"players", Selection{Players: true}},
		{"games", Selection{Games: true}},
	}
	for _, tc := range cases {
		got, err := ParseSelection(tc.value)
		require.NoError(t, err, "value %q", tc.value)
		assert.Equal(t, tc.want, got, "value %q", tc.value)
	}

	_, err := ParseSelection("rosters")
	assert.Error(t, err)
}

func TestRunExecutesStagesInDependencyOrder(t *testing.T) {
	var order []string

	p := New(
		teamsRunnerFunc(func(context.Context, appteams.Options) (appteams.Summary, error) {
			order = append(order, "teams")
			return appteams.Summary{Staged: 30, Upserted: 30}, nil
		}),
		playersRunnerFunc(func(context.Context, appplayers.Options) (appplayers.Summary, error) {
			order = append(order, "players")
			return appplayers.Summary{Staged: 400, Upserted: 399, RowErrors: 1}, nil
		}),
		gamesRunnerFunc(func(_ context.Context, seasonYear int, _ appgames.Options) (appgames.Summary, error) {
			order = append(order, "games")
			assert.Equal(t, 2023, seasonYear)
			return appgames.Summary{Staged: 1200, Upserted: 1198, RowErrors: 2}, nil
		}),
		nil,
	)

	res, err := p.Run(context.Background(), Options{
		Stages: Selection{Teams: true, Players: true, Games: true},
		Season: 2023,
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"teams", "players", "games"}, order)
	require.Len(t, res.Stages, 3)
	assert.Equal(t, 3, res.RowErrors)
	assert.Equal(t, "teams", res.Stages[0].Name)
	assert.Equal(t, 30, res.Stages[0].Upserted)
}

func TestRunFailsFastWhenPrerequisiteStageFails(t *testing.T) {
	wantErr := errors.New("teams fetch exploded")

	p := New(
		teamsRunnerFunc(func(context.Context, appteams.Options) (appteams.Summary, error) {
			return appteams.Summary{}, wantErr
		}),
		playersRunnerFunc(func(context.Context, appplayers.Options) (appplayers.Summary, error) {
			t.Fatal("players ran after teams failed")
			return appplayers.Summary{}, nil
		}),
		gamesRunnerFunc(func(context.Context, int, appgames.Options) (appgames.Summary, error) {
			t.Fatal("games ran after teams failed")
			return appgames.Summary{}, nil
		}),
		nil,
	)

	res, err := p.Run(context.Background(), Options{
		Stages: Selection{Teams: true, Players: true, Games: true},
	})
	require.ErrorIs(t, err, wantErr)
	require.Len(t, res.Stages, 1)
}

func TestRunStopsBeforeGamesWhenPlayersFail(t *testing.T) {
	wantErr := errors.New("players load exploded")

	p := New(
		teamsRunnerFunc(func(context.Context, appteams.Options) (appteams.Summary, error) {
			return appteams.Summary{Upserted: 30}, nil
		}),
		playersRunnerFunc(func(context.Context, appplayers.Options) (appplayers.Summary, error) {
			return appplayers.Summary{}, wantErr
		}),
		gamesRunnerFunc(func(context.Context, int, appgames.Options) (appgames.Summary, error) {
			t.Fatal("games ran after players failed")
			return appgames.Summary{}, nil
		}),
		nil,
	)

	res, err := p.Run(context.Background(), Options{
		Stages: Selection{Teams: true, Players: true, Games: true},
	})
	require.ErrorIs(t, err, wantErr)
	assert.Len(t, res.Stages, 2)
}

func TestRunSelectedStageOnly(t *testing.T) {
	p := New(
		teamsRunnerFunc(func(context.Context, appteams.Options) (appteams.Summary, error) {
			t.Fatal("teams ran without being selected")
			return appteams.Summary{}, nil
		}),
		playersRunnerFunc(func(context.Context, appplayers.Options) (appplayers.Summary, error) {
			t.Fatal("players ran without being selected")
			return appplayers.Summary{}, nil
		}),
		gamesRunnerFunc(func(_ context.Context, seasonYear int, _ appgames.Options) (appgames.Summary, error) {
			assert.Equal(t, 2024, seasonYear)
			return appgames.Summary{Staged: 5, Upserted: 5}, nil
		}),
		nil,
	)

	res, err := p.Run(context.Background(), Options{
		Stages: Selection{Games: true},
		Season: 2024,
	})
	require.NoError(t, err)
	require.Len(t, res.Stages, 1)
	assert.Equal(t, "games", res.Stages[0].Name)
}

func TestRunForwardsSkipFlags(t *testing.T) {
	p := New(
		teamsRunnerFunc(func(_ context.Context, opts appteams.Options) (appteams.Summary, error) {
			assert.True(t, opts.SkipFetch)
			assert.True(t, opts.SkipLoad)
			return appteams.Summary{}, nil
		}),
		playersRunnerFunc(func(_ context.Context, opts appplayers.Options) (appplayers.Summary, error) {
			assert.True(t, opts.SkipFetch)
			assert.True(t, opts.SkipLoad)
			return appplayers.Summary{}, nil
		}),
		gamesRunnerFunc(func(_ context.Context, _ int, opts appgames.Options) (appgames.Summary, error) {
			assert.True(t, opts.SkipFetch)
			assert.True(t, opts.SkipLoad)
			return appgames.Summary{}, nil
		}),
		nil,
	)

	_, err := p.Run(context.Background(), Options{
		Stages:    Selection{Teams: true, Players: true, Games: true},
		SkipFetch: true,
		SkipLoad:  true,
	})
	require.NoError(t, err)
}
