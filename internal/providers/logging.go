package providers

import (
	"context"
	"log/slog"
	"time"

	domaingames "nba-ingest/internal/domain/games"
	"nba-ingest/internal/domain/players"
	"nba-ingest/internal/domain/teams"
	"nba-ingest/internal/logging"
	"nba-ingest/internal/season"
)

// loggingProvider wraps a DataProvider and logs each fetch with its record
// count and duration.
type loggingProvider struct {
	next   DataProvider
	logger *slog.Logger
	now    func() time.Time
}

// NewLoggingProvider decorates the given provider with structured fetch logs.
func NewLoggingProvider(next DataProvider, logger *slog.Logger) DataProvider {
	return &loggingProvider{next: next, logger: logger, now: time.Now}
}

func (p *loggingProvider) FetchTeams(ctx context.Context) ([]teams.Row, error) {
	start := p.now()
	rows, err := p.next.FetchTeams(ctx)
	p.log("teams", "", len(rows), p.now().Sub(start), err)
	return rows, err
}

func (p *loggingProvider) FetchPlayers(ctx context.Context) ([]players.Row, error) {
	start := p.now()
	rows, err := p.next.FetchPlayers(ctx)
	p.log("players", "", len(rows), p.now().Sub(start), err)
	return rows, err
}

func (p *loggingProvider) FetchGames(ctx context.Context, seasonYear int, window season.Window) ([]domaingames.Row, error) {
	start := p.now()
	rows, err := p.next.FetchGames(ctx, seasonYear, window)
	p.log("games", window.Start+".."+window.End, len(rows), p.now().Sub(start), err)
	return rows, err
}

func (p *loggingProvider) log(resource, window string, count int, took time.Duration, err error) {
	args := []any{
		slog.String(logging.FieldResource, resource),
		slog.Int(logging.FieldCount, count),
		slog.Int64(logging.FieldDurationMS, took.Milliseconds()),
	}
	if window != "" {
		args = append(args, slog.String(logging.FieldWindow, window))
	}
	if err != nil {
		logging.Error(p.logger, "provider fetch failed", err, args...)
		return
	}
	logging.Info(p.logger, "provider fetch complete", args...)
}
