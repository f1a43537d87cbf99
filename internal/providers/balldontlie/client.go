package balldontlie

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	domaingames "nba-ingest/internal/domain/games"
	"nba-ingest/internal/domain/players"
	"nba-ingest/internal/domain/teams"
	"nba-ingest/internal/logging"
	"nba-ingest/internal/metrics"
	"nba-ingest/internal/nullable"
	"nba-ingest/internal/providers"
	"nba-ingest/internal/ratelimit"
	"nba-ingest/internal/season"
)

// ErrMissingAPIKey is returned before any request is issued when the
// credential is absent. This is a configuration error, never a retry.
var ErrMissingAPIKey = errors.New("balldontlie: API key required")

// Config controls how the balldontlie client reaches the upstream API.
type Config struct {
	BaseURL    string
	APIKey     string
	HTTPClient *http.Client

	// Limiter is the shared request budget; one instance spans every fetch
	// in a run. A nil limiter gets a private one built from FetchDelay.
	Limiter *ratelimit.Limiter

	TeamsPerPage   int
	PlayersPerPage int
	GamesPerPage   int

	// MaxPlayers caps how many players one fetch keeps; 0 = unlimited.
	MaxPlayers int

	// RateLimitRetries bounds identical-request retries after a 429.
	RateLimitRetries int

	// FetchDelay spaces page requests; GamesFetchDelay overrides it for the
	// games endpoint, whose quota is tighter.
	FetchDelay      time.Duration
	GamesFetchDelay time.Duration

	Logger  *slog.Logger
	Metrics *metrics.Recorder
}

// Client fetches reference data from the balldontlie API and flattens it to
// store rows. One page request is in flight at a time.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient httpDoer
	limiter    *ratelimit.Limiter

	teamsPerPage   int
	playersPerPage int
	gamesPerPage   int
	maxPlayers     int
	retries        int

	fetchDelay      time.Duration
	gamesFetchDelay time.Duration

	logger  *slog.Logger
	metrics *metrics.Recorder
}

// NewClient constructs a client, validating the credential up front.
func NewClient(cfg Config) (*Client, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, ErrMissingAPIKey
	}
	gamesDelay := cfg.GamesFetchDelay
	if gamesDelay <= 0 {
		gamesDelay = cfg.FetchDelay
	}
	return &Client{
		baseURL:         normalizeBaseURL(cfg.BaseURL),
		apiKey:          cfg.APIKey,
		httpClient:      resolveHTTPClient(cfg.HTTPClient),
		limiter:         resolveLimiter(cfg.Limiter, cfg.FetchDelay),
		teamsPerPage:    resolvePerPage(cfg.TeamsPerPage, defaultPerPage),
		playersPerPage:  resolvePerPage(cfg.PlayersPerPage, defaultPerPage),
		gamesPerPage:    resolvePerPage(cfg.GamesPerPage, defaultGamesPerPage),
		maxPlayers:      cfg.MaxPlayers,
		retries:         resolveRetries(cfg.RateLimitRetries),
		fetchDelay:      cfg.FetchDelay,
		gamesFetchDelay: gamesDelay,
		logger:          cfg.Logger,
		metrics:         cfg.Metrics,
	}, nil
}

// FetchTeams retrieves every team, following the cursor chain to exhaustion.
func (c *Client) FetchTeams(ctx context.Context) ([]teams.Row, error) {
	raw, err := fetchAll[teamPayload](ctx, c, resourceTeams, nil, c.teamsPerPage, c.fetchDelay, 0)
	if err != nil {
		return nil, err
	}
	rows := make([]teams.Row, 0, len(raw))
	for _, t := range raw {
		row, ok := mapTeam(t)
		if !ok {
			c.warnSkipped(resourceTeams)
			continue
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// FetchPlayers retrieves players up to the configured cap.
func (c *Client) FetchPlayers(ctx context.Context) ([]players.Row, error) {
	raw, err := fetchAll[playerPayload](ctx, c, resourcePlayers, nil, c.playersPerPage, c.fetchDelay, c.maxPlayers)
	if err != nil {
		return nil, err
	}
	rows := make([]players.Row, 0, len(raw))
	for _, p := range raw {
		row, ok := mapPlayer(p)
		if !ok {
			c.warnSkipped(resourcePlayers)
			continue
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// FetchGames retrieves the games inside one date window, tagged with the
// season the run is ingesting.
func (c *Client) FetchGames(ctx context.Context, seasonYear int, window season.Window) ([]domaingames.Row, error) {
	query := url.Values{}
	query.Set("start_date", window.Start)
	query.Set("end_date", window.End)

	raw, err := fetchAll[gamePayload](ctx, c, resourceGames, query, c.gamesPerPage, c.gamesFetchDelay, 0)
	if err != nil {
		return nil, err
	}
	rows := make([]domaingames.Row, 0, len(raw))
	for _, g := range raw {
		row, ok := mapGame(g, seasonYear)
		if !ok {
			c.warnSkipped(resourceGames)
			continue
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// fetchAll follows the cursor chain for one resource until the server stops
// supplying a cursor, returns an empty page, or the cap is reached.
func fetchAll[T any](ctx context.Context, c *Client, resource string, query url.Values, perPage int, spacing time.Duration, max int) ([]T, error) {
	var out []T
	var cursor nullable.Int

	for {
		if err := c.limiter.WaitInterval(ctx, spacing); err != nil {
			return nil, err
		}

		data, next, err := fetchPage[T](ctx, c, resource, query, perPage, cursor)
		if err != nil {
			return nil, err
		}
		c.metrics.RecordPage(resource, len(data))
		logging.Debug(c.logger, "page fetched",
			slog.String(logging.FieldResource, resource),
			slog.Int(logging.FieldCount, len(data)),
			slog.String(logging.FieldCursor, cursor.Field()),
		)

		if len(data) == 0 {
			break
		}
		out = append(out, data...)
		if max > 0 && len(out) >= max {
			out = out[:max]
			break
		}
		if !next.Valid {
			break
		}
		cursor = next
	}
	return out, nil
}

// fetchPage issues one page request. On a 429 it cools down and re-issues the
// identical request (same cursor, same params) up to the retry ceiling; it
// never advances the cursor on a rate limit.
func fetchPage[T any](ctx context.Context, c *Client, resource string, query url.Values, perPage int, cursor nullable.Int) ([]T, nullable.Int, error) {
	none := nullable.Int{}

	for attempt := 1; ; attempt++ {
		req, err := c.buildRequest(ctx, resource, query, perPage, cursor)
		if err != nil {
			return nil, none, err
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return nil, none, fmt.Errorf("balldontlie: fetch %s: %w", resource, err)
		}

		if resp.StatusCode == http.StatusTooManyRequests {
			io.Copy(io.Discard, resp.Body)
			resp.Body.Close()
			c.metrics.RecordRateLimit(resource)

			if attempt >= c.retries {
				return nil, none, &providers.RateLimitError{
					Provider: providerName,
					Resource: resource,
					Attempts: attempt,
					Cooldown: c.limiter.CooldownInterval(),
				}
			}
			logging.Warn(c.logger, "rate limited, cooling down",
				slog.String(logging.FieldResource, resource),
				slog.Int(logging.FieldAttempt, attempt),
			)
			if err := c.limiter.Cooldown(ctx); err != nil {
				return nil, none, err
			}
			continue
		}

		if resp.StatusCode != http.StatusOK {
			body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
			resp.Body.Close()
			return nil, none, &providers.StatusError{
				Provider:   providerName,
				Resource:   resource,
				StatusCode: resp.StatusCode,
				Body:       strings.TrimSpace(string(body)),
			}
		}

		var payload envelope[T]
		if decodeErr := json.NewDecoder(resp.Body).Decode(&payload); decodeErr != nil {
			resp.Body.Close()
			return nil, none, fmt.Errorf("balldontlie: decode %s page: %w", resource, decodeErr)
		}
		resp.Body.Close()
		return payload.Data, payload.Meta.NextCursor, nil
	}
}

func (c *Client) buildRequest(ctx context.Context, resource string, extra url.Values, perPage int, cursor nullable.Int) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/"+resource, nil)
	if err != nil {
		return nil, err
	}

	q := req.URL.Query()
	for key, values := range extra {
		for _, v := range values {
			q.Add(key, v)
		}
	}
	q.Set("per_page", strconv.Itoa(perPage))
	if cursor.Valid {
		q.Set("cursor", strconv.Itoa(cursor.Int))
	}
	req.URL.RawQuery = q.Encode()

	req.Header.Set("Authorization", c.apiKey)
	return req, nil
}

func (c *Client) warnSkipped(resource string) {
	logging.Warn(c.logger, "record without id skipped",
		slog.String(logging.FieldResource, resource))
}
