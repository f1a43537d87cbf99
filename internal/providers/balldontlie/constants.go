package balldontlie

import "time"

const providerName = "balldontlie"

const (
	resourceTeams   = "teams"
	resourcePlayers = "players"
	resourceGames   = "games"
)

const (
	defaultBaseURL     = "https://api.balldontlie.io/v1"
	defaultHTTPTimeout = 30 * time.Second

	// The API caps effective page sizes; games responses are heavier, so the
	// default page there is smaller.
	defaultPerPage      = 100
	defaultGamesPerPage = 25

	// Ceiling on identical-request retries after a 429. Persistent rate
	// limiting past this surfaces as a fatal error rather than looping.
	defaultRateLimitRetries = 10

	// How much of an error response body is kept for diagnostics.
	maxErrorBodyBytes = 512
)
