package balldontlie

import "nba-ingest/internal/nullable"

// envelope is the response wrapper shared by every resource endpoint.
type envelope[T any] struct {
	Data []T          `json:"data"`
	Meta metaResponse `json:"meta"`
}

type metaResponse struct {
	NextCursor nullable.Int `json:"next_cursor"`
	PerPage    nullable.Int `json:"per_page"`
}

// Payload fields are nullable throughout: the upstream omits fields freely
// and is loose about numeric encodings, and a malformed field must degrade
// to null rather than abort the page decode.
type teamPayload struct {
	ID           nullable.Int    `json:"id"`
	Abbreviation nullable.String `json:"abbreviation"`
	City         nullable.String `json:"city"`
	Conference   nullable.String `json:"conference"`
	Division     nullable.String `json:"division"`
	FullName     nullable.String `json:"full_name"`
	Name         nullable.String `json:"name"`
}

type playerPayload struct {
	ID           nullable.Int    `json:"id"`
	FirstName    nullable.String `json:"first_name"`
	LastName     nullable.String `json:"last_name"`
	Position     nullable.String `json:"position"`
	Height       nullable.String `json:"height"`
	Weight       nullable.Int    `json:"weight"`
	JerseyNumber nullable.String `json:"jersey_number"`
	College      nullable.String `json:"college"`
	Country      nullable.String `json:"country"`
	DraftYear    nullable.Int    `json:"draft_year"`
	DraftRound   nullable.Int    `json:"draft_round"`
	DraftNumber  nullable.Int    `json:"draft_number"`
	Team         *teamPayload    `json:"team"`
}

type gamePayload struct {
	ID               nullable.Int    `json:"id"`
	Date             nullable.String `json:"date"`
	Status           nullable.String `json:"status"`
	Postseason       nullable.Bool   `json:"postseason"`
	HomeTeam         *teamPayload    `json:"home_team"`
	VisitorTeam      *teamPayload    `json:"visitor_team"`
	HomeTeamScore    nullable.Int    `json:"home_team_score"`
	VisitorTeamScore nullable.Int    `json:"visitor_team_score"`
}
