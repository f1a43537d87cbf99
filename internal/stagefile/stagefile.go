// Package stagefile persists each entity's flattened, deduplicated output as
// a delimited file before loading. Staging decouples fetch from load: a load
// can be re-run from the files without touching the upstream API.
package stagefile

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	domaingames "nba-ingest/internal/domain/games"
	"nba-ingest/internal/domain/players"
	"nba-ingest/internal/domain/teams"
	"nba-ingest/internal/nullable"
)

// Store reads and writes stage files rooted at one directory.
type Store struct {
	basePath string
}

// NewStore constructs a Store rooted at basePath.
func NewStore(basePath string) *Store {
	return &Store{basePath: basePath}
}

// TeamsPath returns the teams stage file location.
func (s *Store) TeamsPath() string {
	return filepath.Join(s.basePath, "teams.csv")
}

// PlayersPath returns the players stage file location.
func (s *Store) PlayersPath() string {
	return filepath.Join(s.basePath, "players.csv")
}

// GamesPath returns the stage file location for one season's games.
func (s *Store) GamesPath(season int) string {
	return filepath.Join(s.basePath, fmt.Sprintf("games_%d.csv", season))
}

// WriteTeams stages team rows, returning the file path.
func (s *Store) WriteTeams(rows []teams.Row) (string, error) {
	records := make([][]string, 0, len(rows))
	for _, r := range rows {
		records = append(records, r.Fields())
	}
	path := s.TeamsPath()
	return path, s.write(path, teams.Columns(), records)
}

// ReadTeams loads previously staged team rows.
func (s *Store) ReadTeams() ([]teams.Row, error) {
	records, err := s.read(s.TeamsPath(), teams.Columns())
	if err != nil {
		return nil, err
	}
	rows := make([]teams.Row, 0, len(records))
	for i, rec := range records {
		id := nullable.CoerceInt(rec[0])
		if !id.Valid {
			return nil, fmt.Errorf("stagefile: teams row %d: missing team_id", i+1)
		}
		rows = append(rows, teams.Row{
			TeamID:       id.Int,
			Abbreviation: nullable.CoerceString(rec[1]),
			City:         nullable.CoerceString(rec[2]),
			Conference:   nullable.CoerceString(rec[3]),
			Division:     nullable.CoerceString(rec[4]),
			FullName:     nullable.CoerceString(rec[5]),
			Name:         nullable.CoerceString(rec[6]),
		})
	}
	return rows, nil
}

// WritePlayers stages player rows, returning the file path.
func (s *Store) WritePlayers(rows []players.Row) (string, error) {
	records := make([][]string, 0, len(rows))
	for _, r := range rows {
		records = append(records, r.Fields())
	}
	path := s.PlayersPath()
	return path, s.write(path, players.Columns(), records)
}

// ReadPlayers loads previously staged player rows.
func (s *Store) ReadPlayers() ([]players.Row, error) {
	records, err := s.read(s.PlayersPath(), players.Columns())
	if err != nil {
		return nil, err
	}
	rows := make([]players.Row, 0, len(records))
	for i, rec := range records {
		id := nullable.CoerceInt(rec[0])
		if !id.Valid {
			return nil, fmt.Errorf("stagefile: players row %d: missing id", i+1)
		}
		rows = append(rows, players.Row{
			ID:           id.Int,
			FirstName:    nullable.CoerceString(rec[1]),
			LastName:     nullable.CoerceString(rec[2]),
			Position:     nullable.CoerceString(rec[3]),
			Height:       nullable.CoerceString(rec[4]),
			Weight:       nullable.CoerceInt(rec[5]),
			JerseyNumber: nullable.CoerceString(rec[6]),
			College:      nullable.CoerceString(rec[7]),
			Country:      nullable.CoerceString(rec[8]),
			DraftYear:    nullable.CoerceInt(rec[9]),
			DraftRound:   nullable.CoerceInt(rec[10]),
			DraftNumber:  nullable.CoerceInt(rec[11]),
			TeamID:       nullable.CoerceInt(rec[12]),
		})
	}
	return rows, nil
}

// WriteGames stages game rows for one season, returning the file path.
func (s *Store) WriteGames(season int, rows []domaingames.Row) (string, error) {
	records := make([][]string, 0, len(rows))
	for _, r := range rows {
		records = append(records, r.Fields())
	}
	path := s.GamesPath(season)
	return path, s.write(path, domaingames.Columns(), records)
}

// ReadGames loads previously staged game rows for one season.
func (s *Store) ReadGames(season int) ([]domaingames.Row, error) {
	records, err := s.read(s.GamesPath(season), domaingames.Columns())
	if err != nil {
		return nil, err
	}
	rows := make([]domaingames.Row, 0, len(records))
	for i, rec := range records {
		id := nullable.CoerceInt(rec[0])
		if !id.Valid {
			return nil, fmt.Errorf("stagefile: games row %d: missing game_id", i+1)
		}
		seasonField := nullable.CoerceInt(rec[2])
		if !seasonField.Valid {
			seasonField = nullable.NewInt(season)
		}
		rows = append(rows, domaingames.Row{
			GameID:           id.Int,
			GameDate:         nullable.CoerceString(rec[1]),
			Season:           seasonField.Int,
			HomeTeamID:       nullable.CoerceInt(rec[3]),
			VisitorTeamID:    nullable.CoerceInt(rec[4]),
			HomeTeamScore:    nullable.CoerceInt(rec[5]),
			VisitorTeamScore: nullable.CoerceInt(rec[6]),
			Postseason:       rec[7] == "true",
			Status:           nullable.CoerceString(rec[8]),
		})
	}
	return rows, nil
}

func (s *Store) write(path string, header []string, records [][]string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("stagefile: create dir: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("stagefile: create %s: %w", path, err)
	}

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		f.Close()
		return fmt.Errorf("stagefile: write header: %w", err)
	}
	if err := w.WriteAll(records); err != nil {
		f.Close()
		return fmt.Errorf("stagefile: write rows: %w", err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return fmt.Errorf("stagefile: flush %s: %w", path, err)
	}
	return f.Close()
}

func (s *Store) read(path string, header []string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("stagefile: open %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = len(header)

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("stagefile: read %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("stagefile: %s has no header", path)
	}
	for i, col := range records[0] {
		if col != header[i] {
			return nil, fmt.Errorf("stagefile: %s column %d is %q, want %q", path, i, col, header[i])
		}
	}
	return records[1:], nil
}
