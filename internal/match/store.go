package match

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/itbasis/go-clock"
)

const (
	// DefaultPerPage is the page size used when a caller does not ask for one.
	DefaultPerPage = 20
	// MaxPerPage bounds response size for paginated listings.
	MaxPerPage = 50
)

// New creates a new MatchStore backed by the given database.
// The clock supplies creation timestamps.
func New(db *sql.DB, clk clock.Clock) MatchStore {
	return &store{
		db:    db,
		clock: clk,
	}
}

// ClampPage normalizes a 1-indexed page number.
func ClampPage(page int) int {
	if page < 1 {
		return 1
	}
	return page
}

// ClampPerPage bounds a requested page size to [1, MaxPerPage].
func ClampPerPage(perPage int) int {
	if perPage < 1 {
		return 1
	}
	if perPage > MaxPerPage {
		return MaxPerPage
	}
	return perPage
}

// Create persists a validated record, assigning its id and creation time.
func (s *store) Create(record Record) (*Match, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	createdAt := s.clock.Now().UTC().Truncate(time.Second)
	res, err := s.db.Exec(`
		INSERT INTO matches (player1_name, player2_name, winner, score_p1, score_p2, stage, character_p1, character_p2, mode, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, record.Player1Name, record.Player2Name, string(record.Winner), record.ScoreP1, record.ScoreP2,
		record.Stage, record.CharacterP1, record.CharacterP2, record.Mode, createdAt.Unix())
	if err != nil {
		return nil, fmt.Errorf("failed to insert match: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to read inserted match id: %w", err)
	}

	m := &Match{
		ID:          id,
		Player1Name: record.Player1Name,
		Player2Name: record.Player2Name,
		Winner:      record.Winner,
		ScoreP1:     record.ScoreP1,
		ScoreP2:     record.ScoreP2,
		Stage:       record.Stage,
		CharacterP1: record.CharacterP1,
		CharacterP2: record.CharacterP2,
		Mode:        record.Mode,
		CreatedAt:   createdAt,
	}
	log.Info("Recorded match", "id", m.ID, "player1", m.Player1Name, "player2", m.Player2Name, "winner", m.WinnerName())
	return m, nil
}

// List returns one page of the match history, newest first, along with the
// total match count. Page numbers below 1 are clamped to 1 and per-page sizes
// are clamped to [1, MaxPerPage].
func (s *store) List(page, perPage int) ([]*Match, int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	page = ClampPage(page)
	perPage = ClampPerPage(perPage)

	total, err := s.countLocked()
	if err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * perPage
	rows, err := s.db.Query(`
		SELECT id, player1_name, player2_name, winner, score_p1, score_p2, stage, character_p1, character_p2, mode, created_at
		FROM matches
		ORDER BY created_at DESC, id DESC
		LIMIT ? OFFSET ?
	`, perPage, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query matches: %w", err)
	}
	defer rows.Close()

	matches, err := collectMatches(rows)
	if err != nil {
		return nil, 0, err
	}
	return matches, total, nil
}

// GetAllMatches retrieves the full match history, newest first.
func (s *store) GetAllMatches() ([]*Match, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(`
		SELECT id, player1_name, player2_name, winner, score_p1, score_p2, stage, character_p1, character_p2, mode, created_at
		FROM matches
		ORDER BY created_at DESC, id DESC
	`)
	if err != nil {
		log.Error("Failed to query all matches", "error", err)
		return nil, fmt.Errorf("failed to query all matches: %w", err)
	}
	defer rows.Close()

	return collectMatches(rows)
}

// Count returns the total number of stored matches.
func (s *store) Count() (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.countLocked()
}

func (s *store) countLocked() (int, error) {
	var total int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM matches").Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to count matches: %w", err)
	}
	return total, nil
}

// scanMatch is a helper function to scan a single match row.
func scanMatch(scanner interface{ Scan(...any) error }) (*Match, error) {
	var m Match
	var stage, characterP1, characterP2, mode sql.NullString
	var createdAt int64

	err := scanner.Scan(
		&m.ID, &m.Player1Name, &m.Player2Name, &m.Winner, &m.ScoreP1, &m.ScoreP2,
		&stage, &characterP1, &characterP2, &mode, &createdAt,
	)
	if err != nil {
		return nil, err
	}

	m.CreatedAt = time.Unix(createdAt, 0).UTC()
	m.Stage = nullableString(stage)
	m.CharacterP1 = nullableString(characterP1)
	m.CharacterP2 = nullableString(characterP2)
	m.Mode = nullableString(mode)
	return &m, nil
}

func collectMatches(rows *sql.Rows) ([]*Match, error) {
	var matches []*Match
	for rows.Next() {
		m, err := scanMatch(rows)
		if err != nil {
			log.Error("Failed to scan match row", "error", err)
			continue
		}
		matches = append(matches, m)
	}
	return matches, nil
}

func nullableString(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	return &ns.String
}
