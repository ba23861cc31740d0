package match

import (
	"database/sql"
	"sync"
	"time"

	"github.com/itbasis/go-clock"
)

// store handles all database operations for matches.
type store struct {
	db    *sql.DB
	clock clock.Clock
	mu    sync.RWMutex
}

// Winner identifies which side of a match won.
type Winner string

const (
	WinnerP1 Winner = "p1"
	WinnerP2 Winner = "p2"
)

// Match is a recorded contest between two players, as stored.
type Match struct {
	ID          int64     `json:"id"`
	Player1Name string    `json:"player1_name"`
	Player2Name string    `json:"player2_name"`
	Winner      Winner    `json:"winner"`
	ScoreP1     int       `json:"score_p1"`
	ScoreP2     int       `json:"score_p2"`
	Stage       *string   `json:"stage"`
	CharacterP1 *string   `json:"character_p1"`
	CharacterP2 *string   `json:"character_p2"`
	Mode        *string   `json:"mode"`
	CreatedAt   time.Time `json:"created_at"`
}

// WinnerName resolves the winner marker to the corresponding player name.
func (m *Match) WinnerName() string {
	if m.Winner == WinnerP2 {
		return m.Player2Name
	}
	return m.Player1Name
}

// Record is a validated, normalized match ready to be persisted.
type Record struct {
	Player1Name string
	Player2Name string
	Winner      Winner
	ScoreP1     int
	ScoreP2     int
	Stage       *string
	CharacterP1 *string
	CharacterP2 *string
	Mode        *string
}
