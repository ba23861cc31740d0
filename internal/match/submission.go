package match

import (
	"errors"
	"fmt"
	"strings"
)

// Submission carries an unvalidated match as received from a client.
// Score pointers distinguish an absent value from an explicit zero.
type Submission struct {
	Player1Name string `json:"player1_name"`
	Player2Name string `json:"player2_name"`
	Winner      string `json:"winner"`
	ScoreP1     *int   `json:"score_p1"`
	ScoreP2     *int   `json:"score_p2"`
	Stage       string `json:"stage"`
	CharacterP1 string `json:"character_p1"`
	CharacterP2 string `json:"character_p2"`
	Mode        string `json:"mode"`
}

// ValidationError reports why a submission was rejected.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// IsValidationError reports whether err was caused by a rejected submission.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// Validate normalizes a submission into a Record or rejects it.
// Player and character names are trimmed and uppercased, optional fields
// collapse to nil when empty, and absent scores default to zero. Mode is
// stored as given, without checking it against the known values.
func (s Submission) Validate() (Record, error) {
	p1 := strings.ToUpper(strings.TrimSpace(s.Player1Name))
	p2 := strings.ToUpper(strings.TrimSpace(s.Player2Name))
	if p1 == "" || p2 == "" {
		return Record{}, &ValidationError{Reason: "player1_name and player2_name are required"}
	}

	winner := Winner(s.Winner)
	if winner != WinnerP1 && winner != WinnerP2 {
		return Record{}, &ValidationError{Reason: "winner must be 'p1' or 'p2'"}
	}

	scoreP1, err := scoreValue(s.ScoreP1, "score_p1")
	if err != nil {
		return Record{}, err
	}
	scoreP2, err := scoreValue(s.ScoreP2, "score_p2")
	if err != nil {
		return Record{}, err
	}

	return Record{
		Player1Name: p1,
		Player2Name: p2,
		Winner:      winner,
		ScoreP1:     scoreP1,
		ScoreP2:     scoreP2,
		Stage:       optionalField(s.Stage, false),
		CharacterP1: optionalField(s.CharacterP1, true),
		CharacterP2: optionalField(s.CharacterP2, true),
		Mode:        optionalField(s.Mode, false),
	}, nil
}

func scoreValue(score *int, field string) (int, error) {
	if score == nil {
		return 0, nil
	}
	if *score < 0 {
		return 0, &ValidationError{Reason: fmt.Sprintf("%s must not be negative", field)}
	}
	return *score, nil
}

// optionalField trims an optional value and collapses it to nil when empty.
func optionalField(value string, uppercase bool) *string {
	v := strings.TrimSpace(value)
	if v == "" {
		return nil
	}
	if uppercase {
		v = strings.ToUpper(v)
	}
	return &v
}
