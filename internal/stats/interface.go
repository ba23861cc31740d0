package stats

import "github.com/tienvillalobos/maxxavelada-backend/internal/match"

// MatchSource defines the store operations required by the engine.
type MatchSource interface {
	GetAllMatches() ([]*match.Match, error)
	Count() (int, error)
}
