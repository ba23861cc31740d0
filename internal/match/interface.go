package match

// MatchStore defines the interface for interacting with the match history.
// History is append-only: there is no update or delete.
type MatchStore interface {
	Create(record Record) (*Match, error)
	List(page, perPage int) ([]*Match, int, error)
	GetAllMatches() ([]*Match, error)
	Count() (int, error)
}
