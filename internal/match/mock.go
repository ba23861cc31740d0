package match

import "sync"

// MockStore is a mock implementation of the MatchStore interface for testing.
// It is safe for concurrent use.
type MockStore struct {
	mu sync.Mutex

	// Spies for method calls
	CreateFunc        func(record Record) (*Match, error)
	ListFunc          func(page, perPage int) ([]*Match, int, error)
	GetAllMatchesFunc func() ([]*Match, error)
	CountFunc         func() (int, error)

	// Call records
	CreateCalls []Record
	ListCalls   []struct {
		Page    int
		PerPage int
	}
}

// NewMock creates a new mock instance.
func NewMock() *MockStore {
	return &MockStore{}
}

// Reset clears all call records.
func (m *MockStore) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CreateCalls = nil
	m.ListCalls = nil
}

func (m *MockStore) Create(record Record) (*Match, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CreateCalls = append(m.CreateCalls, record)
	if m.CreateFunc != nil {
		return m.CreateFunc(record)
	}
	return nil, nil
}

func (m *MockStore) List(page, perPage int) ([]*Match, int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ListCalls = append(m.ListCalls, struct {
		Page    int
		PerPage int
	}{page, perPage})
	if m.ListFunc != nil {
		return m.ListFunc(page, perPage)
	}
	return nil, 0, nil
}

func (m *MockStore) GetAllMatches() ([]*Match, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetAllMatchesFunc != nil {
		return m.GetAllMatchesFunc()
	}
	return nil, nil
}

func (m *MockStore) Count() (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.CountFunc != nil {
		return m.CountFunc()
	}
	return 0, nil
}
