package notifier

import (
	"sync"

	"github.com/tienvillalobos/maxxavelada-backend/internal/match"
)

// Mock is a mock implementation of the Notifier interface for testing.
// It is safe for concurrent use.
type Mock struct {
	mu sync.Mutex

	// Spy, consulted when set
	SendMatchRecordedFunc func(m *match.Match, dryRun bool) error

	// Call records
	SendMatchRecordedCalls []struct {
		Match  *match.Match
		DryRun bool
	}
}

// NewMock creates a new mock instance.
func NewMock() *Mock {
	return &Mock{}
}

// Reset clears all call records.
func (n *Mock) Reset() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.SendMatchRecordedCalls = nil
}

func (n *Mock) SendMatchRecorded(m *match.Match, dryRun bool) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.SendMatchRecordedCalls = append(n.SendMatchRecordedCalls, struct {
		Match  *match.Match
		DryRun bool
	}{m, dryRun})
	if n.SendMatchRecordedFunc != nil {
		return n.SendMatchRecordedFunc(m, dryRun)
	}
	return nil
}
