package notifier

import (
	"github.com/tienvillalobos/maxxavelada-backend/internal/match"
)

// Notifier defines a high-level interface for announcing business events.
// This decouples the rest of the application from the specific notification provider (e.g., Slack).
type Notifier interface {
	// For freshly recorded matches
	SendMatchRecorded(m *match.Match, dryRun bool) error
}
