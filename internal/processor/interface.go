package processor

import (
	"github.com/glzpr1598/burn-to-win/internal/club"
	"github.com/glzpr1598/burn-to-win/internal/match"
	"github.com/glzpr1598/burn-to-win/internal/notifier"
)

// MemberSource provides the roster rows the digest aggregates over.
type MemberSource interface {
	ListActive() ([]club.Member, error)
}

// MatchSource provides the completed match records for the digest.
type MatchSource interface {
	ListCompleted() ([]match.Record, error)
}

// Notifier defines the notification operations required by the processor.
// This is now an alias for the main notifier interface for decoupling.
type Notifier interface {
	notifier.Notifier
}
