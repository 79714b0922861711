// Package view provides the reader's view state: which chapter is shown and
// which verse should be brought into sight.
package view

// Phase represents the chapter loading phase.
type Phase int

const (
	PhaseEmpty   Phase = iota // No chapter selected yet
	PhaseLoading              // Chapter fetch in flight
	PhaseReady                // Chapter loaded
	PhaseFailed               // Last fetch failed
)

// String returns the string representation of the phase.
func (p Phase) String() string {
	switch p {
	case PhaseEmpty:
		return "empty"
	case PhaseLoading:
		return "loading"
	case PhaseReady:
		return "ready"
	case PhaseFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Target addresses a verse by chapter and in-chapter number, as stored in a
// bookmark.
type Target struct {
	Chapter         int
	NumberInChapter int
}

// Snapshot is a copy of the view state.
type Snapshot struct {
	SessionID     string
	Phase         Phase
	Chapter       int     // Selected chapter (0 = none)
	FocusVerse    int     // Global number of the verse to bring into sight (0 = none)
	PendingScroll *Target // Target waiting for its chapter to load
	Error         string  // User-facing message for PhaseFailed
}
