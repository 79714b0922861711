// Package playback provides the recitation playback controller: per-verse
// audio played in chapter order, gated on a qualifying user gesture.
package playback

// State represents the playback state.
type State int

const (
	StateIdle              State = iota // Nothing playing
	StateStarting                       // Media created, start attempt in flight
	StatePlaying                        // Verse audio is playing
	StatePendingPermission              // Start rejected for lack of a gesture; handle parked
)

// String returns the string representation of the state.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateStarting:
		return "starting"
	case StatePlaying:
		return "playing"
	case StatePendingPermission:
		return "pending_permission"
	default:
		return "unknown"
	}
}

// IsActive returns true if a verse is the active one (playing or waiting).
func (s State) IsActive() bool {
	return s == StateStarting || s == StatePlaying || s == StatePendingPermission
}

// Session is a snapshot of the playback session.
// Verse numbers are zero when unset.
type Session struct {
	State             State
	ChapterNumber     int
	ActiveVerse       int
	PendingVerse      int
	PermissionGranted bool
	MediaOpen         bool
}
