package playback

// EventType represents a playback event type.
type EventType int

const (
	EventStarted           EventType = iota // Verse started playing
	EventStopped                            // Stopped by the user (active verse retapped or Stop)
	EventEnded                              // Verse audio reached its natural end
	EventPendingPermission                  // Start deferred until a qualifying gesture
	EventFailed                             // Start or playback failed
	EventAdvanceScheduled                   // Next verse will start after the advance delay
	EventSequenceComplete                   // Last verse of the chapter finished
	EventPermissionGranted                  // First qualifying gesture observed
	EventReset                              // Session reset (chapter changed or admin reset)
)

// String returns the string representation of the event type.
func (e EventType) String() string {
	switch e {
	case EventStarted:
		return "started"
	case EventStopped:
		return "stopped"
	case EventEnded:
		return "ended"
	case EventPendingPermission:
		return "pending_permission"
	case EventFailed:
		return "failed"
	case EventAdvanceScheduled:
		return "advance_scheduled"
	case EventSequenceComplete:
		return "sequence_complete"
	case EventPermissionGranted:
		return "permission_granted"
	case EventReset:
		return "reset"
	default:
		return "unknown"
	}
}

// Event represents a playback event.
type Event struct {
	Type  EventType
	Verse int   // Verse the event refers to (0 when not applicable)
	State State // Playback state after the event
	Focus bool  // Set on a resumed start: the view should bring the verse into sight
	Err   error // Cause for EventFailed
}
