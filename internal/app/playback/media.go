package playback

import "context"

// Media is an open audio resource for one verse.
type Media interface {
	// Play attempts to start playback. It returns ErrPermissionDenied
	// (possibly wrapped) when the platform refuses to start audio without a
	// prior gesture; any other error is a media failure.
	Play(ctx context.Context) error
	// Close releases the resource. Callbacks must not fire after Close.
	Close() error
}

// MediaCallbacks are attached to every media handle.
// Implementations must invoke them asynchronously, never from inside Open or
// Play.
type MediaCallbacks struct {
	OnEnded func()          // Natural end of media
	OnError func(err error) // Playback error after a successful start
}

// MediaOpener creates media resources addressed by URL.
type MediaOpener interface {
	Open(url string, cb MediaCallbacks) (Media, error)
}

// Platform describes host capabilities relevant to audio start.
type Platform interface {
	// RequiresGesture reports whether starting audio with sound needs a
	// prior qualifying user gesture.
	RequiresGesture() bool
}

// PlatformFunc adapts a function to Platform.
type PlatformFunc func() bool

// RequiresGesture implements Platform.
func (f PlatformFunc) RequiresGesture() bool { return f() }

// AudioContext is the shared audio output resource the gate wakes on grant.
type AudioContext interface {
	Suspended() bool
	Resume(ctx context.Context) error
	Close() error
}

// AudioContextFactory lazily creates the audio context.
type AudioContextFactory func() (AudioContext, error)
