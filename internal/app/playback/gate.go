package playback

import (
	"context"

	"github.com/cockroachdb/errors"
	zlog "github.com/rs/zerolog/log"
)

// Gesture is a kind of user interaction signal.
type Gesture int

const (
	GestureClick      Gesture = iota // Pointer click
	GestureKeyPress                  // Key press
	GestureTouchStart                // Touch start (never qualifies)
	GestureTouchEnd                  // Touch release
	GestureScroll                    // Scroll (never qualifies)
)

// String returns the string representation of the gesture.
func (g Gesture) String() string {
	switch g {
	case GestureClick:
		return "click"
	case GestureKeyPress:
		return "keypress"
	case GestureTouchStart:
		return "touchstart"
	case GestureTouchEnd:
		return "touchend"
	case GestureScroll:
		return "scroll"
	default:
		return "unknown"
	}
}

// ParseGesture parses a gesture name as produced by Gesture.String.
func ParseGesture(s string) (Gesture, error) {
	for g := GestureClick; g <= GestureScroll; g++ {
		if g.String() == s {
			return g, nil
		}
	}
	return 0, errors.Newf("unknown gesture: %q", s)
}

// Interaction is a user interaction signal.
type Interaction struct {
	Gesture     Gesture
	Interactive bool // Target is an interactive control
}

// Qualifies reports whether the interaction authorizes audio with sound.
// Clicks and key presses always qualify; a touch qualifies on release when
// it targets an interactive control.
func (i Interaction) Qualifies() bool {
	switch i.Gesture {
	case GestureClick, GestureKeyPress:
		return true
	case GestureTouchEnd:
		return i.Interactive
	default:
		return false
	}
}

// Gate tracks whether audio may start, and owns the audio context.
// Gate is not safe for concurrent use; the Controller serializes access.
type Gate struct {
	platform   Platform
	newContext AudioContextFactory

	granted  bool
	audioCtx AudioContext
}

// NewGate creates a permission gate. newContext may be nil when the host has
// no audio context to manage.
func NewGate(platform Platform, newContext AudioContextFactory) *Gate {
	if platform == nil {
		platform = PlatformFunc(func() bool { return true })
	}
	return &Gate{
		platform:   platform,
		newContext: newContext,
	}
}

// HasPermission reports whether a qualifying gesture has been observed.
func (g *Gate) HasPermission() bool {
	return g.granted
}

// Allowed reports whether audio may start now.
func (g *Gate) Allowed() bool {
	return g.granted || !g.platform.RequiresGesture()
}

// Signal records an interaction. It returns true when the interaction
// qualifies; granted is true only on the first qualifying interaction.
// Every qualifying interaction wakes a suspended audio context.
func (g *Gate) Signal(ctx context.Context, in Interaction) (qualifies, granted bool) {
	if !in.Qualifies() {
		return false, false
	}

	if !g.granted {
		g.granted = true
		granted = true
		zlog.Debug().Msgf("playback: permission granted: gesture=%s", in.Gesture)
	}

	if g.audioCtx == nil && g.newContext != nil {
		ac, err := g.newContext()
		if err != nil {
			zlog.Warn().Msgf("playback: failed to create audio context: %v", err)
		} else {
			g.audioCtx = ac
		}
	}

	if g.audioCtx != nil && g.audioCtx.Suspended() {
		if err := g.audioCtx.Resume(ctx); err != nil {
			zlog.Warn().Msgf("playback: failed to resume audio context: %v", err)
		}
	}

	return true, granted
}

// Close releases the audio context, if any.
func (g *Gate) Close() error {
	if g.audioCtx == nil {
		return nil
	}
	err := g.audioCtx.Close()
	g.audioCtx = nil
	return errors.Wrap(err, "failed to close audio context")
}
