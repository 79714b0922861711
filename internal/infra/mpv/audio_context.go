package mpv

import (
	"context"
	"os/exec"
	"sync"

	"github.com/cockroachdb/errors"
	zlog "github.com/rs/zerolog/log"

	"github.com/osa030/tilawah/internal/app/playback"
)

// AudioContext tracks the availability of the audio output. It starts
// suspended and is resumed on the first qualifying gesture.
type AudioContext struct {
	mu        sync.Mutex
	binary    string
	suspended bool
	closed    bool
}

// NewAudioContextFactory returns a factory that verifies the player binary is
// installed before handing out a context.
func NewAudioContextFactory(binary string) playback.AudioContextFactory {
	if binary == "" {
		binary = DefaultBinary
	}
	return func() (playback.AudioContext, error) {
		path, err := exec.LookPath(binary)
		if err != nil {
			return nil, errors.Wrapf(err, "player %s not found", binary)
		}
		zlog.Debug().Msgf("mpv: audio context created: player=%s", path)
		return &AudioContext{binary: path, suspended: true}, nil
	}
}

// Suspended implements playback.AudioContext.
func (a *AudioContext) Suspended() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.suspended
}

// Resume implements playback.AudioContext.
func (a *AudioContext) Resume(ctx context.Context) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.closed {
		return errors.New("audio context is closed")
	}
	a.suspended = false
	return nil
}

// Close implements playback.AudioContext.
func (a *AudioContext) Close() error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.closed = true
	a.suspended = true
	return nil
}
