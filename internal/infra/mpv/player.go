// Package mpv plays verse audio by running an external command-line player.
package mpv

import (
	"context"
	"os"
	"os/exec"
	"sync"

	"github.com/cockroachdb/errors"
	zlog "github.com/rs/zerolog/log"

	"github.com/osa030/tilawah/internal/app/playback"
)

// DefaultBinary is the player executable.
const DefaultBinary = "mpv"

// DefaultArgs are passed before the media URL.
var DefaultArgs = []string{"--no-video", "--really-quiet"}

// Config represents player configuration.
type Config struct {
	Binary string
	Args   []string
}

// Player opens media handles backed by player processes.
type Player struct {
	binary string
	args   []string
}

// New creates a new player.
func New(cfg Config) *Player {
	if cfg.Binary == "" {
		cfg.Binary = DefaultBinary
	}
	if cfg.Args == nil {
		cfg.Args = DefaultArgs
	}
	return &Player{
		binary: cfg.Binary,
		args:   cfg.Args,
	}
}

// Open implements playback.MediaOpener. No process runs until Play.
func (p *Player) Open(url string, cb playback.MediaCallbacks) (playback.Media, error) {
	if url == "" {
		return nil, errors.New("media url is required")
	}
	args := append(append([]string(nil), p.args...), url)
	return &media{
		binary: p.binary,
		args:   args,
		url:    url,
		cb:     cb,
	}, nil
}

// media is one player process.
type media struct {
	mu     sync.Mutex
	binary string
	args   []string
	url    string
	cb     playback.MediaCallbacks

	cmd    *exec.Cmd
	closed bool
	done   chan struct{}
}

// Play starts the player process. Completion is reported through the
// callbacks from a separate goroutine.
func (m *media) Play(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return errors.New("media is closed")
	}
	if m.cmd != nil {
		// Already running
		return nil
	}

	// The process outlives the request context; Close stops it.
	cmd := exec.Command(m.binary, m.args...)
	if err := cmd.Start(); err != nil {
		return errors.Wrapf(err, "failed to start %s", m.binary)
	}
	m.cmd = cmd
	m.done = make(chan struct{})
	zlog.Debug().Msgf("mpv: started: pid=%d url=%s", cmd.Process.Pid, m.url)

	go m.wait(cmd, m.done)
	return nil
}

// wait reports the exit of cmd unless the media was closed.
func (m *media) wait(cmd *exec.Cmd, done chan struct{}) {
	err := cmd.Wait()
	close(done)

	m.mu.Lock()
	closed := m.closed
	m.mu.Unlock()
	if closed {
		return
	}

	if err != nil {
		zlog.Warn().Msgf("mpv: player exited with error: url=%s err=%v", m.url, err)
		if m.cb.OnError != nil {
			m.cb.OnError(errors.Wrap(err, "player failed"))
		}
		return
	}
	zlog.Debug().Msgf("mpv: finished: url=%s", m.url)
	if m.cb.OnEnded != nil {
		m.cb.OnEnded()
	}
}

// Close stops the player process and waits for it to exit.
func (m *media) Close() error {
	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return nil
	}
	m.closed = true
	cmd, done := m.cmd, m.done
	m.mu.Unlock()

	if cmd == nil {
		return nil
	}
	select {
	case <-done:
		return nil
	default:
	}
	// The process may exit between the check above and Kill.
	if err := cmd.Process.Kill(); err != nil && !errors.Is(err, os.ErrProcessDone) {
		return errors.Wrap(err, "failed to stop player")
	}
	<-done
	return nil
}
