package playback

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/jonboulle/clockwork"
	zlog "github.com/rs/zerolog/log"

	"github.com/osa030/tilawah/internal/domain/verse"
)

// Errors
var (
	ErrPermissionDenied = errors.New("audio start requires a user gesture")
	ErrMedia            = errors.New("media error")
	ErrNoChapter        = errors.New("no chapter loaded")
	ErrVerseNotFound    = errors.New("verse not in active chapter")
	ErrClosed           = errors.New("controller closed")
)

// DefaultAdvanceDelay is the pause between consecutive recitations.
const DefaultAdvanceDelay = time.Second

// Config holds controller configuration.
type Config struct {
	AudioBaseURL string        // Verse audio lives at <AudioBaseURL>/<global verse number>.mp3
	AdvanceDelay time.Duration // Delay before auto-advancing to the next verse
	Clock        clockwork.Clock
}

// Controller plays verse audio one at a time and auto-advances through the
// active chapter. All state transitions are serialized by mu, including the
// release-old, create-new, attempt-start sequence of a play request.
type Controller struct {
	mu sync.Mutex

	config Config
	clock  clockwork.Clock
	opener MediaOpener
	gate   *Gate

	// Active chapter
	chapter *verse.Chapter

	// Session state
	state   State
	active  int // Active verse (0 = none)
	pending int // Verse parked waiting for permission (0 = none)

	// Current media handle
	media    Media
	handleID uint64 // Identifies media; callbacks from older handles are ignored
	lastID   uint64

	// Scheduled auto-advance
	advanceTimer clockwork.Timer
	advanceGen   uint64 // Bumped on every supersession; a fired timer with an old gen is a no-op

	// Events
	eventCh chan Event

	// Context for auto-advance starts
	ctx    context.Context
	cancel context.CancelFunc
	closed bool
}

// PlayOption configures a single Play call.
type PlayOption func(*playOptions)

type playOptions struct {
	gesture *Interaction
}

// WithGesture marks the play request as caused by a user interaction.
// A qualifying interaction grants permission before the start attempt.
func WithGesture(in Interaction) PlayOption {
	return func(o *playOptions) {
		o.gesture = &in
	}
}

// NewController creates a new playback controller.
func NewController(config Config, opener MediaOpener, gate *Gate) *Controller {
	if config.AdvanceDelay <= 0 {
		config.AdvanceDelay = DefaultAdvanceDelay
	}
	if config.Clock == nil {
		config.Clock = clockwork.NewRealClock()
	}
	config.AudioBaseURL = strings.TrimRight(config.AudioBaseURL, "/")
	if gate == nil {
		gate = NewGate(nil, nil)
	}

	ctx, cancel := context.WithCancel(context.Background())
	return &Controller{
		config:  config,
		clock:   config.Clock,
		opener:  opener,
		gate:    gate,
		state:   StateIdle,
		eventCh: make(chan Event, 32),
		ctx:     ctx,
		cancel:  cancel,
	}
}

// Events returns the event channel. It is closed by Close.
func (c *Controller) Events() <-chan Event {
	return c.eventCh
}

// AudioURL returns the recitation URL of a verse.
func (c *Controller) AudioURL(verseNumber int) string {
	return fmt.Sprintf("%s/%d.mp3", c.config.AudioBaseURL, verseNumber)
}

// SetChapter installs the chapter whose verse order drives auto-advance.
// Any playback, parked verse and scheduled advance are discarded first.
func (c *Controller) SetChapter(ch *verse.Chapter) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}

	c.resetLocked()
	c.chapter = ch

	chapterNumber := 0
	if ch != nil {
		chapterNumber = ch.Number
	}
	zlog.Debug().Msgf("playback: chapter set: chapter=%d", chapterNumber)
}

// Reset forces the session back to idle without changing the chapter.
func (c *Controller) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}
	c.resetLocked()
}

// Play starts the given verse. Playing the active verse again stops it
// instead. A start refused for lack of permission is not an error: the verse
// is parked until the next qualifying gesture.
func (c *Controller) Play(ctx context.Context, verseNumber int, opts ...PlayOption) error {
	var o playOptions
	for _, opt := range opts {
		opt(&o)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return ErrClosed
	}

	if o.gesture != nil {
		// The play request supersedes whatever is parked, so the gate is
		// updated without resuming.
		if _, granted := c.gate.Signal(ctx, *o.gesture); granted {
			c.sendEventLocked(Event{Type: EventPermissionGranted, State: c.state})
		}
	}

	return c.playLocked(ctx, verseNumber)
}

// Stop stops playback, releases the media handle and drops any parked verse.
func (c *Controller) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}

	stopped := c.active
	c.cancelAdvanceLocked()
	c.releaseMediaLocked()
	c.active = 0
	c.pending = 0
	c.state = StateIdle

	if stopped != 0 {
		c.sendEventLocked(Event{
			Type:  EventStopped,
			Verse: stopped,
			State: c.state,
		})
	}
}

// Interact feeds a user interaction to the permission gate. A qualifying
// interaction while a verse is parked resumes that verse's existing handle.
// Returns true if the interaction qualified.
func (c *Controller) Interact(ctx context.Context, in Interaction) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return false
	}

	qualifies, granted := c.gate.Signal(ctx, in)
	if !qualifies {
		return false
	}
	if granted {
		c.sendEventLocked(Event{Type: EventPermissionGranted, State: c.state})
	}

	if c.pending != 0 && c.media != nil {
		c.resumeLocked(ctx)
	}
	return true
}

// HasPermission reports whether a qualifying gesture has been observed.
func (c *Controller) HasPermission() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.gate.HasPermission()
}

// GetState returns the current playback state.
func (c *Controller) GetState() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Session returns a snapshot of the playback session.
func (c *Controller) Session() Session {
	c.mu.Lock()
	defer c.mu.Unlock()

	s := Session{
		State:             c.state,
		ActiveVerse:       c.active,
		PendingVerse:      c.pending,
		PermissionGranted: c.gate.HasPermission(),
		MediaOpen:         c.media != nil,
	}
	if c.chapter != nil {
		s.ChapterNumber = c.chapter.Number
	}
	return s
}

// Close stops playback, releases the audio context and closes the event
// channel.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}

	c.cancelAdvanceLocked()
	c.releaseMediaLocked()
	c.active = 0
	c.pending = 0
	c.state = StateIdle
	c.chapter = nil

	if err := c.gate.Close(); err != nil {
		zlog.Warn().Msgf("playback: %v", err)
	}

	c.closed = true
	c.cancel()
	close(c.eventCh)
}

// playLocked handles a play request.
// Must be called with lock held.
func (c *Controller) playLocked(ctx context.Context, verseNumber int) error {
	c.cancelAdvanceLocked()

	if c.chapter == nil {
		return ErrNoChapter
	}
	v, ok := c.chapter.Verse(verseNumber)
	if !ok {
		return errors.Wrapf(ErrVerseNotFound, "verse %d, chapter %d", verseNumber, c.chapter.Number)
	}

	// Retapping the active verse means stop
	if c.active == verseNumber && c.state.IsActive() {
		c.releaseMediaLocked()
		c.active = 0
		c.pending = 0
		c.state = StateIdle
		c.sendEventLocked(Event{
			Type:  EventStopped,
			Verse: verseNumber,
			State: c.state,
		})
		return nil
	}

	// Release the previous handle before creating the next one
	c.releaseMediaLocked()
	c.state = StateStarting

	c.lastID++
	id := c.lastID
	url := c.AudioURL(v.Number)
	zlog.Debug().Msgf("playback: opening media: verse=%d url=%s", v.Number, url)

	m, err := c.opener.Open(url, MediaCallbacks{
		OnEnded: func() { c.onEnded(id, v.Number) },
		OnError: func(err error) { c.onError(id, v.Number, err) },
	})
	if err != nil {
		return c.failLocked(v.Number, err)
	}
	c.media = m
	c.handleID = id

	return c.startLocked(ctx, v.Number, false)
}

// startLocked attempts to start the current handle.
// Must be called with lock held.
func (c *Controller) startLocked(ctx context.Context, verseNumber int, resumed bool) error {
	err := c.attemptLocked(ctx)

	switch {
	case err == nil:
		c.state = StatePlaying
		c.active = verseNumber
		c.pending = 0
		zlog.Info().Msgf("playback: playing: verse=%d resumed=%v", verseNumber, resumed)
		c.sendEventLocked(Event{
			Type:  EventStarted,
			Verse: verseNumber,
			State: c.state,
			Focus: resumed,
		})
		return nil

	case errors.Is(err, ErrPermissionDenied) && !resumed:
		// Keep the handle so the same resource can be started later
		c.state = StatePendingPermission
		c.active = verseNumber
		c.pending = verseNumber
		zlog.Info().Msgf("playback: waiting for permission: verse=%d", verseNumber)
		c.sendEventLocked(Event{
			Type:  EventPendingPermission,
			Verse: verseNumber,
			State: c.state,
		})
		return nil

	default:
		return c.failLocked(verseNumber, err)
	}
}

// attemptLocked starts the current handle if the gate allows it.
// Must be called with lock held.
func (c *Controller) attemptLocked(ctx context.Context) error {
	if !c.gate.Allowed() {
		return ErrPermissionDenied
	}
	return c.media.Play(ctx)
}

// resumeLocked retries the parked verse on its existing handle, once.
// Must be called with lock held.
func (c *Controller) resumeLocked(ctx context.Context) {
	verseNumber := c.pending
	zlog.Debug().Msgf("playback: resuming parked verse: verse=%d", verseNumber)
	c.state = StateStarting
	_ = c.startLocked(ctx, verseNumber, true)
}

// failLocked releases the handle and returns to idle after a failed start.
// Must be called with lock held.
func (c *Controller) failLocked(verseNumber int, cause error) error {
	c.releaseMediaLocked()
	c.active = 0
	c.pending = 0
	c.state = StateIdle

	err := errors.Wrapf(errors.Mark(cause, ErrMedia), "failed to play verse %d", verseNumber)
	zlog.Warn().Msgf("playback: %v", err)
	c.sendEventLocked(Event{
		Type:  EventFailed,
		Verse: verseNumber,
		State: c.state,
		Err:   err,
	})
	return err
}

// onEnded is called by a media handle at natural end of media.
func (c *Controller) onEnded(id uint64, verseNumber int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed || id != c.handleID || c.media == nil || c.state != StatePlaying {
		zlog.Debug().Msgf("playback: ignoring end of stale media: verse=%d", verseNumber)
		return
	}

	c.releaseMediaLocked()
	c.active = 0
	c.state = StateIdle
	c.sendEventLocked(Event{
		Type:  EventEnded,
		Verse: verseNumber,
		State: c.state,
	})

	c.advanceLocked(verseNumber)
}

// onError is called by a media handle when playback fails after starting.
func (c *Controller) onError(id uint64, verseNumber int, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed || id != c.handleID || c.media == nil {
		return
	}
	_ = c.failLocked(verseNumber, err)
}

// advanceLocked schedules the verse after from, or ends the sequence.
// Must be called with lock held.
func (c *Controller) advanceLocked(from int) {
	if c.chapter == nil {
		return
	}

	next, ok := c.chapter.Next(from)
	if !ok {
		zlog.Info().Msgf("playback: sequence complete: chapter=%d last_verse=%d", c.chapter.Number, from)
		c.sendEventLocked(Event{
			Type:  EventSequenceComplete,
			Verse: from,
			State: c.state,
		})
		return
	}

	c.cancelAdvanceLocked()
	gen := c.advanceGen
	nextNumber := next.Number

	c.advanceTimer = c.clock.AfterFunc(c.config.AdvanceDelay, func() {
		c.mu.Lock()
		defer c.mu.Unlock()

		if c.closed || gen != c.advanceGen {
			return
		}
		c.advanceTimer = nil

		if err := c.playLocked(c.ctx, nextNumber); err != nil {
			zlog.Debug().Msgf("playback: auto-advance: %v", err)
		}
	})

	c.sendEventLocked(Event{
		Type:  EventAdvanceScheduled,
		Verse: nextNumber,
		State: c.state,
	})
}

// cancelAdvanceLocked stops a scheduled advance and invalidates one that
// already fired but has not yet acquired the lock.
// Must be called with lock held.
func (c *Controller) cancelAdvanceLocked() {
	if c.advanceTimer != nil {
		c.advanceTimer.Stop()
		c.advanceTimer = nil
	}
	c.advanceGen++
}

// releaseMediaLocked closes the current handle, if any.
// Must be called with lock held.
func (c *Controller) releaseMediaLocked() {
	if c.media == nil {
		return
	}
	if err := c.media.Close(); err != nil {
		zlog.Debug().Msgf("playback: failed to close media: %v", err)
	}
	c.media = nil
	c.handleID = 0
}

// resetLocked returns the session to idle.
// Must be called with lock held.
func (c *Controller) resetLocked() {
	c.cancelAdvanceLocked()
	c.releaseMediaLocked()
	c.active = 0
	c.pending = 0
	c.state = StateIdle
	c.sendEventLocked(Event{Type: EventReset, State: c.state})
}

// sendEventLocked sends an event without blocking.
// Must be called with lock held.
func (c *Controller) sendEventLocked(e Event) {
	if c.closed {
		return
	}
	select {
	case c.eventCh <- e:
	case <-c.ctx.Done():
	default:
		zlog.Warn().Msgf("playback: event channel full, dropping event: type=%s verse=%d", e.Type, e.Verse)
	}
}
