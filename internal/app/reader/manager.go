// Package reader provides the reader session: chapter navigation, recitation
// playback, bookmarks, sharing and the notices they raise.
package reader

import (
	"context"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	zlog "github.com/rs/zerolog/log"

	"github.com/osa030/tilawah/internal/app/bookmarks"
	"github.com/osa030/tilawah/internal/app/notice"
	"github.com/osa030/tilawah/internal/app/playback"
	"github.com/osa030/tilawah/internal/app/provider"
	"github.com/osa030/tilawah/internal/app/reader/view"
	"github.com/osa030/tilawah/internal/app/share"
	"github.com/osa030/tilawah/internal/domain/bookmark"
	"github.com/osa030/tilawah/internal/domain/verse"
	"github.com/osa030/tilawah/internal/infra/config"
)

var (
	ErrNoChapter     = errors.New("no chapter loaded")
	ErrChapterBounds = errors.New("no adjacent chapter")
	ErrVerseNotFound = errors.New("verse not in current chapter")
)

// Deps are the collaborators of a reader session.
type Deps struct {
	Provider  provider.Provider
	Opener    playback.MediaOpener
	Gate      *playback.Gate
	Bookmarks *bookmarks.Service
	Sharer    *share.Sharer
	Clock     clockwork.Clock
}

// Manager manages the reader session.
type Manager struct {
	mu sync.RWMutex

	// Configuration
	config *config.Config

	// Components
	view      *view.Manager
	provider  provider.Provider
	playback  *playback.Controller
	bookmarks *bookmarks.Service
	sharer    *share.Sharer
	notices   *notice.Manager

	// Loaded data
	chapter  *verse.Chapter
	chapters []verse.ChapterInfo
	loadGen  uint64 // Bumped by every SelectChapter; stale loads are discarded

	started   bool
	loopDone  chan struct{}
	done      chan struct{}
	closeOnce sync.Once
}

// NewManager creates a new reader session manager.
func NewManager(cfg *config.Config, deps Deps) (*Manager, error) {
	if deps.Provider == nil {
		return nil, errors.New("verse provider is required")
	}
	if deps.Opener == nil {
		return nil, errors.New("media opener is required")
	}
	if deps.Bookmarks == nil {
		return nil, errors.New("bookmark service is required")
	}
	if deps.Sharer == nil {
		return nil, errors.New("sharer is required")
	}
	if deps.Clock == nil {
		deps.Clock = clockwork.NewRealClock()
	}

	sessionID := uuid.New().String()

	m := &Manager{
		config:   cfg,
		view:     view.New(sessionID),
		provider: deps.Provider,
		playback: playback.NewController(playback.Config{
			AudioBaseURL: cfg.Reader.AudioBaseURL,
			AdvanceDelay: cfg.Reader.AdvanceDelay(),
			Clock:        deps.Clock,
		}, deps.Opener, deps.Gate),
		bookmarks: deps.Bookmarks,
		sharer:    deps.Sharer,
		notices:   notice.NewManager(deps.Clock, cfg.Reader.NoticeDuration()),
		loopDone:  make(chan struct{}),
		done:      make(chan struct{}),
	}

	zlog.Debug().Msgf("reader: session created: session_id=%s", sessionID)
	return m, nil
}

// Start starts the playback event loop and loads the start chapter.
// A failed initial load leaves the session running with the view failed.
func (m *Manager) Start(ctx context.Context) error {
	m.mu.Lock()
	if m.started {
		m.mu.Unlock()
		return nil
	}
	m.started = true
	m.mu.Unlock()

	go m.playbackLoop(m.playback.Events())

	start := m.config.Reader.StartChapter
	if _, err := m.SelectChapter(ctx, start); err != nil {
		zlog.Warn().Msgf("reader: failed to load start chapter: chapter=%d err=%v", start, err)
	}
	return nil
}

// Done returns a channel that is closed when the session is closed.
func (m *Manager) Done() <-chan struct{} {
	return m.done
}

// ListChapters returns the chapters whose English name or its translation
// contains query, case-insensitively. An empty query matches every chapter.
func (m *Manager) ListChapters(ctx context.Context, query string) ([]verse.ChapterInfo, error) {
	m.mu.RLock()
	chapters := m.chapters
	m.mu.RUnlock()

	if chapters == nil {
		list, err := m.provider.ListChapters(ctx)
		if err != nil {
			return nil, errors.Wrap(err, "failed to list chapters")
		}
		m.mu.Lock()
		m.chapters = list
		m.mu.Unlock()
		chapters = list
	}

	var matched []verse.ChapterInfo
	for i := range chapters {
		if chapters[i].MatchesQuery(query) {
			matched = append(matched, chapters[i])
		}
	}
	return matched, nil
}

// SelectChapter loads a chapter and makes it the playback sequence.
// Playback of the previous chapter stops.
func (m *Manager) SelectChapter(ctx context.Context, number int) (*verse.Chapter, error) {
	if !verse.ValidChapterNumber(number) {
		return nil, errors.Wrapf(verse.ErrInvalidChapter, "chapter %d", number)
	}

	m.mu.Lock()
	m.loadGen++
	gen := m.loadGen
	m.view.StartLoading(number)
	// The old chapter stops now, whether or not the new one loads.
	m.chapter = nil
	m.playback.SetChapter(nil)
	m.mu.Unlock()

	zlog.Debug().Msgf("reader: loading chapter: chapter=%d", number)
	ch, err := m.provider.GetChapter(ctx, number)

	m.mu.Lock()
	defer m.mu.Unlock()

	if gen != m.loadGen {
		zlog.Debug().Msgf("reader: discarding superseded load: chapter=%d", number)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to load chapter %d", number)
		}
		return ch, nil
	}

	if err != nil {
		m.view.SetFailed(m.config.Messages.LoadFailed)
		zlog.Error().Msgf("reader: failed to load chapter: chapter=%d err=%v", number, err)
		return nil, errors.Wrapf(err, "failed to load chapter %d", number)
	}

	m.chapter = ch
	m.playback.SetChapter(ch)
	m.view.SetReady(number)

	if target, ok := m.view.TakePendingScroll(number); ok {
		if v, found := ch.FindByNumberInChapter(target.NumberInChapter); found {
			m.view.SetFocus(v.Number)
		}
	}

	zlog.Info().Msgf("reader: chapter loaded: chapter=%d name=%s verses=%d", ch.Number, ch.EnglishName, len(ch.Verses))
	return ch, nil
}

// NextChapter selects the chapter after the current one.
func (m *Manager) NextChapter(ctx context.Context) (*verse.Chapter, error) {
	return m.selectAdjacent(ctx, 1)
}

// PrevChapter selects the chapter before the current one.
func (m *Manager) PrevChapter(ctx context.Context) (*verse.Chapter, error) {
	return m.selectAdjacent(ctx, -1)
}

func (m *Manager) selectAdjacent(ctx context.Context, step int) (*verse.Chapter, error) {
	current := m.view.GetChapter()
	if current == 0 {
		return nil, ErrNoChapter
	}
	next := current + step
	if !verse.ValidChapterNumber(next) {
		return nil, errors.Wrapf(ErrChapterBounds, "chapter %d", current)
	}
	return m.SelectChapter(ctx, next)
}

// CurrentChapter returns the loaded chapter.
func (m *Manager) CurrentChapter() (*verse.Chapter, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.chapter == nil {
		return nil, ErrNoChapter
	}
	return m.chapter, nil
}

// Play requests recitation of a verse of the current chapter. in is the user
// interaction that caused the request, if any. Playing the active verse
// stops it.
func (m *Manager) Play(ctx context.Context, verseNumber int, in *playback.Interaction) error {
	var opts []playback.PlayOption
	if in != nil {
		opts = append(opts, playback.WithGesture(*in))
	}
	return m.playback.Play(ctx, verseNumber, opts...)
}

// Stop stops recitation.
func (m *Manager) Stop() {
	m.playback.Stop()
}

// Interact forwards a user interaction to the permission gate. It returns
// true when the interaction qualifies.
func (m *Manager) Interact(ctx context.Context, in playback.Interaction) bool {
	return m.playback.Interact(ctx, in)
}

// Bookmarks returns the saved bookmarks, newest first.
func (m *Manager) Bookmarks(ctx context.Context) (bookmark.List, error) {
	return m.bookmarks.List(ctx)
}

// AddBookmark bookmarks a verse of the current chapter.
func (m *Manager) AddBookmark(ctx context.Context, verseNumber int) (bookmark.Bookmark, bool, error) {
	v, err := m.verse(verseNumber)
	if err != nil {
		return bookmark.Bookmark{}, false, err
	}
	b, added, err := m.bookmarks.Add(ctx, v)
	if err != nil {
		return bookmark.Bookmark{}, false, err
	}
	if added {
		m.notices.Show(notice.ActionBookmark, verseNumber, m.config.Messages.BookmarkAdded)
	}
	return b, added, nil
}

// RemoveBookmark deletes the bookmark of any verse.
func (m *Manager) RemoveBookmark(ctx context.Context, verseNumber int) (bool, error) {
	removed, err := m.bookmarks.Remove(ctx, verseNumber)
	if err != nil {
		return false, err
	}
	if removed {
		m.notices.Show(notice.ActionBookmark, verseNumber, m.config.Messages.BookmarkRemoved)
	}
	return removed, nil
}

// ToggleBookmark flips the bookmark of a verse of the current chapter.
// Returns true when the verse is bookmarked afterwards.
func (m *Manager) ToggleBookmark(ctx context.Context, verseNumber int) (bool, error) {
	v, err := m.verse(verseNumber)
	if err != nil {
		return false, err
	}
	bookmarked, err := m.bookmarks.Toggle(ctx, v)
	if err != nil {
		return false, err
	}
	msg := m.config.Messages.BookmarkRemoved
	if bookmarked {
		msg = m.config.Messages.BookmarkAdded
	}
	m.notices.Show(notice.ActionBookmark, verseNumber, msg)
	return bookmarked, nil
}

// SelectBookmark brings a bookmarked verse into sight, loading its chapter
// first when needed. It returns the global number of the focused verse.
func (m *Manager) SelectBookmark(ctx context.Context, chapter, numberInChapter int) (int, error) {
	m.mu.RLock()
	current := m.chapter
	m.mu.RUnlock()

	if current != nil && current.Number == chapter && m.view.GetPhase() == view.PhaseReady {
		v, ok := current.FindByNumberInChapter(numberInChapter)
		if !ok {
			return 0, errors.Wrapf(ErrVerseNotFound, "verse %d:%d", chapter, numberInChapter)
		}
		m.view.SetFocus(v.Number)
		return v.Number, nil
	}

	m.view.SetPendingScroll(view.Target{Chapter: chapter, NumberInChapter: numberInChapter})
	ch, err := m.SelectChapter(ctx, chapter)
	if err != nil {
		return 0, err
	}
	v, ok := ch.FindByNumberInChapter(numberInChapter)
	if !ok {
		return 0, errors.Wrapf(ErrVerseNotFound, "verse %d:%d", chapter, numberInChapter)
	}
	return v.Number, nil
}

// ShareResult describes a completed share.
type ShareResult struct {
	Method  share.Method
	Aborted bool // The user dismissed the share; no notice was shown
}

// Share shares a verse of the current chapter.
func (m *Manager) Share(ctx context.Context, verseNumber int) (ShareResult, error) {
	v, err := m.verse(verseNumber)
	if err != nil {
		return ShareResult{}, err
	}

	method, err := m.sharer.Share(ctx, v)
	if errors.Is(err, share.ErrShareAborted) {
		return ShareResult{Method: method, Aborted: true}, nil
	}
	if err != nil {
		zlog.Error().Msgf("reader: share failed: verse=%d err=%v", verseNumber, err)
		m.notices.Show(notice.ActionShare, verseNumber, m.config.Messages.ShareFailed)
		return ShareResult{Method: method}, err
	}

	msg := m.config.Messages.Copied
	if method == share.MethodShare {
		msg = m.config.Messages.Shared
	}
	m.notices.Show(notice.ActionShare, verseNumber, msg)
	return ShareResult{Method: method}, nil
}

// Reset stops playback and clears the parked verse and scheduled advance.
func (m *Manager) Reset() {
	zlog.Info().Msgf("reader: playback reset: session_id=%s", m.view.Snapshot().SessionID)
	m.playback.Reset()
}

// Notices returns the notice manager.
func (m *Manager) Notices() *notice.Manager {
	return m.notices
}

// Status represents the current reader status.
type Status struct {
	View         view.Snapshot
	Playback     playback.Session
	ChapterName  string
	Notice       *notice.Notice // Visible notice, nil when none
	ProviderName string
}

// GetStatus returns the current reader status.
func (m *Manager) GetStatus() *Status {
	m.mu.RLock()
	defer m.mu.RUnlock()

	s := &Status{
		View:         m.view.Snapshot(),
		Playback:     m.playback.Session(),
		ProviderName: m.provider.Name(),
	}
	if m.chapter != nil {
		s.ChapterName = m.chapter.EnglishName
	}
	if n, ok := m.notices.Current(); ok {
		s.Notice = &n
	}
	return s
}

// Close stops playback and closes the session.
func (m *Manager) Close() {
	m.closeOnce.Do(func() {
		m.mu.RLock()
		started := m.started
		m.mu.RUnlock()

		m.playback.Close()
		if started {
			<-m.loopDone
		}
		m.notices.Close()
		close(m.done)
		zlog.Info().Msg("reader: session closed")
	})
}

// verse returns a verse of the current chapter.
func (m *Manager) verse(number int) (verse.Verse, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.chapter == nil {
		return verse.Verse{}, ErrNoChapter
	}
	v, ok := m.chapter.Verse(number)
	if !ok {
		return verse.Verse{}, errors.Wrapf(ErrVerseNotFound, "verse %d, chapter %d", number, m.chapter.Number)
	}
	return v, nil
}

// playbackLoop handles playback events until the controller closes its
// event channel.
func (m *Manager) playbackLoop(events <-chan playback.Event) {
	defer func() {
		if r := recover(); r != nil {
			zlog.Error().Msgf("reader: playback loop panicked: %v", r)
			zlog.Info().Msg("reader: restarting playback loop")
			go m.playbackLoop(events)
		}
	}()

	for event := range events {
		m.handlePlaybackEvent(event)
	}
	close(m.loopDone)
}

// handlePlaybackEvent turns a playback event into a notice.
func (m *Manager) handlePlaybackEvent(event playback.Event) {
	zlog.Debug().Msgf("reader: playback event: type=%s verse=%d state=%s", event.Type, event.Verse, event.State)

	msgs := m.config.Messages
	switch event.Type {
	case playback.EventStarted:
		if event.Focus {
			m.view.SetFocus(event.Verse)
		}
		m.notices.Show(notice.ActionPlay, event.Verse, msgs.Playing)

	case playback.EventStopped:
		m.notices.Show(notice.ActionPlay, event.Verse, msgs.Stopped)

	case playback.EventEnded:
		m.notices.Show(notice.ActionPlay, event.Verse, msgs.Completed)

	case playback.EventPendingPermission:
		m.notices.Show(notice.ActionPlay, event.Verse, msgs.TapToEnable)

	case playback.EventFailed:
		zlog.Warn().Msgf("reader: playback failed: verse=%d err=%v", event.Verse, event.Err)
		m.notices.Show(notice.ActionPlay, event.Verse, msgs.PlayFailed)

	case playback.EventSequenceComplete:
		zlog.Info().Msgf("reader: chapter recitation complete: last_verse=%d", event.Verse)
	}
}
