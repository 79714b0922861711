package reader

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/osa030/tilawah/internal/app/bookmarks"
	"github.com/osa030/tilawah/internal/app/playback"
	"github.com/osa030/tilawah/internal/app/reader/view"
	"github.com/osa030/tilawah/internal/app/share"
	"github.com/osa030/tilawah/internal/domain/verse"
	"github.com/osa030/tilawah/internal/infra/config"
	"github.com/osa030/tilawah/internal/infra/kv"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// fakeProvider serves chapters of three verses numbered chapter*1000+i.
type fakeProvider struct {
	mu        sync.Mutex
	listCalls int
	failures  map[int]error
}

func (p *fakeProvider) ListChapters(ctx context.Context) ([]verse.ChapterInfo, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.listCalls++
	return []verse.ChapterInfo{
		{Number: 1, EnglishName: "Al-Faatiha", EnglishNameTranslation: "The Opening"},
		{Number: 2, EnglishName: "Al-Baqara", EnglishNameTranslation: "The Cow"},
		{Number: 3, EnglishName: "Aal-i-Imraan", EnglishNameTranslation: "The Family of Imraan"},
	}, nil
}

func (p *fakeProvider) GetChapter(ctx context.Context, number int) (*verse.Chapter, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.failures[number]; err != nil {
		return nil, err
	}
	info := verse.ChapterInfo{
		Number:         number,
		EnglishName:    fmt.Sprintf("Chapter-%d", number),
		NumberOfVerses: 3,
	}
	ch := &verse.Chapter{ChapterInfo: info}
	for i := 1; i <= 3; i++ {
		ch.Verses = append(ch.Verses, verse.Verse{
			Number:          number*1000 + i,
			NumberInChapter: i,
			Text:            "text",
			Translation:     fmt.Sprintf("translation %d:%d", number, i),
			Chapter:         info,
		})
	}
	return ch, nil
}

func (p *fakeProvider) Name() string { return "fake" }

type fakeOpener struct {
	mu      sync.Mutex
	handles []*fakeMedia
}

func (o *fakeOpener) Open(url string, cb playback.MediaCallbacks) (playback.Media, error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	m := &fakeMedia{url: url, cb: cb}
	o.handles = append(o.handles, m)
	return m, nil
}

func (o *fakeOpener) Last() *fakeMedia {
	o.mu.Lock()
	defer o.mu.Unlock()
	if len(o.handles) == 0 {
		return nil
	}
	return o.handles[len(o.handles)-1]
}

func (o *fakeOpener) Opened() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return len(o.handles)
}

type fakeMedia struct {
	url string
	cb  playback.MediaCallbacks
}

func (m *fakeMedia) Play(ctx context.Context) error { return nil }
func (m *fakeMedia) Close() error                   { return nil }

type fakeClipboard struct {
	mu   sync.Mutex
	text string
	err  error
}

func (c *fakeClipboard) WriteAll(text string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.text = text
	return c.err
}

type fakeTarget struct {
	err      error
	payloads []share.Payload
}

func (t *fakeTarget) Share(ctx context.Context, p share.Payload) error {
	t.payloads = append(t.payloads, p)
	return t.err
}

type harness struct {
	m         *Manager
	provider  *fakeProvider
	opener    *fakeOpener
	clock     *clockwork.FakeClock
	clipboard *fakeClipboard
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	t.Setenv("ADMIN_TOKEN", "")
	cfg, err := config.Parse([]byte(`
admin:
  token: test
reader:
  start_chapter: 2
  audio_base_url: https://audio.test/recitation
providers:
  - type: alquran
    display_name: alquran.cloud
`))
	require.NoError(t, err)
	return cfg
}

func newHarness(t *testing.T, target share.Target) *harness {
	t.Helper()

	store, err := kv.OpenFile(filepath.Join(t.TempDir(), "bookmarks.json"))
	require.NoError(t, err)

	h := &harness{
		provider:  &fakeProvider{failures: make(map[int]error)},
		opener:    &fakeOpener{},
		clock:     clockwork.NewFakeClock(),
		clipboard: &fakeClipboard{},
	}
	m, err := NewManager(testConfig(t), Deps{
		Provider:  h.provider,
		Opener:    h.opener,
		Gate:      playback.NewGate(playback.PlatformFunc(func() bool { return true }), nil),
		Bookmarks: bookmarks.NewService(store, h.clock),
		Sharer:    share.NewSharer(target, h.clipboard, "https://reader.test/"),
		Clock:     h.clock,
	})
	require.NoError(t, err)
	h.m = m

	t.Cleanup(func() {
		m.Close()
		_ = store.Close()
	})
	return h
}

func (h *harness) start(t *testing.T) {
	t.Helper()
	require.NoError(t, h.m.Start(context.Background()))
}

func (h *harness) waitNotice(t *testing.T, text string) {
	t.Helper()
	require.Eventually(t, func() bool {
		n, ok := h.m.Notices().Current()
		return ok && n.Text == text
	}, time.Second, 5*time.Millisecond, "notice %q", text)
}

var click = &playback.Interaction{Gesture: playback.GestureClick}

func TestNewManager_RequiresDeps(t *testing.T) {
	_, err := NewManager(testConfig(t), Deps{})
	assert.Error(t, err)
}

func TestManager_StartLoadsStartChapter(t *testing.T) {
	h := newHarness(t, nil)
	h.start(t)

	status := h.m.GetStatus()
	assert.Equal(t, view.PhaseReady, status.View.Phase)
	assert.Equal(t, 2, status.View.Chapter)
	assert.Equal(t, "Chapter-2", status.ChapterName)
	assert.Equal(t, 2, status.Playback.ChapterNumber)
	assert.Equal(t, "fake", status.ProviderName)
	assert.NotEmpty(t, status.View.SessionID)
}

func TestManager_StartWithFailingProvider(t *testing.T) {
	h := newHarness(t, nil)
	h.provider.failures[2] = errors.New("upstream unavailable")
	h.start(t)

	status := h.m.GetStatus()
	assert.Equal(t, view.PhaseFailed, status.View.Phase)
	assert.Equal(t, "Failed to load surah. Please try again later.", status.View.Error)

	_, err := h.m.CurrentChapter()
	assert.ErrorIs(t, err, ErrNoChapter)
}

func TestManager_ListChapters(t *testing.T) {
	h := newHarness(t, nil)
	ctx := context.Background()

	all, err := h.m.ListChapters(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 3)

	matched, err := h.m.ListChapters(ctx, "cow")
	require.NoError(t, err)
	require.Len(t, matched, 1)
	assert.Equal(t, 2, matched[0].Number)

	matched, err = h.m.ListChapters(ctx, "zzz")
	require.NoError(t, err)
	assert.Empty(t, matched)

	assert.Equal(t, 1, h.provider.listCalls)
}

func TestManager_ChapterNavigation(t *testing.T) {
	h := newHarness(t, nil)
	ctx := context.Background()

	_, err := h.m.NextChapter(ctx)
	assert.ErrorIs(t, err, ErrNoChapter)

	_, err = h.m.SelectChapter(ctx, 115)
	assert.ErrorIs(t, err, verse.ErrInvalidChapter)

	ch, err := h.m.SelectChapter(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, ch.Number)

	_, err = h.m.PrevChapter(ctx)
	assert.ErrorIs(t, err, ErrChapterBounds)

	ch, err = h.m.NextChapter(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, ch.Number)

	_, err = h.m.SelectChapter(ctx, 114)
	require.NoError(t, err)
	_, err = h.m.NextChapter(ctx)
	assert.ErrorIs(t, err, ErrChapterBounds)

	ch, err = h.m.PrevChapter(ctx)
	require.NoError(t, err)
	assert.Equal(t, 113, ch.Number)
}

func TestManager_PlayDefersUntilGesture(t *testing.T) {
	h := newHarness(t, nil)
	h.start(t)
	ctx := context.Background()

	require.NoError(t, h.m.Play(ctx, 2002, nil))
	h.waitNotice(t, "Tap anywhere to enable audio")
	assert.Equal(t, playback.StatePendingPermission, h.m.GetStatus().Playback.State)

	assert.True(t, h.m.Interact(ctx, playback.Interaction{Gesture: playback.GestureKeyPress}))
	h.waitNotice(t, "Playing recitation")
	require.Eventually(t, func() bool {
		return h.m.GetStatus().View.FocusVerse == 2002
	}, time.Second, 5*time.Millisecond)
	assert.Equal(t, "https://audio.test/recitation/2002.mp3", h.opener.Last().url)
}

func TestManager_PlayAndRetapStops(t *testing.T) {
	h := newHarness(t, nil)
	h.start(t)
	ctx := context.Background()

	require.NoError(t, h.m.Play(ctx, 2001, click))
	h.waitNotice(t, "Playing recitation")

	require.NoError(t, h.m.Play(ctx, 2001, click))
	h.waitNotice(t, "Playback stopped")
	assert.Equal(t, playback.StateIdle, h.m.GetStatus().Playback.State)
}

func TestManager_EndedAdvances(t *testing.T) {
	h := newHarness(t, nil)
	h.start(t)
	ctx := context.Background()

	require.NoError(t, h.m.Play(ctx, 2001, click))
	h.waitNotice(t, "Playing recitation")

	h.opener.Last().cb.OnEnded()
	h.waitNotice(t, "Playback completed")

	h.clock.Advance(time.Second)
	require.Eventually(t, func() bool {
		return h.m.GetStatus().Playback.ActiveVerse == 2002
	}, time.Second, 5*time.Millisecond)
	h.waitNotice(t, "Playing recitation")
}

func TestManager_SelectChapterStopsPendingAdvance(t *testing.T) {
	h := newHarness(t, nil)
	h.start(t)
	ctx := context.Background()

	require.NoError(t, h.m.Play(ctx, 2001, click))
	h.waitNotice(t, "Playing recitation")

	// Ended schedules the advance to 2002
	h.opener.Last().cb.OnEnded()
	opened := h.opener.Opened()

	h.provider.failures[3] = errors.New("upstream unavailable")
	_, err := h.m.SelectChapter(ctx, 3)
	require.Error(t, err)

	h.clock.Advance(time.Second)
	assert.Never(t, func() bool {
		return h.opener.Opened() != opened
	}, 50*time.Millisecond, 5*time.Millisecond)

	status := h.m.GetStatus()
	assert.Equal(t, view.PhaseFailed, status.View.Phase)
	assert.Equal(t, playback.StateIdle, status.Playback.State)
	assert.Zero(t, status.Playback.ActiveVerse)
	assert.Zero(t, status.Playback.ChapterNumber)

	err = h.m.Play(ctx, 2002, click)
	assert.ErrorIs(t, err, playback.ErrNoChapter)
}

func TestManager_PlayUnknownVerse(t *testing.T) {
	h := newHarness(t, nil)
	h.start(t)

	err := h.m.Play(context.Background(), 3001, click)
	assert.ErrorIs(t, err, playback.ErrVerseNotFound)
}

func TestManager_Bookmarks(t *testing.T) {
	h := newHarness(t, nil)
	h.start(t)
	ctx := context.Background()

	b, added, err := h.m.AddBookmark(ctx, 2002)
	require.NoError(t, err)
	assert.True(t, added)
	assert.Equal(t, 2, b.NumberInChapter)
	h.waitNotice(t, "Bookmark added")

	_, added, err = h.m.AddBookmark(ctx, 2002)
	require.NoError(t, err)
	assert.False(t, added)

	bookmarked, err := h.m.ToggleBookmark(ctx, 2003)
	require.NoError(t, err)
	assert.True(t, bookmarked)

	bookmarked, err = h.m.ToggleBookmark(ctx, 2003)
	require.NoError(t, err)
	assert.False(t, bookmarked)
	h.waitNotice(t, "Bookmark removed")

	removed, err := h.m.RemoveBookmark(ctx, 9999)
	require.NoError(t, err)
	assert.False(t, removed)

	list, err := h.m.Bookmarks(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, 2002, list[0].VerseNumber)

	_, _, err = h.m.AddBookmark(ctx, 3001)
	assert.ErrorIs(t, err, ErrVerseNotFound)
}

func TestManager_SelectBookmark(t *testing.T) {
	h := newHarness(t, nil)
	h.start(t)
	ctx := context.Background()

	// Same chapter: focus directly
	n, err := h.m.SelectBookmark(ctx, 2, 3)
	require.NoError(t, err)
	assert.Equal(t, 2003, n)
	assert.Equal(t, 2003, h.m.GetStatus().View.FocusVerse)

	// Other chapter: load, then consume the pending scroll
	n, err = h.m.SelectBookmark(ctx, 3, 2)
	require.NoError(t, err)
	assert.Equal(t, 3002, n)

	status := h.m.GetStatus()
	assert.Equal(t, 3, status.View.Chapter)
	assert.Equal(t, 3002, status.View.FocusVerse)
	assert.Nil(t, status.View.PendingScroll)

	_, err = h.m.SelectBookmark(ctx, 3, 9)
	assert.ErrorIs(t, err, ErrVerseNotFound)
}

func TestManager_ShareToClipboard(t *testing.T) {
	h := newHarness(t, nil)
	h.start(t)

	res, err := h.m.Share(context.Background(), 2001)
	require.NoError(t, err)
	assert.Equal(t, share.MethodClipboard, res.Method)
	assert.False(t, res.Aborted)
	assert.Contains(t, h.clipboard.text, "translation 2:1")
	h.waitNotice(t, "Copied to clipboard!")
}

func TestManager_ShareToTarget(t *testing.T) {
	target := &fakeTarget{}
	h := newHarness(t, target)
	h.start(t)

	res, err := h.m.Share(context.Background(), 2001)
	require.NoError(t, err)
	assert.Equal(t, share.MethodShare, res.Method)
	require.Len(t, target.payloads, 1)
	assert.Equal(t, "https://reader.test/", target.payloads[0].URL)
	h.waitNotice(t, "Shared successfully!")
}

func TestManager_ShareAbortedIsSilent(t *testing.T) {
	h := newHarness(t, &fakeTarget{err: share.ErrShareAborted})
	h.start(t)

	res, err := h.m.Share(context.Background(), 2001)
	require.NoError(t, err)
	assert.True(t, res.Aborted)

	_, ok := h.m.Notices().Current()
	assert.False(t, ok)
}

func TestManager_ShareFailure(t *testing.T) {
	h := newHarness(t, &fakeTarget{err: errors.New("endpoint down")})
	h.start(t)

	_, err := h.m.Share(context.Background(), 2001)
	require.Error(t, err)
	h.waitNotice(t, "Failed to share")
}

func TestManager_Reset(t *testing.T) {
	h := newHarness(t, nil)
	h.start(t)
	ctx := context.Background()

	require.NoError(t, h.m.Play(ctx, 2001, click))
	h.m.Reset()

	status := h.m.GetStatus()
	assert.Equal(t, playback.StateIdle, status.Playback.State)
	assert.Zero(t, status.Playback.ActiveVerse)
}

func TestManager_Close(t *testing.T) {
	h := newHarness(t, nil)
	h.start(t)

	h.m.Close()
	h.m.Close()

	select {
	case <-h.m.Done():
	default:
		t.Fatal("done channel not closed")
	}
}
